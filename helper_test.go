package finanzas

import (
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// dec is a helper for test to create decimals from const
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// usdToEur converts USD at 0.5 EUR per dollar, anything else is unchanged.
var usdToEur = NewRates("EUR").Set("USD", dec(2))

// mapStore is an in-memory Store for tests.
type mapStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapStore() *mapStore { return &mapStore{data: make(map[string][]byte)} }

func (s *mapStore) Load(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func (s *mapStore) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return nil
}
