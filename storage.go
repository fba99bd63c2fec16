package finanzas

import (
	"fmt"
	"time"
)

// Store persists JSON values by key.
//
// Load decodes the value stored at key into v. When the key is absent Load returns nil
// and leaves v untouched, so a pre-filled v acts as the default.
type Store interface {
	Load(key string, v any) error
	Save(key string, v any) error
}

// Storage keys.
const (
	KeyCategories      = "categories"
	KeyTransactions    = "transactions"
	KeyDebts           = "debts"
	KeySavingsGoals    = "savingsGoals"
	KeyInvestments     = "investments"
	KeyYnabConfig      = "ynabConfig"
	KeyInsuranceConfig = "insuranceConfig"
	KeyNetWorthHistory = "netWorthHistory"
)

// Keys lists every key a Store may hold.
var Keys = []string{
	KeyCategories, KeyTransactions, KeyDebts, KeySavingsGoals,
	KeyInvestments, KeyYnabConfig, KeyInsuranceConfig, KeyNetWorthHistory,
}

// fields maps data keys to the Data field holding them.
func (d *Data) fields() []struct {
	key string
	v   any
} {
	return []struct {
		key string
		v   any
	}{
		{KeyCategories, &d.Categories},
		{KeyTransactions, &d.Transactions},
		{KeyDebts, &d.Debts},
		{KeySavingsGoals, &d.SavingsGoals},
		{KeyInvestments, &d.Investments},
		{KeyYnabConfig, &d.Ynab},
		{KeyInsuranceConfig, &d.Insurance},
	}
}

// LoadData reads a snapshot from s. Absent keys leave the matching field empty.
func LoadData(s Store) (Data, error) {
	var d Data
	for _, f := range d.fields() {
		if err := s.Load(f.key, f.v); err != nil {
			return Data{}, fmt.Errorf("cannot load %q: %w", f.key, err)
		}
	}
	return d, nil
}

// SaveData writes every field of d to s. Totals are derived and are not saved.
func SaveData(s Store, d Data) error {
	for _, f := range d.fields() {
		if err := s.Save(f.key, f.v); err != nil {
			return fmt.Errorf("cannot save %q: %w", f.key, err)
		}
	}
	return nil
}

// NetWorthSnapshot is the net worth recorded on one day.
type NetWorthSnapshot struct {
	Value     float64   `json:"value"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// Money returns the snapshot value.
func (s NetWorthSnapshot) Money() Money { return M(s.Value, s.Currency) }

// SaveNetWorthSnapshot records netWorth under the date of at. A second snapshot on the
// same day replaces the first.
func SaveNetWorthSnapshot(s Store, netWorth Money, at time.Time) error {
	history, err := NetWorthHistory(s)
	if err != nil {
		return err
	}
	history[DateOf(at).String()] = NetWorthSnapshot{
		Value:     netWorth.AsFloat(),
		Currency:  netWorth.Currency(),
		Timestamp: at,
	}
	if err := s.Save(KeyNetWorthHistory, history); err != nil {
		return fmt.Errorf("cannot save net worth history: %w", err)
	}
	return nil
}

// NetWorthHistory returns the recorded snapshots by ISO date. It is never nil.
func NetWorthHistory(s Store) (map[string]NetWorthSnapshot, error) {
	history := make(map[string]NetWorthSnapshot)
	if err := s.Load(KeyNetWorthHistory, &history); err != nil {
		return nil, fmt.Errorf("cannot load net worth history: %w", err)
	}
	if history == nil {
		history = make(map[string]NetWorthSnapshot)
	}
	return history, nil
}
