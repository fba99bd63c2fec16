package finanzas

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a configuration carries no currency.
const DefaultCurrency = "EUR"

// Converter converts an amount into another currency.
//
// Implementations must be total (defined for every currency they may receive) and
// synchronous. An amount with an empty currency is considered already expressed in the
// target currency.
type Converter interface {
	Convert(amount Money, to string) Money
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(amount decimal.Decimal, from, to string) decimal.Decimal

func (f ConverterFunc) Convert(amount Money, to string) Money {
	if amount.cur == "" || amount.cur == to {
		return Money{value: amount.value, cur: to}
	}
	return Money{value: f(amount.value, amount.cur, to), cur: to}
}

// Identity is a Converter that relabels amounts without changing their value.
var Identity Converter = ConverterFunc(func(v decimal.Decimal, _, _ string) decimal.Decimal { return v })

// Rates is a table of exchange rates relative to a base currency: Values["USD"] is how many
// USD one unit of Base is worth. The base itself is implicitly 1.
type Rates struct {
	Base   string                     `json:"base" yaml:"base"`
	Values map[string]decimal.Decimal `json:"values" yaml:"values"`
}

// NewRates creates an empty table for the given base currency.
func NewRates(base string) *Rates {
	return &Rates{Base: base, Values: make(map[string]decimal.Decimal)}
}

// Set records the rate of currency against the base.
func (r *Rates) Set(currency string, rate decimal.Decimal) *Rates {
	if r.Values == nil {
		r.Values = make(map[string]decimal.Decimal)
	}
	r.Values[strings.ToUpper(currency)] = rate
	return r
}

// rate returns how many units of currency one unit of base is worth.
func (r *Rates) rate(currency string) (decimal.Decimal, bool) {
	if strings.EqualFold(currency, r.Base) {
		return decimal.NewFromInt(1), true
	}
	v, ok := r.Values[strings.ToUpper(currency)]
	if !ok || v.IsZero() {
		return decimal.Decimal{}, false
	}
	return v, true
}

// Has reports whether the table can convert from and to currency.
func (r *Rates) Has(currency string) bool {
	_, ok := r.rate(currency)
	return ok
}

// Convert implements Converter. Unknown currencies are passed through unchanged, which
// keeps the converter total.
func (r *Rates) Convert(amount Money, to string) Money {
	if amount.cur == "" || amount.cur == to {
		return Money{value: amount.value, cur: to}
	}
	from, okFrom := r.rate(amount.cur)
	dest, okTo := r.rate(to)
	if !okFrom || !okTo {
		return Money{value: amount.value, cur: to}
	}
	return Money{value: amount.value.Div(from).Mul(dest), cur: to}
}

// Currencies returns the currencies known to the table, base first.
func (r *Rates) Currencies() []string {
	var others []string
	for c := range r.Values {
		if c != r.Base {
			others = append(others, c)
		}
	}
	slices.Sort(others)
	return append([]string{r.Base}, others...)
}

// ValidateCurrency checks that cur is a known ISO 4217 code.
func ValidateCurrency(cur string) error {
	if cur == "" {
		return fmt.Errorf("missing currency")
	}
	if money.GetCurrency(cur) == nil {
		return fmt.Errorf("unknown currency %q", cur)
	}
	return nil
}

// convert is the nil-safe way the engine converts amounts.
func convert(conv Converter, amount Money, to string) Money {
	if conv == nil {
		conv = Identity
	}
	return conv.Convert(amount, to)
}
