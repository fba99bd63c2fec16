package finanzas

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Investment is either a *Platform or an *Asset.
//
// The two shapes share the same persisted record; they are told apart once, when the
// record is decoded (see Investments.UnmarshalJSON).
type Investment interface {
	InvestmentID() string
	InvestmentName() string
	InvestmentType() string
	// Value is the current market value in the investment's currency.
	Value() Money
	isInvestment()
}

// Holding is a line inside a platform. It is informative only: the platform balance is
// authoritative.
type Holding struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Platform is an account holding an aggregate balance, like a brokerage or a pension fund.
type Platform struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type,omitempty"`
	Platform string          `json:"platform,omitempty"`
	Balance  decimal.Decimal `json:"currentBalance"`
	Currency string          `json:"currency"`
	Holdings []Holding       `json:"holdings,omitempty"`
}

func (p *Platform) InvestmentID() string   { return p.ID }
func (p *Platform) InvestmentName() string { return p.Name }
func (p *Platform) InvestmentType() string { return p.Type }
func (p *Platform) Value() Money           { return M(p.Balance, p.Currency) }
func (p *Platform) isInvestment()          {}

// Asset is a position: a quantity of something bought at a price.
type Asset struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type,omitempty"`
	Symbol        string          `json:"symbol,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	Currency      string          `json:"currency"`
}

func (a *Asset) InvestmentID() string   { return a.ID }
func (a *Asset) InvestmentName() string { return a.Name }
func (a *Asset) InvestmentType() string { return a.Type }
func (a *Asset) Value() Money           { return M(a.Quantity.Mul(a.CurrentPrice), a.Currency) }
func (a *Asset) isInvestment()          {}

// Cost is what was paid for the position.
func (a *Asset) Cost() Money { return M(a.Quantity.Mul(a.PurchasePrice), a.Currency) }

// Investments is a list of investments that classifies its entries when decoded.
type Investments []Investment

// Find returns the investment with the given id.
func (l Investments) Find(id string) (Investment, bool) {
	for _, inv := range l {
		if inv != nil && inv.InvestmentID() == id {
			return inv, true
		}
	}
	return nil, false
}

// FindPlatform returns the platform with the given id. Assets never match.
func (l Investments) FindPlatform(id string) (*Platform, bool) {
	inv, ok := l.Find(id)
	if !ok {
		return nil, false
	}
	p, ok := inv.(*Platform)
	return p, ok
}

// investmentRecord is the persisted shape shared by platforms and assets.
type investmentRecord struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Platform       string          `json:"platform"`
	Symbol         string          `json:"symbol"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Quantity       decimal.Decimal `json:"quantity"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	CurrentPrice   decimal.Decimal `json:"currentPrice"`
	Currency       string          `json:"currency"`
	Holdings       []Holding       `json:"holdings"`
}

// classify turns a record into its variant: a non-zero quantity makes an Asset,
// anything else is a Platform.
func (r investmentRecord) classify() Investment {
	if !r.Quantity.IsZero() {
		return &Asset{
			ID:            r.ID,
			Name:          r.Name,
			Type:          r.Type,
			Symbol:        r.Symbol,
			Quantity:      r.Quantity,
			PurchasePrice: r.PurchasePrice,
			CurrentPrice:  r.CurrentPrice,
			Currency:      r.Currency,
		}
	}
	return &Platform{
		ID:       r.ID,
		Name:     r.Name,
		Type:     r.Type,
		Platform: r.Platform,
		Balance:  r.CurrentBalance,
		Currency: r.Currency,
		Holdings: r.Holdings,
	}
}

func (l *Investments) UnmarshalJSON(data []byte) error {
	var records []investmentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("invalid investments: %w", err)
	}
	list := make(Investments, 0, len(records))
	for _, r := range records {
		list = append(list, r.classify())
	}
	*l = list
	return nil
}

func (l Investments) MarshalJSON() ([]byte, error) {
	// each variant marshals its own fields, which round trips through classify.
	raw := make([]any, 0, len(l))
	for _, inv := range l {
		if inv != nil {
			raw = append(raw, inv)
		}
	}
	return json.Marshal(raw)
}
