package finanzas

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Category types.
const (
	IncomeCategory  = "income"
	ExpenseCategory = "expense"
)

// Category is a budget line: how much is planned and how much was spent this month.
type Category struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Group    string          `json:"group,omitempty"`
	Type     string          `json:"type,omitempty"`
	Budget   decimal.Decimal `json:"budget"`
	Spent    decimal.Decimal `json:"spent"`
	Currency string          `json:"currency"`
}

func (c Category) BudgetMoney() Money { return M(c.Budget, c.Currency) }
func (c Category) SpentMoney() Money  { return M(c.Spent, c.Currency) }

// IsExpense reports whether the category is an expense. Untyped categories are expenses.
func (c Category) IsExpense() bool { return c.Type != IncomeCategory }

// toxicDebtTypes are the debt types considered toxic when a debt does not say otherwise.
var toxicDebtTypes = []string{
	"Préstamo Automotriz",
	"Préstamo de Consumo",
	"Tarjeta de Crédito",
	"Préstamo Personal",
}

// Debt is a liability with a remaining balance and a monthly payment.
type Debt struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type,omitempty"`
	IsToxic        *bool           `json:"isToxic,omitempty"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	Currency       string          `json:"currency"`
}

func (d Debt) Balance() Money { return M(d.CurrentBalance, d.Currency) }
func (d Debt) Payment() Money { return M(d.MonthlyPayment, d.Currency) }

// Toxic reports whether the debt is high-interest consumer debt. An explicit IsToxic
// flag wins over the type.
func (d Debt) Toxic() bool {
	if d.IsToxic != nil {
		return *d.IsToxic
	}
	return slices.Contains(toxicDebtTypes, d.Type)
}

// ToxicDebts returns the toxic debts, in order.
func ToxicDebts(debts []Debt) []Debt {
	var toxic []Debt
	for _, d := range debts {
		if d.Toxic() {
			toxic = append(toxic, d)
		}
	}
	return toxic
}

// SavingsGoal is money put aside for a target. Its balance can live in linked investment
// platforms instead of CurrentAmount.
type SavingsGoal struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	IsEmergencyFund  bool            `json:"isEmergencyFund,omitempty"`
	CurrentAmount    decimal.Decimal `json:"currentAmount"`
	TargetAmount     decimal.Decimal `json:"targetAmount"`
	Currency         string          `json:"currency"`
	LinkedPlatforms  []string        `json:"linkedPlatforms,omitempty"`
	LinkedPlatformID string          `json:"linkedPlatformId,omitempty"`
}

func (g SavingsGoal) Current() Money { return M(g.CurrentAmount, g.Currency) }
func (g SavingsGoal) Target() Money  { return M(g.TargetAmount, g.Currency) }

// looksLikeEmergencyFund matches goals named after an emergency fund.
func (g SavingsGoal) looksLikeEmergencyFund() bool {
	name := strings.ToLower(g.Name)
	return strings.Contains(name, "emergencia") || strings.Contains(name, "emergency")
}

// Transaction is a single movement of money.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Type        string          `json:"type,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

func (t Transaction) Money() Money { return M(t.Amount, t.Currency) }

// YnabConfig is the monthly income baseline, "you need a budget" style.
type YnabConfig struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	Currency      string          `json:"currency,omitempty"`
}

// Income returns the monthly income, defaulting its currency to DefaultCurrency.
func (y YnabConfig) Income() Money {
	cur := y.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	return M(y.MonthlyIncome, cur)
}

// InsuranceConfig holds the insurance coverage declared by the user.
type InsuranceConfig struct {
	HasHealthInsurance       bool `json:"hasHealthInsurance"`
	HasLifeInsurance         bool `json:"hasLifeInsurance"`
	HasCatastrophicInsurance bool `json:"hasCatastrophicInsurance"`
}

// any reports whether at least one coverage is declared.
func (c *InsuranceConfig) any() bool {
	return c != nil && (c.HasHealthInsurance || c.HasLifeInsurance || c.HasCatastrophicInsurance)
}
