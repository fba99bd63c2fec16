package finanzas

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Data is a snapshot of the user's finances. The engine reads it and never modifies it.
type Data struct {
	Categories   []Category       `json:"categories"`
	Transactions []Transaction    `json:"transactions"`
	Debts        []Debt           `json:"debts"`
	SavingsGoals []SavingsGoal    `json:"savingsGoals"`
	Investments  Investments      `json:"investments"`
	Ynab         YnabConfig       `json:"ynabConfig"`
	Insurance    *InsuranceConfig `json:"insuranceConfig,omitempty"`
	// Totals are the host's budget totals. CalculateTotals is used when nil.
	Totals *Totals `json:"totals,omitempty"`
}

// Totals summarises the month's budget in the display currency.
type Totals struct {
	Budgeted  Money `json:"budgeted"`
	Spent     Money `json:"spent"`
	Available Money `json:"available"` // monthly income left after the budget
}

// CalculateTotals sums expense budgets and spending and derives what is left from the
// monthly income.
func CalculateTotals(data Data, conv Converter, cur string) Totals {
	budgeted, spent := M(0, cur), M(0, cur)
	for _, c := range data.Categories {
		if !c.IsExpense() {
			continue
		}
		budgeted = budgeted.Add(convert(conv, c.BudgetMoney(), cur))
		spent = spent.Add(convert(conv, c.SpentMoney(), cur))
	}
	income := monthlyIncome(data.Ynab, conv, cur)
	return Totals{
		Budgeted:  budgeted,
		Spent:     spent,
		Available: income.Sub(budgeted),
	}
}

// totals returns the host's totals or computes them.
func (d Data) totals(conv Converter, cur string) Totals {
	if d.Totals != nil {
		return *d.Totals
	}
	return CalculateTotals(d, conv, cur)
}

// Normalize assigns an id to every entity that lacks one, so that links between entities
// (goals to platforms, transactions to categories) can be made. It returns the number of
// ids assigned.
func (d *Data) Normalize() int {
	n := 0
	fill := func(id *string) {
		if *id == "" {
			*id = uuid.New().String()
			n++
		}
	}
	for i := range d.Categories {
		fill(&d.Categories[i].ID)
	}
	for i := range d.Transactions {
		fill(&d.Transactions[i].ID)
	}
	for i := range d.Debts {
		fill(&d.Debts[i].ID)
	}
	for i := range d.SavingsGoals {
		fill(&d.SavingsGoals[i].ID)
	}
	for _, inv := range d.Investments {
		switch v := inv.(type) {
		case *Platform:
			fill(&v.ID)
		case *Asset:
			fill(&v.ID)
		}
	}
	return n
}

// monthlyExpenses is the sum of all category budgets.
func monthlyExpenses(categories []Category, conv Converter, cur string) Money {
	total := M(0, cur)
	for _, c := range categories {
		total = total.Add(convert(conv, c.BudgetMoney(), cur))
	}
	return total
}

// monthlyIncome is the configured income, 0 when unset.
func monthlyIncome(ynab YnabConfig, conv Converter, cur string) Money {
	if ynab.MonthlyIncome.IsZero() {
		return M(0, cur)
	}
	return convert(conv, ynab.Income(), cur)
}
