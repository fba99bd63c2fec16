package finanzas

// ProjectionMonths is the length of a cashflow projection.
const ProjectionMonths = 12

// CashflowMonth is one month of a cashflow projection.
type CashflowMonth struct {
	Month             Date   `json:"month"`
	Label             string `json:"label"`
	Income            Money  `json:"income"`
	Expenses          Money  `json:"expenses"`
	DebtPayments      Money  `json:"debtPayments"`
	NetCashflow       Money  `json:"netCashflow"`
	CumulativeBalance Money  `json:"cumulativeBalance"`
}

// ProjectCashflow projects twelve months starting with the month of from, assuming
// income, budgeted expenses and debt payments stay constant.
//
// The first month's cumulative balance is income minus expenses: debt payments only
// start weighing on the balance from the second month on.
func ProjectCashflow(categories []Category, debts []Debt, ynab YnabConfig, conv Converter, cur string, from Date) []CashflowMonth {
	income := monthlyIncome(ynab, conv, cur)
	expenses := monthlyExpenses(categories, conv, cur)
	payments := monthlyDebtPayments(debts, conv, cur)
	net := income.Sub(expenses).Sub(payments)

	months := make([]CashflowMonth, 0, ProjectionMonths)
	balance := income.Sub(expenses)
	for i := 0; i < ProjectionMonths; i++ {
		if i > 0 {
			balance = balance.Add(net)
		}
		month := from.AddMonth(i)
		months = append(months, CashflowMonth{
			Month:             month,
			Label:             month.Format(MonthLabelFormat),
			Income:            income,
			Expenses:          expenses,
			DebtPayments:      payments,
			NetCashflow:       net,
			CumulativeBalance: balance,
		})
	}
	return months
}
