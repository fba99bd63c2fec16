package finanzas

import "github.com/shopspring/decimal"

// DebtToIncomeRatio is the total debt balance over a year of income, in percent.
func DebtToIncomeRatio(debts []Debt, ynab YnabConfig, conv Converter, cur string) Percent {
	total := M(0, cur)
	for _, d := range debts {
		total = total.Add(convert(conv, d.Balance(), cur))
	}
	yearly := monthlyIncome(ynab, conv, cur).Mul(decimal.NewFromInt(12))
	return percentOf(total, yearly)
}

// SavingsRate is the budget surplus over the monthly income, in percent.
func SavingsRate(totals Totals, ynab YnabConfig, conv Converter, cur string) Percent {
	available := convert(conv, totals.Available, cur)
	return percentOf(available, monthlyIncome(ynab, conv, cur))
}

// DebtServiceRatio is the share of the monthly income that goes to debt payments, in percent.
func DebtServiceRatio(debts []Debt, ynab YnabConfig, conv Converter, cur string) Percent {
	payments := monthlyDebtPayments(debts, conv, cur)
	return percentOf(payments, monthlyIncome(ynab, conv, cur))
}

// EmergencyFundMonths is how many months of budgeted expenses the emergency fund covers.
// It resolves the fund exactly like the emergency fund component of the index.
func EmergencyFundMonths(data Data, conv Converter, cur string) float64 {
	fund, ok := ResolveEmergencyFund(data.SavingsGoals, data.Investments, conv, cur)
	if !ok {
		return 0
	}
	return fund.months(monthlyExpenses(data.Categories, conv, cur))
}

func monthlyDebtPayments(debts []Debt, conv Converter, cur string) Money {
	total := M(0, cur)
	for _, d := range debts {
		total = total.Add(convert(conv, d.Payment(), cur))
	}
	return total
}

// Ratios gathers every ratio of a snapshot, for reports.
type Ratios struct {
	DebtToIncome        Percent           `json:"debtToIncome"`
	SavingsRate         Percent           `json:"savingsRate"`
	DebtService         Percent           `json:"debtService"`
	EmergencyFundMonths float64           `json:"emergencyFundMonths"`
	Investments         InvestmentSummary `json:"investments"`
}

// CalculateRatios computes all the ratios of data.
func CalculateRatios(data Data, conv Converter, cur string) Ratios {
	return Ratios{
		DebtToIncome:        DebtToIncomeRatio(data.Debts, data.Ynab, conv, cur),
		SavingsRate:         SavingsRate(data.totals(conv, cur), data.Ynab, conv, cur),
		DebtService:         DebtServiceRatio(data.Debts, data.Ynab, conv, cur),
		EmergencyFundMonths: EmergencyFundMonths(data, conv, cur),
		Investments:         CalculateInvestmentSummary(data.Investments, conv, cur),
	}
}
