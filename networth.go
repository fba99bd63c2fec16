package finanzas

// NetWorth is what the user owns minus what they owe, in a single currency.
type NetWorth struct {
	Savings     Money `json:"savings"`
	Investments Money `json:"investments"`
	Debt        Money `json:"debt"`
	Total       Money `json:"total"`
}

// Value returns the net worth.
func (n NetWorth) Value() Money { return n.Total }

// Assets returns savings plus investments.
func (n NetWorth) Assets() Money { return n.Savings.Add(n.Investments) }

// CalculateNetWorth sums savings goals and investments and subtracts debts, all
// converted to cur. The result is not clamped and may be negative.
func CalculateNetWorth(data Data, conv Converter, cur string) NetWorth {
	nw := NetWorth{
		Savings:     M(0, cur),
		Investments: M(0, cur),
		Debt:        M(0, cur),
	}
	for _, g := range data.SavingsGoals {
		nw.Savings = nw.Savings.Add(convert(conv, g.Current(), cur))
	}
	for _, inv := range data.Investments {
		if inv == nil {
			continue
		}
		nw.Investments = nw.Investments.Add(convert(conv, inv.Value(), cur))
	}
	for _, d := range data.Debts {
		nw.Debt = nw.Debt.Add(convert(conv, d.Balance(), cur))
	}
	nw.Total = nw.Savings.Add(nw.Investments).Sub(nw.Debt)
	return nw
}
