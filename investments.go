package finanzas

// InvestmentSummary values the investment portfolio.
type InvestmentSummary struct {
	Value     Money   `json:"value"`     // platforms and assets
	Cost      Money   `json:"cost"`      // assets only, platforms have no cost basis
	Gain      Money   `json:"gain"`      // assets value minus their cost
	Return    Percent `json:"return"`    // Gain over Cost
	Platforms int     `json:"platforms"` // number of platforms
	Assets    int     `json:"assets"`    // number of assets
}

// CalculateInvestmentSummary values investments in cur.
func CalculateInvestmentSummary(investments Investments, conv Converter, cur string) InvestmentSummary {
	s := InvestmentSummary{Value: M(0, cur), Cost: M(0, cur), Gain: M(0, cur)}
	assetsValue := M(0, cur)
	for _, inv := range investments {
		switch v := inv.(type) {
		case *Platform:
			s.Platforms++
			s.Value = s.Value.Add(convert(conv, v.Value(), cur))
		case *Asset:
			s.Assets++
			value := convert(conv, v.Value(), cur)
			s.Value = s.Value.Add(value)
			assetsValue = assetsValue.Add(value)
			s.Cost = s.Cost.Add(convert(conv, v.Cost(), cur))
		}
	}
	s.Gain = assetsValue.Sub(s.Cost)
	s.Return = percentOf(s.Gain, s.Cost)
	return s
}

// GoalProgress is how far a goal is from its target, in percent, capped at 100.
func GoalProgress(goal SavingsGoal, conv Converter, cur string) Percent {
	p := percentOf(convert(conv, goal.Current(), cur), convert(conv, goal.Target(), cur))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
