package finanzas

// FundSource tells where an emergency fund amount was read from.
type FundSource string

const (
	FundFromPlatforms FundSource = "linkedPlatforms"
	FundFromPlatform  FundSource = "linkedPlatformId"
	FundFromGoal      FundSource = "currentAmount"
)

// EmergencyFund is the resolved emergency fund of a snapshot.
type EmergencyFund struct {
	Goal   SavingsGoal
	Amount Money // in the display currency
	Source FundSource
}

// FindEmergencyFund returns the first goal flagged as emergency fund, or else the first
// goal named like one.
func FindEmergencyFund(goals []SavingsGoal) (SavingsGoal, bool) {
	for _, g := range goals {
		if g.IsEmergencyFund {
			return g, true
		}
	}
	for _, g := range goals {
		if g.looksLikeEmergencyFund() {
			return g, true
		}
	}
	return SavingsGoal{}, false
}

// ResolveEmergencyFund locates the emergency fund and measures it in cur.
//
// The amount comes from the goal's linked platforms when there are any, else from the
// legacy single linked platform, else from the goal itself. Linked ids that match no
// platform count as 0.
func ResolveEmergencyFund(goals []SavingsGoal, investments Investments, conv Converter, cur string) (EmergencyFund, bool) {
	goal, ok := FindEmergencyFund(goals)
	if !ok {
		return EmergencyFund{Amount: M(0, cur)}, false
	}
	fund := EmergencyFund{Goal: goal, Amount: M(0, cur)}
	switch {
	case len(goal.LinkedPlatforms) > 0:
		fund.Source = FundFromPlatforms
		for _, id := range goal.LinkedPlatforms {
			if p, ok := investments.FindPlatform(id); ok {
				fund.Amount = fund.Amount.Add(convert(conv, p.Value(), cur))
			}
		}
	case goal.LinkedPlatformID != "":
		fund.Source = FundFromPlatform
		if p, ok := investments.FindPlatform(goal.LinkedPlatformID); ok {
			fund.Amount = convert(conv, p.Value(), cur)
		}
	default:
		fund.Source = FundFromGoal
		fund.Amount = convert(conv, goal.Current(), cur)
	}
	return fund, true
}

// months returns how many months of expenses the fund covers, 0 when expenses are 0.
func (f EmergencyFund) months(expenses Money) float64 {
	return f.Amount.Ratio(expenses)
}
