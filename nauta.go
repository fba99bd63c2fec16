package finanzas

import (
	"math"
	"strings"
)

// Component maxima. They add up to rawMax.
const (
	EmergencyFundMax = 20
	SavingsRateMax   = 20
	ToxicDebtsMax    = 10
	InsuranceMax     = 10
	RetirementMax    = 10

	rawMax = EmergencyFundMax + SavingsRateMax + ToxicDebtsMax + InsuranceMax + RetirementMax
)

const (
	// EmergencyFundTargetMonths is the months of expenses that earn the full emergency score.
	EmergencyFundTargetMonths = 6
	// SavingsRateTarget is the savings rate, in percent, that earns the full savings score.
	SavingsRateTarget = 20
	toxicDebtPenalty  = 2.5
)

// Statuses used by the index and its components.
const (
	StatusExcellent      = "Excellent"
	StatusGood           = "Good"
	StatusRegular        = "Regular"
	StatusCritical       = "Critical"
	StatusInsufficient   = "Insufficient"
	StatusImprovable     = "Improvable"
	StatusNoFund         = "No emergency fund"
	StatusNoExpenses     = "No expenses configured"
	StatusNoIncome       = "No income configured"
	StatusGoodProtection = "Good protection"
	StatusBasicProtected = "Basic protection"
	StatusNoProtection   = "No protection detected"
	StatusNoneDetected   = "None detected"
)

// NautaIndex is the composite financial health score, from 0 to 100.
type NautaIndex struct {
	Score     float64   `json:"score"` // Total rescaled to 0-100
	Total     float64   `json:"total"` // sum of the component scores, 0-70
	Breakdown Breakdown `json:"breakdown"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
}

// Breakdown holds the five components of the index.
type Breakdown struct {
	EmergencyFund EmergencyFundComponent `json:"emergencyFund"`
	SavingsRate   SavingsRateComponent   `json:"savingsRate"`
	ToxicDebts    ToxicDebtsComponent    `json:"toxicDebts"`
	Insurance     InsuranceComponent     `json:"insurance"`
	Retirement    RetirementComponent    `json:"retirement"`
}

// Component is the common part of every index component.
type Component struct {
	Score  float64 `json:"score"`
	Max    float64 `json:"max"`
	Status string  `json:"status"`
}

type EmergencyFundComponent struct {
	Component
	Goal          string  `json:"goal,omitempty"`
	Amount        Money   `json:"amount"`
	MonthsCovered float64 `json:"monthsCovered"`
	TargetMonths  float64 `json:"targetMonths"`
}

type SavingsRateComponent struct {
	Component
	Income   Money   `json:"income"`
	Expenses Money   `json:"expenses"`
	Savings  Money   `json:"savings"`
	Rate     Percent `json:"rate"`
}

type ToxicDebtsComponent struct {
	Component
	Count int      `json:"count"`
	Names []string `json:"names,omitempty"`
}

type InsuranceComponent struct {
	Component
	Health       bool `json:"health"`
	Life         bool `json:"life"`
	Catastrophic bool `json:"catastrophic"`
	FromConfig   bool `json:"fromConfig"`
}

type RetirementComponent struct {
	Component
	HasCategory   bool `json:"hasCategory"`
	HasInvestment bool `json:"hasInvestment"`
}

// Components returns the components in display order, with their names.
func (b Breakdown) Components() []NamedComponent {
	return []NamedComponent{
		{"Emergency fund", b.EmergencyFund.Component},
		{"Savings rate", b.SavingsRate.Component},
		{"Toxic debts", b.ToxicDebts.Component},
		{"Insurance", b.Insurance.Component},
		{"Retirement", b.Retirement.Component},
	}
}

// NamedComponent pairs a component with its display name.
type NamedComponent struct {
	Name string
	Component
}

// CalculateNautaIndex computes the composite financial health index of data, with all
// amounts converted to cur.
func CalculateNautaIndex(data Data, conv Converter, cur string) NautaIndex {
	expenses := monthlyExpenses(data.Categories, conv, cur)
	income := monthlyIncome(data.Ynab, conv, cur)

	var idx NautaIndex
	idx.Breakdown = Breakdown{
		EmergencyFund: emergencyFundScore(data, conv, cur, expenses),
		SavingsRate:   savingsRateScore(income, expenses),
		ToxicDebts:    toxicDebtsScore(data.Debts),
		Insurance:     insuranceScore(data.Categories, data.Insurance),
		Retirement:    retirementScore(data.Categories, data.Investments),
	}
	for _, c := range idx.Breakdown.Components() {
		idx.Total += c.Score
	}
	idx.Score = idx.Total / rawMax * 100
	idx.Status, idx.Message = overallStatus(idx.Score)
	return idx
}

func overallStatus(score float64) (status, message string) {
	switch {
	case score >= 80:
		return StatusExcellent, "Your finances are solid: keep your habits and review them every few months."
	case score >= 60:
		return StatusGood, "Your finances are healthy, with some room for improvement."
	case score >= 40:
		return StatusRegular, "Your finances are stable but vulnerable. Work on the weakest components first."
	default:
		return StatusCritical, "Your finances need attention. Start with an emergency fund and your toxic debts."
	}
}

func emergencyFundScore(data Data, conv Converter, cur string, expenses Money) EmergencyFundComponent {
	c := EmergencyFundComponent{
		Component:    Component{Max: EmergencyFundMax},
		Amount:       M(0, cur),
		TargetMonths: EmergencyFundTargetMonths,
	}
	fund, ok := ResolveEmergencyFund(data.SavingsGoals, data.Investments, conv, cur)
	if !ok {
		c.Status = StatusNoFund
		return c
	}
	c.Goal, c.Amount = fund.Goal.Name, fund.Amount
	if expenses.IsZero() {
		c.Status = StatusNoExpenses
		return c
	}
	c.MonthsCovered = fund.months(expenses)
	c.Score = clamp(c.MonthsCovered/EmergencyFundTargetMonths*EmergencyFundMax, EmergencyFundMax)
	switch {
	case c.MonthsCovered >= 6:
		c.Status = StatusExcellent
	case c.MonthsCovered >= 3:
		c.Status = StatusGood
	case c.MonthsCovered >= 1:
		c.Status = StatusRegular
	default:
		c.Status = StatusInsufficient
	}
	return c
}

func savingsRateScore(income, expenses Money) SavingsRateComponent {
	c := SavingsRateComponent{
		Component: Component{Max: SavingsRateMax},
		Income:    income,
		Expenses:  expenses,
		Savings:   income.Sub(expenses),
	}
	if !income.IsPositive() {
		c.Status = StatusNoIncome
		return c
	}
	c.Rate = percentOf(c.Savings, income)
	// a rate of SavingsRateTarget percent earns the full score, linearly.
	c.Score = clamp(float64(c.Rate)*SavingsRateMax/SavingsRateTarget, SavingsRateMax)
	switch {
	case c.Rate >= 20:
		c.Status = StatusExcellent
	case c.Rate >= 10:
		c.Status = StatusGood
	case c.Rate >= 5:
		c.Status = StatusRegular
	default:
		c.Status = StatusInsufficient
	}
	return c
}

func toxicDebtsScore(debts []Debt) ToxicDebtsComponent {
	toxic := ToxicDebts(debts)
	c := ToxicDebtsComponent{
		Component: Component{Max: ToxicDebtsMax},
		Count:     len(toxic),
	}
	for _, d := range toxic {
		c.Names = append(c.Names, d.Name)
	}
	c.Score = clamp(ToxicDebtsMax-float64(c.Count)*toxicDebtPenalty, ToxicDebtsMax)
	switch {
	case c.Count == 0:
		c.Status = StatusExcellent
	case c.Count <= 2:
		c.Status = StatusImprovable
	default:
		c.Status = StatusCritical
	}
	return c
}

var (
	healthKeywords       = []string{"médico", "salud", "complementario", "isapre"}
	catastrophicKeywords = []string{"catastróf", "ges"}
)

// detectInsurance scans category names for insurance premiums.
func detectInsurance(categories []Category) (health, life, catastrophic bool) {
	for _, cat := range categories {
		name := strings.ToLower(cat.Name)
		if !strings.Contains(name, "seguro") {
			continue
		}
		health = health || containsAny(name, healthKeywords)
		life = life || strings.Contains(name, "vida")
		catastrophic = catastrophic || containsAny(name, catastrophicKeywords)
	}
	return
}

func insuranceScore(categories []Category, config *InsuranceConfig) InsuranceComponent {
	c := InsuranceComponent{Component: Component{Max: InsuranceMax}}
	if config.any() {
		c.FromConfig = true
		c.Health = config.HasHealthInsurance
		c.Life = config.HasLifeInsurance
		c.Catastrophic = config.HasCatastrophicInsurance
	}
	health, life, catastrophic := detectInsurance(categories)
	c.Health = c.Health || health
	c.Life = c.Life || life
	c.Catastrophic = c.Catastrophic || catastrophic

	var points float64
	if c.Health {
		points += 4
	}
	if c.Catastrophic {
		points += 3
	}
	if c.Life {
		points += 3
	}
	c.Score = clamp(points, InsuranceMax)
	switch {
	case c.Score >= 7:
		c.Status = StatusGoodProtection
	case c.Score >= 4:
		c.Status = StatusBasicProtected
	default:
		c.Status = StatusNoProtection
	}
	return c
}

var retirementKeywords = []string{"apv", "previsional", "pensión", "afp"}

func retirementScore(categories []Category, investments Investments) RetirementComponent {
	c := RetirementComponent{Component: Component{Max: RetirementMax}}
	for _, cat := range categories {
		if containsAny(strings.ToLower(cat.Name), retirementKeywords) {
			c.HasCategory = true
			break
		}
	}
	for _, inv := range investments {
		if inv == nil {
			continue
		}
		if strings.Contains(strings.ToLower(inv.InvestmentName()), "apv") || strings.EqualFold(inv.InvestmentType(), "apv") {
			c.HasInvestment = true
			break
		}
	}
	var points float64
	if c.HasCategory {
		points += 5
	}
	if c.HasInvestment {
		points += 5
	}
	c.Score = clamp(points, RetirementMax)
	switch {
	case c.Score >= 10:
		c.Status = StatusExcellent
	case c.Score >= 5:
		c.Status = StatusGood
	default:
		c.Status = StatusNoneDetected
	}
	return c
}

// clamp bounds v to [0, limit]. NaN is 0.
func clamp(v, limit float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, limit)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
