package finanzas

import (
	"fmt"
	"math"
	"slices"
)

// Priority ranks insights; high comes first.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case High:
		return 0
	case Medium:
		return 1
	default:
		return 2
	}
}

// Insight types.
const (
	InsightWarning = "warning"
	InsightDanger  = "danger"
	InsightSuccess = "success"
	InsightInfo    = "info"
)

// Insight is a short piece of advice derived from the snapshot.
type Insight struct {
	Type     string   `json:"type"`
	Icon     string   `json:"icon"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
}

// Savings rate thresholds of the savings insight, as ratios.
const (
	lowSavingsRate  = 0.10
	highSavingsRate = 0.30
)

// GenerateInsights returns the insights of data, high priority first. Insights of equal
// priority keep the order they were generated in: categories, savings, debts.
func GenerateInsights(data Data, conv Converter, cur string) []Insight {
	var insights []Insight

	for _, c := range data.Categories {
		if in, ok := overBudgetInsight(c); ok {
			insights = append(insights, in)
		}
	}

	if in, ok := savingsInsight(data, conv, cur); ok {
		insights = append(insights, in)
	}

	if n := len(ToxicDebts(data.Debts)); n > 0 {
		insights = append(insights, Insight{
			Type:     InsightDanger,
			Icon:     "🚨",
			Title:    "Toxic debts",
			Message:  fmt.Sprintf("You have %d toxic debt(s). Pay them off first: they cost the most interest.", n),
			Priority: High,
		})
	}

	slices.SortStableFunc(insights, func(a, b Insight) int {
		return a.Priority.rank() - b.Priority.rank()
	})
	return insights
}

// overBudgetInsight flags a category that spent more than its budget. A category with
// no budget but some spending is over budget by an unbounded percentage.
func overBudgetInsight(c Category) (Insight, bool) {
	if !c.Spent.IsPositive() {
		return Insight{}, false
	}
	if !c.Budget.IsPositive() {
		return Insight{
			Type:     InsightWarning,
			Icon:     "⚠️",
			Title:    "Over budget: " + c.Name,
			Message:  fmt.Sprintf("%s has %s of spending but no budget assigned.", c.Name, c.SpentMoney()),
			Priority: High,
		}, true
	}
	percent := percentOf(c.SpentMoney(), c.BudgetMoney())
	if percent <= 100 {
		return Insight{}, false
	}
	return Insight{
		Type:     InsightWarning,
		Icon:     "⚠️",
		Title:    "Over budget: " + c.Name,
		Message:  fmt.Sprintf("%s is at %.0f%% of its budget.", c.Name, math.Round(float64(percent))),
		Priority: High,
	}, true
}

// savingsInsight compares what is left of the income to the income. When no income is
// configured the budgeted total is used instead.
func savingsInsight(data Data, conv Converter, cur string) (Insight, bool) {
	totals := data.totals(conv, cur)
	base := monthlyIncome(data.Ynab, conv, cur)
	if base.IsZero() {
		base = convert(conv, totals.Budgeted, cur)
	}
	if base.IsZero() {
		return Insight{}, false
	}
	rate := convert(conv, totals.Available, cur).Ratio(base)
	switch {
	case rate < lowSavingsRate:
		return Insight{
			Type:     InsightWarning,
			Icon:     "📉",
			Title:    "Low savings rate",
			Message:  fmt.Sprintf("You are saving %.1f%% of your income. Aim for at least 10%%.", rate*100),
			Priority: High,
		}, true
	case rate > highSavingsRate:
		return Insight{
			Type:     InsightSuccess,
			Icon:     "🎉",
			Title:    "Excellent savings rate",
			Message:  fmt.Sprintf("You are saving %.1f%% of your income.", rate*100),
			Priority: Low,
		}, true
	default:
		return Insight{}, false
	}
}
