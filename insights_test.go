package finanzas

import (
	"strings"
	"testing"
)

func titles(insights []Insight) []string {
	var res []string
	for _, in := range insights {
		res = append(res, in.Title)
	}
	return res
}

func TestGenerateInsights_Empty(t *testing.T) {
	if got := GenerateInsights(Data{}, Identity, "EUR"); len(got) != 0 {
		t.Errorf("GenerateInsights() = %v, want none", titles(got))
	}
}

func TestGenerateInsights_OverBudget(t *testing.T) {
	tests := []struct {
		name   string
		budget float64
		spent  float64
		want   bool
	}{
		{"under", 100, 80, false},
		{"exactly", 100, 100, false},
		{"over", 100, 130, true},
		{"no budget with spending", 0, 10, true},
		{"no budget no spending", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Category{Name: "Food", Budget: dec(tt.budget), Spent: dec(tt.spent), Currency: "EUR"}
			in, got := overBudgetInsight(c)
			if got != tt.want {
				t.Fatalf("overBudgetInsight() flagged = %v, want %v", got, tt.want)
			}
			if !got {
				return
			}
			if in.Priority != High || in.Type != InsightWarning {
				t.Errorf("insight = %s/%s, want high/warning", in.Priority, in.Type)
			}
			if tt.budget == 0 && !strings.Contains(in.Message, "no budget") {
				t.Errorf("message %q does not mention the missing budget", in.Message)
			}
		})
	}
}

func TestGenerateInsights_OverBudgetMessage(t *testing.T) {
	c := Category{Name: "Food", Budget: dec(100), Spent: dec(130), Currency: "EUR"}
	in, _ := overBudgetInsight(c)
	if want := "130%"; !strings.Contains(in.Message, want) {
		t.Errorf("message = %q, want it to contain %q", in.Message, want)
	}
}

func TestGenerateInsights_SavingsRate(t *testing.T) {
	tests := []struct {
		name      string
		income    float64
		budgeted  float64
		wantTitle string
		wantPrio  Priority
	}{
		{"low", 1000, 950, "Low savings rate", High},
		{"negative", 1000, 1200, "Low savings rate", High},
		{"average", 1000, 800, "", ""},
		{"high", 1000, 500, "Excellent savings rate", Low},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Data{
				Categories: []Category{{Name: "Living", Budget: dec(tt.budgeted), Currency: "EUR"}},
				Ynab:       YnabConfig{MonthlyIncome: dec(tt.income), Currency: "EUR"},
			}
			in, ok := savingsInsight(data, Identity, "EUR")
			if tt.wantTitle == "" {
				if ok {
					t.Errorf("savingsInsight() = %q, want none", in.Title)
				}
				return
			}
			if !ok {
				t.Fatalf("savingsInsight() = none, want %q", tt.wantTitle)
			}
			if in.Title != tt.wantTitle || in.Priority != tt.wantPrio {
				t.Errorf("savingsInsight() = %q/%s, want %q/%s", in.Title, in.Priority, tt.wantTitle, tt.wantPrio)
			}
		})
	}
}

func TestGenerateInsights_NoIncomeUsesBudget(t *testing.T) {
	// without income the surplus is -budgeted, measured against the budget itself.
	data := Data{Categories: []Category{{Name: "Living", Budget: dec(500), Currency: "EUR"}}}
	in, ok := savingsInsight(data, Identity, "EUR")
	if !ok || in.Title != "Low savings rate" {
		t.Errorf("savingsInsight() = %q, %v; want Low savings rate", in.Title, ok)
	}
}

func TestGenerateInsights_Order(t *testing.T) {
	data := Data{
		Categories: []Category{
			{Name: "Food", Budget: dec(100), Spent: dec(150), Currency: "EUR"},
			{Name: "Rent", Budget: dec(400), Spent: dec(400), Currency: "EUR"},
			{Name: "Fun", Budget: dec(0), Spent: dec(20), Currency: "EUR"},
		},
		Debts: []Debt{{Name: "Visa", Type: "Tarjeta de Crédito"}},
		Ynab:  YnabConfig{MonthlyIncome: dec(1000), Currency: "EUR"},
	}
	got := titles(GenerateInsights(data, Identity, "EUR"))
	want := []string{"Over budget: Food", "Over budget: Fun", "Toxic debts", "Excellent savings rate"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("GenerateInsights() = %q, want %q", got, want)
	}
}

func TestGenerateInsights_ToxicCount(t *testing.T) {
	data := Data{Debts: []Debt{
		{Name: "Visa", Type: "Tarjeta de Crédito"},
		{Name: "Loan", Type: "Préstamo Personal"},
		{Name: "House", Type: "Hipotecario"},
	}}
	insights := GenerateInsights(data, Identity, "EUR")
	if len(insights) != 1 {
		t.Fatalf("GenerateInsights() = %q, want one insight", titles(insights))
	}
	if in := insights[0]; in.Type != InsightDanger || !strings.Contains(in.Message, "2 toxic") {
		t.Errorf("insight = %s %q, want danger about 2 toxic debts", in.Type, in.Message)
	}
}
