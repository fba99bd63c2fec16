package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/shopspring/decimal"
)

// outline is the structure of a markdown document.
type outline struct {
	headings []string
	rows     []int // number of body rows, per table
	items    int   // number of list items
}

// nodeText concatenates the text segments below n.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func parse(t *testing.T, doc string) outline {
	t.Helper()
	if strings.Contains(doc, "error ") && strings.Contains(doc, "template") {
		t.Fatalf("rendering failed: %s", doc)
	}
	source := []byte(doc)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	var o outline
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			o.headings = append(o.headings, nodeText(n, source))
		case *east.Table:
			rows := 0
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if _, ok := c.(*east.TableRow); ok {
					rows++
				}
			}
			o.rows = append(o.rows, rows)
		case *ast.ListItem:
			o.items++
		}
		return ast.WalkContinue, nil
	})
	return o
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func sample() finanzas.Data {
	return finanzas.Data{
		Categories: []finanzas.Category{
			{Name: "Rent", Budget: dec(500), Spent: dec(500), Currency: "EUR"},
			{Name: "Food", Budget: dec(200), Spent: dec(260), Currency: "EUR"},
		},
		Transactions: []finanzas.Transaction{
			{Date: finanzas.NewDate(2025, time.March, 3), Amount: dec(40), Currency: "EUR"},
			{Date: finanzas.NewDate(2025, time.February, 3), Amount: dec(20), Currency: "EUR"},
		},
		Debts: []finanzas.Debt{
			{Name: "Visa", Type: "Tarjeta de Crédito", CurrentBalance: dec(900), MonthlyPayment: dec(90), Currency: "EUR"},
		},
		SavingsGoals: []finanzas.SavingsGoal{{Name: "Fondo de Emergencia", CurrentAmount: dec(2100), Currency: "EUR"}},
		Investments:  finanzas.Investments{&finanzas.Platform{Name: "Broker", Balance: dec(1000), Currency: "EUR"}},
		Ynab:         finanzas.YnabConfig{MonthlyIncome: dec(3500), Currency: "EUR"},
	}
}

func TestRenderIndex(t *testing.T) {
	idx := finanzas.CalculateNautaIndex(sample(), finanzas.Identity, "EUR")
	doc := RenderIndex(idx)
	o := parse(t, doc)

	if len(o.headings) != 1 || !strings.HasPrefix(o.headings[0], "Nauta Index") {
		t.Errorf("headings = %q, want the index title", o.headings)
	}
	if len(o.rows) != 1 || o.rows[0] != 5 {
		t.Errorf("table rows = %v, want one table with 5 components", o.rows)
	}
	if got, want := o.items, 5; got != want {
		t.Errorf("detail items = %d, want %d", got, want)
	}
	if !strings.Contains(doc, "Visa") {
		t.Errorf("toxic debt names are missing:\n%s", doc)
	}
}

func TestRenderNetWorth(t *testing.T) {
	nw := finanzas.CalculateNetWorth(sample(), finanzas.Identity, "EUR")
	o := parse(t, RenderNetWorth(nw))
	if len(o.rows) != 1 || o.rows[0] != 4 {
		t.Errorf("table rows = %v, want [4]", o.rows)
	}
}

func TestRenderInsights(t *testing.T) {
	insights := finanzas.GenerateInsights(sample(), finanzas.Identity, "EUR")
	o := parse(t, RenderInsights(insights))
	if got, want := o.items, len(insights); got != want || want == 0 {
		t.Errorf("items = %d, want %d insights", got, want)
	}

	doc := RenderInsights(nil)
	if o := parse(t, doc); o.items != 0 || !strings.Contains(doc, "Nothing to report") {
		t.Errorf("empty insights rendered as:\n%s", doc)
	}
}

func TestRenderComparison(t *testing.T) {
	cmp := finanzas.CompareWithPreviousMonth(sample().Transactions, finanzas.Identity, "EUR", finanzas.NewDate(2025, time.March, 15))
	doc := RenderComparison(cmp)
	o := parse(t, doc)
	if len(o.rows) != 1 || o.rows[0] != 2 {
		t.Errorf("table rows = %v, want [2]", o.rows)
	}
	for _, want := range []string{"Feb 2025", "Mar 2025", "+100.00%", "up"} {
		if !strings.Contains(doc, want) {
			t.Errorf("comparison does not contain %q:\n%s", want, doc)
		}
	}
}

func TestRenderProjection(t *testing.T) {
	d := sample()
	months := finanzas.ProjectCashflow(d.Categories, d.Debts, d.Ynab, finanzas.Identity, "EUR", finanzas.NewDate(2025, time.March, 15))
	o := parse(t, RenderProjection(months))
	if len(o.rows) != 1 || o.rows[0] != finanzas.ProjectionMonths {
		t.Errorf("table rows = %v, want [%d]", o.rows, finanzas.ProjectionMonths)
	}
}

func TestRenderRatios(t *testing.T) {
	r := finanzas.CalculateRatios(sample(), finanzas.Identity, "EUR")
	doc := RenderRatios(r)
	o := parse(t, doc)
	if len(o.rows) != 1 || o.rows[0] != 4 {
		t.Errorf("table rows = %v, want [4]", o.rows)
	}
	if !strings.Contains(doc, "3.0 months") {
		t.Errorf("emergency fund months missing:\n%s", doc)
	}
}

func TestNewHistory(t *testing.T) {
	snapshots := map[string]finanzas.NetWorthSnapshot{
		"2025-03-02": {Value: 150, Currency: "EUR"},
		"2025-03-01": {Value: 100, Currency: "EUR"},
		"2025-03-03": {Value: 10, Currency: "USD"},
	}
	h := NewHistory(snapshots)
	var dates []string
	for _, e := range h.Entries {
		dates = append(dates, e.Date)
	}
	if got, want := strings.Join(dates, ","), "2025-03-01,2025-03-02,2025-03-03"; got != want {
		t.Errorf("dates = %s, want %s", got, want)
	}
	if got, want := h.Entries[1].Change, finanzas.M(50, "EUR"); !got.Equal(want) {
		t.Errorf("change = %v, want %v", got, want)
	}
	if !h.Entries[2].Change.IsZero() {
		t.Errorf("change across currencies = %v, want 0", h.Entries[2].Change)
	}

	o := parse(t, RenderHistory(h))
	if len(o.rows) != 1 || o.rows[0] != 3 {
		t.Errorf("table rows = %v, want [3]", o.rows)
	}
	if doc := RenderHistory(History{}); !strings.Contains(doc, "No snapshot") {
		t.Errorf("empty history rendered as:\n%s", doc)
	}
}

func TestRenderReport(t *testing.T) {
	on := finanzas.NewDate(2025, time.March, 15)
	r := NewReport(sample(), finanzas.Identity, "EUR", on, nil)
	o := parse(t, RenderReport(r))

	want := []string{"Financial Report 2025-03-15 (EUR)", "Nauta Index", "Net Worth", "Ratios", "Insights", "Month over Month", "Cashflow Projection"}
	if len(o.headings) != len(want) {
		t.Fatalf("headings = %q, want %q", o.headings, want)
	}
	for i, h := range want {
		if !strings.HasPrefix(o.headings[i], h) {
			t.Errorf("heading %d = %q, want prefix %q", i, o.headings[i], h)
		}
	}

	r.History = NewHistory(map[string]finanzas.NetWorthSnapshot{"2025-03-01": {Value: 1, Currency: "EUR"}})
	o = parse(t, RenderReport(r))
	if got := o.headings[len(o.headings)-1]; got != "Net Worth History" {
		t.Errorf("last heading = %q, want the history", got)
	}
}

func TestRenderRates(t *testing.T) {
	r := finanzas.NewRates("EUR").Set("USD", dec(1.08)).Set("CLP", dec(1030))
	doc := RenderRates(r)
	o := parse(t, doc)
	if len(o.rows) != 1 || o.rows[0] != 3 {
		t.Errorf("table rows = %v, want [3]", o.rows)
	}
	for _, want := range []string{"| EUR | 1 |", "| USD | 1.08 |", "| CLP | 1030 |"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}
