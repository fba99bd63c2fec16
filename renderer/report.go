package renderer

import (
	"slices"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
)

// HistoryEntry is one day of net worth history.
type HistoryEntry struct {
	Date   string
	Value  finanzas.Money
	Change finanzas.Money // since the previous entry, zero when the currency changed
}

// History is the net worth history in chronological order.
type History struct {
	Entries []HistoryEntry
}

// NewHistory sorts snapshots by date and computes the change between entries.
func NewHistory(snapshots map[string]finanzas.NetWorthSnapshot) History {
	dates := make([]string, 0, len(snapshots))
	for day := range snapshots {
		dates = append(dates, day)
	}
	// ISO dates sort chronologically.
	slices.Sort(dates)

	var h History
	for i, day := range dates {
		e := HistoryEntry{Date: day, Value: snapshots[day].Money()}
		if i > 0 {
			prev := h.Entries[i-1].Value
			if prev.Currency() == e.Value.Currency() {
				e.Change = e.Value.Sub(prev)
			}
		}
		h.Entries = append(h.Entries, e)
	}
	return h
}

// Report gathers every section of the published report.
type Report struct {
	Date       finanzas.Date
	Currency   string
	Index      finanzas.NautaIndex
	NetWorth   finanzas.NetWorth
	Ratios     finanzas.Ratios
	Insights   []finanzas.Insight
	Comparison finanzas.MonthComparison
	Projection []finanzas.CashflowMonth
	History    History
}

// NewReport computes every section of the report of data on the given day.
func NewReport(data finanzas.Data, conv finanzas.Converter, cur string, on finanzas.Date, snapshots map[string]finanzas.NetWorthSnapshot) *Report {
	return &Report{
		Date:       on,
		Currency:   cur,
		Index:      finanzas.CalculateNautaIndex(data, conv, cur),
		NetWorth:   finanzas.CalculateNetWorth(data, conv, cur),
		Ratios:     finanzas.CalculateRatios(data, conv, cur),
		Insights:   finanzas.GenerateInsights(data, conv, cur),
		Comparison: finanzas.CompareWithPreviousMonth(data.Transactions, conv, cur, on),
		Projection: finanzas.ProjectCashflow(data.Categories, data.Debts, data.Ynab, conv, cur, on),
		History:    NewHistory(snapshots),
	}
}
