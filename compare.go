package finanzas

// Trend is the direction of a change.
type Trend string

const (
	TrendUp    Trend = "up"
	TrendDown  Trend = "down"
	TrendEqual Trend = "equal"
)

// Bucket totals the transactions of one month.
type Bucket struct {
	Month Date  `json:"month"` // first day of the month
	Total Money `json:"total"`
	Count int   `json:"count"`
}

// MonthComparison compares the month of a date with the month before.
type MonthComparison struct {
	CurrentMonth     Bucket  `json:"currentMonth"`
	LastMonth        Bucket  `json:"lastMonth"`
	Difference       Money   `json:"difference"`
	PercentageChange Percent `json:"percentageChange"`
	Trend            Trend   `json:"trend"`
}

// CompareWithPreviousMonth sums transactions of the calendar month of on and of the
// previous calendar month, converted to cur. Transactions in other months are ignored.
func CompareWithPreviousMonth(txs []Transaction, conv Converter, cur string, on Date) MonthComparison {
	current := Bucket{Month: on.StartOfMonth(), Total: M(0, cur)}
	last := Bucket{Month: on.AddMonth(-1), Total: M(0, cur)}
	for _, tx := range txs {
		switch {
		case tx.Date.SameMonth(current.Month):
			current.Total = current.Total.Add(convert(conv, tx.Money(), cur))
			current.Count++
		case tx.Date.SameMonth(last.Month):
			last.Total = last.Total.Add(convert(conv, tx.Money(), cur))
			last.Count++
		}
	}

	cmp := MonthComparison{
		CurrentMonth: current,
		LastMonth:    last,
		Difference:   current.Total.Sub(last.Total),
	}
	cmp.PercentageChange = percentOf(cmp.Difference, last.Total)
	switch {
	case cmp.Difference.IsPositive():
		cmp.Trend = TrendUp
	case cmp.Difference.IsNegative():
		cmp.Trend = TrendDown
	default:
		cmp.Trend = TrendEqual
	}
	return cmp
}
