package core

// Aggregation over ledger snapshots. Everything here is pure: same
// snapshot and parameters, same result.

type (
	// MonthTotals is one entry of a 12-month series.
	MonthTotals struct {
		Month   int   `json:"month"` // 1-12
		Living  int64 `json:"living"`
		Medical int64 `json:"medical"`
		Total   int64 `json:"total"`
	}

	// AnnualTotals is the fold of a monthly series.
	AnnualTotals struct {
		Total   int64 `json:"total"`
		Living  int64 `json:"living"`
		Medical int64 `json:"medical"`
	}
)

// LivingTotal sums stored totals across living-expense records.
func LivingTotal(items []LivingExpense) int64 {
	var sum int64
	for _, e := range items {
		sum += e.TotalPrice
	}
	return sum
}

// MedicalTotal sums prices across medical records.
func MedicalTotal(items []MedicalExpense) int64 {
	var sum int64
	for _, e := range items {
		sum += e.Price
	}
	return sum
}

// InitialTotal sums stored totals across initial-cost records.
func InitialTotal(items []InitialCost) int64 {
	var sum int64
	for _, c := range items {
		sum += c.TotalPrice
	}
	return sum
}

// IncomeTotal sums amounts across income records.
func IncomeTotal(items []Income) int64 {
	var sum int64
	for _, i := range items {
		sum += i.Amount
	}
	return sum
}

// CategoryBreakdown sums living-expense totals by category. All three
// categories are always present; zero-spend categories report zero so
// callers decide whether to drop them for display.
func CategoryBreakdown(items []LivingExpense) map[Category]int64 {
	breakdown := map[Category]int64{
		CategoryFood:   0,
		CategoryToy:    0,
		CategorySupply: 0,
	}
	for _, e := range items {
		breakdown[e.Category] += e.TotalPrice
	}
	return breakdown
}

// MonthlySeries buckets living and medical spending of one calendar year
// into exactly 12 entries, January through December. Records dated outside
// the year contribute nothing; any year value is accepted and a year with
// no records yields 12 zero entries.
func MonthlySeries(living []LivingExpense, medical []MedicalExpense, year int) []MonthTotals {
	series := make([]MonthTotals, 12)
	for i := range series {
		series[i].Month = i + 1
	}
	for _, e := range living {
		if e.Date.Year() == year {
			series[e.Date.Month()-1].Living += e.TotalPrice
		}
	}
	for _, e := range medical {
		if e.Date.Year() == year {
			series[e.Date.Month()-1].Medical += e.Price
		}
	}
	for i := range series {
		series[i].Total = series[i].Living + series[i].Medical
	}
	return series
}

// Annual folds a monthly series into year totals.
func Annual(series []MonthTotals) AnnualTotals {
	var totals AnnualTotals
	for _, m := range series {
		totals.Living += m.Living
		totals.Medical += m.Medical
		totals.Total += m.Total
	}
	return totals
}
