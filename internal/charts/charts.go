// Package charts renders aggregate views as PNG images. All data comes
// from the aggregator; nothing here touches the ledger directly.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"petledger/internal/core"
)

// Series selectors for the monthly chart, mirroring the filter buttons of
// the statistics view.
const (
	SeriesTotal   = "total"
	SeriesLiving  = "living"
	SeriesMedical = "medical"
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// RenderMonthlyBars draws a 12-bar chart of one year's spending. Returns
// (nil, nil) when the year has no spending at all.
func RenderMonthlyBars(series []core.MonthTotals, year int, selector string) ([]byte, error) {
	pick := func(m core.MonthTotals) int64 { return m.Total }
	switch selector {
	case SeriesTotal, "":
		// default
	case SeriesLiving:
		pick = func(m core.MonthTotals) int64 { return m.Living }
	case SeriesMedical:
		pick = func(m core.MonthTotals) int64 { return m.Medical }
	default:
		return nil, fmt.Errorf("unknown series selector: %s", selector)
	}

	var sum int64
	bars := make([]chart.Value, 0, len(series))
	for i, m := range series {
		v := pick(m)
		sum += v
		bars = append(bars, chart.Value{
			Label: monthLabels[i%12],
			Value: float64(v),
		})
	}
	if sum == 0 {
		return nil, nil
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Monthly spending %d", year),
		Width:    900,
		Height:   450,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render monthly chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// RenderCategoryPie draws the living-expense category split. Zero-spend
// categories are dropped from the pie; with no spending at all the result
// is (nil, nil).
func RenderCategoryPie(breakdown map[core.Category]int64) ([]byte, error) {
	values := make([]chart.Value, 0, len(breakdown))
	for _, c := range core.Categories() {
		if breakdown[c] > 0 {
			values = append(values, chart.Value{
				Label: string(c),
				Value: float64(breakdown[c]),
			})
		}
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  600,
		Height: 600,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    30,
				Left:   30,
				Right:  30,
				Bottom: 30,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}
