// Package widgets holds the chart rendering used by the app's optional
// stats panel.
package widgets

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/spicylist/internal/liststate"
)

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))

// HeatChart renders average heat per cuisine as a bar chart. Bars appear in
// first-seen cuisine order, matching the collection. Returns "" when there
// is nothing to chart.
func HeatChart(rows []liststate.Record, width, height int) string {
	if len(rows) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range rows {
		sums[r.Cuisine] += r.HeatLevel
		counts[r.Cuisine]++
	}

	bc := barchart.New(width, height)
	for _, cuisine := range liststate.Cuisines(rows) {
		avg := float64(sums[cuisine]) / float64(counts[cuisine])
		bc.Push(barchart.BarData{
			Label: cuisine,
			Values: []barchart.BarValue{
				{Name: cuisine, Value: avg, Style: barStyle},
			},
		})
	}
	bc.Draw()
	return bc.View()
}
