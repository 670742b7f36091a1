package components

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

const expensesDataSet = "expenses"

// seriesEpoch anchors index-based points on the chart's time axis.
// Point i is drawn at seriesEpoch + i days.
var seriesEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

const pointSpacing = 24 * time.Hour

func indexTime(i int) time.Time {
	return seriesEpoch.Add(time.Duration(i) * pointSpacing)
}

// indexAt maps an x-axis value back to a point index. ok is false when v
// does not fall on a point.
func indexAt(v float64, n int) (int, bool) {
	offset := (v - float64(seriesEpoch.Unix())) / pointSpacing.Seconds()
	i := int(math.Round(offset))
	if i < 0 || i >= n || math.Abs(offset-float64(i)) > 0.25 {
		return 0, false
	}
	return i, true
}

// ProjectionChart renders revenue and expenses as two braille lines.
// Points are spaced by their position in the slices, not by date; labels[i]
// names point i on the x axis.
func ProjectionChart(labels []string, revenue, expenses []float64, width, height int) string {
	n := len(labels)
	if n == 0 || len(revenue) != n || len(expenses) != n {
		return ""
	}
	t := theme.Active
	if width < 20 {
		width = 20
	}
	if height < 6 {
		height = 6
	}

	peak := 0.0
	for i := 0; i < n; i++ {
		peak = math.Max(peak, math.Max(revenue[i], expenses[i]))
	}
	if peak == 0 {
		peak = 1
	}
	ceiling := math.Ceil(peak/chartTickStep(peak)) * chartTickStep(peak)

	start, end := indexTime(0), indexTime(n-1)
	if n == 1 {
		start, end = indexTime(-1), indexTime(1)
	}

	chart := tslc.New(width, height)
	chart.SetXStep(2)
	chart.SetYStep(2)
	chart.AxisStyle = lipgloss.NewStyle().Foreground(t.Border)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(t.TextDim)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, ceiling)
	chart.SetViewYRange(0, ceiling)
	chart.Model.XLabelFormatter = indexLabelFormatter(labels)
	chart.Model.YLabelFormatter = func(_ int, v float64) string {
		return formatChartLabel(v)
	}

	chart.SetStyle(lipgloss.NewStyle().Foreground(t.Revenue))
	chart.SetDataSetStyle(expensesDataSet, lipgloss.NewStyle().Foreground(t.Expenses))
	for i := 0; i < n; i++ {
		chart.Push(tslc.TimePoint{Time: indexTime(i), Value: revenue[i]})
		chart.PushDataSet(expensesDataSet, tslc.TimePoint{Time: indexTime(i), Value: expenses[i]})
	}
	chart.DrawBrailleAll()

	return chart.View() + "\n" + chartLegend()
}

func indexLabelFormatter(labels []string) linechart.LabelFormatter {
	return func(_ int, v float64) string {
		i, ok := indexAt(v, len(labels))
		if !ok {
			return ""
		}
		return labels[i]
	}
}

func chartLegend() string {
	t := theme.Active
	rev := lipgloss.NewStyle().Foreground(t.Revenue).Render("━━ Revenue")
	exp := lipgloss.NewStyle().Foreground(t.Expenses).Render("━━ Expenses")
	return rev + "   " + exp
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
