package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

// ColorForPct returns a completion color: low is a loss color, full is the
// revenue color.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Revenue)
	case pct >= 0.5:
		return string(t.Warn)
	default:
		return string(t.Loss)
	}
}

// CompletionBar renders a labeled progress bar with a done/total count.
func CompletionBar(label string, done, total, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		countStyle.Render(fmt.Sprintf("%d/%d", done, total))
}
