// Package components provides reusable TUI widgets for the bizplan pages.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

// Metric is one labelled value shown in a MetricCardRow.
type Metric struct {
	Label string
	Value string
	Color lipgloss.Color // value color; zero means TextPrimary
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small bordered card with a label over a bold value.
// outerWidth is the total rendered width including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	valueColor := m.Color
	if valueColor == "" {
		valueColor = t.TextPrimary
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	valueStyle := lipgloss.NewStyle().
		Foreground(valueColor).
		Background(t.Surface).
		Bold(true)

	return cardStyle.Render(labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value))
}

// MetricCardRow renders metric cards side by side; their widths sum to
// totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}
	return CardRow(rendered)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardRow joins pre-rendered cards horizontally. Shorter cards are padded
// with the background color so the row has no unstyled gaps.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	t := theme.Active

	maxH := 0
	for _, c := range cards {
		if h := lipgloss.Height(c); h > maxH {
			maxH = h
		}
	}

	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.Place(lipgloss.Width(c), maxH, lipgloss.Left, lipgloss.Top, c,
			lipgloss.WithWhitespaceBackground(t.Background))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
