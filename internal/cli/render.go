package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Flexoki Dark accents for command output.
var (
	colorBorder = lipgloss.Color("#403E3C")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	captionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	headerCell = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	valueCell = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	// Tabs are kept as typed so exported values stay verbatim.
	plainCell = lipgloss.NewStyle().
			Padding(0, 1).
			TabWidth(lipgloss.NoTabConversion)
)

// Table is a captioned table for command output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// PlainTable returns an ASCII table with unstyled cells, suitable for files.
func PlainTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers(headers...).
		StyleFunc(func(_, _ int) lipgloss.Style { return plainCell })
}

// RenderTitle renders title in a rounded box.
func RenderTitle(title string) string {
	return titleStyle.Render(title)
}

// RenderTable renders t with rounded borders and an accented header row.
// A table with neither headers nor rows renders as "".
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return valueCell
		})

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(captionStyle.Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(tbl.String())
	b.WriteString("\n")
	return b.String()
}
