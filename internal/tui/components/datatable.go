package components

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

// Column describes one data table column. Weight shares out the width
// left after fixed columns; Width > 0 pins the column.
type Column struct {
	Title  string
	Width  int
	Weight int
}

// NewDataTable builds a read-only bubbles table sized to width and showing
// at most maxRows rows before scrolling.
func NewDataTable(cols []Column, rows [][]string, width, maxRows int) table.Model {
	tcols := columnWidths(cols, width)

	trows := make([]table.Row, len(rows))
	for i, r := range rows {
		trows[i] = table.Row(r)
	}

	h := len(rows)
	if h > maxRows {
		h = maxRows
	}
	if h < 1 {
		h = 1
	}

	tbl := table.New(
		table.WithColumns(tcols),
		table.WithRows(trows),
		table.WithFocused(false),
	)
	tbl.SetStyles(dataTableStyles())
	tbl.SetWidth(width)
	// SetHeight subtracts the two header lines (title + rule).
	tbl.SetHeight(h + 2)
	return tbl
}

func dataTableStyles() table.Styles {
	t := theme.Active
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(t.TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true)
	s.Cell = s.Cell.Foreground(t.TextPrimary)
	s.Selected = lipgloss.NewStyle().Foreground(t.TextPrimary)
	return s
}

// columnWidths resolves weighted columns against the available width.
// Each cell carries 2 columns of padding in the bubbles table renderer.
func columnWidths(cols []Column, width int) []table.Column {
	avail := width - 2*len(cols)
	weights := 0
	for _, c := range cols {
		if c.Width > 0 {
			avail -= c.Width
		} else {
			weights += max(c.Weight, 1)
		}
	}

	out := make([]table.Column, len(cols))
	for i, c := range cols {
		w := c.Width
		if w <= 0 {
			w = avail * max(c.Weight, 1) / max(weights, 1)
			if w < 6 {
				w = 6
			}
		}
		out[i] = table.Column{Title: c.Title, Width: w}
	}
	return out
}
