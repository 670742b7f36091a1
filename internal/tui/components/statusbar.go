package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

// FlashKind selects the color of a status bar message.
type FlashKind int

const (
	FlashInfo FlashKind = iota
	FlashSuccess
	FlashError
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the current flash message, if any, on the right.
func RenderStatusBar(width int, hints, flash string, kind FlashKind) string {
	t := theme.Active

	base := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := base.Foreground(t.TextDim)

	flashColor := t.TextMuted
	switch kind {
	case FlashSuccess:
		flashColor = t.Revenue
	case FlashError:
		flashColor = t.Loss
	}
	flashStyle := base.Foreground(flashColor).Bold(true)

	left := hintStyle.Render(" " + hints)
	right := ""
	if flash != "" {
		right = flashStyle.Render(flash + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Flash wins over hints when space is short.
		left = ""
		padding = width - lipgloss.Width(right)
		if padding < 0 {
			padding = 0
		}
	}

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		MaxWidth(width).
		Render(left + base.Render(strings.Repeat(" ", padding)) + right)
}
