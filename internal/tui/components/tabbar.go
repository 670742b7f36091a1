package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

// tabSeparator sits between adjacent tabs and is one column wide.
const tabSeparator = "│"

func tabLabel(i int, name string) string {
	return strconv.Itoa(i+1) + " " + name
}

func tabStyles(t theme.Theme) (active, inactive, key lipgloss.Style) {
	active = lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)
	inactive = lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)
	key = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)
	return active, inactive, key
}

// TabVisualWidth returns the rendered width of tab i. Active and inactive
// tabs share the same width so hitboxes never move.
func TabVisualWidth(i int, name string) int {
	return lipgloss.Width(tabLabel(i, name)) + 2
}

// RenderTabBar renders a single-line tab bar. Each tab shows its number
// shortcut before the name.
func RenderTabBar(names []string, activeIdx, width int) string {
	t := theme.Active
	activeStyle, inactiveStyle, keyStyle := tabStyles(t)
	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)

	parts := make([]string, 0, len(names))
	for i, name := range names {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tabLabel(i, name)))
			continue
		}
		num := keyStyle.Render(strconv.Itoa(i + 1))
		parts = append(parts, inactiveStyle.Render(num+inactiveStyle.UnsetPadding().Render(" "+name)))
	}

	row := strings.Join(parts, sepStyle.Render(tabSeparator))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).MaxWidth(width).Render(row)
}

// TabAtX returns the index of the tab under column x, or -1.
func TabAtX(names []string, x int) int {
	pos := 0
	for i, name := range names {
		w := TabVisualWidth(i, name)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + lipgloss.Width(tabSeparator)
	}
	return -1
}
