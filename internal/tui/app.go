// Package tui provides the interactive Bubble Tea workbench for bizplan.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/bizplan/internal/session"
	"github.com/theirongolddev/bizplan/internal/tui/components"
	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

// Options configures a new App.
type Options struct {
	ExportDir string
	StartPage Page
}

// flashExpiredMsg clears the status-bar message it was scheduled for.
type flashExpiredMsg struct{ seq int }

type flash struct {
	text string
	kind components.FlashKind
	seq  int
}

// App is the root Bubble Tea model.
type App struct {
	sess      *session.Session
	log       *zap.Logger
	exportDir string

	// UI state
	width    int
	height   int
	page     Page
	editing  bool // keys go to the active page's form
	showHelp bool
	flash    flash

	// Per-page state. Pointers keep form bindings stable across App copies.
	plan   *planPage
	fin    *financialsPage
	market *marketPage
	export *exportPage

	startCmd tea.Cmd // from entering the start page, run by Init
}

const (
	minTerminalWidth = 60
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
	flashDuration    = 4 * time.Second
)

// NewApp creates the TUI model for sess. The session stays owned by the
// caller and must outlive the program.
func NewApp(sess *session.Session, opts Options) App {
	a := App{
		sess:      sess,
		log:       sess.Log,
		exportDir: opts.ExportDir,
		page:      PageDashboard,
		fin:       newFinancialsPage(),
		market:    newMarketPage(),
		export:    newExportPage(),
		plan:      &planPage{},
	}
	if a.exportDir == "" {
		a.exportDir = "."
	}
	a.plan.form = a.buildPlanForm()
	a.fin.form = a.buildFinancialsForm()
	a.market.form = a.buildMarketForm()
	a, a.startCmd = a.navigate(opts.StartPage)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		a.plan.form.Init(),
		a.fin.form.Init(),
		a.market.form.Init(),
		a.startCmd,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeForms()
		a.export.resize(a.contentWidth(), a.contentHeight())
		return a, nil

	case flashExpiredMsg:
		if msg.seq == a.flash.seq {
			a.flash.text = ""
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if i := components.TabAtX(pageTitles(), msg.X); i >= 0 {
				return a.navigate(Pages[i])
			}
			return a, nil
		}
		return a.routeUpdate(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Form plumbing (field focus, submit, cursor blink) goes to the active page.
	return a.routeUpdate(msg)
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// While editing, every key except esc belongs to the form.
	if a.editing {
		if key == "esc" {
			a.editing = false
			return a, nil
		}
		return a.routeUpdate(msg)
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// Dismiss help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "left", "shift+tab", "h":
		return a.step(-1)
	case "right", "tab", "l":
		return a.step(1)
	case "1", "2", "3", "4", "5":
		return a.navigate(Pages[int(key[0]-'1')])
	}

	if a.hasForm() && (key == "enter" || key == "e" || key == "i") {
		a.editing = true
		return a, textinput.Blink
	}

	return a.routeUpdate(msg)
}

// setFlash shows text in the status bar until flashDuration passes or a
// newer message replaces it.
func (a App) setFlash(text string, kind components.FlashKind) (App, tea.Cmd) {
	a.flash.seq++
	a.flash.text = text
	a.flash.kind = kind
	seq := a.flash.seq
	return a, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}

func (a App) flashError(context string, err error) (App, tea.Cmd) {
	a.log.Error(context, zap.Error(err))
	return a.setFlash(context+": "+err.Error(), components.FlashError)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) contentHeight() int {
	h := a.height - 2 // tab bar + status bar
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// formWidth is the width of the form column on form pages.
func (a App) formWidth() int {
	cw := a.contentWidth()
	if cw == 0 {
		return 0
	}
	if a.isCompactLayout() {
		return cw - 4
	}
	return cw/2 - 4
}

func (a App) resizeForms() {
	w := a.formWidth()
	if w <= 0 {
		return
	}
	size := tea.WindowSizeMsg{Width: w, Height: a.contentHeight()}
	for _, h := range []*formHolder{&a.plan.formHolder, &a.fin.formHolder, &a.market.formHolder} {
		if h.form == nil {
			continue
		}
		h.form = h.form.WithWidth(w)
		h.form.Update(size)
	}
}

// rebuild replaces h's form with a fresh one from build, sized for the
// current window, and returns the form's init command.
func (a App) rebuild(h *formHolder, build func() *huh.Form) tea.Cmd {
	h.form = build()
	if w := a.formWidth(); w > 0 {
		h.form = h.form.WithWidth(w)
	}
	return h.form.Init()
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  bizplan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1-5", "Jump to page"},
			{"← → / tab", "Previous / Next page"},
			{"click", "Select page in tab bar"},
		}},
		{"Forms", []struct{ key, desc string }{
			{"enter / e", "Start editing"},
			{"tab", "Next field (while editing)"},
			{"enter", "Submit on last field"},
			{"esc", "Stop editing"},
		}},
		{"Export", []struct{ key, desc string }{
			{"enter / d", "Write plan to export dir"},
			{"↑ ↓", "Scroll preview"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q / ^c", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	switch {
	case a.editing:
		return "[esc]done  [tab]next field  [enter]submit on last field"
	case a.page == PageExport:
		return "[enter]save  [↑↓]scroll  [←→]pages  [?]help  [q]uit"
	case a.hasForm():
		return "[enter]edit  [←→]pages  [?]help  [q]uit"
	default:
		return "[1-5]pages  [?]help  [q]uit"
	}
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header and status bar
	header := components.RenderTabBar(pageTitles(), int(a.page), w)
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.flash.text, a.flash.kind)

	// 2. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 3. Page content, exactly contentH lines
	content := a.routeView(cw, contentH)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// pageTitle renders the heading line at the top of a page.
func pageTitle(text string) string {
	t := theme.Active
	return lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
