package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Page identifies one navigation entry.
type Page int

const (
	PageDashboard Page = iota
	PageBusinessPlan
	PageFinancials
	PageMarket
	PageExport
)

// Pages lists every page in navigation order.
var Pages = []Page{PageDashboard, PageBusinessPlan, PageFinancials, PageMarket, PageExport}

// String returns the page's display name.
func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "Dashboard"
	case PageBusinessPlan:
		return "Business Plan"
	case PageFinancials:
		return "Financial Projections"
	case PageMarket:
		return "Market Analysis"
	case PageExport:
		return "Export"
	default:
		return ""
	}
}

// ParsePage maps a display name back to its page.
func ParsePage(name string) (Page, bool) {
	for _, p := range Pages {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

func pageTitles() []string {
	names := make([]string, len(Pages))
	for i, p := range Pages {
		names[i] = p.String()
	}
	return names
}

// pageHandler binds a page to its render and update logic. enter runs
// when the page becomes active.
type pageHandler struct {
	render func(a App, width, height int) string
	update func(a App, msg tea.Msg) (App, tea.Cmd)
	enter  func(a App) (App, tea.Cmd)
	form   bool // page has an editable form
}

var routes map[Page]pageHandler

func init() {
	routes = map[Page]pageHandler{
		PageDashboard:    {render: App.renderDashboard},
		PageBusinessPlan: {render: App.renderPlan, update: App.updatePlan, form: true},
		PageFinancials:   {render: App.renderFinancials, update: App.updateFinancials, form: true},
		PageMarket:       {render: App.renderMarket, update: App.updateMarket, form: true},
		PageExport:       {render: App.renderExport, update: App.updateExport, enter: App.enterExport},
	}
}

// routeView renders the active page. Pages without a route render nothing.
func (a App) routeView(width, height int) string {
	h, ok := routes[a.page]
	if !ok || h.render == nil {
		return ""
	}
	return h.render(a, width, height)
}

// routeUpdate hands msg to the active page. Pages without a route ignore it.
func (a App) routeUpdate(msg tea.Msg) (App, tea.Cmd) {
	h, ok := routes[a.page]
	if !ok || h.update == nil {
		return a, nil
	}
	return h.update(a, msg)
}

// hasForm reports whether the active page edits through a form.
func (a App) hasForm() bool {
	return routes[a.page].form
}

// navigate switches to p. Switching to a page with no route is ignored.
func (a App) navigate(p Page) (App, tea.Cmd) {
	h, ok := routes[p]
	if !ok {
		return a, nil
	}
	if p != a.page {
		a.log.Debug("page changed", zap.Stringer("from", a.page), zap.Stringer("to", p))
	}
	a.page = p
	a.editing = false
	if h.enter != nil {
		return h.enter(a)
	}
	return a, nil
}

// step moves delta pages along Pages, wrapping at either end.
func (a App) step(delta int) (App, tea.Cmd) {
	idx := 0
	for i, p := range Pages {
		if p == a.page {
			idx = i
		}
	}
	n := len(Pages)
	return a.navigate(Pages[((idx+delta)%n+n)%n])
}
