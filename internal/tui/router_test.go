package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPageNamesRoundTrip(t *testing.T) {
	want := []string{"Dashboard", "Business Plan", "Financial Projections", "Market Analysis", "Export"}
	if len(Pages) != len(want) {
		t.Fatalf("len(Pages) = %d, want %d", len(Pages), len(want))
	}
	for i, p := range Pages {
		if p.String() != want[i] {
			t.Errorf("Pages[%d] = %q, want %q", i, p.String(), want[i])
		}
		got, ok := ParsePage(want[i])
		if !ok || got != p {
			t.Errorf("ParsePage(%q) = %v, %v", want[i], got, ok)
		}
	}
	if _, ok := ParsePage("Settings"); ok {
		t.Error("ParsePage(Settings) ok = true, want false")
	}
	if got := Page(99).String(); got != "" {
		t.Errorf("Page(99).String() = %q, want empty", got)
	}
}

func TestEveryPageHasARoute(t *testing.T) {
	for _, p := range Pages {
		h, ok := routes[p]
		if !ok || h.render == nil {
			t.Errorf("page %v has no render route", p)
		}
	}
	for _, p := range []Page{PageBusinessPlan, PageFinancials, PageMarket} {
		if !routes[p].form {
			t.Errorf("page %v should be a form page", p)
		}
	}
}

func TestUnknownPageRendersNothing(t *testing.T) {
	a := newTestApp(t)
	a.page = Page(99)

	if got := a.routeView(100, 20); got != "" {
		t.Fatalf("routeView() = %q, want empty", got)
	}
	b, cmd := a.routeUpdate(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("routeUpdate() returned a command for an unknown page")
	}
	if b.page != Page(99) || b.editing {
		t.Fatalf("routeUpdate() changed state: page=%v editing=%v", b.page, b.editing)
	}
}

func TestNavigateIgnoresUnknownPage(t *testing.T) {
	a := newTestApp(t)
	a, _ = a.navigate(PageMarket)
	a, _ = a.navigate(Page(99))
	if a.page != PageMarket {
		t.Fatalf("page = %v, want %v", a.page, PageMarket)
	}
}

func TestStepWraps(t *testing.T) {
	a := newTestApp(t)

	a, _ = a.step(-1)
	if a.page != PageExport {
		t.Fatalf("step(-1) from Dashboard = %v, want Export", a.page)
	}
	a, _ = a.step(1)
	if a.page != PageDashboard {
		t.Fatalf("step(1) from Export = %v, want Dashboard", a.page)
	}
}
