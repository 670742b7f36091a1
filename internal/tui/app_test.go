package tui

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/theirongolddev/bizplan/internal/model"
	"github.com/theirongolddev/bizplan/internal/report"
	"github.com/theirongolddev/bizplan/internal/session"
	"github.com/theirongolddev/bizplan/internal/store"
	"github.com/theirongolddev/bizplan/internal/tui/components"
)

func newTestAppWithLogs(t *testing.T) (App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	sess, err := session.New(store.BackendMemory, zap.New(core))
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	t.Cleanup(func() { _ = sess.Close() })

	a := NewApp(sess, Options{ExportDir: t.TempDir()})
	a.Init()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return m.(App), logs
}

func newTestApp(t *testing.T) App {
	t.Helper()
	a, _ := newTestAppWithLogs(t)
	return a
}

func send(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update() returned %T, want App", m)
	}
	return app, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var cmdSliceType = reflect.TypeOf([]tea.Cmd(nil))

// press sends each key through Update and then drains the resulting
// commands the way the program loop would, feeding their messages back in.
// Commands that do not finish promptly (timers, cursor blink) are dropped.
func press(t *testing.T, a App, keys ...tea.KeyMsg) App {
	t.Helper()
	for _, k := range keys {
		var cmd tea.Cmd
		a, cmd = send(t, a, k)
		a = drain(t, a, cmd)
	}
	return a
}

func drain(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("command queue did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		done := make(chan tea.Msg, 1)
		go func() { done <- next() }()
		var msg tea.Msg
		select {
		case msg = <-done:
		case <-time.After(50 * time.Millisecond):
			continue
		}

		switch m := msg.(type) {
		case nil, tea.QuitMsg:
			continue
		case tea.BatchMsg:
			queue = append(queue, m...)
			continue
		}
		if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().ConvertibleTo(cmdSliceType) {
			queue = append(queue, v.Convert(cmdSliceType).Interface().([]tea.Cmd)...)
			continue
		}

		var out tea.Cmd
		a, out = send(t, a, msg)
		queue = append(queue, out)
	}
	return a
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestKeyboardNavigation(t *testing.T) {
	a := newTestApp(t)
	if a.page != PageDashboard {
		t.Fatalf("initial page = %v, want Dashboard", a.page)
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.page != PageBusinessPlan {
		t.Fatalf("right -> %v, want Business Plan", a.page)
	}
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.page != PageExport {
		t.Fatalf("left twice -> %v, want Export", a.page)
	}
	a, _ = send(t, a, runes("3"))
	if a.page != PageFinancials {
		t.Fatalf("3 -> %v, want Financial Projections", a.page)
	}
}

func TestNavigationLogsPageChange(t *testing.T) {
	a, logs := newTestAppWithLogs(t)
	_, _ = send(t, a, runes("4"))

	entries := logs.FilterMessage("page changed").All()
	if len(entries) != 1 {
		t.Fatalf("page changed entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["to"]; got != "Market Analysis" {
		t.Fatalf("to = %v, want Market Analysis", got)
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := newTestApp(t)
	names := pageTitles()

	x := 0
	for i := 0; i < int(PageMarket); i++ {
		x += components.TabVisualWidth(i, names[i]) + 1
	}
	x++ // inside the Market tab

	a, _ = send(t, a, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.page != PageMarket {
		t.Fatalf("click at x=%d -> %v, want Market Analysis", x, a.page)
	}

	// Clicks below the tab bar never switch pages.
	a, _ = send(t, a, tea.MouseMsg{X: 1, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.page != PageMarket {
		t.Fatalf("content click switched page to %v", a.page)
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)

	a, _ = send(t, a, runes("?"))
	if !a.showHelp {
		t.Fatal("? did not open help")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Fatal("help view missing title")
	}
	a, _ = send(t, a, runes("x"))
	if a.showHelp {
		t.Fatal("any key should close help")
	}
	if a.page != PageDashboard {
		t.Fatalf("closing help changed page to %v", a.page)
	}
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t)

	_, cmd := send(t, a, runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}

	a, _ = send(t, a, runes("2"))
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command while editing")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c did not quit while editing")
	}
}

func TestEditingModeCapturesKeys(t *testing.T) {
	a := newTestApp(t)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.editing {
		t.Fatal("enter on the dashboard started editing")
	}

	a, _ = send(t, a, runes("2"))
	a, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if !a.editing {
		t.Fatal("enter on Business Plan did not start editing")
	}
	if cmd == nil {
		t.Fatal("start editing returned no blink command")
	}

	// Navigation keys are text while editing.
	a, _ = send(t, a, runes("3"))
	if a.page != PageBusinessPlan {
		t.Fatalf("typing 3 while editing switched page to %v", a.page)
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.editing {
		t.Fatal("esc did not stop editing")
	}
	a, _ = send(t, a, runes("3"))
	if a.page != PageFinancials {
		t.Fatalf("3 after esc -> %v, want Financial Projections", a.page)
	}
}

func TestPlanFieldsBindLive(t *testing.T) {
	a := newTestApp(t)

	a, _ = send(t, a, runes("2"))
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a, _ = send(t, a, runes("Acme"))

	p, err := a.sess.Store.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Acme" {
		t.Fatalf("profile name = %q, want %q without submitting", p.Name, "Acme")
	}

	// The dashboard reads the same store.
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a, _ = send(t, a, runes("1"))
	if !strings.Contains(a.View(), "Name: Acme") {
		t.Fatal("dashboard does not show the typed name")
	}
}

func TestPlanSaveFlashes(t *testing.T) {
	a := newTestApp(t)
	a, _ = a.navigate(PageBusinessPlan)
	a.editing = true

	a.plan.form.State = huh.StateCompleted
	a, cmd := a.updatePlan(struct{}{})
	if cmd == nil {
		t.Fatal("save returned no command")
	}
	if a.editing {
		t.Fatal("still editing after save")
	}
	if a.flash.text != planSavedText || a.flash.kind != components.FlashSuccess {
		t.Fatalf("flash = %+v, want %q success", a.flash, planSavedText)
	}
	if a.plan.form.State != huh.StateNormal {
		t.Fatal("plan form was not rebuilt after save")
	}
}

func TestDashboardEmpty(t *testing.T) {
	a := newTestApp(t)
	view := a.View()

	if !strings.Contains(view, noProfileText) {
		t.Fatal("empty dashboard missing placeholder")
	}
	if strings.Contains(view, "Total Projected Revenue") {
		t.Fatal("empty dashboard shows financial summary")
	}
}

func TestDashboardTotals(t *testing.T) {
	a := newTestApp(t)
	if err := a.sess.Store.AddProjection(model.NewProjection(2025, 1, 2500, 1000)); err != nil {
		t.Fatal(err)
	}

	view := a.View()
	for _, want := range []string{"Total Projected Revenue", "$2,500.00", "$1,000.00", "$1,500.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestAddProjectionResetsForm(t *testing.T) {
	a := newTestApp(t)
	a, _ = a.navigate(PageFinancials)

	submit := func(month int, year, rev, exp string) {
		t.Helper()
		a.editing = true
		a.fin.month = month
		a.fin.year = year
		a.fin.revenue = rev
		a.fin.expenses = exp
		a.fin.form.State = huh.StateCompleted
		a, _ = a.updateFinancials(struct{}{})
	}

	submit(3, "2026", "2,500", "1000")
	submit(1, "2025", "$100", "40.5")

	rows, err := a.sess.Store.Projections()
	if err != nil {
		t.Fatal(err)
	}
	want := []model.Projection{
		{Period: "2026-03", Revenue: 2500, Expenses: 1000},
		{Period: "2025-01", Revenue: 100, Expenses: 40.5},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("rows[%d] = %+v, want %+v", i, rows[i], want[i])
		}
	}

	if a.flash.text != projectionAddedText {
		t.Fatalf("flash = %q, want %q", a.flash.text, projectionAddedText)
	}
	if a.editing {
		t.Fatal("still editing after submit")
	}
	if a.fin.month != 1 || a.fin.year != "2025" || a.fin.revenue != "0" || a.fin.expenses != "0" {
		t.Fatalf("form not reset: %+v", *a.fin)
	}
	if !strings.Contains(a.View(), "2026-03") {
		t.Fatal("financials page does not list the new row")
	}
}

func TestAddCompetitorKeepsMarketInputs(t *testing.T) {
	a := newTestApp(t)
	a, _ = a.navigate(PageMarket)

	a.market.marketSize = "5000000"
	a.market.growthRate = "12.5"
	a.market.form.State = huh.StateCompleted
	a, _ = a.updateMarket(struct{}{})

	a.market.name = "Globex"
	a.market.strengths = "scale"
	a.market.form.State = huh.StateCompleted
	a, _ = a.updateMarket(struct{}{})

	comps, err := a.sess.Store.Competitors()
	if err != nil {
		t.Fatal(err)
	}
	want := []model.Competitor{{}, {Name: "Globex", Strengths: "scale"}}
	if len(comps) != len(want) || comps[0] != want[0] || comps[1] != want[1] {
		t.Fatalf("competitors = %+v, want %+v", comps, want)
	}

	if a.market.marketSize != "5000000" || a.market.growthRate != "12.5" {
		t.Fatalf("market inputs cleared: size=%q growth=%q", a.market.marketSize, a.market.growthRate)
	}
	if a.market.name != "" || a.market.strengths != "" {
		t.Fatal("competitor inputs not cleared")
	}
	if a.flash.text != competitorAddedText {
		t.Fatalf("flash = %q, want %q", a.flash.text, competitorAddedText)
	}

	view := a.View()
	for _, want := range []string{"$5,000,000.00", "12.5%", "Globex"} {
		if !strings.Contains(view, want) {
			t.Errorf("market page missing %q", want)
		}
	}
}

func TestExportWritesFile(t *testing.T) {
	a, logs := newTestAppWithLogs(t)
	if err := a.sess.Store.SetProfileField(model.FieldName, "Acme"); err != nil {
		t.Fatal(err)
	}

	a, _ = send(t, a, runes("5"))
	if a.export.artifact.Filename != "Acme"+report.FilenameSuffix {
		t.Fatalf("filename = %q", a.export.artifact.Filename)
	}
	if !strings.Contains(a.View(), "Preview") {
		t.Fatal("export page missing preview")
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.export.lastPath == "" {
		t.Fatalf("nothing written; flash = %q", a.flash.text)
	}
	if filepath.Dir(a.export.lastPath) != a.exportDir {
		t.Fatalf("written to %q, want dir %q", a.export.lastPath, a.exportDir)
	}
	data, err := os.ReadFile(a.export.lastPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Business Plan\n\n## Company Overview\nName: Acme\n") {
		t.Fatalf("unexpected export:\n%s", data)
	}
	if a.flash.kind != components.FlashSuccess {
		t.Fatalf("flash kind = %v, want success", a.flash.kind)
	}
	if logs.FilterMessage("export written").Len() != 1 {
		t.Fatal("export not logged")
	}
}

func TestFlashExpiry(t *testing.T) {
	a := newTestApp(t)
	a, _ = a.setFlash("first", components.FlashInfo)
	stale := a.flash.seq
	a, _ = a.setFlash("second", components.FlashInfo)

	a, _ = send(t, a, flashExpiredMsg{seq: stale})
	if a.flash.text != "second" {
		t.Fatalf("stale expiry cleared flash: %q", a.flash.text)
	}
	a, _ = send(t, a, flashExpiredMsg{seq: a.flash.seq})
	if a.flash.text != "" {
		t.Fatalf("flash = %q, want cleared", a.flash.text)
	}
}

func TestTooNarrow(t *testing.T) {
	a := newTestApp(t)
	a, _ = send(t, a, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(a.View(), "Terminal too narrow") {
		t.Fatal("narrow terminal not reported")
	}
}

func TestEveryPageRendersWithinHeight(t *testing.T) {
	a := newTestApp(t)
	for _, p := range Pages {
		a, _ = a.navigate(p)
		view := a.View()
		if got := strings.Count(view, "\n") + 1; got != a.height {
			t.Errorf("%v: %d lines, want %d", p, got, a.height)
		}
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) error
		in   string
		ok   bool
	}{
		{"amount plain", validateAmount, "1500", true},
		{"amount dollars", validateAmount, "$1,500.25", true},
		{"amount negative", validateAmount, "-1", false},
		{"amount text", validateAmount, "abc", false},
		{"amount empty", validateAmount, "", false},
		{"amount nan", validateAmount, "NaN", false},
		{"percent", validatePercent, "12.5%", true},
		{"percent negative", validatePercent, "-3", false},
		{"year ok", validateYear, "2025", true},
		{"year low", validateYear, "2024", false},
		{"year fraction", validateYear, "2025.5", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("%q: err = %v, want ok=%v", tt.in, err, tt.ok)
			}
		})
	}
}

func TestStartPage(t *testing.T) {
	sess, err := session.New(store.BackendSQLite, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = sess.Close() })

	a := NewApp(sess, Options{StartPage: PageExport})
	if a.page != PageExport {
		t.Fatalf("page = %v, want Export", a.page)
	}
	if a.export.artifact.Filename != report.FilenameSuffix {
		t.Fatalf("filename = %q, want %q", a.export.artifact.Filename, report.FilenameSuffix)
	}
	if a.exportDir != "." {
		t.Fatalf("exportDir = %q, want %q", a.exportDir, ".")
	}
}

func TestStartPageErrorSchedulesExpiry(t *testing.T) {
	sess, err := session.New(store.BackendSQLite, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.Store.Close(); err != nil {
		t.Fatal(err)
	}

	a := NewApp(sess, Options{StartPage: PageExport})
	if a.flash.kind != components.FlashError || !strings.HasPrefix(a.flash.text, "Building export") {
		t.Fatalf("flash = %+v, want export error", a.flash)
	}
	if a.startCmd == nil {
		t.Fatal("start page error has no expiry command")
	}
	if a.Init() == nil {
		t.Fatal("Init() returned nil")
	}

	a, _ = send(t, a, flashExpiredMsg{seq: a.flash.seq})
	if a.flash.text != "" {
		t.Fatalf("flash = %q after expiry, want empty", a.flash.text)
	}
}

func TestStartPageWithoutErrorHasNoStartCommand(t *testing.T) {
	a := newTestApp(t)
	if a.startCmd != nil {
		t.Fatal("dashboard start produced a command")
	}
}

func TestAddProjectionWithKeys(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a,
		runes("3"),
		keyPress(tea.KeyEnter), // start editing
		keyPress(tea.KeyTab),   // month
		keyPress(tea.KeyTab),   // year
		keyPress(tea.KeyBackspace), runes("2500"), keyPress(tea.KeyTab),
		keyPress(tea.KeyBackspace), runes("1000"), keyPress(tea.KeyTab),
		keyPress(tea.KeyEnter), // Add Projection
	)

	rows, err := a.sess.Store.Projections()
	if err != nil {
		t.Fatal(err)
	}
	want := model.Projection{Period: "2025-01", Revenue: 2500, Expenses: 1000}
	if len(rows) != 1 || rows[0] != want {
		t.Fatalf("rows = %+v, want [%+v]", rows, want)
	}
	if a.flash.text != projectionAddedText {
		t.Fatalf("flash = %q, want %q", a.flash.text, projectionAddedText)
	}
	if a.editing {
		t.Fatal("still editing after submit")
	}
	if a.fin.revenue != "0" || a.fin.expenses != "0" || a.fin.form.State != huh.StateNormal {
		t.Fatalf("form not reset: %+v", *a.fin)
	}
}

func TestAddProjectionWithKeysRejectsBadAmount(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a,
		runes("3"),
		keyPress(tea.KeyEnter),
		keyPress(tea.KeyTab),
		keyPress(tea.KeyTab),
		keyPress(tea.KeyBackspace), runes("lots"), keyPress(tea.KeyTab),
		keyPress(tea.KeyTab),
		keyPress(tea.KeyEnter),
	)

	if ok, err := a.sess.Store.HasProjections(); err != nil || ok {
		t.Fatalf("HasProjections() = %v, %v; want false", ok, err)
	}
	if !a.editing {
		t.Fatal("editing ended on an invalid amount")
	}
}

func TestAddCompetitorWithKeys(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a,
		runes("4"),
		keyPress(tea.KeyEnter),
		keyPress(tea.KeyTab), // market size
		keyPress(tea.KeyTab), // growth rate
		keyPress(tea.KeyTab), // name
		keyPress(tea.KeyTab), // strengths
		keyPress(tea.KeyTab), // weaknesses
		keyPress(tea.KeyEnter),
	)

	comps, err := a.sess.Store.Competitors()
	if err != nil {
		t.Fatal(err)
	}
	if len(comps) != 1 || comps[0] != (model.Competitor{}) {
		t.Fatalf("competitors = %+v, want one blank competitor", comps)
	}
	if a.flash.text != competitorAddedText {
		t.Fatalf("flash = %q, want %q", a.flash.text, competitorAddedText)
	}
}

func TestSavePlanWithKeys(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a,
		runes("2"),
		keyPress(tea.KeyEnter),
		runes("Acme"), keyPress(tea.KeyTab),
		keyPress(tea.KeyTab),
		keyPress(tea.KeyTab),
		keyPress(tea.KeyTab),
		keyPress(tea.KeyEnter),
	)

	if a.flash.text != planSavedText {
		t.Fatalf("flash = %q, want %q", a.flash.text, planSavedText)
	}
	if a.editing {
		t.Fatal("still editing after save")
	}
	p, err := a.sess.Store.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Acme" {
		t.Fatalf("profile name = %q, want Acme", p.Name)
	}
}
