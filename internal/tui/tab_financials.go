package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/bizplan/internal/cli"
	"github.com/theirongolddev/bizplan/internal/model"
	"github.com/theirongolddev/bizplan/internal/pipeline"
	"github.com/theirongolddev/bizplan/internal/tui/components"
	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

const projectionAddedText = "Projection added!"

// financialsPage holds the in-progress projection row. Numeric inputs are
// kept as typed and parsed on submit.
type financialsPage struct {
	formHolder

	month    int
	year     string
	revenue  string
	expenses string
}

func newFinancialsPage() *financialsPage {
	p := &financialsPage{}
	p.reset()
	return p
}

func (p *financialsPage) reset() {
	p.month = model.MinMonth
	p.year = strconv.Itoa(model.DefaultYear)
	p.revenue = "0"
	p.expenses = "0"
}

// projection converts the form values into a row. Validators have already
// run; NewProjection clamps anything that slipped through.
func (p *financialsPage) projection() model.Projection {
	year, err := parseYear(p.year)
	if err != nil {
		year = model.DefaultYear
	}
	rev, _ := parseAmount(p.revenue)
	exp, _ := parseAmount(p.expenses)
	return model.NewProjection(year, p.month, rev, exp)
}

func monthOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, model.MaxMonth)
	for m := model.MinMonth; m <= model.MaxMonth; m++ {
		label := strconv.Itoa(m) + " · " + time.Month(m).String()
		opts = append(opts, huh.NewOption(label, m))
	}
	return opts
}

func (a App) buildFinancialsForm() *huh.Form {
	p := a.fin
	return newEmbeddedForm(a.formWidth(), huh.NewGroup(
		huh.NewSelect[int]().
			Title("Month").
			Options(monthOptions()...).
			Inline(true).
			Value(&p.month),
		huh.NewInput().
			Title("Year").
			Validate(validateYear).
			Value(&p.year),
		huh.NewInput().
			Title("Projected Revenue").
			Validate(validateAmount).
			Value(&p.revenue),
		huh.NewInput().
			Title("Projected Expenses").
			Validate(validateAmount).
			Value(&p.expenses),
		submitButton("Add Projection"),
	))
}

func (a App) updateFinancials(msg tea.Msg) (App, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !a.editing {
		return a, nil
	}

	cmd := forwardToForm(&a.fin.formHolder, msg)

	switch a.fin.form.State {
	case huh.StateCompleted:
		return a.addProjection()
	case huh.StateAborted:
		a.editing = false
		a.fin.reset()
		return a, a.rebuild(&a.fin.formHolder, a.buildFinancialsForm)
	}
	return a, cmd
}

// addProjection appends the submitted row and resets the form to defaults.
func (a App) addProjection() (App, tea.Cmd) {
	a.editing = false
	row := a.fin.projection()
	a.fin.reset()
	initCmd := a.rebuild(&a.fin.formHolder, a.buildFinancialsForm)

	var flashCmd tea.Cmd
	if err := a.sess.Store.AddProjection(row); err != nil {
		a, flashCmd = a.flashError("Adding projection", err)
		return a, tea.Batch(initCmd, flashCmd)
	}
	a.log.Info("projection added",
		zap.String("period", row.Period),
		zap.Float64("revenue", row.Revenue),
		zap.Float64("expenses", row.Expenses))

	a, flashCmd = a.setFlash(projectionAddedText, components.FlashSuccess)
	return a, tea.Batch(initCmd, flashCmd)
}

func (a App) renderFinancials(cw, h int) string {
	t := theme.Active

	formCard := components.ContentCard(formCardTitle(a.editing, "New Projection"), a.fin.form.View(), a.formWidth()+4)

	sideW := cw - lipgloss.Width(formCard)
	if a.isCompactLayout() {
		sideW = cw
	}

	var side string
	rows, err := a.sess.Store.Projections()
	switch {
	case err != nil:
		side = components.ContentCard("Projections",
			lipgloss.NewStyle().Foreground(t.Loss).Render("Could not read projections: "+err.Error()), sideW)
	case len(rows) == 0:
		side = components.ContentCard("Projections",
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No projections yet. Add one to see the chart."), sideW)
	default:
		series := pipeline.BuildSeries(rows)
		innerW := components.CardInnerWidth(sideW)
		chartH := h / 3
		if chartH < 8 {
			chartH = 8
		}
		chart := components.ProjectionChart(series.Labels, series.Revenue, series.Expenses, innerW, chartH)
		side = lipgloss.JoinVertical(lipgloss.Left,
			components.ContentCard(chartTitle(series), chart, sideW),
			components.ContentCard("All Projections", projectionTable(rows, innerW, h-chartH-8), sideW),
		)
	}

	var body string
	if a.isCompactLayout() {
		body = lipgloss.JoinVertical(lipgloss.Left, formCard, side)
	} else {
		body = components.CardRow([]string{formCard, side})
	}
	return pageTitle("Financial Projections") + "\n" + body
}

func chartTitle(s pipeline.Series) string {
	return "Revenue vs Expenses · " + cli.FormatNumber(int64(s.Len())) + " rows · peak " + cli.FormatMoney(s.Peak())
}

func projectionTable(rows []model.Projection, width, maxRows int) string {
	if maxRows < 3 {
		maxRows = 3
	}
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{strconv.Itoa(i), r.Period, cli.FormatAmount(r.Revenue), cli.FormatAmount(r.Expenses)}
	}
	tbl := components.NewDataTable([]components.Column{
		{Title: "#", Width: 4},
		{Title: "Month", Width: 9},
		{Title: "Revenue", Weight: 1},
		{Title: "Expenses", Weight: 1},
	}, data, width, maxRows)
	return tbl.View()
}
