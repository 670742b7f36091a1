package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/bizplan/internal/cli"
	"github.com/theirongolddev/bizplan/internal/model"
	"github.com/theirongolddev/bizplan/internal/tui/components"
	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

const competitorAddedText = "Competitor added!"

// marketPage holds the market inputs. Market size and growth rate exist
// only here: they are never written to the store or exported.
type marketPage struct {
	formHolder

	marketSize string
	growthRate string

	name       string
	strengths  string
	weaknesses string
}

func newMarketPage() *marketPage {
	return &marketPage{marketSize: "0", growthRate: "0"}
}

// clearCompetitor empties the competitor inputs and keeps market values.
func (p *marketPage) clearCompetitor() {
	p.name, p.strengths, p.weaknesses = "", "", ""
}

func (p *marketPage) competitor() model.Competitor {
	return model.Competitor{Name: p.name, Strengths: p.strengths, Weaknesses: p.weaknesses}
}

func (a App) buildMarketForm() *huh.Form {
	p := a.market
	return newEmbeddedForm(a.formWidth(), huh.NewGroup(
		huh.NewInput().
			Title("Estimated Market Size ($)").
			Validate(validateAmount).
			Value(&p.marketSize),
		huh.NewInput().
			Title("Expected Growth Rate (%)").
			Validate(validatePercent).
			Value(&p.growthRate),
		huh.NewInput().
			Title("Competitor Name").
			Value(&p.name),
		huh.NewText().
			Title("Competitor Strengths").
			Lines(2).
			Value(&p.strengths),
		huh.NewText().
			Title("Competitor Weaknesses").
			Lines(2).
			Value(&p.weaknesses),
		submitButton("Add Competitor"),
	))
}

func (a App) updateMarket(msg tea.Msg) (App, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !a.editing {
		return a, nil
	}

	cmd := forwardToForm(&a.market.formHolder, msg)

	switch a.market.form.State {
	case huh.StateCompleted:
		return a.addCompetitor()
	case huh.StateAborted:
		a.editing = false
		a.market.clearCompetitor()
		return a, a.rebuild(&a.market.formHolder, a.buildMarketForm)
	}
	return a, cmd
}

// addCompetitor appends the competitor as entered, blank fields included.
func (a App) addCompetitor() (App, tea.Cmd) {
	a.editing = false
	c := a.market.competitor()
	a.market.clearCompetitor()
	initCmd := a.rebuild(&a.market.formHolder, a.buildMarketForm)

	var flashCmd tea.Cmd
	if err := a.sess.Store.AddCompetitor(c); err != nil {
		a, flashCmd = a.flashError("Adding competitor", err)
		return a, tea.Batch(initCmd, flashCmd)
	}
	a.log.Info("competitor added", zap.String("name", c.Name))

	a, flashCmd = a.setFlash(competitorAddedText, components.FlashSuccess)
	return a, tea.Batch(initCmd, flashCmd)
}

func (a App) renderMarket(cw, h int) string {
	t := theme.Active

	formCard := components.ContentCard(formCardTitle(a.editing, "Market & Competitors"), a.market.form.View(), a.formWidth()+4)

	sideW := cw - lipgloss.Width(formCard)
	if a.isCompactLayout() {
		sideW = cw
	}

	size := "—"
	if v, err := parseAmount(a.market.marketSize); err == nil {
		size = cli.FormatMoney(v)
	}
	growth := "—"
	if v, err := parsePercent(a.market.growthRate); err == nil {
		growth = cli.FormatPercent(v)
	}
	overview := components.MetricCardRow([]components.Metric{
		{Label: "Estimated Market Size", Value: size},
		{Label: "Expected Growth Rate", Value: growth},
	}, sideW)

	var compCard string
	comps, err := a.sess.Store.Competitors()
	switch {
	case err != nil:
		compCard = components.ContentCard("Competitors",
			lipgloss.NewStyle().Foreground(t.Loss).Render("Could not read competitors: "+err.Error()), sideW)
	case len(comps) == 0:
		compCard = components.ContentCard("Competitors",
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No competitors yet."), sideW)
	default:
		compCard = components.ContentCard("Competitors",
			competitorTable(comps, components.CardInnerWidth(sideW), h-12), sideW)
	}

	side := lipgloss.JoinVertical(lipgloss.Left, overview, compCard)

	var body string
	if a.isCompactLayout() {
		body = lipgloss.JoinVertical(lipgloss.Left, formCard, side)
	} else {
		body = components.CardRow([]string{formCard, side})
	}
	return pageTitle("Market Analysis") + "\n" + body
}

func competitorTable(comps []model.Competitor, width, maxRows int) string {
	if maxRows < 3 {
		maxRows = 3
	}
	data := make([][]string, len(comps))
	for i, c := range comps {
		data[i] = []string{strconv.Itoa(i), c.Name, c.Strengths, c.Weaknesses}
	}
	tbl := components.NewDataTable([]components.Column{
		{Title: "#", Width: 4},
		{Title: "Competitor", Weight: 1},
		{Title: "Strengths", Weight: 2},
		{Title: "Weaknesses", Weight: 2},
	}, data, width, maxRows)
	return tbl.View()
}
