package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bizplan/internal/cli"
	"github.com/theirongolddev/bizplan/internal/model"
	"github.com/theirongolddev/bizplan/internal/pipeline"
	"github.com/theirongolddev/bizplan/internal/tui/components"
	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

const noProfileText = "No business information entered yet"

func (a App) renderDashboard(cw, h int) string {
	t := theme.Active
	s := a.sess.Store

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Loss).Background(t.Surface)

	var b strings.Builder
	b.WriteString(pageTitle("Startup Dashboard"))
	b.WriteString("\n")

	// Business overview
	p, err := s.Profile()
	var overview string
	switch {
	case err != nil:
		overview = errStyle.Render("Could not read profile: " + err.Error())
	case p.Name == "":
		overview = dimStyle.Render(noProfileText)
	default:
		overview = textStyle.Render("Name: "+p.Name) + "\n" +
			textStyle.Render("Description: "+p.Description)
	}
	b.WriteString(components.ContentCard("Business Overview", overview, cw))
	b.WriteString("\n")

	// Financial summary, only when there is something to sum
	rows, rowsErr := s.Projections()
	hasRows, hasErr := s.HasProjections()
	if rowsErr == nil && hasErr == nil && hasRows {
		sum := pipeline.Aggregate(rows)
		profitColor := t.Revenue
		if sum.NetProfit < 0 {
			profitColor = t.Loss
		}
		b.WriteString(components.MetricCardRow([]components.Metric{
			{Label: "Total Projected Revenue", Value: cli.FormatMoney(sum.Revenue)},
			{Label: "Total Projected Expenses", Value: cli.FormatMoney(sum.Expenses)},
			{Label: "Net Profit", Value: cli.FormatMoney(sum.NetProfit), Color: profitColor},
		}, cw))
		b.WriteString("\n")

		series := pipeline.BuildSeries(rows)
		trend := fmt.Sprintf("%s %s\n%s %s",
			textStyle.Render("Revenue  "), components.Sparkline(series.Revenue, t.Revenue),
			textStyle.Render("Expenses "), components.Sparkline(series.Expenses, t.Expenses))
		b.WriteString(components.ContentCard("Trend (entry order)", trend, cw))
		b.WriteString("\n")
	}

	// Plan progress
	comps, compsErr := s.Competitors()
	var progress strings.Builder
	filled := 0
	if err == nil {
		for _, f := range model.ProfileFields {
			if strings.TrimSpace(p.Get(f)) != "" {
				filled++
			}
		}
	}
	barW := components.CardInnerWidth(cw) - 24
	if barW < 10 {
		barW = 10
	}
	progress.WriteString(components.CompletionBar("Profile fields", filled, len(model.ProfileFields), 16, barW))
	progress.WriteString("\n")
	progress.WriteString(countLine("Projections", len(rows), rowsErr))
	progress.WriteString("\n")
	progress.WriteString(countLine("Competitors", len(comps), compsErr))
	b.WriteString(components.ContentCard("Plan Progress", progress.String(), cw))

	return b.String()
}

func countLine(label string, n int, err error) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	if err != nil {
		return labelStyle.Render(fmt.Sprintf("%-16s ", label)) +
			lipgloss.NewStyle().Foreground(t.Loss).Background(t.Surface).Render("unavailable")
	}
	return labelStyle.Render(fmt.Sprintf("%-16s ", label)) + valueStyle.Render(cli.FormatNumber(int64(n)))
}
