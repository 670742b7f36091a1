package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/bizplan/internal/model"
	"github.com/theirongolddev/bizplan/internal/tui/components"
	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

const planSavedText = "Business plan saved successfully!"

type planPage struct {
	formHolder
}

// planFieldTitles are the form titles for each profile field.
var planFieldTitles = map[model.ProfileField]string{
	model.FieldName:        "Business Name",
	model.FieldDescription: "Business Description",
	model.FieldMission:     "Mission Statement",
	model.FieldVision:      "Vision Statement",
}

func (a App) profileField(f model.ProfileField) *profileAccessor {
	return &profileAccessor{store: a.sess.Store, field: f, log: a.log}
}

func (a App) buildPlanForm() *huh.Form {
	return newEmbeddedForm(a.formWidth(), huh.NewGroup(
		huh.NewInput().
			Title(planFieldTitles[model.FieldName]).
			Accessor(a.profileField(model.FieldName)),
		huh.NewText().
			Title(planFieldTitles[model.FieldDescription]).
			Lines(3).
			Accessor(a.profileField(model.FieldDescription)),
		huh.NewText().
			Title(planFieldTitles[model.FieldMission]).
			Lines(2).
			Accessor(a.profileField(model.FieldMission)),
		huh.NewText().
			Title(planFieldTitles[model.FieldVision]).
			Lines(2).
			Accessor(a.profileField(model.FieldVision)),
		submitButton("Save Business Plan"),
	))
}

func (a App) updatePlan(msg tea.Msg) (App, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !a.editing {
		return a, nil
	}

	cmd := forwardToForm(&a.plan.formHolder, msg)

	switch a.plan.form.State {
	case huh.StateCompleted:
		return a.savePlan()
	case huh.StateAborted:
		a.editing = false
		return a, a.rebuild(&a.plan.formHolder, a.buildPlanForm)
	}
	return a, cmd
}

// savePlan acknowledges the save action. Fields were already written to
// the store as they were typed.
func (a App) savePlan() (App, tea.Cmd) {
	a.editing = false
	initCmd := a.rebuild(&a.plan.formHolder, a.buildPlanForm)

	p, err := a.sess.Store.Profile()
	if err != nil {
		var flashCmd tea.Cmd
		a, flashCmd = a.flashError("Reading profile", err)
		return a, tea.Batch(initCmd, flashCmd)
	}
	a.log.Info("profile saved", zap.String("name", p.Name))

	var flashCmd tea.Cmd
	a, flashCmd = a.setFlash(planSavedText, components.FlashSuccess)
	return a, tea.Batch(initCmd, flashCmd)
}

func (a App) renderPlan(cw, h int) string {
	t := theme.Active

	formCard := components.ContentCard(formCardTitle(a.editing, "Business Plan"), a.plan.form.View(), a.formWidth()+4)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var preview strings.Builder
	p, err := a.sess.Store.Profile()
	if err != nil {
		preview.WriteString(dimStyle.Render("Could not read profile: " + err.Error()))
	} else {
		for i, f := range model.ProfileFields {
			if i > 0 {
				preview.WriteString("\n\n")
			}
			preview.WriteString(labelStyle.Render(f.Label()))
			preview.WriteString("\n")
			if v := p.Get(f); v != "" {
				preview.WriteString(valueStyle.Render(v))
			} else {
				preview.WriteString(dimStyle.Render("(empty)"))
			}
		}
	}

	var body string
	if a.isCompactLayout() {
		body = lipgloss.JoinVertical(lipgloss.Left, formCard,
			components.ContentCard("Saved Profile", preview.String(), cw))
	} else {
		previewW := cw - lipgloss.Width(formCard)
		body = components.CardRow([]string{formCard,
			components.ContentCard("Saved Profile", preview.String(), previewW)})
	}
	return pageTitle("Business Plan") + "\n" + body
}
