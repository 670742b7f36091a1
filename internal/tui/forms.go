package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/theirongolddev/bizplan/internal/model"
	"github.com/theirongolddev/bizplan/internal/store"
	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

// profileAccessor binds a form field directly to one profile field in the
// store. huh calls Set on every keystroke, so there is no draft copy.
type profileAccessor struct {
	store store.Store
	field model.ProfileField
	log   *zap.Logger
}

var _ huh.Accessor[string] = (*profileAccessor)(nil)

func (p *profileAccessor) Get() string {
	prof, err := p.store.Profile()
	if err != nil {
		p.log.Warn("reading profile", zap.Error(err))
		return ""
	}
	return prof.Get(p.field)
}

func (p *profileAccessor) Set(value string) {
	if err := p.store.SetProfileField(p.field, value); err != nil {
		p.log.Warn("writing profile field",
			zap.String("field", p.field.Label()), zap.Error(err))
	}
}

var (
	errNotNumber  = errors.New("enter a number")
	errNotYear    = errors.New("enter a whole year")
	errNegative   = errors.New("must be 0 or more")
	errYearTooLow = fmt.Errorf("must be %d or later", model.MinYear)
)

// parseAmount parses a decimal number, tolerating a leading
// "$" and thousands separators.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, errNotNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotNumber
	}
	return v, nil
}

func validateAmount(s string) error {
	v, err := parseAmount(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return errNegative
	}
	return nil
}

func parsePercent(s string) (float64, error) {
	return parseAmount(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

func validatePercent(s string) error {
	v, err := parsePercent(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return errNegative
	}
	return nil
}

func parseYear(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errNotYear
	}
	return n, nil
}

func validateYear(s string) error {
	n, err := parseYear(s)
	if err != nil {
		return err
	}
	if n < model.MinYear {
		return errYearTooLow
	}
	return nil
}

// submitButton is a single-button confirm used as a form's final action.
func submitButton(label string) *huh.Confirm {
	return huh.NewConfirm().Affirmative(label).Negative("")
}

// newEmbeddedForm wraps groups in a form styled for the active theme.
func newEmbeddedForm(width int, groups ...*huh.Group) *huh.Form {
	f := huh.NewForm(groups...).
		WithTheme(theme.Form(theme.Active)).
		WithShowHelp(true)
	if width > 0 {
		f = f.WithWidth(width)
	}
	return f
}

// formHolder is embedded by every page that edits through a huh form.
type formHolder struct {
	form *huh.Form
}

// forwardToForm passes msg to h's form and keeps the updated model.
func forwardToForm(h *formHolder, msg tea.Msg) tea.Cmd {
	m, cmd := h.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		h.form = f
	}
	return cmd
}

// formCardTitle labels the form card with the current input mode.
func formCardTitle(editing bool, name string) string {
	if editing {
		return name + " · editing"
	}
	return name + " · press enter to edit"
}
