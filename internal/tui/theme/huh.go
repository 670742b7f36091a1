package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Form returns a huh theme drawn from t so embedded forms match the
// surrounding cards.
func Form(t Theme) *huh.Theme {
	f := huh.ThemeBase()

	f.Focused.Base = f.Focused.Base.BorderForeground(t.BorderAccent)
	f.Focused.Title = f.Focused.Title.Foreground(t.AccentBright).Bold(true)
	f.Focused.Description = f.Focused.Description.Foreground(t.TextMuted)
	f.Focused.ErrorIndicator = f.Focused.ErrorIndicator.Foreground(t.Loss)
	f.Focused.ErrorMessage = f.Focused.ErrorMessage.Foreground(t.Loss)
	f.Focused.SelectSelector = f.Focused.SelectSelector.Foreground(t.Accent)
	f.Focused.NextIndicator = f.Focused.NextIndicator.Foreground(t.Accent)
	f.Focused.PrevIndicator = f.Focused.PrevIndicator.Foreground(t.Accent)
	f.Focused.Option = f.Focused.Option.Foreground(t.TextPrimary)
	f.Focused.SelectedOption = f.Focused.SelectedOption.Foreground(t.Accent)
	f.Focused.FocusedButton = f.Focused.FocusedButton.
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)
	f.Focused.BlurredButton = f.Focused.BlurredButton.
		Foreground(t.TextMuted).
		Background(t.SurfaceHover)
	f.Focused.TextInput.Cursor = f.Focused.TextInput.Cursor.Foreground(t.AccentBright)
	f.Focused.TextInput.Placeholder = f.Focused.TextInput.Placeholder.Foreground(t.TextDim)
	f.Focused.TextInput.Prompt = f.Focused.TextInput.Prompt.Foreground(t.Accent)
	f.Focused.TextInput.Text = f.Focused.TextInput.Text.Foreground(t.TextPrimary)

	f.Blurred = f.Focused
	f.Blurred.Base = f.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	f.Blurred.Title = f.Blurred.Title.Foreground(t.TextMuted).Bold(false)
	f.Blurred.NextIndicator = lipgloss.NewStyle()
	f.Blurred.PrevIndicator = lipgloss.NewStyle()

	return f
}
