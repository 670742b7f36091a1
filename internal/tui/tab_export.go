package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/bizplan/internal/report"
	"github.com/theirongolddev/bizplan/internal/tui/components"
	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

// exportChrome is the number of content lines used around the preview:
// page title, file info line, and the preview card's border and title.
const exportChrome = 5

type exportPage struct {
	preview  viewport.Model
	artifact report.Artifact
	lastPath string
}

func newExportPage() *exportPage {
	return &exportPage{preview: viewport.New(0, 0)}
}

func (p *exportPage) resize(cw, contentH int) {
	p.preview.Width = components.CardInnerWidth(cw)
	h := contentH - exportChrome
	if h < 3 {
		h = 3
	}
	p.preview.Height = h
}

// refreshExport rebuilds the artifact from the store and reloads the preview.
func (a App) refreshExport() error {
	art, err := report.FromStore(a.sess.Store)
	if err != nil {
		return err
	}
	a.export.artifact = art
	a.export.preview.SetContent(string(art.Data))
	a.export.preview.GotoTop()
	return nil
}

func (a App) enterExport() (App, tea.Cmd) {
	if err := a.refreshExport(); err != nil {
		return a.flashError("Building export", err)
	}
	return a, nil
}

func (a App) updateExport(msg tea.Msg) (App, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "d":
			return a.writeExport()
		}
	}

	var cmd tea.Cmd
	a.export.preview, cmd = a.export.preview.Update(msg)
	return a, cmd
}

// writeExport rebuilds the artifact and writes it to the export directory.
func (a App) writeExport() (App, tea.Cmd) {
	if err := a.refreshExport(); err != nil {
		return a.flashError("Building export", err)
	}

	art := a.export.artifact
	path, err := art.WriteTo(a.exportDir)
	if err != nil {
		a.log.Error("export failed", zap.String("file", art.Filename), zap.Error(err))
		return a.setFlash("Export failed: "+err.Error(), components.FlashError)
	}
	a.export.lastPath = path
	a.log.Info("export written", zap.String("path", path), zap.Int("bytes", len(art.Data)))

	return a.setFlash("Saved "+path, components.FlashSuccess)
}

func (a App) renderExport(cw, h int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	info := " " + labelStyle.Render("File ") + valueStyle.Render(a.export.artifact.Filename) +
		labelStyle.Render("  ·  Type ") + valueStyle.Render(a.export.artifact.ContentType) +
		labelStyle.Render("  ·  To ") + valueStyle.Render(truncStr(a.exportDir, cw/3))
	if a.export.lastPath != "" {
		info += labelStyle.Render("  ·  Last saved ") + valueStyle.Render(truncStr(a.export.lastPath, cw/3))
	}

	title := fmt.Sprintf("Preview · %d%%", int(a.export.preview.ScrollPercent()*100))
	preview := components.ContentCard(title, a.export.preview.View(), cw)

	return pageTitle("Export Business Plan") + "\n" + info + "\n" + preview
}
