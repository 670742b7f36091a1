// Package cmd implements the bizplan CLI commands.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/bizplan/internal/config"
	"github.com/theirongolddev/bizplan/internal/logging"
	"github.com/theirongolddev/bizplan/internal/session"
	"github.com/theirongolddev/bizplan/internal/store"
	"github.com/theirongolddev/bizplan/internal/tui"
	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

var (
	flagExportDir string
	flagStore     string
	flagTheme     string
	flagPage      string
)

var rootCmd = &cobra.Command{
	Use:   "bizplan",
	Short: "Interactive business plan workbench",
	Long: "Draft a business plan in the terminal: company profile, monthly financial\n" +
		"projections, market analysis, and a plain-text export.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagExportDir, "export-dir", "o", "", "Directory export files are written to")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", fmt.Sprintf("Record store backend %v", store.Backends()))
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", fmt.Sprintf("Color theme %v", theme.Names()))
	rootCmd.Flags().StringVar(&flagPage, "page", tui.PageDashboard.String(), "Page to open on start")
}

// loadConfig reads the config file and env, then applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("export-dir") {
		cfg.General.ExportDir = flagExportDir
	}
	if flags.Changed("store") {
		cfg.General.Store = flagStore
	}
	if flags.Changed("theme") {
		cfg.Appearance.Theme = flagTheme
	}
	return cfg, nil
}

// newLogger opens the log file. The TUI owns the terminal, so a logger
// that cannot be opened is replaced by a no-op one.
func newLogger(cfg config.Config) *zap.Logger {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Logging disabled: %v\n", err)
		return logging.Nop()
	}
	return log
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start, ok := tui.ParsePage(flagPage)
	if !ok {
		return fmt.Errorf("unknown page %q", flagPage)
	}

	log := newLogger(cfg)
	defer func() { _ = log.Sync() }()

	sess, err := session.New(cfg.General.Store, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Warn("closing session", zap.Error(err))
		}
	}()

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background fills render even when the terminal
	// profile is detected conservatively.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(sess, tui.Options{ExportDir: cfg.ExportDir(), StartPage: start})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
