package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizplan/internal/config"
	"github.com/theirongolddev/bizplan/internal/store"
	"github.com/theirongolddev/bizplan/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

var storeDescriptions = map[string]string{
	store.BackendMemory: "In-process tables (default)",
	store.BackendSQLite: "Private in-memory SQLite database",
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file so env and flag overrides are not persisted.
	cfg, err := config.LoadFile()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}
	storeOpts := make([]huh.Option[string], 0, len(store.Backends()))
	for _, b := range store.Backends() {
		storeOpts = append(storeOpts, huh.NewOption(fmt.Sprintf("%s · %s", b, storeDescriptions[b]), b))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to bizplan!").
				Description("Let's set up a few things."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
			huh.NewInput().
				Title("Export directory").
				Description("Where business plan files are written. Leave empty for the current directory.").
				Placeholder(".").
				Value(&cfg.General.ExportDir),
			huh.NewSelect[string]().
				Title("Record store").
				Description("Both are emptied when bizplan exits.").
				Options(storeOpts...).
				Value(&cfg.General.Store),
		),
	).WithTheme(theme.Form(theme.ByName(cfg.Appearance.Theme)))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `bizplan setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
