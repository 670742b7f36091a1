package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizplan/internal/cli"
	"github.com/theirongolddev/bizplan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("bizplan configuration"))
	fmt.Println()

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Effective settings",
		Headers: []string{"Setting", "Value", "Env override"},
		Rows:    configRows(cfg),
	}))

	fmt.Println()
	fmt.Println("  Flags beat environment, environment beats the file.")
	fmt.Println("  Run `bizplan setup` to reconfigure.")
	return nil
}

func configRows(cfg config.Config) [][]string {
	logFile := cfg.LogPath()
	if cfg.Log.File == "" {
		logFile += " (default)"
	}
	exportDir := cfg.ExportDir()
	if cfg.General.ExportDir == "" {
		exportDir += " (default)"
	}
	return [][]string{
		{"general.export_dir", exportDir, config.EnvPrefix + "EXPORT_DIR"},
		{"general.store", cfg.General.Store, config.EnvPrefix + "STORE"},
		{"appearance.theme", cfg.Appearance.Theme, config.EnvPrefix + "THEME"},
		{"log.level", cfg.Log.Level, config.EnvPrefix + "LOG_LEVEL"},
		{"log.format", cfg.Log.Format, config.EnvPrefix + "LOG_FORMAT"},
		{"log.file", logFile, config.EnvPrefix + "LOG_FILE"},
	}
}
