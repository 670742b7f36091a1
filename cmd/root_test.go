package cmd

import (
	"testing"

	"github.com/theirongolddev/bizplan/internal/config"
)

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)

	file := config.DefaultConfig()
	file.General.Store = "memory"
	file.General.ExportDir = "/from/file"
	file.Appearance.Theme = "tokyo-night"
	if err := config.Save(file); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BIZPLAN_THEME", "terminal")
	t.Setenv("BIZPLAN_STORE", "memory")

	if err := rootCmd.ParseFlags([]string{"--store", "sqlite"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.General.Store != "sqlite" {
		t.Errorf("Store = %q, want flag value %q", cfg.General.Store, "sqlite")
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want env value %q", cfg.Appearance.Theme, "terminal")
	}
	if cfg.General.ExportDir != "/from/file" {
		t.Errorf("ExportDir = %q, want file value %q", cfg.General.ExportDir, "/from/file")
	}
}

func TestConfigRowsMarkDefaults(t *testing.T) {
	rows := configRows(config.DefaultConfig())
	if len(rows) != 6 {
		t.Fatalf("len(rows) = %d, want 6", len(rows))
	}
	if rows[0][1] != ". (default)" {
		t.Fatalf("export_dir = %q, want %q", rows[0][1], ". (default)")
	}
	for _, r := range rows {
		if len(r) != 3 {
			t.Fatalf("row %v has %d cells, want 3", r, len(r))
		}
	}
}
