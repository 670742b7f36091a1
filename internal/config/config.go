// Package config loads and saves bizplan preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds all bizplan configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	ExportDir string `toml:"export_dir,omitempty" env:"EXPORT_DIR"`
	Store     string `toml:"store" env:"STORE"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"THEME"`
}

// LogConfig controls the session log file.
type LogConfig struct {
	Level  string `toml:"level" env:"LOG_LEVEL"`
	Format string `toml:"format" env:"LOG_FORMAT"`
	File   string `toml:"file,omitempty" env:"LOG_FILE"`
}

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "BIZPLAN_"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Store: "memory",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bizplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bizplan")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// CacheDir returns the XDG-compliant cache directory used for logs.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "bizplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "bizplan")
}

// LogPath returns the configured log file, or the default under CacheDir.
func (c Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(CacheDir(), "bizplan.log")
}

// ExportDir returns the configured export directory, or "." when unset.
func (c Config) ExportDir() string {
	if c.General.ExportDir != "" {
		return c.General.ExportDir
	}
	return "."
}

// LoadFile reads the config file over the defaults. Environment overrides
// are not applied.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// Load reads the config file, returning defaults if it doesn't exist,
// then applies BIZPLAN_* environment overrides.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
