// Package config loads and saves ecotrack's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all ecotrack configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	ForecastHorizon int     `toml:"forecast_horizon"`
	TargetRatePct   float64 `toml:"target_rate_pct"`
}

// StorageConfig selects and locates the record backend.
type StorageConfig struct {
	// Backend is "csv" (default) or "sqlite".
	Backend string `toml:"backend"`
	// DataFile overrides the default log location for the csv backend.
	DataFile string `toml:"data_file,omitempty"`
	// Database overrides the default location for the sqlite backend.
	Database string `toml:"database,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			ForecastHorizon: 4,
			TargetRatePct:   50,
		},
		Storage: StorageConfig{
			Backend: "csv",
		},
		Appearance: AppearanceConfig{
			Theme: "compost-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ecotrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ecotrack")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "ecotrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "ecotrack")
}

// DataFile returns the waste log path for the csv backend.
func (c Config) DataFile() string {
	if c.Storage.DataFile != "" {
		return c.Storage.DataFile
	}
	return filepath.Join(DataDir(), "waste_data.csv")
}

// Database returns the waste log path for the sqlite backend.
func (c Config) Database() string {
	if c.Storage.Database != "" {
		return c.Storage.Database
	}
	return filepath.Join(DataDir(), "waste_log.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
