package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Errorf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.ForecastHorizon = 8
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Database = "/tmp/waste.db"
	cfg.Appearance.Theme = "landfill-light"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestSavePermissions(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Save(DefaultConfig()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(ConfigPath())
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config file mode = %o, want 600", perm)
	}
}

func TestDataFileOverride(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.DataFile(); filepath.Base(got) != "waste_data.csv" {
		t.Errorf("default data file = %q, want waste_data.csv basename", got)
	}

	cfg.Storage.DataFile = "/srv/eco/log.csv"
	if got := cfg.DataFile(); got != "/srv/eco/log.csv" {
		t.Errorf("override data file = %q", got)
	}
}

func TestDataDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	if got := DataDir(); got != filepath.Join(dir, "ecotrack") {
		t.Errorf("DataDir() = %q, want under %q", got, dir)
	}
}
