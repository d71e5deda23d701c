package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/metrics"
	"github.com/theirongolddev/ecotrack/internal/model"
	"github.com/theirongolddev/ecotrack/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagBackend  string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "ecotrack",
	Short: "Household waste diversion tracker",
	Long:  "Track your recycling, compost, and landfill waste and watch your diversion rate climb.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "Waste log location (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: csv or sqlite (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// openStore resolves the configured backend and returns it ready to use.
// Callers owning a *store.SQLiteStore must Close it; the returned cleanup
// handles both backends.
func openStore() (store.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	backend := cfg.Storage.Backend
	if flagBackend != "" {
		backend = flagBackend
	}

	switch backend {
	case "sqlite":
		path := cfg.Database()
		if flagDataFile != "" {
			path = flagDataFile
		}
		db, err := store.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	case "", "csv":
		path := cfg.DataFile()
		if flagDataFile != "" {
			path = flagDataFile
		}
		return store.NewFileStore(path), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q (want csv or sqlite)", backend)
	}
}

// targetRate returns the configured diversion rate target, falling back
// to the stock target when unset.
func targetRate() float64 {
	cfg, err := config.Load()
	if err != nil || cfg.General.TargetRatePct <= 0 {
		return metrics.TargetRatePct
	}
	return cfg.General.TargetRatePct
}

// loadRecords is the shared data loading path used by all commands.
func loadRecords() ([]model.WasteRecord, error) {
	st, cleanup, err := openStore()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading waste log...\r")
	}

	records, err := st.Load()
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "                        \r")
	}

	return records, nil
}
