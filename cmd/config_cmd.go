// Package cmd implements the ecotrack CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Forecast horizon: %d\n", cfg.General.ForecastHorizon)
	fmt.Printf("    Target rate:      %.0f%%\n", cfg.General.TargetRatePct)
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:   %s\n", cfg.Storage.Backend)
	if cfg.Storage.Backend == "sqlite" {
		fmt.Printf("    Database:  %s\n", cfg.Database())
	} else {
		fmt.Printf("    Data file: %s\n", cfg.DataFile())
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `ecotrack setup` to reconfigure.")
	return nil
}
