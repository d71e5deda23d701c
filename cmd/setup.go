package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/ecotrack/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to ecotrack!")
	fmt.Println()

	// 1. Storage backend
	fmt.Println("  1. Storage backend")
	fmt.Println("     (1) CSV file [default]")
	fmt.Println("     (2) SQLite database")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "2":
		cfg.Storage.Backend = "sqlite"
	default:
		cfg.Storage.Backend = "csv"
	}
	fmt.Println()

	// 2. Forecast horizon
	fmt.Println("  2. Forecast horizon (periods ahead)")
	fmt.Println("     (1) 4 [default]")
	fmt.Println("     (2) 8")
	fmt.Println("     (3) 12")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "2":
		cfg.General.ForecastHorizon = 8
	case "3":
		cfg.General.ForecastHorizon = 12
	default:
		cfg.General.ForecastHorizon = 4
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Compost Dark [default]")
	fmt.Println("     (2) Landfill Light")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "2":
		cfg.Appearance.Theme = "landfill-light"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "compost-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `ecotrack setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
