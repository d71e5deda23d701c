package cmd

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/cli"
	"github.com/theirongolddev/ecotrack/internal/metrics"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your eco level and badges",
	RunE:  runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}

	profile := metrics.LevelProgress(records)
	earned := metrics.Badges(records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("ECO PROFILE"))
	fmt.Println()
	fmt.Printf("  Level %d\n", profile.Level)
	fmt.Printf("  %s  %s diverted\n",
		cli.RenderProgressBar(profile.ProgressFrac, 30),
		cli.FormatKg(profile.TotalDivertedKg))
	fmt.Println()

	earnedIDs := make(map[string]bool, len(earned))
	for _, b := range earned {
		earnedIDs[b.ID] = true
	}

	fmt.Println("  Badges")
	for _, b := range metrics.AllBadges {
		mark := "[ ]"
		if earnedIDs[b.ID] {
			mark = "[x]"
		}
		fmt.Printf("   %s %s (divert over %s)\n", mark, b.Name, cli.FormatKg(b.ThresholdKg))
	}
	fmt.Println()

	return nil
}
