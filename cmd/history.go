package cmd

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/cli"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged waste entries",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("\n  No waste records yet.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			cli.FormatDate(r.Date),
			cli.FormatKg(r.RecyclingKg),
			cli.FormatKg(r.CompostKg),
			cli.FormatKg(r.LandfillKg),
			cli.FormatRate(r.RatePct()),
		})
	}

	table := cli.Table{
		Headers: []string{"Date", "Recycling", "Compost", "Landfill", "Rate"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))
	fmt.Println()

	return nil
}
