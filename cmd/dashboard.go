package cmd

import (
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/cli"
	"github.com/theirongolddev/ecotrack/internal/metrics"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Waste diversion summary",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("\n  No waste records yet.")
		fmt.Println("  Log your first entry with `ecotrack log`.")
		return nil
	}

	agg := metrics.Aggregate(records)
	comp := metrics.Composition(records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("WASTE DIVERSION DASHBOARD"))
	fmt.Println()

	rows := [][]string{
		{"Entries", cli.FormatNumber(int64(len(records)))},
		{"Recycling", cli.FormatKg(agg.TotalRecyclingKg)},
		{"Compost", cli.FormatKg(agg.TotalCompostKg)},
		{"Landfill", cli.FormatKg(agg.TotalLandfillKg)},
		{"---"},
		{"Total Waste", cli.FormatKg(agg.GrandTotalKg)},
		{"Diverted", cli.FormatKg(agg.DivertedKg)},
		{"---"},
	}

	target := targetRate()
	rateStr := cli.FormatRate(agg.DiversionRatePct)
	rateStr += fmt.Sprintf("  (%s vs %s target)",
		cli.FormatDeltaPP(agg.DiversionRatePct, target),
		cli.FormatRate(target))
	rows = append(rows, []string{"Diversion Rate", rateStr})

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	// Composition breakdown
	fmt.Println()
	fmt.Println(cli.RenderHorizontalBar("Recycling", comp.RecyclingPct, 100, 40, cli.ColorAccent))
	fmt.Println(cli.RenderHorizontalBar("Compost", comp.CompostPct, 100, 40, cli.ColorWarn))
	fmt.Println(cli.RenderHorizontalBar("Landfill", comp.LandfillPct, 100, 40, cli.ColorLandfill))
	fmt.Println()

	// Per-entry diversion rate trend in log order
	rates := metrics.PeriodRates(records)
	values := make([]float64, 0, len(rates))
	for _, r := range rates {
		values = append(values, r.RatePct)
	}
	fmt.Printf("  Trend  %s\n", cli.RenderSparkline(values))
	fmt.Println()

	return nil
}
