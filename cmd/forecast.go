package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/cli"
	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/forecast"
	"github.com/theirongolddev/ecotrack/internal/metrics"
	"github.com/theirongolddev/ecotrack/internal/model"

	"github.com/spf13/cobra"
)

var flagHorizon int

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project your diversion rate forward",
	RunE:  runForecast,
}

func init() {
	forecastCmd.Flags().IntVarP(&flagHorizon, "horizon", "n", forecast.DefaultHorizon, "Number of future periods to project")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, _ []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}

	horizon := flagHorizon
	if !cmd.Flags().Changed("horizon") {
		if cfg, err := config.Load(); err == nil && cfg.General.ForecastHorizon > 0 {
			horizon = cfg.General.ForecastHorizon
		}
	}

	rates := metrics.PeriodRates(records)
	projections, err := forecast.FitAndProject(rates, horizon)
	if err != nil {
		if errors.Is(err, forecast.ErrInsufficientData) {
			fmt.Println("\n  Not enough data to forecast. Log at least two entries first.")
			return nil
		}
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DIVERSION RATE FORECAST"))
	fmt.Println()

	rows := make([][]string, 0, len(rates)+len(projections)+1)
	for _, r := range rates {
		rows = append(rows, []string{fmt.Sprintf("%d", r.Period), cli.FormatRate(r.RatePct), "logged"})
	}
	rows = append(rows, []string{"---"})
	for _, p := range projections {
		rows = append(rows, []string{fmt.Sprintf("%d", p.Period), cli.FormatRate(p.RatePct), "projected"})
	}

	table := cli.Table{
		Headers: []string{"Period", "Rate", "Kind"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	target := targetRate()
	last := projections[len(projections)-1]
	fmt.Println()
	if hit := firstAtTarget(projections, target); hit > 0 {
		fmt.Printf("  On this trend you reach the %s target by period %d.\n",
			cli.FormatRate(target), hit)
	} else {
		fmt.Printf("  Trend ends at %s, still %s short of the %s target.\n",
			cli.FormatRate(last.RatePct),
			cli.FormatRate(target-last.RatePct),
			cli.FormatRate(target))
	}
	fmt.Println()

	return nil
}

// firstAtTarget returns the first projected period meeting the target
// rate, or 0 if none do.
func firstAtTarget(projections []model.Projection, target float64) int {
	for _, p := range projections {
		if p.RatePct >= target {
			return p.Period
		}
	}
	return 0
}
