package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/ecotrack/internal/cli"
	"github.com/theirongolddev/ecotrack/internal/metrics"

	"github.com/spf13/cobra"
)

// maxEntryKg caps a single logged quantity. Nobody hauls a tonne of
// compost to the curb in one week.
const maxEntryKg = 1000

var logCmd = &cobra.Command{
	Use:   "log <recycling-kg> <compost-kg> <landfill-kg>",
	Short: "Log this week's waste in kilograms",
	Args:  cobra.ExactArgs(3),
	RunE:  runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, args []string) error {
	names := []string{"recycling", "compost", "landfill"}
	kg := make([]float64, 3)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid %s amount %q", names[i], arg)
		}
		if v < 0 || v > maxEntryKg {
			return fmt.Errorf("%s amount must be between 0 and %d kg, got %s", names[i], maxEntryKg, arg)
		}
		kg[i] = v
	}

	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	records, err := st.Append(kg[0], kg[1], kg[2])
	if err != nil {
		return err
	}

	agg := metrics.Aggregate(records)

	fmt.Println()
	fmt.Printf("  Logged: %s recycling, %s compost, %s landfill\n",
		cli.FormatKg(kg[0]), cli.FormatKg(kg[1]), cli.FormatKg(kg[2]))
	fmt.Printf("  Diversion rate is now %s across %d entries\n",
		cli.FormatRate(agg.DiversionRatePct), len(records))
	fmt.Println()

	return nil
}
