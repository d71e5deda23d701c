package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ecotrack/internal/advice"

	"github.com/spf13/cobra"
)

var adviceCmd = &cobra.Command{
	Use:   "advice <item>...",
	Short: "Look up how to dispose of an item",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdvice,
}

func init() {
	rootCmd.AddCommand(adviceCmd)
}

func runAdvice(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	fmt.Printf("\n  %s\n\n", advice.Lookup(query))
	return nil
}
