package cmd

import (
	"fmt"

	"github.com/rustyeddy/fxrisk/market"
	"github.com/spf13/cobra"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "List supported currency pairs",
	Args:  cobra.NoArgs,
	RunE:  runPairs,
}

func init() {
	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Pair   | Pip    | Rate needed")
	fmt.Fprintln(out, "------ | ------ | -----------")
	for _, m := range market.Pairs() {
		needs := "no"
		if m.QuoteCurrency != market.JPY {
			needs = fmt.Sprintf("yes (%s/JPY)", m.QuoteCurrency)
		}
		fmt.Fprintf(out, "%s | %-6s | %s\n", m.Name, market.PipSize(m.Name), needs)
	}
	return nil
}
