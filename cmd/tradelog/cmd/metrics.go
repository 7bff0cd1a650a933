package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/ledger"
	"github.com/rustyeddy/journal/metrics"
	"github.com/rustyeddy/journal/report"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print aggregate performance metrics",
	Args:  cobra.NoArgs,
	RunE:  runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	j, trades, settings, _, err := accountView()
	if err != nil {
		return err
	}
	defer j.Close()

	rows := ledger.Build(trades, settings)
	m := metrics.Calculate(trades, rows, settings)
	report.PrintMetrics(os.Stdout, m, settings)
	return nil
}
