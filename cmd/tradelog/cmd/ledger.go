package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/ledger"
	"github.com/rustyeddy/journal/report"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Print the running-balance ledger",
	Args:  cobra.NoArgs,
	RunE:  runLedger,
}

func init() {
	rootCmd.AddCommand(ledgerCmd)
}

func runLedger(cmd *cobra.Command, args []string) error {
	j, trades, settings, _, err := accountView()
	if err != nil {
		return err
	}
	defer j.Close()

	rows := ledger.Build(trades, settings)
	report.PrintLedger(os.Stdout, rows, settings)
	return nil
}
