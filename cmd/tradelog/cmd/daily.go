package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/journal/daily"
	"github.com/rustyeddy/journal/ledger"
	"github.com/rustyeddy/journal/report"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Print per-day rule compliance summaries",
	Long: `Print one row per trading day with the day's PnL, cumulative R and its
status against the configured limits (trade count, daily stop, daily take).

With --today only the current day is shown, along with any advisory
warnings about days exceeding the trade limit.`,
	Args: cobra.NoArgs,
	RunE: runDaily,
}

var dailyToday bool

func init() {
	rootCmd.AddCommand(dailyCmd)
	dailyCmd.Flags().BoolVar(&dailyToday, "today", false, "show only today's summary")
}

func runDaily(cmd *cobra.Command, args []string) error {
	j, trades, settings, _, err := accountView()
	if err != nil {
		return err
	}
	defer j.Close()

	rows := ledger.Build(trades, settings)

	if dailyToday {
		// The engine takes the reference day as an argument; the clock is
		// read only here at the CLI edge.
		today := time.Now()
		s, ok := daily.ForDay(rows, settings, today)
		if !ok {
			fmt.Printf("no trades on %s\n", today.Format("2006-01-02"))
			return nil
		}
		report.PrintDaily(os.Stdout, []daily.Summary{s}, settings)
	} else {
		report.PrintDaily(os.Stdout, daily.Summarize(rows, settings), settings)
	}

	if ok, warnings := daily.CheckLimits(trades, settings); !ok {
		fmt.Println()
		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}
	}
	return nil
}
