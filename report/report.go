// Package report renders engine output as fixed-width text for the CLI.
package report

import (
	"fmt"
	"io"

	"github.com/rustyeddy/journal/daily"
	"github.com/rustyeddy/journal/ledger"
	"github.com/rustyeddy/journal/metrics"
	"github.com/rustyeddy/journal/projection"
	"github.com/rustyeddy/journal/trade"
)

const rule = "--------------------------------------------------"

// PrintLedger writes the ledger as a table.
func PrintLedger(w io.Writer, rows []ledger.Row, settings trade.Settings) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " Ledger (%s, starting balance %.2f)\n", settings.Currency, settings.StartingBalance)
	fmt.Fprintln(w, "==================================================")

	if len(rows) == 0 {
		fmt.Fprintln(w, "No trades.")
		return
	}

	fmt.Fprintf(w, "%-4s %-10s %-8s %12s %10s %10s %8s %12s %9s\n",
		"#", "Date", "Symbol", "Before", "Risk", "PnL", "R", "After", "Ret%")
	fmt.Fprintln(w, rule)
	for _, r := range rows {
		fmt.Fprintf(w, "%-4d %-10s %-8s %12.2f %10.2f %+10.2f %+8.2f %12.2f %+8.2f%%\n",
			r.Index,
			r.Date.Format("2006-01-02"),
			r.Symbol,
			r.BalanceBefore,
			r.RiskAmount,
			r.Pnl,
			r.RMultiple,
			r.BalanceAfter,
			r.ReturnPct,
		)
	}
}

// PrintMetrics writes the performance snapshot.
func PrintMetrics(w io.Writer, m metrics.Metrics, settings trade.Settings) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Trades:        %d\n", m.Trades)
	fmt.Fprintf(w, "Wins:          %d\n", m.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", m.Losses)
	fmt.Fprintf(w, "Breakevens:    %d\n", m.Breakevens)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", m.WinRatePct)
	fmt.Fprintf(w, "Avg Win:       %+.2fR\n", m.AvgWinR)
	fmt.Fprintf(w, "Avg Loss:      %+.2fR\n", m.AvgLossR)
	fmt.Fprintf(w, "Expectancy:    %+.2fR\n", m.ExpectancyR)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account Performance")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Net P/L:       %+.2f %s\n", m.NetPnl, settings.Currency)
	fmt.Fprintf(w, "Net Return:    %+.2f%%\n", m.NetReturnPct)
	if m.ProfitFactor != nil {
		fmt.Fprintf(w, "Profit Factor: %.2f\n", *m.ProfitFactor)
	} else {
		fmt.Fprintln(w, "Profit Factor: n/a (no losing trades)")
	}
	fmt.Fprintf(w, "Max Drawdown:  %.2f%%\n", m.MaxDrawdownPct)
}

// PrintDaily writes the per-day rule summaries.
func PrintDaily(w io.Writer, summaries []daily.Summary, settings trade.Settings) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " Daily Summary (stop %.1fR, take %.1fR, max %d/day)\n",
		settings.DailyStopR, settings.DailyTakeR, settings.MaxTradesPerDay)
	fmt.Fprintln(w, "==================================================")

	if len(summaries) == 0 {
		fmt.Fprintln(w, "No trading days.")
		return
	}

	fmt.Fprintf(w, "%-10s %6s %12s %8s  %s\n", "Date", "Trades", "PnL", "R", "Status")
	fmt.Fprintln(w, rule)
	for _, s := range summaries {
		fmt.Fprintf(w, "%-10s %6d %+12.2f %+8.2f  %s\n",
			s.Date.Format("2006-01-02"), s.Trades, s.DayPnl, s.DayR, s.Status)
	}
}

// PrintProjection writes the projection summary and end-of-path bands.
func PrintProjection(w io.Writer, res projection.Result, settings trade.Settings) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " Projection (%s, %d days)\n", res.Method, res.HorizonDays)
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Start Balance: %.2f %s\n", res.Summary.StartBalance, settings.Currency)
	if res.Method == projection.DailySim {
		fmt.Fprintf(w, "End P10:       %.2f\n", res.Summary.EndBalanceP10)
		fmt.Fprintf(w, "End P50:       %.2f\n", res.Summary.EndBalanceP50)
		fmt.Fprintf(w, "End P90:       %.2f\n", res.Summary.EndBalanceP90)
	} else {
		fmt.Fprintf(w, "End Balance:   %.2f\n", res.Summary.EndBalanceP50)
	}
}
