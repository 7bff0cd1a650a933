// Package metrics rolls a ledger up into aggregate performance numbers.
package metrics

import (
	"math"

	"github.com/rustyeddy/journal/ledger"
	"github.com/rustyeddy/journal/trade"
)

// Metrics is a single snapshot over one ledger. Breakeven trades (R == 0)
// are counted but excluded from the win-rate and average denominators.
type Metrics struct {
	Trades     int
	Wins       int
	Losses     int
	Breakevens int

	WinRatePct float64 // over decisive trades only, in [0, 100]

	AvgWinR     float64
	AvgLossR    float64 // negative
	ExpectancyR float64

	NetPnl       float64
	NetReturnPct float64

	// ProfitFactor is nil when there are no losing trades: gross profit
	// over zero gross loss is undefined, not infinite.
	ProfitFactor *float64

	MaxDrawdownPct float64 // peak-to-trough magnitude, >= 0
}

// Calculate computes the snapshot for the given trades and their ledger.
// It is a pure function; callers pass the ledger they already built so
// dependent values (net PnL, drawdown) stay consistent with it.
func Calculate(trades []trade.Trade, rows []ledger.Row, settings trade.Settings) Metrics {
	m := Metrics{Trades: len(trades)}

	var winSum, lossSum float64
	for _, row := range rows {
		switch {
		case row.RMultiple > 0:
			m.Wins++
			winSum += row.RMultiple
		case row.RMultiple < 0:
			m.Losses++
			lossSum += row.RMultiple
		default:
			m.Breakevens++
		}
	}

	decisive := m.Wins + m.Losses
	if decisive > 0 {
		m.WinRatePct = float64(m.Wins) / float64(decisive) * 100
	}
	if m.Wins > 0 {
		m.AvgWinR = winSum / float64(m.Wins)
	}
	if m.Losses > 0 {
		m.AvgLossR = lossSum / float64(m.Losses)
	}
	if decisive > 0 {
		pWin := float64(m.Wins) / float64(decisive)
		pLoss := float64(m.Losses) / float64(decisive)
		m.ExpectancyR = pWin*m.AvgWinR + pLoss*m.AvgLossR
	}

	start := trade.Round2(settings.StartingBalance)
	last := ledger.FinalBalance(rows, settings)
	m.NetPnl = trade.Round2(last - start)
	m.NetReturnPct = trade.Round2(trade.SafeDiv(m.NetPnl, start) * 100)

	var grossProfit, grossLoss float64
	for _, row := range rows {
		if row.Pnl > 0 {
			grossProfit += row.Pnl
		} else if row.Pnl < 0 {
			grossLoss += row.Pnl
		}
	}
	if grossLoss != 0 {
		pf := grossProfit / math.Abs(grossLoss)
		m.ProfitFactor = &pf
	}

	peak := start
	for _, row := range rows {
		if row.BalanceAfter > peak {
			peak = row.BalanceAfter
		}
		if peak > 0 {
			dd := (peak - row.BalanceAfter) / peak * 100
			if dd > m.MaxDrawdownPct {
				m.MaxDrawdownPct = dd
			}
		}
	}
	m.MaxDrawdownPct = trade.Round2(m.MaxDrawdownPct)

	return m
}
