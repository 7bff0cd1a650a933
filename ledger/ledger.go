// Package ledger turns an unordered set of trades into the chronological,
// balance-tracked history of an account.
package ledger

import (
	"sort"
	"time"

	"github.com/rustyeddy/journal/risk"
	"github.com/rustyeddy/journal/trade"
)

// Row is one trade's position in the ledger. Rows are value objects,
// rebuilt from scratch on every Build call and never mutated afterwards.
type Row struct {
	Index   int // 1-based chronological position
	TradeID string
	Date    time.Time
	Symbol  string
	Account trade.Account

	BalanceBefore float64
	RiskAmount    float64

	Pnl       float64 // currency, signed
	RMultiple float64 // pnl as a multiple of RiskAmount, signed

	BalanceAfter float64
	ReturnPct    float64
}

// Build produces the ordered ledger for the given trades. Trades are
// sorted by date ascending with CreatedAt breaking same-day ties, so the
// result is independent of the input order. The running balance is seeded
// at settings.StartingBalance and risk for each trade is computed against
// the balance in effect at that point, which is what makes percentage risk
// compound as the account grows or shrinks.
//
// Currency and percentage values are rounded to 2 decimals as each row is
// computed; R-multiples are ratios and stay unrounded.
func Build(trades []trade.Trade, settings trade.Settings) []Row {
	ordered := make([]trade.Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := trade.Day(ordered[i].Date), trade.Day(ordered[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	rows := make([]Row, 0, len(ordered))
	balance := trade.Round2(settings.StartingBalance)

	for i, t := range ordered {
		before := balance
		riskAmt := risk.Amount(before, t.RiskType, t.RiskValue)

		var pnl, r float64
		switch t.ResultType {
		case trade.ResultMoney:
			pnl = trade.Round2(t.ResultValue)
			r = trade.SafeDiv(pnl, riskAmt)
		default:
			r = trade.Finite(t.ResultValue)
			pnl = trade.Round2(riskAmt * r)
		}

		after := trade.Round2(before + pnl)

		base := before
		if settings.ReturnMode == trade.ReturnOnStartingBalance {
			base = trade.Round2(settings.StartingBalance)
		}
		returnPct := trade.Round2(trade.SafeDiv(pnl, base) * 100)

		rows = append(rows, Row{
			Index:         i + 1,
			TradeID:       t.ID,
			Date:          trade.Day(t.Date),
			Symbol:        t.Symbol,
			Account:       t.Account,
			BalanceBefore: before,
			RiskAmount:    riskAmt,
			Pnl:           pnl,
			RMultiple:     r,
			BalanceAfter:  after,
			ReturnPct:     returnPct,
		})

		balance = after
	}

	return rows
}

// FinalBalance returns the balance after the last ledger row, or the
// starting balance when the ledger is empty.
func FinalBalance(rows []Row, settings trade.Settings) float64 {
	if len(rows) == 0 {
		return trade.Round2(settings.StartingBalance)
	}
	return rows[len(rows)-1].BalanceAfter
}
