// Package projection extrapolates an account balance forward, either by a
// deterministic expectancy walk or by a randomized per-day simulation with
// percentile bands.
package projection

import (
	"sort"

	"github.com/rustyeddy/journal/ledger"
	"github.com/rustyeddy/journal/risk"
	"github.com/rustyeddy/journal/trade"
)

// Method selects the projection algorithm.
type Method string

const (
	Deterministic Method = "DETERMINISTIC"
	DailySim      Method = "DAILY_SIM"
)

// Settings parameterizes one projection request.
type Settings struct {
	Method      Method
	HorizonDays int // future steps; negative values are clamped to 0
	Simulations int // DAILY_SIM trial count; values < 1 become 1

	// FallbackExpectancyR is used by the deterministic walk when the
	// ledger has fewer than 3 rows, too small a sample to estimate
	// expectancy from. The zero value projects a flat balance.
	FallbackExpectancyR float64
}

// Bands holds one balance path per percentile, each of length
// HorizonDays+1 including the starting point.
type Bands struct {
	P10 []float64
	P50 []float64
	P90 []float64
}

// Summary condenses a projection to its start and end balances. For the
// deterministic method the three percentiles collapse to the same value.
type Summary struct {
	StartBalance  float64
	EndBalanceP10 float64
	EndBalanceP50 float64
	EndBalanceP90 float64
}

// Result is the full projection output. Path is the deterministic path,
// or the P50 band for DAILY_SIM; Bands is nil for the deterministic
// method.
type Result struct {
	Method      Method
	HorizonDays int

	Path  []float64
	Bands *Bands

	Summary Summary
}

type stats struct {
	avgWinR     float64
	avgLossR    float64
	expectancyR float64
	pool        []float64 // historical R-multiples, ledger order
}

// Project runs the configured projection over the account's trade history.
// src supplies all randomness for DAILY_SIM; passing the same seeded
// source reproduces the same bands. It is unused by the deterministic
// method and may then be nil.
func Project(trades []trade.Trade, settings trade.Settings, ps Settings, src Source) Result {
	rows := ledger.Build(trades, settings)
	start := ledger.FinalBalance(rows, settings)

	horizon := ps.HorizonDays
	if horizon < 0 {
		horizon = 0
	}

	st := deriveStats(rows, ps)

	if ps.Method == DailySim {
		return projectDailySim(start, horizon, settings, ps, st, src)
	}
	return projectDeterministic(start, horizon, settings, st)
}

func deriveStats(rows []ledger.Row, ps Settings) stats {
	st := stats{pool: make([]float64, 0, len(rows))}
	for _, row := range rows {
		st.pool = append(st.pool, row.RMultiple)
	}

	if len(st.pool) < 3 {
		st.expectancyR = trade.Finite(ps.FallbackExpectancyR)
		return st
	}

	var winSum, lossSum float64
	var wins, losses int
	for _, r := range st.pool {
		if r > 0 {
			wins++
			winSum += r
		} else if r < 0 {
			losses++
			lossSum += r
		}
	}
	decisive := wins + losses
	if wins > 0 {
		st.avgWinR = winSum / float64(wins)
	}
	if losses > 0 {
		st.avgLossR = lossSum / float64(losses)
	}
	if decisive > 0 {
		pWin := float64(wins) / float64(decisive)
		pLoss := float64(losses) / float64(decisive)
		st.expectancyR = pWin*st.avgWinR + pLoss*st.avgLossR
	}
	return st
}

func projectDeterministic(start float64, horizon int, settings trade.Settings, st stats) Result {
	path := make([]float64, 0, horizon+1)
	balance := start
	path = append(path, balance)

	for day := 1; day <= horizon; day++ {
		riskAmt := risk.Amount(balance, settings.DefaultRiskType, settings.DefaultRiskValue)
		pnl := trade.Round2(riskAmt * st.expectancyR)
		balance = trade.Round2(balance + pnl)
		path = append(path, balance)
	}

	end := path[len(path)-1]
	return Result{
		Method:      Deterministic,
		HorizonDays: horizon,
		Path:        path,
		Summary: Summary{
			StartBalance:  start,
			EndBalanceP10: end,
			EndBalanceP50: end,
			EndBalanceP90: end,
		},
	}
}

func projectDailySim(start float64, horizon int, settings trade.Settings, ps Settings, st stats, src Source) Result {
	if src == nil {
		src = NewSource(0)
	}

	pool := st.pool
	if len(pool) == 0 {
		pool = []float64{st.avgWinR, st.avgLossR}
	}

	sims := ps.Simulations
	if sims < 1 {
		sims = 1
	}
	maxTrades := settings.MaxTradesPerDay
	if maxTrades < 1 {
		maxTrades = 1
	}

	paths := make([][]float64, sims)
	for sim := 0; sim < sims; sim++ {
		balance := start
		path := make([]float64, 0, horizon+1)
		path = append(path, balance)

		for day := 1; day <= horizon; day++ {
			var dayR float64
			for t := 0; t < maxTrades; t++ {
				r := sample(pool, src)
				riskAmt := risk.Amount(balance, settings.DefaultRiskType, settings.DefaultRiskValue)
				balance = trade.Round2(balance + trade.Round2(riskAmt*r))
				dayR += r

				// The daily rules act as a forward stopping rule here:
				// once the day's cumulative R crosses a threshold, no
				// further trades are simulated that day.
				if dayR >= settings.DailyTakeR || dayR <= settings.DailyStopR {
					break
				}
			}
			path = append(path, balance)
		}
		paths[sim] = path
	}

	bands := &Bands{
		P10: make([]float64, horizon+1),
		P50: make([]float64, horizon+1),
		P90: make([]float64, horizon+1),
	}
	balances := make([]float64, sims)
	for day := 0; day <= horizon; day++ {
		for sim, path := range paths {
			balances[sim] = path[day]
		}
		bands.P10[day] = trade.Round2(percentile(balances, 0.10))
		bands.P50[day] = trade.Round2(percentile(balances, 0.50))
		bands.P90[day] = trade.Round2(percentile(balances, 0.90))
	}

	return Result{
		Method:      DailySim,
		HorizonDays: horizon,
		Path:        bands.P50,
		Bands:       bands,
		Summary: Summary{
			StartBalance:  start,
			EndBalanceP10: bands.P10[horizon],
			EndBalanceP50: bands.P50[horizon],
			EndBalanceP90: bands.P90[horizon],
		},
	}
}

func sample(pool []float64, src Source) float64 {
	if len(pool) == 0 {
		return 0
	}
	idx := int(src.Float64() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx]
}

// percentile computes the p-th percentile (p in [0, 1]) of values with
// linear interpolation between order statistics.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := trade.Clamp(float64(len(sorted)-1)*p, 0, float64(len(sorted)-1))
	lower := int(idx)
	upper := lower
	if float64(lower) < idx {
		upper = lower + 1
	}
	if lower == upper {
		return sorted[lower]
	}
	weight := idx - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
