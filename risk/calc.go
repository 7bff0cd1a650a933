// Package risk computes the monetary amount exposed on a single trade.
package risk

import "github.com/rustyeddy/journal/trade"

// Amount returns the currency amount at risk for one trade given the
// balance in effect when the trade was taken.
//
// PERCENT risks riskValue percentage points of balanceBefore; FIXED risks
// riskValue outright. The result is clamped to >= 0 and rounded to the
// minor unit exactly once here; callers must not round it again.
func Amount(balanceBefore float64, riskType trade.RiskType, riskValue float64) float64 {
	balanceBefore = trade.Finite(balanceBefore)
	riskValue = trade.Finite(riskValue)

	var amount float64
	switch riskType {
	case trade.RiskFixed:
		amount = riskValue
	default:
		// PERCENT is the default interpretation, matching the storage
		// layer's normalization of unknown risk types.
		amount = balanceBefore * riskValue / 100
	}

	if amount < 0 {
		amount = 0
	}
	return trade.Round2(amount)
}
