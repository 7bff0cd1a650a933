package trade

import "math"

// Finite returns v, or 0 when v is NaN or infinite. Every numeric input
// passes through here before arithmetic so malformed stored values cannot
// poison a ledger.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round2 rounds to the currency's minor unit (2 decimal places), half away
// from zero.
func Round2(v float64) float64 {
	return math.Round(Finite(v)*100) / 100
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// SafeDiv divides, returning 0 on a zero denominator instead of ±Inf/NaN.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
