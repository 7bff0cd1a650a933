package projection

import (
	"math/rand"
	"time"
)

// Source supplies uniform randomness for the daily simulation. It is an
// explicit dependency so tests can substitute a seeded or fixed-sequence
// source; *math/rand.Rand satisfies it directly.
type Source interface {
	// Float64 returns a uniformly distributed value in [0, 1).
	Float64() float64
}

// NewSource returns a seeded pseudo-random Source. A zero seed seeds from
// the wall clock, which is the production default.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
