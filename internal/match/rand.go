package match

import "math/rand"

// Rand is the single source of randomness for a match.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded generator. A zero seed is replaced by 1 so that
// every match stays reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform draw in [lo, hi], or the midpoint when the
// range is empty.
func between(rng Rand, lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}
