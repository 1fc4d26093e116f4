// Package sample generates the source vector the benchmark copies into its
// working buffers.
package sample

import (
	"math/rand"
	"time"
)

const (
	// Min and Max bound the integers drawn per element, inclusive.
	Min = 1
	Max = 100

	// Bias is subtracted from every draw, giving values in [-49, 50].
	Bias = 50
)

// NewRand returns a generator seeded with seed. A zero seed draws one from
// the clock, so runs differ unless the caller pins a seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate returns n values, each an integer in [Min, Max] minus Bias.
// Every value is exactly representable as a float32.
func Generate(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(rng.Intn(Max-Min+1) + Min - Bias)
	}
	return out
}
