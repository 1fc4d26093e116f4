package bench

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ErrMismatch is returned when a result differs from the reference.
var ErrMismatch = errors.New("bench: result mismatch")

// Checksum returns the left-to-right float32 sum of x, starting from zero.
func Checksum(x []float32) float32 {
	var sum float32
	for _, v := range x {
		sum += v
	}
	return sum
}

// Verify checks result[i] == a[i] + b[i] for every element against a float64
// reference. A float32 sum rounded once from its float64 counterpart is the
// correctly rounded float32 sum, so the comparison is exact.
func Verify(a, b, result []float32) error {
	if len(a) != len(b) || len(result) != len(a) {
		return fmt.Errorf("%w: lengths %d, %d, %d", ErrMismatch, len(a), len(b), len(result))
	}

	ref := make([]float64, len(a))
	vecmath.AddBlock(ref, widen(a), widen(b))

	for i, want := range ref {
		if got := result[i]; got != float32(want) {
			return fmt.Errorf("%w at index %d: got %v, want %v", ErrMismatch, i, got, float32(want))
		}
	}
	return nil
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
