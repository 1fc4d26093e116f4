// Package testutil holds helpers shared by the benchmark's tests.
package testutil

import (
	"testing"

	"github.com/cwbudde/algo-alignbench/internal/sample"
)

// RequireSliceEqual fails t if got and want differ in length or in any
// element. Addition of the generated samples is exact, so no tolerance.
func RequireSliceEqual(t testing.TB, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// Samples returns n deterministic sample values for seed.
func Samples(seed int64, n int) []float32 {
	if seed == 0 {
		seed = 1
	}
	return sample.Generate(sample.NewRand(seed), n)
}

// Sum returns the left-to-right float32 sum of x, computed independently of
// the code under test.
func Sum(x []float32) float32 {
	var s float32
	for _, v := range x {
		s += v
	}
	return s
}
