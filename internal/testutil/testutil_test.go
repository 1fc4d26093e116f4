package testutil

import "testing"

func TestSamples_Deterministic(t *testing.T) {
	a := Samples(5, 64)
	b := Samples(5, 64)
	RequireSliceEqual(t, a, b)

	// Seed 0 is pinned rather than drawn from the clock.
	RequireSliceEqual(t, Samples(0, 16), Samples(0, 16))
}

func TestSum(t *testing.T) {
	if got := Sum([]float32{3, -10, 50, 0.5}); got != 43.5 {
		t.Errorf("Sum = %v, want 43.5", got)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
}
