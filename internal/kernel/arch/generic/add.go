package generic

// Add performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// It has no alignment requirement.
func Add(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}
