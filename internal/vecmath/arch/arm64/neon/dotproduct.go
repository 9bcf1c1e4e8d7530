//go:build !purego && arm64

// Package neon provides NEON-width (2 float64 lanes) vector math kernels.
//
// The kernels are written as width-matched unrolled Go with independent
// accumulators per lane, which the compiler can keep in vector registers on
// ARMv8 targets. A scalar remainder loop handles tails shorter than a full
// vector.
package neon

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Returns 0 if slices are empty or have different lengths.
// Only the minimum length of the two slices is used.
func DotProduct(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	a = a[:n]
	b = b[:n]

	var s0, s1 float64
	i := 0
	for ; i+2 <= n; i += 2 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
	}
	// Scalar remainder
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return s0 + s1
}
