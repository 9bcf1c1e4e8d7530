//go:build !purego && amd64

// Package avx2 provides AVX2-width (4 float64 lanes) vector math kernels.
//
// The kernels are written as width-matched unrolled Go with four independent
// accumulators, which the compiler can vectorize into YMM registers on
// AVX2-capable targets. A scalar remainder loop handles tails shorter than a
// full vector.
package avx2

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

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	// Scalar remainder
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}
