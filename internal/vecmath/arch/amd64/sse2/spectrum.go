//go:build !purego && amd64

package sse2

// MulSpectrum performs element-wise complex multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
// Unrolled by two bins per iteration with a scalar remainder.
func MulSpectrum(dst, a, b []complex128) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0
	for ; i+2 <= n; i += 2 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}
