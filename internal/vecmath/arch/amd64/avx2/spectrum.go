//go:build !purego && amd64

package avx2

// MulSpectrum performs element-wise complex multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
// Unrolled by four bins per iteration with a scalar remainder.
func MulSpectrum(dst, a, b []complex128) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}
