package generic

// MulSpectrum performs element-wise complex multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go fallback implementation.
func MulSpectrum(dst, a, b []complex128) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}
