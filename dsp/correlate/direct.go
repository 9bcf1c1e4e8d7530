package correlate

import (
	ivec "github.com/cwbudde/algo-correlate/internal/vecmath"
)

// Direct computes cross-correlation by windowed dot products.
// Returns a new slice of length len(x) + len(h) - 1.
//
// This is an O(N*M) algorithm suitable for short templates.
// For longer templates, use the FFT-based handles.
func Direct(x, h []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(h) == 0 {
		return nil, ErrEmptyTemplate
	}

	result := make([]float64, len(x)+len(h)-1)
	DirectTo(result, x, h)
	return result, nil
}

// DirectTo computes cross-correlation into a pre-allocated destination of
// length len(x) + len(h) - 1. The inner dot-product loop runs on the widest
// vector kernel the CPU supports, with a scalar remainder for tail elements.
//
// dst must not alias x or h (caller contract, not checked). Stateless; safe
// to call concurrently with disjoint buffers.
func DirectTo(dst, x, h []float64) {
	directTo(dst, x, h, ivec.DotProduct)
}

// DirectScalarTo computes cross-correlation using a pure scalar inner loop,
// regardless of CPU capabilities. Results match DirectTo up to floating-point
// summation order.
//
// Same aliasing contract as DirectTo.
func DirectScalarTo(dst, x, h []float64) {
	directTo(dst, x, h, dotProductScalar)
}

// directTo writes dst[k] = sum_i x[i] * h[i-k+m-1] over the valid overlap
// range, treating both signals as zero outside their bounds.
func directTo(dst, x, h []float64, dot func(a, b []float64) float64) {
	n := len(x)
	m := len(h)

	if m == 1 {
		scaleCopy(dst[:n], x, h[0])
		return
	}

	for k := 0; k < n+m-1; k++ {
		hStart := 0
		if k < m-1 {
			hStart = m - 1 - k
		}
		xStart := 0
		if k > m-1 {
			xStart = k - (m - 1)
		}
		length := m - hStart
		if n-xStart < length {
			length = n - xStart
		}
		dst[k] = dot(x[xStart:xStart+length], h[hStart:hStart+length])
	}
}

// dotProductScalar is the strictly sequential reference inner loop.
func dotProductScalar(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
