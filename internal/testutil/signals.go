// Package testutil provides deterministic signal generators and tolerance
// helpers shared by the correlation engine's tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ramp generates the signal 1, 2, 3, ... of the given length.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// ReferenceCorrelate computes cross-correlation by the direct definition:
//
//	result[k] = sum_i x[i] * h[i-k+len(h)-1]
//
// with both signals treated as zero outside their bounds. The result has
// length len(x) + len(h) - 1. It is deliberately the most naive possible
// implementation, used as the oracle for all engine methods.
func ReferenceCorrelate(x, h []float64) []float64 {
	n := len(x)
	m := len(h)
	if n == 0 || m == 0 {
		return nil
	}

	out := make([]float64, n+m-1)
	for k := range out {
		sum := 0.0
		for i := 0; i < n; i++ {
			j := i - k + m - 1
			if j >= 0 && j < m {
				sum += x[i] * h[j]
			}
		}
		out[k] = sum
	}
	return out
}
