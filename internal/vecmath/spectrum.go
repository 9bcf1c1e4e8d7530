package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-correlate/internal/cpu"
	"github.com/cwbudde/algo-correlate/internal/vecmath/registry"
)

var (
	mulSpectrumImpl     func(dst, a, b []complex128)
	mulSpectrumInitOnce sync.Once
)

func initMulSpectrumOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("vecmath: no mulspectrum implementation registered")
	}
	if entry.MulSpectrum == nil {
		panic("vecmath: selected implementation missing mulspectrum operation")
	}
	mulSpectrumImpl = entry.MulSpectrum
}

// MulSpectrum performs element-wise complex multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
// dst may alias a or b.
func MulSpectrum(dst, a, b []complex128) {
	mulSpectrumInitOnce.Do(initMulSpectrumOperation)
	mulSpectrumImpl(dst, a, b)
}
