//go:build !purego && amd64

package sse2

import (
	"github.com/cwbudde/algo-correlate/internal/cpu"
	"github.com/cwbudde/algo-correlate/internal/vecmath/registry"
)

// init registers the SSE2-width implementations with the vecmath registry.
//
// Priority: 10 (above generic, below AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		DotProduct:  DotProduct,
		MulSpectrum: MulSpectrum,
	})
}
