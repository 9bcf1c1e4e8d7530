//go:build !purego && amd64

package avx2

import (
	"github.com/cwbudde/algo-correlate/internal/cpu"
	"github.com/cwbudde/algo-correlate/internal/vecmath/registry"
)

// init registers the AVX2-width implementations with the vecmath registry.
//
// Priority: 20 (preferred over SSE2 and generic when the CPU supports AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		DotProduct:  DotProduct,
		MulSpectrum: MulSpectrum,
	})
}
