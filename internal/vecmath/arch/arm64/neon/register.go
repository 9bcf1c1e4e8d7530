//go:build !purego && arm64

package neon

import (
	"github.com/cwbudde/algo-correlate/internal/cpu"
	"github.com/cwbudde/algo-correlate/internal/vecmath/registry"
)

// init registers the NEON-width implementations with the vecmath registry.
//
// Priority: 15 (above generic; NEON is mandatory on arm64)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		DotProduct:  DotProduct,
		MulSpectrum: MulSpectrum,
	})
}
