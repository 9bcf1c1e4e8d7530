//go:build purego && (amd64 || arm64)

package vecmath

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-correlate/internal/vecmath/arch/generic"
	// Import registry package
	_ "github.com/cwbudde/algo-correlate/internal/vecmath/registry"
)
