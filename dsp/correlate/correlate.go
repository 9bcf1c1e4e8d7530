package correlate

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by correlation functions.
var (
	ErrEmptyInput     = errors.New("correlate: empty input signal")
	ErrEmptyTemplate  = errors.New("correlate: empty template")
	ErrInvalidFFTSize = errors.New("correlate: invalid FFT size")
	ErrShortResult    = errors.New("correlate: result buffer too short")
)

// Mode specifies the output mode for the one-shot correlation functions.
type Mode int

const (
	// ModeFull returns the full correlation result with length len(x)+len(h)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where the signals fully overlap,
	// with length max(len(x), len(h)) - min(len(x), len(h)) + 1.
	ModeValid
)

// Correlate computes the full cross-correlation of x and h with automatic
// algorithm selection. The result has length len(x) + len(h) - 1.
// Output index k corresponds to lag k - (len(h) - 1).
func Correlate(x, h []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(h) == 0 {
		return nil, ErrEmptyTemplate
	}

	c, err := New(len(x), len(h))
	if err != nil {
		return nil, err
	}
	defer c.Close()

	result := make([]float64, len(x)+len(h)-1)
	if err := c.Compute(result, x, h); err != nil {
		return nil, err
	}
	return result, nil
}

// CorrelateMode computes cross-correlation with the specified output mode.
func CorrelateMode(x, h []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(x, h)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(x), len(h), mode), nil
}

// AutoCorrelate computes the auto-correlation of signal x.
// The result has length 2*len(x) - 1.
// Output index k corresponds to lag k - (len(x) - 1).
func AutoCorrelate(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	return Correlate(x, x)
}

// trimToMode extracts the appropriate portion of a full correlation result.
func trimToMode(full []float64, lenX, lenH int, mode Mode) []float64 {
	switch mode {
	case ModeFull:
		return full
	case ModeSame:
		// Center the result to match length of first input
		start := (lenH - 1) / 2
		return full[start : start+lenX]
	case ModeValid:
		// Return only fully overlapping portion
		if lenX >= lenH {
			return full[lenH-1 : lenX]
		}
		return full[lenX-1 : lenH]
	default:
		return full
	}
}

// FindPeak finds the index and value of the maximum in a correlation result.
// Useful for finding the best alignment between two signals.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
// For a correlation of signals with lengths lenX and lenH,
// the lag at index i is i - (lenH - 1).
func LagFromIndex(index, lenH int) int {
	return index - (lenH - 1)
}

// IndexFromLag converts a lag value to a correlation result index.
// Returns the index in the correlation result array for the given lag.
func IndexFromLag(lag, lenH int) int {
	return lag + (lenH - 1)
}

// scaleCopy writes dst[i] = src[i] * scale. This is the degenerate
// single-sample-template correlation: a scaled copy of the signal.
func scaleCopy(dst, src []float64, scale float64) {
	vecmath.ScaleBlock(dst, src, scale)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
