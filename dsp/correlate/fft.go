package correlate

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	ivec "github.com/cwbudde/algo-correlate/internal/vecmath"
)

// FFT computes cross-correlation via a single whole-signal transform pair.
//
// The handle owns an FFT plan sized to nextPowerOf2(xLen + hLen - 1) plus
// complex scratch buffers, allocated once at creation and reused across
// Compute calls. For long signals this method asymptotically dominates direct
// computation (O(N log N) vs O(N*M)); the one-time plan cost amortizes across
// repeated calls with the same lengths.
//
// A handle is valid only for the (xLen, hLen) pair it was created with.
// Compute is not safe for concurrent use on the same handle (the scratch
// buffers are shared across calls); independent handles are independent.
type FFT struct {
	xLen    int
	hLen    int
	fftSize int

	plan *algofft.Plan[complex128]

	// Scratch buffers: padded inputs transformed in place, plus the
	// frequency-domain product.
	xBuf []complex128
	hBuf []complex128
	prod []complex128
}

// NewFFT creates an FFT correlation handle for signals of length xLen and
// templates of length hLen. Fails if the transform plan cannot be created.
func NewFFT(xLen, hLen int) (*FFT, error) {
	if xLen <= 0 {
		return nil, ErrEmptyInput
	}
	if hLen <= 0 {
		return nil, ErrEmptyTemplate
	}

	c := &FFT{
		xLen: xLen,
		hLen: hLen,
	}

	// A single-sample template reduces to a scaled copy; no plan needed.
	if hLen == 1 {
		return c, nil
	}

	c.fftSize = nextPowerOf2(xLen + hLen - 1)

	plan, err := algofft.NewPlan64(c.fftSize)
	if err != nil {
		return nil, fmt.Errorf("correlate: failed to create FFT plan: %w", err)
	}

	c.plan = plan
	c.xBuf = make([]complex128, c.fftSize)
	c.hBuf = make([]complex128, c.fftSize)
	c.prod = make([]complex128, c.fftSize)

	return c, nil
}

// XLen returns the signal length the handle was created for.
func (c *FFT) XLen() int {
	return c.xLen
}

// HLen returns the template length the handle was created for.
func (c *FFT) HLen() int {
	return c.hLen
}

// FFTSize returns the transform length used internally (0 for the degenerate
// single-sample template).
func (c *FFT) FFTSize() int {
	return c.fftSize
}

// Compute writes the cross-correlation of x and h into result.
// x must have length xLen and h length hLen (caller contract, not checked).
//
// result and x may safely be the same buffer: x is staged into the plan's
// scratch before result is written. h must not alias result.
func (c *FFT) Compute(result, x, h []float64) error {
	if len(result) < c.xLen+c.hLen-1 {
		return ErrShortResult
	}
	if c.hLen == 1 {
		scaleCopy(result[:c.xLen], x[:c.xLen], h[0])
		return nil
	}

	// Zero-pad x into the transform buffer.
	for i := 0; i < c.xLen; i++ {
		c.xBuf[i] = complex(x[i], 0)
	}
	for i := c.xLen; i < c.fftSize; i++ {
		c.xBuf[i] = 0
	}

	// Zero-pad the time-reversed template: correlation is convolution with
	// the reversed second signal.
	for i := 0; i < c.hLen; i++ {
		c.hBuf[i] = complex(h[c.hLen-1-i], 0)
	}
	for i := c.hLen; i < c.fftSize; i++ {
		c.hBuf[i] = 0
	}

	if err := c.plan.Forward(c.xBuf, c.xBuf); err != nil {
		return fmt.Errorf("correlate: forward FFT failed: %w", err)
	}
	if err := c.plan.Forward(c.hBuf, c.hBuf); err != nil {
		return fmt.Errorf("correlate: forward FFT failed: %w", err)
	}

	ivec.MulSpectrum(c.prod, c.xBuf, c.hBuf)

	if err := c.plan.Inverse(c.prod, c.prod); err != nil {
		return fmt.Errorf("correlate: inverse FFT failed: %w", err)
	}

	outputLen := c.xLen + c.hLen - 1
	for i := 0; i < outputLen; i++ {
		result[i] = real(c.prod[i])
	}

	return nil
}

// Close releases the plan and scratch buffers. Using the handle after Close,
// or closing twice, is a caller error.
func (c *FFT) Close() {
	c.plan = nil
	c.xBuf = nil
	c.hBuf = nil
	c.prod = nil
}
