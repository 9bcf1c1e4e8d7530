package correlate

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	ivec "github.com/cwbudde/algo-correlate/internal/vecmath"
)

// OverlapSave computes cross-correlation in fixed-size blocks using the
// overlap-save method. Each block transforms fftSize samples of the signal
// (the previous block's last hLen-1 samples plus stepSize new ones),
// multiplies by the transformed reversed template, inverse transforms, and
// discards the first hLen-1 samples of the result, which are contaminated by
// circular wrap-around.
//
// Compared to the single whole-signal FFT handle, overlap-save trades a
// per-block overhead for a bounded working set: the transform length depends
// only on the template, not on the signal. This is preferable when the signal
// greatly exceeds the template.
//
// A handle is valid only for the (xLen, hLen) pair it was created with.
// Compute is not safe for concurrent use on the same handle.
type OverlapSave struct {
	xLen     int
	hLen     int
	fftSize  int
	stepSize int // valid output samples per block = fftSize - hLen + 1

	plan *algofft.Plan[complex128]

	// Scratch buffers, reused across calls.
	seg   []float64    // staged block: carry + new samples + zero pad
	carry []float64    // last hLen-1 input samples of the previous block
	block []complex128 // transform input/output
	hFreq []complex128 // transformed reversed template, computed per call
	prod  []complex128 // frequency-domain product
}

// NewOverlapSave creates an overlap-save correlation handle with an
// automatically chosen block length: the FFT size is several multiples of the
// template length, so the per-block transform cost amortizes the fixed
// overhead while the working set stays small.
func NewOverlapSave(xLen, hLen int) (*OverlapSave, error) {
	fftSize := nextPowerOf2(4 * hLen)
	if fftSize < 256 {
		fftSize = 256
	}
	return NewOverlapSaveSize(xLen, hLen, fftSize)
}

// NewOverlapSaveSize creates an overlap-save correlation handle with an
// explicit FFT size. fftSize must be a power of 2 and at least 2*hLen.
// The block length only affects performance: any valid size produces
// identical output.
func NewOverlapSaveSize(xLen, hLen, fftSize int) (*OverlapSave, error) {
	if xLen <= 0 {
		return nil, ErrEmptyInput
	}
	if hLen <= 0 {
		return nil, ErrEmptyTemplate
	}

	c := &OverlapSave{
		xLen: xLen,
		hLen: hLen,
	}

	// A single-sample template reduces to a scaled copy; no plan needed.
	if hLen == 1 {
		return c, nil
	}

	if !isPowerOf2(fftSize) {
		return nil, fmt.Errorf("%w: must be power of 2, got %d", ErrInvalidFFTSize, fftSize)
	}
	if fftSize < 2*hLen {
		return nil, fmt.Errorf("%w: %d too small for template length %d", ErrInvalidFFTSize, fftSize, hLen)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("correlate: failed to create FFT plan: %w", err)
	}

	c.fftSize = fftSize
	c.stepSize = fftSize - hLen + 1
	c.plan = plan
	c.seg = make([]float64, fftSize)
	c.carry = make([]float64, hLen-1)
	c.block = make([]complex128, fftSize)
	c.hFreq = make([]complex128, fftSize)
	c.prod = make([]complex128, fftSize)

	return c, nil
}

// XLen returns the signal length the handle was created for.
func (c *OverlapSave) XLen() int {
	return c.xLen
}

// HLen returns the template length the handle was created for.
func (c *OverlapSave) HLen() int {
	return c.hLen
}

// FFTSize returns the per-block transform length (0 for the degenerate
// single-sample template).
func (c *OverlapSave) FFTSize() int {
	return c.fftSize
}

// StepSize returns the number of valid output samples produced per block.
func (c *OverlapSave) StepSize() int {
	return c.stepSize
}

// Compute writes the cross-correlation of x and h into result.
// x must have length xLen and h length hLen (caller contract, not checked).
//
// result and x may safely be the same buffer: every block's input samples are
// staged before the block's output lands, and the hLen-1 samples a later
// block re-reads are carried in the handle. h must not alias result.
//
// The output depends only on this call's inputs; no state leaks between
// calls on the same handle.
func (c *OverlapSave) Compute(result, x, h []float64) error {
	if len(result) < c.xLen+c.hLen-1 {
		return ErrShortResult
	}
	if c.hLen == 1 {
		scaleCopy(result[:c.xLen], x[:c.xLen], h[0])
		return nil
	}

	// Transform the reversed template once per call. h is fixed for the
	// lifetime of a correlation, so this single transform amortizes over
	// all blocks of the signal.
	for i := 0; i < c.hLen; i++ {
		c.block[i] = complex(h[c.hLen-1-i], 0)
	}
	for i := c.hLen; i < c.fftSize; i++ {
		c.block[i] = 0
	}
	if err := c.plan.Forward(c.hFreq, c.block); err != nil {
		return fmt.Errorf("correlate: template FFT failed: %w", err)
	}

	outputLen := c.xLen + c.hLen - 1
	overlap := c.hLen - 1

	// First block has no history: the conceptual zero-padding left of x[0].
	for i := range c.carry {
		c.carry[i] = 0
	}

	for pos := 0; pos < outputLen; pos += c.stepSize {
		// Stage the block: carry, then new samples, then zeros past the
		// end of the signal.
		copy(c.seg, c.carry)

		newSamples := c.stepSize
		if pos+newSamples > c.xLen {
			newSamples = c.xLen - pos
			if newSamples < 0 {
				newSamples = 0
			}
		}
		if newSamples > 0 {
			copy(c.seg[overlap:], x[pos:pos+newSamples])
		}
		for i := overlap + newSamples; i < c.fftSize; i++ {
			c.seg[i] = 0
		}

		// Save the carry for the next block before result writes can land
		// on the aliased region of x.
		copy(c.carry, c.seg[c.stepSize:])

		for i, v := range c.seg {
			c.block[i] = complex(v, 0)
		}

		if err := c.plan.Forward(c.block, c.block); err != nil {
			return fmt.Errorf("correlate: forward FFT failed: %w", err)
		}

		ivec.MulSpectrum(c.prod, c.block, c.hFreq)

		if err := c.plan.Inverse(c.prod, c.prod); err != nil {
			return fmt.Errorf("correlate: inverse FFT failed: %w", err)
		}

		// Save discipline: the first hLen-1 samples of the block result
		// wrap around circularly and are discarded.
		valid := c.stepSize
		if pos+valid > outputLen {
			valid = outputLen - pos
		}
		for i := 0; i < valid; i++ {
			result[pos+i] = real(c.prod[overlap+i])
		}
	}

	return nil
}

// Close releases the plan and scratch buffers. Using the handle after Close,
// or closing twice, is a caller error.
func (c *OverlapSave) Close() {
	c.plan = nil
	c.seg = nil
	c.carry = nil
	c.block = nil
	c.hFreq = nil
	c.prod = nil
}
