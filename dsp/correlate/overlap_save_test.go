package correlate

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-correlate/internal/testutil"
)

func TestNewOverlapSaveErrors(t *testing.T) {
	if _, err := NewOverlapSave(0, 4); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := NewOverlapSave(4, 0); !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("expected ErrEmptyTemplate, got %v", err)
	}

	// Not a power of 2.
	if _, err := NewOverlapSaveSize(100, 10, 100); !errors.Is(err, ErrInvalidFFTSize) {
		t.Errorf("expected ErrInvalidFFTSize, got %v", err)
	}

	// Too small for the template.
	if _, err := NewOverlapSaveSize(100, 10, 16); !errors.Is(err, ErrInvalidFFTSize) {
		t.Errorf("expected ErrInvalidFFTSize, got %v", err)
	}
}

func TestOverlapSaveGoldenVectors(t *testing.T) {
	c, err := NewOverlapSave(4, 2)
	if err != nil {
		t.Fatalf("NewOverlapSave: %v", err)
	}
	defer c.Close()

	result := make([]float64, 5)
	if err := c.Compute(result, []float64{1, 2, 3, 4}, []float64{1, 1}); err != nil {
		t.Fatalf("Compute: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, result, []float64{1, 3, 5, 7, 4}, 1e-10)
}

func TestOverlapSaveMatchesDirect(t *testing.T) {
	lengths := []struct{ x, h int }{
		{1, 1}, {1, 9}, {9, 1}, {64, 64}, {100, 31}, {1000, 64}, {4096, 100}, {3000, 255},
	}

	for _, l := range lengths {
		x := testutil.DeterministicNoise(int64(l.x), 1.0, l.x)
		h := testutil.DeterministicNoise(int64(l.h)+9000, 1.0, l.h)

		c, err := NewOverlapSave(l.x, l.h)
		if err != nil {
			t.Fatalf("x=%d h=%d: NewOverlapSave: %v", l.x, l.h, err)
		}

		got := make([]float64, l.x+l.h-1)
		if err := c.Compute(got, x, h); err != nil {
			t.Fatalf("x=%d h=%d: Compute: %v", l.x, l.h, err)
		}
		c.Close()

		want := make([]float64, l.x+l.h-1)
		DirectScalarTo(want, x, h)

		testutil.RequireFinite(t, got)
		testutil.RequireSliceNearlyEqual(t, got, want, testutil.CorrelationEps(l.h, 1))
	}
}

// The block length is a performance detail: forcing different FFT sizes must
// not change the output.
func TestOverlapSaveBlockLengthIndependent(t *testing.T) {
	const xLen, hLen = 1000, 40

	x := testutil.DeterministicNoise(51, 1.0, xLen)
	h := testutil.DeterministicNoise(52, 1.0, hLen)

	want := make([]float64, xLen+hLen-1)
	DirectScalarTo(want, x, h)

	for _, fftSize := range []int{128, 256, 512, 1024, 4096} {
		c, err := NewOverlapSaveSize(xLen, hLen, fftSize)
		if err != nil {
			t.Fatalf("fftSize=%d: %v", fftSize, err)
		}

		got := make([]float64, xLen+hLen-1)
		if err := c.Compute(got, x, h); err != nil {
			t.Fatalf("fftSize=%d: Compute: %v", fftSize, err)
		}
		c.Close()

		testutil.RequireSliceNearlyEqual(t, got, want, testutil.CorrelationEps(hLen, 1))
	}
}

// The last block must be handled correctly when the signal length is not a
// multiple of the step size, without reading past the end of x.
func TestOverlapSavePartialFinalBlock(t *testing.T) {
	const hLen = 20
	h := testutil.DeterministicNoise(61, 1.0, hLen)

	c0, err := NewOverlapSaveSize(8, hLen, 64)
	if err != nil {
		t.Fatal(err)
	}
	step := c0.StepSize()
	c0.Close()

	// One sample below, at, and above a step boundary, plus sub-step signals.
	for _, xLen := range []int{1, 3, step - 1, step, step + 1, 3*step - 1, 3 * step} {
		x := testutil.DeterministicNoise(int64(xLen)+70, 1.0, xLen)

		c, err := NewOverlapSaveSize(xLen, hLen, 64)
		if err != nil {
			t.Fatalf("xLen=%d: %v", xLen, err)
		}

		got := make([]float64, xLen+hLen-1)
		if err := c.Compute(got, x, h); err != nil {
			t.Fatalf("xLen=%d: Compute: %v", xLen, err)
		}
		c.Close()

		want := make([]float64, xLen+hLen-1)
		DirectScalarTo(want, x, h)

		testutil.RequireSliceNearlyEqual(t, got, want, testutil.CorrelationEps(hLen, 1))
	}
}

// A long template relative to the step can place the final block entirely
// inside the zero padding past the signal's end.
func TestOverlapSaveFinalBlockBeyondSignal(t *testing.T) {
	const xLen, hLen, fftSize = 130, 60, 128

	x := testutil.DeterministicNoise(81, 1.0, xLen)
	h := testutil.DeterministicNoise(82, 1.0, hLen)

	c, err := NewOverlapSaveSize(xLen, hLen, fftSize)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	got := make([]float64, xLen+hLen-1)
	if err := c.Compute(got, x, h); err != nil {
		t.Fatal(err)
	}

	want := make([]float64, xLen+hLen-1)
	DirectScalarTo(want, x, h)

	testutil.RequireSliceNearlyEqual(t, got, want, testutil.CorrelationEps(hLen, 1))
}

func TestOverlapSaveInPlaceAliasing(t *testing.T) {
	const xLen, hLen = 700, 30

	x := testutil.DeterministicNoise(81, 1.0, xLen)
	h := testutil.DeterministicNoise(82, 1.0, hLen)

	c, err := NewOverlapSaveSize(xLen, hLen, 128)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	want := make([]float64, xLen+hLen-1)
	if err := c.Compute(want, x, h); err != nil {
		t.Fatal(err)
	}

	aliased := make([]float64, xLen+hLen-1)
	copy(aliased, x)
	if err := c.Compute(aliased, aliased[:xLen], h); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, aliased, want, 0)
}

func TestOverlapSaveRepeatedComputeIndependent(t *testing.T) {
	const xLen, hLen = 300, 25

	c, err := NewOverlapSaveSize(xLen, hLen, 128)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	xA := testutil.DeterministicNoise(91, 1.0, xLen)
	hA := testutil.DeterministicNoise(92, 1.0, hLen)
	xB := testutil.DeterministicNoise(93, 1.0, xLen)
	hB := testutil.DeterministicNoise(94, 1.0, hLen)

	first := make([]float64, xLen+hLen-1)
	if err := c.Compute(first, xA, hA); err != nil {
		t.Fatal(err)
	}

	scratch := make([]float64, xLen+hLen-1)
	if err := c.Compute(scratch, xB, hB); err != nil {
		t.Fatal(err)
	}

	again := make([]float64, xLen+hLen-1)
	if err := c.Compute(again, xA, hA); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, again, first, 0)
}

func TestOverlapSaveSingleSampleTemplate(t *testing.T) {
	x := testutil.DeterministicNoise(95, 1.0, 50)

	c, err := NewOverlapSave(len(x), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	result := make([]float64, len(x))
	if err := c.Compute(result, x, []float64{-0.5}); err != nil {
		t.Fatal(err)
	}

	for i := range result {
		if result[i] != -0.5*x[i] {
			t.Fatalf("result[%d] = %v, want %v", i, result[i], -0.5*x[i])
		}
	}
}

func TestOverlapSaveStepSize(t *testing.T) {
	c, err := NewOverlapSaveSize(1000, 33, 256)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if got := c.StepSize(); got != 256-33+1 {
		t.Errorf("StepSize = %d, want %d", got, 256-33+1)
	}
	if got := c.FFTSize(); got != 256 {
		t.Errorf("FFTSize = %d, want 256", got)
	}
}
