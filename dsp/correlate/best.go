package correlate

// Method identifies the algorithm a Correlator selected.
type Method int

const (
	// MethodDirect computes windowed dot products in the time domain.
	MethodDirect Method = iota

	// MethodFFT uses a single whole-signal transform pair per call.
	MethodFFT

	// MethodOverlapSave uses fixed-size block transforms with the save
	// discipline.
	MethodOverlapSave
)

// String returns a human-readable name for the method.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	case MethodOverlapSave:
		return "overlap-save"
	default:
		return "unknown"
	}
}

// Config holds the dispatcher's tuning parameters. The thresholds are
// performance knobs, not correctness invariants: every method produces the
// same result within floating-point tolerance.
type Config struct {
	// DirectThreshold is the template length at or below which the direct
	// method is preferred. The empirical crossover against FFT-based
	// methods sits around 64-128 samples for typical signal lengths.
	DirectThreshold int

	// DirectMaxProduct additionally admits the direct method whenever
	// xLen*hLen is at or below this bound, regardless of template length.
	// Tiny problems never amortize transform overhead.
	DirectMaxProduct int

	// OverlapSaveRatio selects overlap-save over a whole-signal FFT when
	// xLen >= OverlapSaveRatio*hLen and the single transform would exceed
	// MaxSingleFFT. Block processing keeps the working set bounded.
	OverlapSaveRatio int

	// MaxSingleFFT is the largest whole-signal transform length the
	// dispatcher is willing to plan before switching to block processing.
	MaxSingleFFT int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the dispatcher's default tuning.
func DefaultConfig() Config {
	return Config{
		DirectThreshold:  64,
		DirectMaxProduct: 4096,
		OverlapSaveRatio: 8,
		MaxSingleFFT:     1 << 17,
	}
}

// WithDirectThreshold sets the template length bound for the direct method.
func WithDirectThreshold(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.DirectThreshold = n
		}
	}
}

// WithOverlapSaveRatio sets the xLen/hLen ratio above which overlap-save is
// considered.
func WithOverlapSaveRatio(r int) Option {
	return func(cfg *Config) {
		if r > 0 {
			cfg.OverlapSaveRatio = r
		}
	}
}

// WithMaxSingleFFT sets the largest whole-signal transform length before the
// dispatcher switches to overlap-save.
func WithMaxSingleFFT(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxSingleFFT = n
		}
	}
}

// applyOptions applies zero or more options to the default config.
func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// chooseMethod picks the cheapest method for the given lengths under cfg.
// Deterministic for fixed lengths and configuration.
func chooseMethod(xLen, hLen int, cfg Config) Method {
	if hLen <= cfg.DirectThreshold || xLen*hLen <= cfg.DirectMaxProduct {
		return MethodDirect
	}
	if xLen >= cfg.OverlapSaveRatio*hLen && nextPowerOf2(xLen+hLen-1) > cfg.MaxSingleFFT {
		return MethodOverlapSave
	}
	return MethodFFT
}

// Correlator computes cross-correlation with the best method for its length
// pair, chosen once at creation time. It owns only the state of the chosen
// strategy and forwards Compute and Close to it.
//
// Callers must honor the most restrictive aliasing rule among the strategies:
// result must not alias x or h, because the concrete choice is an
// implementation detail (observable through Method, but not part of the
// contract).
type Correlator struct {
	method Method
	xLen   int
	hLen   int

	fft *FFT
	ols *OverlapSave
}

// New creates a correlation handle for signals of length xLen and templates
// of length hLen, selecting the best method for the pair. Fails only if the
// chosen strategy's plan cannot be allocated.
func New(xLen, hLen int, opts ...Option) (*Correlator, error) {
	if xLen <= 0 {
		return nil, ErrEmptyInput
	}
	if hLen <= 0 {
		return nil, ErrEmptyTemplate
	}

	cfg := applyOptions(opts...)

	c := &Correlator{
		method: chooseMethod(xLen, hLen, cfg),
		xLen:   xLen,
		hLen:   hLen,
	}

	var err error
	switch c.method {
	case MethodFFT:
		c.fft, err = NewFFT(xLen, hLen)
	case MethodOverlapSave:
		c.ols, err = NewOverlapSave(xLen, hLen)
	case MethodDirect:
		// Stateless; nothing to allocate.
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Method returns the strategy selected at creation time.
func (c *Correlator) Method() Method {
	return c.method
}

// XLen returns the signal length the handle was created for.
func (c *Correlator) XLen() int {
	return c.xLen
}

// HLen returns the template length the handle was created for.
func (c *Correlator) HLen() int {
	return c.hLen
}

// Compute writes the cross-correlation of x and h into result.
// x must have length xLen and h length hLen (caller contract, not checked).
// result must not alias x or h.
func (c *Correlator) Compute(result, x, h []float64) error {
	if len(result) < c.xLen+c.hLen-1 {
		return ErrShortResult
	}
	switch c.method {
	case MethodFFT:
		return c.fft.Compute(result, x, h)
	case MethodOverlapSave:
		return c.ols.Compute(result, x, h)
	default:
		DirectTo(result, x, h)
		return nil
	}
}

// Close releases the chosen strategy's state. Using the handle after Close,
// or closing twice, is a caller error.
func (c *Correlator) Close() {
	if c.fft != nil {
		c.fft.Close()
		c.fft = nil
	}
	if c.ols != nil {
		c.ols.Close()
		c.ols = nil
	}
}
