// Package correlate computes cross-correlation of real-valued signals,
// selecting among several numerically-equivalent but performance-distinct
// algorithms.
//
// The package targets callers who repeatedly correlate a long signal against a
// fixed-length template (pattern matching, time alignment, pitch and echo
// detection) and want the fastest implementation for a given pair of input
// lengths on the current hardware.
//
//   - Direct: windowed dot products, O(N*M), vector-accelerated; best for
//     short templates
//   - FFT: one whole-signal transform pair per call, O(N log N); best for
//     moderate combined sizes
//   - Overlap-save: fixed-size block transforms with the save discipline;
//     best when the signal is far longer than the template and a single
//     whole-signal transform would be too large
//
// # Usage
//
// For one-shot correlation, use the simple functions:
//
//	result, err := correlate.Correlate(signal, template) // Auto-selects best algorithm
//	result, err := correlate.Direct(signal, template)    // Force direct computation
//
// For repeated correlation with fixed lengths, create a reusable handle once
// and call Compute per signal buffer:
//
//	c, err := correlate.New(len(signal), len(template))
//	defer c.Close()
//	err = c.Compute(result, signal, template)
//
// [NewFFT] and [NewOverlapSave] create handles bound to a specific algorithm.
// Every handle is scoped to the (xLen, hLen) pair it was created with; passing
// buffers of other lengths to Compute is a caller error and is deliberately
// not checked at runtime.
//
// # Output convention
//
// For an input of length xLen and a template of length hLen, every method
// writes exactly xLen + hLen - 1 samples:
//
//	result[k] = sum_i x[i] * h[i-k+hLen-1]
//
// covering all lags from -(hLen-1) to +(xLen-1). Use [LagFromIndex] and
// [FindPeak] to interpret the result.
//
// # Aliasing
//
// The FFT and overlap-save handles allow result and x to be the same buffer.
// The direct method and the automatic [Correlator] do not allow any aliasing
// between result and either input. Violations are undefined behavior, not
// reported errors.
//
// # Algorithm Selection
//
// [New] picks a method from the two lengths and the detected CPU features.
// The crossover thresholds are tuning parameters, not correctness invariants;
// they can be adjusted per workload with [WithDirectThreshold],
// [WithOverlapSaveRatio] and [WithMaxSingleFFT]. Selection is deterministic
// for fixed lengths and fixed CPU features.
package correlate
