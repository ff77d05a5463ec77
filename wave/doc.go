// SPDX-License-Identifier: EPL-2.0

// Package wave provides the core PCM buffer value and its operators.
//
// This package contains the building blocks every other package composes:
//   - Wave, an owned fixed-length sample buffer with format metadata
//   - Mix, elementwise addition of two equal-shaped buffers
//   - Filter, the protocol for pure buffer-to-buffer transformations
//   - PadStart/PadEnd, the zero-padding primitives used for time alignment
//
// # Ownership Model
//
// A Wave exclusively owns its sample storage. Construction deep-copies the
// caller's slice, and every operation returns a new Wave with fresh
// storage, so no two Waves ever alias the same samples:
//
//	w, err := wave.New([]float64{0.1, -0.1, 0.2}, 44100, 1)
//	louder, err := w.Filter(filters.Gain[float64](2))
//
// After filtering, the input Wave is logically consumed; reusing it is a
// convention violation even though the copied storage makes it safe in
// practice.
//
// # Sample Format
//
// Samples are floating-point values, nominally in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// The nominal range is a codec-boundary convention, not an invariant: Mix
// never clamps, so summed amplitudes may leave the range and are preserved
// exactly. Clamping happens only when a codec adapter converts back to
// integer PCM.
//
// The sample precision is a type parameter. Wave[float32] and
// Wave[float64] are distinct types and never mix with each other; pick one
// precision per pipeline.
//
// # Mixing
//
// Mix requires the two buffers to be compatible: equal sample rate, equal
// channel count, and equal length. Anything else returns ErrShapeMismatch:
//
//	sum, err := a.Mix(b)
//	if errors.Is(err, wave.ErrShapeMismatch) {
//	    // buffers were not aligned; pad first
//	}
//
// Use PadStart/PadEnd (or the compose package, which does it for you) to
// align buffers of different lengths before mixing.
//
// # Filters
//
// A Filter is a plain function value. Stateful parameters are captured at
// construction:
//
//	half := wave.Filter[float64](func(w wave.Wave[float64]) (wave.Wave[float64], error) {
//	    return filters.Gain[float64](0.5)(w)
//	})
//	out, err := w.Filter(half)
//
// Filters compose sequentially; Chain builds one filter from many. Errors
// from a filter are wrapped in ErrFilterFailed and returned to the caller
// rather than terminating anything.
//
// # Error Handling
//
// All precondition violations are recoverable errors, comparable with
// errors.Is against the package sentinels. None of them are transient;
// retrying never helps.
package wave
