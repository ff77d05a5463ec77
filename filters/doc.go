// SPDX-License-Identifier: EPL-2.0

// Package filters provides ready-made wave.Filter implementations.
//
// Every function here returns a wave.Filter value with its parameters
// captured, so filters can be applied directly or composed with
// wave.Chain:
//
//	quietTail := wave.Chain(
//	    filters.Gain[float64](0.8),
//	    filters.FadeOut[float64](4410),
//	)
//	out, err := w.Filter(quietTail)
//
// Amplitude filters (Gain, Invert, Normalize) preserve length and format.
// DownmixMono changes the channel count, Decimate changes the length;
// both demonstrate that the Filter protocol does not promise shape
// preservation.
//
// Parameter errors (a negative fade length, a zero decimation factor) are
// reported when the filter runs, not when it is constructed, and surface
// through wave.Filter wrapped in wave.ErrFilterFailed.
package filters
