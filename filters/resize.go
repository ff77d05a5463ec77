// SPDX-License-Identifier: EPL-2.0

package filters

import (
	"fmt"

	"github.com/ik5/wavemix/wave"
)

// Reverse flips the frame order while keeping each frame's channel layout,
// so stereo imaging survives the reversal. A trailing partial frame is
// dropped.
func Reverse[T wave.Float]() wave.Filter[T] {
	return func(w wave.Wave[T]) (wave.Wave[T], error) {
		channels := w.Channels()
		frames := w.Frames()
		src := w.Samples()
		out := make([]T, frames*channels)

		for f := 0; f < frames; f++ {
			srcBase := f * channels
			dstBase := (frames - 1 - f) * channels
			for c := 0; c < channels; c++ {
				out[dstBase+c] = src[srcBase+c]
			}
		}

		return wave.New(out, w.SampleRate(), channels)
	}
}

// Decimate keeps every factor-th frame, shortening the wave. factor must
// be at least 1; factor=1 is the identity.
//
// Decimation without a preceding low-pass stage aliases; this filter is
// the raw frame-dropping step only.
func Decimate[T wave.Float](factor int) wave.Filter[T] {
	return func(w wave.Wave[T]) (wave.Wave[T], error) {
		if factor < 1 {
			return wave.Wave[T]{}, fmt.Errorf("%w: factor %d", ErrInvalidFactor, factor)
		}
		if factor == 1 {
			return w.Clone(), nil
		}

		channels := w.Channels()
		frames := w.Frames()
		src := w.Samples()

		kept := (frames + factor - 1) / factor
		out := make([]T, 0, kept*channels)

		for f := 0; f < frames; f += factor {
			base := f * channels
			out = append(out, src[base:base+channels]...)
		}

		return wave.New(out, w.SampleRate(), channels)
	}
}
