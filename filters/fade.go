// SPDX-License-Identifier: EPL-2.0

package filters

import (
	"fmt"

	"github.com/ik5/wavemix/wave"
)

// FadeIn ramps the first frames of the wave linearly from silence to full
// amplitude. frames beyond the wave's length are clamped; all channels of
// a frame share the same gain.
func FadeIn[T wave.Float](frames int) wave.Filter[T] {
	return func(w wave.Wave[T]) (wave.Wave[T], error) {
		if frames < 0 {
			return wave.Wave[T]{}, fmt.Errorf("%w: %d frames", ErrInvalidLength, frames)
		}

		ramp := min(frames, w.Frames())
		channels := w.Channels()
		out := make([]T, w.Len())
		copy(out, w.Samples())

		for f := 0; f < ramp; f++ {
			gain := T(f) / T(frames)
			base := f * channels
			for c := 0; c < channels; c++ {
				out[base+c] *= gain
			}
		}

		return wave.New(out, w.SampleRate(), channels)
	}
}

// FadeOut ramps the last frames of the wave linearly down to silence.
func FadeOut[T wave.Float](frames int) wave.Filter[T] {
	return func(w wave.Wave[T]) (wave.Wave[T], error) {
		if frames < 0 {
			return wave.Wave[T]{}, fmt.Errorf("%w: %d frames", ErrInvalidLength, frames)
		}

		total := w.Frames()
		ramp := min(frames, total)
		channels := w.Channels()
		out := make([]T, w.Len())
		copy(out, w.Samples())

		for i := 0; i < ramp; i++ {
			f := total - 1 - i
			gain := T(i) / T(frames)
			base := f * channels
			for c := 0; c < channels; c++ {
				out[base+c] *= gain
			}
		}

		return wave.New(out, w.SampleRate(), channels)
	}
}
