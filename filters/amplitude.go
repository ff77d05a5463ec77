// SPDX-License-Identifier: EPL-2.0

package filters

import (
	"fmt"

	"github.com/ik5/wavemix/wave"
)

// Gain scales every sample by factor. Output is not clamped; a gain above
// unity may push samples outside the nominal [-1,1] range.
func Gain[T wave.Float](factor float64) wave.Filter[T] {
	return func(w wave.Wave[T]) (wave.Wave[T], error) {
		scale := T(factor)
		out := make([]T, w.Len())
		for i, s := range w.Samples() {
			out[i] = s * scale
		}

		return wave.New(out, w.SampleRate(), w.Channels())
	}
}

// Invert flips the polarity of every sample. Mixing a wave with its
// inversion yields silence.
func Invert[T wave.Float]() wave.Filter[T] {
	return func(w wave.Wave[T]) (wave.Wave[T], error) {
		out := make([]T, w.Len())
		for i, s := range w.Samples() {
			out[i] = -s
		}

		return wave.New(out, w.SampleRate(), w.Channels())
	}
}

// Normalize scales the wave so its highest absolute sample equals peak.
// Silent or empty input passes through unchanged. peak must be positive.
func Normalize[T wave.Float](peak float64) wave.Filter[T] {
	return func(w wave.Wave[T]) (wave.Wave[T], error) {
		if peak <= 0 {
			return wave.Wave[T]{}, fmt.Errorf("%w: peak %v", ErrInvalidPeak, peak)
		}

		var maxAbs T
		for _, s := range w.Samples() {
			if s < 0 {
				s = -s
			}
			if s > maxAbs {
				maxAbs = s
			}
		}

		if maxAbs == 0 {
			return w.Clone(), nil
		}

		scale := T(peak) / maxAbs
		out := make([]T, w.Len())
		for i, s := range w.Samples() {
			out[i] = s * scale
		}

		return wave.New(out, w.SampleRate(), w.Channels())
	}
}
