// SPDX-License-Identifier: EPL-2.0

package filters

import "github.com/ik5/wavemix/wave"

// DownmixMono averages interleaved channels into a single channel. Mono
// input passes through unchanged. The output wave has channels=1 and one
// sample per input frame; a trailing partial frame is dropped.
func DownmixMono[T wave.Float]() wave.Filter[T] {
	return func(w wave.Wave[T]) (wave.Wave[T], error) {
		channels := w.Channels()
		if channels == 1 {
			return w.Clone(), nil
		}

		frames := w.Frames()
		src := w.Samples()
		out := make([]T, frames)
		invChannels := T(1) / T(channels)

		switch channels {
		case 2: // Stereo (most common)
			for f := 0; f < frames; f++ {
				idx := f << 1
				out[f] = (src[idx] + src[idx+1]) * 0.5
			}
		case 4: // Quad
			for f := 0; f < frames; f++ {
				idx := f << 2
				sum := src[idx] + src[idx+1] + src[idx+2] + src[idx+3]
				out[f] = sum * 0.25
			}
		default: // Generic path
			for f := 0; f < frames; f++ {
				sum := T(0)
				baseIdx := f * channels
				for c := 0; c < channels; c++ {
					sum += src[baseIdx+c]
				}
				out[f] = sum * invChannels
			}
		}

		return wave.New(out, w.SampleRate(), 1)
	}
}
