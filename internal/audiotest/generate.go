// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Float mirrors the sample precisions supported by the wave package. It is
// declared locally so this package stays import-free and usable from any
// test in the module.
type Float interface {
	~float32 | ~float64
}

// Generate builds an interleaved sample slice from a waveform function
// called per frame and channel.
func Generate[T Float](channels, frames int, waveform func(frame, channel int) T) []T {
	out := make([]T, frames*channels)
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			out[f*channels+c] = waveform(f, c)
		}
	}

	return out
}

// Sine generates a sine wave, identical on every channel.
func Sine[T Float](sampleRate, channels, frames int, frequency float64) []T {
	return Generate(channels, frames, func(frame, channel int) T {
		t := float64(frame) / float64(sampleRate)
		return T(math.Sin(2 * math.Pi * frequency * t))
	})
}

// Constant generates a buffer where every sample has the same value.
func Constant[T Float](channels, frames int, value T) []T {
	return Generate(channels, frames, func(frame, channel int) T {
		return value
	})
}

// Silence generates an all-zero buffer.
func Silence[T Float](channels, frames int) []T {
	return Constant[T](channels, frames, 0)
}

// Counting generates a buffer whose flat sample values are 1, 2, 3, ...,
// handy for asserting exact positions after padding or reversal.
func Counting[T Float](channels, frames int) []T {
	return Generate(channels, frames, func(frame, channel int) T {
		return T(frame*channels + channel + 1)
	})
}
