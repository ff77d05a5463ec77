// SPDX-License-Identifier: EPL-2.0

package wave

import "time"

// Float is the set of sample precisions a Wave may carry. A Wave's
// precision is fixed at the type level; mixing across precisions is not
// supported.
type Float interface {
	~float32 | ~float64
}

// Wave is an immutable PCM buffer: an exclusively owned sequence of
// interleaved samples plus format metadata. Operations never mutate the
// receiver; they return fresh Waves with their own storage.
type Wave[T Float] struct {
	samples    []T
	sampleRate int
	channels   int
}

// New builds a Wave by deep-copying samples. The caller's slice stays
// untouched and remains the caller's responsibility. sampleRate and
// channels must be positive.
//
// Divisibility of len(samples) by channels is not validated; consumers
// that operate frame-wise ignore a trailing partial frame.
func New[T Float](samples []T, sampleRate, channels int) (Wave[T], error) {
	if sampleRate <= 0 || channels <= 0 {
		return Wave[T]{}, ErrInvalidFormat
	}

	owned := make([]T, len(samples))
	copy(owned, samples)

	return Wave[T]{
		samples:    owned,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// Silence builds a Wave of length zero-valued samples at the given format.
func Silence[T Float](length, sampleRate, channels int) (Wave[T], error) {
	if sampleRate <= 0 || channels <= 0 || length < 0 {
		return Wave[T]{}, ErrInvalidFormat
	}

	return Wave[T]{
		samples:    make([]T, length),
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// Samples exposes the owned storage. Callers must treat the returned slice
// as read-only; writing through it breaks the immutability convention.
func (w Wave[T]) Samples() []T { return w.samples }

// SampleRate of the PCM data in Hz.
func (w Wave[T]) SampleRate() int { return w.sampleRate }

// Channels count (e.g., 1=mono, 2=stereo).
func (w Wave[T]) Channels() int { return w.channels }

// Len is the total sample count across all channels.
func (w Wave[T]) Len() int { return len(w.samples) }

// Frames is the per-channel sample count, ignoring a trailing partial frame.
func (w Wave[T]) Frames() int {
	if w.channels == 0 {
		return 0
	}
	return len(w.samples) / w.channels
}

// Duration of the buffer at its sample rate.
func (w Wave[T]) Duration() time.Duration {
	if w.sampleRate == 0 {
		return 0
	}
	return time.Duration(float64(w.Frames()) / float64(w.sampleRate) * float64(time.Second))
}

// Clone returns a Wave with a fresh copy of the sample storage.
func (w Wave[T]) Clone() Wave[T] {
	owned := make([]T, len(w.samples))
	copy(owned, w.samples)

	return Wave[T]{
		samples:    owned,
		sampleRate: w.sampleRate,
		channels:   w.channels,
	}
}

// Mix sums w and other elementwise into a new Wave of the same shape.
// The two buffers must agree on sample rate, channel count, and length,
// otherwise ErrShapeMismatch is returned. Output amplitude is never
// clamped or normalized; sums outside [-1,1] are valid observable output.
func (w Wave[T]) Mix(other Wave[T]) (Wave[T], error) {
	if w.sampleRate != other.sampleRate ||
		w.channels != other.channels ||
		len(w.samples) != len(other.samples) {
		return Wave[T]{}, ErrShapeMismatch
	}

	mixed := make([]T, len(w.samples))
	for i := range w.samples {
		mixed[i] = w.samples[i] + other.samples[i]
	}

	return Wave[T]{
		samples:    mixed,
		sampleRate: w.sampleRate,
		channels:   w.channels,
	}, nil
}
