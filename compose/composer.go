// SPDX-License-Identifier: EPL-2.0

package compose

import (
	"fmt"

	"github.com/ik5/wavemix/wave"
)

// Entry places a Wave on the composition timeline. StartPoint is a
// sample-index offset at the composer's sample rate, not a time unit.
type Entry[T wave.Float] struct {
	Wave       wave.Wave[T]
	StartPoint int
}

// Composer is an insertion-ordered collection of timeline entries that
// finalizes into a single Wave. It is a value type: Append and AppendSlice
// return a new Composer with a fresh backing list, leaving the receiver
// usable and unchanged.
type Composer[T wave.Float] struct {
	sampleRate int
	channels   int
	entries    []Entry[T]
}

// New creates an empty Composer targeting the given format. Every appended
// entry must carry the same format.
func New[T wave.Float](sampleRate, channels int) (Composer[T], error) {
	if sampleRate <= 0 || channels <= 0 {
		return Composer[T]{}, wave.ErrInvalidFormat
	}

	return Composer[T]{
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// SampleRate of the composition target format in Hz.
func (c Composer[T]) SampleRate() int { return c.sampleRate }

// Channels count of the composition target format.
func (c Composer[T]) Channels() int { return c.channels }

// Len is the number of entries.
func (c Composer[T]) Len() int { return len(c.entries) }

// Entries returns a copy of the entry list in insertion order.
func (c Composer[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(c.entries))
	copy(out, c.entries)
	return out
}

// Append returns a Composer containing all prior entries plus e.
// The entry's Wave must match the composer's declared sample rate and
// channel count, otherwise ErrFormatMismatch is returned; a negative
// StartPoint returns ErrNegativeStart.
func (c Composer[T]) Append(e Entry[T]) (Composer[T], error) {
	return c.AppendSlice([]Entry[T]{e})
}

// AppendSlice returns a Composer containing all prior entries plus es, in
// the given order. Validation is all-or-nothing: on any rejected entry the
// receiver's entry list is returned unextended.
func (c Composer[T]) AppendSlice(es []Entry[T]) (Composer[T], error) {
	for _, e := range es {
		if e.StartPoint < 0 {
			return Composer[T]{}, fmt.Errorf("%w: start point %d", ErrNegativeStart, e.StartPoint)
		}
		if e.Wave.SampleRate() != c.sampleRate || e.Wave.Channels() != c.channels {
			return Composer[T]{}, fmt.Errorf("%w: entry is %d Hz/%d ch, composer is %d Hz/%d ch",
				ErrFormatMismatch,
				e.Wave.SampleRate(), e.Wave.Channels(),
				c.sampleRate, c.channels)
		}
	}

	entries := make([]Entry[T], 0, len(c.entries)+len(es))
	entries = append(entries, c.entries...)
	entries = append(entries, es...)

	return Composer[T]{
		sampleRate: c.sampleRate,
		channels:   c.channels,
		entries:    entries,
	}, nil
}

// Finalize flattens the composition into one Wave. Each entry is
// zero-padded to the full timeline length (its samples occupy
// [StartPoint, StartPoint+len) and zeros elsewhere), then all padded
// buffers are summed into an accumulator in insertion order. Floating-point
// addition is not associative, so the insertion-ordered fold is part of the
// observable contract.
//
// An empty Composer finalizes to a zero-length Wave of the target format.
// Finalize is the terminal operation of a composition; create a fresh
// Composer for further work.
func (c Composer[T]) Finalize() (wave.Wave[T], error) {
	endPoint := 0
	for _, e := range c.entries {
		if p := e.StartPoint + e.Wave.Len(); p > endPoint {
			endPoint = p
		}
	}

	acc, err := wave.Silence[T](endPoint, c.sampleRate, c.channels)
	if err != nil {
		return wave.Wave[T]{}, err
	}

	for _, e := range c.entries {
		padded, err := e.Wave.PadStart(e.StartPoint)
		if err != nil {
			return wave.Wave[T]{}, err
		}

		padded, err = padded.PadEnd(endPoint)
		if err != nil {
			return wave.Wave[T]{}, err
		}

		acc, err = acc.Mix(padded)
		if err != nil {
			return wave.Wave[T]{}, err
		}
	}

	return acc, nil
}
