// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/wavemix/wave"
	"github.com/jfreymuth/oggvorbis"
)

// Decode reads an entire Ogg Vorbis stream into a Wave. Vorbis already
// decodes to floating-point samples, so no normalization step is needed.
func Decode[T wave.Float](r io.ReadSeeker) (wave.Wave[T], error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return wave.Wave[T]{}, fmt.Errorf("%w", err)
	}

	samples := make([]T, len(data))
	for i, v := range data {
		samples[i] = T(v)
	}

	return wave.New(samples, format.SampleRate, format.Channels)
}

// Decoder adapts Decode to the wavemix registry protocol.
type Decoder[T wave.Float] struct{}

func (Decoder[T]) Decode(r io.ReadSeeker) (wave.Wave[T], error) {
	return Decode[T](r)
}
