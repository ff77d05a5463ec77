// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavemix/utils"
	"github.com/ik5/wavemix/wave"
)

// Decode reads an entire PCM WAV stream into a Wave. Integer samples are
// normalized to the nominal [-1,1] range according to the file's bit
// depth; sample rate and channel count come from the fmt chunk.
func Decode[T wave.Float](r io.ReadSeeker) (wave.Wave[T], error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return wave.Wave[T]{}, ErrNotWavFile
	}

	bitDepth := int(dec.BitDepth)
	offset := 0
	switch bitDepth {
	case 8:
		// 8-bit WAV PCM is unsigned with a midpoint of 128.
		offset = 128
	case 16, 24, 32:
	default:
		return wave.Wave[T]{}, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return wave.Wave[T]{}, fmt.Errorf("%w", err)
	}

	samples := make([]T, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = utils.IntToFloat[T](v-offset, bitDepth)
	}

	return wave.New(samples, buf.Format.SampleRate, buf.Format.NumChannels)
}

// Decoder adapts Decode to the wavemix registry protocol.
type Decoder[T wave.Float] struct{}

func (Decoder[T]) Decode(r io.ReadSeeker) (wave.Wave[T], error) {
	return Decode[T](r)
}
