// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavemix/utils"
	"github.com/ik5/wavemix/wave"
)

// aiffReader is an interface for aiff.Decoder to allow testing.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decode reads an entire AIFF stream into a Wave. Integer samples are
// normalized to the nominal [-1,1] range according to the file's bit
// depth.
func Decode[T wave.Float](r io.ReadSeeker) (wave.Wave[T], error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return wave.Wave[T]{}, ErrNotAiffFile
	}

	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return wave.Wave[T]{}, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil {
		return wave.Wave[T]{}, ErrUnsupportedAiffLayout
	}

	return drain[T](dec, format, bitDepth)
}

func drain[T wave.Float](dec aiffReader, format *goaudio.Format, bitDepth int) (wave.Wave[T], error) {
	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}

	var samples []T
	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			for _, v := range buf.Data[:n] {
				samples = append(samples, utils.IntToFloat[T](v, bitDepth))
			}
		}

		if err == io.EOF || n == 0 {
			break
		}
		if err != nil {
			return wave.Wave[T]{}, fmt.Errorf("%w", err)
		}
	}

	return wave.New(samples, format.SampleRate, format.NumChannels)
}

// Decoder adapts Decode to the wavemix registry protocol.
type Decoder[T wave.Float] struct{}

func (Decoder[T]) Decode(r io.ReadSeeker) (wave.Wave[T], error) {
	return Decode[T](r)
}
