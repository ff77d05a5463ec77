// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/wavemix/utils"
	"github.com/ik5/wavemix/wave"
)

// go-mp3 always emits 16-bit little-endian stereo PCM.
const mp3Channels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decode reads an entire MP3 stream into a Wave. Output is always stereo;
// apply filters.DownmixMono afterwards if mono is needed.
func Decode[T wave.Float](r io.ReadSeeker) (wave.Wave[T], error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return wave.Wave[T]{}, fmt.Errorf("%w", err)
	}

	return drain[T](dec)
}

func drain[T wave.Float](dec mp3Reader) (wave.Wave[T], error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return wave.Wave[T]{}, fmt.Errorf("%w", err)
	}

	return wave.New(utils.PCM16BytesToFloat[T](pcm), dec.SampleRate(), mp3Channels)
}

// Decoder adapts Decode to the wavemix registry protocol.
type Decoder[T wave.Float] struct{}

func (Decoder[T]) Decode(r io.ReadSeeker) (wave.Wave[T], error) {
	return Decode[T](r)
}
