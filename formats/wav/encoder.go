// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavemix/utils"
	"github.com/ik5/wavemix/wave"
)

// Encode writes w as a PCM WAV file at the requested bit depth (8, 16, 24,
// or 32). Samples are clamped to [-1,1] during the integer conversion;
// this is the only place in the library where clamping happens.
//
// go-audio's encoder needs to patch chunk sizes after writing, so the
// destination must be seekable (an *os.File qualifies).
func Encode[T wave.Float](ws io.WriteSeeker, w wave.Wave[T], bitDepth int) error {
	offset := 0
	switch bitDepth {
	case 8:
		// 8-bit WAV PCM is unsigned with a midpoint of 128.
		offset = 128
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	data := make([]int, w.Len())
	for i, s := range w.Samples() {
		data[i] = utils.FloatToInt(s, bitDepth) + offset
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: w.Channels(),
			SampleRate:  w.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	enc := gowav.NewEncoder(ws, w.SampleRate(), bitDepth, w.Channels(), 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
