// SPDX-License-Identifier: EPL-2.0

package wavemix

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wavemix/compose"
	"github.com/ik5/wavemix/formats/wav"
	"github.com/ik5/wavemix/wave"
)

// DecodeFile loads an audio file into a Wave, picking the decoder from the
// default registry by file extension.
//
// Parameters:
//   - path: file to decode; the lowercased extension selects the format
//     ("wav", "aiff"/"aif", "mp3", "ogg")
//
// Returns the decoded Wave, or ErrUnknownFormat when no decoder is
// registered for the extension.
//
// Example:
//
//	w, err := wavemix.DecodeFile[float64]("melody.wav")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(w.SampleRate(), w.Channels(), w.Len())
func DecodeFile[T wave.Float](path string) (wave.Wave[T], error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := DefaultRegistry[T]().Get(ext)
	if !ok {
		return wave.Wave[T]{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return wave.Wave[T]{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return dec.Decode(f)
}

// EncodeWAVFile writes w to path as a PCM WAV file at bitDepth.
func EncodeWAVFile[T wave.Float](path string, w wave.Wave[T], bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.Encode(f, w, bitDepth); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Overlay is a one-call composition: it builds a Composer at the given
// format, appends entries in order, and finalizes. Overlapping entries sum
// additively and the result is never normalized.
//
// Example:
//
//	out, err := wavemix.Overlay(44100, 1, []compose.Entry[float64]{
//	    {Wave: drums},
//	    {Wave: melody, StartPoint: 22050},
//	})
func Overlay[T wave.Float](sampleRate, channels int, entries []compose.Entry[T]) (wave.Wave[T], error) {
	c, err := compose.New[T](sampleRate, channels)
	if err != nil {
		return wave.Wave[T]{}, err
	}

	c, err = c.AppendSlice(entries)
	if err != nil {
		return wave.Wave[T]{}, err
	}

	return c.Finalize()
}
