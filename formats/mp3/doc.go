// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding at the codec boundary.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode an entire MP3
// stream into one wave.Wave.
//
// # Output Format
//
//   - Sample format: normalized float in [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 upmixes mono sources)
//   - Sample rate: taken from the MP3 stream
//
// # Decoding
//
//	file, _ := os.Open("audio.mp3")
//	w, err := mp3.Decode[float64](file)
//
// To get mono, downmix after decoding:
//
//	mono, err := w.Filter(filters.DownmixMono[float64]())
//
// # Limitations
//
// MP3 encoding is not supported; convert to WAV via formats/wav instead.
package mp3
