// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding at the codec boundary.
//
// This package uses github.com/jfreymuth/oggvorbis to decode an entire
// Ogg Vorbis stream into one wave.Wave.
//
// # Output Format
//
//   - Sample format: float in [-1.0, 1.0] (Vorbis is natively float)
//   - Channels and sample rate: taken from the stream header
//
// Stereo samples are interleaved [L0, R0, L1, R1, ...], matching the
// wave package's layout.
//
// # Decoding
//
//	file, _ := os.Open("audio.ogg")
//	w, err := vorbis.Decode[float64](file)
//
// # Limitations
//
// Vorbis encoding is not supported; convert to WAV via formats/wav
// instead.
package vorbis
