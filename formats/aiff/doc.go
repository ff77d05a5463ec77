// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding at the codec boundary.
//
// This package uses github.com/go-audio/aiff to decode an entire AIFF
// stream into one wave.Wave. PCM at 8, 16, 24, or 32 bits per sample is
// supported; integer samples are normalized to float in [-1.0, 1.0].
//
//	file, _ := os.Open("audio.aiff")
//	w, err := aiff.Decode[float64](file)
//
// AIFF encoding is not supported; convert to WAV via formats/wav instead.
package aiff
