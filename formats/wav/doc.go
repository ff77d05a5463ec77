// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV file decoding and encoding at the codec
// boundary.
//
// This package bridges binary WAV streams and wave.Wave values using
// github.com/go-audio/wav for the RIFF plumbing. The core library never
// sees bytes or bit depths; both exist only here.
//
// # Supported Formats
//
//   - PCM at 8, 16, 24, or 32 bits per sample
//   - Any channel count and sample rate
//
// # Decoding
//
//	file, _ := os.Open("audio.wav")
//	w, err := wav.Decode[float64](file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a RIFF/WAVE stream
//	}
//
// Decode loads the whole data chunk and normalizes integer samples to
// float in [-1.0, 1.0] according to the file's bit depth. WAV stores
// 8-bit PCM unsigned (midpoint 128); Decode and Encode handle the offset,
// so callers always see signed, zero-centered samples.
//
// # Encoding
//
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, w, 16)
//
// The bit depth is purely an encode parameter; internal storage is always
// floating-point. Samples outside [-1,1] (which mixing can legitimately
// produce) are clamped during the integer conversion.
//
// # Registry Integration
//
// Decoder is a zero-sized adapter satisfying the wavemix registry
// protocol:
//
//	registry.Register("wav", wav.Decoder[float64]{})
package wav
