// SPDX-License-Identifier: EPL-2.0

// Package wavemix is a small PCM waveform processing library: immutable
// sample buffers, pure filters, and a timeline composer.
//
// # Architecture
//
// The module is organized in layers:
//
//   - wave: the core Wave buffer, Mix, padding, and the Filter protocol
//   - compose: the Composer, sequencing and overlaying Waves in time
//   - filters: ready-made Filter implementations (gain, fades, downmix, ...)
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: codec
//     adapters between byte streams and Waves
//   - wavemix (this package): the decoder registry and file-level helpers
//
// Data flows one way: bytes are decoded into a Wave at the boundary, the
// core transforms and combines Waves, and the result is encoded back to
// bytes at the boundary. The core never touches bit depths or file
// formats.
//
// # Quick Start
//
// Decode two files, overlay the second one two seconds in, and write the
// result:
//
//	bed, err := wavemix.DecodeFile[float64]("bed.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	voice, err := wavemix.DecodeFile[float64]("voice.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := wavemix.Overlay(bed.SampleRate(), bed.Channels(),
//	    []compose.Entry[float64]{
//	        {Wave: bed},
//	        {Wave: voice, StartPoint: 2 * bed.SampleRate() * bed.Channels()},
//	    })
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := wavemix.EncodeWAVFile("mixed.wav", out, 16); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sample Precision
//
// Every type in the module is generic over the sample precision: float32
// for compact buffers, float64 for headroom in long mixing chains. Pick
// one precision per pipeline; the type system prevents accidental
// cross-precision mixing.
//
// # Amplitude Semantics
//
// Mixing and composition sum samples without clamping or normalizing, so
// stacked waves can exceed the nominal [-1,1] range. That headroom is
// preserved exactly through the whole pipeline; clamping happens once, in
// the WAV encoder's float-to-integer conversion. Use filters.Normalize
// before encoding when the mix is hot.
//
// # Error Handling
//
// Every operation returns recoverable errors; nothing panics or
// terminates the process. Precondition violations (shape mismatches,
// invalid padding, bad filter parameters) are sentinel errors usable with
// errors.Is. None of them are transient, so retrying never helps.
//
// # Supported Formats
//
// Decoding: WAV, AIFF, MP3, Ogg Vorbis. Encoding: WAV at 8, 16, 24, or 32
// bits per sample. The Registry allows plugging additional decoders
// without touching this module.
package wavemix
