// SPDX-License-Identifier: EPL-2.0

// Package compose sequences and overlays Waves on a shared timeline.
//
// A Composer collects (Wave, start point) entries and flattens them into a
// single Wave:
//
//	c, _ := compose.New[float64](44100, 1)
//	c, _ = c.Append(compose.Entry[float64]{Wave: intro})
//	c, _ = c.Append(compose.Entry[float64]{Wave: melody, StartPoint: 44100})
//	out, err := c.Finalize()
//
// Entries may overlap; overlapping regions sum additively, exactly like
// wave.Mix, and the result is never clamped or normalized.
//
// # Timeline Arithmetic
//
// StartPoint is measured in samples at the composer's sample rate. The
// finalized length is the maximum of StartPoint + entry length over all
// entries; gaps between entries come out as silence.
//
// # Value Semantics
//
// Append and AppendSlice are value-returning: each call produces a new
// Composer with its own entry list, so intermediate composers remain valid
// snapshots:
//
//	base, _ := compose.New[float64](44100, 1)
//	withDrums, _ := base.Append(drums)
//	withBass, _ := base.Append(bass) // independent of withDrums
//
// # Format Validation
//
// Every appended entry must match the composer's declared sample rate and
// channel count; a mismatch is rejected at append time with
// ErrFormatMismatch rather than silently producing a buffer whose claimed
// format disagrees with its content.
package compose
