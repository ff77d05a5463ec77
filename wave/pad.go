// SPDX-License-Identifier: EPL-2.0

package wave

// PadStart returns a Wave with n zero-valued samples prepended. n must be
// non-negative.
func (w Wave[T]) PadStart(n int) (Wave[T], error) {
	if n < 0 {
		return Wave[T]{}, ErrInvalidPadding
	}

	padded := make([]T, n+len(w.samples))
	copy(padded[n:], w.samples)

	return Wave[T]{
		samples:    padded,
		sampleRate: w.sampleRate,
		channels:   w.channels,
	}, nil
}

// PadEnd returns a Wave extended with zero-valued samples until its length
// equals targetLen. targetLen must be at least the current length.
func (w Wave[T]) PadEnd(targetLen int) (Wave[T], error) {
	if targetLen < len(w.samples) {
		return Wave[T]{}, ErrInvalidPadding
	}

	padded := make([]T, targetLen)
	copy(padded, w.samples)

	return Wave[T]{
		samples:    padded,
		sampleRate: w.sampleRate,
		channels:   w.channels,
	}, nil
}
