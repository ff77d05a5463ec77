// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	ErrInvalidFormat  = errors.New("sample rate and channels must be positive")
	ErrShapeMismatch  = errors.New("waves differ in sample rate, channels, or length")
	ErrInvalidPadding = errors.New("padding target shorter than current length")
	ErrFilterFailed   = errors.New("filter failed")
)
