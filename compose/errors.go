// SPDX-License-Identifier: EPL-2.0

package compose

import "errors"

var (
	ErrFormatMismatch = errors.New("entry format differs from composer format")
	ErrNegativeStart  = errors.New("entry start point must be non-negative")
)
