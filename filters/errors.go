// SPDX-License-Identifier: EPL-2.0

package filters

import "errors"

var (
	ErrInvalidPeak   = errors.New("normalize peak must be positive")
	ErrInvalidLength = errors.New("fade length must be non-negative")
	ErrInvalidFactor = errors.New("decimation factor must be at least 1")
)
