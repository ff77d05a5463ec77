// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float mirrors the sample precisions supported by the wave package. It is
// declared locally so utils stays dependency-free.
type Float interface {
	~float32 | ~float64
}

// fullScale returns the magnitude of the most negative value representable
// at the given signed PCM bit depth. Unknown depths fall back to 16-bit.
func fullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat normalizes a signed PCM value at bitDepth to the nominal
// [-1,1] floating-point range.
func IntToFloat[T Float](v int, bitDepth int) T {
	return T(float64(v) / fullScale(bitDepth))
}

// FloatToInt converts a floating-point sample to signed PCM at bitDepth,
// clamping to [-1,1] first. The positive scale is fullScale-1 to avoid
// overflowing the integer range.
func FloatToInt[T Float](v T, bitDepth int) int {
	x := float64(v)
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(x * (fullScale(bitDepth) - 1))
}

// PCM16BytesToFloat converts little-endian 16-bit PCM bytes to normalized
// samples. A trailing odd byte is ignored.
func PCM16BytesToFloat[T Float](b []byte) []T {
	count := len(b) / 2
	out := make([]T, count)

	for i := 0; i < count; i++ {
		v := int16(binary.LittleEndian.Uint16(b[2*i : 2*i+2]))
		out[i] = T(v) / 32768.0
	}

	return out
}
