// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestIntToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        int
		bitDepth int
		want     float64
	}{
		{"16-bit positive", 16384, 16, 0.5},
		{"16-bit negative full scale", -32768, 16, -1},
		{"16-bit zero", 0, 16, 0},
		{"8-bit", -128, 8, -1},
		{"24-bit", 4194304, 24, 0.5},
		{"32-bit", -2147483648, 32, -1},
		{"unknown depth falls back to 16-bit", 32768, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntToFloat[float64](tt.v, tt.bitDepth); got != tt.want {
				t.Errorf("IntToFloat(%d, %d) = %v, want %v", tt.v, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestFloatToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        float64
		bitDepth int
		want     int
	}{
		{"16-bit full scale", 1, 16, 32767},
		{"16-bit negative full scale", -1, 16, -32767},
		{"16-bit half", 0.5, 16, 16383},
		{"clamps above 1", 2.5, 16, 32767},
		{"clamps below -1", -3, 16, -32767},
		{"8-bit full scale", 1, 8, 127},
		{"24-bit full scale", 1, 24, 8388607},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloatToInt(tt.v, tt.bitDepth); got != tt.want {
				t.Errorf("FloatToInt(%v, %d) = %d, want %d", tt.v, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestConversion_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 24, 32} {
		for _, v := range []float64{-1, -0.5, 0, 0.25, 0.999} {
			got := IntToFloat[float64](FloatToInt(v, bits), bits)
			// The asymmetric encode scale (fullScale-1) plus truncation
			// costs up to two quantization steps at the given depth.
			step := 2.0 / fullScale(bits)
			if math.Abs(got-v) > step {
				t.Errorf("round trip at %d bits: %v -> %v, off by more than %v", bits, v, got, step)
			}
		}
	}
}

func TestPCM16BytesToFloat(t *testing.T) {
	t.Parallel()

	b := make([]byte, 6)
	binary.LittleEndian.PutUint16(b[0:2], 16384)
	binary.LittleEndian.PutUint16(b[2:4], 0x8000) // int16(-32768) on the wire
	binary.LittleEndian.PutUint16(b[4:6], 0)

	got := PCM16BytesToFloat[float64](b)
	want := []float64{0.5, -1, 0}

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPCM16BytesToFloat_IgnoresTrailingByte(t *testing.T) {
	t.Parallel()

	got := PCM16BytesToFloat[float32]([]byte{0, 64, 0xFF})
	if len(got) != 1 {
		t.Fatalf("length = %d, want 1", len(got))
	}
	if got[0] != 0.5 {
		t.Errorf("sample[0] = %v, want 0.5", got[0])
	}
}

func TestPCM16BytesToFloat_Empty(t *testing.T) {
	t.Parallel()

	if got := PCM16BytesToFloat[float64](nil); len(got) != 0 {
		t.Errorf("length = %d, want 0", len(got))
	}
}
