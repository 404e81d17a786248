package sampleconv

import (
	"errors"
	"math"
	"testing"
)

func TestNewDepth(t *testing.T) {
	tests := []struct {
		name   string
		bits   int
		signed bool
		want   Depth
	}{
		{"8 unsigned", 8, false, Depth{Bits: 8, Signed: false, Min: 0, Max: 255, Zero: 128}},
		{"16 signed", 16, true, Depth{Bits: 16, Signed: true, Min: -32768, Max: 32767, Zero: 0}},
		{"24 signed", 24, true, Depth{Bits: 24, Signed: true, Min: -8388608, Max: 8388607, Zero: 0}},
		{"12 unsigned", 12, false, Depth{Bits: 12, Signed: false, Min: 0, Max: 4095, Zero: 2048}},
		{"32 signed", 32, true, Depth{Bits: 32, Signed: true, Min: math.MinInt32, Max: math.MaxInt32, Zero: 0}},
		{"53 signed", 53, true, Depth{Bits: 53, Signed: true, Min: -(1 << 52), Max: 1<<52 - 1, Zero: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDepth(tt.bits, tt.signed)
			if err != nil {
				t.Fatalf("NewDepth(%d, %t) error: %v", tt.bits, tt.signed, err)
			}

			if got != tt.want {
				t.Fatalf("NewDepth(%d, %t)=%+v, want %+v", tt.bits, tt.signed, got, tt.want)
			}
		})
	}
}

func TestNewDepthUnsupported(t *testing.T) {
	for _, bits := range []int{-3, 0, 1, 54, 64} {
		_, err := NewDepth(bits, true)
		if !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Fatalf("NewDepth(%d, true) error=%v, want ErrUnsupportedBitDepth", bits, err)
		}
	}
}

func TestDepthMatchesGenericUint8(t *testing.T) {
	d, err := NewDepth(8, false)
	if err != nil {
		t.Fatal(err)
	}

	for code := 0; code <= math.MaxUint8; code++ {
		f := d.IntToFloat(int64(code))
		if want := IntToFloat[float64](uint8(code)); f != want {
			t.Fatalf("IntToFloat(%d)=%g, generic %g", code, f, want)
		}

		if got := d.FloatToInt(f); got != int64(code) {
			t.Fatalf("round trip %d -> %g -> %d", code, f, got)
		}
	}

	for i := -1000; i <= 1000; i++ {
		f := float64(i) / 1000
		if got, want := d.FloatToInt(f), int64(FloatToInt[uint8](f)); got != want {
			t.Fatalf("FloatToInt(%g)=%d, generic %d", f, got, want)
		}
	}
}

func TestDepthMatchesGenericInt16(t *testing.T) {
	d, err := NewDepth(16, true)
	if err != nil {
		t.Fatal(err)
	}

	for code := math.MinInt16; code <= math.MaxInt16; code++ {
		f := d.IntToFloat(int64(code))
		if want := IntToFloat[float64](int16(code)); f != want {
			t.Fatalf("IntToFloat(%d)=%g, generic %g", code, f, want)
		}

		if got := d.FloatToInt(f); got != int64(code) {
			t.Fatalf("round trip %d -> %g -> %d", code, f, got)
		}
	}
}

func TestDepth24Bit(t *testing.T) {
	d, err := NewDepth(24, true)
	if err != nil {
		t.Fatal(err)
	}

	if got := d.FloatToInt(0); got != 0 {
		t.Fatalf("FloatToInt(0)=%d, want 0", got)
	}

	if got := d.FloatToInt(1); got != 8388607 {
		t.Fatalf("FloatToInt(1)=%d, want 8388607", got)
	}

	if got := d.FloatToInt(-1); got != -8388608 {
		t.Fatalf("FloatToInt(-1)=%d, want -8388608", got)
	}

	for code := int64(-8388608); code <= 8388607; code += 1021 {
		f := d.IntToFloat(code)
		if got := d.FloatToInt(f); got != code {
			t.Fatalf("round trip %d -> %g -> %d", code, f, got)
		}
	}
}

func TestDepth12BitUnsigned(t *testing.T) {
	d, err := NewDepth(12, false)
	if err != nil {
		t.Fatal(err)
	}

	if got := d.FloatToInt(0); got != 2048 {
		t.Fatalf("FloatToInt(0)=%d, want zero point 2048", got)
	}

	if got := d.FloatToInt(1); got != 4095 {
		t.Fatalf("FloatToInt(1)=%d, want 4095", got)
	}

	if got := d.FloatToInt(-1); got != 0 {
		t.Fatalf("FloatToInt(-1)=%d, want 0", got)
	}

	if got := d.IntToFloat(2048); got != 0 {
		t.Fatalf("IntToFloat(2048)=%g, want exactly 0", got)
	}

	for code := int64(0); code <= 4095; code++ {
		f := d.IntToFloat(code)
		if got := d.FloatToInt(f); got != code {
			t.Fatalf("round trip %d -> %g -> %d", code, f, got)
		}
	}
}
