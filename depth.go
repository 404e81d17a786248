package sampleconv

import "errors"

// ErrUnsupportedBitDepth is returned by NewDepth for bit depths outside
// the supported 2..53 range.
var ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

// Depth describes a fixed-point sample format of arbitrary width, for
// widths that have no native Go integer type (24-bit PCM, 12-bit ADC
// codes). Codes are carried in int64; the zero-point and range rules
// match IntRange.
type Depth struct {
	Bits   int
	Signed bool
	Min    int64
	Max    int64
	Zero   int64
}

// NewDepth builds the descriptor for a sample format bits wide. Depths
// outside 2 through 53 bits return ErrUnsupportedBitDepth; 53 bits is
// the widest format whose extremes survive float64 arithmetic exactly.
func NewDepth(bits int, signed bool) (Depth, error) {
	if bits < 2 || bits > 53 {
		return Depth{}, ErrUnsupportedBitDepth
	}

	d := Depth{Bits: bits, Signed: signed}
	if signed {
		d.Min = -(int64(1) << (bits - 1))
		d.Max = int64(1)<<(bits-1) - 1

		return d, nil
	}

	d.Max = int64(1)<<bits - 1
	d.Zero = d.Max/2 + 1

	return d, nil
}

// FloatToInt maps a normalized sample in [-1.0, 1.0] to the full-range
// code for d, under the same contract as the generic FloatToInt.
func (d Depth) FloatToInt(value float64) int64 {
	return floatToInt(d.intRange(), value)
}

// IntToFloat maps a full-range code for d back to a normalized float.
func (d Depth) IntToFloat(value int64) float64 {
	return intToFloat(d.intRange(), value)
}

func (d Depth) intRange() IntRange[int64] {
	return IntRange[int64]{Signed: d.Signed, Min: d.Min, Max: d.Max, Zero: d.Zero}
}
