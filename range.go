package sampleconv

// IntRange describes the representable range and zero point of an
// integer sample type. The zero point is the code for zero amplitude:
// 0 for signed types, the offset-binary midpoint max/2+1 for unsigned
// types (128 for 8-bit unsigned PCM).
type IntRange[I Integer] struct {
	Signed bool
	Min    I
	Max    I
	Zero   I
}

// RangeOf computes the IntRange descriptor for I.
func RangeOf[I Integer]() IntRange[I] {
	var r IntRange[I]

	if allOnes := ^I(0); allOnes > 0 {
		r.Max = allOnes
		r.Zero = r.Max/2 + 1

		return r
	}

	r.Signed = true

	top := I(1)
	for top<<1 != 0 {
		top <<= 1
	}

	r.Min = top
	r.Max = ^top

	return r
}

// ZeroPoint returns the integer code representing zero amplitude for I.
func ZeroPoint[I Integer]() I {
	return RangeOf[I]().Zero
}
