package sampleconv

// FloatToInt maps a normalized sample in [-1.0, 1.0] to the full-range
// code for I. An input of exactly 0.0 returns ZeroPoint[I], 1.0 maps to
// the type's maximum, and -1.0 to its minimum (0 for unsigned types).
//
// Input outside [-1.0, 1.0] must be clipped first (see Clip); the
// converter itself does not clamp.
func FloatToInt[I Integer, F Float](value F) I {
	return floatToInt(RangeOf[I](), float64(value))
}

// IntToFloat maps a full-range integer sample code back to a normalized
// float in [-1.0, 1.0]. The zero point maps to exactly 0.0.
func IntToFloat[F Float, I Integer](value I) F {
	return F(intToFloat(RangeOf[I](), value))
}

// FloatsToInts converts min(len(dst), len(src)) samples element-wise
// from src into dst and returns the number converted. Elements are
// independent and converted in order; src must already be clipped.
func FloatsToInts[I Integer, F Float](dst []I, src []F) int {
	r := RangeOf[I]()
	n := min(len(dst), len(src))

	for i := 0; i < n; i++ {
		dst[i] = floatToInt(r, float64(src[i]))
	}

	return n
}

// IntsToFloats converts min(len(dst), len(src)) samples element-wise
// from src into dst and returns the number converted.
func IntsToFloats[F Float, I Integer](dst []F, src []I) int {
	r := RangeOf[I]()
	n := min(len(dst), len(src))

	for i := 0; i < n; i++ {
		dst[i] = F(intToFloat(r, src[i]))
	}

	return n
}

// ToInts converts src into a newly allocated slice. It is an allocating
// convenience wrapper around FloatsToInts.
func ToInts[I Integer, F Float](src []F) []I {
	dst := make([]I, len(src))
	FloatsToInts(dst, src)

	return dst
}

// ToFloats converts src into a newly allocated slice. It is an
// allocating convenience wrapper around IntsToFloats.
func ToFloats[F Float, I Integer](src []I) []F {
	dst := make([]F, len(src))
	IntsToFloats(dst, src)

	return dst
}

// floatToInt is the scalar conversion kernel. The zero bypass keeps the
// silence round trip exact regardless of rounding elsewhere. Signed
// types scale the two halves differently (|min| = max+1 in two's
// complement) so both extremes land exactly on the type's limits.
func floatToInt[I Integer](r IntRange[I], value float64) I {
	if value == 0 {
		return r.Zero
	}

	if !r.Signed {
		zero := float64(r.Zero)
		if value < 0 {
			return I(RoundHalfToEven(zero + value*zero))
		}

		return I(RoundHalfToEven(value*(zero-1) + zero))
	}

	if value < 0 {
		return I(RoundHalfToEven(value * -float64(r.Min)))
	}

	return I(RoundHalfToEven(value * float64(r.Max)))
}

// intToFloat is the scalar inverse kernel. Each branch divides by the
// scale factor the forward kernel multiplied by, so every code round
// trips to itself.
func intToFloat[I Integer](r IntRange[I], value I) float64 {
	if value == r.Zero {
		return 0
	}

	if !r.Signed {
		zero := float64(r.Zero)
		v := float64(value) - zero

		if value < r.Zero {
			return v / zero
		}

		return v / (zero - 1)
	}

	if value < 0 {
		return float64(value) / -float64(r.Min)
	}

	return float64(value) / float64(r.Max)
}
