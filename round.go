package sampleconv

import "math"

// RoundHalfToEven rounds value to the nearest integer-valued float,
// breaking exact .5 ties toward the nearest even integer (banker's
// rounding). The result is symmetric around zero:
// RoundHalfToEven(-x) == -RoundHalfToEven(x).
//
// Behavior on NaN or infinite input is undefined; clip first.
func RoundHalfToEven[F Float](value F) F {
	truncated := F(math.Trunc(float64(value)))
	remainder := value - truncated

	var offset F

	switch {
	case remainder > 0.5 || remainder < -0.5:
		offset = 1
	case remainder == 0.5 || remainder == -0.5:
		// The two candidates differ by one, so the even one is a step
		// away from truncated exactly when truncated is odd.
		if math.Mod(float64(truncated), 2) != 0 {
			offset = 1
		}
	}

	if value < 0 {
		return truncated - offset
	}

	return truncated + offset
}
