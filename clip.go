package sampleconv

// Clip restricts value to the normalized sample domain [-1.0, 1.0].
// Values inside the domain pass through unchanged.
func Clip[F Float](value F) F {
	if value > 1 {
		return 1
	}

	if value < -1 {
		return -1
	}

	return value
}

// ClipSlice clips every element of values in place.
func ClipSlice[F Float](values []F) {
	for i, v := range values {
		values[i] = Clip(v)
	}
}
