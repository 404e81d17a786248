package sampleconv

// Signed is the set of signed fixed-width integer sample types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned (offset-binary) integer sample types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the set of supported integer sample types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of supported normalized sample types.
type Float interface {
	~float32 | ~float64
}
