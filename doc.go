// Package sampleconv converts normalized floating-point samples
// (-1.0..1.0) to and from fixed-point integer sample codes.
//
// Conversions use the full representable range of the target type: 1.0
// maps to the type's maximum, -1.0 to its minimum (0 for unsigned,
// offset-binary types), and 0.0 maps exactly to the type's zero point in
// both directions. Intermediate values are quantized with
// round-half-to-even to avoid cumulative rounding bias.
//
// Native Go integer widths are covered by the generic FloatToInt and
// IntToFloat. Formats without a native Go type (24-bit PCM, 12-bit ADC
// codes) go through a runtime Depth descriptor built from a bit count
// and a signedness flag. QuantizeBuffer and NormalizeBuffer bridge to
// the go-audio/audio buffer types.
//
// Every operation is a pure function over caller-owned memory, safe for
// concurrent use on disjoint data.
package sampleconv
