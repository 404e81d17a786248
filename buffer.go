package sampleconv

import "github.com/go-audio/audio"

// QuantizeBuffer converts a normalized float buffer into integer codes
// at depth d. Samples are clipped before conversion. The returned
// buffer shares src's format and reports d.Bits as its source bit
// depth. A nil src returns nil.
func QuantizeBuffer(d Depth, src *audio.FloatBuffer) *audio.IntBuffer {
	if src == nil {
		return nil
	}

	out := &audio.IntBuffer{
		Format:         src.Format,
		SourceBitDepth: d.Bits,
		Data:           make([]int, len(src.Data)),
	}

	r := d.intRange()
	for i, v := range src.Data {
		out.Data[i] = int(floatToInt(r, Clip(v)))
	}

	return out
}

// NormalizeBuffer converts integer codes at depth d back to normalized
// float64 samples. A nil src returns nil.
func NormalizeBuffer(d Depth, src *audio.IntBuffer) *audio.FloatBuffer {
	if src == nil {
		return nil
	}

	out := &audio.FloatBuffer{
		Format: src.Format,
		Data:   make([]float64, len(src.Data)),
	}

	r := d.intRange()
	for i, v := range src.Data {
		out.Data[i] = intToFloat(r, int64(v))
	}

	return out
}

// QuantizeFloat32Buffer is QuantizeBuffer for float32 sample data.
func QuantizeFloat32Buffer(d Depth, src *audio.Float32Buffer) *audio.IntBuffer {
	if src == nil {
		return nil
	}

	out := &audio.IntBuffer{
		Format:         src.Format,
		SourceBitDepth: d.Bits,
		Data:           make([]int, len(src.Data)),
	}

	r := d.intRange()
	for i, v := range src.Data {
		out.Data[i] = int(floatToInt(r, float64(Clip(v))))
	}

	return out
}

// NormalizeFloat32Buffer is NormalizeBuffer for float32 sample data.
func NormalizeFloat32Buffer(d Depth, src *audio.IntBuffer) *audio.Float32Buffer {
	if src == nil {
		return nil
	}

	out := &audio.Float32Buffer{
		Format:         src.Format,
		SourceBitDepth: d.Bits,
		Data:           make([]float32, len(src.Data)),
	}

	r := d.intRange()
	for i, v := range src.Data {
		out.Data[i] = float32(intToFloat(r, int64(v)))
	}

	return out
}
