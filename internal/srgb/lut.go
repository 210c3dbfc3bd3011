package srgb

// Lookup-table fast path for the transfer function.
//
// The decode table has one entry per 8-bit input and is therefore bit-exact
// against Decode. The encode table samples the curve at 12-bit precision,
// which keeps EncodeFast within one quantization step of Encode; that is
// plenty for 8-bit output and roughly 20x cheaper than the Pow call.

// decodeLUT converts encoded byte [0,255] to linear float32 [0,1].
var decodeLUT [256]float32

// encodeLUT converts linear float32 [0,1] (12-bit index) to an encoded byte.
var encodeLUT [4096]uint8

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = Decode(uint8(i))
	}
	for i := range encodeLUT {
		encodeLUT[i] = Encode(float32(i) / 4095.0)
	}
}

// DecodeFast converts an encoded sRGB channel to linear light using the
// lookup table. Identical to Decode for every input.
func DecodeFast(v uint8) float32 {
	return decodeLUT[v]
}

// EncodeFast converts linear light to an encoded sRGB channel using the
// lookup table. Input is clamped to [0,1]; the result is within one step
// of Encode.
func EncodeFast(l float32) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	i := int(l*4095.0 + 0.5)
	if i > 4095 {
		i = 4095
	}
	return encodeLUT[i]
}
