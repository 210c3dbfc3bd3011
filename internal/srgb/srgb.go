// Package srgb implements the sRGB transfer function (IEC 61966-2-1).
//
// Decode maps an encoded 8-bit channel to linear light and Encode maps
// linear light back to an encoded 8-bit channel. Both use the standard
// two-segment curve: linear below a fixed threshold, power-law above it.
// Alpha never goes through this package; it is scaled linearly by callers.
//
// A lookup-table fast path with the identical contract lives in lut.go.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear
package srgb

import "github.com/chewxy/math32"

// Decode converts an encoded sRGB channel to linear light in [0,1].
// Formula: if s <= 0.04045: s/12.92; else: ((s+0.055)/1.055)^2.4
func Decode(v uint8) float32 {
	s := float32(v) / 255.0
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// Encode converts linear light to an encoded sRGB channel.
// Input is clamped to [0,1]; quantization rounds half up.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*l^(1/2.4)-0.055
func Encode(l float32) uint8 {
	if l <= 0 {
		l = 0
	}
	if l >= 1 {
		l = 1
	}
	var s float32
	if l <= 0.0031308 {
		s = l * 12.92
	} else {
		s = 1.055*math32.Pow(l, 1.0/2.4) - 0.055
	}
	q := math32.Floor(s*255.0 + 0.5)
	if q < 0 {
		return 0
	}
	if q > 255 {
		return 255
	}
	return uint8(q)
}
