package tint

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/tint/internal/srgb"
)

// Linear decodes the color into linear-light RGBA, each component in [0,1].
// Only the color channels go through the transfer function; alpha is a
// direct scale by 255 and is never gamma-corrected.
func (c Color) Linear() [4]float32 {
	return [4]float32{
		srgb.Decode(c.R),
		srgb.Decode(c.G),
		srgb.Decode(c.B),
		float32(c.A) / 255.0,
	}
}

// FromLinear encodes a linear-light RGBA quad into a Color. Color channels
// are clamped to [0,1] and gamma-encoded; alpha is clamped and scaled by 255
// with round-half-up quantization.
func FromLinear(lin [4]float32) Color {
	return Color{
		R: srgb.Encode(lin[0]),
		G: srgb.Encode(lin[1]),
		B: srgb.Encode(lin[2]),
		A: quantize8(lin[3]),
	}
}

// quantize8 maps a fraction in [0,1] to a byte, rounding half up.
func quantize8(a float32) uint8 {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return uint8(math32.Floor(a*255.0 + 0.5))
}

// RelativeLuminance returns the WCAG relative luminance of the color,
// computed on linear channels. Black is 0, white is 1.
//
// Source: https://www.w3.org/WAI/GL/wiki/Relative_luminance
func (c Color) RelativeLuminance() float32 {
	lin := c.Linear()
	return 0.2126*lin[0] + 0.7152*lin[1] + 0.0722*lin[2]
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// in [1,21]. The order of the operands does not matter.
//
// Source: https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func (c Color) ContrastRatio(other Color) float32 {
	l1 := c.RelativeLuminance()
	l2 := other.RelativeLuminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// LightenLinear raises the linear R, G, and B values by amt (clamped to
// [0,1] per channel). Alpha is unchanged.
func (c Color) LightenLinear(amt float32) Color {
	lin := c.Linear()
	lin[0] = clamp01(lin[0] + amt)
	lin[1] = clamp01(lin[1] + amt)
	lin[2] = clamp01(lin[2] + amt)
	return FromLinear(lin)
}

// DarkenLinear lowers the linear R, G, and B values by amt (clamped to
// [0,1] per channel). Alpha is unchanged.
func (c Color) DarkenLinear(amt float32) Color {
	return c.LightenLinear(-amt)
}

// clamp01 restricts a value to [0,1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
