package tint

import "github.com/chewxy/math32"

// Interpolation between colors. Three flavors with different tradeoffs:
// Lerp mixes encoded bytes (fast, matches CSS transitions pre-level-4),
// LerpLinear mixes in linear light (physically sensible, darker midpoints
// than Lerp for saturated pairs), LerpOKLCH mixes in polar OKLab
// (perceptually smooth, hue travels the short way around the wheel).

// Lerp linearly interpolates between the two colors in encoded sRGB space.
// t is clamped to [0,1]; t=0 returns c, t=1 returns other. All four
// channels interpolate, alpha included.
func (c Color) Lerp(other Color, t float32) Color {
	t = clamp01(t)
	mix := func(a, b uint8) uint8 {
		v := math32.Round(float32(a) + (float32(b)-float32(a))*t)
		return uint8(clampRange(v, 0, 255))
	}
	return Color{
		R: mix(c.R, other.R),
		G: mix(c.G, other.G),
		B: mix(c.B, other.B),
		A: mix(c.A, other.A),
	}
}

// LerpLinear interpolates in linear light. t is clamped to [0,1].
func (c Color) LerpLinear(other Color, t float32) Color {
	t = clamp01(t)
	a := c.Linear()
	b := other.Linear()
	return FromLinear([4]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
		a[3] + (b[3]-a[3])*t,
	})
}

// LerpOKLCH interpolates in OKLCH with shortest-path hue travel. When one
// endpoint is achromatic (chroma below 1e-5) its hue is undefined, so the
// other endpoint's hue is used for both and only lightness and chroma
// animate. Alpha interpolates linearly. t is clamped to [0,1].
func (c Color) LerpOKLCH(other Color, t float32) Color {
	t = clamp01(t)
	lch1 := c.OKLCH()
	lch2 := other.OKLCH()

	h1, h2 := lch1[2], lch2[2]
	const grayChroma = 1e-5
	if lch1[1] < grayChroma {
		h1 = h2
	} else if lch2[1] < grayChroma {
		h2 = h1
	}

	dh := h2 - h1
	if dh > 180 {
		dh -= 360
	} else if dh <= -180 {
		dh += 360
	}

	l := lch1[0] + (lch2[0]-lch1[0])*t
	chroma := lch1[1] + (lch2[1]-lch1[1])*t
	h := modEuclid(h1+dh*t, 360)

	a1 := float32(c.A) / 255.0
	a2 := float32(other.A) / 255.0

	out := FromOKLCH([3]float32{l, max(chroma, 0), h})
	return out.WithAlpha(quantize8(a1 + (a2-a1)*t))
}
