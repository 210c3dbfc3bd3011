package tint

import "github.com/chewxy/math32"

// HSL conversions. Hue is in degrees [0,360); saturation and lightness are
// percentages [0,100]. For grays (chroma ~0) hue and saturation are 0.

// HSL returns the hue, saturation, and lightness of the color. Alpha is
// dropped; see HSLA to keep it.
func (c Color) HSL() [3]float32 {
	h, s, l := c.hsl()
	return [3]float32{h, s, l}
}

// HSLA returns hue, saturation, lightness, and alpha as a fraction in [0,1].
func (c Color) HSLA() [4]float32 {
	h, s, l := c.hsl()
	return [4]float32{h, s, l, float32(c.A) / 255.0}
}

func (c Color) hsl() (h, s, l float32) {
	r := float32(c.R) / 255.0
	g := float32(c.G) / 255.0
	b := float32(c.B) / 255.0

	cMax := max(r, g, b)
	cMin := min(r, g, b)

	delta := cMax - cMin
	// Suppress floating noise so near-gray does not produce a spurious hue.
	if math32.Abs(delta) < 1e-8 {
		delta = 0
	}

	if delta != 0 {
		switch cMax {
		case r:
			h = 60 * modEuclid((g-b)/delta, 6)
		case g:
			h = 60 * ((b-r)/delta + 2)
		default: // b is the max
			h = 60 * ((r-g)/delta + 4)
		}
	}

	l = (cMax + cMin) / 2

	if delta != 0 {
		s = delta / (1 - math32.Abs(2*l-1))
	}

	return h, s * 100, l * 100
}

// FromHSL creates an opaque color from hue, saturation, and lightness.
// Hue outside [0,360) is wrapped; saturation and lightness are percentages.
func FromHSL(hsl [3]float32) Color {
	r, g, b := hslToRGB(hsl[0], hsl[1], hsl[2])
	return Color{R: r, G: g, B: b, A: 255}
}

// FromHSLA is FromHSL with an alpha fraction in [0,1] as the fourth element.
func FromHSLA(hsla [4]float32) Color {
	r, g, b := hslToRGB(hsla[0], hsla[1], hsla[2])
	return Color{R: r, G: g, B: b, A: quantize8(hsla[3])}
}

// hslToRGB is the standard chroma construction.
// Source: https://www.rapidtables.com/convert/color/hsl-to-rgb.html
func hslToRGB(h, s, l float32) (uint8, uint8, uint8) {
	h = modEuclid(h, 360)
	s = clamp01(s / 100)
	l = clamp01(l / 100)

	c := (1 - math32.Abs(2*l-1)) * s
	x := c * (1 - math32.Abs(modEuclid(h/60, 2)-1))
	m := l - c/2

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return quantize8(r + m), quantize8(g + m), quantize8(b + m)
}

// LightenHSL raises the HSL lightness by amt percentage points, clamped to
// [0,100]. Alpha is unchanged.
func (c Color) LightenHSL(amt float32) Color {
	h, s, l := c.hsl()
	l = clampRange(l+amt, 0, 100)
	return FromHSL([3]float32{h, s, l}).WithAlpha(c.A)
}

// DarkenHSL lowers the HSL lightness by amt percentage points, clamped to
// [0,100]. Alpha is unchanged.
func (c Color) DarkenHSL(amt float32) Color {
	return c.LightenHSL(-amt)
}

// modEuclid wraps x into [0,m), always non-negative.
func modEuclid(x, m float32) float32 {
	r := math32.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// clampRange restricts x to [lo,hi].
func clampRange(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
