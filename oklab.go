package tint

import "github.com/chewxy/math32"

// OKLab / OKLCH conversions. OKLab is a perceptually uniform space: L is
// lightness, a and b are opponent-color axes. OKLCH is its polar form with
// chroma >= 0 and hue in degrees [0,360).
//
// Source: https://bottosson.github.io/posts/oklab/

// OKLab returns the OKLab representation of the color. Alpha is dropped.
func (c Color) OKLab() [3]float32 {
	lin := c.Linear()

	l := math32.Cbrt(0.41222147*lin[0] + 0.53633254*lin[1] + 0.051445993*lin[2])
	m := math32.Cbrt(0.2119035*lin[0] + 0.6806996*lin[1] + 0.10739696*lin[2])
	s := math32.Cbrt(0.08830246*lin[0] + 0.28171884*lin[1] + 0.6299787*lin[2])

	return [3]float32{
		0.21045426*l + 0.7936178*m - 0.004072047*s,
		1.9779985*l - 2.4285922*m + 0.4505937*s,
		0.025904037*l + 0.78277177*m - 0.80867577*s,
	}
}

// FromOKLab creates an opaque color from an OKLab triple. Out-of-gamut
// results clamp per channel on encode; use FromOKLCH for chroma-preserving
// gamut mapping.
func FromOKLab(lab [3]float32) Color {
	r, g, b := oklabToLinear(lab)
	return FromLinear([4]float32{r, g, b, 1})
}

// oklabToLinear converts an OKLab triple to unclamped linear RGB.
// Kept separate from FromOKLab so gamut membership can be tested before
// any quantization clamps the result into range.
func oklabToLinear(lab [3]float32) (r, g, b float32) {
	l_ := lab[0] + 0.39633778*lab[1] + 0.21580376*lab[2]
	m_ := lab[0] - 0.105561346*lab[1] - 0.06385417*lab[2]
	s_ := lab[0] - 0.08948418*lab[1] - 1.2914856*lab[2]

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	r = 4.0767417*l - 3.3077116*m + 0.23096993*s
	g = -1.268438*l + 2.6097574*m - 0.3413194*s
	b = -0.0041960863*l - 0.7034186*m + 1.7076147*s
	return r, g, b
}

// OKLCH returns the polar OKLab representation: lightness, chroma, hue.
func (c Color) OKLCH() [3]float32 {
	lab := c.OKLab()
	chroma := math32.Sqrt(lab[1]*lab[1] + lab[2]*lab[2])
	h := math32.Atan2(lab[2], lab[1]) * 180 / math32.Pi
	if h < 0 {
		h += 360
	}
	return [3]float32{lab[0], chroma, h}
}

// FromOKLCH creates an opaque color from an OKLCH triple, gamut-mapping by
// chroma reduction: if the requested color falls outside sRGB, chroma is
// reduced at fixed lightness and hue until it fits. The search is a
// 24-iteration bisection (~1e-7 relative precision) that converges on the
// largest in-gamut chroma at or below the requested value. Not perceptually
// optimal, but cheap and monotonic.
func FromOKLCH(lch [3]float32) Color {
	l, chroma, h := lch[0], lch[1], lch[2]
	if chroma < 0 {
		chroma = 0
	}

	if inGamut(oklchToOKLab(l, chroma, h)) {
		return FromOKLab(oklchToOKLab(l, chroma, h))
	}

	lo, hi := float32(0), chroma
	for range 24 {
		mid := 0.5 * (lo + hi)
		if inGamut(oklchToOKLab(l, mid, h)) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return FromOKLab(oklchToOKLab(l, lo, h))
}

// oklchToOKLab converts polar form back to Cartesian.
func oklchToOKLab(l, c, h float32) [3]float32 {
	hr := h * math32.Pi / 180
	return [3]float32{l, c * math32.Cos(hr), c * math32.Sin(hr)}
}

// inGamut reports whether an OKLab triple lands inside the sRGB unit cube.
func inGamut(lab [3]float32) bool {
	r, g, b := oklabToLinear(lab)
	return r >= 0 && r <= 1 && g >= 0 && g <= 1 && b >= 0 && b <= 1
}
