// Package tint provides a compact sRGB color value and the math around it.
//
// # Overview
//
// The core type is [Color], four uint8 channels holding gamma-encoded sRGB
// plus straight (non-premultiplied) alpha. Everything else is a pure function
// over that value: conversions to and from linear light, HSL, OKLab, and
// OKLCH; Porter-Duff compositing and the sixteen W3C blend modes; three
// interpolation metrics; and a parser for CSS-style color text.
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	c, err := tint.Parse("rgb(255 0 0 / 50%)")
//	if err != nil {
//	    // one of tint.ErrEmpty, tint.ErrInvalidHex, ...
//	}
//
//	mixed := c.LerpOKLCH(tint.Blue, 0.5)
//	out := mixed.BlendOver(tint.White, tint.BlendMultiply)
//	fmt.Println(out) // #RRGGBBAA
//
// # Color spaces
//
// Channel values are always encoded sRGB; linear light, HSL, OKLab, and
// OKLCH exist only as transient float32 triples or quads produced and
// consumed by the conversion methods. Compositing and the perceptual
// interpolation paths do their math in linear light or OKLCH and re-encode
// on the way out, so results are always valid 8-bit colors.
//
// Every operation is a pure, synchronous computation over immutable inputs.
// A Color and all intermediate representations are safe for concurrent use.
//
// References:
//   - sRGB transfer function: IEC 61966-2-1, https://www.w3.org/Graphics/Color/sRGB
//   - Compositing and blending: https://www.w3.org/TR/compositing-1/
//   - OKLab: https://bottosson.github.io/posts/oklab/
package tint
