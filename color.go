package tint

import (
	"fmt"
	"image/color"
)

// Color is a color in encoded (gamma-compressed) sRGB with straight alpha.
// Each channel is an 8-bit value in [0,255]; alpha 0 is fully transparent.
//
// Color is an immutable value: methods never modify the receiver, they
// return new values. The zero value is fully transparent black.
type Color struct {
	R, G, B, A uint8
}

// Named constants for the handful of colors everything ends up needing.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	White       = Color{255, 255, 255, 255}
)

// New creates a color from encoded sRGB channel values.
func New(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromRGB creates an opaque color from a 3-element channel array.
func FromRGB(rgb [3]uint8) Color {
	return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

// FromRGBA creates a color from a 4-element channel array.
func FromRGBA(rgba [4]uint8) Color {
	return Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

// FromColor converts any [color.Color] to a Color, un-premultiplying
// through the standard NRGBA model.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// WithAlpha returns a copy of the color with a different alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGB returns the color channels as a 3-element array, dropping alpha.
func (c Color) RGB() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// RGBA8 returns all four channels as a 4-element array.
func (c Color) RGBA8() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// RGBA implements [color.Color]. The returned values are alpha-premultiplied
// 16-bit channels per the stdlib contract.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String returns the canonical text form: #RRGGBBAA, uppercase hex, alpha
// always included so the full value round-trips losslessly through Parse.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Hex6 returns a lowercase rrggbb string without the leading #, dropping
// alpha. Use String for the lossless form.
func (c Color) Hex6() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// Hex8 returns a lowercase rrggbbaa string without the leading #.
func (c Color) Hex8() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
