package tint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	c := New(10, 20, 30, 40)
	assert.Equal(t, Color{R: 10, G: 20, B: 30, A: 40}, c)

	assert.Equal(t, Color{1, 2, 3, 255}, FromRGB([3]uint8{1, 2, 3}))
	assert.Equal(t, Color{1, 2, 3, 4}, FromRGBA([4]uint8{1, 2, 3, 4}))
}

func TestZeroValue(t *testing.T) {
	var c Color
	assert.Equal(t, Transparent, c)
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(128)
	assert.Equal(t, Color{255, 0, 0, 128}, c)
	// receiver untouched
	assert.Equal(t, uint8(255), Red.A)
}

func TestChannelArrays(t *testing.T) {
	c := Color{10, 20, 30, 40}
	assert.Equal(t, [3]uint8{10, 20, 30}, c.RGB())
	assert.Equal(t, [4]uint8{10, 20, 30, 40}, c.RGBA8())
	assert.Equal(t, c, FromRGBA(c.RGBA8()))
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Red, "#FF0000FF"},
		{Transparent, "#00000000"},
		{Color{26, 43, 60, 128}, "#1A2B3C80"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.String())
	}

	assert.Equal(t, "1a2b3c", Color{26, 43, 60, 128}.Hex6())
	assert.Equal(t, "1a2b3c80", Color{26, 43, 60, 128}.Hex8())
}

func TestColorInterface(t *testing.T) {
	r, g, b, a := Black.RGBA()
	assert.Equal(t, []uint32{0, 0, 0, 0xffff}, []uint32{r, g, b, a})

	// premultiplied per the stdlib contract
	r, _, _, a = Color{255, 0, 0, 128}.RGBA()
	assert.Equal(t, uint32(0x8080), a)
	assert.Equal(t, uint32(0x8080), r)
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		in   color.Color
		want Color
	}{
		{color.NRGBA{R: 10, G: 20, B: 30, A: 40}, Color{10, 20, 30, 40}},
		{color.White, White},
		{color.Transparent, Transparent},
		{color.Gray{Y: 128}, Color{128, 128, 128, 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromColor(tt.in))
	}

	// through the Color type itself
	assert.Equal(t, Red, FromColor(Red))
}
