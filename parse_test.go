package tint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#fff", Color{255, 255, 255, 255}},
		{"#F00", Color{255, 0, 0, 255}},
		{"#abc", Color{170, 187, 204, 255}},
		{"#abcd", Color{170, 187, 204, 221}},
		{"#1a2b3c", Color{26, 43, 60, 255}},
		{"#1A2B3C", Color{26, 43, 60, 255}},
		{"#1a2b3c80", Color{26, 43, 60, 128}},
		{"#00000000", Color{0, 0, 0, 0}},
		{"  #fff  ", Color{255, 255, 255, 255}},
		{"#  fff", Color{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseShortHexExpansion(t *testing.T) {
	short := MustParse("#abc")
	long := MustParse("#aabbcc")
	assert.Equal(t, long, short)

	short = MustParse("#f0a8")
	long = MustParse("#ff00aa88")
	assert.Equal(t, long, short)
}

func TestParseRGBFunc(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		// legacy comma form
		{"rgb(255,0,0)", Color{255, 0, 0, 255}},
		{"rgb(0, 128, 255)", Color{0, 128, 255, 255}},
		{"rgb(+10, 20, 30)", Color{10, 20, 30, 255}},
		{"rgba(10, 20, 30, 0.5)", Color{10, 20, 30, 128}},
		{"rgba(10, 20, 30, 1)", Color{10, 20, 30, 255}},
		{"rgba(10, 20, 30, 255)", Color{10, 20, 30, 255}},
		{"rgb(255, 0, 0 / 25%)", Color{255, 0, 0, 64}},

		// modern space form
		{"rgb(255 0 0)", Color{255, 0, 0, 255}},
		{"rgb(100% 0% 0%)", Color{255, 0, 0, 255}},
		{"rgb(50% 50% 50%)", Color{128, 128, 128, 255}},
		{"rgb(255 0 0 / 0.5)", Color{255, 0, 0, 128}},
		{"rgb(255 0 0 / 50%)", Color{255, 0, 0, 128}},
		{"rgb(127.4 0 0)", Color{127, 0, 0, 255}},
		{"rgb(127.5 0 0)", Color{128, 0, 0, 255}},
		{"rgb(.5 0 0)", Color{1, 0, 0, 255}},

		// case-insensitive names, rgba shares the grammar
		{"RGB(255 0 0)", Color{255, 0, 0, 255}},
		{"RgBa(255 0 0)", Color{255, 0, 0, 255}},
		{"rgba(255 0 0 / 50%)", Color{255, 0, 0, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"\t\n", ErrEmpty},

		{"#ff", ErrInvalidLength},
		{"#fffff", ErrInvalidLength},
		{"#fffffffff", ErrInvalidLength},
		{"#ggg", ErrInvalidHex},
		{"#12345g", ErrInvalidHex},

		{"red", ErrInvalidFunc},
		{"hsl(0 0% 0%)", ErrInvalidFunc},
		{"rgb()", ErrInvalidFunc},
		{"rgb(1,2)", ErrInvalidFunc},
		{"rgb(1 2 3 4)", ErrInvalidFunc},
		{"rgb(1,2,3,4,5)", ErrInvalidFunc},
		{"rgb(1 2 3 / 4 / 5)", ErrInvalidFunc},

		{"rgb(256,0,0)", ErrOutOfRange},
		{"rgb(-1,0,0)", ErrOutOfRange},
		{"rgb(101% 0% 0%)", ErrOutOfRange},
		{"rgb(255 0 0 / 300)", ErrOutOfRange},

		{"rgb(a,b,c)", ErrInvalidToken},
		{"rgb(1 2, 3)", ErrInvalidToken},
		{"rgb(1 2 3 /)", ErrInvalidToken},
		{"rgb(255 0 0 / 1.5)", ErrInvalidToken},
		{"rgb(%)", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	colors := []Color{
		Transparent,
		Black,
		White,
		Red,
		{26, 43, 60, 128},
		{1, 2, 3, 4},
		{254, 253, 252, 251},
	}
	for _, c := range colors {
		got, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got, "round trip of %s", c)

		got, err = Parse("#" + c.Hex8())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, Red, MustParse("#f00"))
	assert.Panics(t, func() { MustParse("not a color") })
}
