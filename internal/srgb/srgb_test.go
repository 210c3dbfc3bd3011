package srgb

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDecodeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input uint8
		want  float32
	}{
		{"black", 0, 0.0},
		{"white", 255, 1.0},
		{"last linear segment value", 10, (10.0 / 255.0) / 12.92},
		{"first power segment value", 11, math32.Pow((11.0/255.0+0.055)/1.055, 2.4)},
		{"mid gray", 128, math32.Pow((128.0/255.0+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Decode(tt.input), 1e-6)
		})
	}
}

func TestEncodeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  uint8
	}{
		{"black", 0.0, 0},
		{"white", 1.0, 255},
		{"clamped below", -0.5, 0},
		{"clamped above", 1.5, 255},
		{"segment threshold", 0.0031308, 10},
		{"mid gray linear", 0.5, 188}, // not 128: encoding is nonlinear
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.input))
		})
	}
}

// TestEncodeDecodeIdentity checks that decode followed by encode reproduces
// every 8-bit value exactly. This is what keeps repeated space conversions
// from drifting.
func TestEncodeDecodeIdentity(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		if got := Encode(Decode(v)); got != v {
			t.Errorf("Encode(Decode(%d)) = %d, want %d", v, got, v)
		}
	}
}

// TestDecodeFastExact checks the decode table is bit-exact against the
// reference for all inputs.
func TestDecodeFastExact(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		if got, want := DecodeFast(v), Decode(v); got != want {
			t.Errorf("DecodeFast(%d) = %v, want %v", v, got, want)
		}
	}
}

// TestEncodeFastNearReference checks the encode table stays within one
// quantization step of the reference across a dense sweep of [0,1].
func TestEncodeFastNearReference(t *testing.T) {
	const steps = 8192
	for i := 0; i <= steps; i++ {
		l := float32(i) / steps
		fast := int(EncodeFast(l))
		ref := int(Encode(l))
		if d := fast - ref; d < -1 || d > 1 {
			t.Errorf("EncodeFast(%v) = %d, reference %d (diff %d)", l, fast, ref, d)
		}
	}
}

func TestEncodeFastRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := uint8(i)
		if got := EncodeFast(DecodeFast(v)); got != v {
			t.Errorf("EncodeFast(DecodeFast(%d)) = %d, want %d", v, got, v)
		}
	}
}
