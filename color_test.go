package nvg

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColor_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 65535},
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"opaque red", Red, 65535, 0, 0, 65535},
		{"transparent", Transparent, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#00f", Blue},
		{"#fff8", RGBA8(255, 255, 255, 136)},
		{"#0000ff80", RGBA8(0, 0, 255, 128)},
		{"bogus", Black},
		{"", Black},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	if want := RGB8(255, 0, 51); got != want {
		t.Errorf("FromColor() = %v, want %v", got, want)
	}
}

func TestColorLerp(t *testing.T) {
	tests := []struct {
		name string
		u    float32
		want Color
	}{
		{"start", 0, Black},
		{"middle", 0.5, RGB(0.5, 0.5, 0.5)},
		{"end", 1, White},
		{"clamped low", -3, Black},
		{"clamped high", 7, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Black.Lerp(White, tt.u); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.u, got, tt.want)
			}
		})
	}
}

func TestColorPremultiply(t *testing.T) {
	got := RGBAf(1, 0.5, 0.2, 0.5).Premultiply()
	want := RGBAf(0.5, 0.25, 0.1, 0.5)
	if !approx(got.R, want.R) || !approx(got.G, want.G) || !approx(got.B, want.B) || got.A != want.A {
		t.Errorf("Premultiply() = %v, want %v", got, want)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float32
		want    Color
	}{
		{"red", 0, 1, 0.5, Red},
		{"green", 1.0 / 3, 1, 0.5, Green},
		{"blue", 2.0 / 3, 1, 0.5, Blue},
		{"wrapped red", 1, 1, 0.5, Red},
		{"grey", 0.3, 0, 0.5, RGB(0.5, 0.5, 0.5)},
		{"black", 0.7, 1, 0, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if !approx(got.R, tt.want.R) || !approx(got.G, tt.want.G) || !approx(got.B, tt.want.B) {
				t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
			if got.A != 1 {
				t.Errorf("alpha = %v, want 1", got.A)
			}
		})
	}
}
