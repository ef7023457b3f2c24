package nvg

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is a non-premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from float components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBAf creates a color from float components.
func RGBAf(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return RGBA8(r, g, b, 255)
}

// RGBA8 creates a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3, 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
		if len(hex) == 4 {
			parseHex(hex[3:4], &a)
			a *= 17
		}
	case 6, 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		if len(hex) == 8 {
			parseHex(hex[6:8], &a)
		}
	default:
		return RGB(0, 0, 0)
	}

	return RGBA8(uint8(r), uint8(g), uint8(b), uint8(a))
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(nc.R, nc.G, nc.B, nc.A)
}

// RGBA implements color.Color. The result is alpha-premultiplied as the
// interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}.RGBA()
}

// Premultiply returns the color with RGB scaled by alpha.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp interpolates from c to o. u is clamped to [0, 1].
func (c Color) Lerp(o Color, u float32) Color {
	u = clampf(u, 0, 1)
	om := 1 - u
	return Color{
		R: c.R*om + o.R*u,
		G: c.G*om + o.G*u,
		B: c.B*om + o.B*u,
		A: c.A*om + o.A*u,
	}
}

// HSL creates an opaque color from hue, saturation and lightness, all in
// [0, 1]. Hue wraps around.
func HSL(h, s, l float32) Color {
	return HSLA(h, s, l, 1)
}

// HSLA is HSL with an explicit alpha.
func HSLA(h, s, l, a float32) Color {
	h = math32.Mod(h, 1)
	if h < 0 {
		h++
	}
	s = clampf(s, 0, 1)
	l = clampf(l, 0, 1)

	var m2 float32
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2

	return Color{
		R: clampf(hue(h+1.0/3, m1, m2), 0, 1),
		G: clampf(hue(h, m1, m2), 0, 1),
		B: clampf(hue(h-1.0/3, m1, m2), 0, 1),
		A: a,
	}
}

func hue(h, m1, m2 float32) float32 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case h < 1.0/6:
		return m1 + (m2-m1)*h*6
	case h < 3.0/6:
		return m2
	case h < 4.0/6:
		return m1 + (m2-m1)*(2.0/3-h)*6
	default:
		return m1
	}
}

func to8(v float32) uint8 {
	return uint8(clampf(v, 0, 1)*255 + 0.5)
}

func clampf(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBAf(0, 0, 0, 0)
)
