package shader

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/nvg"
)

// Sampler returns the texel at normalized texture coordinates as stored,
// channels in [0, 1].
type Sampler interface {
	Sample(u, v float32) [4]float32
}

func apply(m *[12]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[8], m[1]*x + m[5]*y + m[9]
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(v, 1))
}

// sdRoundRect is the signed distance from (px, py) to a rounded rect of half
// size (ex, ey) centred at the origin.
func sdRoundRect(px, py, ex, ey, rad float32) float32 {
	dx := math32.Abs(px) - (ex - rad)
	dy := math32.Abs(py) - (ey - rad)
	inside := math32.Min(math32.Max(dx, dy), 0)
	return inside + math32.Hypot(math32.Max(dx, 0), math32.Max(dy, 0)) - rad
}

// ScissorMask returns the scissor coverage at (x, y).
func (u *Uniforms) ScissorMask(x, y float32) float32 {
	sx, sy := apply(&u.ScissorMat, x, y)
	sx = 0.5 - (math32.Abs(sx)-u.ScissorExt[0])*u.ScissorScale[0]
	sy = 0.5 - (math32.Abs(sy)-u.ScissorExt[1])*u.ScissorScale[1]
	return clamp01(sx) * clamp01(sy)
}

// StrokeMask returns the antialiasing coverage encoded in a vertex UV.
func (u *Uniforms) StrokeMask(tu, tv float32) float32 {
	return math32.Min(1, (1-math32.Abs(tu*2-1))*u.StrokeMult) * math32.Min(1, tv)
}

func (u *Uniforms) texel(s Sampler, tu, tv float32) [4]float32 {
	if s == nil {
		return [4]float32{1, 1, 1, 1}
	}
	c := s.Sample(tu, tv)
	switch u.TexType {
	case TexStraight:
		c = [4]float32{c[0] * c[3], c[1] * c[3], c[2] * c[3], c[3]}
	case TexAlpha:
		c = [4]float32{c[0], c[0], c[0], c[0]}
	}
	return c
}

func scale(c [4]float32, k float32) nvg.Color {
	return nvg.Color{R: c[0] * k, G: c[1] * k, B: c[2] * k, A: c[3] * k}
}

// Eval runs the fragment program at canvas position (x, y) with vertex UV
// (tu, tv). The result is premultiplied. ok is false when the fragment is
// discarded by the stroke threshold. s samples the bound image and may be
// nil when none is bound.
func (u *Uniforms) Eval(x, y, tu, tv float32, edgeAA bool, s Sampler) (c nvg.Color, ok bool) {
	scissor := u.ScissorMask(x, y)
	strokeAlpha := float32(1)
	if edgeAA {
		strokeAlpha = u.StrokeMask(tu, tv)
		if strokeAlpha < u.StrokeThr {
			return nvg.Color{}, false
		}
	}

	switch u.Type {
	case FillGradient:
		px, py := apply(&u.PaintMat, x, y)
		feather := math32.Max(u.Feather, 1e-6)
		d := clamp01((sdRoundRect(px, py, u.Extent[0], u.Extent[1], u.Radius) + feather*0.5) / feather)
		var col [4]float32
		for i := range col {
			col[i] = u.InnerColor[i]*(1-d) + u.OuterColor[i]*d
		}
		return scale(col, strokeAlpha*scissor), true

	case FillImage:
		px, py := apply(&u.PaintMat, x, y)
		col := u.texel(s, px/u.Extent[0], py/u.Extent[1])
		for i := range col {
			col[i] *= u.InnerColor[i]
		}
		return scale(col, strokeAlpha*scissor), true

	case Simple:
		return nvg.Color{R: 1, G: 1, B: 1, A: 1}, true

	case Image:
		col := u.texel(s, tu, tv)
		for i := range col {
			col[i] *= scissor * u.InnerColor[i]
		}
		return scale(col, 1), true
	}
	return nvg.Color{}, false
}
