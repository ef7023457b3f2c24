package shader

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/geom"
)

// Texture describes the image bound to a paint.
type Texture struct {
	Type  nvg.TextureType
	Flags nvg.ImageFlags
}

// texType maps a texture to the program's texel interpretation.
func (t *Texture) texType() TexType {
	if t.Type != nvg.TextureRGBA {
		return TexAlpha
	}
	if t.Flags.Has(nvg.ImagePremultiplied) {
		return TexPremultiplied
	}
	return TexStraight
}

func premul(c nvg.Color) [4]float32 {
	p := c.Premultiply()
	return [4]float32{p.R, p.G, p.B, p.A}
}

// ConvertPaint builds the uniforms for drawing with paint clipped by
// scissor. width is the stroke width (the fringe for fills), strokeThr the
// discard threshold (-1 disables it). tex describes paint.Image; a nil tex
// draws the paint as a gradient.
func ConvertPaint(paint *nvg.Paint, scissor *nvg.Scissor, width, fringe, strokeThr float32, tex *Texture) Uniforms {
	u := Uniforms{
		InnerColor: premul(paint.InnerColor),
		OuterColor: premul(paint.OuterColor),
		Extent:     [2]float32{paint.Extent.Width, paint.Extent.Height},
		StrokeMult: (width*0.5 + fringe*0.5) / fringe,
		StrokeThr:  strokeThr,
	}

	if scissor.Extent.Width < -0.5 || scissor.Extent.Height < -0.5 {
		u.ScissorExt = [2]float32{1, 1}
		u.ScissorScale = [2]float32{1, 1}
	} else {
		xf := scissor.Xform
		u.ScissorMat = Mat3x4(xf.Inverse())
		u.ScissorExt = [2]float32{scissor.Extent.Width, scissor.Extent.Height}
		u.ScissorScale = [2]float32{
			math32.Sqrt(xf[0]*xf[0]+xf[2]*xf[2]) / fringe,
			math32.Sqrt(xf[1]*xf[1]+xf[3]*xf[3]) / fringe,
		}
	}

	var inv geom.Transform
	if paint.Image != 0 && tex != nil {
		if tex.Flags.Has(nvg.ImageFlipY) {
			m := geom.Translate(0, u.Extent[1]*0.5).Mul(paint.Xform)
			m = geom.Scale(1, -1).Mul(m)
			m = geom.Translate(0, -u.Extent[1]*0.5).Mul(m)
			inv = m.Inverse()
		} else {
			inv = paint.Xform.Inverse()
		}
		u.Type = FillImage
		u.TexType = tex.texType()
	} else {
		u.Type = FillGradient
		u.Radius = paint.Radius
		u.Feather = paint.Feather
		inv = paint.Xform.Inverse()
	}
	u.PaintMat = Mat3x4(inv)
	return u
}

// TriangleUniforms builds the uniforms for textured triangles such as
// glyph quads.
func TriangleUniforms(paint *nvg.Paint, scissor *nvg.Scissor, tex *Texture) Uniforms {
	u := ConvertPaint(paint, scissor, 1, 1, -1, tex)
	u.Type = Image
	if tex != nil {
		u.TexType = tex.texType()
	}
	return u
}
