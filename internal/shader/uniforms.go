// Package shader converts paints and scissors into the fragment uniforms of
// the canvas fragment program and evaluates that program on the CPU.
//
// Both backends share this package: gpucmd uploads Uniforms to a uniform
// buffer for the WGSL shader, the software backend calls Eval per pixel.
package shader

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/nvg/geom"
)

// Type selects the branch of the fragment program.
type Type int32

const (
	// FillGradient evaluates a feathered rounded-rect gradient.
	FillGradient Type = iota
	// FillImage samples the paint image through the paint transform.
	FillImage
	// Simple writes opaque white; used for stencil passes.
	Simple
	// Image samples the texture at the vertex UV; used for text.
	Image
)

// String returns the shader type name.
func (t Type) String() string {
	switch t {
	case FillGradient:
		return "FillGradient"
	case FillImage:
		return "FillImage"
	case Simple:
		return "Simple"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// TexType tells the program how to interpret sampled texels.
type TexType int32

const (
	// TexPremultiplied is RGBA with premultiplied alpha.
	TexPremultiplied TexType = iota
	// TexStraight is RGBA with straight alpha; the program premultiplies.
	TexStraight
	// TexAlpha is a single channel coverage texture.
	TexAlpha
)

// StrokeThreshold discards stroke fragments below half a color step in the
// stencil stroke pass.
const StrokeThreshold = 1 - 0.5/255

// UniformSize is the byte size of Uniforms as laid out by Bytes: eleven
// vec4 slots.
const UniformSize = 44 * 4

// Uniforms is the per-call input of the fragment program. Matrices are 3x4
// column-major so each column fills one vec4 slot.
type Uniforms struct {
	ScissorMat   [12]float32
	PaintMat     [12]float32
	InnerColor   [4]float32
	OuterColor   [4]float32
	ScissorExt   [2]float32
	ScissorScale [2]float32
	Extent       [2]float32
	Radius       float32
	Feather      float32
	StrokeMult   float32
	StrokeThr    float32
	TexType      TexType
	Type         Type
}

// StencilUniforms returns the uniforms of a stencil-only pass.
func StencilUniforms() Uniforms {
	return Uniforms{StrokeThr: -1, Type: Simple}
}

// Mat3x4 lays t out as three vec4 columns.
func Mat3x4(t geom.Transform) [12]float32 {
	return [12]float32{
		t[0], t[1], 0, 0,
		t[2], t[3], 0, 0,
		t[4], t[5], 1, 0,
	}
}

// AppendBytes appends the little-endian uniform block to dst.
func (u *Uniforms) AppendBytes(dst []byte) []byte {
	f := func(v float32) {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	for _, v := range u.ScissorMat {
		f(v)
	}
	for _, v := range u.PaintMat {
		f(v)
	}
	for _, v := range u.InnerColor {
		f(v)
	}
	for _, v := range u.OuterColor {
		f(v)
	}
	f(u.ScissorExt[0])
	f(u.ScissorExt[1])
	f(u.ScissorScale[0])
	f(u.ScissorScale[1])
	f(u.Extent[0])
	f(u.Extent[1])
	f(u.Radius)
	f(u.Feather)
	f(u.StrokeMult)
	f(u.StrokeThr)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(u.TexType))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(u.Type))
	return dst
}

// Bytes returns the uniform block as UniformSize bytes.
func (u *Uniforms) Bytes() []byte {
	return u.AppendBytes(make([]byte, 0, UniformSize))
}
