package gpucmd

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/nvg"
)

// UniformStride is the distance between fragment uniform blocks in
// Frame.Uniforms, the minimum dynamic offset alignment of WebGPU.
const UniformStride = 256

// VertexStride is the byte size of one vertex: position and UV.
const VertexStride = 16

// CallKind is the kind of canvas call a group of draws came from.
type CallKind int

// Call kinds.
const (
	CallFill CallKind = iota
	CallConvexFill
	CallStroke
	CallTriangles
)

// String returns the call kind name.
func (k CallKind) String() string {
	switch k {
	case CallFill:
		return "Fill"
	case CallConvexFill:
		return "ConvexFill"
	case CallStroke:
		return "Stroke"
	case CallTriangles:
		return "Triangles"
	default:
		return "Unknown"
	}
}

// Call groups the draws recorded for one Fill, Stroke or Triangles call.
type Call struct {
	Kind      CallKind
	Image     nvg.ImageID
	FirstDraw int
	DrawCount int
}

// Draw is one indexed draw with a fixed pipeline.
type Draw struct {
	Pipeline Pipeline
	Blend    gputypes.BlendState
	// Image is bound at group(1) binding(1); zero binds a dummy texture.
	Image nvg.ImageID
	// Uniform is the dynamic offset of the fragment uniforms in bytes.
	Uniform    uint32
	FirstIndex uint32
	IndexCount uint32
}

// TextureOpKind is the kind of a texture operation.
type TextureOpKind int

// Texture operations.
const (
	TextureCreate TextureOpKind = iota
	TextureUpdate
	TextureDelete
)

// String returns the operation name.
func (k TextureOpKind) String() string {
	switch k {
	case TextureCreate:
		return "Create"
	case TextureUpdate:
		return "Update"
	case TextureDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// TextureOp is a texture change to apply before the frame's draws. Create
// carries the full size and, when the texture was created with pixels,
// the data. Update carries a tightly packed block at X, Y.
type TextureOp struct {
	Kind    TextureOpKind
	Image   nvg.ImageID
	Format  gputypes.TextureFormat
	Sampler gputypes.SamplerDescriptor
	X, Y    int
	Width   int
	Height  int
	Data    []byte
}

// Frame is the recorded work of one canvas frame.
type Frame struct {
	ViewSize nvg.Extent
	EdgeAA   bool
	// Clear is the color to clear the target to, or nil to load it.
	Clear *nvg.Color

	Textures []TextureOp
	Vertices []nvg.Vertex
	Indices  []uint32
	Uniforms []byte
	Calls    []Call
	Draws    []Draw
}

// ViewBytes returns the view uniform block: size, edge AA flag, padding.
func (f *Frame) ViewBytes() []byte {
	aa := float32(0)
	if f.EdgeAA {
		aa = 1
	}
	b := make([]byte, 0, 16)
	for _, v := range [4]float32{f.ViewSize.Width, f.ViewSize.Height, aa, 0} {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

// VertexBytes returns the vertices as a little-endian vertex buffer.
func (f *Frame) VertexBytes() []byte {
	b := make([]byte, 0, len(f.Vertices)*VertexStride)
	for _, v := range f.Vertices {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.X))
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.Y))
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.U))
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.V))
	}
	return b
}

// IndexBytes returns the indices as a little-endian uint32 index buffer.
func (f *Frame) IndexBytes() []byte {
	b := make([]byte, 0, len(f.Indices)*4)
	for _, i := range f.Indices {
		b = binary.LittleEndian.AppendUint32(b, i)
	}
	return b
}

// Empty reports whether the frame has nothing to execute.
func (f *Frame) Empty() bool {
	return f.Clear == nil && len(f.Textures) == 0 && len(f.Draws) == 0
}

func (f *Frame) resetGeometry() {
	f.Vertices = f.Vertices[:0]
	f.Indices = f.Indices[:0]
	f.Uniforms = f.Uniforms[:0]
	f.Calls = f.Calls[:0]
	f.Draws = f.Draws[:0]
}
