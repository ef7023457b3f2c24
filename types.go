package nvg

import (
	"github.com/gogpu/nvg/geom"
	"github.com/gogpu/nvg/internal/tess"
)

// Geometry types shared with the geom package.
type (
	Point     = geom.Point
	Extent    = geom.Extent
	Rect      = geom.Rect
	Bounds    = geom.Bounds
	Transform = geom.Transform
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point { return geom.Pt(x, y) }

// RectXYWH builds a Rect from its origin and size.
func RectXYWH(x, y, w, h float32) Rect { return geom.RectXYWH(x, y, w, h) }

// Transform constructors.
func Identity() Transform                { return geom.Identity() }
func Translate(tx, ty float32) Transform { return geom.Translate(tx, ty) }
func Scale(sx, sy float32) Transform     { return geom.Scale(sx, sy) }
func Rotate(angle float32) Transform     { return geom.Rotate(angle) }
func SkewX(angle float32) Transform      { return geom.SkewX(angle) }
func SkewY(angle float32) Transform      { return geom.SkewY(angle) }

// Tessellation output handed to renderers.
type (
	// Vertex is a tessellated vertex. U and V carry antialiasing coverage
	// for fills and strokes, texture coordinates for Triangles.
	Vertex = tess.Vertex

	// Path is one flattened and expanded subpath. Its Fill and Stroke
	// views are valid until the next drawing call on the Canvas.
	Path = tess.Path
)

// LineCap is the shape of open stroke ends.
type LineCap = tess.LineCap

// Line caps.
const (
	LineCapButt   = tess.LineCapButt
	LineCapRound  = tess.LineCapRound
	LineCapSquare = tess.LineCapSquare
)

// LineJoin is the shape of stroke corners.
type LineJoin = tess.LineJoin

// Line joins.
const (
	LineJoinMiter = tess.LineJoinMiter
	LineJoinRound = tess.LineJoinRound
	LineJoinBevel = tess.LineJoinBevel
)

// Solidity selects the winding a subpath is forced to.
type Solidity = tess.Solidity

// Solidities.
const (
	Solid = tess.Solid
	Hole  = tess.Hole
)

// ImageID identifies a texture created by the Renderer. Zero is no image.
type ImageID int

// FontID identifies a font registered with Fonts.
type FontID int
