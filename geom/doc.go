// Package geom provides the float32 value types used by the canvas:
// points, extents, rectangles, bounding boxes and 2x3 affine transforms.
//
// All types are plain values. Transform follows the row-vector convention
// used throughout the canvas: a point p maps to
//
//	x' = p.x*a + p.y*c + e
//	y' = p.x*b + p.y*d + f
//
// and t.Mul(s) yields the transform that applies t first and s second.
package geom
