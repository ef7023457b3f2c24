// Package software is a CPU implementation of nvg.Renderer drawing into an
// *image.RGBA.
//
// Triangles are rasterized at pixel centres with their vertex UVs
// interpolated, and every covered pixel runs the canvas fragment program
// from internal/shader before being blended with the composite factors of
// the call. Non-convex fills build their stencil from the nonzero winding
// coverage computed by golang.org/x/image/vector, then draw the fringe
// outside and the cover inside of it, like a GPU stencil-then-cover fill.
//
// Basic usage:
//
//	r := software.New(256, 256)
//	c := nvg.New(r)
//	c.BeginFrame(&nvg.Transparent)
//	c.BeginPath()
//	c.Circle(nvg.Pt(128, 128), 100)
//	c.FillColor(nvg.RGB(1, 0.5, 0))
//	c.Fill()
//	c.EndFrame()
//	r.SavePNG("circle.png")
//
// Calls are drawn immediately; Flush has nothing left to do. A Renderer is
// not safe for concurrent use.
package software
