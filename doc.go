// Package nvg provides an antialiased 2D vector canvas in the style of
// NanoVG.
//
// # Overview
//
// A Canvas records paths (lines, beziers, arcs, rectangles, ellipses),
// tessellates them into triangle geometry each time Fill or Stroke is
// called, and hands the geometry to a Renderer together with a Paint
// (solid color, linear, radial or box gradient, image pattern), a
// composite operation and a scissor. Antialiasing comes from a one pixel
// fringe of extra geometry whose coverage is carried in the vertex UVs.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/nvg"
//	    "github.com/gogpu/nvg/backend/software"
//	)
//
//	r := software.New(512, 512)
//	c := nvg.New(r)
//
//	c.BeginFrame(&nvg.White)
//	c.BeginPath()
//	c.Circle(nvg.Pt(256, 256), 100)
//	c.FillColor(nvg.RGB(1, 0, 0))
//	c.Fill()
//	c.EndFrame()
//
//	r.SavePNG("output.png")
//
// # Renderers
//
// Two renderers ship with the module:
//   - backend/software draws into an *image.RGBA on the CPU
//   - backend/gpucmd records backend-neutral GPU draw commands, pipeline
//     descriptions and uniforms for a GPU driver to replay
//
// Text needs a font system attached with WithFonts; the fonts package
// provides one built on golang.org/x/image.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, increasing clockwise on screen
//
// # Concurrency
//
// A Canvas and its renderer must be used from one goroutine at a time.
// SetLogger may be called at any time.
package nvg

// Version is the current version of the library.
const Version = "0.1.0"
