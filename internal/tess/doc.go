// Package tess turns path commands into antialiased triangle geometry.
//
// The pipeline follows the NanoVG tessellator:
//
//  1. FlattenPaths converts MoveTo/LineTo/BezierTo/Close/Solidity commands
//     into polylines. Cubic beziers are subdivided by de Casteljau midpoint
//     splitting until flat within the tessellation tolerance; points closer
//     than the distance tolerance are merged.
//  2. Join calculation computes per-point miter directions and marks points
//     that need bevel, round or inner-bevel treatment.
//  3. ExpandStroke emits one triangle strip per subpath, ExpandFill emits a
//     triangle fan for the interior plus an optional antialiasing fringe strip.
//
// # Vertex arena
//
// All expanded vertices live in a single arena owned by the PathCache. A Path
// records offset and length into that arena; Path.Fill and Path.Stroke return
// views that stay valid only until the next expand call, Clear or TempVertices.
// Vertex counts are computed before writing, so each expansion is one linear
// pass over a pre-sized buffer.
//
// # Antialiasing
//
// The v texture coordinate carries the fringe coverage: 1 on the solid edge,
// 0 on the outer fringe edge. The u coordinate runs across the stroke from
// 0 (left) to 1 (right); with antialiasing off both are 0.5 and 1.
package tess
