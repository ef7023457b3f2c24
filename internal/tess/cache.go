package tess

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/nvg/geom"
)

// maxBezierDepth caps bezier subdivision recursion.
const maxBezierDepth = 10

// PathCache holds the flattened points, subpaths and vertex arena of the
// path being drawn. The zero value is ready to use. A PathCache is not safe
// for concurrent use.
type PathCache struct {
	points []vpoint
	paths  []Path
	verts  []Vertex
	bounds geom.Bounds
}

// Clear drops all points and paths. The arena keeps its capacity.
func (c *PathCache) Clear() {
	c.points = c.points[:0]
	c.paths = c.paths[:0]
}

// Paths returns the subpaths produced by the last FlattenPaths call.
func (c *PathCache) Paths() []Path {
	return c.paths
}

// Bounds returns the bounding box of all flattened points.
func (c *PathCache) Bounds() geom.Bounds {
	return c.bounds
}

// Points returns the flattened positions of p.
func (c *PathCache) Points(p *Path) []geom.Point {
	out := make([]geom.Point, p.count)
	for i := range out {
		out[i] = c.points[p.first+i].xy
	}
	return out
}

// TempVertices resizes the arena to n zeroed vertices and returns it.
// Any previously returned Fill or Stroke view becomes invalid.
func (c *PathCache) TempVertices(n int) []Vertex {
	if cap(c.verts) < n {
		c.verts = make([]Vertex, n)
	} else {
		c.verts = c.verts[:n]
		clear(c.verts)
	}
	return c.verts
}

func (c *PathCache) addPath() {
	c.paths = append(c.paths, Path{
		first:    len(c.points),
		solidity: Solid,
	})
}

func (c *PathCache) lastPath() *Path {
	if len(c.paths) == 0 {
		return nil
	}
	return &c.paths[len(c.paths)-1]
}

func (c *PathCache) addPoint(pt geom.Point, flags pointFlags, distTol float32) {
	path := c.lastPath()
	if path == nil {
		return
	}

	if path.count > 0 && len(c.points) > 0 {
		last := &c.points[len(c.points)-1]
		if last.xy.Equals(pt, distTol) {
			last.flags |= flags
			return
		}
	}

	c.points = append(c.points, vpoint{xy: pt, flags: flags})
	path.count++
}

func (c *PathCache) closePath() {
	if path := c.lastPath(); path != nil {
		path.closed = true
	}
}

func (c *PathCache) pathSolidity(s Solidity) {
	if path := c.lastPath(); path != nil {
		path.solidity = s
	}
}

func (c *PathCache) tesselateBezier(p1, p2, p3, p4 geom.Point, level int, flags pointFlags, distTol, tessTol float32) {
	if level > maxBezierDepth {
		return
	}

	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y
	x4, y4 := p4.X, p4.Y

	x12 := (x1 + x2) * 0.5
	y12 := (y1 + y2) * 0.5
	x23 := (x2 + x3) * 0.5
	y23 := (y2 + y3) * 0.5
	x34 := (x3 + x4) * 0.5
	y34 := (y3 + y4) * 0.5
	x123 := (x12 + x23) * 0.5
	y123 := (y12 + y23) * 0.5

	dx := x4 - x1
	dy := y4 - y1
	d2 := math32.Abs((x2-x4)*dy - (y2-y4)*dx)
	d3 := math32.Abs((x3-x4)*dy - (y3-y4)*dx)

	if (d2+d3)*(d2+d3) < tessTol*(dx*dx+dy*dy) {
		c.addPoint(geom.Pt(x4, y4), flags, distTol)
		return
	}

	x234 := (x23 + x34) * 0.5
	y234 := (y23 + y34) * 0.5
	x1234 := (x123 + x234) * 0.5
	y1234 := (y123 + y234) * 0.5

	c.tesselateBezier(geom.Pt(x1, y1), geom.Pt(x12, y12), geom.Pt(x123, y123), geom.Pt(x1234, y1234), level+1, 0, distTol, tessTol)
	c.tesselateBezier(geom.Pt(x1234, y1234), geom.Pt(x234, y234), geom.Pt(x34, y34), geom.Pt(x4, y4), level+1, flags, distTol, tessTol)
}

// FlattenPaths converts cmds into subpaths of line segments. Points closer
// than distTol are merged; beziers are flattened to within tessTol.
// Subpaths are re-wound to match their solidity and the bounds recomputed.
// A cache that already holds paths is left as is until Clear.
func (c *PathCache) FlattenPaths(cmds []Command, distTol, tessTol float32) {
	if len(c.paths) > 0 {
		return
	}

	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Kind {
		case CmdMoveTo:
			c.addPath()
			c.addPoint(cmd.Pts[0], ptCorner, distTol)
		case CmdLineTo:
			c.addPoint(cmd.Pts[0], ptCorner, distTol)
		case CmdBezierTo:
			if len(c.points) > 0 {
				last := c.points[len(c.points)-1].xy
				c.tesselateBezier(last, cmd.Pts[0], cmd.Pts[1], cmd.Pts[2], 0, ptCorner, distTol, tessTol)
			}
		case CmdClose:
			c.closePath()
		case CmdSolidity:
			c.pathSolidity(cmd.Solidity)
		}
	}

	c.bounds = geom.EmptyBounds()

	for j := range c.paths {
		path := &c.paths[j]
		pts := c.points[path.first : path.first+path.count]

		// A trailing point on top of the first one closes the loop.
		if pts[len(pts)-1].xy.Equals(pts[0].xy, distTol) {
			path.count--
			pts = pts[:path.count]
			path.closed = true
		}

		if path.count > 2 {
			area := polyArea(pts)
			if path.solidity == Solid && area < 0 {
				polyReverse(pts)
			}
			if path.solidity == Hole && area > 0 {
				polyReverse(pts)
			}
		}

		for i := range pts {
			p0 := &pts[(i+len(pts)-1)%len(pts)]
			p1 := &pts[i]
			p0.d = p1.xy.Sub(p0.xy)
			p0.len = p0.d.Normalize()
			c.bounds.Add(p0.xy)
		}
	}
}

func triangleArea(a, b, c *vpoint) float32 {
	abx := b.xy.X - a.xy.X
	aby := b.xy.Y - a.xy.Y
	acx := c.xy.X - a.xy.X
	acy := c.xy.Y - a.xy.Y
	return acx*aby - abx*acy
}

// polyArea returns the signed area of pts as a triangle fan from pts[0].
func polyArea(pts []vpoint) float32 {
	var area float32
	for i := 2; i < len(pts); i++ {
		area += triangleArea(&pts[0], &pts[i-1], &pts[i])
	}
	return area * 0.5
}

func polyReverse(pts []vpoint) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// curveDivs returns the number of segments approximating an arc of the
// given angle at radius r within tol, at least 2.
func curveDivs(r, arc, tol float32) int {
	da := math32.Acos(r/(r+tol)) * 2
	return max(2, int(math32.Ceil(arc/da)))
}
