package tess

import "github.com/chewxy/math32"

// strokeVertexCount returns the number of arena vertices ExpandStroke
// reserves for the current paths. Joins must already be calculated.
func (c *PathCache) strokeVertexCount(join LineJoin, lineCap LineCap, ncap int) int {
	n := 0
	for i := range c.paths {
		path := &c.paths[i]
		if join == LineJoinRound {
			n += (path.count + path.nbevel*(ncap+2) + 1) * 2
		} else {
			n += (path.count + path.nbevel*5 + 1) * 2
		}
		if !path.closed {
			if lineCap == LineCapRound {
				n += (ncap*2 + 2) * 2
			} else {
				n += (3 + 3) * 2
			}
		}
	}
	return n
}

// ExpandStroke builds a triangle strip per subpath offset by the half width
// w on both sides of the centre line. fringe is the antialiasing width, 0
// to disable it. Previous Fill and Stroke views are invalidated.
func (c *PathCache) ExpandStroke(w, fringe float32, lineCap LineCap, join LineJoin, miterLimit, tessTol float32) {
	aa := fringe
	u0, u1 := float32(0), float32(1)
	ncap := curveDivs(w, math32.Pi, tessTol)

	w += aa * 0.5

	// Without a fringe, collapse the across-stroke coordinate so the
	// shader's stroke mask stays at full coverage.
	if aa == 0 {
		u0, u1 = 0.5, 0.5
	}

	c.calculateJoins(w, join, miterLimit)

	arena := c.TempVertices(c.strokeVertexCount(join, lineCap, ncap))
	off := 0

	for i := range c.paths {
		path := &c.paths[i]
		pts := c.points[path.first : path.first+path.count]

		path.verts = arena
		path.fillOff, path.fillLen = 0, 0

		dst := &writer{buf: arena[off:]}

		var p0, p1 *vpoint
		var s, e int
		if path.closed {
			if len(pts) > 0 {
				p0, p1 = &pts[len(pts)-1], &pts[0]
			}
			s, e = 0, path.count
		} else {
			p0, p1 = &pts[0], &pts[1]
			s, e = 1, path.count-1
		}

		if !path.closed {
			d := p1.xy.Sub(p0.xy)
			d.Normalize()
			switch lineCap {
			case LineCapButt:
				buttCapStart(dst, p0, d.X, d.Y, w, -aa*0.5, aa, u0, u1)
			case LineCapSquare:
				buttCapStart(dst, p0, d.X, d.Y, w, w-aa, aa, u0, u1)
			case LineCapRound:
				roundCapStart(dst, p0, d.X, d.Y, w, ncap, u0, u1)
			}
		}

		for j := s; j < e; j++ {
			if p1.has(ptBevel | ptInnerBevel) {
				if join == LineJoinRound {
					roundJoin(dst, p0, p1, w, w, u0, u1, ncap)
				} else {
					bevelJoin(dst, p0, p1, w, w, u0, u1)
				}
			} else {
				dst.put(p1.xy.X+p1.dm.X*w, p1.xy.Y+p1.dm.Y*w, u0, 1)
				dst.put(p1.xy.X-p1.dm.X*w, p1.xy.Y-p1.dm.Y*w, u1, 1)
			}
			p0 = p1
			if j+1 < len(pts) {
				p1 = &pts[j+1]
			}
		}

		if path.closed {
			// Loop back to the first pair of this subpath.
			v0, v1 := dst.buf[0], dst.buf[1]
			dst.put(v0.X, v0.Y, u0, 1)
			dst.put(v1.X, v1.Y, u1, 1)
		} else {
			d := p1.xy.Sub(p0.xy)
			d.Normalize()
			switch lineCap {
			case LineCapButt:
				buttCapEnd(dst, p1, d.X, d.Y, w, -aa*0.5, aa, u0, u1)
			case LineCapSquare:
				buttCapEnd(dst, p1, d.X, d.Y, w, w-aa, aa, u0, u1)
			case LineCapRound:
				roundCapEnd(dst, p1, d.X, d.Y, w, ncap, u0, u1)
			}
		}

		path.strokeOff, path.strokeLen = off, dst.n
		off += dst.n
	}
}
