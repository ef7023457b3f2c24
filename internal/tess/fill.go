package tess

// ExpandFill builds the interior fan of every subpath and, when w > 0, an
// antialiasing fringe strip around it. w is the fringe width (0 disables
// antialiasing) and fringe the device fringe size. A single convex subpath
// gets a one-sided fringe. Previous Fill and Stroke views are invalidated.
func (c *PathCache) ExpandFill(w float32, join LineJoin, miterLimit, fringe float32) {
	aa := fringe
	withFringe := w > 0

	c.calculateJoins(w, join, miterLimit)

	n := 0
	for i := range c.paths {
		path := &c.paths[i]
		n += path.count + path.nbevel + 1
		if withFringe {
			n += (path.count + path.nbevel*5 + 1) * 2
		}
	}

	arena := c.TempVertices(n)
	off := 0
	convex := len(c.paths) == 1 && c.paths[0].convex
	woff := 0.5 * aa

	for i := range c.paths {
		path := &c.paths[i]
		pts := c.points[path.first : path.first+path.count]
		path.verts = arena

		dst := &writer{buf: arena[off:]}
		if withFringe {
			// Inset the interior by half the fringe.
			for j := range pts {
				p0 := &pts[(j+len(pts)-1)%len(pts)]
				p1 := &pts[j]
				if p1.has(ptBevel) {
					dlx0, dly0 := p0.d.Y, -p0.d.X
					dlx1, dly1 := p1.d.Y, -p1.d.X
					if p1.has(ptLeft) {
						dst.put(p1.xy.X+p1.dm.X*woff, p1.xy.Y+p1.dm.Y*woff, 0.5, 1)
					} else {
						dst.put(p1.xy.X+dlx0*woff, p1.xy.Y+dly0*woff, 0.5, 1)
						dst.put(p1.xy.X+dlx1*woff, p1.xy.Y+dly1*woff, 0.5, 1)
					}
				} else {
					dst.put(p1.xy.X+p1.dm.X*woff, p1.xy.Y+p1.dm.Y*woff, 0.5, 1)
				}
			}
		} else {
			for j := range pts {
				dst.put(pts[j].xy.X, pts[j].xy.Y, 0.5, 1)
			}
		}

		path.fillOff, path.fillLen = off, dst.n
		off += dst.n

		if !withFringe {
			path.strokeOff, path.strokeLen = 0, 0
			continue
		}

		lw, rw := w+woff, w-woff
		lu, ru := float32(0), float32(1)
		if convex {
			// Only the outer side of a convex shape needs a fringe.
			lw = woff
			lu = 0.5
		}

		dst = &writer{buf: arena[off:]}
		for j := range pts {
			p0 := &pts[(j+len(pts)-1)%len(pts)]
			p1 := &pts[j]
			if p1.has(ptBevel | ptInnerBevel) {
				bevelJoin(dst, p0, p1, lw, rw, lu, ru)
			} else {
				dst.put(p1.xy.X+p1.dm.X*lw, p1.xy.Y+p1.dm.Y*lw, lu, 1)
				dst.put(p1.xy.X-p1.dm.X*rw, p1.xy.Y-p1.dm.Y*rw, ru, 1)
			}
		}

		v0, v1 := dst.buf[0], dst.buf[1]
		dst.put(v0.X, v0.Y, lu, 1)
		dst.put(v1.X, v1.Y, ru, 1)

		path.strokeOff, path.strokeLen = off, dst.n
		off += dst.n
	}
}
