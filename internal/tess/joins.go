package tess

import "github.com/chewxy/math32"

// calculateJoins computes miter directions and bevel flags for every point
// given the half stroke width w.
func (c *PathCache) calculateJoins(w float32, join LineJoin, miterLimit float32) {
	var iw float32
	if w > 0 {
		iw = 1 / w
	}

	for i := range c.paths {
		path := &c.paths[i]
		pts := c.points[path.first : path.first+path.count]
		nleft := 0
		path.nbevel = 0

		for j := range pts {
			p0 := &pts[(j+len(pts)-1)%len(pts)]
			p1 := &pts[j]

			dlx0, dly0 := p0.d.Y, -p0.d.X
			dlx1, dly1 := p1.d.Y, -p1.d.X

			p1.dm.X = (dlx0 + dlx1) * 0.5
			p1.dm.Y = (dly0 + dly1) * 0.5
			dmr2 := p1.dm.X*p1.dm.X + p1.dm.Y*p1.dm.Y
			if dmr2 > 0.000001 {
				scale := min(1/dmr2, 600)
				p1.dm.X *= scale
				p1.dm.Y *= scale
			}

			p1.flags &= ptCorner

			cross := p1.d.X*p0.d.Y - p0.d.X*p1.d.Y
			if cross > 0 {
				nleft++
				p1.flags |= ptLeft
			}

			limit := math32.Max(1.01, math32.Min(p0.len, p1.len)*iw)
			if dmr2*limit*limit < 1 {
				p1.flags |= ptInnerBevel
			}

			if p1.has(ptCorner) {
				if dmr2*miterLimit*miterLimit < 1 || join == LineJoinBevel || join == LineJoinRound {
					p1.flags |= ptBevel
				}
			}

			if p1.has(ptBevel | ptInnerBevel) {
				path.nbevel++
			}
		}

		path.convex = nleft == path.count
	}
}
