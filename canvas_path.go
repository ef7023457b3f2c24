package nvg

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/nvg/geom"
	"github.com/gogpu/nvg/internal/tess"
)

// kappa90 is the bezier control distance approximating a quarter circle.
const kappa90 = 0.5522847493

// appendCommand transforms the points of cmd into canvas space and records
// it. lastPosition tracks the untransformed end point.
func (c *Canvas) appendCommand(cmd tess.Command) {
	xf := c.state().xform
	switch cmd.Kind {
	case tess.CmdMoveTo, tess.CmdLineTo:
		c.lastPosition = cmd.Pts[0]
		cmd.Pts[0] = xf.TransformPoint(cmd.Pts[0])
	case tess.CmdBezierTo:
		c.lastPosition = cmd.Pts[2]
		for i := range cmd.Pts {
			cmd.Pts[i] = xf.TransformPoint(cmd.Pts[i])
		}
	}
	c.record(cmd)
}

// record appends cmd and drops geometry flattened from the previous
// command list.
func (c *Canvas) record(cmd tess.Command) {
	c.commands = append(c.commands, cmd)
	c.cache.Clear()
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.commands = c.commands[:0]
	c.cache.Clear()
}

// MoveTo starts a new subpath at p.
func (c *Canvas) MoveTo(p Point) {
	c.appendCommand(tess.MoveTo(p))
}

// LineTo adds a line segment to p.
func (c *Canvas) LineTo(p Point) {
	c.appendCommand(tess.LineTo(p))
}

// BezierTo adds a cubic bezier segment.
func (c *Canvas) BezierTo(cp1, cp2, p Point) {
	c.appendCommand(tess.BezierTo(cp1, cp2, p))
}

// QuadTo adds a quadratic bezier segment, elevated to a cubic.
func (c *Canvas) QuadTo(cp, p Point) {
	p0 := c.lastPosition
	c.appendCommand(tess.BezierTo(
		geom.Pt(p0.X+2.0/3.0*(cp.X-p0.X), p0.Y+2.0/3.0*(cp.Y-p0.Y)),
		geom.Pt(p.X+2.0/3.0*(cp.X-p.X), p.Y+2.0/3.0*(cp.Y-p.Y)),
		p,
	))
}

// ArcTo adds an arc of the given radius tangent to the lines from the
// current point to p1 and from p1 to p2. Degenerate input falls back to a
// line to p1.
func (c *Canvas) ArcTo(p1, p2 Point, radius float32) {
	if len(c.commands) == 0 {
		return
	}
	p0 := c.lastPosition

	if p0.Equals(p1, c.distTol) ||
		p1.Equals(p2, c.distTol) ||
		p1.DistPtSeg(p0, p2) < c.distTol*c.distTol ||
		radius < c.distTol {
		c.LineTo(p1)
		return
	}

	d0 := p0.Sub(p1)
	d1 := p2.Sub(p1)
	d0.Normalize()
	d1.Normalize()
	a := math32.Acos(d0.X*d1.X + d0.Y*d1.Y)
	d := radius / math32.Tan(a/2)

	if d > 10000 {
		c.LineTo(p1)
		return
	}

	var cx, cy, a0, a1 float32
	var dir Solidity
	if geom.Cross(d0, d1) > 0 {
		cx = p1.X + d0.X*d + d0.Y*radius
		cy = p1.Y + d0.Y*d - d0.X*radius
		a0 = math32.Atan2(d0.X, -d0.Y)
		a1 = math32.Atan2(-d1.X, d1.Y)
		dir = Hole
	} else {
		cx = p1.X + d0.X*d - d0.Y*radius
		cy = p1.Y + d0.Y*d + d0.X*radius
		a0 = math32.Atan2(-d0.X, d0.Y)
		a1 = math32.Atan2(d1.X, -d1.Y)
		dir = Solid
	}
	c.Arc(geom.Pt(cx, cy), radius, a0, a1, dir)
}

// ClosePath closes the current subpath with a line segment.
func (c *Canvas) ClosePath() {
	c.record(tess.Close())
}

// PathSolidity sets the winding of the current subpath. Hole subpaths cut
// out of Solid ones.
func (c *Canvas) PathSolidity(s Solidity) {
	c.record(tess.Winding(s))
}

// Arc adds a circular arc around center from angle a0 to a1 in radians.
// Hole sweeps clockwise, Solid counter-clockwise. The arc is joined to the
// current subpath with a line, or starts a new one if the path is empty.
func (c *Canvas) Arc(center Point, radius, a0, a1 float32, dir Solidity) {
	move := len(c.commands) == 0

	da := a1 - a0
	if dir == Hole {
		if math32.Abs(da) >= math32.Pi*2 {
			da = math32.Pi * 2
		} else {
			for da < 0 {
				da += math32.Pi * 2
			}
		}
	} else {
		if math32.Abs(da) >= math32.Pi*2 {
			da = -math32.Pi * 2
		} else {
			for da > 0 {
				da -= math32.Pi * 2
			}
		}
	}

	ndivs := max(1, min(int(math32.Abs(da)/(math32.Pi*0.5)+0.5), 5))
	hda := da / float32(ndivs) / 2
	kappa := math32.Abs(4.0 / 3.0 * (1 - math32.Cos(hda)) / math32.Sin(hda))
	if dir == Solid {
		kappa = -kappa
	}

	var px, py, ptanx, ptany float32
	for i := 0; i <= ndivs; i++ {
		a := a0 + da*(float32(i)/float32(ndivs))
		dx := math32.Cos(a)
		dy := math32.Sin(a)
		x := center.X + dx*radius
		y := center.Y + dy*radius
		tanx := -dy * radius * kappa
		tany := dx * radius * kappa

		switch {
		case i > 0:
			c.appendCommand(tess.BezierTo(
				geom.Pt(px+ptanx, py+ptany),
				geom.Pt(x-tanx, y-tany),
				geom.Pt(x, y),
			))
		case move:
			c.appendCommand(tess.MoveTo(geom.Pt(x, y)))
		default:
			c.appendCommand(tess.LineTo(geom.Pt(x, y)))
		}
		px, py = x, y
		ptanx, ptany = tanx, tany
	}
}

// Rect adds a closed rectangle subpath.
func (c *Canvas) Rect(r Rect) {
	x, y, w, h := r.XY.X, r.XY.Y, r.Size.Width, r.Size.Height
	c.appendCommand(tess.MoveTo(geom.Pt(x, y)))
	c.appendCommand(tess.LineTo(geom.Pt(x, y+h)))
	c.appendCommand(tess.LineTo(geom.Pt(x+w, y+h)))
	c.appendCommand(tess.LineTo(geom.Pt(x+w, y)))
	c.appendCommand(tess.Close())
}

// RoundedRect adds a rectangle with equally rounded corners.
func (c *Canvas) RoundedRect(r Rect, radius float32) {
	c.RoundedRectVarying(r, radius, radius, radius, radius)
}

// RoundedRectVarying adds a rectangle with per-corner radii: left-top,
// right-top, right-bottom and left-bottom. Radii are limited to half the
// rectangle size.
func (c *Canvas) RoundedRectVarying(r Rect, lt, rt, rb, lb float32) {
	if lt < 0.1 && rt < 0.1 && rb < 0.1 && lb < 0.1 {
		c.Rect(r)
		return
	}

	x, y, w, h := r.XY.X, r.XY.Y, r.Size.Width, r.Size.Height
	halfw := math32.Abs(w) * 0.5
	halfh := math32.Abs(h) * 0.5
	sw, sh := signum(w), signum(h)
	rxlb, rylb := math32.Min(lb, halfw)*sw, math32.Min(lb, halfh)*sh
	rxrb, ryrb := math32.Min(rb, halfw)*sw, math32.Min(rb, halfh)*sh
	rxrt, ryrt := math32.Min(rt, halfw)*sw, math32.Min(rt, halfh)*sh
	rxlt, rylt := math32.Min(lt, halfw)*sw, math32.Min(lt, halfh)*sh
	const k = 1 - kappa90

	c.appendCommand(tess.MoveTo(geom.Pt(x, y+rylt)))
	c.appendCommand(tess.LineTo(geom.Pt(x, y+h-rylb)))
	c.appendCommand(tess.BezierTo(geom.Pt(x, y+h-rylb*k), geom.Pt(x+rxlb*k, y+h), geom.Pt(x+rxlb, y+h)))
	c.appendCommand(tess.LineTo(geom.Pt(x+w-rxrb, y+h)))
	c.appendCommand(tess.BezierTo(geom.Pt(x+w-rxrb*k, y+h), geom.Pt(x+w, y+h-ryrb*k), geom.Pt(x+w, y+h-ryrb)))
	c.appendCommand(tess.LineTo(geom.Pt(x+w, y+ryrt)))
	c.appendCommand(tess.BezierTo(geom.Pt(x+w, y+ryrt*k), geom.Pt(x+w-rxrt*k, y), geom.Pt(x+w-rxrt, y)))
	c.appendCommand(tess.LineTo(geom.Pt(x+rxlt, y)))
	c.appendCommand(tess.BezierTo(geom.Pt(x+rxlt*k, y), geom.Pt(x, y+rylt*k), geom.Pt(x, y+rylt)))
	c.appendCommand(tess.Close())
}

// Ellipse adds a closed ellipse subpath.
func (c *Canvas) Ellipse(center Point, rx, ry float32) {
	cx, cy := center.X, center.Y
	c.appendCommand(tess.MoveTo(geom.Pt(cx-rx, cy)))
	c.appendCommand(tess.BezierTo(geom.Pt(cx-rx, cy+ry*kappa90), geom.Pt(cx-rx*kappa90, cy+ry), geom.Pt(cx, cy+ry)))
	c.appendCommand(tess.BezierTo(geom.Pt(cx+rx*kappa90, cy+ry), geom.Pt(cx+rx, cy+ry*kappa90), geom.Pt(cx+rx, cy)))
	c.appendCommand(tess.BezierTo(geom.Pt(cx+rx, cy-ry*kappa90), geom.Pt(cx+rx*kappa90, cy-ry), geom.Pt(cx, cy-ry)))
	c.appendCommand(tess.BezierTo(geom.Pt(cx-rx*kappa90, cy-ry), geom.Pt(cx-rx, cy-ry*kappa90), geom.Pt(cx-rx, cy)))
	c.appendCommand(tess.Close())
}

// Circle adds a closed circle subpath.
func (c *Canvas) Circle(center Point, r float32) {
	c.Ellipse(center, r, r)
}

func signum(v float32) float32 {
	if v >= 0 {
		return 1
	}
	return -1
}
