package nvg

import "github.com/chewxy/math32"

// Scissor clips drawing to r in the current transform. It replaces any
// previous scissor.
func (c *Canvas) Scissor(r Rect) {
	s := c.state()
	w := math32.Max(0, r.Size.Width)
	h := math32.Max(0, r.Size.Height)
	s.scissor.Xform = Translate(r.XY.X+w*0.5, r.XY.Y+h*0.5).Mul(s.xform)
	s.scissor.Extent = Extent{Width: w * 0.5, Height: h * 0.5}
}

// IntersectScissor intersects the current scissor with r. The previous
// scissor is approximated by its axis-aligned bounds in the current
// transform space.
func (c *Canvas) IntersectScissor(r Rect) {
	s := c.state()
	if s.scissor.Extent.Width < 0 {
		c.Scissor(r)
		return
	}

	ex, ey := s.scissor.Extent.Width, s.scissor.Extent.Height
	pxform := s.scissor.Xform.Mul(s.xform.Inverse())
	tex := ex*math32.Abs(pxform[0]) + ey*math32.Abs(pxform[2])
	tey := ex*math32.Abs(pxform[1]) + ey*math32.Abs(pxform[3])
	prev := RectXYWH(pxform[4]-tex, pxform[5]-tey, tex*2, tey*2)
	c.Scissor(prev.Intersect(r))
}

// ResetScissor disables clipping.
func (c *Canvas) ResetScissor() {
	c.state().scissor = noScissor()
}
