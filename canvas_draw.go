package nvg

// antialias reports whether fills and strokes get a fringe.
func (c *Canvas) antialias(r Renderer) bool {
	return r.EdgeAntialias() && c.state().shapeAntialias
}

// Fill fills the current path with the fill paint.
func (c *Canvas) Fill() error {
	r := c.mustRenderer()
	s := c.state()

	c.cache.FlattenPaths(c.commands, c.distTol, c.tessTol)
	w := float32(0)
	if c.antialias(r) {
		w = c.fringeWidth
	}
	c.cache.ExpandFill(w, LineJoinMiter, 2.4, c.fringeWidth)

	paint := s.fill.withAlpha(s.alpha)
	paths := c.cache.Paths()
	if err := r.Fill(&paint, s.composite, &s.scissor, c.fringeWidth, c.cache.Bounds(), paths); err != nil {
		return err
	}

	for i := range paths {
		p := &paths[i]
		if n := len(p.Fill()); n > 2 {
			c.stats.FillTriangles += n - 2
		}
		if n := len(p.Stroke()); n > 2 {
			c.stats.FillTriangles += n - 2
		}
		c.stats.DrawCalls += 2
	}
	return nil
}

// Stroke strokes the current path with the stroke paint. Strokes thinner
// than a device pixel are drawn one pixel wide with reduced alpha.
func (c *Canvas) Stroke() error {
	r := c.mustRenderer()
	s := c.state()

	width := clampf(s.strokeWidth*s.xform.AverageScale(), 0, 200)
	paint := s.stroke
	if width < c.fringeWidth {
		a := clampf(width/c.fringeWidth, 0, 1)
		paint = paint.withAlpha(a * a)
		width = c.fringeWidth
	}
	paint = paint.withAlpha(s.alpha)

	c.cache.FlattenPaths(c.commands, c.distTol, c.tessTol)
	aa := float32(0)
	if c.antialias(r) {
		aa = c.fringeWidth
	}
	c.cache.ExpandStroke(width*0.5, aa, s.lineCap, s.lineJoin, s.miterLimit, c.tessTol)

	paths := c.cache.Paths()
	if err := r.Stroke(&paint, s.composite, &s.scissor, c.fringeWidth, width, paths); err != nil {
		return err
	}

	for i := range paths {
		if n := len(paths[i].Stroke()); n > 2 {
			c.stats.StrokeTriangles += n - 2
		}
		c.stats.DrawCalls++
	}
	return nil
}
