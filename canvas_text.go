package nvg

import "os"

func (c *Canvas) mustFonts() (Fonts, error) {
	if c.fonts == nil {
		return nil, FontError("no font system attached", nil)
	}
	return c.fonts, nil
}

// CreateFont registers a TrueType or OpenType font under name.
func (c *Canvas) CreateFont(name string, data []byte) (FontID, error) {
	f, err := c.mustFonts()
	if err != nil {
		return 0, err
	}
	return f.AddFont(name, data)
}

// CreateFontFromFile loads and registers the font file at path.
func (c *Canvas) CreateFontFromFile(name, path string) (FontID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, FontError("load font", err)
	}
	return c.CreateFont(name, data)
}

// FindFont returns the id of the font registered under name.
func (c *Canvas) FindFont(name string) (FontID, bool) {
	if c.fonts == nil {
		return 0, false
	}
	return c.fonts.FindFont(name)
}

// AddFallbackFontID makes fallback supply glyphs missing from base.
func (c *Canvas) AddFallbackFontID(base, fallback FontID) {
	if c.fonts != nil {
		c.fonts.AddFallback(base, fallback)
	}
}

// AddFallbackFont is AddFallbackFontID by font name. Unknown names are
// ignored.
func (c *Canvas) AddFallbackFont(base, fallback string) {
	b, ok1 := c.FindFont(base)
	f, ok2 := c.FindFont(fallback)
	if ok1 && ok2 {
		c.fonts.AddFallback(b, f)
	}
}

// FontSize sets the font size in local units.
func (c *Canvas) FontSize(size float32) { c.state().fontSize = size }

// TextLetterSpacing sets extra space between glyphs.
func (c *Canvas) TextLetterSpacing(spacing float32) { c.state().letterSpacing = spacing }

// TextLineHeight sets the line height as a multiple of the font size.
func (c *Canvas) TextLineHeight(lineHeight float32) { c.state().lineHeight = lineHeight }

// TextAlign sets the text alignment.
func (c *Canvas) TextAlign(align Align) { c.state().textAlign = align }

// FontFaceID selects the font by id.
func (c *Canvas) FontFaceID(id FontID) { c.state().fontID = id }

// FontFace selects the font by name. Unknown names keep the current font.
func (c *Canvas) FontFace(name string) {
	if id, ok := c.FindFont(name); ok {
		c.state().fontID = id
	}
}

// fontScale maps local text units to device pixels.
func (c *Canvas) fontScale() float32 {
	return c.state().xform.FontScale() * c.devicePixelRatio
}

// Text draws s with the fill paint, anchored at pt per the text alignment,
// and returns the x position after the last glyph in local units.
func (c *Canvas) Text(pt Point, s string) (float32, error) {
	r := c.mustRenderer()
	f, err := c.mustFonts()
	if err != nil {
		return pt.X, err
	}
	st := c.state()

	scale := c.fontScale()
	invscale := 1 / scale

	c.layout, err = f.LayoutText(r, s, st.fontID, Pt(pt.X*scale, pt.Y*scale),
		st.fontSize*scale, st.textAlign, st.letterSpacing*scale, c.layout[:0])
	if err != nil {
		return pt.X, err
	}

	verts := c.textVerts[:0]
	for i := range c.layout {
		lc := &c.layout[i]
		if lc.Bounds.IsEmpty() {
			continue
		}
		x0, y0 := lc.Bounds.Min.X*invscale, lc.Bounds.Min.Y*invscale
		x1, y1 := lc.Bounds.Max.X*invscale, lc.Bounds.Max.Y*invscale
		lt := st.xform.TransformPoint(Pt(x0, y0))
		rt := st.xform.TransformPoint(Pt(x1, y0))
		rb := st.xform.TransformPoint(Pt(x1, y1))
		lb := st.xform.TransformPoint(Pt(x0, y1))
		uv := lc.UV

		verts = append(verts,
			Vertex{X: lt.X, Y: lt.Y, U: uv.Min.X, V: uv.Min.Y},
			Vertex{X: rb.X, Y: rb.Y, U: uv.Max.X, V: uv.Max.Y},
			Vertex{X: rt.X, Y: rt.Y, U: uv.Max.X, V: uv.Min.Y},
			Vertex{X: lt.X, Y: lt.Y, U: uv.Min.X, V: uv.Min.Y},
			Vertex{X: lb.X, Y: lb.Y, U: uv.Min.X, V: uv.Max.Y},
			Vertex{X: rb.X, Y: rb.Y, U: uv.Max.X, V: uv.Max.Y},
		)
	}
	c.textVerts = verts

	next := pt.X
	if n := len(c.layout); n > 0 {
		next = c.layout[n-1].NextX * invscale
	}
	if len(verts) == 0 {
		return next, nil
	}

	paint := st.fill.withAlpha(st.alpha)
	paint.Image = f.Image()
	if err := r.Triangles(&paint, st.composite, &st.scissor, verts); err != nil {
		return next, err
	}

	c.stats.TextTriangles += len(verts) / 3
	c.stats.DrawCalls++
	return next, nil
}

// TextMetrics returns the metrics of the current font in local units.
func (c *Canvas) TextMetrics() (TextMetrics, error) {
	f, err := c.mustFonts()
	if err != nil {
		return TextMetrics{}, err
	}
	st := c.state()
	scale := c.fontScale()
	m := f.TextMetrics(st.fontID, st.fontSize*scale)
	return TextMetrics{
		Ascender:  m.Ascender / scale,
		Descender: m.Descender / scale,
		LineGap:   m.LineGap / scale,
	}, nil
}

// TextSize measures s with the current font in local units.
func (c *Canvas) TextSize(s string) (Extent, error) {
	f, err := c.mustFonts()
	if err != nil {
		return Extent{}, err
	}
	st := c.state()
	scale := c.fontScale()
	e := f.TextSize(s, st.fontID, st.fontSize*scale, st.letterSpacing*scale)
	return Extent{Width: e.Width / scale, Height: e.Height / scale}, nil
}
