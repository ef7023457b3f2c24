package nvg

// Align controls how text is positioned relative to the point passed to
// Text. Combine one horizontal and one vertical flag.
type Align uint32

// Alignment flags.
const (
	AlignLeft     Align = 1 << 0
	AlignCenter   Align = 1 << 1
	AlignRight    Align = 1 << 2
	AlignTop      Align = 1 << 3
	AlignMiddle   Align = 1 << 4
	AlignBottom   Align = 1 << 5
	AlignBaseline Align = 1 << 6
)

// Has reports whether all bits of f are set.
func (a Align) Has(f Align) bool { return a&f == f }

// TextMetrics are the vertical metrics of a font at a size.
type TextMetrics struct {
	Ascender  float32
	Descender float32
	LineGap   float32
}

// LineHeight returns the distance between consecutive baselines.
func (m TextMetrics) LineHeight() float32 {
	return m.Ascender - m.Descender + m.LineGap
}

// LayoutChar is one positioned glyph produced by Fonts.LayoutText. Bounds
// are in layout space, UV in normalized atlas coordinates.
type LayoutChar struct {
	Rune   rune
	Index  int
	X      float32
	NextX  float32
	Bounds Bounds
	UV     Bounds
}

// Fonts is the font system a Canvas lays text out with. Glyphs are cached
// in an alpha texture created through the Renderer passed to LayoutText.
type Fonts interface {
	AddFont(name string, data []byte) (FontID, error)
	FindFont(name string) (FontID, bool)
	AddFallback(base, fallback FontID)

	// LayoutText positions text at pos with the given pixel size and
	// appends its glyphs to out. Glyphs are rasterized into the atlas as
	// needed; glyphs without pixels get empty Bounds.
	LayoutText(r Renderer, text string, id FontID, pos Point, size float32, align Align, spacing float32, out []LayoutChar) ([]LayoutChar, error)

	TextMetrics(id FontID, size float32) TextMetrics
	TextSize(text string, id FontID, size, spacing float32) Extent

	// Image returns the atlas texture, 0 before the first layout.
	Image() ImageID
}
