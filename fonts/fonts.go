// Package fonts implements nvg.Fonts with golang.org/x/image/font/sfnt.
//
// Glyphs are rasterized with golang.org/x/image/vector into a shelf-packed
// alpha atlas stored in a renderer texture. The atlas texture is created on
// the first layout; when it fills up it is cleared and refilled with the
// glyphs of the text being laid out.
//
// Text is NFC-normalized before layout. There is no shaping: every rune
// maps to one glyph, adjusted by pair kerning from the font's kern table.
// Runes missing from a font are looked up in its fallback fonts, in the
// order they were added.
//
// A Fonts is not safe for concurrent use.
package fonts

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/nvg"
)

var errAtlasFull = errors.New("fonts: atlas is full")

type fontData struct {
	name      string
	sf        *sfnt.Font
	fallbacks []nvg.FontID
}

// Fonts is a font collection with a glyph atlas.
type Fonts struct {
	fonts  []*fontData
	byName map[string]nvg.FontID
	buf    sfnt.Buffer

	atlas  *Atlas
	glyphs map[glyphKey]*glyph
	img    nvg.ImageID
	raster rasterizer
}

var _ nvg.Fonts = (*Fonts)(nil)

// New creates an empty font collection.
func New(opts ...Option) *Fonts {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Fonts{
		byName: make(map[string]nvg.FontID),
		atlas:  NewAtlas(o.atlasWidth, o.atlasHeight, glyphPadding),
		glyphs: make(map[glyphKey]*glyph),
	}
}

// AddFont parses a TrueType or OpenType font and registers it under name.
// Registering a name again points it at the new font.
func (fs *Fonts) AddFont(name string, data []byte) (nvg.FontID, error) {
	sf, err := opentype.Parse(data)
	if err != nil {
		return 0, nvg.FontError(fmt.Sprintf("parse font %q", name), err)
	}
	id := nvg.FontID(len(fs.fonts))
	fs.fonts = append(fs.fonts, &fontData{name: name, sf: sf})
	fs.byName[name] = id
	nvg.Logger().Debug("nvg: font added", "name", name, "id", id, "glyphs", sf.NumGlyphs())
	return id, nil
}

// FindFont returns the id registered under name.
func (fs *Fonts) FindFont(name string) (nvg.FontID, bool) {
	id, ok := fs.byName[name]
	return id, ok
}

// AddFallback makes fallback supply the glyphs base lacks. Unknown ids are
// ignored.
func (fs *Fonts) AddFallback(base, fallback nvg.FontID) {
	b := fs.font(base)
	if b == nil || fs.font(fallback) == nil || base == fallback {
		return
	}
	b.fallbacks = append(b.fallbacks, fallback)
}

// Image returns the atlas texture, 0 before the first layout.
func (fs *Fonts) Image() nvg.ImageID {
	return fs.img
}

func (fs *Fonts) font(id nvg.FontID) *fontData {
	if id < 0 || int(id) >= len(fs.fonts) {
		return nil
	}
	return fs.fonts[id]
}

// lookup finds the font supplying r, starting with id and then its
// fallbacks.
func (fs *Fonts) lookup(id nvg.FontID, r rune) (nvg.FontID, *fontData, sfnt.GlyphIndex, bool) {
	base := fs.font(id)
	if base == nil {
		return 0, nil, 0, false
	}
	if gi, err := base.sf.GlyphIndex(&fs.buf, r); err == nil && gi != 0 {
		return id, base, gi, true
	}
	for _, fid := range base.fallbacks {
		fd := fs.font(fid)
		if gi, err := fd.sf.GlyphIndex(&fs.buf, r); err == nil && gi != 0 {
			return fid, fd, gi, true
		}
	}
	return 0, nil, 0, false
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func (fs *Fonts) advance(fd *fontData, gi sfnt.GlyphIndex, size float32) float32 {
	adv, err := fd.sf.GlyphAdvance(&fs.buf, gi, toFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

func (fs *Fonts) kern(fd *fontData, a, b sfnt.GlyphIndex, size float32) float32 {
	k, err := fd.sf.Kern(&fs.buf, a, b, toFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(k)
}

// TextMetrics returns the vertical metrics of font id at size. Unknown
// fonts have zero metrics.
func (fs *Fonts) TextMetrics(id nvg.FontID, size float32) nvg.TextMetrics {
	fd := fs.font(id)
	if fd == nil {
		return nvg.TextMetrics{}
	}
	m, err := fd.sf.Metrics(&fs.buf, toFixed(size), font.HintingNone)
	if err != nil {
		return nvg.TextMetrics{}
	}
	asc, desc := fromFixed(m.Ascent), fromFixed(m.Descent)
	return nvg.TextMetrics{
		Ascender:  asc,
		Descender: -desc,
		LineGap:   math32.Max(0, fromFixed(m.Height)-asc-desc),
	}
}

// run walks the glyphs of text, calling fn with each glyph's pen x
// position relative to the start and its advance. Kerning applies between
// consecutive glyphs of the same font; spacing is added between glyphs.
func (fs *Fonts) run(text string, id nvg.FontID, size, spacing float32,
	fn func(i int, r rune, fid nvg.FontID, fd *fontData, gi sfnt.GlyphIndex, x, adv float32) error) (float32, error) {
	var (
		x        float32
		n        int
		prevGI   sfnt.GlyphIndex
		prevFont = nvg.FontID(-1)
	)
	i := 0
	for _, r := range text {
		fid, fd, gi, ok := fs.lookup(id, r)
		if !ok {
			i++
			continue
		}
		if n > 0 {
			x += spacing
			if fid == prevFont {
				x += fs.kern(fd, prevGI, gi, size)
			}
		}
		adv := fs.advance(fd, gi, size)
		if fn != nil {
			if err := fn(i, r, fid, fd, gi, x, adv); err != nil {
				return x, err
			}
		}
		x += adv
		prevGI, prevFont = gi, fid
		n++
		i++
	}
	return x, nil
}

// TextSize measures text in font id at size: the summed advances with
// kerning and spacing, and the line height.
func (fs *Fonts) TextSize(text string, id nvg.FontID, size, spacing float32) nvg.Extent {
	if fs.font(id) == nil {
		return nvg.Extent{}
	}
	w, _ := fs.run(norm.NFC.String(text), id, size, spacing, nil)
	return nvg.Extent{Width: w, Height: fs.TextMetrics(id, size).LineHeight()}
}

// alignOffset returns the offset of the first pen position from pos.
func (fs *Fonts) alignOffset(text string, id nvg.FontID, size, spacing float32, align nvg.Align) (float32, float32) {
	var dx, dy float32
	if align.Has(nvg.AlignCenter) || align.Has(nvg.AlignRight) {
		w, _ := fs.run(text, id, size, spacing, nil)
		if align.Has(nvg.AlignCenter) {
			dx = -w / 2
		} else {
			dx = -w
		}
	}
	m := fs.TextMetrics(id, size)
	switch {
	case align.Has(nvg.AlignTop):
		dy = m.Ascender
	case align.Has(nvg.AlignMiddle):
		dy = (m.Ascender + m.Descender) / 2
	case align.Has(nvg.AlignBottom):
		dy = m.Descender
	}
	return dx, dy
}

// LayoutText positions text and rasterizes its glyphs into the atlas.
// Every glyph found in the font or its fallbacks is appended to out; glyphs
// without pixels, such as spaces, get empty Bounds. Index is the rune
// index in the NFC-normalized text.
func (fs *Fonts) LayoutText(r nvg.Renderer, text string, id nvg.FontID, pos nvg.Point, size float32,
	align nvg.Align, spacing float32, out []nvg.LayoutChar) ([]nvg.LayoutChar, error) {
	if fs.font(id) == nil {
		return out, nvg.FontError(fmt.Sprintf("unknown font %d", id), nil)
	}
	if err := fs.ensureAtlas(r); err != nil {
		return out, err
	}

	text = norm.NFC.String(text)
	start := len(out)
	res, err := fs.layout(r, text, id, pos, size, align, spacing, out)
	if errors.Is(err, errAtlasFull) {
		if err := fs.resetAtlas(r); err != nil {
			return out[:start], err
		}
		res, err = fs.layout(r, text, id, pos, size, align, spacing, out[:start])
		if errors.Is(err, errAtlasFull) {
			return out[:start], nvg.FontError("text does not fit the glyph atlas", err)
		}
	}
	return res, err
}

func (fs *Fonts) layout(r nvg.Renderer, text string, id nvg.FontID, pos nvg.Point, size float32,
	align nvg.Align, spacing float32, out []nvg.LayoutChar) ([]nvg.LayoutChar, error) {
	dx, dy := fs.alignOffset(text, id, size, spacing, align)
	ox, oy := pos.X+dx, pos.Y+dy
	aw, ah := fs.atlas.Size()

	_, err := fs.run(text, id, size, spacing, func(i int, ch rune, fid nvg.FontID, fd *fontData, gi sfnt.GlyphIndex, x, adv float32) error {
		g, err := fs.glyph(r, fid, fd, gi, size)
		if err != nil {
			return err
		}
		lc := nvg.LayoutChar{Rune: ch, Index: i, X: ox + x, NextX: ox + x + adv}
		if g.region.IsValid() {
			gx := math32.Floor(ox+x) + float32(g.x0)
			gy := math32.Floor(oy) + float32(g.y0)
			w, h := float32(g.region.Width), float32(g.region.Height)
			lc.Bounds = nvg.Bounds{Min: nvg.Pt(gx, gy), Max: nvg.Pt(gx+w, gy+h)}
			lc.UV = nvg.Bounds{
				Min: nvg.Pt(float32(g.region.X)/float32(aw), float32(g.region.Y)/float32(ah)),
				Max: nvg.Pt(float32(g.region.X+g.region.Width)/float32(aw), float32(g.region.Y+g.region.Height)/float32(ah)),
			}
		}
		out = append(out, lc)
		return nil
	})
	return out, err
}

func (fs *Fonts) ensureAtlas(r nvg.Renderer) error {
	if fs.img != 0 {
		return nil
	}
	w, h := fs.atlas.Size()
	img, err := r.CreateTexture(nvg.TextureAlpha, w, h, 0, nil)
	if err != nil {
		return fmt.Errorf("create glyph atlas: %w", err)
	}
	fs.img = img
	nvg.Logger().Debug("nvg: glyph atlas created", "image", img, "width", w, "height", h)
	return nil
}

func (fs *Fonts) resetAtlas(r nvg.Renderer) error {
	w, h := fs.atlas.Size()
	nvg.Logger().Warn("nvg: glyph atlas full, resetting",
		"glyphs", len(fs.glyphs), "utilization", fs.atlas.Utilization())
	fs.atlas.Reset()
	clear(fs.glyphs)
	return r.UpdateTexture(fs.img, 0, 0, w, h, make([]byte, w*h))
}
