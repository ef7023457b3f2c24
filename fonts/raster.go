package fonts

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/nvg"
)

// glyphKey identifies a rasterized glyph. Sizes are quantized to tenths of
// a pixel.
type glyphKey struct {
	font  nvg.FontID
	index sfnt.GlyphIndex
	size  int32
}

// glyph is a cached glyph bitmap. x0, y0 offset the bitmap from the pen
// position; an invalid region means the glyph has no pixels.
type glyph struct {
	region Region
	x0, y0 int
}

// rasterizer turns glyph outlines into coverage masks.
type rasterizer struct {
	z    vector.Rasterizer
	mask *image.Alpha
}

func (rz *rasterizer) draw(segs sfnt.Segments, x0, y0, w, h int) *image.Alpha {
	rz.z.Reset(w, h)
	rz.z.DrawOp = draw.Src

	ox, oy := float32(x0), float32(y0)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return fromFixed(p.X) - ox, fromFixed(p.Y) - oy
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				rz.z.ClosePath()
			}
			rz.z.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			rz.z.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			rz.z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			rz.z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		rz.z.ClosePath()
	}

	if rz.mask == nil || rz.mask.Rect.Dx() != w || rz.mask.Rect.Dy() != h {
		rz.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}
	rz.z.Draw(rz.mask, rz.mask.Bounds(), image.Opaque, image.Point{})
	return rz.mask
}

// glyph returns the cached glyph, rasterizing and uploading it to the
// atlas on first use. It returns errAtlasFull when the atlas has no room.
func (fs *Fonts) glyph(r nvg.Renderer, fid nvg.FontID, fd *fontData, gi sfnt.GlyphIndex, size float32) (*glyph, error) {
	key := glyphKey{font: fid, index: gi, size: int32(math32.Round(size * 10))}
	if g, ok := fs.glyphs[key]; ok {
		return g, nil
	}

	ppem := toFixed(float32(key.size) / 10)
	b, _, err := fd.sf.GlyphBounds(&fs.buf, gi, ppem, font.HintingNone)
	if err != nil {
		return nil, nvg.FontError(fmt.Sprintf("glyph %d bounds", gi), err)
	}
	x0, y0 := b.Min.X.Floor(), b.Min.Y.Floor()
	w, h := b.Max.X.Ceil()-x0, b.Max.Y.Ceil()-y0

	g := &glyph{x0: x0, y0: y0}
	if w <= 0 || h <= 0 {
		fs.glyphs[key] = g
		return g, nil
	}

	segs, err := fd.sf.LoadGlyph(&fs.buf, gi, ppem, nil)
	if err != nil {
		return nil, nvg.FontError(fmt.Sprintf("load glyph %d", gi), err)
	}
	if len(segs) == 0 {
		fs.glyphs[key] = g
		return g, nil
	}

	region := fs.atlas.Allocate(w, h)
	if !region.IsValid() {
		return nil, errAtlasFull
	}
	mask := fs.raster.draw(segs, x0, y0, w, h)
	if err := r.UpdateTexture(fs.img, region.X, region.Y, w, h, mask.Pix); err != nil {
		return nil, fmt.Errorf("upload glyph %d: %w", gi, err)
	}
	g.region = region
	fs.glyphs[key] = g
	return g, nil
}
