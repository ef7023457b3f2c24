package software_test

import (
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/backend/software"
	"github.com/gogpu/nvg/fonts"
)

func newCanvas(t *testing.T, w, h int, opts ...software.Option) (*nvg.Canvas, *software.Renderer) {
	t.Helper()
	r := software.New(w, h, opts...)
	c := nvg.New(r)
	if err := c.BeginFrame(&nvg.Transparent); err != nil {
		t.Fatalf("BeginFrame() = %v", err)
	}
	return c, r
}

func endFrame(t *testing.T, c *nvg.Canvas) {
	t.Helper()
	if err := c.EndFrame(); err != nil {
		t.Fatalf("EndFrame() = %v", err)
	}
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func pixelIs(t *testing.T, r *software.Renderer, x, y int, want color.RGBA) {
	t.Helper()
	got := r.Image().RGBAAt(x, y)
	if !near(got.R, want.R, 1) || !near(got.G, want.G, 1) || !near(got.B, want.B, 1) || !near(got.A, want.A, 1) {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

var (
	red         = color.RGBA{255, 0, 0, 255}
	transparent = color.RGBA{}
)

func TestFillRect(t *testing.T) {
	for _, aa := range []bool{true, false} {
		name := "aliased"
		if aa {
			name = "antialiased"
		}
		t.Run(name, func(t *testing.T) {
			c, r := newCanvas(t, 40, 40, software.WithEdgeAntialias(aa))
			c.BeginPath()
			c.Rect(nvg.RectXYWH(10, 10, 20, 20))
			c.FillColor(nvg.Red)
			if err := c.Fill(); err != nil {
				t.Fatalf("Fill() = %v", err)
			}
			endFrame(t, c)

			for y := range 40 {
				for x := range 40 {
					want := transparent
					if x >= 10 && x < 30 && y >= 10 && y < 30 {
						want = red
					}
					pixelIs(t, r, x, y, want)
				}
			}
		})
	}
}

func TestFillCircleAntialiased(t *testing.T) {
	c, r := newCanvas(t, 64, 64)
	c.BeginPath()
	c.Circle(nvg.Pt(32, 32), 20)
	c.FillColor(nvg.White)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	endFrame(t, c)

	pixelIs(t, r, 32, 32, color.RGBA{255, 255, 255, 255})
	pixelIs(t, r, 2, 2, transparent)

	partial := 0
	for y := range 64 {
		for x := range 64 {
			if a := r.Image().RGBAAt(x, y).A; a > 0 && a < 255 {
				partial++
			}
		}
	}
	if partial == 0 {
		t.Error("circle edge has no partially covered pixels")
	}
}

func TestFillWithHole(t *testing.T) {
	c, r := newCanvas(t, 60, 60)
	c.BeginPath()
	c.Rect(nvg.RectXYWH(10, 10, 40, 40))
	c.Rect(nvg.RectXYWH(20, 20, 20, 20))
	c.PathSolidity(nvg.Hole)
	c.FillColor(nvg.Red)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	endFrame(t, c)

	pixelIs(t, r, 15, 15, red)
	pixelIs(t, r, 15, 30, red)
	pixelIs(t, r, 45, 45, red)
	pixelIs(t, r, 30, 30, transparent)
	pixelIs(t, r, 5, 30, transparent)
	pixelIs(t, r, 55, 30, transparent)
}

func TestFillConcave(t *testing.T) {
	c, r := newCanvas(t, 40, 40)
	// An L shape.
	c.BeginPath()
	c.MoveTo(nvg.Pt(5, 5))
	c.LineTo(nvg.Pt(5, 35))
	c.LineTo(nvg.Pt(35, 35))
	c.LineTo(nvg.Pt(35, 25))
	c.LineTo(nvg.Pt(15, 25))
	c.LineTo(nvg.Pt(15, 5))
	c.ClosePath()
	c.FillColor(nvg.Red)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	endFrame(t, c)

	pixelIs(t, r, 10, 10, red)
	pixelIs(t, r, 30, 30, red)
	pixelIs(t, r, 25, 15, transparent)
}

func TestStrokeLine(t *testing.T) {
	c, r := newCanvas(t, 64, 64)
	c.BeginPath()
	c.MoveTo(nvg.Pt(10, 32))
	c.LineTo(nvg.Pt(54, 32))
	c.StrokeColor(nvg.Red)
	c.StrokeWidth(4)
	if err := c.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}
	endFrame(t, c)

	for y := 30; y < 34; y++ {
		pixelIs(t, r, 32, y, red)
	}
	pixelIs(t, r, 32, 28, transparent)
	pixelIs(t, r, 32, 35, transparent)
	pixelIs(t, r, 5, 32, transparent)
}

func TestLinearGradient(t *testing.T) {
	c, r := newCanvas(t, 64, 8)
	c.BeginPath()
	c.Rect(nvg.RectXYWH(0, 0, 64, 8))
	c.FillPaint(nvg.LinearGradient(0, 0, 64, 0, nvg.Black, nvg.White))
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	endFrame(t, c)

	img := r.Image()
	prev := -1
	for x := range 64 {
		v := int(img.RGBAAt(x, 4).R)
		if v < prev {
			t.Fatalf("gradient decreases at x=%d: %d < %d", x, v, prev)
		}
		prev = v
	}
	if mid := img.RGBAAt(32, 4); !near(mid.R, 129, 3) || mid.A != 255 {
		t.Errorf("middle pixel = %v, want about 129 opaque", mid)
	}
}

func TestImagePattern(t *testing.T) {
	c, r := newCanvas(t, 32, 32)
	pix := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	img, err := c.CreateImageRGBA(2, 2, nvg.ImageNearest, pix)
	if err != nil {
		t.Fatalf("CreateImageRGBA() = %v", err)
	}

	c.BeginPath()
	c.Rect(nvg.RectXYWH(0, 0, 32, 32))
	c.FillPaint(nvg.ImagePattern(0, 0, 32, 32, 0, img, 1))
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	endFrame(t, c)

	pixelIs(t, r, 8, 8, red)
	pixelIs(t, r, 24, 8, color.RGBA{0, 255, 0, 255})
	pixelIs(t, r, 8, 24, color.RGBA{0, 0, 255, 255})
	pixelIs(t, r, 24, 24, color.RGBA{255, 255, 255, 255})
}

func TestScissor(t *testing.T) {
	c, r := newCanvas(t, 48, 48)
	c.Scissor(nvg.RectXYWH(0, 0, 16, 16))
	c.BeginPath()
	c.Rect(nvg.RectXYWH(0, 0, 48, 48))
	c.FillColor(nvg.Red)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	endFrame(t, c)

	pixelIs(t, r, 8, 8, red)
	pixelIs(t, r, 32, 32, transparent)
	pixelIs(t, r, 8, 32, transparent)
}

func TestGlobalAlphaAndComposite(t *testing.T) {
	c, r := newCanvas(t, 16, 16)
	c.GlobalAlpha(0.5)
	c.BeginPath()
	c.Rect(nvg.RectXYWH(0, 0, 8, 16))
	c.FillColor(nvg.White)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	pixelIs(t, r, 4, 8, color.RGBA{128, 128, 128, 128})

	c.GlobalAlpha(1)
	c.GlobalCompositeOperation(nvg.CompositeDstOut)
	c.BeginPath()
	c.Rect(nvg.RectXYWH(0, 0, 16, 8))
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	endFrame(t, c)

	pixelIs(t, r, 4, 4, transparent)
	pixelIs(t, r, 4, 12, color.RGBA{128, 128, 128, 128})
}

func TestClearScreen(t *testing.T) {
	r := software.New(4, 4)
	c := nvg.New(r)
	if err := c.BeginFrame(&nvg.Blue); err != nil {
		t.Fatalf("BeginFrame() = %v", err)
	}
	pixelIs(t, r, 3, 3, color.RGBA{0, 0, 255, 255})
}

func TestDevicePixelRatio(t *testing.T) {
	c, r := newCanvas(t, 16, 16, software.WithDevicePixelRatio(2))
	if b := r.Image().Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("image size = %v, want 32x32", b)
	}
	c.BeginPath()
	c.Rect(nvg.RectXYWH(4, 4, 8, 8))
	c.FillColor(nvg.Red)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	endFrame(t, c)

	pixelIs(t, r, 8, 8, red)
	pixelIs(t, r, 23, 23, red)
	pixelIs(t, r, 7, 16, transparent)
	pixelIs(t, r, 24, 16, transparent)
}

func TestText(t *testing.T) {
	r := software.New(120, 40)
	c := nvg.New(r, nvg.WithFonts(fonts.New()))
	if _, err := c.CreateFont("sans", goregular.TTF); err != nil {
		t.Fatalf("CreateFont() = %v", err)
	}
	if err := c.BeginFrame(&nvg.Transparent); err != nil {
		t.Fatalf("BeginFrame() = %v", err)
	}
	c.FontSize(24)
	c.FillColor(nvg.White)
	next, err := c.Text(nvg.Pt(10, 30), "Hello")
	if err != nil {
		t.Fatalf("Text() = %v", err)
	}
	endFrame(t, c)

	if next <= 10 || next > 120 {
		t.Errorf("Text() next = %v, want past the start", next)
	}
	img := r.Image()
	inked := 0
	for y := range 40 {
		for x := range 120 {
			a := img.RGBAAt(x, y).A
			if a == 0 {
				continue
			}
			if x < 10 || y > 31 {
				t.Fatalf("ink at (%d,%d) outside the text box", x, y)
			}
			inked++
		}
	}
	if inked < 50 {
		t.Errorf("text inked %d pixels, want the glyphs drawn", inked)
	}
}

func TestTextureErrors(t *testing.T) {
	r := software.New(8, 8)
	if _, err := r.CreateTexture(nvg.TextureRGBA, 0, 4, 0, nil); !errors.Is(err, nvg.ErrTexture) {
		t.Errorf("CreateTexture(0x4) = %v, want texture error", err)
	}
	if _, err := r.CreateTexture(nvg.TextureRGBA, 2, 2, 0, make([]byte, 3)); !errors.Is(err, nvg.ErrTexture) {
		t.Errorf("CreateTexture(short data) = %v, want texture error", err)
	}

	id, err := r.CreateTexture(nvg.TextureAlpha, 4, 4, 0, nil)
	if err != nil {
		t.Fatalf("CreateTexture() = %v", err)
	}
	if w, h, err := r.TextureSize(id); w != 4 || h != 4 || err != nil {
		t.Errorf("TextureSize() = %d, %d, %v, want 4, 4, nil", w, h, err)
	}
	if err := r.UpdateTexture(id, 2, 2, 4, 4, make([]byte, 16)); !errors.Is(err, nvg.ErrTexture) {
		t.Errorf("UpdateTexture(out of range) = %v, want texture error", err)
	}
	if err := r.DeleteTexture(id); err != nil {
		t.Fatalf("DeleteTexture() = %v", err)
	}
	if err := r.DeleteTexture(id); !errors.Is(err, nvg.ErrTexture) {
		t.Errorf("second DeleteTexture() = %v, want texture error", err)
	}
	if _, _, err := r.TextureSize(id); !errors.Is(err, nvg.ErrTexture) {
		t.Errorf("TextureSize(deleted) = %v, want texture error", err)
	}
}

func TestSavePNG(t *testing.T) {
	r := software.New(4, 4)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	if err := r.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}
