// Command nvgdemo draws a sample canvas frame.
//
// With the software backend the frame is written to a PNG file; with the
// gpucmd backend the recorded command list is summarized.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/backend"
	"github.com/gogpu/nvg/backend/gpucmd"
	"github.com/gogpu/nvg/backend/software"
	"github.com/gogpu/nvg/fonts"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file")
		name    = flag.String("backend", backend.BackendSoftware, "renderer backend")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		nvg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	r, err := backend.New(*name, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v (available: %v)", err, backend.Available())
	}

	c := nvg.New(r, nvg.WithFonts(fonts.New()))
	if _, err := c.CreateFont("sans", goregular.TTF); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	if _, err := c.CreateFont("sans-bold", gobold.TTF); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	bg := nvg.RGB8(0x1e, 0x22, 0x2a)
	if err := c.BeginFrame(&bg); err != nil {
		log.Fatalf("BeginFrame: %v", err)
	}

	w, h := float32(*width), float32(*height)
	drawBackground(c, w, h)
	drawShapes(c)
	drawStrokes(c)
	drawTransforms(c)
	drawText(c, w)

	stats := c.Stats()
	if err := c.EndFrame(); err != nil {
		log.Fatalf("EndFrame: %v", err)
	}

	switch r := r.(type) {
	case *software.Renderer:
		if err := r.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
	case *gpucmd.Recorder:
		f := r.Frame()
		log.Printf("Recorded %d calls, %d draws, %d vertices, %d uniform bytes\n",
			len(f.Calls), len(f.Draws), len(f.Vertices), len(f.Uniforms))
	}
	log.Printf("%d draw calls, %d fill / %d stroke / %d text triangles\n",
		stats.DrawCalls, stats.FillTriangles, stats.StrokeTriangles, stats.TextTriangles)
}

func fill(c *nvg.Canvas) {
	if err := c.Fill(); err != nil {
		log.Printf("fill: %v", err)
	}
}

func stroke(c *nvg.Canvas) {
	if err := c.Stroke(); err != nil {
		log.Printf("stroke: %v", err)
	}
}

func drawBackground(c *nvg.Canvas, w, h float32) {
	c.BeginPath()
	c.Rect(nvg.RectXYWH(0, 0, w, h))
	c.FillPaint(nvg.LinearGradient(0, 0, 0, h, nvg.RGB(0.1, 0.2, 0.4), nvg.RGB(0.5, 0.5, 0.6)))
	fill(c)
}

func drawShapes(c *nvg.Canvas) {
	// Overlapping translucent circles.
	for i, col := range []nvg.Color{
		nvg.RGBAf(1, 0.3, 0.3, 0.8),
		nvg.RGBAf(0.3, 1, 0.3, 0.8),
		nvg.RGBAf(0.3, 0.3, 1, 0.8),
	} {
		a := float32(i) * 2 * math32.Pi / 3
		c.BeginPath()
		c.Circle(nvg.Pt(175+40*math32.Cos(a), 175+40*math32.Sin(a)), 60)
		c.FillColor(col)
		fill(c)
	}

	// Rounded panel with a drop shadow.
	c.BeginPath()
	c.Rect(nvg.RectXYWH(330, 90, 180, 120))
	c.RoundedRect(nvg.RectXYWH(340, 100, 160, 100), 12)
	c.PathSolidity(nvg.Hole)
	c.FillPaint(nvg.BoxGradient(340, 104, 160, 100, 12, 10, nvg.RGBA8(0, 0, 0, 128), nvg.RGBA8(0, 0, 0, 0)))
	fill(c)

	c.BeginPath()
	c.RoundedRect(nvg.RectXYWH(340, 100, 160, 100), 12)
	c.FillPaint(nvg.RadialGradient(420, 150, 10, 90, nvg.RGB(1, 0.85, 0.2), nvg.RGB(0.9, 0.5, 0.1)))
	fill(c)

	// Star, a self-intersecting path filled with the non-zero rule.
	c.BeginPath()
	for i := range 5 {
		a := -math32.Pi/2 + float32(i)*4*math32.Pi/5
		p := nvg.Pt(640+70*math32.Cos(a), 160+70*math32.Sin(a))
		if i == 0 {
			c.MoveTo(p)
		} else {
			c.LineTo(p)
		}
	}
	c.ClosePath()
	c.FillColor(nvg.RGB(0.95, 0.95, 0.3))
	fill(c)
}

func drawStrokes(c *nvg.Canvas) {
	caps := []nvg.LineCap{nvg.LineCapButt, nvg.LineCapRound, nvg.LineCapSquare}
	joins := []nvg.LineJoin{nvg.LineJoinMiter, nvg.LineJoinRound, nvg.LineJoinBevel}

	c.StrokeWidth(12)
	for i := range caps {
		x := float32(80 + i*110)
		c.LineCap(caps[i])
		c.LineJoin(joins[i])
		c.BeginPath()
		c.MoveTo(nvg.Pt(x, 330))
		c.LineTo(nvg.Pt(x+40, 290))
		c.LineTo(nvg.Pt(x+80, 330))
		c.StrokeColor(nvg.RGBA8(255, 255, 255, 200))
		stroke(c)
	}

	// Thin curves.
	c.StrokeWidth(2)
	c.LineCap(nvg.LineCapRound)
	c.BeginPath()
	c.MoveTo(nvg.Pt(420, 340))
	c.BezierTo(nvg.Pt(480, 240), nvg.Pt(560, 420), nvg.Pt(620, 300))
	c.QuadTo(nvg.Pt(680, 240), nvg.Pt(740, 320))
	c.StrokeColor(nvg.RGB(0.3, 0.9, 1))
	stroke(c)
}

func drawTransforms(c *nvg.Canvas) {
	for i := range 8 {
		c.Save()
		c.Translate(160, 470)
		c.Rotate(float32(i) * math32.Pi / 4)
		c.BeginPath()
		c.RoundedRect(nvg.RectXYWH(30, -8, 60, 16), 8)
		c.FillColor(nvg.HSLA(float32(i)/8, 0.7, 0.6, 0.9))
		fill(c)
		c.Restore()
	}

	c.Save()
	c.Scissor(nvg.RectXYWH(320, 400, 160, 140))
	c.BeginPath()
	c.Circle(nvg.Pt(400, 470), 100)
	c.FillColor(nvg.RGB(0.6, 0.3, 0.9))
	fill(c)
	c.Restore()
}

func drawText(c *nvg.Canvas, w float32) {
	c.FontFace("sans-bold")
	c.FontSize(32)
	c.TextAlign(nvg.AlignCenter | nvg.AlignTop)
	c.FillColor(nvg.White)
	if _, err := c.Text(nvg.Pt(w/2, 16), "nvg"); err != nil {
		log.Printf("text: %v", err)
	}

	c.FontFace("sans")
	c.FontSize(18)
	c.TextAlign(nvg.AlignLeft | nvg.AlignBaseline)
	c.FillColor(nvg.RGBA8(255, 255, 255, 220))
	if _, err := c.Text(nvg.Pt(540, 480), "Vector graphics, one canvas."); err != nil {
		log.Printf("text: %v", err)
	}
}
