package software

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/nvg"
)

func TestRasterTriangleSharedEdge(t *testing.T) {
	const w, h = 16, 16
	var hits [w * h]int
	count := func(x, y int, _, _ float32) { hits[y*w+x]++ }

	a := vert{x: 2, y: 2}
	b := vert{x: 14, y: 2}
	c := vert{x: 14, y: 14}
	d := vert{x: 2, y: 14}
	rasterTriangle(a, b, c, w, h, count)
	rasterTriangle(a, c, d, w, h, count)

	for y := range h {
		for x := range w {
			want := 0
			if x >= 2 && x < 14 && y >= 2 && y < 14 {
				want = 1
			}
			if got := hits[y*w+x]; got != want {
				t.Fatalf("pixel (%d,%d) drawn %d times, want %d", x, y, got, want)
			}
		}
	}
}

func TestRasterTriangleWindingAndClip(t *testing.T) {
	const w, h = 8, 8
	n := 0
	count := func(x, y int, _, _ float32) {
		if x < 0 || y < 0 || x >= w || y >= h {
			t.Fatalf("pixel (%d,%d) outside target", x, y)
		}
		n++
	}
	// Clockwise and counter-clockwise triangles cover the same pixels.
	rasterTriangle(vert{x: -4, y: -4}, vert{x: 20, y: -4}, vert{x: -4, y: 20}, w, h, count)
	cw := n
	n = 0
	rasterTriangle(vert{x: -4, y: -4}, vert{x: -4, y: 20}, vert{x: 20, y: -4}, w, h, count)
	if n != cw || n == 0 {
		t.Errorf("coverage = %d and %d, want equal and non-zero", cw, n)
	}

	n = 0
	rasterTriangle(vert{x: 1, y: 1}, vert{x: 5, y: 5}, vert{x: 9, y: 9}, w, h, count)
	if n != 0 {
		t.Errorf("degenerate triangle covered %d pixels", n)
	}
}

func TestRasterTriangleInterpolatesUV(t *testing.T) {
	a := vert{x: 0, y: 0, u: 0, v: 0}
	b := vert{x: 10, y: 0, u: 1, v: 0}
	c := vert{x: 0, y: 10, u: 0, v: 1}
	rasterTriangle(a, b, c, 10, 10, func(x, y int, tu, tv float32) {
		wantU := (float32(x) + 0.5) / 10
		wantV := (float32(y) + 0.5) / 10
		if d := tu - wantU; d > 1e-5 || d < -1e-5 {
			t.Fatalf("u at (%d,%d) = %v, want %v", x, y, tu, wantU)
		}
		if d := tv - wantV; d > 1e-5 || d < -1e-5 {
			t.Fatalf("v at (%d,%d) = %v, want %v", x, y, tv, wantV)
		}
	})
}

func TestBlend(t *testing.T) {
	half := nvg.Color{R: 0.5, G: 0, B: 0, A: 0.5}
	blue := nvg.Color{R: 0, G: 0, B: 1, A: 1}

	tests := []struct {
		name string
		op   nvg.CompositeOperation
		want nvg.Color
	}{
		{"src over", nvg.CompositeSrcOver, nvg.Color{R: 0.5, G: 0, B: 0.5, A: 1}},
		{"copy", nvg.CompositeCopy, half},
		{"dst over", nvg.CompositeDstOver, blue},
		{"dst out", nvg.CompositeDstOut, nvg.Color{R: 0, G: 0, B: 0.5, A: 0.5}},
		{"src in", nvg.CompositeSrcIn, half},
		{"xor", nvg.CompositeXor, nvg.Color{R: 0, G: 0, B: 0.5, A: 0.5}},
		{"lighter", nvg.CompositeLighter, nvg.Color{R: 0.5, G: 0, B: 1, A: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blend(nvg.Composite(tt.op), half, blue); got != tt.want {
				t.Errorf("blend = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBlendSaturatedAlpha(t *testing.T) {
	cs := nvg.BlendFuncSeparate(
		gputypes.BlendFactorSrcAlphaSaturated, gputypes.BlendFactorOne,
		gputypes.BlendFactorSrcAlphaSaturated, gputypes.BlendFactorZero)
	s := nvg.Color{R: 1, G: 1, B: 1, A: 1}
	d := nvg.Color{R: 0, G: 0, B: 0, A: 0.75}
	got := blend(cs, s, d)
	if got.R != 0.25 || got.A != 1 {
		t.Errorf("blend = %+v, want R 0.25 A 1", got)
	}
}

func TestBlendPixelClamps(t *testing.T) {
	pix := []uint8{200, 0, 0, 255}
	blendPixel(pix, 0, nvg.Composite(nvg.CompositeLighter), nvg.Color{R: 1, A: 1})
	if pix[0] != 255 || pix[3] != 255 {
		t.Errorf("pixel = %v, want saturated red", pix)
	}
}
