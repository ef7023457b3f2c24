package software

import (
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"

	"github.com/gogpu/nvg"
)

// shadeFunc colors the pixel (x, y) given the interpolated vertex UV.
type shadeFunc func(x, y int, tu, tv float32)

// vert is a vertex in device pixels.
type vert struct {
	x, y, u, v float32
}

func edge(a, b vert, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// topLeft reports whether a->b is a top or left edge of a triangle with
// positive edge() area.
func topLeft(a, b vert) bool {
	dy := b.y - a.y
	return dy < 0 || (dy == 0 && b.x > a.x)
}

func covers(w float32, tl bool) bool {
	return w > 0 || (w == 0 && tl)
}

// rasterTriangle calls shade for every pixel of a w x h target whose centre
// lies inside the triangle. Shared edges belong to exactly one triangle.
func rasterTriangle(a, b, c vert, w, h int, shade shadeFunc) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}

	x0 := max(0, int(math32.Floor(min(a.x, b.x, c.x))))
	y0 := max(0, int(math32.Floor(min(a.y, b.y, c.y))))
	x1 := min(w-1, int(math32.Ceil(max(a.x, b.x, c.x))))
	y1 := min(h-1, int(math32.Ceil(max(a.y, b.y, c.y))))
	tlA, tlB, tlC := topLeft(b, c), topLeft(c, a), topLeft(a, b)

	for y := y0; y <= y1; y++ {
		py := float32(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float32(x) + 0.5
			wa := edge(b, c, px, py)
			wb := edge(c, a, px, py)
			wc := edge(a, b, px, py)
			if !covers(wa, tlA) || !covers(wb, tlB) || !covers(wc, tlC) {
				continue
			}
			wa, wb, wc = wa/area, wb/area, wc/area
			shade(x, y, wa*a.u+wb*b.u+wc*c.u, wa*a.v+wb*b.v+wc*c.v)
		}
	}
}

func (r *Renderer) vert(v nvg.Vertex) vert {
	return vert{x: v.X * r.ratio, y: v.Y * r.ratio, u: v.U, v: v.V}
}

func (r *Renderer) size() (int, int) {
	return r.dst.Rect.Dx(), r.dst.Rect.Dy()
}

// fan draws verts as a triangle fan around verts[0].
func (r *Renderer) fan(verts []nvg.Vertex, shade shadeFunc) {
	w, h := r.size()
	for i := 2; i < len(verts); i++ {
		rasterTriangle(r.vert(verts[0]), r.vert(verts[i-1]), r.vert(verts[i]), w, h, shade)
	}
}

// strip draws verts as a triangle strip.
func (r *Renderer) strip(verts []nvg.Vertex, shade shadeFunc) {
	w, h := r.size()
	for i := 2; i < len(verts); i++ {
		rasterTriangle(r.vert(verts[i-2]), r.vert(verts[i-1]), r.vert(verts[i]), w, h, shade)
	}
}

// triangles draws verts as a triangle list.
func (r *Renderer) triangles(verts []nvg.Vertex, shade shadeFunc) {
	w, h := r.size()
	for i := 2; i < len(verts); i += 3 {
		rasterTriangle(r.vert(verts[i-2]), r.vert(verts[i-1]), r.vert(verts[i]), w, h, shade)
	}
}

// stencil computes the nonzero winding of the fill polygons of paths into
// r.mask. A pixel is inside when more than half of it is covered.
func (r *Renderer) stencil(paths []nvg.Path) {
	w, h := r.size()
	r.z.Reset(w, h)
	r.z.DrawOp = draw.Src
	for i := range paths {
		fill := paths[i].Fill()
		if len(fill) < 3 {
			continue
		}
		v := r.vert(fill[0])
		r.z.MoveTo(v.x, v.y)
		for _, p := range fill[1:] {
			v = r.vert(p)
			r.z.LineTo(v.x, v.y)
		}
		r.z.ClosePath()
	}
	r.z.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})
}

func (r *Renderer) inside(x, y int) bool {
	return r.mask.Pix[y*r.mask.Stride+x] > 127
}
