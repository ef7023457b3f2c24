package tess

import (
	"github.com/chewxy/math32"
)

// writer appends vertices into a pre-sized region of the arena.
type writer struct {
	buf []Vertex
	n   int
}

func (w *writer) put(x, y, u, v float32) {
	w.buf[w.n] = Vertex{X: x, Y: y, U: u, V: v}
	w.n++
}

func chooseBevel(bevel bool, p0, p1 *vpoint, w float32) (x0, y0, x1, y1 float32) {
	if bevel {
		x0 = p1.xy.X + p0.d.Y*w
		y0 = p1.xy.Y - p0.d.X*w
		x1 = p1.xy.X + p1.d.Y*w
		y1 = p1.xy.Y - p1.d.X*w
		return
	}
	x0 = p1.xy.X + p1.dm.X*w
	y0 = p1.xy.Y + p1.dm.Y*w
	return x0, y0, x0, y0
}

func roundJoin(dst *writer, p0, p1 *vpoint, lw, rw, lu, ru float32, ncap int) {
	dlx0, dly0 := p0.d.Y, -p0.d.X
	dlx1, dly1 := p1.d.Y, -p1.d.X
	px, py := p1.xy.X, p1.xy.Y

	if p1.has(ptLeft) {
		lx0, ly0, lx1, ly1 := chooseBevel(p1.has(ptInnerBevel), p0, p1, lw)
		a0 := math32.Atan2(-dly0, -dlx0)
		a1 := math32.Atan2(-dly1, -dlx1)
		if a1 > a0 {
			a1 -= math32.Pi * 2
		}

		dst.put(lx0, ly0, lu, 1)
		dst.put(px-dlx0*rw, py-dly0*rw, ru, 1)

		n := clampInt(int(math32.Ceil((a0-a1)/math32.Pi*float32(ncap))), 2, ncap)
		for i := 0; i < n; i++ {
			u := float32(i) / float32(n-1)
			a := a0 + u*(a1-a0)
			rx := px + math32.Cos(a)*rw
			ry := py + math32.Sin(a)*rw
			dst.put(px, py, 0.5, 1)
			dst.put(rx, ry, ru, 1)
		}

		dst.put(lx1, ly1, lu, 1)
		dst.put(px-dlx1*rw, py-dly1*rw, ru, 1)
		return
	}

	rx0, ry0, rx1, ry1 := chooseBevel(p1.has(ptInnerBevel), p0, p1, -rw)
	a0 := math32.Atan2(dly0, dlx0)
	a1 := math32.Atan2(dly1, dlx1)
	if a1 < a0 {
		a1 += math32.Pi * 2
	}

	dst.put(px+dlx0*rw, py+dly0*rw, lu, 1)
	dst.put(rx0, ry0, ru, 1)

	n := clampInt(int(math32.Ceil((a1-a0)/math32.Pi*float32(ncap))), 2, ncap)
	for i := 0; i < n; i++ {
		u := float32(i) / float32(n-1)
		a := a0 + u*(a1-a0)
		lx := px + math32.Cos(a)*lw
		ly := py + math32.Sin(a)*lw
		dst.put(lx, ly, lu, 1)
		dst.put(px, py, 0.5, 1)
	}

	dst.put(px+dlx1*rw, py+dly1*rw, lu, 1)
	dst.put(rx1, ry1, ru, 1)
}

func bevelJoin(dst *writer, p0, p1 *vpoint, lw, rw, lu, ru float32) {
	dlx0, dly0 := p0.d.Y, -p0.d.X
	dlx1, dly1 := p1.d.Y, -p1.d.X
	px, py := p1.xy.X, p1.xy.Y

	if p1.has(ptLeft) {
		lx0, ly0, lx1, ly1 := chooseBevel(p1.has(ptInnerBevel), p0, p1, lw)

		dst.put(lx0, ly0, lu, 1)
		dst.put(px-dlx0*rw, py-dly0*rw, ru, 1)

		if p1.has(ptBevel) {
			dst.put(lx0, ly0, lu, 1)
			dst.put(px-dlx0*rw, py-dly0*rw, ru, 1)
			dst.put(lx1, ly1, lu, 1)
			dst.put(px-dlx1*rw, py-dly1*rw, ru, 1)
		} else {
			rx0 := px - p1.dm.X*rw
			ry0 := py - p1.dm.Y*rw
			dst.put(px, py, 0.5, 1)
			dst.put(px-dlx0*rw, py-dly0*rw, ru, 1)
			dst.put(rx0, ry0, ru, 1)
			dst.put(rx0, ry0, ru, 1)
			dst.put(px, py, 0.5, 1)
			dst.put(px-dlx1*rw, py-dly1*rw, ru, 1)
		}

		dst.put(lx1, ly1, lu, 1)
		dst.put(px-dlx1*rw, py-dly1*rw, ru, 1)
		return
	}

	rx0, ry0, rx1, ry1 := chooseBevel(p1.has(ptInnerBevel), p0, p1, -rw)

	dst.put(px+dlx0*lw, py+dly0*lw, lu, 1)
	dst.put(rx0, ry0, ru, 1)

	if p1.has(ptBevel) {
		dst.put(px+dlx0*lw, py+dly0*lw, lu, 1)
		dst.put(rx0, ry0, ru, 1)
		dst.put(px+dlx1*lw, py+dly1*lw, lu, 1)
		dst.put(rx1, ry1, ru, 1)
	} else {
		lx0 := px + p1.dm.X*lw
		ly0 := py + p1.dm.Y*lw
		dst.put(px+dlx0*lw, py+dly0*lw, lu, 1)
		dst.put(px, py, 0.5, 1)
		dst.put(lx0, ly0, lu, 1)
		dst.put(lx0, ly0, lu, 1)
		dst.put(px+dlx1*lw, py+dly1*lw, lu, 1)
		dst.put(px, py, 0.5, 1)
	}

	dst.put(px+dlx1*lw, py+dly1*lw, lu, 1)
	dst.put(rx1, ry1, ru, 1)
}

func buttCapStart(dst *writer, p *vpoint, dx, dy, w, d, aa, u0, u1 float32) {
	px := p.xy.X - dx*d
	py := p.xy.Y - dy*d
	dlx, dly := dy, -dx
	dst.put(px+dlx*w-dx*aa, py+dly*w-dy*aa, u0, 0)
	dst.put(px-dlx*w-dx*aa, py-dly*w-dy*aa, u1, 0)
	dst.put(px+dlx*w, py+dly*w, u0, 1)
	dst.put(px-dlx*w, py-dly*w, u1, 1)
}

func buttCapEnd(dst *writer, p *vpoint, dx, dy, w, d, aa, u0, u1 float32) {
	px := p.xy.X + dx*d
	py := p.xy.Y + dy*d
	dlx, dly := dy, -dx
	dst.put(px+dlx*w, py+dly*w, u0, 1)
	dst.put(px-dlx*w, py-dly*w, u1, 1)
	dst.put(px+dlx*w+dx*aa, py+dly*w+dy*aa, u0, 0)
	dst.put(px-dlx*w+dx*aa, py-dly*w+dy*aa, u1, 0)
}

func roundCapStart(dst *writer, p *vpoint, dx, dy, w float32, ncap int, u0, u1 float32) {
	px, py := p.xy.X, p.xy.Y
	dlx, dly := dy, -dx
	for i := 0; i < ncap; i++ {
		a := float32(i) / float32(ncap-1) * math32.Pi
		ax := math32.Cos(a) * w
		ay := math32.Sin(a) * w
		dst.put(px-dlx*ax-dx*ay, py-dly*ax-dy*ay, u0, 1)
		dst.put(px, py, 0.5, 1)
	}
	dst.put(px+dlx*w, py+dly*w, u0, 1)
	dst.put(px-dlx*w, py-dly*w, u1, 1)
}

func roundCapEnd(dst *writer, p *vpoint, dx, dy, w float32, ncap int, u0, u1 float32) {
	px, py := p.xy.X, p.xy.Y
	dlx, dly := dy, -dx
	dst.put(px+dlx*w, py+dly*w, u0, 1)
	dst.put(px-dlx*w, py-dly*w, u1, 1)
	for i := 0; i < ncap; i++ {
		a := float32(i) / float32(ncap-1) * math32.Pi
		ax := math32.Cos(a) * w
		ay := math32.Sin(a) * w
		dst.put(px, py, 0.5, 1)
		dst.put(px-dlx*ax+dx*ay, py-dly*ax+dy*ay, u0, 1)
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
