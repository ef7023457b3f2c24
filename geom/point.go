package geom

import "github.com/chewxy/math32"

// Point is a position or direction in 2D space.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Equals reports whether q lies strictly within tol of p.
func (p Point) Equals(q Point, tol float32) bool {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx+dy*dy < tol*tol
}

// DistPtSeg returns the squared distance from p to the segment a-b.
func (p Point) DistPtSeg(a, b Point) float32 {
	pqx := b.X - a.X
	pqy := b.Y - a.Y
	dx := p.X - a.X
	dy := p.Y - a.Y
	d := pqx*pqx + pqy*pqy
	t := pqx*dx + pqy*dy
	if d > 0 {
		t /= d
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	dx = a.X + t*pqx - p.X
	dy = a.Y + t*pqy - p.Y
	return dx*dx + dy*dy
}

// Normalize scales p to unit length in place and returns the original
// length. Vectors shorter than 1e-6 are left untouched.
func (p *Point) Normalize() float32 {
	d := math32.Sqrt(p.X*p.X + p.Y*p.Y)
	if d > 1e-6 {
		id := 1 / d
		p.X *= id
		p.Y *= id
	}
	return d
}

// Cross returns the 2D cross product p2.X*p1.Y - p1.X*p2.Y.
func Cross(p1, p2 Point) float32 {
	return p2.X*p1.Y - p1.X*p2.Y
}

// Offset returns p translated by (tx, ty).
func (p Point) Offset(tx, ty float32) Point {
	return Point{X: p.X + tx, Y: p.Y + ty}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}
