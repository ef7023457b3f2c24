package geom

import "github.com/chewxy/math32"

// Extent is a width/height pair.
type Extent struct {
	Width, Height float32
}

// Ext is shorthand for Extent{Width: w, Height: h}.
func Ext(w, h float32) Extent {
	return Extent{Width: w, Height: h}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	XY   Point
	Size Extent
}

// RectXYWH builds a Rect from its corner and size components.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{XY: Point{X: x, Y: y}, Size: Extent{Width: w, Height: h}}
}

// Intersect returns the overlap of r and o. Disjoint rectangles yield a
// zero-sized rectangle.
func (r Rect) Intersect(o Rect) Rect {
	ax, ay, aw, ah := r.XY.X, r.XY.Y, r.Size.Width, r.Size.Height
	bx, by, bw, bh := o.XY.X, o.XY.Y, o.Size.Width, o.Size.Height

	minx := math32.Max(ax, bx)
	miny := math32.Max(ay, by)
	maxx := math32.Min(ax+aw, bx+bw)
	maxy := math32.Min(ay+ah, by+bh)
	return RectXYWH(minx, miny, math32.Max(maxx-minx, 0), math32.Max(maxy-miny, 0))
}

// Grow returns r enlarged by width and height, keeping it centred.
func (r Rect) Grow(width, height float32) Rect {
	return Rect{
		XY:   r.XY.Offset(-width/2, -height/2),
		Size: Extent{Width: r.Size.Width + width, Height: r.Size.Height + height},
	}
}

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XY.X && p.Y >= r.XY.Y &&
		p.X < r.XY.X+r.Size.Width && p.Y < r.XY.Y+r.Size.Height
}

// Bounds is an axis-aligned box given by its min and max corners.
type Bounds struct {
	Min, Max Point
}

// EmptyBounds returns inverted bounds ready to be grown with Add.
func EmptyBounds() Bounds {
	return Bounds{
		Min: Point{X: math32.MaxFloat32, Y: math32.MaxFloat32},
		Max: Point{X: -math32.MaxFloat32, Y: -math32.MaxFloat32},
	}
}

// Add grows b to include p.
func (b *Bounds) Add(p Point) {
	b.Min.X = math32.Min(b.Min.X, p.X)
	b.Min.Y = math32.Min(b.Min.Y, p.Y)
	b.Max.X = math32.Max(b.Max.X, p.X)
	b.Max.Y = math32.Max(b.Max.Y, p.Y)
}

// Width returns Max.X - Min.X.
func (b Bounds) Width() float32 { return b.Max.X - b.Min.X }

// Height returns Max.Y - Min.Y.
func (b Bounds) Height() float32 { return b.Max.Y - b.Min.Y }

// LeftTop returns the min corner.
func (b Bounds) LeftTop() Point { return b.Min }

// RightTop returns (Max.X, Min.Y).
func (b Bounds) RightTop() Point { return Point{X: b.Max.X, Y: b.Min.Y} }

// LeftBottom returns (Min.X, Max.Y).
func (b Bounds) LeftBottom() Point { return Point{X: b.Min.X, Y: b.Max.Y} }

// RightBottom returns the max corner.
func (b Bounds) RightBottom() Point { return b.Max }

// IsEmpty reports whether b encloses no area.
func (b Bounds) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}
