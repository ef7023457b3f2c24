package fonts

import "fmt"

// Default atlas settings.
const (
	// DefaultAtlasSize is the default atlas dimension (1024x1024).
	DefaultAtlasSize = 1024

	// MinAtlasSize is the minimum atlas dimension (64x64).
	MinAtlasSize = 64

	// glyphPadding is the empty border kept around every glyph.
	glyphPadding = 1
)

// Region is a rectangle allocated in the atlas.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsValid returns true if the region has valid dimensions.
func (r Region) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Overlaps reports whether r and o share any pixel.
func (r Region) Overlaps(o Region) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// String returns a string representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// shelf is one horizontal strip of the atlas.
type shelf struct {
	y      int // Top Y coordinate of this shelf
	height int // Height of this shelf (tallest item so far)
	nextX  int // Next available X position on this shelf
}

// Atlas packs glyph rectangles into a fixed-size area using shelves:
// a rectangle goes on the first shelf with room for it, or on a new shelf
// below the last one.
type Atlas struct {
	width   int
	height  int
	padding int

	shelves []shelf

	allocCount int
	usedArea   int
}

// NewAtlas creates an empty atlas of the given size.
func NewAtlas(width, height, padding int) *Atlas {
	return &Atlas{
		width:   max(width, MinAtlasSize),
		height:  max(height, MinAtlasSize),
		padding: max(padding, 0),
		shelves: make([]shelf, 0, 16),
	}
}

// Size returns the atlas dimensions.
func (a *Atlas) Size() (width, height int) {
	return a.width, a.height
}

// Allocate finds space for a rectangle of the given size.
// Returns an invalid region if the rectangle cannot be allocated.
func (a *Atlas) Allocate(width, height int) Region {
	if width <= 0 || height <= 0 {
		return Region{}
	}

	pw := width + a.padding
	ph := height + a.padding
	if pw > a.width || ph > a.height {
		return Region{}
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.nextX+pw > a.width {
			continue
		}
		// A shelf with items cannot grow taller.
		if ph > s.height && s.nextX > 0 {
			continue
		}
		r := Region{X: s.nextX, Y: s.y, Width: width, Height: height}
		s.nextX += pw
		s.height = max(s.height, ph)
		a.allocCount++
		a.usedArea += width * height
		return r
	}

	y := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		y = last.y + last.height
	}
	if y+ph > a.height {
		return Region{}
	}
	a.shelves = append(a.shelves, shelf{y: y, height: ph, nextX: pw})
	a.allocCount++
	a.usedArea += width * height
	return Region{X: 0, Y: y, Width: width, Height: height}
}

// Reset clears all allocations, making the entire area available again.
func (a *Atlas) Reset() {
	a.shelves = a.shelves[:0]
	a.allocCount = 0
	a.usedArea = 0
}

// Utilization returns the fraction of area used (0.0 to 1.0).
func (a *Atlas) Utilization() float64 {
	return float64(a.usedArea) / float64(a.width*a.height)
}

// AllocCount returns the number of successful allocations.
func (a *Atlas) AllocCount() int {
	return a.allocCount
}
