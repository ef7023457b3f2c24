package geom

import "github.com/chewxy/math32"

// Transform is a 2x3 affine matrix stored as [a b c d e f].
type Transform [6]float32

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float32) Transform {
	return Transform{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale by (sx, sy).
func Scale(sx, sy float32) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation by angle radians.
func Rotate(angle float32) Transform {
	cs := math32.Cos(angle)
	sn := math32.Sin(angle)
	return Transform{cs, sn, -sn, cs, 0, 0}
}

// SkewX returns a horizontal skew by angle radians.
func SkewX(angle float32) Transform {
	return Transform{1, 0, math32.Tan(angle), 1, 0, 0}
}

// SkewY returns a vertical skew by angle radians.
func SkewY(angle float32) Transform {
	return Transform{1, math32.Tan(angle), 0, 1, 0, 0}
}

// Mul returns the transform that applies t first and then s.
func (t Transform) Mul(s Transform) Transform {
	var r Transform
	r[0] = t[0]*s[0] + t[1]*s[2]
	r[2] = t[2]*s[0] + t[3]*s[2]
	r[4] = t[4]*s[0] + t[5]*s[2] + s[4]
	r[1] = t[0]*s[1] + t[1]*s[3]
	r[3] = t[2]*s[1] + t[3]*s[3]
	r[5] = t[4]*s[1] + t[5]*s[3] + s[5]
	return r
}

// PreMultiply returns the transform that applies s first and then t.
func (t Transform) PreMultiply(s Transform) Transform {
	return s.Mul(t)
}

// Inverse returns the inverse of t. Near-singular matrices (|det| < 1e-6)
// invert to the identity.
func (t Transform) Inverse() Transform {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-6 && det < 1e-6 {
		return Identity()
	}
	invdet := 1 / det
	return Transform{
		t[3] * invdet,
		-t[1] * invdet,
		-t[2] * invdet,
		t[0] * invdet,
		(t[2]*t[5] - t[3]*t[4]) * invdet,
		(t[1]*t[4] - t[0]*t[5]) * invdet,
	}
}

// TransformPoint maps p through t.
func (t Transform) TransformPoint(p Point) Point {
	return Point{
		X: p.X*t[0] + p.Y*t[2] + t[4],
		Y: p.X*t[1] + p.Y*t[3] + t[5],
	}
}

// AverageScale returns the mean of the x and y axis scale factors.
func (t Transform) AverageScale() float32 {
	sx := math32.Sqrt(t[0]*t[0] + t[2]*t[2])
	sy := math32.Sqrt(t[1]*t[1] + t[3]*t[3])
	return (sx + sy) * 0.5
}

// FontScale returns AverageScale rounded up to the next multiple of 0.01,
// which keeps glyph rasterization sizes stable under small scale jitter.
func (t Transform) FontScale() float32 {
	const d = 0.01
	return math32.Ceil(t.AverageScale()/d) * d
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}
