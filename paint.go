package nvg

import "github.com/chewxy/math32"

// Paint describes how a shape is colored: a solid color, a gradient, or an
// image pattern. Gradients are evaluated as a feathered rounded rectangle
// of the given extent and radius in the paint's transform space.
type Paint struct {
	Xform      Transform
	Extent     Extent
	Radius     float32
	Feather    float32
	InnerColor Color
	OuterColor Color
	Image      ImageID
}

// ColorPaint returns a paint filling with a single color.
func ColorPaint(c Color) Paint {
	return Paint{
		Xform:      Identity(),
		Feather:    1,
		InnerColor: c,
		OuterColor: c,
	}
}

// LinearGradient returns a paint ramping from inner at (sx, sy) to outer at
// (ex, ey). Coincident endpoints ramp vertically.
func LinearGradient(sx, sy, ex, ey float32, inner, outer Color) Paint {
	const large = 1e5

	dx := ex - sx
	dy := ey - sy
	d := math32.Sqrt(dx*dx + dy*dy)
	if d > 0.0001 {
		dx /= d
		dy /= d
	} else {
		dx, dy = 0, 1
	}

	return Paint{
		Xform:      Transform{dy, -dx, dx, dy, sx - dx*large, sy - dy*large},
		Extent:     Extent{Width: large, Height: large + d*0.5},
		Feather:    math32.Max(1, d),
		InnerColor: inner,
		OuterColor: outer,
	}
}

// RadialGradient returns a paint ramping from inner at radius inr to outer
// at radius outr around (cx, cy).
func RadialGradient(cx, cy, inr, outr float32, inner, outer Color) Paint {
	r := (inr + outr) * 0.5
	f := outr - inr
	return Paint{
		Xform:      Transform{1, 0, 0, 1, cx, cy},
		Extent:     Extent{Width: r, Height: r},
		Radius:     r,
		Feather:    math32.Max(1, f),
		InnerColor: inner,
		OuterColor: outer,
	}
}

// BoxGradient returns a paint for a feathered rounded rectangle, useful
// for drop shadows and highlights.
func BoxGradient(x, y, w, h, r, f float32, inner, outer Color) Paint {
	return Paint{
		Xform:      Transform{1, 0, 0, 1, x + w*0.5, y + h*0.5},
		Extent:     Extent{Width: w * 0.5, Height: h * 0.5},
		Radius:     r,
		Feather:    math32.Max(1, f),
		InnerColor: inner,
		OuterColor: outer,
	}
}

// ImagePattern returns a paint repeating or stretching img. (cx, cy) is
// the pattern origin, (w, h) the size of one image and angle its rotation.
func ImagePattern(cx, cy, w, h, angle float32, img ImageID, alpha float32) Paint {
	xf := Rotate(angle)
	xf[4], xf[5] = cx, cy
	c := RGBAf(1, 1, 1, alpha)
	return Paint{
		Xform:      xf,
		Extent:     Extent{Width: w, Height: h},
		InnerColor: c,
		OuterColor: c,
		Image:      img,
	}
}

// withAlpha scales both paint colors' alpha by a.
func (p Paint) withAlpha(a float32) Paint {
	p.InnerColor.A *= a
	p.OuterColor.A *= a
	return p
}
