package nvg

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestColorPaint(t *testing.T) {
	p := ColorPaint(Red)
	if p.InnerColor != Red || p.OuterColor != Red {
		t.Errorf("colors = %v/%v, want red", p.InnerColor, p.OuterColor)
	}
	if p.Xform != Identity() || p.Feather != 1 || p.Image != 0 {
		t.Errorf("paint = %+v, want identity, feather 1, no image", p)
	}
}

func TestLinearGradient(t *testing.T) {
	p := LinearGradient(0, 0, 0, 100, Black, White)
	const large = 1e5
	want := Transform{1, 0, 0, 1, 0, -large}
	if p.Xform != want {
		t.Errorf("Xform = %v, want %v", p.Xform, want)
	}
	if p.Extent != (Extent{Width: large, Height: large + 50}) {
		t.Errorf("Extent = %+v, want (%v, %v)", p.Extent, large, large+50)
	}
	if p.Feather != 100 {
		t.Errorf("Feather = %v, want 100", p.Feather)
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	p := LinearGradient(5, 5, 5, 5, Black, White)
	if p.Feather != 1 {
		t.Errorf("Feather = %v, want 1", p.Feather)
	}
	if p.Xform[0] != 1 || p.Xform[1] != 0 {
		t.Errorf("direction = (%v, %v), want vertical", p.Xform[0], p.Xform[1])
	}
}

func TestRadialGradient(t *testing.T) {
	p := RadialGradient(10, 20, 5, 15, Red, Blue)
	if p.Xform != Translate(10, 20) {
		t.Errorf("Xform = %v, want translate(10,20)", p.Xform)
	}
	if p.Radius != 10 || p.Extent != (Extent{Width: 10, Height: 10}) || p.Feather != 10 {
		t.Errorf("paint = %+v, want radius 10 extent 10 feather 10", p)
	}
}

func TestBoxGradient(t *testing.T) {
	p := BoxGradient(0, 0, 40, 20, 4, 0.5, Red, Blue)
	if p.Xform != Translate(20, 10) {
		t.Errorf("Xform = %v, want translate(20,10)", p.Xform)
	}
	if p.Extent != (Extent{Width: 20, Height: 10}) || p.Radius != 4 {
		t.Errorf("paint = %+v, want extent (20,10) radius 4", p)
	}
	if p.Feather != 1 {
		t.Errorf("Feather = %v, want clamped to 1", p.Feather)
	}
}

func TestImagePattern(t *testing.T) {
	p := ImagePattern(3, 4, 32, 16, math32.Pi/2, 7, 0.5)
	if p.Image != 7 || p.Extent != (Extent{Width: 32, Height: 16}) {
		t.Errorf("paint = %+v, want image 7 extent 32x16", p)
	}
	if p.Xform[4] != 3 || p.Xform[5] != 4 {
		t.Errorf("origin = (%v, %v), want (3, 4)", p.Xform[4], p.Xform[5])
	}
	if !approx(p.Xform[1], 1) {
		t.Errorf("rotation = %v, want quarter turn", p.Xform)
	}
	if p.InnerColor != RGBAf(1, 1, 1, 0.5) {
		t.Errorf("InnerColor = %v, want white at 0.5", p.InnerColor)
	}
}
