package nvg

import "testing"

func TestDefaultOptions(t *testing.T) {
	c := New(nil)
	if c.maxStates != DefaultMaxStates {
		t.Errorf("maxStates = %d, want %d", c.maxStates, DefaultMaxStates)
	}
	if c.Fonts() != nil {
		t.Errorf("Fonts() = %v, want nil", c.Fonts())
	}
	if c.DevicePixelRatio() != 1 {
		t.Errorf("DevicePixelRatio() = %v, want 1", c.DevicePixelRatio())
	}
}

func TestWithMaxStates(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{8, 8},
		{1, 1},
		{0, 1},
		{-5, 1},
	}
	for _, tt := range tests {
		c := New(nil, WithMaxStates(tt.n))
		if c.maxStates != tt.want {
			t.Errorf("WithMaxStates(%d): maxStates = %d, want %d", tt.n, c.maxStates, tt.want)
		}
	}
}

func TestWithFonts(t *testing.T) {
	fs := &fakeFonts{}
	c := New(nil, WithFonts(fs))
	if c.Fonts() != Fonts(fs) {
		t.Errorf("Fonts() = %v, want the configured font system", c.Fonts())
	}
}
