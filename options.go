package nvg

// DefaultMaxStates is the default depth limit of the Save stack.
const DefaultMaxStates = 32

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	fs := fonts.New()
//	c := nvg.New(renderer, nvg.WithFonts(fs), nvg.WithMaxStates(64))
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	fonts     Fonts
	maxStates int
}

func defaultOptions() canvasOptions {
	return canvasOptions{
		maxStates: DefaultMaxStates,
	}
}

// WithFonts attaches a font system. Without one, text calls fail with a
// font error.
func WithFonts(f Fonts) CanvasOption {
	return func(o *canvasOptions) {
		o.fonts = f
	}
}

// WithMaxStates sets how deep Save may nest. Saves beyond the limit are
// ignored. Values below 1 are treated as 1.
func WithMaxStates(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.maxStates = max(1, n)
	}
}
