package software

// Option configures a Renderer.
type Option func(*options)

type options struct {
	edgeAA bool
	ratio  float32
}

func defaultOptions() options {
	return options{
		edgeAA: true,
		ratio:  1,
	}
}

// WithEdgeAntialias controls whether the canvas emits antialiasing fringes
// for this renderer. Enabled by default.
func WithEdgeAntialias(enabled bool) Option {
	return func(o *options) {
		o.edgeAA = enabled
	}
}

// WithDevicePixelRatio sets device pixels per canvas unit. The target
// image is the view size multiplied by the ratio. Non-positive values are
// ignored.
func WithDevicePixelRatio(ratio float32) Option {
	return func(o *options) {
		if ratio > 0 {
			o.ratio = ratio
		}
	}
}
