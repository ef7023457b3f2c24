package gpucmd

import "github.com/gogpu/gputypes"

// Option configures a Recorder.
type Option func(*options)

type options struct {
	antialias      bool
	stencilStrokes bool
	ratio          float32
	format         gputypes.TextureFormat
	submit         func(*Frame) error
}

func defaultOptions() options {
	return options{
		antialias: true,
		ratio:     1,
		format:    gputypes.TextureFormatBGRA8Unorm,
	}
}

// WithAntialias controls fringe geometry and the program's edge coverage.
// Enabled by default.
func WithAntialias(enabled bool) Option {
	return func(o *options) {
		o.antialias = enabled
	}
}

// WithStencilStrokes draws strokes in three stencil passes so overlapping
// parts of a translucent stroke are blended once.
func WithStencilStrokes(enabled bool) Option {
	return func(o *options) {
		o.stencilStrokes = enabled
	}
}

// WithDevicePixelRatio sets device pixels per canvas unit. Non-positive
// values are ignored.
func WithDevicePixelRatio(ratio float32) Option {
	return func(o *options) {
		if ratio > 0 {
			o.ratio = ratio
		}
	}
}

// WithColorFormat sets the color target format of pipeline descriptors.
// The default is BGRA8Unorm.
func WithColorFormat(format gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithSubmit sets a function called with every flushed frame. The frame
// is only valid during the call.
func WithSubmit(fn func(*Frame) error) Option {
	return func(o *options) {
		o.submit = fn
	}
}
