package fonts

// Option configures a Fonts.
type Option func(*options)

type options struct {
	atlasWidth  int
	atlasHeight int
}

func defaultOptions() options {
	return options{
		atlasWidth:  DefaultAtlasSize,
		atlasHeight: DefaultAtlasSize,
	}
}

// WithAtlasSize sets the glyph atlas texture size. Sizes below
// MinAtlasSize are raised to it.
func WithAtlasSize(width, height int) Option {
	return func(o *options) {
		o.atlasWidth = max(width, MinAtlasSize)
		o.atlasHeight = max(height, MinAtlasSize)
	}
}
