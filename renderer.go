package nvg

import "github.com/gogpu/gputypes"

// TextureType is the pixel layout of a texture.
type TextureType int

// Texture types.
const (
	TextureRGBA TextureType = iota
	TextureAlpha
)

// Format returns the GPU texture format backing the type.
func (t TextureType) Format() gputypes.TextureFormat {
	if t == TextureAlpha {
		return gputypes.TextureFormatR8Unorm
	}
	return gputypes.TextureFormatRGBA8Unorm
}

// BytesPerPixel returns the size of one texel.
func (t TextureType) BytesPerPixel() int {
	if t == TextureAlpha {
		return 1
	}
	return 4
}

// ImageFlags control texture sampling and storage.
type ImageFlags uint32

// Image flags.
const (
	ImageGenerateMipmaps ImageFlags = 1 << iota
	ImageRepeatX
	ImageRepeatY
	ImageFlipY
	ImagePremultiplied
	ImageNearest
)

// Has reports whether all bits of f are set.
func (fl ImageFlags) Has(f ImageFlags) bool { return fl&f == f }

// AddressModes returns the sampler address modes for U and V.
func (fl ImageFlags) AddressModes() (u, v gputypes.AddressMode) {
	u, v = gputypes.AddressModeClampToEdge, gputypes.AddressModeClampToEdge
	if fl.Has(ImageRepeatX) {
		u = gputypes.AddressModeRepeat
	}
	if fl.Has(ImageRepeatY) {
		v = gputypes.AddressModeRepeat
	}
	return u, v
}

// Sampler returns the sampler description for a texture created with fl.
func (fl ImageFlags) Sampler() gputypes.SamplerDescriptor {
	d := gputypes.LinearSamplerDescriptor()
	if fl.Has(ImageNearest) {
		d = gputypes.DefaultSamplerDescriptor()
	}
	d.AddressModeU, d.AddressModeV = fl.AddressModes()
	return d
}

// Scissor is a transformed clip rectangle. Xform maps the rectangle centre
// to canvas space and Extent is its half size. A negative extent disables
// clipping.
type Scissor struct {
	Xform  Transform
	Extent Extent
}

// Enabled reports whether the scissor clips anything.
func (s Scissor) Enabled() bool { return s.Extent.Width >= 0 && s.Extent.Height >= 0 }

func noScissor() Scissor {
	return Scissor{Extent: Extent{Width: -1, Height: -1}}
}

// Renderer receives tessellated geometry from a Canvas and draws it.
// All calls happen on the goroutine driving the Canvas, in call order.
type Renderer interface {
	// EdgeAntialias reports whether the Canvas should emit fringe geometry.
	EdgeAntialias() bool

	// ViewSize returns the drawable size in canvas units.
	ViewSize() (width, height float32)

	// DevicePixelRatio returns device pixels per canvas unit.
	DevicePixelRatio() float32

	CreateTexture(typ TextureType, width, height int, flags ImageFlags, data []byte) (ImageID, error)
	DeleteTexture(img ImageID) error
	UpdateTexture(img ImageID, x, y, width, height int, data []byte) error
	TextureSize(img ImageID) (width, height int, err error)

	Viewport(extent Extent, devicePixelRatio float32) error
	ClearScreen(c Color)
	Flush() error

	// Fill draws paths as a filled shape. Each path's Fill view is a fan
	// and its Stroke view, when present, the antialiasing fringe strip.
	Fill(paint *Paint, composite CompositeState, scissor *Scissor, fringe float32, bounds Bounds, paths []Path) error

	// Stroke draws each path's Stroke view as a triangle strip.
	Stroke(paint *Paint, composite CompositeState, scissor *Scissor, fringe, strokeWidth float32, paths []Path) error

	// Triangles draws a triangle list textured by paint.Image, used for
	// text.
	Triangles(paint *Paint, composite CompositeState, scissor *Scissor, verts []Vertex) error
}

// Canceler is implemented by renderers that can drop the work recorded
// since the last Flush.
type Canceler interface {
	Cancel()
}
