package software

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/internal/shader"
	"github.com/gogpu/nvg/internal/texture"
)

// Renderer draws canvas geometry into an RGBA image.
type Renderer struct {
	width, height float32
	ratio         float32
	edgeAA        bool

	dst      *image.RGBA
	mask     *image.Alpha
	z        vector.Rasterizer
	textures *texture.Store
}

var _ nvg.Renderer = (*Renderer)(nil)

// New creates a renderer with a view of width x height canvas units. The
// target image is scaled by the device pixel ratio and starts transparent.
func New(width, height int, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	dw := int(math32.Ceil(float32(width) * o.ratio))
	dh := int(math32.Ceil(float32(height) * o.ratio))
	rect := image.Rect(0, 0, max(dw, 0), max(dh, 0))
	return &Renderer{
		width:    float32(width),
		height:   float32(height),
		ratio:    o.ratio,
		edgeAA:   o.edgeAA,
		dst:      image.NewRGBA(rect),
		mask:     image.NewAlpha(rect),
		textures: texture.NewStore(),
	}
}

// Image returns the target image. Its pixels are premultiplied.
func (r *Renderer) Image() *image.RGBA {
	return r.dst
}

// SavePNG writes the target image to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("software: create %s: %w", path, err)
	}
	if err := png.Encode(f, r.dst); err != nil {
		f.Close()
		return fmt.Errorf("software: encode png: %w", err)
	}
	return f.Close()
}

// EdgeAntialias implements nvg.Renderer.
func (r *Renderer) EdgeAntialias() bool { return r.edgeAA }

// ViewSize implements nvg.Renderer.
func (r *Renderer) ViewSize() (float32, float32) { return r.width, r.height }

// DevicePixelRatio implements nvg.Renderer.
func (r *Renderer) DevicePixelRatio() float32 { return r.ratio }

// CreateTexture implements nvg.Renderer.
func (r *Renderer) CreateTexture(typ nvg.TextureType, width, height int, flags nvg.ImageFlags, data []byte) (nvg.ImageID, error) {
	id, _, err := r.textures.Create(typ, width, height, flags, data)
	if err != nil {
		return 0, err
	}
	nvg.Logger().Debug("software: texture created", "id", id, "width", width, "height", height, "format", typ.Format())
	return id, nil
}

// DeleteTexture implements nvg.Renderer.
func (r *Renderer) DeleteTexture(img nvg.ImageID) error {
	return r.textures.Delete(img)
}

// UpdateTexture implements nvg.Renderer.
func (r *Renderer) UpdateTexture(img nvg.ImageID, x, y, width, height int, data []byte) error {
	_, err := r.textures.Update(img, x, y, width, height, data)
	return err
}

// TextureSize implements nvg.Renderer.
func (r *Renderer) TextureSize(img nvg.ImageID) (int, int, error) {
	return r.textures.Size(img)
}

// Viewport implements nvg.Renderer. The target keeps the size it was
// created with.
func (r *Renderer) Viewport(extent nvg.Extent, ratio float32) error {
	if extent.Width != r.width || extent.Height != r.height || ratio != r.ratio {
		nvg.Logger().Debug("software: viewport differs from target",
			"width", extent.Width, "height", extent.Height, "ratio", ratio)
	}
	return nil
}

// ClearScreen implements nvg.Renderer.
func (r *Renderer) ClearScreen(c nvg.Color) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Flush implements nvg.Renderer. Everything has been drawn already.
func (r *Renderer) Flush() error {
	return nil
}

// program binds uniforms and a texture to the target for one call.
type program struct {
	r         *Renderer
	u         shader.Uniforms
	tex       *texture.Texture
	composite nvg.CompositeState
}

func (r *Renderer) program(u shader.Uniforms, tex *texture.Texture, cs nvg.CompositeState) *program {
	return &program{r: r, u: u, tex: tex, composite: cs}
}

func (p *program) shade(x, y int, tu, tv float32) {
	// A missing texture reaches Eval as a nil Sampler.
	var s shader.Sampler
	if p.tex != nil {
		s = p.tex
	}
	cx := (float32(x) + 0.5) / p.r.ratio
	cy := (float32(y) + 0.5) / p.r.ratio
	c, ok := p.u.Eval(cx, cy, tu, tv, p.r.edgeAA, s)
	if !ok {
		return
	}
	blendPixel(p.r.dst.Pix, p.r.dst.PixOffset(x, y), p.composite, c)
}

// lookup returns the texture bound by paint and its shader description.
func (r *Renderer) lookup(paint *nvg.Paint) (*texture.Texture, *shader.Texture) {
	t := r.textures.Lookup(paint.Image)
	if t == nil {
		if paint.Image != 0 {
			nvg.Logger().Warn("software: unknown texture", "id", paint.Image)
		}
		return nil, nil
	}
	return t, &shader.Texture{Type: t.Type, Flags: t.Flags}
}

func convex(paths []nvg.Path) bool {
	return len(paths) == 1 && paths[0].Convex()
}

// Fill implements nvg.Renderer. A single convex path is drawn directly.
// Otherwise the fill polygons are stenciled, the fringes drawn outside the
// stencil and the bounds covered inside it.
func (r *Renderer) Fill(paint *nvg.Paint, cs nvg.CompositeState, scissor *nvg.Scissor, fringe float32, bounds nvg.Bounds, paths []nvg.Path) error {
	tex, desc := r.lookup(paint)
	p := r.program(shader.ConvertPaint(paint, scissor, fringe, fringe, -1, desc), tex, cs)

	if convex(paths) {
		r.fan(paths[0].Fill(), p.shade)
		if r.edgeAA {
			r.strip(paths[0].Stroke(), p.shade)
		}
		return nil
	}

	r.stencil(paths)
	if r.edgeAA {
		outside := func(x, y int, tu, tv float32) {
			if !r.inside(x, y) {
				p.shade(x, y, tu, tv)
			}
		}
		for i := range paths {
			r.strip(paths[i].Stroke(), outside)
		}
	}

	inside := func(x, y int, tu, tv float32) {
		if r.inside(x, y) {
			p.shade(x, y, tu, tv)
		}
	}
	quad := []nvg.Vertex{
		{X: bounds.Max.X, Y: bounds.Max.Y, U: 0.5, V: 1},
		{X: bounds.Max.X, Y: bounds.Min.Y, U: 0.5, V: 1},
		{X: bounds.Min.X, Y: bounds.Max.Y, U: 0.5, V: 1},
		{X: bounds.Min.X, Y: bounds.Min.Y, U: 0.5, V: 1},
	}
	r.strip(quad, inside)
	return nil
}

// Stroke implements nvg.Renderer.
func (r *Renderer) Stroke(paint *nvg.Paint, cs nvg.CompositeState, scissor *nvg.Scissor, fringe, strokeWidth float32, paths []nvg.Path) error {
	tex, desc := r.lookup(paint)
	p := r.program(shader.ConvertPaint(paint, scissor, strokeWidth, fringe, -1, desc), tex, cs)
	for i := range paths {
		r.strip(paths[i].Stroke(), p.shade)
	}
	return nil
}

// Triangles implements nvg.Renderer.
func (r *Renderer) Triangles(paint *nvg.Paint, cs nvg.CompositeState, scissor *nvg.Scissor, verts []nvg.Vertex) error {
	tex, desc := r.lookup(paint)
	p := r.program(shader.TriangleUniforms(paint, scissor, desc), tex, cs)
	r.triangles(verts, p.shade)
	return nil
}
