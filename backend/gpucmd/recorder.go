package gpucmd

import (
	"fmt"

	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/internal/shader"
	"github.com/gogpu/nvg/internal/texture"
)

// Recorder is an nvg.Renderer that records frames for a GPU executor.
type Recorder struct {
	opts          options
	width, height float32

	textures *texture.Store
	frame    Frame
	last     Frame
}

var (
	_ nvg.Renderer = (*Recorder)(nil)
	_ nvg.Canceler = (*Recorder)(nil)
)

// New creates a recorder with a view of width x height canvas units.
func New(width, height int, opts ...Option) *Recorder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Recorder{
		opts:     o,
		width:    float32(width),
		height:   float32(height),
		textures: texture.NewStore(),
	}
}

// Frame returns the frame produced by the last Flush.
func (r *Recorder) Frame() *Frame {
	return &r.last
}

// Pending returns the frame being recorded.
func (r *Recorder) Pending() *Frame {
	return &r.frame
}

// Pipeline describes p for the recorder's color format.
func (r *Recorder) Pipeline(p Pipeline, blend nvg.CompositeState) PipelineDescriptor {
	return p.Descriptor(r.opts.format, blend.BlendState())
}

// EdgeAntialias implements nvg.Renderer.
func (r *Recorder) EdgeAntialias() bool { return r.opts.antialias }

// ViewSize implements nvg.Renderer.
func (r *Recorder) ViewSize() (float32, float32) { return r.width, r.height }

// DevicePixelRatio implements nvg.Renderer.
func (r *Recorder) DevicePixelRatio() float32 { return r.opts.ratio }

// Resize changes the view size used by following frames.
func (r *Recorder) Resize(width, height int) {
	r.width, r.height = float32(width), float32(height)
}

// CreateTexture implements nvg.Renderer.
func (r *Recorder) CreateTexture(typ nvg.TextureType, width, height int, flags nvg.ImageFlags, data []byte) (nvg.ImageID, error) {
	id, t, err := r.textures.Create(typ, width, height, flags, data)
	if err != nil {
		return 0, err
	}
	op := TextureOp{
		Kind:    TextureCreate,
		Image:   id,
		Format:  typ.Format(),
		Sampler: t.Sampler(),
		Width:   width,
		Height:  height,
	}
	if data != nil {
		op.Data = append([]byte(nil), t.Pix...)
	}
	r.frame.Textures = append(r.frame.Textures, op)
	nvg.Logger().Debug("gpucmd: texture created", "id", id, "width", width, "height", height, "format", op.Format)
	return id, nil
}

// DeleteTexture implements nvg.Renderer.
func (r *Recorder) DeleteTexture(img nvg.ImageID) error {
	if err := r.textures.Delete(img); err != nil {
		return err
	}
	r.frame.Textures = append(r.frame.Textures, TextureOp{Kind: TextureDelete, Image: img})
	nvg.Logger().Debug("gpucmd: texture deleted", "id", img)
	return nil
}

// UpdateTexture implements nvg.Renderer.
func (r *Recorder) UpdateTexture(img nvg.ImageID, x, y, width, height int, data []byte) error {
	t, err := r.textures.Update(img, x, y, width, height, data)
	if err != nil {
		return err
	}
	n := width * height * t.Type.BytesPerPixel()
	r.frame.Textures = append(r.frame.Textures, TextureOp{
		Kind:   TextureUpdate,
		Image:  img,
		Format: t.Type.Format(),
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Data:   append([]byte(nil), data[:n]...),
	})
	return nil
}

// TextureSize implements nvg.Renderer.
func (r *Recorder) TextureSize(img nvg.ImageID) (int, int, error) {
	return r.textures.Size(img)
}

// Viewport implements nvg.Renderer.
func (r *Recorder) Viewport(extent nvg.Extent, ratio float32) error {
	r.frame.ViewSize = extent
	r.frame.EdgeAA = r.opts.antialias
	if ratio > 0 {
		r.opts.ratio = ratio
	}
	return nil
}

// ClearScreen implements nvg.Renderer.
func (r *Recorder) ClearScreen(c nvg.Color) {
	r.frame.Clear = &c
}

// Flush implements nvg.Renderer. The recorded frame becomes Frame and,
// unless it is empty, is handed to the submit function.
func (r *Recorder) Flush() error {
	r.last = r.frame
	r.frame = Frame{ViewSize: r.last.ViewSize, EdgeAA: r.last.EdgeAA}

	nvg.Logger().Debug("gpucmd: frame flushed",
		"calls", len(r.last.Calls),
		"draws", len(r.last.Draws),
		"vertices", len(r.last.Vertices),
		"textures", len(r.last.Textures))

	if r.opts.submit == nil || r.last.Empty() {
		return nil
	}
	if err := r.opts.submit(&r.last); err != nil {
		return fmt.Errorf("gpucmd: submit frame: %w", err)
	}
	return nil
}

// Cancel implements nvg.Canceler. Recorded geometry is dropped; texture
// operations and the clear color are kept since they already took effect.
func (r *Recorder) Cancel() {
	r.frame.resetGeometry()
}

// lookup returns the shader description of the paint's texture and the
// image to bind.
func (r *Recorder) lookup(paint *nvg.Paint) (*shader.Texture, nvg.ImageID) {
	t := r.textures.Lookup(paint.Image)
	if t == nil {
		if paint.Image != 0 {
			nvg.Logger().Warn("gpucmd: unknown texture", "id", paint.Image)
		}
		return nil, 0
	}
	return &shader.Texture{Type: t.Type, Flags: t.Flags}, paint.Image
}

// uniform appends a fragment uniform block and returns its offset.
func (r *Recorder) uniform(u shader.Uniforms) uint32 {
	off := len(r.frame.Uniforms)
	r.frame.Uniforms = u.AppendBytes(r.frame.Uniforms)
	for len(r.frame.Uniforms)%UniformStride != 0 {
		r.frame.Uniforms = append(r.frame.Uniforms, 0)
	}
	return uint32(off)
}

// vertices appends vs and returns the index of the first one.
func (r *Recorder) vertices(vs []nvg.Vertex) uint32 {
	base := uint32(len(r.frame.Vertices))
	r.frame.Vertices = append(r.frame.Vertices, vs...)
	return base
}

// recording tracks the draws of one call.
type recording struct {
	r     *Recorder
	call  Call
	blend nvg.CompositeState
	first int
}

func (r *Recorder) begin(kind CallKind, img nvg.ImageID, cs nvg.CompositeState) *recording {
	return &recording{
		r:     r,
		call:  Call{Kind: kind, Image: img, FirstDraw: len(r.frame.Draws)},
		blend: cs,
		first: len(r.frame.Indices),
	}
}

// draw closes the indices appended since the previous draw into a Draw.
// Empty draws are dropped.
func (rc *recording) draw(p Pipeline, uniform uint32) {
	f := &rc.r.frame
	n := len(f.Indices) - rc.first
	if n == 0 {
		return
	}
	f.Draws = append(f.Draws, Draw{
		Pipeline:   p,
		Blend:      rc.blend.BlendState(),
		Image:      rc.call.Image,
		Uniform:    uniform,
		FirstIndex: uint32(rc.first),
		IndexCount: uint32(n),
	})
	rc.first = len(f.Indices)
}

func (rc *recording) end() {
	f := &rc.r.frame
	rc.call.DrawCount = len(f.Draws) - rc.call.FirstDraw
	if rc.call.DrawCount > 0 {
		f.Calls = append(f.Calls, rc.call)
	}
}

func (r *Recorder) fan(vs []nvg.Vertex) {
	base := r.vertices(vs)
	r.frame.Indices = appendFan(r.frame.Indices, base, len(vs))
}

func (r *Recorder) strip(vs []nvg.Vertex) {
	base := r.vertices(vs)
	r.frame.Indices = appendStrip(r.frame.Indices, base, len(vs))
}

// Fill implements nvg.Renderer. A single convex path is one draw.
// Otherwise the fans wind the stencil buffer, the fringes are drawn
// outside it and a bounds quad covers the inside.
func (r *Recorder) Fill(paint *nvg.Paint, cs nvg.CompositeState, scissor *nvg.Scissor, fringe float32, bounds nvg.Bounds, paths []nvg.Path) error {
	desc, img := r.lookup(paint)
	aa := r.opts.antialias

	if len(paths) == 1 && paths[0].Convex() {
		rc := r.begin(CallConvexFill, img, cs)
		u := r.uniform(shader.ConvertPaint(paint, scissor, fringe, fringe, -1, desc))
		r.fan(paths[0].Fill())
		if aa {
			r.strip(paths[0].Stroke())
		}
		rc.draw(PipelineDraw, u)
		rc.end()
		return nil
	}

	rc := r.begin(CallFill, img, cs)
	stencil := r.uniform(shader.StencilUniforms())
	u := r.uniform(shader.ConvertPaint(paint, scissor, fringe, fringe, -1, desc))
	for i := range paths {
		r.fan(paths[i].Fill())
	}
	rc.draw(PipelineFillStencil, stencil)
	if aa {
		for i := range paths {
			r.strip(paths[i].Stroke())
		}
		rc.draw(PipelineFillFringe, u)
	}
	r.strip([]nvg.Vertex{
		{X: bounds.Max.X, Y: bounds.Max.Y, U: 0.5, V: 1},
		{X: bounds.Max.X, Y: bounds.Min.Y, U: 0.5, V: 1},
		{X: bounds.Min.X, Y: bounds.Max.Y, U: 0.5, V: 1},
		{X: bounds.Min.X, Y: bounds.Min.Y, U: 0.5, V: 1},
	})
	rc.draw(PipelineFillCover, u)
	rc.end()
	return nil
}

// Stroke implements nvg.Renderer. With stencil strokes the interior is
// drawn once, then the fringe, then the stencil is cleared.
func (r *Recorder) Stroke(paint *nvg.Paint, cs nvg.CompositeState, scissor *nvg.Scissor, fringe, strokeWidth float32, paths []nvg.Path) error {
	desc, img := r.lookup(paint)
	rc := r.begin(CallStroke, img, cs)
	u := r.uniform(shader.ConvertPaint(paint, scissor, strokeWidth, fringe, -1, desc))

	if !r.opts.stencilStrokes {
		for i := range paths {
			r.strip(paths[i].Stroke())
		}
		rc.draw(PipelineDraw, u)
		rc.end()
		return nil
	}

	thr := r.uniform(shader.ConvertPaint(paint, scissor, strokeWidth, fringe, shader.StrokeThreshold, desc))
	base := uint32(len(r.frame.Vertices))
	var counts []int
	for i := range paths {
		vs := paths[i].Stroke()
		r.strip(vs)
		counts = append(counts, len(vs))
	}
	rc.draw(PipelineStrokeBase, thr)
	// The fringe and clear passes reuse the vertices of the first pass.
	for _, pass := range []Pipeline{PipelineStrokeFringe, PipelineStrokeClear} {
		b := base
		for _, n := range counts {
			r.frame.Indices = appendStrip(r.frame.Indices, b, n)
			b += uint32(n)
		}
		rc.draw(pass, u)
	}
	rc.end()
	return nil
}

// Triangles implements nvg.Renderer.
func (r *Recorder) Triangles(paint *nvg.Paint, cs nvg.CompositeState, scissor *nvg.Scissor, verts []nvg.Vertex) error {
	desc, img := r.lookup(paint)
	rc := r.begin(CallTriangles, img, cs)
	u := r.uniform(shader.TriangleUniforms(paint, scissor, desc))
	base := r.vertices(verts)
	r.frame.Indices = appendList(r.frame.Indices, base, len(verts))
	rc.draw(PipelineDraw, u)
	rc.end()
	return nil
}
