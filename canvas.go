package nvg

import (
	"github.com/gogpu/nvg/internal/tess"
)

// state is one entry of the Save/Restore stack. It is copied by value.
type state struct {
	composite      CompositeState
	shapeAntialias bool
	fill           Paint
	stroke         Paint
	strokeWidth    float32
	miterLimit     float32
	lineJoin       LineJoin
	lineCap        LineCap
	alpha          float32
	xform          Transform
	scissor        Scissor
	fontSize       float32
	letterSpacing  float32
	lineHeight     float32
	textAlign      Align
	fontID         FontID
}

func defaultState() state {
	return state{
		composite:      Composite(CompositeSrcOver),
		shapeAntialias: true,
		fill:           ColorPaint(White),
		stroke:         ColorPaint(Black),
		strokeWidth:    1,
		miterLimit:     10,
		lineJoin:       LineJoinMiter,
		lineCap:        LineCapButt,
		alpha:          1,
		xform:          Identity(),
		scissor:        noScissor(),
		fontSize:       16,
		lineHeight:     1,
		textAlign:      AlignLeft | AlignBaseline,
	}
}

// FrameStats counts the work submitted during the current frame.
type FrameStats struct {
	DrawCalls       int
	FillTriangles   int
	StrokeTriangles int
	TextTriangles   int
}

// Canvas turns drawing calls into triangle geometry and hands it to a
// Renderer. A Canvas is not safe for concurrent use.
type Canvas struct {
	renderer Renderer
	fonts    Fonts

	commands     []tess.Command
	lastPosition Point
	cache        tess.PathCache

	states    []state
	maxStates int

	tessTol          float32
	distTol          float32
	fringeWidth      float32
	devicePixelRatio float32

	layout    []LayoutChar
	textVerts []Vertex

	stats FrameStats
}

// New creates a Canvas drawing through r. r may be nil and attached later
// with AttachRenderer; any call that needs it panics until then.
func New(r Renderer, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		renderer:  r,
		fonts:     o.fonts,
		maxStates: o.maxStates,
		states:    []state{defaultState()},
	}
	c.setDevicePixelRatio(1)
	return c
}

// AttachRenderer replaces the renderer.
func (c *Canvas) AttachRenderer(r Renderer) {
	c.renderer = r
}

// DetachRenderer removes and returns the renderer.
func (c *Canvas) DetachRenderer() Renderer {
	r := c.mustRenderer()
	c.renderer = nil
	return r
}

// Fonts returns the attached font system, or nil.
func (c *Canvas) Fonts() Fonts {
	return c.fonts
}

func (c *Canvas) mustRenderer() Renderer {
	if c.renderer == nil {
		panic("nvg: no renderer attached to canvas")
	}
	return c.renderer
}

func (c *Canvas) setDevicePixelRatio(ratio float32) {
	c.tessTol = 0.25 / ratio
	c.distTol = 0.01 / ratio
	c.fringeWidth = 1 / ratio
	c.devicePixelRatio = ratio
}

// DevicePixelRatio returns the ratio of the current frame.
func (c *Canvas) DevicePixelRatio() float32 {
	return c.devicePixelRatio
}

// BeginFrame starts a frame sized to the renderer's view. When clear is
// non-nil the screen is cleared to it. The state stack and statistics are
// reset.
func (c *Canvas) BeginFrame(clear *Color) error {
	r := c.mustRenderer()

	w, h := r.ViewSize()
	ratio := r.DevicePixelRatio()
	if ratio <= 0 {
		ratio = 1
	}
	if err := r.Viewport(Extent{Width: w, Height: h}, ratio); err != nil {
		return err
	}
	if clear != nil {
		r.ClearScreen(*clear)
	}

	c.setDevicePixelRatio(ratio)
	c.states = append(c.states[:0], defaultState())
	c.stats = FrameStats{}

	Logger().Debug("nvg: begin frame", "width", w, "height", h, "ratio", ratio)
	return nil
}

// EndFrame flushes the frame to the renderer.
func (c *Canvas) EndFrame() error {
	r := c.mustRenderer()
	Logger().Debug("nvg: end frame",
		"drawCalls", c.stats.DrawCalls,
		"fillTriangles", c.stats.FillTriangles,
		"strokeTriangles", c.stats.StrokeTriangles,
		"textTriangles", c.stats.TextTriangles)
	return r.Flush()
}

// CancelFrame drops the frame's recorded work if the renderer supports it.
func (c *Canvas) CancelFrame() {
	if cr, ok := c.mustRenderer().(Canceler); ok {
		cr.Cancel()
	}
}

// Stats returns the counters of the current frame.
func (c *Canvas) Stats() FrameStats {
	return c.stats
}

func (c *Canvas) state() *state {
	return &c.states[len(c.states)-1]
}

// Save pushes a copy of the current state. Saves beyond the configured
// depth are ignored.
func (c *Canvas) Save() {
	if len(c.states) >= c.maxStates {
		return
	}
	c.states = append(c.states, *c.state())
}

// Restore pops the state pushed by the matching Save. The last state is
// never popped.
func (c *Canvas) Restore() {
	if len(c.states) <= 1 {
		return
	}
	c.states = c.states[:len(c.states)-1]
}

// Reset replaces the current state with the defaults.
func (c *Canvas) Reset() {
	*c.state() = defaultState()
}

// ShapeAntiAlias toggles fringe antialiasing for fills and strokes.
func (c *Canvas) ShapeAntiAlias(enabled bool) { c.state().shapeAntialias = enabled }

// StrokeWidth sets the stroke width in local units.
func (c *Canvas) StrokeWidth(width float32) { c.state().strokeWidth = width }

// MiterLimit sets the miter length to width ratio past which joins bevel.
func (c *Canvas) MiterLimit(limit float32) { c.state().miterLimit = limit }

// LineCap sets how open stroke ends are drawn.
func (c *Canvas) LineCap(lineCap LineCap) { c.state().lineCap = lineCap }

// LineJoin sets how stroke corners are drawn.
func (c *Canvas) LineJoin(join LineJoin) { c.state().lineJoin = join }

// GlobalAlpha multiplies the alpha of everything drawn afterwards.
func (c *Canvas) GlobalAlpha(alpha float32) { c.state().alpha = alpha }

// Transform applies t before the current transform.
func (c *Canvas) Transform(t Transform) {
	s := c.state()
	s.xform = t.Mul(s.xform)
}

// ResetTransform sets the current transform to identity.
func (c *Canvas) ResetTransform() { c.state().xform = Identity() }

// Translate moves the origin.
func (c *Canvas) Translate(tx, ty float32) { c.Transform(Translate(tx, ty)) }

// Rotate rotates by angle radians.
func (c *Canvas) Rotate(angle float32) { c.Transform(Rotate(angle)) }

// SkewX skews along x by angle radians.
func (c *Canvas) SkewX(angle float32) { c.Transform(SkewX(angle)) }

// SkewY skews along y by angle radians.
func (c *Canvas) SkewY(angle float32) { c.Transform(SkewY(angle)) }

// Scale scales the axes.
func (c *Canvas) Scale(sx, sy float32) { c.Transform(Scale(sx, sy)) }

// CurrentTransform returns the current transform.
func (c *Canvas) CurrentTransform() Transform { return c.state().xform }

// FillPaint sets the fill paint. Its transform is combined with the
// current transform.
func (c *Canvas) FillPaint(p Paint) {
	s := c.state()
	p.Xform = p.Xform.Mul(s.xform)
	s.fill = p
}

// StrokePaint sets the stroke paint. Its transform is combined with the
// current transform.
func (c *Canvas) StrokePaint(p Paint) {
	s := c.state()
	p.Xform = p.Xform.Mul(s.xform)
	s.stroke = p
}

// FillColor sets a solid fill color.
func (c *Canvas) FillColor(col Color) { c.FillPaint(ColorPaint(col)) }

// StrokeColor sets a solid stroke color.
func (c *Canvas) StrokeColor(col Color) { c.StrokePaint(ColorPaint(col)) }

// GlobalCompositeOperation sets a Porter-Duff composite operation.
func (c *Canvas) GlobalCompositeOperation(op CompositeOperation) {
	c.state().composite = Composite(op)
}

// GlobalCompositeBlendFunc sets raw blend factors for color and alpha.
func (c *Canvas) GlobalCompositeBlendFunc(src, dst BlendFactor) {
	c.state().composite = BlendFunc(src, dst)
}

// GlobalCompositeBlendFuncSeparate sets raw blend factors separately for
// color and alpha.
func (c *Canvas) GlobalCompositeBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor) {
	c.state().composite = BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}
