package nvg

import "fmt"

type fakeTexture struct {
	typ    TextureType
	w, h   int
	flags  ImageFlags
	data   []byte
	update int
}

type fakeFill struct {
	paint     Paint
	composite CompositeState
	scissor   Scissor
	fringe    float32
	bounds    Bounds
	counts    []int
	fills     [][]Vertex
	fringes   [][]Vertex
}

type fakeStroke struct {
	paint   Paint
	width   float32
	counts  []int
	strokes [][]Vertex
}

type fakeTriangles struct {
	paint Paint
	verts []Vertex
}

// fakeRenderer records every call and copies the geometry out of the
// path cache arena.
type fakeRenderer struct {
	aa       bool
	w, h     float32
	ratio    float32
	viewport Extent
	cleared  []Color
	flushes  int
	canceled int

	textures map[ImageID]*fakeTexture
	nextID   ImageID

	fillCalls   []fakeFill
	strokeCalls []fakeStroke
	triCalls    []fakeTriangles
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		aa:       true,
		w:        100,
		h:        100,
		ratio:    1,
		textures: make(map[ImageID]*fakeTexture),
	}
}

func (r *fakeRenderer) EdgeAntialias() bool          { return r.aa }
func (r *fakeRenderer) ViewSize() (float32, float32) { return r.w, r.h }
func (r *fakeRenderer) DevicePixelRatio() float32    { return r.ratio }
func (r *fakeRenderer) ClearScreen(c Color)          { r.cleared = append(r.cleared, c) }
func (r *fakeRenderer) Cancel()                      { r.canceled++ }

func (r *fakeRenderer) Flush() error {
	r.flushes++
	return nil
}

func (r *fakeRenderer) Viewport(e Extent, _ float32) error {
	r.viewport = e
	return nil
}

func (r *fakeRenderer) CreateTexture(typ TextureType, w, h int, flags ImageFlags, data []byte) (ImageID, error) {
	r.nextID++
	r.textures[r.nextID] = &fakeTexture{typ: typ, w: w, h: h, flags: flags, data: append([]byte(nil), data...)}
	return r.nextID, nil
}

func (r *fakeRenderer) DeleteTexture(img ImageID) error {
	if _, ok := r.textures[img]; !ok {
		return TextureError(fmt.Sprintf("unknown image %d", img), nil)
	}
	delete(r.textures, img)
	return nil
}

func (r *fakeRenderer) UpdateTexture(img ImageID, x, y, w, h int, data []byte) error {
	t, ok := r.textures[img]
	if !ok {
		return TextureError(fmt.Sprintf("unknown image %d", img), nil)
	}
	t.update++
	return nil
}

func (r *fakeRenderer) TextureSize(img ImageID) (int, int, error) {
	t, ok := r.textures[img]
	if !ok {
		return 0, 0, TextureError(fmt.Sprintf("unknown image %d", img), nil)
	}
	return t.w, t.h, nil
}

func (r *fakeRenderer) Fill(paint *Paint, composite CompositeState, scissor *Scissor, fringe float32, bounds Bounds, paths []Path) error {
	call := fakeFill{paint: *paint, composite: composite, scissor: *scissor, fringe: fringe, bounds: bounds}
	for i := range paths {
		call.counts = append(call.counts, paths[i].Count())
		call.fills = append(call.fills, append([]Vertex(nil), paths[i].Fill()...))
		call.fringes = append(call.fringes, append([]Vertex(nil), paths[i].Stroke()...))
	}
	r.fillCalls = append(r.fillCalls, call)
	return nil
}

func (r *fakeRenderer) Stroke(paint *Paint, _ CompositeState, _ *Scissor, _, width float32, paths []Path) error {
	call := fakeStroke{paint: *paint, width: width}
	for i := range paths {
		call.counts = append(call.counts, paths[i].Count())
		call.strokes = append(call.strokes, append([]Vertex(nil), paths[i].Stroke()...))
	}
	r.strokeCalls = append(r.strokeCalls, call)
	return nil
}

func (r *fakeRenderer) Triangles(paint *Paint, _ CompositeState, _ *Scissor, verts []Vertex) error {
	r.triCalls = append(r.triCalls, fakeTriangles{paint: *paint, verts: append([]Vertex(nil), verts...)})
	return nil
}

// fakeFonts lays out every rune as a 10x10 box advancing by 10 units.
type fakeFonts struct {
	names map[string]FontID
	img   ImageID
}

func (f *fakeFonts) AddFont(name string, data []byte) (FontID, error) {
	if len(data) == 0 {
		return 0, FontError("empty font data", nil)
	}
	if f.names == nil {
		f.names = make(map[string]FontID)
	}
	id := FontID(len(f.names))
	f.names[name] = id
	return id, nil
}

func (f *fakeFonts) FindFont(name string) (FontID, bool) {
	id, ok := f.names[name]
	return id, ok
}

func (f *fakeFonts) AddFallback(base, fallback FontID) {}

func (f *fakeFonts) LayoutText(r Renderer, text string, id FontID, pos Point, size float32, align Align, spacing float32, out []LayoutChar) ([]LayoutChar, error) {
	if f.img == 0 {
		img, err := r.CreateTexture(TextureAlpha, 64, 64, 0, nil)
		if err != nil {
			return out, err
		}
		f.img = img
	}
	x := pos.X
	for i, ch := range []rune(text) {
		out = append(out, LayoutChar{
			Rune:   ch,
			Index:  i,
			X:      x,
			NextX:  x + size,
			Bounds: Bounds{Min: Pt(x, pos.Y-size), Max: Pt(x+size, pos.Y)},
			UV:     Bounds{Min: Pt(0, 0), Max: Pt(0.5, 0.5)},
		})
		x += size + spacing
	}
	return out, nil
}

func (f *fakeFonts) TextMetrics(id FontID, size float32) TextMetrics {
	return TextMetrics{Ascender: size * 0.8, Descender: -size * 0.2, LineGap: 0}
}

func (f *fakeFonts) TextSize(text string, id FontID, size, spacing float32) Extent {
	n := float32(len([]rune(text)))
	return Extent{Width: n * size, Height: size}
}

func (f *fakeFonts) Image() ImageID { return f.img }
