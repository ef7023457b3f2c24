// Package texture keeps renderer textures in CPU memory and samples them
// the way a GPU sampler configured from their image flags would.
package texture

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/nvg"
)

// Texture is a texture's pixels and sampling state. Pix is row-major,
// TextureRGBA textures use 4 bytes per texel and TextureAlpha textures 1.
type Texture struct {
	Type   nvg.TextureType
	Flags  nvg.ImageFlags
	Width  int
	Height int
	Pix    []byte

	sampler gputypes.SamplerDescriptor
}

// New returns a zeroed texture.
func New(typ nvg.TextureType, width, height int, flags nvg.ImageFlags) *Texture {
	return &Texture{
		Type:    typ,
		Flags:   flags,
		Width:   width,
		Height:  height,
		Pix:     make([]byte, width*height*typ.BytesPerPixel()),
		sampler: flags.Sampler(),
	}
}

// Sampler returns the sampler the texture is read with.
func (t *Texture) Sampler() gputypes.SamplerDescriptor {
	return t.sampler
}

// Update copies a tightly packed w x h block of texels to (x, y). The
// block must lie inside the texture.
func (t *Texture) Update(x, y, w, h int, data []byte) {
	bpp := t.Type.BytesPerPixel()
	stride := t.Width * bpp
	row := w * bpp
	for j := range h {
		copy(t.Pix[(y+j)*stride+x*bpp:][:row], data[j*row:][:row])
	}
}

// wrap maps texel index i into [0, n) following mode.
func wrap(i, n int, mode gputypes.AddressMode) int {
	switch mode {
	case gputypes.AddressModeRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case gputypes.AddressModeMirrorRepeat:
		p := 2 * n
		i %= p
		if i < 0 {
			i += p
		}
		if i >= n {
			i = p - 1 - i
		}
		return i
	default:
		return max(0, min(i, n-1))
	}
}

// Texel returns the texel at (x, y) after address wrapping, channels in
// [0, 1]. Alpha textures return their value in the red channel, like an
// R8 texture read by a shader.
func (t *Texture) Texel(x, y int) [4]float32 {
	x = wrap(x, t.Width, t.sampler.AddressModeU)
	y = wrap(y, t.Height, t.sampler.AddressModeV)
	if t.Type == nvg.TextureAlpha {
		return [4]float32{float32(t.Pix[y*t.Width+x]) / 255, 0, 0, 1}
	}
	p := t.Pix[(y*t.Width+x)*4:][:4]
	return [4]float32{
		float32(p[0]) / 255,
		float32(p[1]) / 255,
		float32(p[2]) / 255,
		float32(p[3]) / 255,
	}
}

// Sample reads the texture at normalized coordinates, (0, 0) being the
// top-left corner of the first texel. It implements shader.Sampler.
func (t *Texture) Sample(u, v float32) [4]float32 {
	if t.sampler.MagFilter == gputypes.FilterModeNearest {
		return t.Texel(int(math32.Floor(u*float32(t.Width))), int(math32.Floor(v*float32(t.Height))))
	}

	x := u*float32(t.Width) - 0.5
	y := v*float32(t.Height) - 0.5
	x0, y0 := math32.Floor(x), math32.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int(x0), int(y0)

	c00 := t.Texel(ix, iy)
	c10 := t.Texel(ix+1, iy)
	c01 := t.Texel(ix, iy+1)
	c11 := t.Texel(ix+1, iy+1)
	var out [4]float32
	for i := range out {
		top := c00[i] + (c10[i]-c00[i])*fx
		bottom := c01[i] + (c11[i]-c01[i])*fx
		out[i] = top + (bottom-top)*fy
	}
	return out
}
