package nvg

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// CreateImage decodes an encoded image (PNG, JPEG, GIF, BMP, TIFF or WebP)
// and uploads it as an RGBA texture.
func (c *Canvas) CreateImage(flags ImageFlags, data []byte) (ImageID, error) {
	r := c.mustRenderer()
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, TextureError("decode image", err)
	}
	rgba := toNRGBA(img)
	b := rgba.Bounds()
	id, err := r.CreateTexture(TextureRGBA, b.Dx(), b.Dy(), flags, rgba.Pix)
	if err != nil {
		return 0, err
	}
	Logger().Debug("nvg: image created", "id", id, "format", format, "width", b.Dx(), "height", b.Dy())
	return id, nil
}

// CreateImageFromFile loads and uploads the image at path.
func (c *Canvas) CreateImageFromFile(flags ImageFlags, path string) (ImageID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, TextureError("load image", err)
	}
	return c.CreateImage(flags, data)
}

// CreateImageRGBA uploads raw RGBA pixels, 4 bytes per pixel row-major.
func (c *Canvas) CreateImageRGBA(width, height int, flags ImageFlags, pix []byte) (ImageID, error) {
	if len(pix) < width*height*4 {
		return 0, TextureError("pixel data too short", nil)
	}
	return c.mustRenderer().CreateTexture(TextureRGBA, width, height, flags, pix)
}

// UpdateImage replaces the whole content of img.
func (c *Canvas) UpdateImage(img ImageID, pix []byte) error {
	r := c.mustRenderer()
	w, h, err := r.TextureSize(img)
	if err != nil {
		return err
	}
	return r.UpdateTexture(img, 0, 0, w, h, pix)
}

// ImageSize returns the dimensions of img.
func (c *Canvas) ImageSize(img ImageID) (width, height int, err error) {
	return c.mustRenderer().TextureSize(img)
}

// DeleteImage releases img.
func (c *Canvas) DeleteImage(img ImageID) error {
	return c.mustRenderer().DeleteTexture(img)
}

// toNRGBA returns img as tightly packed non-premultiplied RGBA with its
// origin at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == b.Dx()*4 {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
