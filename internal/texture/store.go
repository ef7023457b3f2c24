package texture

import (
	"fmt"

	"github.com/gogpu/nvg"
)

// Store hands out image ids for textures. Ids start at 1 and are never
// reused.
type Store struct {
	textures map[nvg.ImageID]*Texture
	last     nvg.ImageID
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{textures: make(map[nvg.ImageID]*Texture)}
}

// Create adds a texture and fills it with data when data is non-nil.
func (s *Store) Create(typ nvg.TextureType, width, height int, flags nvg.ImageFlags, data []byte) (nvg.ImageID, *Texture, error) {
	if width <= 0 || height <= 0 {
		return 0, nil, nvg.TextureError(fmt.Sprintf("invalid texture size %dx%d", width, height), nil)
	}
	t := New(typ, width, height, flags)
	if data != nil {
		if len(data) < len(t.Pix) {
			return 0, nil, nvg.TextureError(fmt.Sprintf("texture data is %d bytes, want %d", len(data), len(t.Pix)), nil)
		}
		copy(t.Pix, data)
	}
	s.last++
	s.textures[s.last] = t
	return s.last, t, nil
}

// Get returns the texture of img, or nil.
func (s *Store) Get(img nvg.ImageID) *Texture {
	return s.textures[img]
}

// Lookup is Get for textures bound to paints: an unknown id logs a warning
// and yields nil, which draws the paint without an image.
func (s *Store) Lookup(img nvg.ImageID) *Texture {
	if img == 0 {
		return nil
	}
	t := s.textures[img]
	if t == nil {
		nvg.Logger().Warn("nvg: paint references unknown texture", "image", img)
	}
	return t
}

func notFound(img nvg.ImageID) error {
	return nvg.TextureError(fmt.Sprintf("texture %d not found", img), nil)
}

// Delete removes img.
func (s *Store) Delete(img nvg.ImageID) error {
	if _, ok := s.textures[img]; !ok {
		return notFound(img)
	}
	delete(s.textures, img)
	return nil
}

// Update replaces a w x h block of img at (x, y) with data.
func (s *Store) Update(img nvg.ImageID, x, y, w, h int, data []byte) (*Texture, error) {
	t := s.textures[img]
	if t == nil {
		return nil, notFound(img)
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > t.Width || y+h > t.Height {
		return nil, nvg.TextureError(fmt.Sprintf("update %dx%d at (%d,%d) outside texture %d", w, h, x, y, img), nil)
	}
	if need := w * h * t.Type.BytesPerPixel(); len(data) < need {
		return nil, nvg.TextureError(fmt.Sprintf("texture data is %d bytes, want %d", len(data), need), nil)
	}
	t.Update(x, y, w, h, data)
	return t, nil
}

// Size returns the dimensions of img.
func (s *Store) Size(img nvg.ImageID) (int, int, error) {
	t := s.textures[img]
	if t == nil {
		return 0, 0, notFound(img)
	}
	return t.Width, t.Height, nil
}

// Len returns the number of live textures.
func (s *Store) Len() int {
	return len(s.textures)
}
