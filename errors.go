package nvg

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures surfaced by a Canvas.
type ErrorKind int

// Error kinds.
const (
	// KindTexture covers texture creation, upload and image decoding.
	KindTexture ErrorKind = iota + 1
	// KindShader covers shader compilation in renderers.
	KindShader
	// KindFont covers malformed font data and font lookup.
	KindFont
)

// Sentinel errors matched by errors.Is against any *Error of that kind.
var (
	ErrTexture = errors.New("nvg: texture error")
	ErrShader  = errors.New("nvg: shader error")
	ErrFont    = errors.New("nvg: font error")
)

func (k ErrorKind) String() string {
	switch k {
	case KindTexture:
		return "ERR_TEXTURE"
	case KindShader:
		return "ERR_SHADER"
	case KindFont:
		return "ERR_FONT"
	default:
		return "ERR_UNKNOWN"
	}
}

// Error is a classified failure from a renderer, the font system or
// image loading.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTexture:
		return e.Kind == KindTexture
	case ErrShader:
		return e.Kind == KindShader
	case ErrFont:
		return e.Kind == KindFont
	}
	return false
}

// TextureError returns a KindTexture error wrapping err, which may be nil.
func TextureError(msg string, err error) error {
	return &Error{Kind: KindTexture, Msg: msg, Err: err}
}

// ShaderError returns a KindShader error wrapping err, which may be nil.
func ShaderError(msg string, err error) error {
	return &Error{Kind: KindShader, Msg: msg, Err: err}
}

// FontError returns a KindFont error wrapping err, which may be nil.
func FontError(msg string, err error) error {
	return &Error{Kind: KindFont, Msg: msg, Err: err}
}
