package backend

import (
	"errors"

	"github.com/gogpu/nvg"
)

// ErrBackendNotAvailable is returned when a requested backend is not
// registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Backend names.
const (
	BackendSoftware = "software"
	BackendGPUCmd   = "gpucmd"
)

// Factory creates a renderer with a view of width x height canvas units.
type Factory func(width, height int) nvg.Renderer
