package gpucmd

import (
	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/backend"
)

func init() {
	backend.Register(backend.BackendGPUCmd, func(width, height int) nvg.Renderer {
		return New(width, height)
	})
}
