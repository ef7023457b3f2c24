package software

import (
	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/backend"
)

func init() {
	backend.Register(backend.BackendSoftware, func(width, height int) nvg.Renderer {
		return New(width, height)
	})
}
