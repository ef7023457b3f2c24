package gpucmd

import (
	_ "embed"
	"sync"

	"github.com/gogpu/naga"

	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/internal/shader"
)

//go:embed shaders/nvg.wgsl
var shaderSource string

// uniformSize is the size of one fragment uniform block.
const uniformSize = shader.UniformSize

var (
	spirvOnce  sync.Once
	spirvCode  []byte
	spirvError error
)

// ShaderSource returns the WGSL source of the canvas program.
func ShaderSource() string {
	return shaderSource
}

// CompileShader compiles the canvas program to SPIR-V. The result is
// computed once and shared.
func CompileShader() ([]byte, error) {
	spirvOnce.Do(func() {
		code, err := naga.Compile(shaderSource)
		if err != nil {
			spirvError = nvg.ShaderError("compile nvg.wgsl", err)
			return
		}
		nvg.Logger().Debug("gpucmd: shader compiled", "bytes", len(code))
		spirvCode = code
	})
	return spirvCode, spirvError
}
