// Package backend is a registry of canvas renderers.
//
// Renderer packages register a factory from an init() function, so a
// program selects a renderer by importing it and asking for it by name:
//
//	import (
//		"github.com/gogpu/nvg/backend"
//		_ "github.com/gogpu/nvg/backend/software"
//	)
//
//	r, err := backend.New(backend.BackendSoftware, 800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c := nvg.New(r)
//
// Default picks the best registered backend.
//
// # Available Backends
//
//   - "software": CPU renderer drawing into an RGBA image
//   - "gpucmd": records frames as GPU command lists for an executor
package backend
