package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/nvg"
)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for Default: renderers producing pixels first.
	backendPriority = []string{BackendSoftware, BackendGPUCmd}
)

// Register registers a renderer factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the sorted names of registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// New creates a renderer from the named backend.
func New(name string, width, height int) (nvg.Renderer, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	nvg.Logger().Debug("backend: creating renderer", "backend", name, "width", width, "height", height)
	return factory(width, height), nil
}

// Default creates a renderer from the best available backend.
// Priority order: software > gpucmd > any other registered backend.
func Default(width, height int) (nvg.Renderer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := factories[name]; ok {
			if r := factory(width, height); r != nil {
				return r, nil
			}
		}
	}

	// Fallback: first available by name.
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if r := factories[name](width, height); r != nil {
			return r, nil
		}
	}
	return nil, ErrBackendNotAvailable
}
