package backend_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/nvg"
	"github.com/gogpu/nvg/backend"
	"github.com/gogpu/nvg/backend/gpucmd"
	"github.com/gogpu/nvg/backend/software"
)

func TestRegistryNew(t *testing.T) {
	tests := []struct {
		name string
		want func(nvg.Renderer) bool
	}{
		{backend.BackendSoftware, func(r nvg.Renderer) bool { _, ok := r.(*software.Renderer); return ok }},
		{backend.BackendGPUCmd, func(r nvg.Renderer) bool { _, ok := r.(*gpucmd.Recorder); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := backend.New(tt.name, 100, 50)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.name, err)
			}
			if !tt.want(r) {
				t.Errorf("New(%q) = %T", tt.name, r)
			}
			if w, h := r.ViewSize(); w != 100 || h != 50 {
				t.Errorf("ViewSize() = %v, %v, want 100, 50", w, h)
			}
		})
	}
}

func TestRegistryNewUnregistered(t *testing.T) {
	r, err := backend.New("nonexistent", 10, 10)
	if !errors.Is(err, backend.ErrBackendNotAvailable) {
		t.Errorf("New(nonexistent) error = %v, want ErrBackendNotAvailable", err)
	}
	if r != nil {
		t.Error("New(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := backend.Available()
	for _, name := range []string{backend.BackendGPUCmd, backend.BackendSoftware} {
		if !slices.Contains(available, name) {
			t.Errorf("Available() = %v, should include %q", available, name)
		}
	}
	if !slices.IsSorted(available) {
		t.Errorf("Available() = %v, want sorted", available)
	}
}

func TestRegistryDefault(t *testing.T) {
	r, err := backend.Default(20, 20)
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if _, ok := r.(*software.Renderer); !ok {
		t.Errorf("Default() = %T, want *software.Renderer", r)
	}
}

func TestRegistryUnregister(t *testing.T) {
	var called bool
	backend.Register("test-backend", func(w, h int) nvg.Renderer {
		called = true
		return software.New(w, h)
	})

	if !backend.IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}
	if _, err := backend.New("test-backend", 1, 1); err != nil || !called {
		t.Errorf("New(test-backend) error = %v, called = %v", err, called)
	}

	backend.Unregister("test-backend")

	if backend.IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}

func TestRegistryIsRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendSoftware) {
		t.Error("software should be registered")
	}
	if backend.IsRegistered("nonexistent") {
		t.Error("nonexistent should not be registered")
	}
}
