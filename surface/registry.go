// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/replay/internal/logging"
)

// DefaultName is the name the CPU image factory is registered under.
const DefaultName = "image"

var (
	// ErrUnknownSurface is returned when no factory has the requested name.
	ErrUnknownSurface = errors.New("surface: unknown surface")

	// ErrInvalidSize is returned for negative surface dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")
)

// Factory creates a surface of the given size in device pixels.
type Factory func(width, height int) (Surface, error)

// ImageFactory creates an ImageSurface. Zero dimensions are allowed and
// yield an empty image.
func ImageFactory(width, height int) (Surface, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	logging.Logger().Debug("surface: allocated image surface", "width", width, "height", height)
	return NewImageSurface(width, height), nil
}

// Registry maps names to surface factories.
//
// Third-party raster targets register themselves without changes to the
// label code:
//
//	func init() {
//	    surface.Register("tiny", tinyFactory)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Factory)}
}

// Register adds or replaces the factory for name. It panics if f is nil.
func (r *Registry) Register(name string, f Factory) {
	if f == nil {
		panic("surface: Register factory is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]Factory)
	}
	r.entries[name] = f
}

// Unregister removes the factory for name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Lookup returns the factory for name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.entries[name]
	return f, ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a surface with the named factory.
func (r *Registry) New(name string, width, height int) (Surface, error) {
	f, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownSurface, name)
	}
	return f(width, height)
}

var globalRegistry = NewRegistry()

func init() {
	globalRegistry.Register(DefaultName, ImageFactory)
}

// Register adds or replaces a factory in the global registry.
func Register(name string, f Factory) { globalRegistry.Register(name, f) }

// Unregister removes a factory from the global registry.
func Unregister(name string) { globalRegistry.Unregister(name) }

// Lookup returns a factory from the global registry.
func Lookup(name string) (Factory, bool) { return globalRegistry.Lookup(name) }

// List returns the names in the global registry.
func List() []string { return globalRegistry.List() }

// New creates a surface with a factory from the global registry.
func New(name string, width, height int) (Surface, error) {
	return globalRegistry.New(name, width, height)
}

// Default returns the factory registered as DefaultName, falling back to
// ImageFactory if it was unregistered.
func Default() Factory {
	if f, ok := Lookup(DefaultName); ok {
		return f
	}
	return ImageFactory
}
