package component

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Registry errors.
var (
	ErrUnknownPlugin   = errors.New("unknown component plugin")
	ErrDuplicatePlugin = errors.New("component plugin already registered")
)

// Factory creates a fresh, unconfigured component.
type Factory func() Component

// Registry maps plugin names to component factories. It stands in for
// dynamic plugin discovery: whoever builds the framework registers the
// components it knows about.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name.
func (r *Registry) Register(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePlugin, name)
	}
	r.factories[name] = f
	return nil
}

// New creates a component from the factory registered under name.
func (r *Registry) New(name string) (Component, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
	}
	return f(), nil
}

// Names returns the registered plugin names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
