// Package registry provides a generic, thread-safe registry keyed by name.
//
// It is specialized by the event-source flavor registry but works for any
// entry type that can name itself:
//
//	registry := registry.New[events.Flavor]()
//	registry.Register(webhook.Flavor{})
//	flavor, err := registry.Get("webhook")
package registry

import (
	"fmt"
	"sync"

	"event-dispatch/internal/common/errors"
)

// Named is implemented by anything that can be registered under its own name.
type Named interface {
	// Name returns the unique registry key for this entry
	Name() string
}

// Registry provides a generic, thread-safe registry for entries of type T.
type Registry[T Named] struct {
	entries map[string]T
	mu      sync.RWMutex
}

// New creates a new empty registry for entries of type T.
func New[T Named]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
	}
}

// Register adds an entry to the registry under its own name.
// Registering the same name twice replaces the previous entry.
func (r *Registry[T]) Register(entry T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.Name()] = entry
}

// Get retrieves an entry by name. Returns a NotFound error for
// unknown names.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	entry, exists := r.entries[name]
	r.mu.RUnlock()

	if !exists {
		var zero T
		return zero, errors.NotFoundError(fmt.Sprintf("registry entry %q", name))
	}

	return entry, nil
}

// List returns all registered entries. The returned slice is a copy
// and safe to modify.
func (r *Registry[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]T, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	return entries
}

// Names returns all registered names.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a name is registered.
func (r *Registry[T]) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.entries[name]
	return exists
}

// Count returns the number of registered entries.
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear removes all entries. Useful for tests.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]T)
}
