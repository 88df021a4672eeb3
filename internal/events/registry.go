package events

import (
	"fmt"
	"sort"

	"event-dispatch/internal/common/errors"
	"event-dispatch/internal/common/registry"
)

// Registry resolves which plugin instance handles a given flavor name or
// plugin type. Registration happens at process start; lookups are
// read-only and safe for concurrent use.
type Registry struct {
	descriptors *registry.Registry[*Descriptor]
}

// NewRegistry creates an empty flavor registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: registry.New[*Descriptor](),
	}
}

// Register adds a flavor descriptor under its flavor name.
func (r *Registry) Register(descriptor *Descriptor) {
	r.descriptors.Register(descriptor)
}

// Lookup returns the descriptor registered for the given flavor name, or
// a NotFound error.
func (r *Registry) Lookup(flavorName string) (*Descriptor, error) {
	descriptor, err := r.descriptors.Get(flavorName)
	if err != nil {
		return nil, errors.NotFoundError(fmt.Sprintf("flavor %q", flavorName))
	}
	return descriptor, nil
}

// ListByType returns all descriptors whose flavor carries the given
// plugin-type tag, sorted by flavor name.
func (r *Registry) ListByType(pluginType PluginType) []*Descriptor {
	var matched []*Descriptor
	for _, descriptor := range r.descriptors.List() {
		if descriptor.Flavor().Type() == pluginType {
			matched = append(matched, descriptor)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name() < matched[j].Name()
	})
	return matched
}

// Responses returns the serializable flavor descriptors for the given
// plugin type, for consumption by an API layer.
func (r *Registry) Responses(pluginType PluginType) []FlavorResponse {
	descriptors := r.ListByType(pluginType)
	responses := make([]FlavorResponse, len(descriptors))
	for i, descriptor := range descriptors {
		responses[i] = descriptor.Response()
	}
	return responses
}

// Count returns the number of registered flavors.
func (r *Registry) Count() int {
	return r.descriptors.Count()
}
