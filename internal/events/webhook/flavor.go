package webhook

import (
	"event-dispatch/internal/events"
	"event-dispatch/internal/storage"
)

// Flavor is the static metadata for the webhook event source flavor.
type Flavor struct{}

// Name implements events.Flavor.
func (Flavor) Name() string {
	return FlavorName
}

// Type implements events.Flavor.
func (Flavor) Type() events.PluginType {
	return events.PluginTypeEventSource
}

// NewSourceConfig implements events.Flavor.
func (Flavor) NewSourceConfig() events.SourceConfig {
	return &SourceConfig{}
}

// NewFilterConfig implements events.Flavor.
func (Flavor) NewFilterConfig() events.FilterConfig {
	return &FilterConfig{}
}

// SourceConfigSchema implements events.Flavor.
func (Flavor) SourceConfigSchema() map[string]interface{} {
	return sourceConfigSchema
}

// FilterConfigSchema implements events.Flavor.
func (Flavor) FilterConfigSchema() map[string]interface{} {
	return filterConfigSchema
}

// NewPlugin builds the dispatch engine for the webhook flavor on top of
// the given collaborators.
func NewPlugin(store storage.Store, hub events.Hub, opts ...events.MatchOption) *events.Plugin {
	flavor := Flavor{}
	return events.NewPlugin(flavor, NewHooks(flavor, store, opts...), hub)
}

// NewDescriptor builds the registry entry for the webhook flavor.
func NewDescriptor(store storage.Store, hub events.Hub, opts ...events.MatchOption) *events.Descriptor {
	return events.NewDescriptor(Flavor{}, NewPlugin(store, hub, opts...))
}
