package events

// PluginType tags a plugin implementation family.
type PluginType string

// PluginTypeEventSource is the plugin type for the event source family.
const PluginTypeEventSource PluginType = "event_source"

// Flavor is the static metadata for one pluggable event-source
// implementation: its unique name, plugin-type tag, configuration type
// prototypes and hand-declared configuration schemas.
//
// A Flavor is constructed once at registration time and never mutated.
// Schemas are computable without a live plugin instance so clients can
// introspect configuration shapes before any event source exists.
type Flavor interface {
	// Name returns the unique flavor name, e.g. "webhook"
	Name() string
	// Type returns the plugin-type tag for this flavor family
	Type() PluginType
	// NewSourceConfig returns a fresh, zero-valued source configuration
	// for strict decoding
	NewSourceConfig() SourceConfig
	// NewFilterConfig returns a fresh, zero-valued filter configuration
	// for strict decoding
	NewFilterConfig() FilterConfig
	// SourceConfigSchema returns the structural schema of the source
	// configuration type
	SourceConfigSchema() map[string]interface{}
	// FilterConfigSchema returns the structural schema of the filter
	// configuration type
	FilterConfigSchema() map[string]interface{}
}

// FlavorResponse is the serializable descriptor external callers use to
// introspect what configuration shape a flavor expects.
type FlavorResponse struct {
	FlavorName         string                 `json:"flavorName"`
	PluginType         PluginType             `json:"pluginType"`
	SourceConfigSchema map[string]interface{} `json:"sourceConfigSchema"`
	FilterConfigSchema map[string]interface{} `json:"filterConfigSchema"`
}

// NewFlavorResponse bundles a flavor's metadata and schemas into its
// response model.
func NewFlavorResponse(flavor Flavor) FlavorResponse {
	return FlavorResponse{
		FlavorName:         flavor.Name(),
		PluginType:         flavor.Type(),
		SourceConfigSchema: flavor.SourceConfigSchema(),
		FilterConfigSchema: flavor.FilterConfigSchema(),
	}
}

// Descriptor binds a flavor's static metadata to the running plugin
// instance handling that flavor. Descriptors are registry entries.
type Descriptor struct {
	flavor Flavor
	plugin *Plugin
}

// NewDescriptor creates a descriptor for the given flavor and plugin.
func NewDescriptor(flavor Flavor, plugin *Plugin) *Descriptor {
	return &Descriptor{
		flavor: flavor,
		plugin: plugin,
	}
}

// Name returns the flavor name; it is also the registry key.
func (d *Descriptor) Name() string {
	return d.flavor.Name()
}

// Flavor returns the flavor metadata.
func (d *Descriptor) Flavor() Flavor {
	return d.flavor
}

// Implementation returns the running plugin instance for this flavor.
func (d *Descriptor) Implementation() *Plugin {
	return d.plugin
}

// Response returns the serializable flavor descriptor.
func (d *Descriptor) Response() FlavorResponse {
	return NewFlavorResponse(d.flavor)
}
