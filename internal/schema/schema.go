// Package schema declares JSON-Schema-style structural descriptions for
// flavor configuration types.
//
// Schemas are hand-declared alongside each configuration type rather than
// derived by reflection, so clients can render and validate configuration
// forms without instantiating a plugin.
package schema

// Primitive type names used in schema documents
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Prop is one named property inside an object schema.
type Prop struct {
	name     string
	doc      map[string]interface{}
	required bool
}

// Option customizes a property declaration.
type Option func(*Prop)

// Required marks the property as required in the enclosing object.
func Required() Option {
	return func(p *Prop) {
		p.required = true
	}
}

// Description attaches a human-readable description.
func Description(text string) Option {
	return func(p *Prop) {
		p.doc["description"] = text
	}
}

// Enum restricts the property to a fixed set of values.
func Enum(values ...string) Option {
	return func(p *Prop) {
		enum := make([]interface{}, len(values))
		for i, v := range values {
			enum[i] = v
		}
		p.doc["enum"] = enum
	}
}

// Default records the default value applied when the property is omitted.
func Default(value interface{}) Option {
	return func(p *Prop) {
		p.doc["default"] = value
	}
}

// Items sets the element type for array properties.
func Items(itemType string) Option {
	return func(p *Prop) {
		p.doc["items"] = map[string]interface{}{"type": itemType}
	}
}

// Property declares a named property of the given primitive type.
func Property(name, propType string, opts ...Option) Prop {
	p := Prop{
		name: name,
		doc: map[string]interface{}{
			"type": propType,
		},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Object builds an object schema document from the given properties.
// Unknown properties are rejected, matching the strict configuration
// decoding performed at creation time.
func Object(title string, props ...Prop) map[string]interface{} {
	properties := make(map[string]interface{}, len(props))
	var required []string

	for _, p := range props {
		properties[p.name] = p.doc
		if p.required {
			required = append(required, p.name)
		}
	}

	doc := map[string]interface{}{
		"title":                title,
		"type":                 TypeObject,
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}
