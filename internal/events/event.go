package events

// Event is one inbound occurrence. The payload is flavor-specific and
// opaque to the core; the origin of the occurrence (which repository,
// which schedule) lives in flavor fields, not in a generic envelope.
//
// Events are immutable once constructed and safe to share across
// concurrent filter evaluations.
type Event interface {
	// Flavor returns the name of the flavor family this event belongs to
	Flavor() string
}
