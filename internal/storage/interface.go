// Package storage defines the store collaborator boundary. Persistence of
// event sources, triggers and their relationships is owned externally;
// the dispatch core only queries by identifier and by flavor.
package storage

import (
	"context"
	"encoding/json"
	"time"
)

// EventSourceRecord is a persisted event source: one validated
// configuration blob plus a flavor name.
type EventSourceRecord struct {
	ID            string          `json:"id"`
	Flavor        string          `json:"flavor"`
	Configuration json.RawMessage `json:"configuration"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TriggerFilter is a trigger identifier together with that trigger's
// stored filter configuration, still serialized. The dispatch core
// re-hydrates it into the flavor's filter type at evaluation time.
type TriggerFilter struct {
	TriggerID    string          `json:"triggerId"`
	FilterConfig json.RawMessage `json:"filterConfig"`
}

// Store is the external persistence collaborator. Implementations must be
// safe for concurrent use; all calls honor context cancellation.
type Store interface {
	// GetEventSourcesByFlavorAndMatch returns the identifiers of all
	// event sources of the given flavor whose stored configuration
	// matches every key/value pair in criteria. Criteria keys are
	// configuration field names in their serialized form.
	GetEventSourcesByFlavorAndMatch(ctx context.Context, flavor string, criteria map[string]string) ([]string, error)

	// GetTriggersForEventSources returns, for every trigger registered
	// against any of the given event sources, its identifier and stored
	// filter configuration. A trigger listening on several of the given
	// sources may appear more than once.
	GetTriggersForEventSources(ctx context.Context, sourceIDs []string) ([]TriggerFilter, error)

	// CreateEventSource persists a validated configuration under a newly
	// assigned identifier.
	CreateEventSource(ctx context.Context, flavor string, config json.RawMessage) (*EventSourceRecord, error)
}
