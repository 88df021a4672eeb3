// Package memory provides an in-memory reference implementation of the
// store boundary, used by the entry point and in tests. Durable storage
// lives behind the same interface in an external system.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lucsky/cuid"

	"event-dispatch/internal/common/errors"
	"event-dispatch/internal/storage"
)

type triggerRecord struct {
	id     string
	filter json.RawMessage
}

// Store is a thread-safe in-memory store.
type Store struct {
	mu       sync.RWMutex
	sources  map[string]*storage.EventSourceRecord
	triggers map[string][]triggerRecord // event source ID -> triggers
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		sources:  make(map[string]*storage.EventSourceRecord),
		triggers: make(map[string][]triggerRecord),
	}
}

// CreateEventSource persists a validated configuration under a cuid.
func (s *Store) CreateEventSource(ctx context.Context, flavor string, config json.RawMessage) (*storage.EventSourceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	record := &storage.EventSourceRecord{
		ID:            cuid.New(),
		Flavor:        flavor,
		Configuration: append(json.RawMessage(nil), config...),
		CreatedAt:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.sources[record.ID] = record
	s.mu.Unlock()

	return record, nil
}

// GetEventSource returns a stored event source by identifier.
func (s *Store) GetEventSource(ctx context.Context, id string) (*storage.EventSourceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.sources[id]
	if !ok {
		return nil, errors.NotFoundError(fmt.Sprintf("event source %q", id))
	}
	return record, nil
}

// GetEventSourcesByFlavorAndMatch returns the identifiers of all sources
// of the given flavor whose configuration matches every criteria entry.
func (s *Store) GetEventSourcesByFlavorAndMatch(ctx context.Context, flavor string, criteria map[string]string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for _, record := range s.sources {
		if record.Flavor != flavor {
			continue
		}
		if configMatches(record.Configuration, criteria) {
			ids = append(ids, record.ID)
		}
	}
	return ids, nil
}

// GetTriggersForEventSources returns the triggers registered against any
// of the given sources, with their stored filter configurations.
func (s *Store) GetTriggersForEventSources(ctx context.Context, sourceIDs []string) ([]storage.TriggerFilter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []storage.TriggerFilter
	for _, sourceID := range sourceIDs {
		for _, trigger := range s.triggers[sourceID] {
			rows = append(rows, storage.TriggerFilter{
				TriggerID:    trigger.id,
				FilterConfig: trigger.filter,
			})
		}
	}
	return rows, nil
}

// RegisterTrigger binds a trigger with the given stored filter
// configuration to an event source and returns its assigned identifier.
func (s *Store) RegisterTrigger(ctx context.Context, sourceID string, filter json.RawMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sources[sourceID]; !ok {
		return "", errors.NotFoundError(fmt.Sprintf("event source %q", sourceID))
	}

	id := cuid.New()
	s.triggers[sourceID] = append(s.triggers[sourceID], triggerRecord{
		id:     id,
		filter: append(json.RawMessage(nil), filter...),
	})
	return id, nil
}

// AttachTrigger binds an existing trigger identifier to an additional
// event source, keeping its filter configuration.
func (s *Store) AttachTrigger(ctx context.Context, sourceID, triggerID string, filter json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sources[sourceID]; !ok {
		return errors.NotFoundError(fmt.Sprintf("event source %q", sourceID))
	}

	s.triggers[sourceID] = append(s.triggers[sourceID], triggerRecord{
		id:     triggerID,
		filter: append(json.RawMessage(nil), filter...),
	})
	return nil
}

// configMatches reports whether every criteria entry equals the
// corresponding serialized configuration field.
func configMatches(config json.RawMessage, criteria map[string]string) bool {
	if len(criteria) == 0 {
		return true
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(config, &fields); err != nil {
		return false
	}

	for key, want := range criteria {
		got, ok := fields[key].(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}
