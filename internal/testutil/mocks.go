// Package testutil provides hand-written mocks and fixtures for the
// dispatch core's collaborator boundaries.
package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"event-dispatch/internal/events"
	"event-dispatch/internal/storage"
)

// MockStore implements storage.Store for testing. Behavior is driven by
// the exported fixture fields; errors are injected per method name.
type MockStore struct {
	mu sync.Mutex

	// SourcesByCriteria maps a criteria fingerprint (see CriteriaKey) to
	// the event source IDs to return.
	SourcesByCriteria map[string][]string
	// TriggersBySource maps an event source ID to its trigger rows.
	TriggersBySource map[string][]storage.TriggerFilter
	// CreatedID is the identifier assigned by CreateEventSource.
	CreatedID string

	// ErrorOnMethod injects an error for a method by name.
	ErrorOnMethod map[string]error

	// Call recording
	CreateCalls          []json.RawMessage
	MatchCriteriaCalls   []map[string]string
	TriggerLookupCalls   [][]string
	LastCancelledContext bool
}

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{
		SourcesByCriteria: make(map[string][]string),
		TriggersBySource:  make(map[string][]storage.TriggerFilter),
		CreatedID:         "src-1",
		ErrorOnMethod:     make(map[string]error),
	}
}

// CriteriaKey fingerprints a criteria map for SourcesByCriteria lookups.
func CriteriaKey(criteria map[string]string) string {
	payload, _ := json.Marshal(criteria)
	return string(payload)
}

func (m *MockStore) GetEventSourcesByFlavorAndMatch(ctx context.Context, flavor string, criteria map[string]string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.MatchCriteriaCalls = append(m.MatchCriteriaCalls, criteria)
	if err := ctx.Err(); err != nil {
		m.LastCancelledContext = true
		return nil, err
	}
	if err := m.ErrorOnMethod["GetEventSourcesByFlavorAndMatch"]; err != nil {
		return nil, err
	}
	return m.SourcesByCriteria[CriteriaKey(criteria)], nil
}

func (m *MockStore) GetTriggersForEventSources(ctx context.Context, sourceIDs []string) ([]storage.TriggerFilter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TriggerLookupCalls = append(m.TriggerLookupCalls, sourceIDs)
	if err := ctx.Err(); err != nil {
		m.LastCancelledContext = true
		return nil, err
	}
	if err := m.ErrorOnMethod["GetTriggersForEventSources"]; err != nil {
		return nil, err
	}

	var rows []storage.TriggerFilter
	for _, id := range sourceIDs {
		rows = append(rows, m.TriggersBySource[id]...)
	}
	return rows, nil
}

func (m *MockStore) CreateEventSource(ctx context.Context, flavor string, config json.RawMessage) (*storage.EventSourceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		m.LastCancelledContext = true
		return nil, err
	}
	if err := m.ErrorOnMethod["CreateEventSource"]; err != nil {
		return nil, err
	}

	m.CreateCalls = append(m.CreateCalls, config)
	return &storage.EventSourceRecord{
		ID:            m.CreatedID,
		Flavor:        flavor,
		Configuration: config,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// CreateCallCount returns how many persistence calls were made.
func (m *MockStore) CreateCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CreateCalls)
}

// TriggerLookupCount returns how many trigger lookups were made.
func (m *MockStore) TriggerLookupCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.TriggerLookupCalls)
}

// MockHub implements events.Hub for testing, recording every dispatch.
type MockHub struct {
	mu sync.Mutex

	// DispatchErr is returned by every Dispatch call when set.
	DispatchErr error

	Dispatches []HubDispatch
}

// HubDispatch is one recorded hub hand-off.
type HubDispatch struct {
	Event      events.Event
	TriggerIDs []string
}

// NewMockHub creates an empty mock hub.
func NewMockHub() *MockHub {
	return &MockHub{}
}

func (m *MockHub) Dispatch(ctx context.Context, event events.Event, triggerIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Dispatches = append(m.Dispatches, HubDispatch{
		Event:      event,
		TriggerIDs: append([]string(nil), triggerIDs...),
	})
	return m.DispatchErr
}

// DispatchCount returns how many dispatches were recorded.
func (m *MockHub) DispatchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Dispatches)
}

// LastDispatch returns the most recent dispatch, or nil.
func (m *MockHub) LastDispatch() *HubDispatch {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Dispatches) == 0 {
		return nil
	}
	last := m.Dispatches[len(m.Dispatches)-1]
	return &last
}
