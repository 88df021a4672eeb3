package schedule

import (
	"context"
	"encoding/json"

	"event-dispatch/internal/common/errors"
	"event-dispatch/internal/events"
	"event-dispatch/internal/storage"
)

// Hooks supplies the schedule flavor's extension points. Trigger matching
// is delegated to the shared match engine.
type Hooks struct {
	*events.MatchEngine

	store storage.Store
}

// NewHooks creates the schedule flavor hooks backed by the given store.
func NewHooks(flavor events.Flavor, store storage.Store, opts ...events.MatchOption) *Hooks {
	return &Hooks{
		MatchEngine: events.NewMatchEngine(flavor, store, opts...),
		store:       store,
	}
}

// CreateSource persists the validated configuration. Arming the external
// scheduler for the cron spec is that system's concern.
func (h *Hooks) CreateSource(ctx context.Context, req *events.CreateSourceRequest, config events.SourceConfig) (*events.SourceResponse, error) {
	serialized, err := json.Marshal(config)
	if err != nil {
		return nil, errors.InternalError("failed to serialize validated configuration", err)
	}

	record, err := h.store.CreateEventSource(ctx, FlavorName, serialized)
	if err != nil {
		return nil, errors.InternalError("failed to persist event source", err)
	}

	return &events.SourceResponse{
		ID:            record.ID,
		Flavor:        record.Flavor,
		Configuration: record.Configuration,
		CreatedAt:     record.CreatedAt,
	}, nil
}

// RelevantSources narrows down to the event sources configured with the
// schedule the firing came from.
func (h *Hooks) RelevantSources(ctx context.Context, event events.Event) ([]string, error) {
	firing, ok := event.(*Event)
	if !ok {
		return nil, errors.SourceResolutionError("event is not a schedule firing", nil).
			WithContext("flavor", event.Flavor())
	}

	ids, err := h.store.GetEventSourcesByFlavorAndMatch(ctx, FlavorName, map[string]string{
		"name": firing.ScheduleName,
	})
	if err != nil {
		return nil, errors.SourceResolutionError("failed to query event sources by schedule name", err).
			WithContext("schedule", firing.ScheduleName)
	}
	return ids, nil
}
