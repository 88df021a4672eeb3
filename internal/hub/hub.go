// Package hub provides Event Hub implementations: the downstream
// collaborator that fans matched trigger identifiers out to subscribers.
// Delivery guarantees are the hub's responsibility; the dispatch core
// only hands results across this boundary.
package hub

import (
	"context"

	"event-dispatch/internal/common/logging"
	"event-dispatch/internal/events"
)

// LogHub records dispatched trigger sets in the log and accepts them
// unconditionally. It is the default hub when no real downstream system
// is wired.
type LogHub struct {
	logger logging.Logger
}

// NewLogHub creates a logging hub.
func NewLogHub() *LogHub {
	return &LogHub{
		logger: logging.GetGlobalLogger().WithFields(
			logging.Field{Key: "component", Value: "event_hub"},
		),
	}
}

// Dispatch implements events.Hub.
func (h *LogHub) Dispatch(ctx context.Context, event events.Event, triggerIDs []string) error {
	h.logger.Info("Forwarding event to subscribers",
		logging.String("flavor", event.Flavor()),
		logging.Int("trigger_count", len(triggerIDs)),
		logging.Strings("trigger_ids", triggerIDs),
	)
	return nil
}
