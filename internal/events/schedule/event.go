// Package schedule implements the "schedule" event source flavor:
// occurrences fired by an external scheduler when a configured cron
// expression comes due.
package schedule

import (
	"time"
)

// FlavorName is the registry name of this flavor.
const FlavorName = "schedule"

// Event is one schedule firing. The schedule name is the static identity
// field used for the structural pre-filter.
type Event struct {
	ScheduleName string    `json:"name"`
	ScheduledFor time.Time `json:"scheduledFor"`
	FiredAt      time.Time `json:"firedAt"`
	Run          int       `json:"run,omitempty"`
}

// Flavor implements events.Event.
func (e *Event) Flavor() string {
	return FlavorName
}
