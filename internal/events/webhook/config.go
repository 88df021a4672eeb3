package webhook

import (
	"fmt"
	"strings"

	"event-dispatch/internal/events"
	"event-dispatch/internal/schema"
)

// knownEventTypes are the occurrence kinds the flavor understands.
var knownEventTypes = []string{"push", "tag", "pull_request"}

// SourceConfig parameterizes one configured webhook event source: which
// repository to watch.
type SourceConfig struct {
	RepoURL string   `json:"repoUrl" validate:"required,repo_url"`
	Secret  string   `json:"secret,omitempty" validate:"omitempty,min=8"`
	Events  []string `json:"events,omitempty"`
}

// Validate enforces rules beyond struct tags.
func (c *SourceConfig) Validate() error {
	for _, eventType := range c.Events {
		if !isKnownEventType(eventType) {
			return fmt.Errorf("unknown event type %q, must be one of: %s",
				eventType, strings.Join(knownEventTypes, ", "))
		}
	}
	return nil
}

// FilterConfig is the per-trigger predicate over webhook events.
// Empty fields match anything.
type FilterConfig struct {
	Branch    string `json:"branch,omitempty"`
	EventType string `json:"eventType,omitempty" validate:"omitempty,oneof=push tag pull_request"`
	Tag       string `json:"tag,omitempty"`
	Sender    string `json:"sender,omitempty"`
}

// Matches implements events.FilterConfig. An event shape this filter
// cannot interpret yields false, never an error.
func (f *FilterConfig) Matches(event events.Event) bool {
	webhookEvent, ok := event.(*Event)
	if !ok {
		return false
	}

	if f.Branch != "" && f.Branch != webhookEvent.Branch {
		return false
	}
	if f.EventType != "" && f.EventType != webhookEvent.EventType {
		return false
	}
	if f.Tag != "" && f.Tag != webhookEvent.Tag {
		return false
	}
	if f.Sender != "" && f.Sender != webhookEvent.Sender {
		return false
	}
	return true
}

func isKnownEventType(eventType string) bool {
	for _, known := range knownEventTypes {
		if eventType == known {
			return true
		}
	}
	return false
}

// Schemas are declared alongside the config types they describe.
var (
	sourceConfigSchema = schema.Object("WebhookSourceConfig",
		schema.Property("repoUrl", schema.TypeString,
			schema.Required(),
			schema.Description("Repository URL to watch for inbound webhook events")),
		schema.Property("secret", schema.TypeString,
			schema.Description("Shared secret used by the ingestion layer to verify payload signatures")),
		schema.Property("events", schema.TypeArray,
			schema.Items(schema.TypeString),
			schema.Description("Occurrence kinds to accept; all kinds when empty")),
	)

	filterConfigSchema = schema.Object("WebhookFilterConfig",
		schema.Property("branch", schema.TypeString,
			schema.Description("Only match events for this branch")),
		schema.Property("eventType", schema.TypeString,
			schema.Enum(knownEventTypes...),
			schema.Description("Only match events of this kind")),
		schema.Property("tag", schema.TypeString,
			schema.Description("Only match events carrying this tag")),
		schema.Property("sender", schema.TypeString,
			schema.Description("Only match events produced by this sender")),
	)
)
