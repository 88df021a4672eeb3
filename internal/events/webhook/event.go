// Package webhook implements the "webhook" event source flavor:
// repository push notifications delivered by an external ingestion layer.
package webhook

// FlavorName is the registry name of this flavor.
const FlavorName = "webhook"

// Event is one inbound repository occurrence, already deserialized by the
// ingestion layer. The repository URL is the static identity field used
// for the structural pre-filter.
type Event struct {
	RepoURL   string `json:"repoUrl"`
	Branch    string `json:"branch,omitempty"`
	EventType string `json:"eventType,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Tag       string `json:"tag,omitempty"`
	Sender    string `json:"sender,omitempty"`
}

// Flavor implements events.Event.
func (e *Event) Flavor() string {
	return FlavorName
}
