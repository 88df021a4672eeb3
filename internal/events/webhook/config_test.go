package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceConfig_Validate(t *testing.T) {
	valid := &SourceConfig{
		RepoURL: "https://x/y",
		Events:  []string{"push", "tag", "pull_request"},
	}
	require.NoError(t, valid.Validate())

	invalid := &SourceConfig{
		RepoURL: "https://x/y",
		Events:  []string{"push", "teleport"},
	}
	err := invalid.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}

func TestFilterConfig_Matches(t *testing.T) {
	event := &Event{
		RepoURL:   "https://x/y",
		Branch:    "main",
		EventType: "push",
		Sender:    "ana",
	}

	tests := []struct {
		name   string
		filter FilterConfig
		want   bool
	}{
		{"empty filter matches anything", FilterConfig{}, true},
		{"branch match", FilterConfig{Branch: "main"}, true},
		{"branch mismatch", FilterConfig{Branch: "dev"}, false},
		{"event type match", FilterConfig{EventType: "push"}, true},
		{"event type mismatch", FilterConfig{EventType: "tag"}, false},
		{"sender match", FilterConfig{Sender: "ana"}, true},
		{"sender mismatch", FilterConfig{Sender: "bob"}, false},
		{"tag set on filter but not event", FilterConfig{Tag: "v1.0"}, false},
		{"all fields match", FilterConfig{Branch: "main", EventType: "push", Sender: "ana"}, true},
		{"one field mismatches", FilterConfig{Branch: "main", EventType: "tag"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(event))
		})
	}
}

func TestFilterConfig_MatchesForeignEventShape(t *testing.T) {
	filter := &FilterConfig{}
	assert.False(t, filter.Matches(foreignEvent{}), "unknown shapes never match")
}

type foreignEvent struct{}

func (foreignEvent) Flavor() string { return "foreign" }
