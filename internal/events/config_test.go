package events_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "event-dispatch/internal/common/errors"
	"event-dispatch/internal/events"
	"event-dispatch/internal/events/webhook"
)

func TestDecodeSourceConfig(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]interface{}
		wantErr bool
	}{
		{
			name: "valid minimal",
			raw:  map[string]interface{}{"repoUrl": "https://x/y"},
		},
		{
			name: "valid with optional fields",
			raw: map[string]interface{}{
				"repoUrl": "https://x/y",
				"secret":  "hunter22-hunter22",
				"events":  []interface{}{"push"},
			},
		},
		{
			name:    "missing required field",
			raw:     map[string]interface{}{"secret": "hunter22-hunter22"},
			wantErr: true,
		},
		{
			name:    "wrong typed field",
			raw:     map[string]interface{}{"repoUrl": 123},
			wantErr: true,
		},
		{
			name:    "unknown field",
			raw:     map[string]interface{}{"repoUrl": "https://x/y", "nope": 1},
			wantErr: true,
		},
		{
			name:    "not a repository url",
			raw:     map[string]interface{}{"repoUrl": "ftp://x/y"},
			wantErr: true,
		},
		{
			name:    "flavor rule rejects unknown event type",
			raw:     map[string]interface{}{"repoUrl": "https://x/y", "events": []interface{}{"teleport"}},
			wantErr: true,
		},
		{
			name:    "secret below minimum length",
			raw:     map[string]interface{}{"repoUrl": "https://x/y", "secret": "short"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := events.DecodeSourceConfig(webhook.Flavor{}, tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInvalidConfig))
				assert.Nil(t, config)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, config)
		})
	}
}

func TestDecodeSourceConfig_NamesOffendingField(t *testing.T) {
	_, err := events.DecodeSourceConfig(webhook.Flavor{}, map[string]interface{}{
		"repoUrl": 123,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repoUrl")
}

func TestDecodeFilterConfig(t *testing.T) {
	filter, err := events.DecodeFilterConfig(webhook.Flavor{},
		json.RawMessage(`{"branch": "main", "eventType": "push"}`))
	require.NoError(t, err)

	assert.Equal(t, &webhook.FilterConfig{
		Branch:    "main",
		EventType: "push",
	}, filter)
}

func TestDecodeFilterConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"truncated json", `{"branch": `},
		{"wrong type", `{"branch": 7}`},
		{"unknown field", `{"branch": "main", "mystery": true}`},
		{"bad enum value", `{"eventType": "teleport"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := events.DecodeFilterConfig(webhook.Flavor{}, json.RawMessage(tt.stored))
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInvalidConfig))
		})
	}
}
