package events_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-dispatch/internal/events"
	"event-dispatch/internal/events/webhook"
)

func TestFlavorResponse_WireFieldNames(t *testing.T) {
	response := events.NewFlavorResponse(webhook.Flavor{})

	payload, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	// Field names are part of the external contract.
	assert.Contains(t, decoded, "flavorName")
	assert.Contains(t, decoded, "pluginType")
	assert.Contains(t, decoded, "sourceConfigSchema")
	assert.Contains(t, decoded, "filterConfigSchema")
	assert.Len(t, decoded, 4)

	assert.Equal(t, "webhook", decoded["flavorName"])
	assert.Equal(t, "event_source", decoded["pluginType"])
}

func TestFlavorResponse_SchemaRequiresRepoURL(t *testing.T) {
	response := events.NewFlavorResponse(webhook.Flavor{})

	required, ok := response.SourceConfigSchema["required"].([]string)
	require.True(t, ok)
	assert.Contains(t, required, "repoUrl")

	properties, ok := response.SourceConfigSchema["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, properties, "repoUrl")
	assert.Contains(t, properties, "secret")
	assert.Contains(t, properties, "events")
}
