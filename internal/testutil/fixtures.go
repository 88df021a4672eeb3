package testutil

import (
	"encoding/json"
	"fmt"

	"event-dispatch/internal/storage"
)

// TriggerRow builds a stored trigger row from a filter document.
func TriggerRow(triggerID string, filter map[string]interface{}) storage.TriggerFilter {
	payload, err := json.Marshal(filter)
	if err != nil {
		panic(fmt.Sprintf("unmarshalable filter fixture: %v", err))
	}
	return storage.TriggerFilter{
		TriggerID:    triggerID,
		FilterConfig: payload,
	}
}

// CorruptTriggerRow builds a stored trigger row whose filter
// configuration is not valid JSON.
func CorruptTriggerRow(triggerID string) storage.TriggerFilter {
	return storage.TriggerFilter{
		TriggerID:    triggerID,
		FilterConfig: json.RawMessage(`{"branch": `),
	}
}
