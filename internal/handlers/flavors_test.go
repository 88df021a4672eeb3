package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-dispatch/internal/events"
	"event-dispatch/internal/events/schedule"
	"event-dispatch/internal/events/webhook"
	"event-dispatch/internal/testutil"
)

func newTestRouter() *mux.Router {
	store := testutil.NewMockStore()
	hub := testutil.NewMockHub()

	registry := events.NewRegistry()
	registry.Register(webhook.NewDescriptor(store, hub))
	registry.Register(schedule.NewDescriptor(store, hub))

	router := mux.NewRouter()
	NewFlavorHandlers(registry).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestListFlavors(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, "/flavors")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var responses []map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
	require.Len(t, responses, 2)

	assert.Equal(t, "schedule", responses[0]["flavorName"])
	assert.Equal(t, "webhook", responses[1]["flavorName"])
	for _, response := range responses {
		assert.Equal(t, "event_source", response["pluginType"])
		assert.Contains(t, response, "sourceConfigSchema")
		assert.Contains(t, response, "filterConfigSchema")
	}
}

func TestListFlavors_UnknownTypeYieldsEmptyList(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, "/flavors?type=actuator")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestGetFlavor(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, "/flavors/webhook")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, "webhook", response["flavorName"])
	assert.Equal(t, "event_source", response["pluginType"])

	schema, ok := response["sourceConfigSchema"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "object", schema["type"])

	properties, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, properties, "repoUrl")
}

func TestGetFlavor_NotFound(t *testing.T) {
	router := newTestRouter()

	recorder := doRequest(t, router, "/flavors/carrier-pigeon")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "carrier-pigeon")
}
