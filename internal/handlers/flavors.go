// Package handlers exposes the flavor introspection surface over HTTP so
// clients can discover what configuration shape each flavor expects
// before creating an event source.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"event-dispatch/internal/common/errors"
	"event-dispatch/internal/common/logging"
	"event-dispatch/internal/events"
)

// FlavorHandlers serves flavor descriptors from the registry.
type FlavorHandlers struct {
	registry *events.Registry
	logger   logging.Logger
}

// NewFlavorHandlers creates handlers over the given registry.
func NewFlavorHandlers(registry *events.Registry) *FlavorHandlers {
	return &FlavorHandlers{
		registry: registry,
		logger: logging.GetGlobalLogger().WithFields(
			logging.Field{Key: "component", Value: "flavor_handlers"},
		),
	}
}

// RegisterRoutes attaches the flavor routes to a router.
func (h *FlavorHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/flavors", h.ListFlavors).Methods("GET")
	router.HandleFunc("/flavors/{name}", h.GetFlavor).Methods("GET")
}

// ListFlavors returns the serializable descriptors of all registered
// flavors, optionally restricted by plugin type.
func (h *FlavorHandlers) ListFlavors(w http.ResponseWriter, r *http.Request) {
	pluginType := events.PluginTypeEventSource
	if requested := r.URL.Query().Get("type"); requested != "" {
		pluginType = events.PluginType(requested)
	}

	responses := h.registry.Responses(pluginType)
	if responses == nil {
		responses = []events.FlavorResponse{}
	}

	h.writeJSON(w, http.StatusOK, responses)
}

// GetFlavor returns the serializable descriptor of one flavor.
func (h *FlavorHandlers) GetFlavor(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	descriptor, err := h.registry.Lookup(name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, descriptor.Response())
}

func (h *FlavorHandlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", err)
	}
}

func (h *FlavorHandlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetType(err) {
	case errors.ErrTypeNotFound:
		status = http.StatusNotFound
	case errors.ErrTypeInvalidConfig:
		status = http.StatusBadRequest
	}

	h.writeJSON(w, status, map[string]string{
		"error": err.Error(),
	})
}
