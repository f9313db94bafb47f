package handler

import (
	"net/http"

	"github.com/mcoot/feastgame/internal/services/session"
	"github.com/mcoot/feastgame/internal/sse"
)

// EventsHandler streams session events over SSE
type EventsHandler struct {
	controller session.ControllerInterface
	hubManager *sse.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(controller session.ControllerInterface, hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{
		controller: controller,
		hubManager: hubManager,
	}
}

// Stream handles GET /api/v1/sessions/{id}/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if _, err := h.controller.Get(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	hub := h.hubManager.Acquire(id)
	defer h.hubManager.Release(id, hub)
	sse.ServeSSE(w, r, hub)
}
