package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/feastgame/internal/model"
)

// Broadcaster publishes session events to the session's SSE clients
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish sends the event as JSON to everyone watching its session.
// Events for sessions nobody is watching are dropped.
func (b *Broadcaster) Publish(event model.Event) {
	hub := b.hubManager.GetHub(event.SessionID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("session_id", string(event.SessionID)),
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(string(event.Type), string(data))
}

// Close disconnects everyone watching a session
func (b *Broadcaster) Close(sessionID model.SessionID) {
	b.hubManager.RemoveHub(sessionID)
}
