package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventSessionCreated EventType = "session-created"
	EventActionTaken    EventType = "action-taken"
	EventRiskRolled     EventType = "risk-rolled"
	EventRiskResolved   EventType = "risk-resolved"
	EventRiskCancelled  EventType = "risk-cancelled"
	EventIslandExplored EventType = "island-explored"
	EventSurfaceChanged EventType = "surface-changed"
	EventTilePlaced     EventType = "tile-placed"
	EventFeastStarted   EventType = "feast-started"
	EventFeastUpdated   EventType = "feast-updated"
	EventAnimalHarvest  EventType = "animal-harvested"
	EventFeastFinished  EventType = "feast-finished"
	EventRoundStarted   EventType = "round-started"
	EventGameOver       EventType = "game-over"
)

// Event is a notification about a change to a session
type Event struct {
	Type      EventType `json:"type"`
	SessionID SessionID `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Payload   any       `json:"payload,omitempty"`
}

// TilePlacedPayload contains data for tile placed events
type TilePlacedPayload struct {
	Surface SurfaceID  `json:"surface"`
	Tile    PlacedTile `json:"tile"`
}

// RiskResolvedPayload contains data for risk resolved events
type RiskResolvedPayload struct {
	Outcome RiskOutcome `json:"outcome"`
}

// FeastFinishedPayload contains data for feast finished events
type FeastFinishedPayload struct {
	Outcome FeastOutcome `json:"outcome"`
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	Score ScoreCard `json:"score"`
}
