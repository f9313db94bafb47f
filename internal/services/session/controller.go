// Package session drives a game session through its work and feast phases,
// loading it from storage, applying one change and saving it back.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/feastgame/internal/catalog"
	"github.com/mcoot/feastgame/internal/dependencies/clock"
	"github.com/mcoot/feastgame/internal/model"
	"github.com/mcoot/feastgame/internal/services/action"
	"github.com/mcoot/feastgame/internal/services/board"
	"github.com/mcoot/feastgame/internal/services/feast"
	"github.com/mcoot/feastgame/internal/services/hint"
	"github.com/mcoot/feastgame/internal/services/scoring"
	"github.com/mcoot/feastgame/internal/storage"
)

// Config holds session settings
type Config struct {
	Rounds    int // rounds per game
	FeastSize int // feast table spaces to fill each round
}

// DefaultConfig returns the standard game length and table size
func DefaultConfig() Config {
	return Config{
		Rounds:    catalog.DefaultRounds,
		FeastSize: catalog.DefaultFeastSize,
	}
}

// Notifier receives an event after every saved change to a session
type Notifier interface {
	Publish(event model.Event)
	Close(id model.SessionID)
}

// NopNotifier drops every event
type NopNotifier struct{}

func (NopNotifier) Publish(model.Event) {}

func (NopNotifier) Close(model.SessionID) {}

// Services groups the rule services the controller delegates to
type Services struct {
	Board   board.ServiceInterface
	Action  action.ServiceInterface
	Feast   feast.ServiceInterface
	Scoring *scoring.Service
	Hint    hint.ServiceInterface
}

// Controller manages the session state machine
type Controller struct {
	storage  storage.Storage
	services Services
	notifier Notifier
	clock    clock.Clock
	config   Config
	logger   *slog.Logger

	// serializes read-modify-write cycles
	mu sync.Mutex
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	services Services,
	notifier Notifier,
	clock clock.Clock,
	config Config,
	logger *slog.Logger,
) *Controller {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Controller{
		storage:  storage,
		services: services,
		notifier: notifier,
		clock:    clock,
		config:   config,
		logger:   logger,
	}
}

// Create starts a new session in round one
func (c *Controller) Create(ctx context.Context) (*model.Session, error) {
	now := c.clock.Now()
	session := catalog.NewSession(model.SessionID(uuid.NewString()), c.config.Rounds, now)

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int("rounds", session.TotalRounds),
	)
	c.notifier.Publish(c.event(session, model.EventSessionCreated, "Session created", nil))
	return session, nil
}

// Get retrieves a session by ID
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// List returns the ids of every session
func (c *Controller) List(ctx context.Context) ([]model.SessionID, error) {
	return c.storage.ListSessions(ctx)
}

// Delete removes a session and disconnects its watchers
func (c *Controller) Delete(ctx context.Context, id model.SessionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}
	c.notifier.Close(id)
	c.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// SelectSurface changes which board new tiles are placed on
func (c *Controller) SelectSurface(ctx context.Context, id model.SessionID, surfaceID model.SurfaceID) (*model.Session, error) {
	return c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		if session.IsOver() {
			return model.ErrGameOver
		}
		if _, err := session.Surface(surfaceID); err != nil {
			return err
		}
		session.ActiveSurface = surfaceID
		events.add(session, model.EventSurfaceChanged, "Active board is now "+string(surfaceID), nil)
		return nil
	})
}

// TakeAction puts vikings on an action space
func (c *Controller) TakeAction(ctx context.Context, id model.SessionID, actionID model.ActionID) (*model.Session, model.ActionOutcome, error) {
	var outcome model.ActionOutcome
	session, err := c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		var err error
		outcome, err = c.services.Action.Take(session, actionID)
		if err != nil {
			return err
		}
		if outcome.Pending != nil {
			risk := *outcome.Pending
			outcome.Pending = &risk
		}
		events.add(session, model.EventActionTaken, "Took action "+string(actionID), outcome)
		if outcome.Unlocked != "" {
			events.add(session, model.EventIslandExplored, "Explored "+string(outcome.Unlocked), nil)
		}
		return nil
	})
	return session, outcome, err
}

// RollRisk rolls the die for the pending hunt or raid
func (c *Controller) RollRisk(ctx context.Context, id model.SessionID) (*model.Session, model.PendingRisk, error) {
	var pending model.PendingRisk
	session, err := c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		var err error
		pending, err = c.services.Action.Roll(session)
		if err != nil {
			return err
		}
		events.add(session, model.EventRiskRolled, fmt.Sprintf("Rolled %d on a d%d", pending.Roll, pending.DieSize), pending)
		return nil
	})
	return session, pending, err
}

// CancelRisk abandons a pending hunt or raid before the roll
func (c *Controller) CancelRisk(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		var pending model.PendingRisk
		if session.Risk != nil {
			pending = *session.Risk
		}
		if err := c.services.Action.Cancel(session); err != nil {
			return err
		}
		events.add(session, model.EventRiskCancelled, "Cancelled "+string(pending.ActionID), pending)
		return nil
	})
}

// ResolveRisk spends weapons and modifiers against the rolled die
func (c *Controller) ResolveRisk(ctx context.Context, id model.SessionID, weaponUsed, modifierUsed int) (*model.Session, model.RiskOutcome, error) {
	var outcome model.RiskOutcome
	session, err := c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		var err error
		outcome, err = c.services.Action.Resolve(session, weaponUsed, modifierUsed)
		if err != nil {
			return err
		}
		message := "Risk failed"
		if outcome.Success {
			message = "Risk succeeded"
		}
		events.add(session, model.EventRiskResolved, message, model.RiskResolvedPayload{Outcome: outcome})
		return nil
	})
	return session, outcome, err
}

// PlacementRequest names an inventory tile and where to put it
type PlacementRequest struct {
	TileID   model.TileID
	Surface  model.SurfaceID // active surface when empty
	Rotation model.Rotation
	X, Y     int
}

// CheckPlacement reports whether a tile would fit, without changing anything
func (c *Controller) CheckPlacement(ctx context.Context, id model.SessionID, req PlacementRequest) (model.PlacementResult, model.Matrix, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return model.PlacementResult{}, nil, err
	}
	tile, surface, err := placementTarget(session, req)
	if err != nil {
		return model.PlacementResult{}, nil, err
	}
	return c.services.Board.Check(surface, tile.Shape, req.Rotation, req.X, req.Y)
}

// PlaceTile moves an inventory tile onto a board. The commit and the
// inventory removal happen together or not at all.
func (c *Controller) PlaceTile(ctx context.Context, id model.SessionID, req PlacementRequest) (*model.Session, model.PlacedTile, error) {
	var placed model.PlacedTile
	session, err := c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		if session.IsOver() {
			return model.ErrGameOver
		}
		if session.Phase != model.PhaseWork {
			return model.ErrWrongPhase
		}
		tile, surface, err := placementTarget(session, req)
		if err != nil {
			return err
		}

		placed, err = c.services.Board.Place(surface, tile.Shape, req.Rotation, req.X, req.Y)
		if err != nil {
			return err
		}
		if err := session.RemoveTile(tile.ID); err != nil {
			return err
		}

		events.add(session, model.EventTilePlaced, "Placed "+tile.Shape.Name,
			model.TilePlacedPayload{Surface: surface.ID, Tile: placed})
		return nil
	})
	return session, placed, err
}

// SuggestPlacement picks a legal spot for an inventory tile without placing it.
// Rotation, X and Y of the request are ignored.
func (c *Controller) SuggestPlacement(ctx context.Context, id model.SessionID, req PlacementRequest, strategy string) (hint.Candidate, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return hint.Candidate{}, err
	}
	tile, surface, err := placementTarget(session, req)
	if err != nil {
		return hint.Candidate{}, err
	}
	return c.services.Hint.Suggest(surface, tile.Shape, strategy)
}

func placementTarget(session *model.Session, req PlacementRequest) (model.InventoryTile, *model.Surface, error) {
	tile, _, err := session.Tile(req.TileID)
	if err != nil {
		return model.InventoryTile{}, nil, err
	}
	surfaceID := req.Surface
	if surfaceID == "" {
		surfaceID = session.ActiveSurface
	}
	surface, err := session.Surface(surfaceID)
	if err != nil {
		return model.InventoryTile{}, nil, err
	}
	return tile, surface, nil
}

// StartFeast ends the work phase and lays the feast table
func (c *Controller) StartFeast(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		if err := c.services.Feast.Start(session, c.config.FeastSize); err != nil {
			return err
		}
		events.add(session, model.EventFeastStarted, fmt.Sprintf("Feast started: fill %d spaces", c.config.FeastSize), session.Feast)
		return nil
	})
}

// ServeFood puts a food tile at the end of the feast table
func (c *Controller) ServeFood(ctx context.Context, id model.SessionID, tileID model.TileID) (*model.Session, model.FeastEntry, error) {
	var entry model.FeastEntry
	session, err := c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		var err error
		entry, err = c.services.Feast.Serve(session, tileID)
		if err != nil {
			return err
		}
		events.add(session, model.EventFeastUpdated, "Served "+string(entry.ShapeID), session.Feast)
		return nil
	})
	return session, entry, err
}

// UndoFood takes the last tile back off the feast table
func (c *Controller) UndoFood(ctx context.Context, id model.SessionID) (*model.Session, model.FeastEntry, error) {
	var entry model.FeastEntry
	session, err := c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		var err error
		entry, err = c.services.Feast.Unserve(session)
		if err != nil {
			return err
		}
		events.add(session, model.EventFeastUpdated, "Removed "+string(entry.ShapeID), session.Feast)
		return nil
	})
	return session, entry, err
}

// Harvest milks or slaughters an animal during the feast
func (c *Controller) Harvest(ctx context.Context, id model.SessionID, tileID model.TileID, kind model.HarvestKind) (*model.Session, model.InventoryTile, error) {
	var product model.InventoryTile
	session, err := c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		var err error
		product, err = c.services.Feast.Harvest(session, tileID, kind)
		if err != nil {
			return err
		}
		events.add(session, model.EventAnimalHarvest, "Harvested "+string(kind), product)
		return nil
	})
	return session, product, err
}

// FinishFeast resolves the feast and moves to the next round, or ends the
// game after the last one
func (c *Controller) FinishFeast(ctx context.Context, id model.SessionID) (*model.Session, model.FeastOutcome, error) {
	var outcome model.FeastOutcome
	session, err := c.update(ctx, id, func(session *model.Session, events *eventLog) error {
		var err error
		outcome, err = c.services.Feast.Finish(session)
		if err != nil {
			return err
		}
		events.add(session, model.EventFeastFinished,
			fmt.Sprintf("Feast of round %d finished", outcome.Round),
			model.FeastFinishedPayload{Outcome: outcome})
		if outcome.GameOver {
			score := c.services.Scoring.ScoreSession(session)
			events.add(session, model.EventGameOver, fmt.Sprintf("Game over: %d points", score.Total),
				model.GameOverPayload{Score: score})
		} else {
			events.add(session, model.EventRoundStarted, fmt.Sprintf("Round %d started", outcome.NextRound), nil)
		}
		return nil
	})
	return session, outcome, err
}

// Score returns the session's score breakdown. It is flagged final once the
// game is over.
func (c *Controller) Score(ctx context.Context, id model.SessionID) (model.ScoreCard, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return model.ScoreCard{}, err
	}
	return c.services.Scoring.ScoreSession(session), nil
}

// update loads a session, applies fn and saves the result. Storage hands out
// copies, so a failing fn leaves the stored session untouched. Events logged
// by fn are published once the save succeeds.
func (c *Controller) update(ctx context.Context, id model.SessionID, fn func(*model.Session, *eventLog) error) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	events := &eventLog{controller: c}
	if err := fn(session, events); err != nil {
		return nil, err
	}

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	for _, event := range events.events {
		c.notifier.Publish(event)
	}
	return session, nil
}

func (c *Controller) event(session *model.Session, eventType model.EventType, message string, payload any) model.Event {
	return model.Event{
		Type:      eventType,
		SessionID: session.ID,
		Timestamp: c.clock.Now(),
		Message:   message,
		Payload:   payload,
	}
}

// eventLog collects the events of one update
type eventLog struct {
	controller *Controller
	events     []model.Event
}

func (l *eventLog) add(session *model.Session, eventType model.EventType, message string, payload any) {
	l.events = append(l.events, l.controller.event(session, eventType, message, payload))
}

// Interface for dependency injection
type ControllerInterface interface {
	Create(ctx context.Context) (*model.Session, error)
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)
	List(ctx context.Context) ([]model.SessionID, error)
	Delete(ctx context.Context, id model.SessionID) error
	SelectSurface(ctx context.Context, id model.SessionID, surfaceID model.SurfaceID) (*model.Session, error)
	TakeAction(ctx context.Context, id model.SessionID, actionID model.ActionID) (*model.Session, model.ActionOutcome, error)
	RollRisk(ctx context.Context, id model.SessionID) (*model.Session, model.PendingRisk, error)
	CancelRisk(ctx context.Context, id model.SessionID) (*model.Session, error)
	ResolveRisk(ctx context.Context, id model.SessionID, weaponUsed, modifierUsed int) (*model.Session, model.RiskOutcome, error)
	CheckPlacement(ctx context.Context, id model.SessionID, req PlacementRequest) (model.PlacementResult, model.Matrix, error)
	PlaceTile(ctx context.Context, id model.SessionID, req PlacementRequest) (*model.Session, model.PlacedTile, error)
	SuggestPlacement(ctx context.Context, id model.SessionID, req PlacementRequest, strategy string) (hint.Candidate, error)
	StartFeast(ctx context.Context, id model.SessionID) (*model.Session, error)
	ServeFood(ctx context.Context, id model.SessionID, tileID model.TileID) (*model.Session, model.FeastEntry, error)
	UndoFood(ctx context.Context, id model.SessionID) (*model.Session, model.FeastEntry, error)
	Harvest(ctx context.Context, id model.SessionID, tileID model.TileID, kind model.HarvestKind) (*model.Session, model.InventoryTile, error)
	FinishFeast(ctx context.Context, id model.SessionID) (*model.Session, model.FeastOutcome, error)
	Score(ctx context.Context, id model.SessionID) (model.ScoreCard, error)
}

var _ ControllerInterface = (*Controller)(nil)
