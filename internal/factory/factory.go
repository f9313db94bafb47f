// Package factory wires the application's services together.
package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/feastgame/internal/dependencies/clock"
	"github.com/mcoot/feastgame/internal/dependencies/random"
	"github.com/mcoot/feastgame/internal/services/action"
	"github.com/mcoot/feastgame/internal/services/board"
	"github.com/mcoot/feastgame/internal/services/bonus"
	"github.com/mcoot/feastgame/internal/services/feast"
	"github.com/mcoot/feastgame/internal/services/hint"
	"github.com/mcoot/feastgame/internal/services/scoring"
	"github.com/mcoot/feastgame/internal/services/session"
	"github.com/mcoot/feastgame/internal/sse"
	"github.com/mcoot/feastgame/internal/storage"
	"github.com/mcoot/feastgame/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService      *board.Service
	BonusService      *bonus.Service
	ActionService     *action.Service
	FeastService      *feast.Service
	ScoringService    *scoring.Service
	HintService       *hint.Service
	SessionController *session.Controller

	// Event feed
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Session sets game length and feast size (optional)
	// If zero value, defaults to session.DefaultConfig()
	Session session.Config
	// Policy selects what is scored (optional)
	// If nil, defaults to scoring.DefaultPolicy()
	Policy *scoring.Policy
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	return newWithDependencies(memory.New(), clock.New(), random.New(), cfg)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	sessionCfg := cfg.Session
	defaults := session.DefaultConfig()
	if sessionCfg.Rounds <= 0 {
		sessionCfg.Rounds = defaults.Rounds
	}
	if sessionCfg.FeastSize <= 0 {
		sessionCfg.FeastSize = defaults.FeastSize
	}

	policy := scoring.DefaultPolicy()
	if cfg.Policy != nil {
		policy = *cfg.Policy
	}

	// Create services
	boardService := board.New(logger)
	bonusService := bonus.New(logger)
	actionService := action.New(rnd, logger)
	feastService := feast.New(bonusService, logger)
	scoringService := scoring.New(policy, logger)
	hintService := hint.New(map[string]hint.Strategy{
		hint.StrategyGreedy: hint.NewGreedyStrategy(),
		hint.StrategyRandom: hint.NewRandomStrategy(rnd),
	}, logger)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)
	sessionController := session.NewController(store, session.Services{
		Board:   boardService,
		Action:  actionService,
		Feast:   feastService,
		Scoring: scoringService,
		Hint:    hintService,
	}, broadcaster, clk, sessionCfg, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		BoardService:      boardService,
		BonusService:      bonusService,
		ActionService:     actionService,
		FeastService:      feastService,
		ScoringService:    scoringService,
		HintService:       hintService,
		SessionController: sessionController,
		HubManager:        hubManager,
		Broadcaster:       broadcaster,
		Logger:            logger,
	}
}
