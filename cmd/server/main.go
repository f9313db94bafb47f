package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mcoot/feastgame/internal/api"
	"github.com/mcoot/feastgame/internal/factory"
	"github.com/mcoot/feastgame/internal/services/scoring"
	"github.com/mcoot/feastgame/internal/services/session"
)

func main() {
	// Set up logging with JSON output
	level := slog.LevelInfo
	if v := os.Getenv("FEAST_LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelInfo
		}
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	sessionCfg := session.DefaultConfig()
	sessionCfg.Rounds = envInt(logger, "FEAST_ROUNDS", sessionCfg.Rounds)
	sessionCfg.FeastSize = envInt(logger, "FEAST_SIZE", sessionCfg.FeastSize)

	policy := scoring.DefaultPolicy()
	policy.IncludeIslands = envBool(logger, "FEAST_SCORE_ISLANDS", policy.IncludeIslands)
	policy.IslandVP = envBool(logger, "FEAST_ISLAND_VP", policy.IslandVP)
	policy.FeastPenalties = envBool(logger, "FEAST_SCORE_FEASTS", policy.FeastPenalties)

	app := factory.New(factory.Config{
		Logger:  logger,
		Session: sessionCfg,
		Policy:  &policy,
	})

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		HubManager:        app.HubManager,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = envInt(logger, "FEAST_PORT", serverConfig.Port)
	server := api.NewServer(apiRouter, serverConfig, logger)

	// Open event streams would otherwise hold shutdown until its timeout
	server.OnShutdown(app.HubManager.CloseAll)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("server starting",
		slog.String("addr", server.Addr()),
		slog.Int("rounds", sessionCfg.Rounds),
		slog.Int("feast_size", sessionCfg.FeastSize),
	)

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func envInt(logger *slog.Logger, key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logger.Warn("ignoring invalid setting", slog.String("key", key), slog.String("value", v))
		return def
	}
	return n
}

func envBool(logger *slog.Logger, key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.Warn("ignoring invalid setting", slog.String("key", key), slog.String("value", v))
		return def
	}
	return b
}
