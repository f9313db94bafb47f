package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/feastgame/internal/api/handler"
	"github.com/mcoot/feastgame/internal/api/middleware"
	"github.com/mcoot/feastgame/internal/api/response"
	rootmiddleware "github.com/mcoot/feastgame/internal/middleware"
	"github.com/mcoot/feastgame/internal/services/session"
	"github.com/mcoot/feastgame/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController session.ControllerInterface
	HubManager        *sse.HubManager
}

// NewRouter creates a new API router with all routes configured.
// Routes are registered flat on the root router: nested subrouters turn a
// method mismatch into a 404.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Matched routes get the chain through Use; the fallbacks are wrapped by hand
	chain := func(h http.Handler) http.Handler {
		return rootmiddleware.Logging(cfg.Logger)(middleware.Recovery(cfg.Logger)(h))
	}
	r.NotFoundHandler = chain(middleware.NotFound())
	r.MethodNotAllowedHandler = chain(middleware.MethodNotAllowed())
	r.Use(rootmiddleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	catalogHandler := handler.NewCatalogHandler()
	eventsHandler := handler.NewEventsHandler(cfg.SessionController, cfg.HubManager)

	const api = "/api/v1"
	const sessions = api + "/sessions/{id}"

	r.HandleFunc(api+"/health", healthHandler).Methods(http.MethodGet)

	// Catalog and geometry
	r.HandleFunc(api+"/catalog/tiles", catalogHandler.Tiles).Methods(http.MethodGet)
	r.HandleFunc(api+"/catalog/actions", catalogHandler.Actions).Methods(http.MethodGet)
	r.HandleFunc(api+"/catalog/islands", catalogHandler.Islands).Methods(http.MethodGet)
	r.HandleFunc(api+"/geometry/rotate", catalogHandler.Rotate).Methods(http.MethodPost)

	// Sessions
	r.HandleFunc(api+"/sessions", sessionHandler.Create).Methods(http.MethodPost)
	r.HandleFunc(api+"/sessions", sessionHandler.List).Methods(http.MethodGet)
	r.HandleFunc(sessions, sessionHandler.Get).Methods(http.MethodGet)
	r.HandleFunc(sessions, sessionHandler.Delete).Methods(http.MethodDelete)
	r.HandleFunc(sessions+"/surface", sessionHandler.SelectSurface).Methods(http.MethodPost)
	r.HandleFunc(sessions+"/score", sessionHandler.Score).Methods(http.MethodGet)
	r.HandleFunc(sessions+"/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Work phase
	r.HandleFunc(sessions+"/actions", sessionHandler.TakeAction).Methods(http.MethodPost)
	r.HandleFunc(sessions+"/risk", sessionHandler.CancelRisk).Methods(http.MethodDelete)
	r.HandleFunc(sessions+"/risk/roll", sessionHandler.RollRisk).Methods(http.MethodPost)
	r.HandleFunc(sessions+"/risk/resolve", sessionHandler.ResolveRisk).Methods(http.MethodPost)
	r.HandleFunc(sessions+"/placements/check", sessionHandler.CheckPlacement).Methods(http.MethodPost)
	r.HandleFunc(sessions+"/placements/suggest", sessionHandler.Suggest).Methods(http.MethodPost)
	r.HandleFunc(sessions+"/placements", sessionHandler.Place).Methods(http.MethodPost)

	// Feast phase
	r.HandleFunc(sessions+"/feast", sessionHandler.StartFeast).Methods(http.MethodPost)
	r.HandleFunc(sessions+"/feast/table", sessionHandler.Serve).Methods(http.MethodPost)
	r.HandleFunc(sessions+"/feast/table", sessionHandler.Unserve).Methods(http.MethodDelete)
	r.HandleFunc(sessions+"/feast/harvest", sessionHandler.Harvest).Methods(http.MethodPost)
	r.HandleFunc(sessions+"/feast/finish", sessionHandler.FinishFeast).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, response.Health{Status: "ok"})
}
