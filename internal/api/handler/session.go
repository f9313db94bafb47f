package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/feastgame/internal/api/request"
	"github.com/mcoot/feastgame/internal/api/response"
	"github.com/mcoot/feastgame/internal/model"
	"github.com/mcoot/feastgame/internal/services/hint"
	"github.com/mcoot/feastgame/internal/services/session"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	controller session.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller session.ControllerInterface) *SessionHandler {
	return &SessionHandler{controller: controller}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.Create(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.controller.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SessionList{Sessions: ids})
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.Get(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SessionFromModel(s))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Delete(r.Context(), sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// TakeAction handles POST /api/v1/sessions/{id}/actions
func (h *SessionHandler) TakeAction(w http.ResponseWriter, r *http.Request) {
	var req request.TakeActionRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.ActionID == "" {
		WriteError(w, NewInvalidRequestError("action_id is required"))
		return
	}

	s, outcome, err := h.controller.TakeAction(r.Context(), sessionID(r), model.ActionID(req.ActionID))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.ActionResponse{Outcome: outcome, Session: response.SessionFromModel(s)})
}

// RollRisk handles POST /api/v1/sessions/{id}/risk/roll
func (h *SessionHandler) RollRisk(w http.ResponseWriter, r *http.Request) {
	s, risk, err := h.controller.RollRisk(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.RiskRolledResponse{Risk: risk, Session: response.SessionFromModel(s)})
}

// ResolveRisk handles POST /api/v1/sessions/{id}/risk/resolve
func (h *SessionHandler) ResolveRisk(w http.ResponseWriter, r *http.Request) {
	var req request.ResolveRiskRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	s, outcome, err := h.controller.ResolveRisk(r.Context(), sessionID(r), req.WeaponUsed, req.ModifierUsed)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.RiskResolvedResponse{Outcome: outcome, Session: response.SessionFromModel(s)})
}

// CancelRisk handles DELETE /api/v1/sessions/{id}/risk
func (h *SessionHandler) CancelRisk(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.CancelRisk(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SessionFromModel(s))
}

// SelectSurface handles POST /api/v1/sessions/{id}/surface
func (h *SessionHandler) SelectSurface(w http.ResponseWriter, r *http.Request) {
	var req request.SelectSurfaceRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Surface == "" {
		WriteError(w, NewInvalidRequestError("surface is required"))
		return
	}

	s, err := h.controller.SelectSurface(r.Context(), sessionID(r), model.SurfaceID(req.Surface))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SessionFromModel(s))
}

func placementRequest(r *http.Request) (session.PlacementRequest, error) {
	var req request.PlacementRequest
	if err := decode(r, &req); err != nil {
		return session.PlacementRequest{}, err
	}
	if req.TileID == "" {
		return session.PlacementRequest{}, NewInvalidRequestError("tile_id is required")
	}
	return session.PlacementRequest{
		TileID:   model.TileID(req.TileID),
		Surface:  model.SurfaceID(req.Surface),
		Rotation: model.Rotation(req.Rotation),
		X:        req.X,
		Y:        req.Y,
	}, nil
}

// CheckPlacement handles POST /api/v1/sessions/{id}/placements/check
func (h *SessionHandler) CheckPlacement(w http.ResponseWriter, r *http.Request) {
	req, err := placementRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, rotated, err := h.controller.CheckPlacement(r.Context(), sessionID(r), req)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.PlacementCheckResponse{Valid: result.Valid, Reason: result.Reason, Matrix: rotated})
}

// Place handles POST /api/v1/sessions/{id}/placements
func (h *SessionHandler) Place(w http.ResponseWriter, r *http.Request) {
	req, err := placementRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	s, placed, err := h.controller.PlaceTile(r.Context(), sessionID(r), req)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.PlacementResponse{Tile: placed, Session: response.SessionFromModel(s)})
}

// Suggest handles POST /api/v1/sessions/{id}/placements/suggest
func (h *SessionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req request.SuggestRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.TileID == "" {
		WriteError(w, NewInvalidRequestError("tile_id is required"))
		return
	}
	if req.Strategy == "" {
		req.Strategy = hint.DefaultStrategy
	}

	target := session.PlacementRequest{TileID: model.TileID(req.TileID), Surface: model.SurfaceID(req.Surface)}
	choice, err := h.controller.SuggestPlacement(r.Context(), sessionID(r), target, req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.Suggestion{Candidate: choice, Strategy: req.Strategy})
}

// StartFeast handles POST /api/v1/sessions/{id}/feast
func (h *SessionHandler) StartFeast(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.StartFeast(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SessionFromModel(s))
}

// Serve handles POST /api/v1/sessions/{id}/feast/table
func (h *SessionHandler) Serve(w http.ResponseWriter, r *http.Request) {
	var req request.ServeRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.TileID == "" {
		WriteError(w, NewInvalidRequestError("tile_id is required"))
		return
	}

	s, entry, err := h.controller.ServeFood(r.Context(), sessionID(r), model.TileID(req.TileID))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.FeastEntryResponse{Entry: entry, Session: response.SessionFromModel(s)})
}

// Unserve handles DELETE /api/v1/sessions/{id}/feast/table
func (h *SessionHandler) Unserve(w http.ResponseWriter, r *http.Request) {
	s, entry, err := h.controller.UndoFood(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.FeastEntryResponse{Entry: entry, Session: response.SessionFromModel(s)})
}

// Harvest handles POST /api/v1/sessions/{id}/feast/harvest
func (h *SessionHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	var req request.HarvestRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.TileID == "" {
		WriteError(w, NewInvalidRequestError("tile_id is required"))
		return
	}

	s, tile, err := h.controller.Harvest(r.Context(), sessionID(r), model.TileID(req.TileID), model.HarvestKind(req.Kind))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.HarvestResponse{Tile: tile, Session: response.SessionFromModel(s)})
}

// FinishFeast handles POST /api/v1/sessions/{id}/feast/finish
func (h *SessionHandler) FinishFeast(w http.ResponseWriter, r *http.Request) {
	s, outcome, err := h.controller.FinishFeast(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.FeastFinishedResponse{Outcome: outcome, Session: response.SessionFromModel(s)})
}

// Score handles GET /api/v1/sessions/{id}/score
func (h *SessionHandler) Score(w http.ResponseWriter, r *http.Request) {
	card, err := h.controller.Score(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, card)
}
