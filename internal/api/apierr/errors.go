package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/feastgame/internal/model"
	"github.com/mcoot/feastgame/internal/services/board"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeInvalidRotation       = "INVALID_ROTATION"
	CodeInvalidPlacement      = "INVALID_PLACEMENT"
	CodeNotFound              = "NOT_FOUND"
	CodeMethodNotAllowed      = "METHOD_NOT_ALLOWED"
	CodeSessionNotFound       = "SESSION_NOT_FOUND"
	CodeSurfaceNotFound       = "SURFACE_NOT_FOUND"
	CodeTileNotFound          = "TILE_NOT_FOUND"
	CodeActionNotFound        = "ACTION_NOT_FOUND"
	CodeWrongPhase            = "WRONG_PHASE"
	CodeGameOver              = "GAME_OVER"
	CodeVikingsRemaining      = "VIKINGS_REMAINING"
	CodeActionOccupied        = "ACTION_OCCUPIED"
	CodeNotEnoughVikings      = "NOT_ENOUGH_VIKINGS"
	CodeMissingWeapon         = "MISSING_WEAPON"
	CodeInsufficientResources = "INSUFFICIENT_RESOURCES"
	CodeIslandExplored        = "ISLAND_EXPLORED"
	CodeRiskPending           = "RISK_PENDING"
	CodeNoRiskPending         = "NO_RISK_PENDING"
	CodeRiskNotRolled         = "RISK_NOT_ROLLED"
	CodeRiskAlreadyRolled     = "RISK_ALREADY_ROLLED"
	CodeInvalidRiskSpend      = "INVALID_RISK_SPEND"
	CodeNotFood               = "NOT_FOOD"
	CodeFeastAdjacency        = "FEAST_ADJACENCY"
	CodeAlreadyServed         = "ALREADY_SERVED"
	CodeFeastTableEmpty       = "FEAST_TABLE_EMPTY"
	CodeNotAnimal             = "NOT_ANIMAL"
	CodeCannotMilk            = "CANNOT_MILK"
	CodeAlreadyMilked         = "ALREADY_MILKED"
	CodeInvalidHarvest        = "INVALID_HARVEST"
	CodeNoPlacement           = "NO_PLACEMENT"
	CodeUnknownStrategy       = "UNKNOWN_STRATEGY"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError. Model errors keep their own
// message so wrapped detail reaches the client.
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	mapped := func(status int, code string) *httpError {
		return &httpError{status, APIError{code, err.Error()}}
	}

	switch {
	// Placement rejections carry the validator's reason
	case board.IsPlacementError(err):
		return mapped(http.StatusUnprocessableEntity, CodeInvalidPlacement)
	case errors.Is(err, model.ErrInvalidRotation):
		return mapped(http.StatusBadRequest, CodeInvalidRotation)

	// Lookups
	case errors.Is(err, model.ErrSessionNotFound):
		return mapped(http.StatusNotFound, CodeSessionNotFound)
	case errors.Is(err, model.ErrSurfaceNotFound):
		return mapped(http.StatusNotFound, CodeSurfaceNotFound)
	case errors.Is(err, model.ErrTileNotFound):
		return mapped(http.StatusNotFound, CodeTileNotFound)
	case errors.Is(err, model.ErrActionNotFound):
		return mapped(http.StatusNotFound, CodeActionNotFound)

	// Session state
	case errors.Is(err, model.ErrWrongPhase):
		return mapped(http.StatusConflict, CodeWrongPhase)
	case errors.Is(err, model.ErrGameOver):
		return mapped(http.StatusConflict, CodeGameOver)
	case errors.Is(err, model.ErrVikingsRemaining):
		return mapped(http.StatusConflict, CodeVikingsRemaining)

	// Actions
	case errors.Is(err, model.ErrActionOccupied):
		return mapped(http.StatusConflict, CodeActionOccupied)
	case errors.Is(err, model.ErrNotEnoughVikings):
		return mapped(http.StatusConflict, CodeNotEnoughVikings)
	case errors.Is(err, model.ErrMissingWeapon):
		return mapped(http.StatusConflict, CodeMissingWeapon)
	case errors.Is(err, model.ErrInsufficientResources):
		return mapped(http.StatusConflict, CodeInsufficientResources)
	case errors.Is(err, model.ErrIslandAlreadyExplored):
		return mapped(http.StatusConflict, CodeIslandExplored)

	// Risk
	case errors.Is(err, model.ErrRiskPending):
		return mapped(http.StatusConflict, CodeRiskPending)
	case errors.Is(err, model.ErrNoRiskPending):
		return mapped(http.StatusConflict, CodeNoRiskPending)
	case errors.Is(err, model.ErrRiskNotRolled):
		return mapped(http.StatusConflict, CodeRiskNotRolled)
	case errors.Is(err, model.ErrRiskAlreadyRolled):
		return mapped(http.StatusConflict, CodeRiskAlreadyRolled)
	case errors.Is(err, model.ErrInvalidRiskSpend):
		return mapped(http.StatusBadRequest, CodeInvalidRiskSpend)

	// Feast
	case errors.Is(err, model.ErrNotFood):
		return mapped(http.StatusUnprocessableEntity, CodeNotFood)
	case errors.Is(err, model.ErrFeastAdjacency):
		return mapped(http.StatusUnprocessableEntity, CodeFeastAdjacency)
	case errors.Is(err, model.ErrAlreadyServed):
		return mapped(http.StatusConflict, CodeAlreadyServed)
	case errors.Is(err, model.ErrFeastTableEmpty):
		return mapped(http.StatusConflict, CodeFeastTableEmpty)
	case errors.Is(err, model.ErrNotAnimal):
		return mapped(http.StatusUnprocessableEntity, CodeNotAnimal)
	case errors.Is(err, model.ErrCannotMilk):
		return mapped(http.StatusUnprocessableEntity, CodeCannotMilk)
	case errors.Is(err, model.ErrAlreadyMilked):
		return mapped(http.StatusConflict, CodeAlreadyMilked)
	case errors.Is(err, model.ErrInvalidHarvest):
		return mapped(http.StatusBadRequest, CodeInvalidHarvest)

	// Hints
	case errors.Is(err, model.ErrNoPlacement):
		return mapped(http.StatusUnprocessableEntity, CodeNoPlacement)
	case errors.Is(err, model.ErrUnknownStrategy):
		return mapped(http.StatusBadRequest, CodeUnknownStrategy)

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates an error for unknown routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewMethodNotAllowedError creates an error for a route hit with the wrong method
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, "Method not allowed"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
