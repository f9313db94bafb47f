package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/feastgame/internal/model"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"placement bounds", model.ErrOutOfBounds, http.StatusUnprocessableEntity, CodeInvalidPlacement, "Out of bounds"},
		{"placement overlap", model.ErrOverlap, http.StatusUnprocessableEntity, CodeInvalidPlacement, "Overlaps existing tile"},
		{"placement green", model.ErrCraftGoodsAdjacent, http.StatusUnprocessableEntity, CodeInvalidPlacement, "Green cannot touch Green"},
		{"session missing", model.ErrSessionNotFound, http.StatusNotFound, CodeSessionNotFound, "session not found"},
		{"wrapped keeps detail", fmt.Errorf("need 3, have 1: %w", model.ErrNotEnoughVikings), http.StatusConflict, CodeNotEnoughVikings, "need 3, have 1: not enough vikings"},
		{"rotation", model.ErrInvalidRotation, http.StatusBadRequest, CodeInvalidRotation, model.ErrInvalidRotation.Error()},
		{"feast colors", model.ErrFeastAdjacency, http.StatusUnprocessableEntity, CodeFeastAdjacency, model.ErrFeastAdjacency.Error()},
		{"invalid request", NewInvalidRequestError("bad body"), http.StatusBadRequest, CodeInvalidRequest, "bad body"},
		{"unknown error hidden", errors.New("boom"), http.StatusInternalServerError, CodeInternalError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}

func TestEverySentinelIsMapped(t *testing.T) {
	sentinels := []error{
		model.ErrSurfaceNotFound, model.ErrTileNotFound, model.ErrWrongPhase, model.ErrGameOver,
		model.ErrVikingsRemaining, model.ErrActionNotFound, model.ErrActionOccupied,
		model.ErrNotEnoughVikings, model.ErrMissingWeapon, model.ErrInsufficientResources,
		model.ErrIslandAlreadyExplored, model.ErrRiskPending, model.ErrNoRiskPending,
		model.ErrRiskNotRolled, model.ErrRiskAlreadyRolled, model.ErrInvalidRiskSpend,
		model.ErrNotFood, model.ErrAlreadyServed, model.ErrFeastTableEmpty, model.ErrNotAnimal,
		model.ErrCannotMilk, model.ErrAlreadyMilked, model.ErrInvalidHarvest,
		model.ErrNoPlacement, model.ErrUnknownStrategy,
	}
	for _, err := range sentinels {
		assert.NotEqual(t, http.StatusInternalServerError, Status(err), err.Error())
	}
}
