package handler

import (
	"net/http"

	"github.com/mcoot/feastgame/internal/api/request"
	"github.com/mcoot/feastgame/internal/api/response"
	"github.com/mcoot/feastgame/internal/catalog"
	"github.com/mcoot/feastgame/internal/model"
)

// CatalogHandler serves the fixed game data and geometry helpers
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Tiles handles GET /api/v1/catalog/tiles
func (h *CatalogHandler) Tiles(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, catalog.Shapes())
}

// Actions handles GET /api/v1/catalog/actions
func (h *CatalogHandler) Actions(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, catalog.Actions())
}

// Islands handles GET /api/v1/catalog/islands
func (h *CatalogHandler) Islands(w http.ResponseWriter, _ *http.Request) {
	islands := catalog.Islands()
	resp := make([]response.Island, len(islands))
	for i, island := range islands {
		resp[i] = response.IslandFromCatalog(island)
	}
	response.OK(w, resp)
}

// Rotate handles POST /api/v1/geometry/rotate
func (h *CatalogHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	var req request.RotateRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	matrix, err := toMatrix(req.Matrix)
	if err != nil {
		WriteError(w, err)
		return
	}
	rotation := model.Rotation(req.Rotation)
	if !rotation.Valid() {
		WriteError(w, model.ErrInvalidRotation)
		return
	}

	response.OK(w, response.RotateResponse{Matrix: model.Rotate(matrix, rotation)})
}

// toMatrix checks that rows are non-empty, equally long and hold only 0 or 1
func toMatrix(rows [][]int) (model.Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, NewInvalidRequestError("matrix must not be empty")
	}
	m := make(model.Matrix, len(rows))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, NewInvalidRequestError("matrix must be rectangular")
		}
		m[i] = make([]model.Square, len(row))
		for j, v := range row {
			switch v {
			case 0:
				m[i][j] = model.Hole
			case 1:
				m[i][j] = model.Filled
			default:
				return nil, NewInvalidRequestError("matrix cells must be 0 or 1")
			}
		}
	}
	return m, nil
}
