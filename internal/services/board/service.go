package board

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/feastgame/internal/model"
)

// Service validates and commits tile placements on board surfaces
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Check rotates the shape and reports whether it could be placed with its
// top-left corner at (x, y). The surface is never modified.
func (s *Service) Check(surface *model.Surface, shape model.Shape, rotation model.Rotation, x, y int) (model.PlacementResult, model.Matrix, error) {
	if !rotation.Valid() {
		return model.PlacementResult{}, nil, model.ErrInvalidRotation
	}
	rotated := model.Rotate(shape.Matrix, rotation)
	return CanPlace(surface.Grid, surface.Tiles, rotated, x, y, shape.Color), rotated, nil
}

// Place validates the placement and commits it to the surface
func (s *Service) Place(surface *model.Surface, shape model.Shape, rotation model.Rotation, x, y int) (model.PlacedTile, error) {
	if !rotation.Valid() {
		return model.PlacedTile{}, model.ErrInvalidRotation
	}
	rotated := model.Rotate(shape.Matrix, rotation)
	if err := ValidatePlacement(surface.Grid, surface.Tiles, rotated, x, y, shape.Color); err != nil {
		return model.PlacedTile{}, err
	}

	tile := Commit(surface, shape, rotation, rotated, x, y)
	s.logger.Debug("tile committed",
		slog.String("surface", string(surface.ID)),
		slog.String("shape", string(shape.ID)),
		slog.Int("x", x),
		slog.Int("y", y),
		slog.Int("rotation", int(rotation)),
	)
	return tile, nil
}

// CanPlace decides whether the rotated matrix fits on the grid at (x, y).
// Checks run in order (bounds, overlap, craft-goods adjacency) and stop at the
// first failure. Holes in the matrix are ignored by every check.
func CanPlace(grid *model.Grid, tiles []model.PlacedTile, rotated model.Matrix, x, y int, color model.Color) model.PlacementResult {
	err := ValidatePlacement(grid, tiles, rotated, x, y, color)
	if err != nil {
		return model.PlacementResult{Valid: false, Reason: err.Error()}
	}
	return model.PlacementResult{Valid: true}
}

// ValidatePlacement is CanPlace reporting failures as sentinel errors:
// ErrOutOfBounds, ErrOverlap or ErrCraftGoodsAdjacent
func ValidatePlacement(grid *model.Grid, tiles []model.PlacedTile, rotated model.Matrix, x, y int, color model.Color) error {
	squares := rotated.Occupied()

	for _, sq := range squares {
		if !grid.InBounds(x+sq.Col, y+sq.Row) {
			return model.ErrOutOfBounds
		}
	}

	for _, sq := range squares {
		if grid.At(x+sq.Col, y+sq.Row).Covered {
			return model.ErrOverlap
		}
	}

	if color.IsCraftGoods() {
		taken := craftGoodsCells(tiles)
		for _, sq := range squares {
			cx, cy := x+sq.Col, y+sq.Row
			for _, d := range orthogonal {
				nx, ny := cx+d.X, cy+d.Y
				if !grid.InBounds(nx, ny) {
					continue
				}
				if taken[model.Position{X: nx, Y: ny}] {
					return model.ErrCraftGoodsAdjacent
				}
			}
		}
	}

	return nil
}

// IsPlacementError returns true if err is one of the validator's rejections
func IsPlacementError(err error) bool {
	return errors.Is(err, model.ErrOutOfBounds) ||
		errors.Is(err, model.ErrOverlap) ||
		errors.Is(err, model.ErrCraftGoodsAdjacent)
}

// Commit covers the cells under the rotated matrix and appends the new placed
// tile to the surface. The placement must already have been validated.
func Commit(surface *model.Surface, shape model.Shape, rotation model.Rotation, rotated model.Matrix, x, y int) model.PlacedTile {
	for _, sq := range rotated.Occupied() {
		surface.Grid.At(x+sq.Col, y+sq.Row).Covered = true
	}

	tile := model.PlacedTile{
		ID:       model.PlacedTileID(uuid.NewString()),
		ShapeID:  shape.ID,
		X:        x,
		Y:        y,
		Rotation: rotation,
		Color:    shape.Color,
		Matrix:   rotated.Clone(),
	}
	surface.Tiles = append(surface.Tiles, tile)
	return tile
}

var orthogonal = []model.Position{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// craftGoodsCells returns every absolute cell covered by a green placed tile
func craftGoodsCells(tiles []model.PlacedTile) map[model.Position]bool {
	cells := make(map[model.Position]bool)
	for _, t := range tiles {
		if !t.Color.IsCraftGoods() {
			continue
		}
		for _, sq := range t.Matrix.Occupied() {
			cells[model.Position{X: t.X + sq.Col, Y: t.Y + sq.Row}] = true
		}
	}
	return cells
}

// Interface for dependency injection
type ServiceInterface interface {
	Check(surface *model.Surface, shape model.Shape, rotation model.Rotation, x, y int) (model.PlacementResult, model.Matrix, error)
	Place(surface *model.Surface, shape model.Shape, rotation model.Rotation, x, y int) (model.PlacedTile, error)
}

var _ ServiceInterface = (*Service)(nil)
