// Package hint suggests where an inventory tile could go on a board.
package hint

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/mcoot/feastgame/internal/model"
	"github.com/mcoot/feastgame/internal/services/board"
)

// Strategy names
const (
	StrategyGreedy = "greedy"
	StrategyRandom = "random"

	DefaultStrategy = StrategyGreedy
)

var rotations = []model.Rotation{model.Rotate0, model.Rotate90, model.Rotate180, model.Rotate270}

// Candidate is one legal placement of a tile
type Candidate struct {
	Rotation model.Rotation `json:"rotation"`
	X        int            `json:"x"`
	Y        int            `json:"y"`
	Relief   int            `json:"relief"` // penalty points the placement removes
}

// Service enumerates legal placements and picks one with a named strategy
type Service struct {
	strategies map[string]Strategy
	logger     *slog.Logger
}

// New creates a new hint Service
func New(strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategies: strategies,
		logger:     logger.With(slog.String("component", "hint-service")),
	}
}

// Strategies returns the registered strategy names, sorted
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Candidates lists every legal placement of the shape on the surface,
// rotation by rotation in row-major order. Rotations that produce the same
// footprint as an earlier one are skipped.
func (s *Service) Candidates(surface *model.Surface, shape model.Shape) []Candidate {
	var out []Candidate
	var seen []model.Matrix

	for _, rotation := range rotations {
		rotated := model.Rotate(shape.Matrix, rotation)
		if containsMatrix(seen, rotated) {
			continue
		}
		seen = append(seen, rotated)

		for y := 0; y < surface.Grid.Height; y++ {
			for x := 0; x < surface.Grid.Width; x++ {
				if !board.CanPlace(surface.Grid, surface.Tiles, rotated, x, y, shape.Color).Valid {
					continue
				}
				out = append(out, Candidate{
					Rotation: rotation,
					X:        x,
					Y:        y,
					Relief:   relief(surface.Grid, rotated, x, y),
				})
			}
		}
	}
	return out
}

// Suggest picks a placement for the shape using the named strategy, or the
// default strategy when name is empty
func (s *Service) Suggest(surface *model.Surface, shape model.Shape, name string) (Candidate, error) {
	if name == "" {
		name = DefaultStrategy
	}
	strategy, ok := s.strategies[name]
	if !ok {
		return Candidate{}, fmt.Errorf("%q: %w", name, model.ErrUnknownStrategy)
	}

	candidates := s.Candidates(surface, shape)
	if len(candidates) == 0 {
		return Candidate{}, model.ErrNoPlacement
	}

	choice := strategy.Choose(surface, candidates)
	s.logger.Debug("placement suggested",
		slog.String("surface", string(surface.ID)),
		slog.String("shape", string(shape.ID)),
		slog.String("strategy", name),
		slog.Int("candidates", len(candidates)),
		slog.Int("x", choice.X),
		slog.Int("y", choice.Y),
	)
	return choice, nil
}

func relief(grid *model.Grid, rotated model.Matrix, x, y int) int {
	total := 0
	for _, sq := range rotated.Occupied() {
		total -= grid.At(x+sq.Col, y+sq.Row).Penalty
	}
	return total
}

func containsMatrix(list []model.Matrix, m model.Matrix) bool {
	for _, other := range list {
		if other.Equal(m) {
			return true
		}
	}
	return false
}

// Interface for dependency injection
type ServiceInterface interface {
	Candidates(surface *model.Surface, shape model.Shape) []Candidate
	Suggest(surface *model.Surface, shape model.Shape, name string) (Candidate, error)
	Strategies() []string
}

var _ ServiceInterface = (*Service)(nil)
