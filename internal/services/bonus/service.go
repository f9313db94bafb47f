// Package bonus finds surrounded bonus cells and the income run on board surfaces.
package bonus

import (
	"log/slog"

	"github.com/mcoot/feastgame/internal/model"
)

// Service runs the feast-time scan over every board surface
type Service struct {
	logger *slog.Logger
}

// New creates a new bonus Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Scan aggregates surrounded bonuses and income across the surfaces, in order
func (s *Service) Scan(surfaces []*model.Surface) model.Yield {
	yield := model.Yield{
		Bonuses:    []model.Resource{},
		PerSurface: make(map[model.SurfaceID]model.Yield, len(surfaces)),
	}

	for _, surface := range surfaces {
		bonuses := SurroundedBonuses(surface.Grid)
		income := Income(surface.Grid)

		yield.Bonuses = append(yield.Bonuses, bonuses...)
		yield.Income += income
		yield.PerSurface[surface.ID] = model.Yield{Bonuses: bonuses, Income: income}

		s.logger.Debug("surface scanned",
			slog.String("surface", string(surface.ID)),
			slog.Int("bonuses", len(bonuses)),
			slog.Int("income", income),
		)
	}

	return yield
}

// SurroundedBonuses returns, in row-major order, the resource of every
// uncovered bonus cell whose eight neighbours are all covered. Neighbours off
// the grid count as covered. Income cells are never considered.
func SurroundedBonuses(grid *model.Grid) []model.Resource {
	found := []model.Resource{}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cell := grid.At(x, y)
			if cell.Bonus.Kind != model.BonusResource || cell.Covered {
				continue
			}
			if surrounded(grid, x, y) {
				found = append(found, cell.Bonus.Resource)
			}
		}
	}
	return found
}

func surrounded(grid *model.Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if grid.InBounds(nx, ny) && !grid.At(nx, ny).Covered {
				return false
			}
		}
	}
	return true
}

// Income walks the income diagonal from its origin and returns the length of
// the unbroken run of covered income cells
func Income(grid *model.Grid) int {
	origin, ok := grid.IncomeOrigin()
	if !ok {
		return 0
	}

	income := 0
	for x, y := origin.X, origin.Y; grid.InBounds(x, y); x, y = x+1, y+1 {
		cell := grid.At(x, y)
		if !cell.Covered || cell.Bonus.Kind != model.BonusIncome {
			break
		}
		income++
	}
	return income
}

// Interface for dependency injection
type ServiceInterface interface {
	Scan(surfaces []*model.Surface) model.Yield
}

var _ ServiceInterface = (*Service)(nil)
