package scoring

import (
	"log/slog"

	"github.com/mcoot/feastgame/internal/model"
)

// Policy selects what counts towards a session's score
type Policy struct {
	IncludeIslands bool // score penalties left on explored islands
	IslandVP       bool // add each explored island's victory points
	FeastPenalties bool // house rule: add -1 for every empty feast table space
}

// DefaultPolicy scores the home board only
func DefaultPolicy() Policy {
	return Policy{
		IncludeIslands: false,
		IslandVP:       false,
		FeastPenalties: false,
	}
}

// Service provides scoring functionality for board surfaces
type Service struct {
	policy Policy
	logger *slog.Logger
}

// New creates a new ScoringService
func New(policy Policy, logger *slog.Logger) *Service {
	return &Service{
		policy: policy,
		logger: logger,
	}
}

// Policy returns the scoring policy in use
func (s *Service) Policy() Policy {
	return s.policy
}

// Score sums the penalties of every uncovered cell on the grid
func Score(grid *model.Grid) int {
	total := 0
	for _, row := range grid.Cells {
		for _, cell := range row {
			if !cell.Covered {
				total += cell.Penalty
			}
		}
	}
	return total
}

// ScoreSession builds the score breakdown of a session under the service's policy
func (s *Service) ScoreSession(session *model.Session) model.ScoreCard {
	card := model.ScoreCard{
		Surfaces: []model.SurfaceScore{},
		Final:    session.IsOver(),
	}

	surfaces := []*model.Surface{session.Home}
	if s.policy.IncludeIslands {
		surfaces = session.Surfaces()
	}
	for _, surface := range surfaces {
		score := Score(surface.Grid)
		card.Surfaces = append(card.Surfaces, model.SurfaceScore{Surface: surface.ID, Score: score})
		card.Total += score
	}

	if s.policy.IslandVP {
		for _, island := range session.Islands {
			card.IslandVP += island.VP
		}
		card.Total += card.IslandVP
	}

	if s.policy.FeastPenalties {
		card.FeastPenalty = session.FeastPenalty
		card.Total += card.FeastPenalty
	}

	if card.Final {
		s.logger.Info("final score",
			slog.String("session_id", string(session.ID)),
			slog.Int("total", card.Total),
		)
	}

	return card
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreSession(session *model.Session) model.ScoreCard
	Policy() Policy
}

var _ ServiceInterface = (*Service)(nil)
