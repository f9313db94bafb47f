package hint

import "github.com/mcoot/feastgame/internal/model"

// GreedyStrategy picks the placement that removes the most penalty points,
// preferring the earliest in scan order on ties
type GreedyStrategy struct{}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

// Choose returns the candidate with the highest relief
func (s *GreedyStrategy) Choose(_ *model.Surface, candidates []Candidate) Candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Relief > best.Relief {
			best = c
		}
	}
	return best
}
