package hint

import (
	"github.com/mcoot/feastgame/internal/dependencies/random"
	"github.com/mcoot/feastgame/internal/model"
)

// RandomStrategy picks any legal placement
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Choose returns a random candidate
func (s *RandomStrategy) Choose(_ *model.Surface, candidates []Candidate) Candidate {
	return candidates[s.random.Intn(len(candidates))]
}
