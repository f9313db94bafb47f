package hint

import "github.com/mcoot/feastgame/internal/model"

// Strategy picks one of the legal placements for a tile.
// Candidates are never empty and arrive in scan order.
type Strategy interface {
	Choose(surface *model.Surface, candidates []Candidate) Candidate
}
