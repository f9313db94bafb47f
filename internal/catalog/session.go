package catalog

import (
	"time"

	"github.com/mcoot/feastgame/internal/model"
)

// Defaults for a new session
const (
	DefaultRounds    = 7
	DefaultFeastSize = 12
	StartingVikings  = 6
	MaxVikings       = 12
)

// NewSession returns the starting state of a game lasting the given number of rounds
func NewSession(id model.SessionID, rounds int, now time.Time) *model.Session {
	inventory := make([]model.InventoryTile, 0, len(StartingInventory()))
	for _, shapeID := range StartingInventory() {
		inventory = append(inventory, NewTile(shapeID))
	}

	return &model.Session{
		ID:            id,
		Round:         1,
		TotalRounds:   rounds,
		Phase:         model.PhaseWork,
		ActiveColor:   model.RoundBlue,
		Resources:     StartingResources(),
		Inventory:     inventory,
		Home:          NewHomeSurface(),
		Islands:       []*model.Surface{},
		ActionsTaken:  []model.ActionMarker{},
		VikingsFree:   StartingVikings,
		VikingsTotal:  StartingVikings,
		ActiveSurface: model.HomeSurface,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
