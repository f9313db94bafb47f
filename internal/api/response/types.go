package response

import (
	"time"

	"github.com/mcoot/feastgame/internal/catalog"
	"github.com/mcoot/feastgame/internal/model"
	"github.com/mcoot/feastgame/internal/services/hint"
	"github.com/mcoot/feastgame/internal/services/scoring"
)

// Cell is one grid square in API responses
type Cell struct {
	Covered bool   `json:"covered"`
	Bonus   string `json:"bonus,omitempty"` // resource name, "income", or empty
	Penalty int    `json:"penalty,omitempty"`
}

// Surface represents a board surface in API responses
type Surface struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Width        int                `json:"width"`
	Height       int                `json:"height"`
	IncomeColumn int                `json:"income_column"`
	VP           int                `json:"vp,omitempty"`
	Cells        [][]Cell           `json:"cells"` // [y][x]
	Tiles        []model.PlacedTile `json:"tiles"`
	Score        int                `json:"score"`
}

// SurfaceFromModel converts a model.Surface
func SurfaceFromModel(s *model.Surface) Surface {
	cells := make([][]Cell, s.Grid.Height)
	for y, row := range s.Grid.Cells {
		cells[y] = make([]Cell, len(row))
		for x, c := range row {
			cells[y][x] = Cell{Covered: c.Covered, Bonus: bonusName(c.Bonus), Penalty: c.Penalty}
		}
	}
	return Surface{
		ID:           string(s.ID),
		Name:         s.Name,
		Width:        s.Grid.Width,
		Height:       s.Grid.Height,
		IncomeColumn: s.Grid.IncomeColumn,
		VP:           s.VP,
		Cells:        cells,
		Tiles:        s.Tiles,
		Score:        scoring.Score(s.Grid),
	}
}

func bonusName(b model.Bonus) string {
	switch b.Kind {
	case model.BonusResource:
		return string(b.Resource)
	case model.BonusIncome:
		return "income"
	}
	return ""
}

// Session is the full session state in API responses
type Session struct {
	ID            string                `json:"id"`
	Round         int                   `json:"round"`
	TotalRounds   int                   `json:"total_rounds"`
	Phase         string                `json:"phase"`
	ActiveColor   string                `json:"active_color"`
	Resources     model.Resources       `json:"resources"`
	Inventory     []model.InventoryTile `json:"inventory"`
	Surfaces      []Surface             `json:"surfaces"` // home first
	ActiveSurface string                `json:"active_surface"`
	ActionsTaken  []model.ActionMarker  `json:"actions_taken"`
	VikingsFree   int                   `json:"vikings_available"`
	VikingsTotal  int                   `json:"vikings_total"`
	Risk          *model.PendingRisk    `json:"risk,omitempty"`
	Feast         *Feast                `json:"feast,omitempty"`
	FeastPenalty  int                   `json:"feast_penalty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	surfaces := make([]Surface, 0, 1+len(s.Islands))
	for _, surface := range s.Surfaces() {
		surfaces = append(surfaces, SurfaceFromModel(surface))
	}

	resp := Session{
		ID:            string(s.ID),
		Round:         s.Round,
		TotalRounds:   s.TotalRounds,
		Phase:         string(s.Phase),
		ActiveColor:   string(s.ActiveColor),
		Resources:     s.Resources,
		Inventory:     s.Inventory,
		Surfaces:      surfaces,
		ActiveSurface: string(s.ActiveSurface),
		ActionsTaken:  s.ActionsTaken,
		VikingsFree:   s.VikingsFree,
		VikingsTotal:  s.VikingsTotal,
		Risk:          s.Risk,
		FeastPenalty:  s.FeastPenalty,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.Feast != nil {
		feast := FeastFromModel(s.Feast)
		resp.Feast = &feast
	}
	return resp
}

// Feast represents the feast table
type Feast struct {
	RequiredSize int                `json:"required_size"`
	Filled       int                `json:"filled"`
	Shortfall    int                `json:"shortfall"`
	Entries      []model.FeastEntry `json:"entries"`
	Milked       []model.TileID     `json:"milked,omitempty"`
}

// FeastFromModel converts a model.FeastTable
func FeastFromModel(t *model.FeastTable) Feast {
	return Feast{
		RequiredSize: t.RequiredSize,
		Filled:       t.Filled(),
		Shortfall:    t.Shortfall(),
		Entries:      t.Entries,
		Milked:       t.Milked,
	}
}

// SessionList is the response for listing sessions
type SessionList struct {
	Sessions []model.SessionID `json:"sessions"`
}

// ActionResponse is the response for taking an action
type ActionResponse struct {
	Outcome model.ActionOutcome `json:"outcome"`
	Session Session             `json:"session"`
}

// RiskRolledResponse is the response for rolling the risk die
type RiskRolledResponse struct {
	Risk    model.PendingRisk `json:"risk"`
	Session Session           `json:"session"`
}

// RiskResolvedResponse is the response for resolving a hunt or raid
type RiskResolvedResponse struct {
	Outcome model.RiskOutcome `json:"outcome"`
	Session Session           `json:"session"`
}

// PlacementCheckResponse is the response for a dry-run placement
type PlacementCheckResponse struct {
	Valid  bool         `json:"valid"`
	Reason string       `json:"reason,omitempty"`
	Matrix model.Matrix `json:"matrix"`
}

// PlacementResponse is the response for a committed placement
type PlacementResponse struct {
	Tile    model.PlacedTile `json:"tile"`
	Session Session          `json:"session"`
}

// Suggestion is a suggested placement and the strategy that chose it
type Suggestion struct {
	hint.Candidate
	Strategy string `json:"strategy"`
}

// FeastEntryResponse is the response for serving or removing food
type FeastEntryResponse struct {
	Entry   model.FeastEntry `json:"entry"`
	Session Session          `json:"session"`
}

// HarvestResponse is the response for harvesting an animal
type HarvestResponse struct {
	Tile    model.InventoryTile `json:"tile"`
	Session Session             `json:"session"`
}

// FeastFinishedResponse is the response for finishing a feast
type FeastFinishedResponse struct {
	Outcome model.FeastOutcome `json:"outcome"`
	Session Session            `json:"session"`
}

// RotateResponse is the response for rotating a matrix
type RotateResponse struct {
	Matrix model.Matrix `json:"matrix"`
}

// Island describes an explorable island in the catalog
type Island struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	VP           int               `json:"vp"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	IncomeColumn int               `json:"income_column"`
	Bonuses      []model.BonusSpot `json:"bonuses"`
}

// IslandFromCatalog converts a catalog.Island
func IslandFromCatalog(i catalog.Island) Island {
	return Island{
		ID:           string(i.ID),
		Name:         i.Name,
		VP:           i.VP,
		Width:        i.Layout.Width,
		Height:       i.Layout.Height,
		IncomeColumn: i.Layout.IncomeColumn,
		Bonuses:      i.Layout.Bonuses,
	}
}

// Health is the response of the health check
type Health struct {
	Status string `json:"status"`
}
