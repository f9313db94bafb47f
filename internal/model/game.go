package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// Phase is the current step of a round
type Phase string

const (
	PhaseWork     Phase = "work"     // placing vikings and tiles
	PhaseFeast    Phase = "feast"    // serving food at the banquet table
	PhaseGameOver Phase = "gameover" // final round's feast resolved
)

// RoundColor marks which set of action markers a round uses
type RoundColor string

const (
	RoundBlue   RoundColor = "blue"
	RoundYellow RoundColor = "yellow"
)

// Other returns the alternate round color
func (c RoundColor) Other() RoundColor {
	if c == RoundBlue {
		return RoundYellow
	}
	return RoundBlue
}

// ActionMarker records an action slot taken in a round
type ActionMarker struct {
	ActionID ActionID   `json:"action_id"`
	Color    RoundColor `json:"color"`
}

// PendingRisk is a hunt or raid awaiting its die roll and resolution
type PendingRisk struct {
	ActionID ActionID `json:"action_id"`
	Kind     RiskKind `json:"kind"`
	DieSize  int      `json:"die_size"`
	Roll     int      `json:"roll,omitempty"` // 0 until rolled
}

// Rolled returns true once the die has been rolled
func (p *PendingRisk) Rolled() bool {
	return p.Roll > 0
}

// Session is the complete state of one single-player game
type Session struct {
	ID            SessionID       `json:"id"`
	Round         int             `json:"round"` // 1-indexed
	TotalRounds   int             `json:"total_rounds"`
	Phase         Phase           `json:"phase"`
	ActiveColor   RoundColor      `json:"active_color"`
	Resources     Resources       `json:"resources"`
	Inventory     []InventoryTile `json:"inventory"`
	Home          *Surface        `json:"home"`
	Islands       []*Surface      `json:"islands"`
	ActionsTaken  []ActionMarker  `json:"actions_taken"`
	VikingsFree   int             `json:"vikings_available"`
	VikingsTotal  int             `json:"vikings_total"`
	ActiveSurface SurfaceID       `json:"active_surface"`
	Risk          *PendingRisk    `json:"risk,omitempty"`
	Feast         *FeastTable     `json:"feast,omitempty"`
	FeastPenalty  int             `json:"feast_penalty"` // accumulated, <= 0

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Surfaces returns the home board followed by every explored island
func (s *Session) Surfaces() []*Surface {
	out := make([]*Surface, 0, 1+len(s.Islands))
	out = append(out, s.Home)
	return append(out, s.Islands...)
}

// Surface looks up a surface by id
func (s *Session) Surface(id SurfaceID) (*Surface, error) {
	for _, surface := range s.Surfaces() {
		if surface.ID == id {
			return surface, nil
		}
	}
	return nil, ErrSurfaceNotFound
}

// Tile looks up an inventory tile by id, returning its index
func (s *Session) Tile(id TileID) (InventoryTile, int, error) {
	for i, t := range s.Inventory {
		if t.ID == id {
			return t, i, nil
		}
	}
	return InventoryTile{}, -1, ErrTileNotFound
}

// RemoveTile drops a tile from the inventory
func (s *Session) RemoveTile(id TileID) error {
	_, idx, err := s.Tile(id)
	if err != nil {
		return err
	}
	s.Inventory = append(s.Inventory[:idx], s.Inventory[idx+1:]...)
	return nil
}

// TakenCount returns how many markers occupy an action slot
func (s *Session) TakenCount(id ActionID) int {
	count := 0
	for _, m := range s.ActionsTaken {
		if m.ActionID == id {
			count++
		}
	}
	return count
}

// IsOver returns true once the final feast has been resolved
func (s *Session) IsOver() bool {
	return s.Phase == PhaseGameOver
}

// Clone returns a deep copy of the session state
func (s *Session) Clone() *Session {
	out := *s
	out.Resources = s.Resources.Clone()
	out.Inventory = append([]InventoryTile{}, s.Inventory...)
	out.Home = s.Home.Clone()
	out.Islands = make([]*Surface, len(s.Islands))
	for i, island := range s.Islands {
		out.Islands[i] = island.Clone()
	}
	out.ActionsTaken = append([]ActionMarker{}, s.ActionsTaken...)
	if s.Risk != nil {
		risk := *s.Risk
		out.Risk = &risk
	}
	if s.Feast != nil {
		out.Feast = s.Feast.Clone()
	}
	return &out
}
