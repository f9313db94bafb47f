package model

// SurfaceID identifies a board surface within a session
type SurfaceID string

// HomeSurface is the id of the player's home board
const HomeSurface SurfaceID = "home"

// Surface is one grid plus the tiles committed to it: the home board or an island
type Surface struct {
	ID    SurfaceID    `json:"id"`
	Name  string       `json:"name"`
	Grid  *Grid        `json:"grid"`
	Tiles []PlacedTile `json:"tiles"`
	VP    int          `json:"vp,omitempty"` // victory points for exploring an island
}

// NewSurface creates an empty surface from a layout
func NewSurface(id SurfaceID, name string, layout Layout, vp int) *Surface {
	return &Surface{
		ID:    id,
		Name:  name,
		Grid:  NewGrid(layout),
		Tiles: []PlacedTile{},
		VP:    vp,
	}
}

// IsHome returns true for the home board
func (s *Surface) IsHome() bool {
	return s.ID == HomeSurface
}

// TileAt returns the placed tile covering (x, y), or nil
func (s *Surface) TileAt(x, y int) *PlacedTile {
	for i := range s.Tiles {
		if s.Tiles[i].Occupies(x, y) {
			return &s.Tiles[i]
		}
	}
	return nil
}

// Clone returns an independent copy. Placed tile matrices are shared since
// they never change after placement.
func (s *Surface) Clone() *Surface {
	out := *s
	out.Grid = s.Grid.Clone()
	out.Tiles = append([]PlacedTile{}, s.Tiles...)
	return &out
}
