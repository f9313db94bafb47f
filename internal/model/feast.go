package model

// FeastEntry is one food tile served at the banquet table
type FeastEntry struct {
	TileID  TileID  `json:"tile_id"`
	ShapeID ShapeID `json:"shape_id"`
	Color   Color   `json:"color"`
	Width   int     `json:"width"`
}

// FeastTable is the banquet row filled from left to right during a feast
type FeastTable struct {
	RequiredSize int          `json:"required_size"`
	Entries      []FeastEntry `json:"entries"`
	Milked       []TileID     `json:"milked,omitempty"` // cows milked this feast
}

// Filled returns the number of spaces covered by served tiles
func (t *FeastTable) Filled() int {
	total := 0
	for _, e := range t.Entries {
		total += e.Width
	}
	return total
}

// IsFull returns true once the required spaces are covered
func (t *FeastTable) IsFull() bool {
	return t.Filled() >= t.RequiredSize
}

// Shortfall returns the number of spaces left empty
func (t *FeastTable) Shortfall() int {
	if t.IsFull() {
		return 0
	}
	return t.RequiredSize - t.Filled()
}

// Serves reports whether an inventory tile is already on the table
func (t *FeastTable) Serves(id TileID) bool {
	for _, e := range t.Entries {
		if e.TileID == id {
			return true
		}
	}
	return false
}

// HasMilked reports whether a cow was already milked this feast
func (t *FeastTable) HasMilked(id TileID) bool {
	for _, m := range t.Milked {
		if m == id {
			return true
		}
	}
	return false
}

// HarvestKind is what an animal yields during the feast
type HarvestKind string

const (
	HarvestMilk HarvestKind = "milk" // cows only, animal kept
	HarvestMeat HarvestKind = "meat" // animal slaughtered
)

// Yield is what the surround and income scans produced across all surfaces
type Yield struct {
	Bonuses    []Resource          `json:"bonuses"`
	Income     int                 `json:"income"`
	PerSurface map[SurfaceID]Yield `json:"per_surface,omitempty"`
}

// FeastOutcome describes a resolved feast and the round transition after it
type FeastOutcome struct {
	Round     int       `json:"round"`
	Consumed  []TileID  `json:"consumed"`
	Filled    int       `json:"filled"`
	Required  int       `json:"required"`
	Penalty   int       `json:"penalty"`
	Yield     Yield     `json:"yield"`
	Bred      []ShapeID `json:"bred,omitempty"`
	NextRound int       `json:"next_round,omitempty"`
	GameOver  bool      `json:"game_over"`
}

// SurfaceScore is the penalty total left on one surface
type SurfaceScore struct {
	Surface SurfaceID `json:"surface"`
	Score   int       `json:"score"`
}

// ScoreCard is the end-of-game score breakdown
type ScoreCard struct {
	Surfaces     []SurfaceScore `json:"surfaces"`
	IslandVP     int            `json:"island_vp"`
	FeastPenalty int            `json:"feast_penalty"`
	Total        int            `json:"total"`
	Final        bool           `json:"final"`
}

// Clone returns an independent copy
func (t *FeastTable) Clone() *FeastTable {
	return &FeastTable{
		RequiredSize: t.RequiredSize,
		Entries:      append([]FeastEntry{}, t.Entries...),
		Milked:       append([]TileID(nil), t.Milked...),
	}
}
