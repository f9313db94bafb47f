package model

import "fmt"

// BonusKind discriminates the Bonus variant
type BonusKind uint8

const (
	BonusNone BonusKind = iota
	BonusResource
	BonusIncome
)

var bonusKindNames = map[BonusKind]string{
	BonusNone:     "none",
	BonusResource: "resource",
	BonusIncome:   "income",
}

func (k BonusKind) String() string {
	return bonusKindNames[k]
}

// MarshalText encodes the kind by name
func (k BonusKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *BonusKind) UnmarshalText(text []byte) error {
	for kind, name := range bonusKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown bonus kind %q", text)
}

// Bonus is the optional marker printed on a cell: a resource or an income step
type Bonus struct {
	Kind     BonusKind `json:"kind"`
	Resource Resource  `json:"resource,omitempty"`
}

// ResourceBonus returns a bonus yielding one r when surrounded
func ResourceBonus(r Resource) Bonus {
	return Bonus{Kind: BonusResource, Resource: r}
}

// IncomeBonus returns the income track marker
func IncomeBonus() Bonus {
	return Bonus{Kind: BonusIncome}
}

// Cell is one grid square. Only Covered changes after construction.
type Cell struct {
	X       int   `json:"x"`
	Y       int   `json:"y"`
	Covered bool  `json:"covered"`
	Bonus   Bonus `json:"bonus"`
	Penalty int   `json:"penalty,omitempty"` // 0 or -1
}

// BonusSpot places a resource bonus at a fixed cell of a layout
type BonusSpot struct {
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Resource Resource `json:"resource"`
}

// NoIncomeTrack disables the diagonal income track of a layout
const NoIncomeTrack = -1

// Layout describes how to build a grid
type Layout struct {
	Width        int
	Height       int
	Bonuses      []BonusSpot
	IncomeColumn int  // income cells sit at x == y + IncomeColumn; NoIncomeTrack for none
	Penalties    bool // -1 on every cell without a bonus
}

// Grid is a fixed-size board surface, Cells[y][x]
type Grid struct {
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	Cells        [][]Cell `json:"cells"`
	IncomeColumn int      `json:"income_column"`
}

// NewGrid builds an uncovered grid from a layout
func NewGrid(layout Layout) *Grid {
	bonuses := make(map[Position]Resource, len(layout.Bonuses))
	for _, b := range layout.Bonuses {
		bonuses[Position{X: b.X, Y: b.Y}] = b.Resource
	}

	cells := make([][]Cell, layout.Height)
	for y := range cells {
		cells[y] = make([]Cell, layout.Width)
		for x := range cells[y] {
			cell := Cell{X: x, Y: y}
			if r, ok := bonuses[Position{X: x, Y: y}]; ok {
				cell.Bonus = ResourceBonus(r)
			} else if layout.IncomeColumn != NoIncomeTrack && x == y+layout.IncomeColumn {
				cell.Bonus = IncomeBonus()
			}
			if layout.Penalties && cell.Bonus.Kind == BonusNone {
				cell.Penalty = -1
			}
			cells[y][x] = cell
		}
	}

	return &Grid{
		Width:        layout.Width,
		Height:       layout.Height,
		Cells:        cells,
		IncomeColumn: layout.IncomeColumn,
	}
}

// Position is an absolute cell coordinate on a grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds returns true if (x, y) lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y); the caller must check bounds
func (g *Grid) At(x, y int) *Cell {
	return &g.Cells[y][x]
}

// IsCovered returns true if (x, y) is on the grid and covered
func (g *Grid) IsCovered(x, y int) bool {
	return g.InBounds(x, y) && g.Cells[y][x].Covered
}

// IncomeOrigin returns the first cell of the income diagonal and whether the grid has one
func (g *Grid) IncomeOrigin() (Position, bool) {
	if g.IncomeColumn == NoIncomeTrack || !g.InBounds(g.IncomeColumn, 0) {
		return Position{}, false
	}
	return Position{X: g.IncomeColumn, Y: 0}, true
}

// CoveredCount returns the number of covered cells
func (g *Grid) CoveredCount() int {
	count := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Covered {
				count++
			}
		}
	}
	return count
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, len(g.Cells))
	for y, row := range g.Cells {
		cells[y] = append([]Cell(nil), row...)
	}
	return &Grid{
		Width:        g.Width,
		Height:       g.Height,
		Cells:        cells,
		IncomeColumn: g.IncomeColumn,
	}
}
