package model

// Color is the goods category of a tile
type Color string

const (
	ColorOrange   Color = "orange"   // agricultural food
	ColorRed      Color = "red"      // animal products (food)
	ColorGreen    Color = "green"    // craft goods
	ColorBlue     Color = "blue"     // luxury goods
	ColorSpecial  Color = "special"  // ore, stone, ships, animals
	ColorBuilding Color = "building" // sheds and houses
)

// IsFood returns true for the two colors that can be served at the feast
func (c Color) IsFood() bool {
	return c == ColorOrange || c == ColorRed
}

// IsCraftGoods returns true for the color that may not touch itself on a board
func (c Color) IsCraftGoods() bool {
	return c == ColorGreen
}

// ShapeID identifies a tile shape in the catalog
type ShapeID string

// Shape is an immutable tile template
type Shape struct {
	ID     ShapeID `json:"id"`
	Name   string  `json:"name"`
	Color  Color   `json:"color"`
	Matrix Matrix  `json:"matrix"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

// NewShape builds a shape whose nominal size matches its unrotated matrix
func NewShape(id ShapeID, name string, color Color, rows ...string) Shape {
	m := ParseMatrix(rows...)
	return Shape{
		ID:     id,
		Name:   name,
		Color:  color,
		Matrix: m,
		Width:  m.Cols(),
		Height: m.Rows(),
	}
}

// IsAnimal returns true for livestock shapes
func (s Shape) IsAnimal() bool {
	switch s.ID {
	case ShapeSheep, ShapeCow, ShapeHorse:
		return true
	}
	return false
}

// Shape ids referenced by game rules
const (
	ShapeSheep ShapeID = "sheep"
	ShapeCow   ShapeID = "cow"
	ShapeHorse ShapeID = "horse"
	ShapeMeat  ShapeID = "meat"
	ShapeMilk  ShapeID = "milk"
)

// TileID identifies one tile held in the inventory
type TileID string

// InventoryTile is a shape the player holds but has not placed
type InventoryTile struct {
	ID    TileID `json:"id"`
	Shape Shape  `json:"shape"`
}

// PlacedTileID identifies a committed placement
type PlacedTileID string

// PlacedTile is a shape committed to a surface. Matrix is the rotated footprint
// anchored with its top-left corner at (X, Y).
type PlacedTile struct {
	ID       PlacedTileID `json:"id"`
	ShapeID  ShapeID      `json:"shape_id"`
	X        int          `json:"x"`
	Y        int          `json:"y"`
	Rotation Rotation     `json:"rotation"`
	Color    Color        `json:"color"`
	Matrix   Matrix       `json:"matrix"`
}

// Occupies reports whether the tile covers the absolute grid cell (x, y)
func (t PlacedTile) Occupies(x, y int) bool {
	return t.Matrix.At(y-t.Y, x-t.X) == Filled
}

// PlacementResult is the outcome of a legality check
type PlacementResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
