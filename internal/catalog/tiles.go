// Package catalog holds the fixed game data: tile shapes, board layouts,
// islands and action spaces.
package catalog

import (
	"sort"

	"github.com/google/uuid"

	"github.com/mcoot/feastgame/internal/model"
)

var shapes = buildShapes(
	// Orange (agricultural food)
	model.NewShape("peas", "Peas", model.ColorOrange, "#"),
	model.NewShape("flax", "Flax", model.ColorOrange, "##"),
	model.NewShape("beans", "Beans", model.ColorOrange, "###"),
	model.NewShape("grain", "Grain", model.ColorOrange, "####"),
	model.NewShape("cabbage", "Cabbage", model.ColorOrange, "##", "##"),
	model.NewShape("onions", "Onions", model.ColorOrange, "##"),
	model.NewShape("potatoes", "Potatoes", model.ColorOrange, "##", "##"),

	// Red (animal products)
	model.NewShape(model.ShapeMeat, "Meat", model.ColorRed, "##"),
	model.NewShape(model.ShapeMilk, "Milk", model.ColorRed, "###"),
	model.NewShape("mead", "Mead", model.ColorRed, "#"),
	model.NewShape("eggs", "Eggs", model.ColorRed, "#"),
	model.NewShape("salt_meat", "Salt Meat", model.ColorRed, "####"),

	// Green (craft goods)
	model.NewShape("oil", "Oil", model.ColorGreen, "##"),
	model.NewShape("hide", "Hide", model.ColorGreen, "##", "##"),
	model.NewShape("wool", "Wool", model.ColorGreen, "###", "###"),
	model.NewShape("linen", "Linen", model.ColorGreen, "####", "####"),
	model.NewShape("pelt", "Pelt", model.ColorGreen, "###"),

	// Blue (luxury goods)
	model.NewShape("silk", "Silk", model.ColorBlue, "##"),
	model.NewShape("spices", "Spices", model.ColorBlue, "##", "##"),
	model.NewShape("jewelry", "Jewelry", model.ColorBlue, "###", "###"),
	model.NewShape("chest", "Chest", model.ColorBlue, "####", "####"),
	model.NewShape("silver_hoard", "Silver Hoard", model.ColorBlue, "###", "###", "###"),
	model.NewShape("glass", "Glass", model.ColorBlue, "#", "#"),

	// Special
	model.NewShape("rune", "Rune", model.ColorSpecial, "#"),
	model.NewShape("ore_tile", "Ore", model.ColorSpecial, "#"),
	model.NewShape("stone_tile", "Stone", model.ColorSpecial, "##"),
	model.NewShape("longship", "Longship", model.ColorSpecial, "#####"),
	model.NewShape("knarr", "Knarr", model.ColorSpecial, "###"),

	// Animals
	model.NewShape(model.ShapeSheep, "Sheep", model.ColorSpecial, "##"),
	model.NewShape(model.ShapeCow, "Cow", model.ColorSpecial, "###", "###"),
	model.NewShape(model.ShapeHorse, "Horse", model.ColorSpecial, "##.", ".##"),

	// Buildings
	model.NewShape("shed", "Shed", model.ColorBuilding, "##"),
	model.NewShape("stone_house", "Stone House", model.ColorBuilding, "##", "##"),
	model.NewShape("longhouse", "Longhouse", model.ColorBuilding, "###"),
	model.NewShape("forest_hut", "Forest Hut", model.ColorBuilding, "#.", "##"),
	model.NewShape("wooden_house", "Wooden House", model.ColorBuilding, "####"),
)

func buildShapes(list ...model.Shape) map[model.ShapeID]model.Shape {
	out := make(map[model.ShapeID]model.Shape, len(list))
	for _, s := range list {
		out[s.ID] = s
	}
	return out
}

// Shape returns the catalog shape with the given id
func Shape(id model.ShapeID) (model.Shape, bool) {
	s, ok := shapes[id]
	if !ok {
		return model.Shape{}, false
	}
	s.Matrix = s.Matrix.Clone()
	return s, true
}

// MustShape returns a catalog shape, panicking on unknown ids.
// Only used with ids that are part of the catalog itself.
func MustShape(id model.ShapeID) model.Shape {
	s, ok := Shape(id)
	if !ok {
		panic("catalog: unknown shape " + string(id))
	}
	return s
}

// Shapes returns every shape sorted by color then id
func Shapes() []model.Shape {
	out := make([]model.Shape, 0, len(shapes))
	for id := range shapes {
		out = append(out, MustShape(id))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Color != out[j].Color {
			return out[i].Color < out[j].Color
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// NewTile returns a fresh inventory tile of a catalog shape
func NewTile(id model.ShapeID) model.InventoryTile {
	return model.InventoryTile{
		ID:    model.TileID(uuid.NewString()),
		Shape: MustShape(id),
	}
}
