package catalog

import "github.com/mcoot/feastgame/internal/model"

// Home board dimensions
const (
	HomeWidth  = 13
	HomeHeight = 7
)

// HomeLayout returns the layout of the player's home board
func HomeLayout() model.Layout {
	return model.Layout{
		Width:  HomeWidth,
		Height: HomeHeight,
		Bonuses: []model.BonusSpot{
			{X: 2, Y: 2, Resource: model.ResourceMead},
			{X: 4, Y: 4, Resource: model.ResourceRune},
			{X: 6, Y: 1, Resource: model.ResourceSilver},
			{X: 8, Y: 5, Resource: model.ResourceStone},
			{X: 10, Y: 3, Resource: model.ResourceOre},
		},
		IncomeColumn: 3,
		Penalties:    true,
	}
}

// Island describes an explorable island board
type Island struct {
	ID     model.SurfaceID `json:"id"`
	Name   string          `json:"name"`
	VP     int             `json:"vp"`
	Layout model.Layout    `json:"-"`
}

// Island ids
const (
	IslandFaroe   model.SurfaceID = "faroe"
	IslandIceland model.SurfaceID = "iceland"
)

var islands = []Island{
	{
		ID:   IslandFaroe,
		Name: "Faroe Islands",
		VP:   2,
		Layout: model.Layout{
			Width:  8,
			Height: 5,
			Bonuses: []model.BonusSpot{
				{X: 1, Y: 1, Resource: model.ResourceSilver},
				{X: 4, Y: 3, Resource: model.ResourceOre},
				{X: 6, Y: 2, Resource: model.ResourceWool},
			},
			IncomeColumn: 2,
			Penalties:    true,
		},
	},
	{
		ID:   IslandIceland,
		Name: "Iceland",
		VP:   6,
		Layout: model.Layout{
			Width:  9,
			Height: 6,
			Bonuses: []model.BonusSpot{
				{X: 2, Y: 2, Resource: model.ResourceMead},
				{X: 5, Y: 1, Resource: model.ResourceStone},
				{X: 7, Y: 4, Resource: model.ResourcePelt},
			},
			IncomeColumn: 4,
			Penalties:    true,
		},
	},
}

// LookupIsland returns the island with the given id
func LookupIsland(id model.SurfaceID) (Island, bool) {
	for _, island := range islands {
		if island.ID == id {
			return island, true
		}
	}
	return Island{}, false
}

// Islands returns every explorable island
func Islands() []Island {
	return append([]Island(nil), islands...)
}

// NewSurface creates a fresh board surface for the island
func (i Island) NewSurface() *model.Surface {
	return model.NewSurface(i.ID, i.Name, i.Layout, i.VP)
}

// NewHomeSurface creates a fresh home board
func NewHomeSurface() *model.Surface {
	return model.NewSurface(model.HomeSurface, "Home", HomeLayout(), 0)
}
