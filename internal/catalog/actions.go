package catalog

import "github.com/mcoot/feastgame/internal/model"

type res = model.Resources

var actions = []model.Action{
	// 1 viking
	{ID: "prod_wood", Name: "Lumberjack", VikingCost: 1, Category: model.CategoryProduction,
		Description: "Gain 1 Wood", Effect: model.Effect{Gain: res{model.ResourceWood: 1}}},
	{ID: "gather_wood", Name: "Gather Wood", VikingCost: 1, Category: model.CategoryProduction,
		Description: "Gain 1 Wood", Effect: model.Effect{Gain: res{model.ResourceWood: 1}}},
	{ID: "prod_stone", Name: "Quarry", VikingCost: 1, Category: model.CategoryProduction,
		Description: "Gain 1 Stone", Effect: model.Effect{Gain: res{model.ResourceStone: 1}}},
	{ID: "fish", Name: "Fishing", VikingCost: 1, Category: model.CategoryProduction,
		Description: "Gain 1 Stockfish (Red)", Effect: model.Effect{Tiles: []model.ShapeID{model.ShapeMeat}}},
	{ID: "produce_mead", Name: "Beehive", VikingCost: 1, Category: model.CategoryProduction,
		Description: "Gain 1 Mead (Red)", Effect: model.Effect{Tiles: []model.ShapeID{"mead"}}},
	{ID: "build_shed", Name: "Build Shed", VikingCost: 1, Category: model.CategoryProduction,
		Description: "Pay 1 Wood -> Gain Shed",
		Effect:      model.Effect{Pay: res{model.ResourceWood: 1}, Tiles: []model.ShapeID{"shed"}}},
	{ID: "weekly_market", Name: "Weekly Market", VikingCost: 1, Category: model.CategoryTrade,
		Description: "Gain 1 Spice (Blue Tile)", Effect: model.Effect{Tiles: []model.ShapeID{"spices"}}},
	{ID: "sailors_guild", Name: "Sailor's Guild", VikingCost: 1, Category: model.CategoryProduction,
		Description: "Gain 1 Spear", Effect: model.Effect{Gain: res{model.ResourceSpear: 1}}},

	// 2 vikings
	{ID: "craft_hide", Name: "Tanner", VikingCost: 2, Category: model.CategoryProduction,
		Description: "Gain 1 Hide (Green)", Effect: model.Effect{Tiles: []model.ShapeID{"hide"}}},
	{ID: "buy_sheep", Name: "Sheep Market", VikingCost: 2, Category: model.CategoryTrade,
		Description: "Gain 1 Sheep", Effect: model.Effect{Tiles: []model.ShapeID{model.ShapeSheep}}},
	{ID: "upgrade_1", Name: "Blacksmith", VikingCost: 2, Category: model.CategoryTrade,
		Description: "Upgrade 1 Green -> Blue", Effect: model.Effect{Tiles: []model.ShapeID{"silk"}}},
	{ID: "mountain_strip", Name: "Mining", VikingCost: 2, Category: model.CategoryMountain,
		Description: "Gain 1 Ore + 1 Silver",
		Effect:      model.Effect{Gain: res{model.ResourceOre: 1, model.ResourceSilver: 1}}},
	{ID: "store_ore", Name: "Store Ore", VikingCost: 2, Category: model.CategoryProduction,
		Description: "Gain 2 Ore", Effect: model.Effect{Gain: res{model.ResourceOre: 2}}},
	{ID: "whaling", Name: "Whaling", VikingCost: 2, Category: model.CategoryProduction,
		Description: "Risk: Roll D8 (Requires Spear/Ship). Reward: Meat + Oil + Bone + Skin",
		Risk: &model.Risk{Kind: model.RiskHunt, RequiredWeapon: model.ResourceSpear,
			Success: []model.ShapeID{model.ShapeMeat, "oil", "ore_tile", "hide"}}},
	{ID: "knarr", Name: "Build Knarr", VikingCost: 2, Category: model.CategoryProduction,
		Description: "Pay 2 Wood -> Gain Knarr",
		Effect:      model.Effect{Pay: res{model.ResourceWood: 2}, Tiles: []model.ShapeID{"knarr"}}},
	{ID: "weapon_smith", Name: "Weaponsmith", VikingCost: 2, Category: model.CategoryProduction,
		Description: "Gain 1 Sword + 1 Spear",
		Effect:      model.Effect{Gain: res{model.ResourceLongsword: 1, model.ResourceSpear: 1}}},
	{ID: "build_stone_house", Name: "Build Stone House", VikingCost: 2, Category: model.CategoryProduction,
		Description: "Pay 2 Stone -> Gain Stone House",
		Effect:      model.Effect{Pay: res{model.ResourceStone: 2}, Tiles: []model.ShapeID{"stone_house"}}},
	{ID: "build_longhouse", Name: "Build Longhouse", VikingCost: 2, Category: model.CategoryProduction,
		Description: "Pay 2 Wood -> Gain Longhouse",
		Effect:      model.Effect{Pay: res{model.ResourceWood: 2}, Tiles: []model.ShapeID{"longhouse"}}},
	{ID: "build_forest_hut", Name: "Build Forest Hut", VikingCost: 2, Category: model.CategoryProduction,
		Description: "Pay 2 Wood -> Gain Forest Hut",
		Effect:      model.Effect{Pay: res{model.ResourceWood: 2}, Tiles: []model.ShapeID{"forest_hut"}}},

	// 3 vikings
	{ID: "hunting_game", Name: "Hunting", VikingCost: 3, Category: model.CategoryProduction,
		Description: "Risk: Roll D8 (Requires Bow). Reward: Meat + Hide",
		Risk: &model.Risk{Kind: model.RiskHunt, RequiredWeapon: model.ResourceBow,
			Success: []model.ShapeID{model.ShapeMeat, "hide"}}},
	{ID: "buy_chest", Name: "Overseas", VikingCost: 3, Category: model.CategoryTrade,
		Description: "Pay 1 Silver -> Gain Chest (Blue)",
		Effect:      model.Effect{Pay: res{model.ResourceSilver: 1}, Tiles: []model.ShapeID{"chest"}}},
	{ID: "craft_ship", Name: "Shipbuilding", VikingCost: 3, Category: model.CategoryProduction,
		Description: "Gain 1 Longship", Effect: model.Effect{Tiles: []model.ShapeID{"longship"}}},
	{ID: "explore_faroe", Name: "Explore Faroe", VikingCost: 3, Category: model.CategoryExploration,
		Description: "Unlock Faroe Islands Board", Effect: model.Effect{Unlock: IslandFaroe}},
	{ID: "buy_cow", Name: "Cattle Market", VikingCost: 3, Category: model.CategoryTrade,
		Description: "Gain 1 Cow", Effect: model.Effect{Tiles: []model.ShapeID{model.ShapeCow}}},
	{ID: "build_wooden_house", Name: "Build Wooden House", VikingCost: 3, Category: model.CategoryProduction,
		Description: "Pay 3 Wood -> Gain Wooden House",
		Effect:      model.Effect{Pay: res{model.ResourceWood: 3}, Tiles: []model.ShapeID{"wooden_house"}}},

	// 4 vikings
	{ID: "pillage", Name: "Pillaging", VikingCost: 4, Category: model.CategorySpecial,
		Description: "Risk: Roll D12 + Sword + Vikings. Reward: 2 Blue Tiles",
		Risk: &model.Risk{Kind: model.RiskRaid,
			Success: []model.ShapeID{"silk", "glass", "stone_tile"}}},
	{ID: "explore_iceland", Name: "Explore Iceland", VikingCost: 4, Category: model.CategoryExploration,
		Description: "Unlock Iceland Board", Effect: model.Effect{Unlock: IslandIceland}},
	{ID: "emigrate", Name: "Emigration", VikingCost: 4, Category: model.CategorySpecial,
		Description: "Pay Silver -> Remove points"},
}

// Action returns the action space with the given id
func Action(id model.ActionID) (model.Action, bool) {
	for _, a := range actions {
		if a.ID == id {
			return a, true
		}
	}
	return model.Action{}, false
}

// Actions returns every action space in board order
func Actions() []model.Action {
	return append([]model.Action(nil), actions...)
}

// StartingResources returns the pool a new session begins with
func StartingResources() model.Resources {
	return model.Resources{
		model.ResourceWood:   1,
		model.ResourceStone:  1,
		model.ResourceSilver: 2,
		model.ResourceBow:    1,
	}
}

// StartingInventory returns the shapes a new session begins with
func StartingInventory() []model.ShapeID {
	return []model.ShapeID{"mead", "beans", "peas", "flax"}
}
