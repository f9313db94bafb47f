package request

// TakeActionRequest is the request body for taking an action
type TakeActionRequest struct {
	ActionID string `json:"action_id"`
}

// ResolveRiskRequest is the request body for resolving a hunt or raid
type ResolveRiskRequest struct {
	WeaponUsed   int `json:"weapon_used"`
	ModifierUsed int `json:"modifier_used"`
}

// SelectSurfaceRequest is the request body for choosing the active board
type SelectSurfaceRequest struct {
	Surface string `json:"surface"`
}

// PlacementRequest is the request body for checking or placing a tile
type PlacementRequest struct {
	TileID   string `json:"tile_id"`
	Surface  string `json:"surface,omitempty"` // active surface when empty
	Rotation int    `json:"rotation"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// SuggestRequest is the request body for asking where a tile could go
type SuggestRequest struct {
	TileID   string `json:"tile_id"`
	Surface  string `json:"surface,omitempty"`  // active surface when empty
	Strategy string `json:"strategy,omitempty"` // greedy when empty
}

// ServeRequest is the request body for putting food on the feast table
type ServeRequest struct {
	TileID string `json:"tile_id"`
}

// HarvestRequest is the request body for milking or slaughtering an animal
type HarvestRequest struct {
	TileID string `json:"tile_id"`
	Kind   string `json:"kind"`
}

// RotateRequest is the request body for rotating a matrix
type RotateRequest struct {
	Matrix   [][]int `json:"matrix"`
	Rotation int     `json:"rotation"`
}
