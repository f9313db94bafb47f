package model

import "errors"

// Common errors used across the application
var (
	// Placement errors; messages double as the user-facing reasons
	ErrOutOfBounds        = errors.New("Out of bounds")
	ErrOverlap            = errors.New("Overlaps existing tile")
	ErrCraftGoodsAdjacent = errors.New("Green cannot touch Green")
	ErrInvalidRotation    = errors.New("rotation must be 0, 90, 180 or 270")

	// Session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrSurfaceNotFound  = errors.New("board surface not found")
	ErrTileNotFound     = errors.New("tile not in inventory")
	ErrWrongPhase       = errors.New("not allowed in the current phase")
	ErrGameOver         = errors.New("game is over")
	ErrVikingsRemaining = errors.New("vikings still available for work")

	// Action errors
	ErrActionNotFound        = errors.New("action not found")
	ErrActionOccupied        = errors.New("action space is occupied")
	ErrNotEnoughVikings      = errors.New("not enough vikings")
	ErrMissingWeapon         = errors.New("required weapon missing")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrIslandAlreadyExplored = errors.New("island already explored")

	// Risk errors
	ErrRiskPending       = errors.New("a hunt or raid is awaiting resolution")
	ErrNoRiskPending     = errors.New("no hunt or raid in progress")
	ErrRiskNotRolled     = errors.New("die has not been rolled")
	ErrRiskAlreadyRolled = errors.New("die has already been rolled")
	ErrInvalidRiskSpend  = errors.New("invalid weapon or modifier spend")

	// Feast errors
	ErrNotFood         = errors.New("only food tiles can be served")
	ErrFeastAdjacency  = errors.New("food of the same color cannot touch")
	ErrAlreadyServed   = errors.New("tile is already on the table")
	ErrFeastTableEmpty = errors.New("feast table is empty")
	ErrNotAnimal       = errors.New("tile is not an animal")
	ErrCannotMilk      = errors.New("only cows can be milked")
	ErrAlreadyMilked   = errors.New("cow already milked this feast")
	ErrInvalidHarvest  = errors.New("harvest must be milk or meat")

	// Hint errors
	ErrNoPlacement     = errors.New("tile fits nowhere on this board")
	ErrUnknownStrategy = errors.New("unknown placement strategy")
)
