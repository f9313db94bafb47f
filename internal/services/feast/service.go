// Package feast runs the end-of-round banquet: serving food, harvesting
// animals, collecting board yields and advancing to the next round.
package feast

import (
	"log/slog"

	"github.com/mcoot/feastgame/internal/catalog"
	"github.com/mcoot/feastgame/internal/model"
	"github.com/mcoot/feastgame/internal/services/bonus"
)

// Service drives the feast phase of a session
type Service struct {
	bonus  bonus.ServiceInterface
	logger *slog.Logger
}

// New creates a new feast Service
func New(bonus bonus.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		bonus:  bonus,
		logger: logger,
	}
}

// Start ends the work phase and lays an empty table of the given size.
// Every viking must have been put to work first.
func (s *Service) Start(session *model.Session, size int) error {
	if session.IsOver() {
		return model.ErrGameOver
	}
	if session.Phase != model.PhaseWork {
		return model.ErrWrongPhase
	}
	if session.Risk != nil {
		return model.ErrRiskPending
	}
	if session.VikingsFree > 0 {
		return model.ErrVikingsRemaining
	}

	session.Phase = model.PhaseFeast
	session.Feast = &model.FeastTable{
		RequiredSize: size,
		Entries:      []model.FeastEntry{},
	}
	s.logger.Info("feast started",
		slog.String("session_id", string(session.ID)),
		slog.Int("round", session.Round),
	)
	return nil
}

// Serve puts an inventory food tile at the right end of the table. Orange may
// not follow orange and red may not follow red.
func (s *Service) Serve(session *model.Session, id model.TileID) (model.FeastEntry, error) {
	table, err := feastTable(session)
	if err != nil {
		return model.FeastEntry{}, err
	}
	tile, _, err := session.Tile(id)
	if err != nil {
		return model.FeastEntry{}, err
	}
	if table.Serves(id) {
		return model.FeastEntry{}, model.ErrAlreadyServed
	}
	if !tile.Shape.Color.IsFood() {
		return model.FeastEntry{}, model.ErrNotFood
	}
	if n := len(table.Entries); n > 0 && table.Entries[n-1].Color == tile.Shape.Color {
		return model.FeastEntry{}, model.ErrFeastAdjacency
	}

	entry := model.FeastEntry{
		TileID:  tile.ID,
		ShapeID: tile.Shape.ID,
		Color:   tile.Shape.Color,
		Width:   tile.Shape.Width,
	}
	table.Entries = append(table.Entries, entry)
	return entry, nil
}

// Unserve takes the rightmost tile back off the table
func (s *Service) Unserve(session *model.Session) (model.FeastEntry, error) {
	table, err := feastTable(session)
	if err != nil {
		return model.FeastEntry{}, err
	}
	n := len(table.Entries)
	if n == 0 {
		return model.FeastEntry{}, model.ErrFeastTableEmpty
	}

	entry := table.Entries[n-1]
	table.Entries = table.Entries[:n-1]
	return entry, nil
}

// Harvest milks a cow, keeping it, or slaughters any animal for meat.
// Each cow gives milk once per feast. Returns the produced tile.
func (s *Service) Harvest(session *model.Session, id model.TileID, kind model.HarvestKind) (model.InventoryTile, error) {
	table, err := feastTable(session)
	if err != nil {
		return model.InventoryTile{}, err
	}
	animal, _, err := session.Tile(id)
	if err != nil {
		return model.InventoryTile{}, err
	}
	if !animal.Shape.IsAnimal() {
		return model.InventoryTile{}, model.ErrNotAnimal
	}

	var product model.InventoryTile
	switch kind {
	case model.HarvestMilk:
		if animal.Shape.ID != model.ShapeCow {
			return model.InventoryTile{}, model.ErrCannotMilk
		}
		if table.HasMilked(id) {
			return model.InventoryTile{}, model.ErrAlreadyMilked
		}
		table.Milked = append(table.Milked, id)
		product = catalog.NewTile(model.ShapeMilk)
	case model.HarvestMeat:
		if err := session.RemoveTile(id); err != nil {
			return model.InventoryTile{}, err
		}
		product = catalog.NewTile(model.ShapeMeat)
	default:
		return model.InventoryTile{}, model.ErrInvalidHarvest
	}

	session.Inventory = append(session.Inventory, product)
	s.logger.Debug("animal harvested",
		slog.String("session_id", string(session.ID)),
		slog.String("animal", string(animal.Shape.ID)),
		slog.String("kind", string(kind)),
	)
	return product, nil
}

// Finish eats the tabled food and closes the round: an unfilled table costs
// -1 per empty space, surrounded bonuses and income are collected from every
// surface, pairs of animals breed, and the next round begins. After the final
// round the game is over.
func (s *Service) Finish(session *model.Session) (model.FeastOutcome, error) {
	table, err := feastTable(session)
	if err != nil {
		return model.FeastOutcome{}, err
	}

	outcome := model.FeastOutcome{
		Round:    session.Round,
		Consumed: []model.TileID{},
		Filled:   table.Filled(),
		Required: table.RequiredSize,
		Penalty:  -table.Shortfall(),
	}

	for _, entry := range table.Entries {
		if err := session.RemoveTile(entry.TileID); err != nil {
			return model.FeastOutcome{}, err
		}
		outcome.Consumed = append(outcome.Consumed, entry.TileID)
	}
	session.FeastPenalty += outcome.Penalty

	outcome.Yield = s.bonus.Scan(session.Surfaces())
	for _, r := range outcome.Yield.Bonuses {
		session.Resources.Add(r, 1)
	}
	session.Resources.Add(model.ResourceSilver, outcome.Yield.Income)

	outcome.Bred = breed(session)

	session.Feast = nil
	if session.Round >= session.TotalRounds {
		session.Phase = model.PhaseGameOver
		outcome.GameOver = true
		s.logger.Info("game over",
			slog.String("session_id", string(session.ID)),
			slog.Int("feast_penalty", session.FeastPenalty),
		)
		return outcome, nil
	}

	advanceRound(session)
	outcome.NextRound = session.Round
	s.logger.Info("round started",
		slog.String("session_id", string(session.ID)),
		slog.Int("round", session.Round),
		slog.String("color", string(session.ActiveColor)),
		slog.Int("vikings", session.VikingsFree),
	)
	return outcome, nil
}

func feastTable(session *model.Session) (*model.FeastTable, error) {
	if session.IsOver() {
		return nil, model.ErrGameOver
	}
	if session.Phase != model.PhaseFeast || session.Feast == nil {
		return nil, model.ErrWrongPhase
	}
	return session.Feast, nil
}

var breeds = []model.ShapeID{model.ShapeSheep, model.ShapeCow, model.ShapeHorse}

// breed adds one young animal for every kind held at least twice
func breed(session *model.Session) []model.ShapeID {
	counts := make(map[model.ShapeID]int)
	for _, t := range session.Inventory {
		counts[t.Shape.ID]++
	}

	var born []model.ShapeID
	for _, kind := range breeds {
		if counts[kind] >= 2 {
			session.Inventory = append(session.Inventory, catalog.NewTile(kind))
			born = append(born, kind)
		}
	}
	return born
}

// advanceRound flips the marker color and drops markers older than the round
// just played, then grants one more viking up to the maximum
func advanceRound(session *model.Session) {
	played := session.ActiveColor
	kept := make([]model.ActionMarker, 0, len(session.ActionsTaken))
	for _, m := range session.ActionsTaken {
		if m.Color == played {
			kept = append(kept, m)
		}
	}

	session.Round++
	session.Phase = model.PhaseWork
	session.ActiveColor = played.Other()
	session.ActionsTaken = kept
	session.VikingsTotal = min(session.VikingsTotal+1, catalog.MaxVikings)
	session.VikingsFree = session.VikingsTotal
}

// Interface for dependency injection
type ServiceInterface interface {
	Start(session *model.Session, size int) error
	Serve(session *model.Session, id model.TileID) (model.FeastEntry, error)
	Unserve(session *model.Session) (model.FeastEntry, error)
	Harvest(session *model.Session, id model.TileID, kind model.HarvestKind) (model.InventoryTile, error)
	Finish(session *model.Session) (model.FeastOutcome, error)
}

var _ ServiceInterface = (*Service)(nil)
