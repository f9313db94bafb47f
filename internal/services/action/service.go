// Package action resolves vikings placed on action spaces, including the
// hunt and raid dice rolls.
package action

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/feastgame/internal/catalog"
	"github.com/mcoot/feastgame/internal/dependencies/random"
	"github.com/mcoot/feastgame/internal/model"
)

// Service applies action spaces to a session
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new action Service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// Check verifies the action can be taken in the session's current state.
// Nothing is modified.
func Check(session *model.Session, action model.Action) error {
	if session.IsOver() {
		return model.ErrGameOver
	}
	if session.Phase != model.PhaseWork {
		return model.ErrWrongPhase
	}
	if session.Risk != nil {
		return model.ErrRiskPending
	}
	if session.TakenCount(action.ID) >= model.MaxMarkersPerAction {
		return model.ErrActionOccupied
	}
	if session.VikingsFree < action.VikingCost {
		return fmt.Errorf("%s needs %d, have %d: %w", action.ID, action.VikingCost, session.VikingsFree, model.ErrNotEnoughVikings)
	}
	if action.Risk != nil && action.Risk.RequiredWeapon != "" && session.Resources.Get(action.Risk.RequiredWeapon) == 0 {
		return fmt.Errorf("%s needs a %s: %w", action.ID, action.Risk.RequiredWeapon, model.ErrMissingWeapon)
	}
	if !session.Resources.Has(action.Effect.Pay) {
		return fmt.Errorf("%s: %w", action.ID, model.ErrInsufficientResources)
	}
	if island := action.Effect.Unlock; island != "" {
		if _, err := session.Surface(island); err == nil {
			return model.ErrIslandAlreadyExplored
		}
	}
	return nil
}

// Take places vikings on an action space. Risk actions are left pending until
// the die is rolled and the roll resolved; every other action is applied at once.
func (s *Service) Take(session *model.Session, id model.ActionID) (model.ActionOutcome, error) {
	action, ok := catalog.Action(id)
	if !ok {
		return model.ActionOutcome{}, model.ErrActionNotFound
	}
	if err := Check(session, action); err != nil {
		return model.ActionOutcome{}, err
	}

	if action.Risk != nil {
		session.Risk = &model.PendingRisk{
			ActionID: action.ID,
			Kind:     action.Risk.Kind,
			DieSize:  action.Risk.Kind.DieSize(),
		}
		s.logger.Info("risk pending",
			slog.String("session_id", string(session.ID)),
			slog.String("action", string(action.ID)),
			slog.String("kind", string(action.Risk.Kind)),
		)
		return model.ActionOutcome{ActionID: action.ID, Pending: session.Risk}, nil
	}

	outcome, err := apply(session, action)
	if err != nil {
		return model.ActionOutcome{}, err
	}
	s.logger.Info("action taken",
		slog.String("session_id", string(session.ID)),
		slog.String("action", string(action.ID)),
		slog.Int("vikings_left", session.VikingsFree),
	)
	return outcome, nil
}

// Roll rolls the die for the pending hunt or raid
func (s *Service) Roll(session *model.Session) (model.PendingRisk, error) {
	if session.Risk == nil {
		return model.PendingRisk{}, model.ErrNoRiskPending
	}
	if session.Risk.Rolled() {
		return model.PendingRisk{}, model.ErrRiskAlreadyRolled
	}

	session.Risk.Roll = s.random.Roll(session.Risk.DieSize)
	s.logger.Debug("die rolled",
		slog.String("session_id", string(session.ID)),
		slog.Int("die", session.Risk.DieSize),
		slog.Int("roll", session.Risk.Roll),
	)
	return *session.Risk, nil
}

// Cancel abandons a pending hunt or raid before its die is rolled
func (s *Service) Cancel(session *model.Session) error {
	if session.Risk == nil {
		return model.ErrNoRiskPending
	}
	if session.Risk.Rolled() {
		return model.ErrRiskAlreadyRolled
	}
	session.Risk = nil
	return nil
}

// Resolve spends weapons and modifier resources against the rolled die. The
// roll succeeds when it does not exceed the strength: the vikings committed
// (raids only) plus everything spent. Spent resources are lost either way;
// success grants the reward tiles, failure grants one wood.
func (s *Service) Resolve(session *model.Session, weaponUsed, modifierUsed int) (model.RiskOutcome, error) {
	pending := session.Risk
	if pending == nil {
		return model.RiskOutcome{}, model.ErrNoRiskPending
	}
	if !pending.Rolled() {
		return model.RiskOutcome{}, model.ErrRiskNotRolled
	}
	action, ok := catalog.Action(pending.ActionID)
	if !ok || action.Risk == nil {
		return model.RiskOutcome{}, model.ErrActionNotFound
	}

	weapon, modifier := action.Risk.Weapon(), action.Risk.Modifier()
	if weaponUsed < 0 || modifierUsed < 0 ||
		weaponUsed > session.Resources.Get(weapon) ||
		modifierUsed > session.Resources.Get(modifier) {
		return model.RiskOutcome{}, model.ErrInvalidRiskSpend
	}

	strength := weaponUsed + modifierUsed
	if pending.Kind == model.RiskRaid {
		strength += action.VikingCost
	}

	outcome := model.RiskOutcome{
		ActionID:     action.ID,
		Roll:         pending.Roll,
		Strength:     strength,
		Success:      pending.Roll <= strength,
		WeaponUsed:   weaponUsed,
		ModifierUsed: modifierUsed,
	}

	spend := model.Resources{weapon: weaponUsed, modifier: modifierUsed}
	if err := session.Resources.Spend(spend); err != nil {
		return model.RiskOutcome{}, err
	}

	rewards := action.Risk.Fail
	if outcome.Success {
		rewards = action.Risk.Success
	} else {
		outcome.Consolation = model.Resources{model.ResourceWood: 1}
		session.Resources.Add(model.ResourceWood, 1)
	}
	for _, shapeID := range rewards {
		tile := catalog.NewTile(shapeID)
		session.Inventory = append(session.Inventory, tile)
		outcome.Tiles = append(outcome.Tiles, tile)
	}

	if _, err := apply(session, action); err != nil {
		return model.RiskOutcome{}, err
	}
	session.Risk = nil

	s.logger.Info("risk resolved",
		slog.String("session_id", string(session.ID)),
		slog.String("action", string(action.ID)),
		slog.Int("roll", outcome.Roll),
		slog.Int("strength", outcome.Strength),
		slog.Bool("success", outcome.Success),
	)
	return outcome, nil
}

// apply pays, gains, hands out tiles and unlocks islands, then commits the
// vikings and the action marker. Nothing changes if the payment falls short.
func apply(session *model.Session, action model.Action) (model.ActionOutcome, error) {
	outcome := model.ActionOutcome{ActionID: action.ID}

	var island catalog.Island
	if action.Effect.Unlock != "" {
		var ok bool
		if island, ok = catalog.LookupIsland(action.Effect.Unlock); !ok {
			return outcome, model.ErrSurfaceNotFound
		}
	}

	if len(action.Effect.Pay) > 0 {
		if err := session.Resources.Spend(action.Effect.Pay); err != nil {
			return outcome, err
		}
		outcome.Paid = action.Effect.Pay.Clone()
	}

	for r, n := range action.Effect.Gain {
		session.Resources.Add(r, n)
	}
	if len(action.Effect.Gain) > 0 {
		outcome.Gained = action.Effect.Gain.Clone()
	}

	for _, shapeID := range action.Effect.Tiles {
		tile := catalog.NewTile(shapeID)
		session.Inventory = append(session.Inventory, tile)
		outcome.Tiles = append(outcome.Tiles, tile)
	}

	if island.ID != "" {
		session.Islands = append(session.Islands, island.NewSurface())
		session.ActiveSurface = island.ID
		outcome.Unlocked = island.ID
	}

	session.VikingsFree -= action.VikingCost
	session.ActionsTaken = append(session.ActionsTaken, model.ActionMarker{
		ActionID: action.ID,
		Color:    session.ActiveColor,
	})
	return outcome, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Take(session *model.Session, id model.ActionID) (model.ActionOutcome, error)
	Roll(session *model.Session) (model.PendingRisk, error)
	Cancel(session *model.Session) error
	Resolve(session *model.Session, weaponUsed, modifierUsed int) (model.RiskOutcome, error)
}

var _ ServiceInterface = (*Service)(nil)
