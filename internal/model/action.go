package model

// ActionID identifies an action space
type ActionID string

// ActionCategory groups action spaces on the action board
type ActionCategory string

const (
	CategoryProduction  ActionCategory = "production"
	CategoryTrade       ActionCategory = "trade"
	CategoryMountain    ActionCategory = "mountain"
	CategorySpecial     ActionCategory = "special"
	CategoryExploration ActionCategory = "exploration"
)

// RiskKind is the dice mini-game an action triggers
type RiskKind string

const (
	RiskHunt RiskKind = "hunt" // d8, weapon + wood
	RiskRaid RiskKind = "raid" // d12, vikings + weapon + stone
)

// DieSize returns the number of faces rolled for the risk
func (k RiskKind) DieSize() int {
	if k == RiskRaid {
		return 12
	}
	return 8
}

// Effect is what an action does once its vikings are committed
type Effect struct {
	Pay    Resources `json:"pay,omitempty"`
	Gain   Resources `json:"gain,omitempty"`
	Tiles  []ShapeID `json:"tiles,omitempty"`
	Unlock SurfaceID `json:"unlock,omitempty"`
}

// Risk configures a hunt or raid
type Risk struct {
	Kind           RiskKind  `json:"kind"`
	RequiredWeapon Resource  `json:"required_weapon,omitempty"`
	Success        []ShapeID `json:"success"`
	Fail           []ShapeID `json:"fail,omitempty"`
}

// Weapon returns the weapon spent to boost the roll
func (r *Risk) Weapon() Resource {
	if r.RequiredWeapon != "" {
		return r.RequiredWeapon
	}
	if r.Kind == RiskRaid {
		return ResourceLongsword
	}
	return ResourceBow
}

// Modifier returns the resource spent to boost the roll
func (r *Risk) Modifier() Resource {
	if r.Kind == RiskRaid {
		return ResourceStone
	}
	return ResourceWood
}

// Action is an action space on the action board
type Action struct {
	ID          ActionID       `json:"id"`
	Name        string         `json:"name"`
	VikingCost  int            `json:"viking_cost"`
	Category    ActionCategory `json:"category"`
	Description string         `json:"description"`
	Effect      Effect         `json:"effect"`
	Risk        *Risk          `json:"risk,omitempty"`
}

// MaxMarkersPerAction is how many markers an action slot can hold
const MaxMarkersPerAction = 2

// ActionOutcome describes the result of taking an action
type ActionOutcome struct {
	ActionID ActionID        `json:"action_id"`
	Pending  *PendingRisk    `json:"pending,omitempty"`
	Gained   Resources       `json:"gained,omitempty"`
	Paid     Resources       `json:"paid,omitempty"`
	Tiles    []InventoryTile `json:"tiles,omitempty"`
	Unlocked SurfaceID       `json:"unlocked,omitempty"`
}

// RiskOutcome describes the result of a resolved hunt or raid
type RiskOutcome struct {
	ActionID     ActionID        `json:"action_id"`
	Roll         int             `json:"roll"`
	Strength     int             `json:"strength"`
	Success      bool            `json:"success"`
	WeaponUsed   int             `json:"weapon_used"`
	ModifierUsed int             `json:"modifier_used"`
	Tiles        []InventoryTile `json:"tiles,omitempty"`
	Consolation  Resources       `json:"consolation,omitempty"`
}
