package model

import "fmt"

// Resource is a countable token held in the player's pool
type Resource string

const (
	ResourceWood       Resource = "wood"
	ResourceStone      Resource = "stone"
	ResourceOre        Resource = "ore"
	ResourceSilver     Resource = "silver"
	ResourceHacksilver Resource = "hacksilver"
	ResourceRune       Resource = "rune"
	ResourceMead       Resource = "mead"
	ResourceOil        Resource = "oil"
	ResourceWool       Resource = "wool"
	ResourcePelt       Resource = "pelt"

	// Weapons
	ResourceBow       Resource = "bow"
	ResourceSnare     Resource = "snare"
	ResourceSpear     Resource = "spear"
	ResourceLongsword Resource = "longsword"
)

// AllResources lists every resource in display order
var AllResources = []Resource{
	ResourceSilver, ResourceHacksilver, ResourceWood, ResourceStone, ResourceOre,
	ResourceRune, ResourceMead, ResourceOil, ResourceWool, ResourcePelt,
	ResourceBow, ResourceSnare, ResourceSpear, ResourceLongsword,
}

// Valid reports whether r is a known resource
func (r Resource) Valid() bool {
	for _, known := range AllResources {
		if r == known {
			return true
		}
	}
	return false
}

// IsWeapon returns true for the four weapon types
func (r Resource) IsWeapon() bool {
	switch r {
	case ResourceBow, ResourceSnare, ResourceSpear, ResourceLongsword:
		return true
	}
	return false
}

// Resources is the player's resource pool
type Resources map[Resource]int

// Get returns the amount held, 0 if none
func (rs Resources) Get(r Resource) int {
	return rs[r]
}

// Add credits n units of r
func (rs Resources) Add(r Resource, n int) {
	rs[r] += n
}

// Has reports whether the pool holds at least every amount in cost
func (rs Resources) Has(cost Resources) bool {
	for r, n := range cost {
		if rs[r] < n {
			return false
		}
	}
	return true
}

// Spend deducts cost from the pool. Nothing is deducted if any amount is short.
func (rs Resources) Spend(cost Resources) error {
	for r, n := range cost {
		if rs[r] < n {
			return fmt.Errorf("need %d %s, have %d: %w", n, r, rs[r], ErrInsufficientResources)
		}
	}
	for r, n := range cost {
		rs[r] -= n
	}
	return nil
}

// Clone returns an independent copy
func (rs Resources) Clone() Resources {
	out := make(Resources, len(rs))
	for r, n := range rs {
		out[r] = n
	}
	return out
}
