package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridLayout(t *testing.T) {
	grid := NewGrid(Layout{
		Width:        5,
		Height:       3,
		Bonuses:      []BonusSpot{{X: 3, Y: 1, Resource: ResourceOre}, {X: 0, Y: 2, Resource: ResourceMead}},
		IncomeColumn: 2,
		Penalties:    true,
	})

	require.Len(t, grid.Cells, 3)
	require.Len(t, grid.Cells[0], 5)

	// the ore bonus sits on the income diagonal and wins
	assert.Equal(t, ResourceBonus(ResourceOre), grid.At(3, 1).Bonus)
	assert.Equal(t, IncomeBonus(), grid.At(2, 0).Bonus)
	assert.Equal(t, IncomeBonus(), grid.At(4, 2).Bonus)
	assert.Equal(t, ResourceBonus(ResourceMead), grid.At(0, 2).Bonus)

	for y := range grid.Cells {
		for x, cell := range grid.Cells[y] {
			assert.Equal(t, x, cell.X)
			assert.Equal(t, y, cell.Y)
			assert.False(t, cell.Covered)
			if cell.Bonus.Kind == BonusNone {
				assert.Equal(t, -1, cell.Penalty, "(%d,%d)", x, y)
			} else {
				assert.Equal(t, 0, cell.Penalty, "(%d,%d)", x, y)
			}
		}
	}
}

func TestIncomeOrigin(t *testing.T) {
	tests := []struct {
		name   string
		column int
		ok     bool
	}{
		{"in bounds", 3, true},
		{"first column", 0, true},
		{"no track", NoIncomeTrack, false},
		{"off the grid", 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewGrid(Layout{Width: 4, Height: 2, IncomeColumn: tt.column})
			origin, ok := grid.IncomeOrigin()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, Position{X: tt.column, Y: 0}, origin)
			}
		})
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	grid := NewGrid(Layout{Width: 2, Height: 2, IncomeColumn: NoIncomeTrack})
	clone := grid.Clone()
	clone.At(1, 1).Covered = true

	assert.False(t, grid.IsCovered(1, 1))
	assert.True(t, clone.IsCovered(1, 1))
	assert.False(t, clone.IsCovered(5, 5))
	assert.Equal(t, 1, clone.CoveredCount())
}

func TestBonusKindJSON(t *testing.T) {
	data, err := json.Marshal(ResourceBonus(ResourceRune))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"resource","resource":"rune"}`, string(data))

	var bonus Bonus
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"income"}`), &bonus))
	assert.Equal(t, IncomeBonus(), bonus)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"treasure"}`), &bonus))
}

func TestResourcesSpendIsAllOrNothing(t *testing.T) {
	pool := Resources{ResourceWood: 2, ResourceStone: 1}

	err := pool.Spend(Resources{ResourceWood: 1, ResourceStone: 2})
	assert.True(t, errors.Is(err, ErrInsufficientResources))
	assert.Equal(t, 2, pool.Get(ResourceWood))
	assert.Equal(t, 1, pool.Get(ResourceStone))

	require.NoError(t, pool.Spend(Resources{ResourceWood: 2}))
	assert.Equal(t, 0, pool.Get(ResourceWood))
	assert.True(t, pool.Has(Resources{ResourceStone: 1}))
	assert.False(t, pool.Has(Resources{ResourceOre: 1}))
}

func TestResourceKinds(t *testing.T) {
	assert.True(t, ResourceSpear.IsWeapon())
	assert.False(t, ResourceWood.IsWeapon())
	assert.True(t, ResourcePelt.Valid())
	assert.False(t, Resource("gold").Valid())
}

func TestFeastTable(t *testing.T) {
	table := &FeastTable{RequiredSize: 5}
	assert.Equal(t, 5, table.Shortfall())

	table.Entries = append(table.Entries,
		FeastEntry{TileID: "a", Color: ColorOrange, Width: 3},
		FeastEntry{TileID: "b", Color: ColorRed, Width: 3},
	)
	assert.Equal(t, 6, table.Filled())
	assert.True(t, table.IsFull())
	assert.Equal(t, 0, table.Shortfall())
	assert.True(t, table.Serves("b"))
	assert.False(t, table.Serves("c"))
}
