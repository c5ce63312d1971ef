package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSupplyLimits(t *testing.T) {
	require.Equal(t, []int{2, 2}, SupplyLimits(0))
	require.Equal(t, []int{3, 2, 2}, SupplyLimits(2))
	require.Equal(t, []int{4, 3, 2, 2, 2}, SupplyLimits(6))
	// Out-of-range levels clamp to the table edges.
	require.Equal(t, []int{2, 2}, SupplyLimits(-1))
	require.Equal(t, []int{4, 3, 2, 2, 2}, SupplyLimits(9))
}

func armyState(h House, supply int, armies map[AreaID]int) *GameState {
	gs := emptyState()
	gs.Houses[h] = &HouseState{Name: h, Supply: supply}
	for area, size := range armies {
		gs.Area(area).Owner = h
		for i := 0; i < size; i++ {
			gs.Area(area).Units = append(gs.Area(area).Units, Unit{Type: Footman, House: h})
		}
	}
	return gs
}

func TestCheckSupplyViolation(t *testing.T) {
	t.Run("within limits", func(t *testing.T) {
		gs := armyState(Stark, 2, map[AreaID]int{Winterfell: 3, WhiteHarbor: 2, MoatCailin: 2})
		require.False(t, CheckSupplyViolation(gs, Stark))
	})

	t.Run("oversized army", func(t *testing.T) {
		gs := armyState(Stark, 2, map[AreaID]int{Winterfell: 4})
		require.True(t, CheckSupplyViolation(gs, Stark))
	})

	t.Run("too many armies", func(t *testing.T) {
		gs := armyState(Stark, 2, map[AreaID]int{Winterfell: 2, WhiteHarbor: 2, MoatCailin: 2, Karhold: 2})
		require.True(t, CheckSupplyViolation(gs, Stark))
	})

	t.Run("single units never count", func(t *testing.T) {
		gs := armyState(Stark, 0, map[AreaID]int{
			Winterfell: 1, WhiteHarbor: 1, MoatCailin: 1, Karhold: 1, TheStonyShore: 1,
		})
		require.False(t, CheckSupplyViolation(gs, Stark))
	})
}

func TestCalculateSupply(t *testing.T) {
	gs := armyState(Stark, 0, map[AreaID]int{Winterfell: 1, TheStonyShore: 1})
	// Winterfell and The Stony Shore carry one icon each.
	require.Equal(t, 2, CalculateSupply(gs, Stark))

	// Icon totals cap at 6.
	for i := range gs.Areas {
		gs.Areas[i].Owner = Stark
	}
	require.Equal(t, 6, CalculateSupply(gs, Stark))
}

func TestFindSupplyViolations(t *testing.T) {
	// Supply 0 allows two armies of 2. The armies of 4 and 3 exceed
	// their slots and the army of 2 has no slot left.
	gs := armyState(Stark, 0, map[AreaID]int{Winterfell: 4, WhiteHarbor: 3, MoatCailin: 2})
	violations := FindSupplyViolations(gs, Stark)

	require.Len(t, violations, 3)
	require.Equal(t, SupplyViolation{Winterfell, 4, 2}, violations[0])
	require.Equal(t, SupplyViolation{WhiteHarbor, 3, 2}, violations[1])
	require.Equal(t, SupplyViolation{MoatCailin, 2, 1}, violations[2])
}
