package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoHouseState(phase Phase) *GameState {
	gs := emptyState()
	gs.Phase = phase
	gs.PlayingHouses = []House{Stark, Lannister}
	gs.TurnOrder = []House{Lannister, Stark}
	gs.Houses = map[House]*HouseState{
		Stark:     {Name: Stark, Hand: HouseCardIDs(Stark)},
		Lannister: {Name: Lannister, Hand: HouseCardIDs(Lannister)},
	}

	gs.Area(Winterfell).Owner = Stark
	gs.Area(Winterfell).Units = []Unit{{Type: Footman, House: Stark}}
	gs.Area(Winterfell).Order = &Order{Type: March, House: Stark, TokenIndex: 0, Strength: -1}

	gs.Area(Lannisport).Owner = Lannister
	gs.Area(Lannisport).Units = []Unit{{Type: Footman, House: Lannister}}
	gs.Area(Lannisport).Order = &Order{Type: Defense, House: Lannister, TokenIndex: 3, Strength: 1}
	return gs
}

func TestViewHidesOpponentOrdersDuringPlanning(t *testing.T) {
	gs := twoHouseState(PlanningPhase)
	view := NewPlayerView(gs, Stark)

	// Own order: visible both on the board and in MyOrders.
	require.NotNil(t, view.Areas[Winterfell].Order)
	require.Contains(t, view.MyOrders, AreaID(Winterfell))

	// Opponent's order: only its existence leaks.
	require.Nil(t, view.Areas[Lannisport].Order)
	require.True(t, view.Areas[Lannisport].HasHiddenOrder)
}

func TestViewRevealsOrdersInActionPhase(t *testing.T) {
	gs := twoHouseState(ActionPhase)
	view := NewPlayerView(gs, Stark)

	require.NotNil(t, view.Areas[Lannisport].Order)
	require.False(t, view.Areas[Lannisport].HasHiddenOrder)
	require.Equal(t, Defense, view.Areas[Lannisport].Order.Type)
}

func TestViewHidesOpponentHand(t *testing.T) {
	gs := twoHouseState(PlanningPhase)
	view := NewPlayerView(gs, Stark)

	require.ElementsMatch(t, HouseCardIDs(Stark), view.MyHand)
	require.Equal(t, 7, view.HouseInfo[Lannister].CardsInHand)
}

func TestViewRedactsPending(t *testing.T) {
	gs := twoHouseState(PlanningPhase)
	gs.Pending = PlaceOrders{House: Stark}

	require.NotNil(t, NewPlayerView(gs, Stark).Pending)
	require.Nil(t, NewPlayerView(gs, Lannister).Pending)
}

func TestViewIsDetached(t *testing.T) {
	gs := twoHouseState(PlanningPhase)
	view := NewPlayerView(gs, Stark)

	view.Areas[Winterfell].Units[0].House = Lannister
	require.Equal(t, Stark, gs.Area(Winterfell).Units[0].House)
}

func TestPossibleHand(t *testing.T) {
	gs := twoHouseState(PlanningPhase)
	lann := gs.House(Lannister)
	lann.RemoveCard(TywinLannister)
	lann.Discards = append(lann.Discards, TywinLannister)

	possible := PossibleHand(gs, Lannister)
	require.Len(t, possible, 6)
	require.NotContains(t, possible, TywinLannister)
}
