package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"throne/game"
)

func TestAdvanceAsksTurnLeaderFirst(t *testing.T) {
	gs, err := Setup(6, 42)
	require.NoError(t, err)

	Advance(gs)
	require.Equal(t, game.PlaceOrders{House: game.Baratheon}, gs.Pending)

	// Advance is idempotent while a decision is outstanding.
	Advance(gs)
	require.Equal(t, game.PlaceOrders{House: game.Baratheon}, gs.Pending)
}

// coverAreas answers a PlaceOrders decision with defensive tokens on
// every occupied area.
func coverAreas(t *testing.T, gs *game.GameState, h game.House, areas ...game.AreaID) {
	t.Helper()
	require.Equal(t, game.PlaceOrders{House: h}, gs.Pending)

	tokens := []int{3, 4, 6}
	orders := make([]game.OrderPlacement, len(areas))
	for i, a := range areas {
		orders[i] = game.OrderPlacement{Area: a, TokenIndex: tokens[i]}
	}
	require.NoError(t, Apply(gs, game.PlaceOrdersAction{Orders: orders}))
	Advance(gs)
}

func TestAdvancePlanningSequence(t *testing.T) {
	gs, err := Setup(3, 1)
	require.NoError(t, err)
	Advance(gs)

	coverAreas(t, gs, game.Baratheon, game.Dragonstone, game.Kingswood, game.ShipbreakerBay)
	coverAreas(t, gs, game.Lannister, game.Lannisport, game.StoneySept, game.TheGoldenSound)
	coverAreas(t, gs, game.Stark, game.Winterfell, game.WhiteHarbor, game.TheShiveringSea)

	// The King's Court leader is offered the messenger raven last.
	require.Equal(t, game.MessengerRavenDecision{House: game.Lannister}, gs.Pending)
	require.NoError(t, Apply(gs, game.RavenAction{}))
	Advance(gs)

	// Nothing but defense and support orders: the action phase runs dry,
	// the round is swept and round two opens with Westeros cards.
	require.Equal(t, 2, gs.Round)
	require.NotNil(t, gs.Pending)
	require.Nil(t, gs.Area(game.Dragonstone).Order, "orders are swept at round end")
}

func TestTrackHolderPanicsOnBrokenTrack(t *testing.T) {
	gs, err := Setup(3, 1)
	require.NoError(t, err)

	// Duplicate seat 2, nobody at 1: corruption must abort, not fall
	// back to the turn leader.
	gs.House(gs.TrackLeader(game.Fiefdoms)).Fiefdoms = 2
	require.Panics(t, func() { trackHolder(gs, game.Fiefdoms) })
}

func TestCheckVictoryAtSevenCastles(t *testing.T) {
	gs, err := Setup(6, 42)
	require.NoError(t, err)

	n := 0
	for i := range game.Areas {
		if n == 7 {
			break
		}
		if game.Areas[i].HasCastleOrStronghold() {
			gs.Area(game.AreaID(i)).Owner = game.Stark
			n++
		}
	}

	checkVictory(gs)
	require.Equal(t, game.Stark, gs.Winner)
}

func TestTiebreakAfterFinalRound(t *testing.T) {
	gs, err := Setup(3, 1)
	require.NoError(t, err)

	// An extra castle puts Stark ahead on castle points.
	gs.Area(game.MoatCailin).Owner = game.Stark

	resolveTiebreaker(gs)
	require.Equal(t, game.Stark, gs.Winner)
}

func TestConsolidatePowerResolvesInline(t *testing.T) {
	gs, err := Setup(3, 1)
	require.NoError(t, err)
	gs.Phase = game.ActionPhase
	gs.ActionSubPhase = game.ConsolidateSubPhase

	// A plain consolidate order on Kingswood: one token plus one crown
	// icon per the area, resolved without a decision.
	gs.Area(game.Kingswood).Order = &game.Order{
		Type: game.ConsolidatePower, House: game.Baratheon, TokenIndex: 12,
	}
	before := gs.House(game.Baratheon).Power

	stepAction(gs)

	require.Nil(t, gs.Area(game.Kingswood).Order)
	gained := gs.House(game.Baratheon).Power - before
	require.Equal(t, 1+game.Areas[game.Kingswood].PowerIcons, gained)
}
