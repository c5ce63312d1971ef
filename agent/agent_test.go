package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"throne/engine"
	"throne/game"
)

// playPlanning answers PlaceOrders decisions with the given agents until
// the planning phase moves on.
func playPlanning(t *testing.T, gs *game.GameState, agents map[game.House]Agent) {
	t.Helper()
	engine.Advance(gs)
	for {
		po, ok := gs.Pending.(game.PlaceOrders)
		if !ok {
			return
		}
		ag := agents[po.House]
		action := ag.Decide(game.NewPlayerView(gs, po.House))
		require.NoError(t, engine.Apply(gs, action), "agent %s as %s", ag.Name(), po.House)
		engine.Advance(gs)
	}
}

func TestRandomPlanningIsLegal(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		gs, err := engine.Setup(3, seed)
		require.NoError(t, err)

		agents := make(map[game.House]Agent)
		for i, h := range gs.PlayingHouses {
			agents[h] = NewRandom(h, seed+uint64(i))
		}
		playPlanning(t, gs, agents)

		require.IsType(t, game.MessengerRavenDecision{}, gs.Pending)
	}
}

func TestHeuristicPlanningIsLegal(t *testing.T) {
	gs, err := engine.Setup(6, 9)
	require.NoError(t, err)

	agents := make(map[game.House]Agent)
	for i, h := range gs.PlayingHouses {
		agents[h] = NewHeuristic(h, uint64(i))
	}
	playPlanning(t, gs, agents)

	require.IsType(t, game.MessengerRavenDecision{}, gs.Pending)
}

func TestRandomRespectsStarBudget(t *testing.T) {
	// At King's Court position 4 of a three player game Baratheon has no
	// starred orders.
	gs, err := engine.Setup(3, 1)
	require.NoError(t, err)
	engine.Advance(gs)
	require.Equal(t, game.PlaceOrders{House: game.Baratheon}, gs.Pending)

	ag := NewRandom(game.Baratheon, 5)
	action := ag.Decide(game.NewPlayerView(gs, game.Baratheon))

	po, ok := action.(game.PlaceOrdersAction)
	require.True(t, ok)
	require.Len(t, po.Orders, 3)
	for _, p := range po.Orders {
		require.False(t, game.OrderTokens[p.TokenIndex].Star)
	}
}

func TestRandomMarchSkipsWhenStuck(t *testing.T) {
	gs, err := engine.Setup(3, 1)
	require.NoError(t, err)
	gs.Pending = game.ChooseMarch{House: game.Stark, From: game.Winterfell}

	ag := NewRandom(game.Stark, 1)
	action := ag.Decide(game.NewPlayerView(gs, game.Stark))
	require.IsType(t, game.MarchSkipAction{}, action)
}

func TestRandomBidWithinPower(t *testing.T) {
	gs, err := engine.Setup(3, 1)
	require.NoError(t, err)
	gs.Pending = game.BidRequest{House: game.Stark, Type: game.BidWildling}

	ag := NewRandom(game.Stark, 1)
	for i := 0; i < 20; i++ {
		action := ag.Decide(game.NewPlayerView(gs, game.Stark))
		bid, ok := action.(game.BidAction)
		require.True(t, ok)
		require.GreaterOrEqual(t, bid.Amount, 0)
		require.LessOrEqual(t, bid.Amount, 5)
	}
}

func TestHeuristicRaidDeniesConsolidate(t *testing.T) {
	gs, err := engine.Setup(3, 1)
	require.NoError(t, err)
	gs.Phase = game.ActionPhase
	gs.Area(game.Lannisport).Order = &game.Order{
		Type: game.Support, House: game.Lannister, TokenIndex: 6,
	}
	gs.Area(game.StoneySept).Order = &game.Order{
		Type: game.ConsolidatePower, House: game.Lannister, TokenIndex: 12,
	}
	gs.Pending = game.ChooseRaid{
		House:        game.Stark,
		From:         game.WhiteHarbor,
		ValidTargets: []game.AreaID{game.Lannisport, game.StoneySept},
	}

	ag := NewHeuristic(game.Stark, 1)
	action := ag.Decide(game.NewPlayerView(gs, game.Stark))

	raid, ok := action.(game.RaidAction)
	require.True(t, ok)
	require.NotNil(t, raid.Target)
	require.Equal(t, game.StoneySept, *raid.Target)
}

func TestHeuristicSelectsHeldCard(t *testing.T) {
	gs, err := engine.Setup(3, 1)
	require.NoError(t, err)
	available := game.HouseCardIDs(game.Stark)
	gs.Pending = game.SelectHouseCard{House: game.Stark, AvailableCards: available}

	ag := NewHeuristic(game.Stark, 1)
	action := ag.Decide(game.NewPlayerView(gs, game.Stark))

	sel, ok := action.(game.SelectCardAction)
	require.True(t, ok)
	require.Contains(t, available, sel.Card)
}

func TestHeuristicBidTracksTheThreat(t *testing.T) {
	gs, err := engine.Setup(3, 1)
	require.NoError(t, err)
	gs.Wildling = 12
	gs.Pending = game.BidRequest{House: game.Stark, Type: game.BidWildling}

	ag := NewHeuristic(game.Stark, 1)
	action := ag.Decide(game.NewPlayerView(gs, game.Stark))
	require.Equal(t, game.BidAction{Amount: 5}, action)

	gs.Wildling = 2
	action = ag.Decide(game.NewPlayerView(gs, game.Stark))
	require.Equal(t, game.BidAction{Amount: 1}, action)
}

func TestHeuristicMusterPrefersKnights(t *testing.T) {
	gs, err := engine.Setup(3, 1)
	require.NoError(t, err)
	gs.Pending = game.Muster{
		House: game.Stark,
		Areas: []game.MusterArea{{Area: game.Winterfell, Points: 2}},
	}

	ag := NewHeuristic(game.Stark, 1)
	action := ag.Decide(game.NewPlayerView(gs, game.Stark))

	m, ok := action.(game.MusterAction)
	require.True(t, ok)
	require.Equal(t, []game.MusterOrder{
		{Area: game.Winterfell, Kind: game.MusterBuild, Unit: game.Knight},
	}, m.Orders)
}
