package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"throne/game"
)

// runAuction drives an open auction to resolution with fixed bids.
func runAuction(t *testing.T, gs *game.GameState, bids map[game.House]int) {
	t.Helper()
	for gs.Bidding != nil {
		stepBidding(gs)
		if req, ok := gs.Pending.(game.BidRequest); ok {
			require.NoError(t, Apply(gs, game.BidAction{Amount: bids[req.House]}))
		}
	}
	require.Nil(t, gs.Pending)
}

func TestClashOfKingsReordersTracks(t *testing.T) {
	gs, err := Setup(3, 1)
	require.NoError(t, err)

	beginClashOfKings(gs)
	runAuction(t, gs, map[game.House]int{
		game.Stark: 3, game.Lannister: 1, game.Baratheon: 0,
	})

	// All three tracks stay permutations of 1..N after reassignment.
	requireDenseTracks(t, gs)

	// Stark's 3 buys the throne and with it the turn order.
	require.Equal(t, game.Stark, gs.TrackLeader(game.IronThrone))
	require.Equal(t, []game.House{game.Stark, game.Lannister, game.Baratheon}, gs.TurnOrder)

	// Bids were paid on every track.
	require.Equal(t, 2, gs.House(game.Lannister).Power)
	require.Equal(t, 5, gs.House(game.Baratheon).Power)
}

func TestWildlingAuctionRepelled(t *testing.T) {
	gs, err := Setup(3, 1)
	require.NoError(t, err)
	gs.Wildling = 4
	cards := len(gs.WildlingDeck)

	beginWildlingAttack(gs)
	runAuction(t, gs, map[game.House]int{
		game.Stark: 3, game.Lannister: 2, game.Baratheon: 0,
	})

	// Threat met: the top bidder recoups 2, everyone pays, the threat
	// resets and the attack card is spent.
	require.Equal(t, 0, gs.Wildling)
	require.Equal(t, 4, gs.House(game.Stark).Power)
	require.Equal(t, 3, gs.House(game.Lannister).Power)
	require.Equal(t, cards-1, len(gs.WildlingDeck))
}
