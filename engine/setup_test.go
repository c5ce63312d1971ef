package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"throne/game"
)

func TestSetupRejectsBadPlayerCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7} {
		_, err := Setup(n, 1)
		require.Error(t, err, "player count %d", n)
	}
}

func TestSetupSixPlayers(t *testing.T) {
	gs, err := Setup(6, 42)
	require.NoError(t, err)

	require.Equal(t, 1, gs.Round)
	require.Equal(t, game.PlanningPhase, gs.Phase)
	require.Equal(t, 2, gs.Wildling)
	require.Equal(t, 6, gs.PlayerCount())
	require.Nil(t, gs.Pending)
	require.Equal(t, game.NoHouse, gs.Winner)

	// Turn order follows the Iron Throne track.
	require.Equal(t, []game.House{
		game.Baratheon, game.Lannister, game.Stark,
		game.Martell, game.Greyjoy, game.Tyrell,
	}, gs.TurnOrder)

	for _, h := range gs.PlayingHouses {
		hs := gs.House(h)
		require.Len(t, hs.Hand, 7, "%s hand", h)
		require.Equal(t, 5, hs.Power, "%s power", h)
		require.Empty(t, hs.Discards)
	}

	// Printed start positions.
	require.Equal(t, game.Stark, gs.Area(game.Winterfell).Owner)
	require.Len(t, gs.Area(game.Winterfell).Units, 2)
	require.Equal(t, game.Greyjoy, gs.Area(game.PykePort).Owner)
	require.Len(t, gs.Area(game.ShipbreakerBay).Units, 2)

	// Stark starts with a knight, two footmen and a ship on the board.
	require.Equal(t, game.UnitPool{Footmen: 8, Knights: 4, Ships: 5, SiegeEngines: 2},
		gs.House(game.Stark).Pool)

	require.Equal(t, 1, gs.House(game.Stark).Supply)
	require.Equal(t, 2, gs.House(game.Lannister).Supply)
}

func TestSetupGarrisons(t *testing.T) {
	gs, err := Setup(6, 42)
	require.NoError(t, err)

	require.Equal(t, game.Garrison{Owner: game.NoHouse, Strength: 5}, gs.Garrisons[game.KingsLanding])
	require.Equal(t, game.Garrison{Owner: game.NoHouse, Strength: 6}, gs.Garrisons[game.TheEyrie])
	require.Equal(t, game.Garrison{Owner: game.Stark, Strength: 2}, gs.Garrisons[game.Winterfell])
	require.Equal(t, game.Garrison{Owner: game.Martell, Strength: 2}, gs.Garrisons[game.Sunspear])
}

func TestSetupFivePlayersNeutralizesMartell(t *testing.T) {
	gs, err := Setup(5, 42)
	require.NoError(t, err)

	require.NotContains(t, gs.PlayingHouses, game.Martell)
	require.Equal(t, game.NoHouse, gs.Area(game.Sunspear).Owner)
	require.Empty(t, gs.Area(game.Sunspear).Units)
	// The empty home keeps a neutral garrison.
	require.Equal(t, game.Garrison{Owner: game.NoHouse, Strength: 5}, gs.Garrisons[game.Sunspear])
}

func TestSetupThreePlayersBlocksTheSouth(t *testing.T) {
	gs, err := Setup(3, 42)
	require.NoError(t, err)

	require.ElementsMatch(t, []game.House{game.Stark, game.Lannister, game.Baratheon}, gs.PlayingHouses)
	require.True(t, gs.Area(game.Sunspear).Blocked)
	require.True(t, gs.Area(game.Highgarden).Blocked)
	require.False(t, gs.Area(game.Winterfell).Blocked)

	// Blocked homes are unreachable, so they carry no garrison.
	_, ok := gs.Garrisons[game.Sunspear]
	require.False(t, ok)
}

// requireDenseTracks asserts that every influence track's positions
// form a permutation of 1..N over the playing houses.
func requireDenseTracks(t *testing.T, gs *game.GameState) {
	t.Helper()
	n := gs.PlayerCount()
	for _, track := range []game.Track{game.IronThrone, game.Fiefdoms, game.KingsCourt} {
		seen := make(map[int]game.House, n)
		for _, h := range gs.PlayingHouses {
			pos := gs.House(h).TrackPosition(track)
			require.GreaterOrEqual(t, pos, 1, "%s on %s", h, track)
			require.LessOrEqual(t, pos, n, "%s on %s", h, track)
			require.NotContains(t, seen, pos, "%s and %s tied on %s", seen[pos], h, track)
			seen[pos] = h
		}
	}
}

func TestSetupTracksArePermutations(t *testing.T) {
	for pc := 3; pc <= 6; pc++ {
		gs, err := Setup(pc, 0)
		require.NoError(t, err)
		requireDenseTracks(t, gs)
	}
}

func TestSetupThreePlayerTrackLeaders(t *testing.T) {
	// The printed seats compress but keep their relative order: of the
	// three northern houses Stark holds the best Fiefdoms seat and
	// Lannister the best King's Court seat.
	gs, err := Setup(3, 1)
	require.NoError(t, err)

	require.Equal(t, game.Baratheon, gs.TrackLeader(game.IronThrone))
	require.Equal(t, game.Stark, gs.TrackLeader(game.Fiefdoms))
	require.Equal(t, game.Lannister, gs.TrackLeader(game.KingsCourt))

	// Every house can reach a starred order from its compressed seat.
	for _, h := range gs.PlayingHouses {
		pos := gs.House(h).TrackPosition(game.KingsCourt)
		require.Greater(t, game.StarOrderLimit(3, pos), 0, "%s stars", h)
	}
}

func TestSetupIsDeterministic(t *testing.T) {
	a, err := Setup(6, 7)
	require.NoError(t, err)
	b, err := Setup(6, 7)
	require.NoError(t, err)

	require.Equal(t, a.WesterosDeck1, b.WesterosDeck1)
	require.Equal(t, a.WesterosDeck2, b.WesterosDeck2)
	require.Equal(t, a.WesterosDeck3, b.WesterosDeck3)
	require.Equal(t, a.WildlingDeck, b.WildlingDeck)
	require.Equal(t, a.TurnOrder, b.TurnOrder)
}

func TestPlayingHouses(t *testing.T) {
	require.Len(t, PlayingHouses(3), 3)
	require.Len(t, PlayingHouses(6), 6)
	require.NotContains(t, PlayingHouses(4), game.Tyrell)
	require.Contains(t, PlayingHouses(5), game.Tyrell)
}
