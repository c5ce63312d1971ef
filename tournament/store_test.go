package tournament

import (
	"testing"

	"github.com/stretchr/testify/require"

	"throne/game"
)

func memoryStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRegisterAgentIsIdempotent(t *testing.T) {
	s := memoryStore(t)

	a, err := s.RegisterAgent("Random")
	require.NoError(t, err)
	b, err := s.RegisterAgent("Random")
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := s.RegisterAgent("Heuristic")
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func sampleResult() *GameResult {
	return &GameResult{
		Seed:   42,
		Winner: game.Stark,
		Rounds: 8,
		Players: []PlayerResult{
			{House: game.Stark, AgentName: "Heuristic", Castles: 7, Supply: 4, Power: 10, IronThrone: 1, Fiefdoms: 2, KingsCourt: 2},
			{House: game.Lannister, AgentName: "Random", Castles: 3, Supply: 2, Power: 4, IronThrone: 2, Fiefdoms: 1, KingsCourt: 1},
			{House: game.Baratheon, AgentName: "Random", Castles: 2, Supply: 2, Power: 1, IronThrone: 3, Fiefdoms: 3, KingsCourt: 3},
		},
	}
}

func TestStoreGameBumpsCounters(t *testing.T) {
	s := memoryStore(t)

	heuristic, err := s.RegisterAgent("Heuristic")
	require.NoError(t, err)
	random, err := s.RegisterAgent("Random")
	require.NoError(t, err)

	ids := map[game.House]int64{
		game.Stark:     heuristic,
		game.Lannister: random,
		game.Baratheon: random,
	}
	gameID, err := s.StoreGame(sampleResult(), ids)
	require.NoError(t, err)
	require.NotZero(t, gameID)

	n, err := s.GameCount()
	require.NoError(t, err)
	require.Equal(t, 1, n)

	board, err := s.Leaderboard()
	require.NoError(t, err)
	require.Len(t, board, 2)

	byName := make(map[string]LeaderboardEntry, len(board))
	for _, e := range board {
		byName[e.Name] = e
	}
	require.Equal(t, 1, byName["Heuristic"].Games)
	require.Equal(t, 1, byName["Heuristic"].Wins)
	require.Equal(t, 1, byName["Random"].Games)
	require.Equal(t, 0, byName["Random"].Wins)
}

func TestUpdateELOMovesPoints(t *testing.T) {
	s := memoryStore(t)

	winner, err := s.RegisterAgent("Heuristic")
	require.NoError(t, err)
	loser, err := s.RegisterAgent("Random")
	require.NoError(t, err)

	require.NoError(t, s.UpdateELO(winner, []int64{loser}, 16))

	board, err := s.Leaderboard()
	require.NoError(t, err)
	require.Len(t, board, 2)

	// Equal ratings before the game: the winner takes k/2 points.
	require.Equal(t, "Heuristic", board[0].Name)
	require.InDelta(t, 1508, board[0].ELO, 0.01)
	require.Equal(t, "Random", board[1].Name)
	require.InDelta(t, 1492, board[1].ELO, 0.01)
}

func TestLeaderboardOrdersByELO(t *testing.T) {
	s := memoryStore(t)

	a, err := s.RegisterAgent("A")
	require.NoError(t, err)
	b, err := s.RegisterAgent("B")
	require.NoError(t, err)
	c, err := s.RegisterAgent("C")
	require.NoError(t, err)

	// B beats A and C twice; C beats A once.
	require.NoError(t, s.UpdateELO(b, []int64{a, c}, 16))
	require.NoError(t, s.UpdateELO(b, []int64{a, c}, 16))
	require.NoError(t, s.UpdateELO(c, []int64{a}, 16))

	board, err := s.Leaderboard()
	require.NoError(t, err)
	require.Len(t, board, 3)
	require.Equal(t, "B", board[0].Name)
	require.Equal(t, "C", board[1].Name)
	require.Equal(t, "A", board[2].Name)
}
