// Package tournament runs headless games between agents and records the
// outcomes: per-game results, a SQLite store with Elo ratings, and CSV
// exports.
package tournament

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"throne/agent"
	"throne/engine"
	"throne/game"
)

// GameResult summarizes one finished game.
type GameResult struct {
	Seed    uint64
	Winner  game.House
	Rounds  int
	Players []PlayerResult
}

// PlayerResult is one house's final standing.
type PlayerResult struct {
	House      game.House
	AgentName  string
	Castles    int
	Supply     int
	Power      int
	IronThrone int
	Fiefdoms   int
	KingsCourt int
}

// RunGame plays a complete game between the given agents, one per
// seated house. maxDecisions caps the total number of agent answers;
// exceeding it means an agent loop and returns an error rather than
// spinning forever.
func RunGame(agents map[game.House]agent.Agent, playerCount int, seed uint64, maxDecisions int) (*GameResult, error) {
	gs, err := engine.Setup(playerCount, seed)
	if err != nil {
		return nil, err
	}

	decisions := 0
	for {
		engine.Advance(gs)

		if gs.Winner != game.NoHouse {
			result := buildResult(gs, agents, seed)
			log.Debug().
				Uint64("seed", seed).
				Str("winner", gs.Winner.String()).
				Int("rounds", result.Rounds).
				Int("decisions", decisions).
				Msg("game finished")
			return result, nil
		}

		if gs.Pending == nil {
			return nil, fmt.Errorf("tournament: game stuck in phase %s, round %d", gs.Phase, gs.Round)
		}

		h := gs.Pending.DecidingHouse()
		ag, ok := agents[h]
		if !ok {
			return nil, fmt.Errorf("tournament: no agent for house %s", h)
		}

		action := ag.Decide(game.NewPlayerView(gs, h))
		if err := engine.Apply(gs, action); err != nil {
			return nil, fmt.Errorf("tournament: agent %s (%s) played an illegal action: %w", ag.Name(), h, err)
		}

		decisions++
		if decisions > maxDecisions {
			return nil, fmt.Errorf("tournament: game exceeded %d decisions in round %d", maxDecisions, gs.Round)
		}
	}
}

func buildResult(gs *game.GameState, agents map[game.House]agent.Agent, seed uint64) *GameResult {
	rounds := gs.Round
	if rounds > 10 {
		rounds = 10
	}

	players := make([]PlayerResult, 0, len(gs.PlayingHouses))
	for _, h := range gs.PlayingHouses {
		hs := gs.House(h)
		name := ""
		if ag, ok := agents[h]; ok {
			name = ag.Name()
		}
		players = append(players, PlayerResult{
			House:      h,
			AgentName:  name,
			Castles:    gs.CastleCount(h),
			Supply:     hs.Supply,
			Power:      hs.Power,
			IronThrone: hs.IronThrone,
			Fiefdoms:   hs.Fiefdoms,
			KingsCourt: hs.KingsCourt,
		})
	}

	return &GameResult{
		Seed:    seed,
		Winner:  gs.Winner,
		Rounds:  rounds,
		Players: players,
	}
}
