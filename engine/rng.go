package engine

import (
	"golang.org/x/exp/rand"

	"throne/game"
)

// rngStep spreads successive draw counters across the seed space.
const rngStep = 6364136223846793005

// nextRNG derives a fresh generator for a single random draw. Keeping
// only (Seed, RNGCounter) in the state means a deep copy replays the
// exact same draws without carrying live generator internals around.
func nextRNG(gs *game.GameState) *rand.Rand {
	gs.RNGCounter++
	return rand.New(rand.NewSource(gs.Seed + gs.RNGCounter*rngStep))
}

func shuffleWesteros(r *rand.Rand, deck []game.WesterosCard) {
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

func shuffleWildling(r *rand.Rand, deck []game.WildlingCard) {
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}
