package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderTokenDistribution(t *testing.T) {
	counts := map[OrderType]int{}
	stars := map[OrderType]int{}
	for _, tok := range OrderTokens {
		counts[tok.Type]++
		if tok.Star {
			stars[tok.Type]++
		}
	}

	for _, ot := range []OrderType{March, Raid, Support, Defense, ConsolidatePower} {
		require.Equal(t, 3, counts[ot], "%s token count", ot)
		require.Equal(t, 1, stars[ot], "%s starred count", ot)
	}
}

func TestMarchTokenStrengths(t *testing.T) {
	var strengths []int
	for _, tok := range OrderTokens {
		if tok.Type == March {
			strengths = append(strengths, tok.Strength)
		}
	}
	require.ElementsMatch(t, []int{-1, 0, 1}, strengths)
}

func TestStarOrderLimit(t *testing.T) {
	require.Equal(t, 3, StarOrderLimit(6, 1))
	require.Equal(t, 3, StarOrderLimit(6, 2))
	require.Equal(t, 2, StarOrderLimit(6, 3))
	require.Equal(t, 1, StarOrderLimit(6, 4))
	require.Equal(t, 0, StarOrderLimit(6, 5))
	require.Equal(t, 0, StarOrderLimit(6, 6))

	require.Equal(t, 3, StarOrderLimit(4, 2))
	require.Equal(t, 1, StarOrderLimit(4, 3))
	require.Equal(t, 0, StarOrderLimit(4, 4))

	require.Equal(t, 3, StarOrderLimit(3, 1))
	require.Equal(t, 2, StarOrderLimit(3, 2))
	require.Equal(t, 1, StarOrderLimit(3, 3))
}

func TestHouseCardSets(t *testing.T) {
	for _, h := range []House{Stark, Lannister, Baratheon, Greyjoy, Tyrell, Martell} {
		cards := HouseCards(h)
		require.Len(t, cards, 7, "%s deck size", h)

		strengths := map[int]int{}
		for _, c := range cards {
			require.Equal(t, h, c.House)
			strengths[c.Strength]++
		}
		// Every deck runs 4,3,2,2,1,1,0.
		require.Equal(t, map[int]int{4: 1, 3: 1, 2: 2, 1: 2, 0: 1}, strengths, "%s strengths", h)
	}
}
