// Package agent defines the decision-making interface game drivers feed
// with player views, plus two built-in implementations: a uniformly
// random baseline and a heuristic player.
package agent

import (
	"throne/game"
)

// Agent answers pending decisions for one house. Decide receives the
// redacted view for that house and must return the action variant
// matching view.Pending; drivers apply the result without inspection,
// so a legal answer is the agent's responsibility.
type Agent interface {
	Name() string
	House() game.House
	Decide(view *game.PlayerView) game.Action
}

// legalTokens lists the unplaced token indices the house could still
// put down: the token's type must not be banned, and starred tokens
// additionally need star budget and a star-legal type.
func legalTokens(view *game.PlayerView, used map[int]bool, starUsed, starBudget int) []int {
	var out []int
	for t := range game.OrderTokens {
		tok := &game.OrderTokens[t]
		if used[t] || restricted(tok.Type, view.OrderRestrictions) {
			continue
		}
		if tok.Star {
			if starUsed >= starBudget || restricted(tok.Type, view.StarOrderRestrictions) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func restricted(t game.OrderType, banned []game.OrderType) bool {
	for _, b := range banned {
		if b == t {
			return true
		}
	}
	return false
}

// openOrderAreas lists the viewer's occupied areas that still lack an
// order this planning phase.
func openOrderAreas(view *game.PlayerView, h game.House) []game.AreaID {
	var out []game.AreaID
	for i := range view.Areas {
		av := &view.Areas[i]
		if av.Owner != h || len(av.Units) == 0 {
			continue
		}
		if _, placed := view.MyOrders[av.ID]; placed {
			continue
		}
		out = append(out, av.ID)
	}
	return out
}

// placedStars summarizes the viewer's already-placed orders as (used
// token set, starred count).
func placedStars(view *game.PlayerView) (map[int]bool, int) {
	used := make(map[int]bool)
	stars := 0
	for _, o := range view.MyOrders {
		used[o.TokenIndex] = true
		if o.Star {
			stars++
		}
	}
	return used, stars
}

// unroutedIndices lists the indices of a house's units in an area that
// may still march this round.
func unroutedIndices(view *game.PlayerView, area game.AreaID, h game.House) []int {
	var out []int
	for i, u := range view.Areas[area].Units {
		if u.House == h && !u.Routed {
			out = append(out, i)
		}
	}
	return out
}

// enemyOrderAreas lists areas held by the given enemy that still carry
// an order token.
func enemyOrderAreas(view *game.PlayerView, enemy game.House) []game.AreaID {
	var out []game.AreaID
	for i := range view.Areas {
		av := &view.Areas[i]
		if av.Owner == enemy && av.Order != nil {
			out = append(out, av.ID)
		}
	}
	return out
}
