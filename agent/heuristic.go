package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"throne/game"
)

// HeuristicAgent plays by simple positional rules: defend threatened
// castles, march strong armies at valuable areas, hoard power when
// nothing is at stake. It beats RandomAgent comfortably without any
// search.
type HeuristicAgent struct {
	house game.House
	rng   *rand.Rand
}

// NewHeuristic returns a seeded heuristic agent for the given house.
func NewHeuristic(house game.House, seed uint64) *HeuristicAgent {
	return &HeuristicAgent{house: house, rng: rand.New(rand.NewSource(seed))}
}

func (a *HeuristicAgent) Name() string      { return "Heuristic" }
func (a *HeuristicAgent) House() game.House { return a.house }

func (a *HeuristicAgent) Decide(view *game.PlayerView) game.Action {
	switch d := view.Pending.(type) {
	case game.PlaceOrders:
		return a.placeOrders(view)
	case game.MessengerRavenDecision:
		// The free look at the wildling deck beats reshuffling an order.
		return game.RavenAction{PeekWildling: true}
	case game.ChooseRaid:
		return a.raid(view, d)
	case game.ChooseMarch:
		return a.march(view, d)
	case game.LeavePowerTokenDecision:
		return game.LeaveTokenAction{Leave: view.HouseInfo[a.house].Power >= 3}
	case game.SupportDeclaration:
		// Third parties stay out of other people's fights.
		return game.DeclareSupportAction{Choice: game.SupportNone}
	case game.SelectHouseCard:
		return game.SelectCardAction{Card: a.selectCard(view, d.AvailableCards)}
	case game.TyrionReplace:
		return game.TyrionReplaceAction{Card: weakestCard(view.MyHand)}
	case game.AeronSwap:
		// Two power for a card swap is rarely worth it.
		return game.AeronSwapAction{}
	case game.UseValyrianBladeDecision:
		return game.BladeAction{Use: true}
	case game.Retreat:
		return game.RetreatAction{To: a.retreatArea(d.PossibleAreas)}
	case game.RobbRetreat:
		return game.RobbRetreatAction{To: worstArea(d.PossibleAreas)}
	case game.PatchfaceDiscard:
		return game.PatchfaceAction{Card: strongestCard(d.VisibleCards)}
	case game.CerseiRemoveOrder:
		return game.CerseiAction{Area: bestOrderToRemove(view, d.Opponent)}
	case game.DoranChooseTrack:
		return game.DoranAction{Track: game.IronThrone}
	case game.QueenOfThornsRemoveOrder:
		return game.QueenOfThornsAction{Area: a.queenTarget(view, d)}
	case game.Reconcile:
		return game.ReconcileAction{Area: d.Area, UnitIndex: weakestUnit(view.Areas[d.Area].Units)}
	case game.Muster:
		return a.muster(view, d)
	case game.BidRequest:
		return game.BidAction{Amount: a.bid(view, d)}
	case game.WesterosChoice:
		return game.WesterosChoiceAction{Option: 0}
	default:
		panic(fmt.Sprintf("agent: unhandled decision %T", view.Pending))
	}
}

// placeOrders assigns each occupied area an order by situation: seas
// support, threatened castles defend, field armies march, safe castles
// consolidate.
func (a *HeuristicAgent) placeOrders(view *game.PlayerView) game.Action {
	me := view.HouseInfo[a.house]
	budget := game.StarOrderLimit(len(view.PlayingHouses), me.KingsCourt)
	used, starUsed := placedStars(view)

	var orders []game.OrderPlacement
	for _, area := range openOrderAreas(view, a.house) {
		def := &game.Areas[area]
		threat := a.hasEnemyNeighbor(view, area)
		castle := def.HasCastleOrStronghold()
		str := a.areaStrength(view, area)

		var want game.OrderType
		switch {
		case def.IsSea():
			want = game.Support
		case castle && threat && str <= 2:
			want = game.Defense
		case str >= 2 && !castle:
			want = game.March
		case castle && !threat:
			want = game.ConsolidatePower
		case threat:
			want = game.Defense
		default:
			if a.rng.Intn(5) < 3 {
				want = game.March
			} else {
				want = game.ConsolidatePower
			}
		}

		tokens := legalTokens(view, used, starUsed, budget)
		t, ok := bestTokenOfType(tokens, want)
		if !ok {
			if len(tokens) == 0 {
				break
			}
			t = tokens[a.rng.Intn(len(tokens))]
		}
		orders = append(orders, game.OrderPlacement{Area: area, TokenIndex: t})
		used[t] = true
		if game.OrderTokens[t].Star {
			starUsed++
		}
	}
	return game.PlaceOrdersAction{Orders: orders}
}

// bestTokenOfType prefers the strongest token of the wanted type,
// breaking ties toward stars.
func bestTokenOfType(tokens []int, want game.OrderType) (int, bool) {
	best, bestScore := 0, -1
	for _, t := range tokens {
		tok := &game.OrderTokens[t]
		if tok.Type != want {
			continue
		}
		score := tok.Strength * 2
		if tok.Star {
			score++
		}
		if score > bestScore {
			best, bestScore = t, score
		}
	}
	return best, bestScore >= 0
}

// raid prefers denying consolidate power, then support.
func (a *HeuristicAgent) raid(view *game.PlayerView, d game.ChooseRaid) game.Action {
	if len(d.ValidTargets) == 0 {
		return game.RaidAction{}
	}
	best := d.ValidTargets[0]
	bestScore := -1
	for _, t := range d.ValidTargets {
		score := 0
		if o := view.Areas[t].Order; o != nil {
			switch o.Type {
			case game.ConsolidatePower:
				score = 3
			case game.Support:
				score = 2
			default:
				score = 1
			}
		}
		if score > bestScore {
			best, bestScore = t, score
		}
	}
	return game.RaidAction{Target: &best}
}

// march scores destinations by castle value, supply icons, and the odds
// of winning a fight there, then moves the whole unrouted army.
func (a *HeuristicAgent) march(view *game.PlayerView, d game.ChooseMarch) game.Action {
	units := unroutedIndices(view, d.From, a.house)
	if len(d.ValidDestinations) == 0 || len(units) == 0 {
		return game.MarchSkipAction{}
	}

	myStr := a.areaStrength(view, d.From)
	best := d.ValidDestinations[0]
	bestScore := -100

	for _, dest := range d.ValidDestinations {
		def := &game.Areas[dest]
		av := &view.Areas[dest]
		score := 0

		if def.HasCastleOrStronghold() {
			score += 20
		}
		score += def.SupplyIcons * 3
		if def.PowerIcons > 0 {
			score += 2
		}
		if av.Owner == game.NoHouse || av.Owner == a.house {
			score += 10
		} else {
			enemyStr := 0
			for _, u := range av.Units {
				enemyStr += u.Type.CombatStrength()
			}
			if myStr > enemyStr+1 {
				score += 5
			} else {
				score -= 15
			}
		}
		score += a.rng.Intn(5)

		if score > bestScore {
			best, bestScore = dest, score
		}
	}
	return game.MarchAction{To: best, UnitIndices: units}
}

// selectCard weighs printed strength and icons, saving strong cards
// early and spending them once the hand thins out.
func (a *HeuristicAgent) selectCard(view *game.PlayerView, available []game.HouseCardID) game.HouseCardID {
	if len(available) == 1 {
		return available[0]
	}

	attacking := view.Combat != nil && view.Combat.Attacker == a.house
	best := available[0]
	bestScore := -100

	for _, id := range available {
		card := game.GetHouseCard(id)
		score := card.Strength*3 + card.Swords*2 + card.Fortifications*2
		if len(available) <= 3 {
			score += card.Strength
		}
		if len(available) >= 5 && card.Strength >= 3 {
			score -= 5
		}
		if attacking && (id == game.SerJaimeLannister || id == game.GreatjonUmber) {
			score += 4
		}
		score += a.rng.Intn(3)

		if score > bestScore {
			best, bestScore = id, score
		}
	}
	return best
}

// bid scales with how much the prize is worth: wildling defense tracks
// the threat level, influence tracks have fixed ceilings.
func (a *HeuristicAgent) bid(view *game.PlayerView, d game.BidRequest) int {
	power := view.HouseInfo[a.house].Power
	var cap int
	switch d.Type {
	case game.BidWildling:
		switch {
		case view.Wildling >= 10:
			cap = 5
		case view.Wildling >= 6:
			cap = 3
		default:
			cap = 1
		}
	case game.BidIronThrone:
		cap = 4
	case game.BidFiefdoms:
		cap = 3
	default:
		cap = 2
	}
	if power < cap {
		return power
	}
	return cap
}

// muster spends each area's points on the biggest unit still in the
// pool: knights first, then siege engines, then footmen.
func (a *HeuristicAgent) muster(view *game.PlayerView, d game.Muster) game.Action {
	pool := view.HouseInfo[a.house].Pool

	var orders []game.MusterOrder
	for _, ma := range d.Areas {
		switch {
		case ma.Points >= 2 && pool.Knights > 0:
			orders = append(orders, game.MusterOrder{Area: ma.Area, Kind: game.MusterBuild, Unit: game.Knight})
			pool.Knights--
		case ma.Points >= 2 && pool.SiegeEngines > 0:
			orders = append(orders, game.MusterOrder{Area: ma.Area, Kind: game.MusterBuild, Unit: game.SiegeEngine})
			pool.SiegeEngines--
		case ma.Points >= 1 && pool.Footmen > 0:
			orders = append(orders, game.MusterOrder{Area: ma.Area, Kind: game.MusterBuild, Unit: game.Footman})
			pool.Footmen--
		}
	}
	return game.MusterAction{Orders: orders}
}

func (a *HeuristicAgent) retreatArea(options []game.AreaID) game.AreaID {
	for _, opt := range options {
		if game.Areas[opt].HasCastleOrStronghold() {
			return opt
		}
	}
	return options[a.rng.Intn(len(options))]
}

// worstArea picks the least valuable area, used to shove a beaten enemy
// somewhere useless.
func worstArea(options []game.AreaID) game.AreaID {
	worst := options[0]
	worstScore := 1 << 30
	for _, opt := range options {
		def := &game.Areas[opt]
		score := def.SupplyIcons * 3
		if def.HasCastleOrStronghold() {
			score += 10
		}
		if score < worstScore {
			worst, worstScore = opt, score
		}
	}
	return worst
}

// bestOrderToRemove targets the opponent's most disruptive remaining
// order: march above support above defense.
func bestOrderToRemove(view *game.PlayerView, enemy game.House) game.AreaID {
	targets := enemyOrderAreas(view, enemy)
	best := targets[0]
	bestScore := -1
	for _, t := range targets {
		score := 0
		switch view.Areas[t].Order.Type {
		case game.March:
			score = 5
		case game.Support:
			score = 4
		case game.Defense:
			score = 3
		case game.Raid:
			score = 2
		case game.ConsolidatePower:
			score = 1
		}
		if score > bestScore {
			best, bestScore = t, score
		}
	}
	return best
}

func (a *HeuristicAgent) queenTarget(view *game.PlayerView, d game.QueenOfThornsRemoveOrder) game.AreaID {
	best := d.ValidAreas[0]
	bestScore := -1
	for _, t := range d.ValidAreas {
		score := 0
		if o := view.Areas[t].Order; o != nil {
			switch o.Type {
			case game.Support:
				score = 4
			case game.Defense:
				score = 3
			case game.Raid:
				score = 2
			case game.ConsolidatePower:
				score = 1
			}
		}
		if score > bestScore {
			best, bestScore = t, score
		}
	}
	return best
}

func weakestCard(hand []game.HouseCardID) game.HouseCardID {
	best := hand[0]
	for _, id := range hand[1:] {
		if game.GetHouseCard(id).Strength < game.GetHouseCard(best).Strength {
			best = id
		}
	}
	return best
}

func strongestCard(cards []game.HouseCardID) game.HouseCardID {
	best := cards[0]
	for _, id := range cards[1:] {
		if game.GetHouseCard(id).Strength > game.GetHouseCard(best).Strength {
			best = id
		}
	}
	return best
}

func weakestUnit(units []game.Unit) int {
	best, bestStr := 0, 1<<30
	for i, u := range units {
		if s := u.Type.CombatStrength(); s < bestStr {
			best, bestStr = i, s
		}
	}
	return best
}

func (a *HeuristicAgent) hasEnemyNeighbor(view *game.PlayerView, area game.AreaID) bool {
	for _, adj := range game.Areas[area].Adjacent {
		for _, u := range view.Areas[adj].Units {
			if u.House != a.house {
				return true
			}
		}
	}
	return false
}

func (a *HeuristicAgent) areaStrength(view *game.PlayerView, area game.AreaID) int {
	str := 0
	for _, u := range view.Areas[area].Units {
		if u.House == a.house {
			str += u.Type.CombatStrength()
		}
	}
	return str
}
