package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"throne/game"
)

// RandomAgent answers every decision uniformly at random among the
// legal options. It is the tournament baseline: any agent worth keeping
// should beat it.
type RandomAgent struct {
	house game.House
	rng   *rand.Rand
}

// NewRandom returns a seeded random agent for the given house.
func NewRandom(house game.House, seed uint64) *RandomAgent {
	return &RandomAgent{house: house, rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Name() string      { return "Random" }
func (a *RandomAgent) House() game.House { return a.house }

func (a *RandomAgent) Decide(view *game.PlayerView) game.Action {
	switch d := view.Pending.(type) {
	case game.PlaceOrders:
		return a.placeOrders(view)
	case game.MessengerRavenDecision:
		return game.RavenAction{PeekWildling: a.rng.Intn(2) == 0}
	case game.ChooseRaid:
		if len(d.ValidTargets) == 0 {
			return game.RaidAction{}
		}
		t := d.ValidTargets[a.rng.Intn(len(d.ValidTargets))]
		return game.RaidAction{Target: &t}
	case game.ChooseMarch:
		return a.march(view, d)
	case game.LeavePowerTokenDecision:
		leave := view.HouseInfo[a.house].Power > 0 && a.rng.Intn(2) == 0
		return game.LeaveTokenAction{Leave: leave}
	case game.SupportDeclaration:
		choices := []game.SupportChoice{game.SupportNone, game.SupportAttacker, game.SupportDefender}
		return game.DeclareSupportAction{Choice: choices[a.rng.Intn(len(choices))]}
	case game.SelectHouseCard:
		return game.SelectCardAction{Card: d.AvailableCards[a.rng.Intn(len(d.AvailableCards))]}
	case game.TyrionReplace:
		return game.TyrionReplaceAction{Card: view.MyHand[a.rng.Intn(len(view.MyHand))]}
	case game.AeronSwap:
		return game.AeronSwapAction{}
	case game.UseValyrianBladeDecision:
		return game.BladeAction{Use: a.rng.Intn(2) == 0}
	case game.Retreat:
		return game.RetreatAction{To: d.PossibleAreas[a.rng.Intn(len(d.PossibleAreas))]}
	case game.RobbRetreat:
		return game.RobbRetreatAction{To: d.PossibleAreas[a.rng.Intn(len(d.PossibleAreas))]}
	case game.PatchfaceDiscard:
		return game.PatchfaceAction{Card: d.VisibleCards[a.rng.Intn(len(d.VisibleCards))]}
	case game.CerseiRemoveOrder:
		targets := enemyOrderAreas(view, d.Opponent)
		return game.CerseiAction{Area: targets[a.rng.Intn(len(targets))]}
	case game.DoranChooseTrack:
		tracks := []game.Track{game.IronThrone, game.Fiefdoms, game.KingsCourt}
		return game.DoranAction{Track: tracks[a.rng.Intn(len(tracks))]}
	case game.QueenOfThornsRemoveOrder:
		return game.QueenOfThornsAction{Area: d.ValidAreas[a.rng.Intn(len(d.ValidAreas))]}
	case game.Reconcile:
		n := len(view.Areas[d.Area].Units)
		return game.ReconcileAction{Area: d.Area, UnitIndex: a.rng.Intn(n)}
	case game.Muster:
		return a.muster(view, d)
	case game.BidRequest:
		power := view.HouseInfo[a.house].Power
		return game.BidAction{Amount: a.rng.Intn(power + 1)}
	case game.WesterosChoice:
		return game.WesterosChoiceAction{Option: a.rng.Intn(len(d.Options))}
	default:
		panic(fmt.Sprintf("agent: unhandled decision %T", view.Pending))
	}
}

// placeOrders deals random legal tokens onto every open area until the
// areas or the legal tokens run out.
func (a *RandomAgent) placeOrders(view *game.PlayerView) game.Action {
	me := view.HouseInfo[a.house]
	budget := game.StarOrderLimit(len(view.PlayingHouses), me.KingsCourt)
	used, starUsed := placedStars(view)

	var orders []game.OrderPlacement
	for _, area := range openOrderAreas(view, a.house) {
		tokens := legalTokens(view, used, starUsed, budget)
		if len(tokens) == 0 {
			break
		}
		t := tokens[a.rng.Intn(len(tokens))]
		orders = append(orders, game.OrderPlacement{Area: area, TokenIndex: t})
		used[t] = true
		if game.OrderTokens[t].Star {
			starUsed++
		}
	}
	return game.PlaceOrdersAction{Orders: orders}
}

// march moves the whole unrouted army to a random destination, or lifts
// the order when nothing can move.
func (a *RandomAgent) march(view *game.PlayerView, d game.ChooseMarch) game.Action {
	units := unroutedIndices(view, d.From, a.house)
	if len(d.ValidDestinations) == 0 || len(units) == 0 {
		return game.MarchSkipAction{}
	}
	to := d.ValidDestinations[a.rng.Intn(len(d.ValidDestinations))]
	return game.MarchAction{To: to, UnitIndices: units}
}

// muster builds a footman in each area that can afford one.
func (a *RandomAgent) muster(view *game.PlayerView, d game.Muster) game.Action {
	pool := view.HouseInfo[a.house].Pool

	var orders []game.MusterOrder
	for _, ma := range d.Areas {
		if ma.Points < 1 || pool.Footmen == 0 {
			continue
		}
		orders = append(orders, game.MusterOrder{Area: ma.Area, Kind: game.MusterBuild, Unit: game.Footman})
		pool.Footmen--
	}
	return game.MusterAction{Orders: orders}
}
