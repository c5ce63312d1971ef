package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"throne/game"
)

// maxAdvanceSteps caps the phase-machine loop. A healthy state always
// reaches a pending decision or a winner long before this; hitting the
// cap means an internal invariant broke.
const maxAdvanceSteps = 10000

// Advance drives the state machine until a decision is pending or the
// game is decided. It is a flat loop over phase steps: every step either
// sets Pending, sets Winner, or moves the phase machinery forward, so
// suspending and resuming at any point replays identically.
func Advance(gs *game.GameState) {
	for steps := 0; gs.Pending == nil && gs.Winner == game.NoHouse; steps++ {
		if steps >= maxAdvanceSteps {
			panic(fmt.Sprintf("engine: no progress in phase %s, round %d, step %d",
				gs.Phase, gs.Round, gs.WesterosStep))
		}
		switch gs.Phase {
		case game.WesterosPhase:
			stepWesteros(gs)
		case game.PlanningPhase:
			stepPlanning(gs)
		case game.ActionPhase:
			stepAction(gs)
		case game.CombatPhase:
			stepCombat(gs)
		default:
			panic(fmt.Sprintf("engine: unknown phase %d", gs.Phase))
		}
	}
}

// stepPlanning asks each house in turn order for its orders, then offers
// the raven, then opens the Action phase.
func stepPlanning(gs *game.GameState) {
	for _, h := range gs.TurnOrder {
		if houseNeedsOrders(gs, h) {
			gs.Pending = game.PlaceOrders{House: h}
			return
		}
	}

	if !gs.MessengerRavenUsed {
		holder := trackHolder(gs, game.KingsCourt)
		gs.MessengerRavenUsed = true
		gs.Pending = game.MessengerRavenDecision{House: holder}
		return
	}

	log.Debug().Int("round", gs.Round).Msg("planning complete")
	gs.Phase = game.ActionPhase
	gs.ActionSubPhase = game.RaidSubPhase
	gs.ActionPlayer = 0
}

// houseNeedsOrders reports whether the house still has an occupied,
// orderless area and a token it could legally place there.
func houseNeedsOrders(gs *game.GameState, h game.House) bool {
	open := false
	for i := range gs.Areas {
		a := &gs.Areas[i]
		if a.Owner == h && len(a.Units) > 0 && a.Order == nil {
			open = true
			break
		}
	}
	if !open {
		return false
	}
	hs := gs.House(h)
	return usableTokenCount(gs, hs, game.StarOrderLimit(gs.PlayerCount(), hs.KingsCourt)) > 0
}

// stepAction cycles houses in turn order resolving orders of the current
// sub-phase. Raid and March surface decisions; Consolidate Power
// resolves on the spot unless a starred token triggers mustering.
func stepAction(gs *game.GameState) {
	pc := gs.PlayerCount()

	for {
		if gs.ActionSubPhase == game.DoneSubPhase {
			cleanupRound(gs)
			return
		}

		start := gs.ActionPlayer
		resolvedCP := false

		for checked := 0; checked < pc; checked++ {
			idx := (start + checked) % pc
			h := gs.TurnOrder[idx]

			switch gs.ActionSubPhase {
			case game.RaidSubPhase:
				if from, ok := findFirstOrderArea(gs, h, game.Raid); ok {
					gs.ActionPlayer = idx
					gs.Pending = game.ChooseRaid{
						House:        h,
						From:         from,
						ValidTargets: findRaidTargets(gs, from, h),
					}
					return
				}
			case game.MarchSubPhase:
				if from, ok := findFirstOrderArea(gs, h, game.March); ok {
					gs.ActionPlayer = idx
					gs.Pending = game.ChooseMarch{
						House:             h,
						From:              from,
						ValidDestinations: game.ValidDestinations(gs, from, h),
					}
					return
				}
			case game.ConsolidateSubPhase:
				if area, ok := findFirstOrderArea(gs, h, game.ConsolidatePower); ok {
					gs.ActionPlayer = idx
					resolveConsolidatePower(gs, h, area)
					gs.ActionPlayer = (idx + 1) % pc
					if gs.Pending != nil {
						return
					}
					resolvedCP = true
				}
			}
			if resolvedCP {
				break
			}
		}

		if resolvedCP {
			continue
		}

		// Full cycle with nothing to resolve: next sub-phase.
		gs.ActionPlayer = 0
		gs.ActionSubPhase++
	}
}

func findFirstOrderArea(gs *game.GameState, h game.House, t game.OrderType) (game.AreaID, bool) {
	for i := range gs.Areas {
		a := &gs.Areas[i]
		if a.Owner == h && a.Order != nil && a.Order.Type == t {
			return game.AreaID(i), true
		}
	}
	return 0, false
}

func resolveConsolidatePower(gs *game.GameState, h game.House, area game.AreaID) {
	def := &game.Areas[area]
	star := gs.Area(area).Order != nil && gs.Area(area).Order.Star

	if star && def.HasCastleOrStronghold() {
		gs.Area(area).Order = nil
		gs.Pending = game.Muster{
			House: h,
			Areas: []game.MusterArea{{Area: area, Points: def.MusterPoints()}},
		}
		return
	}

	gs.House(h).Power += 1 + def.PowerIcons
	gs.Area(area).Order = nil
}

// findRaidTargets lists adjacent enemy areas with raidable orders.
// Starred raids also hit Defense orders.
func findRaidTargets(gs *game.GameState, from game.AreaID, h game.House) []game.AreaID {
	star := gs.Area(from).Order != nil && gs.Area(from).Order.Star

	var out []game.AreaID
	for _, adj := range game.Areas[from].Adjacent {
		a := gs.Area(adj)
		if a.Owner == h || a.Owner == game.NoHouse || a.Order == nil {
			continue
		}
		switch a.Order.Type {
		case game.Raid, game.Support, game.ConsolidatePower:
			out = append(out, adj)
		case game.Defense:
			if star {
				out = append(out, adj)
			}
		}
	}
	return out
}

// findRetreatAreas lists adjacent land areas the house could retreat
// into without starting another fight.
func findRetreatAreas(gs *game.GameState, from game.AreaID, h game.House) []game.AreaID {
	var out []game.AreaID
	for _, adj := range game.Areas[from].Adjacent {
		def := &game.Areas[adj]
		a := gs.Area(adj)
		if !def.IsLand() || a.Blocked {
			continue
		}
		if a.Owner != game.NoHouse && a.Owner != h {
			continue
		}
		friendly := true
		for _, u := range a.Units {
			if u.House != h {
				friendly = false
				break
			}
		}
		if friendly {
			out = append(out, adj)
		}
	}
	return out
}

func musterAreas(gs *game.GameState, h game.House) []game.MusterArea {
	var out []game.MusterArea
	for i := range gs.Areas {
		a := &gs.Areas[i]
		if a.Owner == h && game.Areas[i].HasCastleOrStronghold() && !a.Blocked {
			out = append(out, game.MusterArea{
				Area:   game.AreaID(i),
				Points: game.Areas[i].MusterPoints(),
			})
		}
	}
	return out
}

// trackHolder returns the house at position 1. A track with no holder
// is a broken permutation and panics rather than misassigning the
// track's privilege.
func trackHolder(gs *game.GameState, t game.Track) game.House {
	return gs.TrackLeader(t)
}

// cleanupRound ends the Action phase: the board is swept of orders,
// routed units recover, per-round flags reset, and the next round opens
// with Westeros cards (or the game ends after round 10).
func cleanupRound(gs *game.GameState) {
	for i := range gs.Areas {
		gs.Areas[i].Order = nil
		for j := range gs.Areas[i].Units {
			gs.Areas[i].Units[j].Routed = false
		}
	}

	for _, h := range gs.PlayingHouses {
		gs.House(h).UsedOrders = nil
	}
	gs.ValyrianBladeUsed = false
	gs.MessengerRavenUsed = false
	gs.RavenPeek = game.NoHouse
	gs.OrderRestrictions = nil
	gs.StarOrderRestrictions = nil

	gs.Round++
	log.Debug().Int("round", gs.Round).Msg("round cleanup")

	if gs.Round > 10 {
		resolveTiebreaker(gs)
		return
	}

	gs.Phase = game.WesterosPhase
	gs.WesterosStep = 0
}

// checkVictory ends the game as soon as a house holds 7 castle or
// stronghold areas.
func checkVictory(gs *game.GameState) {
	for _, h := range gs.PlayingHouses {
		if gs.CastleCount(h) >= 7 {
			gs.Winner = h
			log.Info().Str("house", h.String()).Msg("victory by castles")
			return
		}
	}
}

// resolveTiebreaker decides the game after round 10: castle points
// (stronghold 2, castle 1), then supply, then power, then Iron Throne.
func resolveTiebreaker(gs *game.GameState) {
	best := gs.PlayingHouses[0]
	bestScore := tiebreakScore(gs, best)
	for _, h := range gs.PlayingHouses[1:] {
		score := tiebreakScore(gs, h)
		if scoreBeats(score, bestScore) {
			best, bestScore = h, score
		}
	}
	gs.Winner = best
	log.Info().Str("house", best.String()).Msg("victory by tiebreak")
}

// tiebreakScore is (castle points, supply, power, iron throne position).
type tiebreak struct {
	castlePoints int
	supply       int
	power        int
	ironThrone   int
}

func tiebreakScore(gs *game.GameState, h game.House) tiebreak {
	points := 0
	for i := range gs.Areas {
		if gs.Areas[i].Owner != h {
			continue
		}
		switch {
		case game.Areas[i].Stronghold:
			points += 2
		case game.Areas[i].Castle:
			points++
		}
	}
	hs := gs.House(h)
	return tiebreak{points, hs.Supply, hs.Power, hs.IronThrone}
}

func scoreBeats(a, b tiebreak) bool {
	if a.castlePoints != b.castlePoints {
		return a.castlePoints > b.castlePoints
	}
	if a.supply != b.supply {
		return a.supply > b.supply
	}
	if a.power != b.power {
		return a.power > b.power
	}
	return a.ironThrone < b.ironThrone
}
