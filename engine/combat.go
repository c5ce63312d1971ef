package engine

import (
	"github.com/rs/zerolog/log"

	"throne/game"
)

// beginCombat opens a battle for an area. Adjacent support orders from
// third parties queue up as declarations; the combatants' own support
// orders are committed to their side immediately.
func beginCombat(gs *game.GameState, attacker, defender game.House, area game.AreaID,
	attacking []game.Unit, marchFrom game.AreaID) {

	defending := append([]game.Unit(nil), gs.Area(area).Units...)

	var queries []game.SupportQuery
	for _, adj := range game.Areas[area].Adjacent {
		a := gs.Area(adj)
		if a.Order == nil || a.Order.Type != game.Support {
			continue
		}
		if a.Owner != game.NoHouse && a.Owner != attacker && a.Owner != defender {
			queries = append(queries, game.SupportQuery{Area: adj, House: a.Owner})
		}
	}

	stage := game.CardsStage
	if len(queries) > 0 {
		stage = game.SupportStage
	}

	c := &game.CombatState{
		Attacker:        attacker,
		Defender:        defender,
		Area:            area,
		AttackingUnits:  attacking,
		DefendingUnits:  defending,
		MarchFrom:       marchFrom,
		HasOrigin:       true,
		Supports:        make(map[game.AreaID]game.SupportChoice),
		Stage:           stage,
		PendingSupports: queries,
	}

	for _, adj := range game.Areas[area].Adjacent {
		a := gs.Area(adj)
		if a.Order == nil || a.Order.Type != game.Support {
			continue
		}
		switch a.Owner {
		case attacker:
			c.Supports[adj] = game.SupportAttacker
		case defender:
			c.Supports[adj] = game.SupportDefender
		}
	}

	gs.Combat = c
	gs.Phase = game.CombatPhase
	log.Debug().
		Str("attacker", attacker.String()).
		Str("defender", defender.String()).
		Str("area", game.Areas[area].Name).
		Msg("combat begins")
}

// stepCombat advances one combat stage per call; the Advance loop keeps
// re-entering until a decision is pending or the battle resolves.
func stepCombat(gs *game.GameState) {
	c := gs.Combat
	if c == nil {
		gs.Phase = game.ActionPhase
		return
	}

	switch c.Stage {
	case game.SupportStage:
		if len(c.PendingSupports) > 0 {
			q := c.PendingSupports[0]
			gs.Pending = game.SupportDeclaration{
				House:    q.House,
				Area:     q.Area,
				Attacker: c.Attacker,
				Defender: c.Defender,
			}
			return
		}
		c.Stage = game.CardsStage

	case game.CardsStage:
		if c.AttackerCard == nil {
			if cards := availableCards(gs, c.Attacker); len(cards) > 0 {
				gs.Pending = game.SelectHouseCard{
					House:          c.Attacker,
					AvailableCards: cards,
				}
				return
			}
			id := game.NoCard
			c.AttackerCard = &id
		}
		if c.DefenderCard == nil {
			if cards := availableCards(gs, c.Defender); len(cards) > 0 {
				gs.Pending = game.SelectHouseCard{
					House:          c.Defender,
					AvailableCards: cards,
				}
				return
			}
			id := game.NoCard
			c.DefenderCard = &id
		}
		c.Stage = game.PreCombatStage

	case game.PreCombatStage:
		stepPreCombat(gs, c)

	case game.ResolutionStage:
		if !gs.ValyrianBladeUsed {
			holder := trackHolder(gs, game.Fiefdoms)
			if holder == c.Attacker || holder == c.Defender {
				gs.Pending = game.UseValyrianBladeDecision{House: holder}
				c.Stage = game.PostCombatStage
				return
			}
		}
		c.Stage = game.PostCombatStage

	case game.PostCombatStage:
		stepPostCombat(gs)
	}
}

// availableCards returns a combatant's hand for card selection. An
// exhausted hand skips selection and fights with NoCard instead.
func availableCards(gs *game.GameState, h game.House) []game.HouseCardID {
	return append([]game.HouseCardID(nil), gs.House(h).Hand...)
}

// stepPreCombat runs the reveal-time abilities in a fixed order, each
// guarded by a resolved flag so the stage re-enters cleanly.
func stepPreCombat(gs *game.GameState, c *game.CombatState) {
	if !c.TyrionResolved {
		// Cancelling NoCard would give the opponent nothing to re-pick.
		if *c.AttackerCard == game.TyrionLannister && *c.DefenderCard != game.NoCard {
			c.TyrionResolved = true
			cancelCard(gs, c.Defender, c.DefenderCard)
			c.DefenderCard = nil
			gs.Pending = game.TyrionReplace{Opponent: c.Defender}
			return
		}
		if *c.DefenderCard == game.TyrionLannister && *c.AttackerCard != game.NoCard {
			c.TyrionResolved = true
			cancelCard(gs, c.Attacker, c.AttackerCard)
			c.AttackerCard = nil
			gs.Pending = game.TyrionReplace{Opponent: c.Attacker}
			return
		}
		c.TyrionResolved = true
	}

	if !c.AeronResolved {
		if *c.AttackerCard == game.AeronDamphair && gs.House(c.Attacker).Power >= 2 {
			c.AeronResolved = true
			gs.Pending = game.AeronSwap{House: c.Attacker}
			return
		}
		if *c.DefenderCard == game.AeronDamphair && gs.House(c.Defender).Power >= 2 {
			c.AeronResolved = true
			gs.Pending = game.AeronSwap{House: c.Defender}
			return
		}
		c.AeronResolved = true
	}

	if !c.QueenOfThornsResolved {
		c.QueenOfThornsResolved = true
		if *c.AttackerCard == game.QueenOfThorns {
			if areas := queenOfThornsTargets(gs, c.Area, c.Defender); len(areas) > 0 {
				gs.Pending = game.QueenOfThornsRemoveOrder{
					House:      c.Attacker,
					Opponent:   c.Defender,
					ValidAreas: areas,
				}
				return
			}
		} else if *c.DefenderCard == game.QueenOfThorns {
			if areas := queenOfThornsTargets(gs, c.Area, c.Attacker); len(areas) > 0 {
				gs.Pending = game.QueenOfThornsRemoveOrder{
					House:      c.Defender,
					Opponent:   c.Attacker,
					ValidAreas: areas,
				}
				return
			}
		}
	}

	c.Stage = game.ResolutionStage
}

// cancelCard returns a played card from the discard pile to its hand.
func cancelCard(gs *game.GameState, h game.House, id *game.HouseCardID) {
	if id == nil {
		return
	}
	hs := gs.House(h)
	for i, d := range hs.Discards {
		if d == *id {
			hs.Discards = append(hs.Discards[:i], hs.Discards[i+1:]...)
			break
		}
	}
	hs.Hand = append(hs.Hand, *id)
}

// queenOfThornsTargets lists areas adjacent to the battle holding an
// opponent order. The march order driving the combat is off limits.
func queenOfThornsTargets(gs *game.GameState, battle game.AreaID, victim game.House) []game.AreaID {
	var out []game.AreaID
	for _, adj := range game.Areas[battle].Adjacent {
		a := gs.Area(adj)
		if a.Owner == victim && a.Order != nil && a.Order.Type != game.March {
			out = append(out, adj)
		}
	}
	return out
}

// stepPostCombat applies the battle's outcome once, then walks the
// win/loss abilities in a fixed order. Each ability may suspend on a
// decision; its resolved flag is set before suspending, so re-entry
// continues with the next one. The combat tears down only after the
// whole chain has run.
func stepPostCombat(gs *game.GameState) {
	c := gs.Combat
	if c == nil {
		gs.Phase = game.ActionPhase
		return
	}

	if !c.OutcomeApplied {
		applyCombatOutcome(gs, c)
	}

	winner, loser := c.Attacker, c.Defender
	winnerCard, loserCard := *c.AttackerCard, *c.DefenderCard
	if !c.AttackerWon {
		winner, loser = c.Defender, c.Attacker
		winnerCard, loserCard = *c.DefenderCard, *c.AttackerCard
	}

	if !c.RetreatResolved {
		c.RetreatResolved = true
		if len(c.LoserSurvivors) > 0 {
			if c.AttackerWon {
				options := findRetreatAreas(gs, c.Area, loser)
				switch {
				case len(options) == 0:
					// Nowhere to go: the remainder is destroyed.
					for _, u := range c.LoserSurvivors {
						gs.House(loser).Pool.Add(u.Type, 1)
					}
					c.LoserSurvivors = nil
				case winnerCard == game.RobbStark:
					gs.Pending = game.RobbRetreat{House: winner, PossibleAreas: options}
					return
				default:
					gs.Pending = game.Retreat{
						House:         loser,
						Units:         append([]game.Unit(nil), c.LoserSurvivors...),
						From:          c.Area,
						PossibleAreas: options,
					}
					return
				}
			} else {
				// The beaten attack limps home routed.
				from := c.Area
				if c.HasOrigin {
					from = c.MarchFrom
				}
				for _, u := range c.LoserSurvivors {
					u.Routed = true
					gs.Area(from).Units = append(gs.Area(from).Units, u)
				}
				c.LoserSurvivors = nil
			}
		}
	}

	if !c.CerseiResolved {
		c.CerseiResolved = true
		if winnerCard == game.CerseiLannister && houseHasOrders(gs, loser) {
			gs.Pending = game.CerseiRemoveOrder{House: winner, Opponent: loser}
			return
		}
	}

	if !c.PatchfaceResolved {
		c.PatchfaceResolved = true
		if winnerCard == game.Patchface && len(gs.House(loser).Hand) > 0 {
			gs.Pending = game.PatchfaceDiscard{
				House:        winner,
				Opponent:     loser,
				VisibleCards: append([]game.HouseCardID(nil), gs.House(loser).Hand...),
			}
			return
		}
	}

	if !c.DoranResolved {
		c.DoranResolved = true
		if loserCard == game.DoranMartell {
			gs.Pending = game.DoranChooseTrack{House: loser, Opponent: winner}
			return
		}
	}

	finalizeCombat(gs)
}

// applyCombatOutcome totals both sides, removes casualties and settles
// area control. Roose Bolton and Tywin resolve here; they never need a
// decision.
func applyCombatOutcome(gs *game.GameState, c *game.CombatState) {
	attacker, defender, area := c.Attacker, c.Defender, c.Area
	atkCard := game.GetHouseCard(*c.AttackerCard)
	defCard := game.GetHouseCard(*c.DefenderCard)
	areaDef := &game.Areas[area]

	// Unit strength. Siege engines only count against fortified areas.
	atkUnits := 0
	for _, u := range c.AttackingUnits {
		if u.Type == game.SiegeEngine && areaDef.HasCastleOrStronghold() {
			atkUnits += 4
		} else {
			atkUnits += u.Type.CombatStrength()
		}
	}
	defUnits := 0
	for _, u := range c.DefendingUnits {
		defUnits += u.Type.CombatStrength()
	}

	marchBonus := 0
	if c.HasOrigin {
		if o := gs.Area(c.MarchFrom).Order; o != nil {
			marchBonus = o.Strength
		}
	}

	defenseBonus := 0
	if o := gs.Area(area).Order; o != nil && o.Type == game.Defense {
		defenseBonus = o.Strength
	}

	garrisonBonus := 0
	if g, ok := gs.Garrisons[area]; ok && g.Owner == defender {
		garrisonBonus = g.Strength
	}

	atkSupport, defSupport := 0, 0
	for supArea, choice := range c.Supports {
		if choice == game.SupportNone {
			continue
		}
		sup := gs.Area(supArea)
		total := 0
		if sup.Order != nil {
			total += sup.Order.Strength
		}
		for _, u := range sup.Units {
			total += u.Type.CombatStrength()
		}
		if choice == game.SupportAttacker {
			atkSupport += total
		} else {
			defSupport += total
		}
	}

	atkBlade, defBlade := 0, 0
	if c.AttackerUsedBlade {
		atkBlade = 1
	}
	if c.DefenderUsedBlade {
		defBlade = 1
	}

	// Catelyn scales with the discard pile, her own card included.
	atkAbility, defAbility := 0, 0
	if *c.AttackerCard == game.CatelynStark {
		atkAbility = len(gs.House(attacker).Discards)
	}
	if *c.DefenderCard == game.CatelynStark {
		defAbility = len(gs.House(defender).Discards)
	}

	atkTotal := atkUnits + atkCard.Strength + marchBonus + atkSupport + atkBlade + atkAbility
	defTotal := defUnits + defCard.Strength + defenseBonus + garrisonBonus + defSupport + defBlade + defAbility
	c.AttackerStrength = atkTotal
	c.DefenderStrength = defTotal

	// Ties favor the better Fiefdoms seat.
	c.AttackerWon = atkTotal > defTotal ||
		(atkTotal == defTotal && gs.House(attacker).Fiefdoms < gs.House(defender).Fiefdoms)

	var winnerSwords, loserForts int
	if c.AttackerWon {
		winnerSwords, loserForts = atkCard.Swords, defCard.Fortifications
	} else {
		winnerSwords, loserForts = defCard.Swords, atkCard.Fortifications
	}
	casualties := winnerSwords - loserForts
	if casualties < 0 {
		casualties = 0
	}

	log.Debug().
		Str("attacker", attacker.String()).Int("atk", atkTotal).
		Str("defender", defender.String()).Int("def", defTotal).
		Int("casualties", casualties).
		Msg("combat resolved")

	if c.AttackerWon {
		c.LoserSurvivors = applyCasualties(gs, defender, c.DefendingUnits, casualties)

		a := gs.Area(area)
		kept := a.Units[:0]
		for _, u := range a.Units {
			if u.House != defender {
				kept = append(kept, u)
			}
		}
		a.Units = append(kept, c.AttackingUnits...)
		a.Owner = attacker

		applyRooseBolton(gs, defender, *c.DefenderCard)
		applyTywin(gs, attacker, defender, *c.AttackerCard)
	} else {
		c.LoserSurvivors = applyCasualties(gs, attacker, c.AttackingUnits, casualties)

		applyRooseBolton(gs, attacker, *c.AttackerCard)
		applyTywin(gs, defender, attacker, *c.DefenderCard)
	}

	c.OutcomeApplied = true
}

// applyCasualties kills units from the front of the list, returning
// them to the owner's pool, and hands back the survivors.
func applyCasualties(gs *game.GameState, owner game.House, units []game.Unit, n int) []game.Unit {
	for i := 0; i < n && i < len(units); i++ {
		gs.House(owner).Pool.Add(units[i].Type, 1)
	}
	if n > len(units) {
		n = len(units)
	}
	return append([]game.Unit(nil), units[n:]...)
}

// applyRooseBolton returns the losing card to its hand.
func applyRooseBolton(gs *game.GameState, loser game.House, card game.HouseCardID) {
	if card != game.RooseBolton {
		return
	}
	hs := gs.House(loser)
	for i, d := range hs.Discards {
		if d == game.RooseBolton {
			hs.Discards = append(hs.Discards[:i], hs.Discards[i+1:]...)
			hs.Hand = append(hs.Hand, game.RooseBolton)
			return
		}
	}
}

// applyTywin moves up to 2 power from the loser to the winner.
func applyTywin(gs *game.GameState, winner, loser game.House, winnerCard game.HouseCardID) {
	if winnerCard != game.TywinLannister {
		return
	}
	steal := gs.House(loser).Power
	if steal > 2 {
		steal = 2
	}
	gs.House(loser).Power -= steal
	gs.House(winner).Power += steal
}

func houseHasOrders(gs *game.GameState, h game.House) bool {
	for i := range gs.Areas {
		if gs.Areas[i].Owner == h && gs.Areas[i].Order != nil {
			return true
		}
	}
	return false
}

// finalizeCombat tears the battle down: the march order is spent, play
// returns to the Action phase with the next seat, and victory is
// checked against the new board.
func finalizeCombat(gs *game.GameState) {
	if c := gs.Combat; c != nil && c.HasOrigin {
		gs.Area(c.MarchFrom).Order = nil
	}
	gs.Combat = nil
	gs.Phase = game.ActionPhase
	gs.ActionPlayer = (gs.ActionPlayer + 1) % gs.PlayerCount()
	checkVictory(gs)
}
