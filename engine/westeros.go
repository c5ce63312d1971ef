package engine

import (
	"github.com/rs/zerolog/log"

	"throne/game"
)

// stepWesteros runs one slice of the Westeros phase. In-flight auctions
// and mustering are drained first so a resumed state picks up exactly
// where it suspended; then the three drawn cards resolve in deck order.
func stepWesteros(gs *game.GameState) {
	if gs.Bidding != nil {
		stepBidding(gs)
		if gs.Pending != nil || gs.Bidding != nil {
			return
		}
	}

	if gs.MusterHouseIdx > 0 {
		stepMustering(gs)
		if gs.Pending != nil || gs.MusterHouseIdx > 0 {
			return
		}
	}

	if gs.WesterosStep == 0 {
		drawWesterosCards(gs)
		gs.WesterosStep = 1
	}

	for gs.WesterosStep >= 1 && gs.WesterosStep <= 3 {
		idx := gs.WesterosStep - 1
		if idx >= len(gs.WesterosDrawn) {
			gs.WesterosStep++
			continue
		}
		card := gs.WesterosDrawn[idx]
		// Commit the step before resolving so re-entry skips this card.
		gs.WesterosStep++

		resolveWesterosCard(gs, card)

		if gs.Pending != nil {
			return
		}
		if gs.Bidding != nil {
			stepBidding(gs)
			if gs.Pending != nil || gs.Bidding != nil {
				return
			}
		}
		if gs.MusterHouseIdx > 0 {
			stepMustering(gs)
			if gs.Pending != nil || gs.MusterHouseIdx > 0 {
				return
			}
		}
	}

	gs.WesterosDrawn = nil
	gs.WesterosStep = 0
	gs.Phase = game.PlanningPhase
}

// drawWesterosCards flips the top card of each deck. Wildling icons push
// the threat up by 2 each, capped at 12.
func drawWesterosCards(gs *game.GameState) {
	gs.WesterosDrawn = gs.WesterosDrawn[:0]
	icons := 0

	decks := []*[]game.WesterosCard{&gs.WesterosDeck1, &gs.WesterosDeck2, &gs.WesterosDeck3}
	for _, deck := range decks {
		if len(*deck) == 0 {
			continue
		}
		c := (*deck)[len(*deck)-1]
		*deck = (*deck)[:len(*deck)-1]
		if c.WildlingIcon {
			icons++
		}
		gs.WesterosDrawn = append(gs.WesterosDrawn, c)
	}

	gs.Wildling += icons * 2
	if gs.Wildling > 12 {
		gs.Wildling = 12
	}
	log.Debug().Int("round", gs.Round).Int("threat", gs.Wildling).Msg("westeros cards drawn")
}

func resolveWesterosCard(gs *game.GameState, card game.WesterosCard) {
	// Winter Is Coming reshuffles its own deck and resolves a fresh
	// draw in its place. The replacement may be another copy, hence
	// the loop.
	for card.Type == game.WinterIsComing {
		rng := nextRNG(gs)
		var deck *[]game.WesterosCard
		switch card.Deck {
		case 1:
			deck = &gs.WesterosDeck1
		case 2:
			deck = &gs.WesterosDeck2
		default:
			deck = &gs.WesterosDeck3
		}
		// The card shuffles back in with the rest of its deck. An
		// otherwise empty deck has nothing to resolve in its place.
		*deck = append(*deck, card)
		if len(*deck) == 1 {
			return
		}
		shuffleWesteros(rng, *deck)
		next := (*deck)[len(*deck)-1]
		*deck = (*deck)[:len(*deck)-1]

		// WesterosStep already moved past this card.
		if slot := gs.WesterosStep - 2; slot >= 0 && slot < len(gs.WesterosDrawn) {
			gs.WesterosDrawn[slot] = next
		}
		if next.WildlingIcon {
			gs.Wildling += 2
			if gs.Wildling > 12 {
				gs.Wildling = 12
			}
		}
		card = next
	}

	switch card.Type {
	case game.SupplyCard:
		resolveSupplyUpdate(gs)

	case game.Mustering:
		gs.MusterHouseIdx = 1

	case game.AThroneOfBlades:
		gs.Pending = game.WesterosChoice{
			CardName: "A Throne of Blades",
			Chooser:  trackHolder(gs, game.IronThrone),
			Options:  []string{"Mustering", "Supply"},
		}

	case game.ClashOfKings:
		beginClashOfKings(gs)

	case game.GameOfThrones:
		resolveGameOfThrones(gs)

	case game.DarkWingsDarkWords:
		gs.Pending = game.WesterosChoice{
			CardName: "Dark Wings, Dark Words",
			Chooser:  trackHolder(gs, game.KingsCourt),
			Options:  []string{"Clash of Kings", "Game of Thrones"},
		}

	case game.WildlingAttack:
		beginWildlingAttack(gs)

	case game.PutToTheSword:
		gs.Pending = game.WesterosChoice{
			CardName: "Put to the Sword",
			Chooser:  trackHolder(gs, game.Fiefdoms),
			Options: []string{
				"Ban starred March",
				"Ban starred Defense",
				"Ban starred Support",
				"Ban starred Raid",
				"Ban starred Consolidate Power",
			},
		}

	case game.SeaOfStorms:
		gs.OrderRestrictions = append(gs.OrderRestrictions, game.Raid)
	case game.FeastForCrows:
		gs.OrderRestrictions = append(gs.OrderRestrictions, game.ConsolidatePower)
	case game.WebOfLies:
		gs.OrderRestrictions = append(gs.OrderRestrictions, game.Support)
	case game.StormOfSwords:
		gs.OrderRestrictions = append(gs.OrderRestrictions, game.Defense)
	case game.RainsOfAutumn:
		gs.StarOrderRestrictions = append(gs.StarOrderRestrictions, game.March)

	case game.LastDaysOfSummer:
		// No effect.
	}
}

// resolveSupplyUpdate recomputes every house's supply from the board,
// then forces the first over-limit army into reconciliation.
func resolveSupplyUpdate(gs *game.GameState) {
	for _, h := range gs.PlayingHouses {
		gs.House(h).Supply = game.CalculateSupply(gs, h)
	}
	queueReconcile(gs)
}

// queueReconcile surfaces the next supply violation across all houses,
// if any remains.
func queueReconcile(gs *game.GameState) {
	for _, h := range gs.PlayingHouses {
		if !game.CheckSupplyViolation(gs, h) {
			continue
		}
		violations := game.FindSupplyViolations(gs, h)
		if len(violations) == 0 {
			continue
		}
		v := violations[0]
		gs.Pending = game.Reconcile{
			House:       h,
			Area:        v.Area,
			CurrentSize: v.Size,
			MaxAllowed:  v.MaxAllowed,
		}
		return
	}
}

// resolveGameOfThrones pays each house the power icons it controls.
func resolveGameOfThrones(gs *game.GameState) {
	for _, h := range gs.PlayingHouses {
		gain := 0
		for i := range gs.Areas {
			if gs.Areas[i].Owner == h {
				gain += game.Areas[i].PowerIcons
			}
		}
		gs.House(h).Power += gain
	}
}

// stepMustering walks houses in seating order, asking each one with an
// eligible castle or stronghold what to build. MusterHouseIdx is
// 1-based; 0 means no mustering in flight.
func stepMustering(gs *game.GameState) {
	for gs.MusterHouseIdx > 0 {
		idx := gs.MusterHouseIdx - 1
		if idx >= len(gs.PlayingHouses) {
			gs.MusterHouseIdx = 0
			return
		}
		h := gs.PlayingHouses[idx]
		areas := musterAreas(gs, h)
		if len(areas) == 0 {
			gs.MusterHouseIdx++
			continue
		}
		gs.Pending = game.Muster{House: h, Areas: areas}
		return
	}
}
