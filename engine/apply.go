package engine

import (
	"fmt"

	"throne/game"
)

// Apply answers the pending decision with the given action. Invalid
// input is rejected with an error before any mutation; on success the
// pending slot is cleared (or replaced, when the answer itself triggers
// a follow-up decision) and the caller is expected to call Advance.
func Apply(gs *game.GameState, action game.Action) error {
	if gs.Pending == nil {
		return fmt.Errorf("engine: no decision pending")
	}

	var err error
	switch d := gs.Pending.(type) {
	case game.PlaceOrders:
		err = applyPlaceOrders(gs, d, action)
	case game.MessengerRavenDecision:
		err = applyRaven(gs, d, action)
	case game.ChooseRaid:
		err = applyRaid(gs, d, action)
	case game.ChooseMarch:
		err = applyMarch(gs, d, action)
	case game.LeavePowerTokenDecision:
		err = applyLeaveToken(gs, d, action)
	case game.SupportDeclaration:
		err = applySupport(gs, d, action)
	case game.SelectHouseCard:
		err = applySelectCard(gs, d, action)
	case game.TyrionReplace:
		err = applyTyrionReplace(gs, d, action)
	case game.AeronSwap:
		err = applyAeronSwap(gs, d, action)
	case game.UseValyrianBladeDecision:
		err = applyBlade(gs, d, action)
	case game.Retreat:
		err = applyRetreat(gs, d, action)
	case game.RobbRetreat:
		err = applyRobbRetreat(gs, d, action)
	case game.PatchfaceDiscard:
		err = applyPatchface(gs, d, action)
	case game.CerseiRemoveOrder:
		err = applyCersei(gs, d, action)
	case game.DoranChooseTrack:
		err = applyDoran(gs, d, action)
	case game.QueenOfThornsRemoveOrder:
		err = applyQueenOfThorns(gs, d, action)
	case game.Reconcile:
		err = applyReconcile(gs, d, action)
	case game.Muster:
		err = applyMuster(gs, d, action)
	case game.BidRequest:
		err = applyBid(gs, d, action)
	case game.WesterosChoice:
		err = applyWesterosChoice(gs, d, action)
	default:
		panic(fmt.Sprintf("engine: unhandled pending decision %T", gs.Pending))
	}
	return err
}

func mismatch(pending game.PendingDecision, action game.Action) error {
	return fmt.Errorf("engine: action %T does not answer pending %T", action, pending)
}

// clearPending is called by every arm once validation passed and just
// before mutation starts.
func clearPending(gs *game.GameState) {
	gs.Pending = nil
}

// ── Planning ──────────────────────────────────────────────────────────

func applyPlaceOrders(gs *game.GameState, d game.PlaceOrders, action game.Action) error {
	a, ok := action.(game.PlaceOrdersAction)
	if !ok {
		return mismatch(d, action)
	}
	h := d.House
	hs := gs.House(h)

	starBudget := game.StarOrderLimit(gs.PlayerCount(), hs.KingsCourt)
	starUsed := 0
	for _, idx := range hs.UsedOrders {
		if game.OrderTokens[idx].Star {
			starUsed++
		}
	}
	seenArea := make(map[game.AreaID]bool)
	seenToken := make(map[int]bool)

	for _, p := range a.Orders {
		if p.TokenIndex < 0 || p.TokenIndex >= len(game.OrderTokens) {
			return fmt.Errorf("engine: order token index %d out of range", p.TokenIndex)
		}
		if int(p.Area) < 0 || int(p.Area) >= game.NumAreas {
			return fmt.Errorf("engine: area %d out of range", p.Area)
		}
		if seenArea[p.Area] {
			return fmt.Errorf("engine: two orders for %s", game.AreaName(p.Area))
		}
		if seenToken[p.TokenIndex] {
			return fmt.Errorf("engine: order token %d used twice", p.TokenIndex)
		}
		seenArea[p.Area] = true
		seenToken[p.TokenIndex] = true

		area := gs.Area(p.Area)
		if area.Owner != h || len(area.Units) == 0 {
			return fmt.Errorf("engine: %s cannot place an order on %s", h, game.AreaName(p.Area))
		}
		if area.Order != nil {
			return fmt.Errorf("engine: %s already has an order", game.AreaName(p.Area))
		}

		token := game.OrderTokens[p.TokenIndex]
		if err := checkTokenAllowed(gs, token); err != nil {
			return err
		}
		if token.Star {
			starUsed++
			if starUsed > starBudget {
				return fmt.Errorf("engine: starred order limit %d exceeded", starBudget)
			}
		}
	}

	// Every occupied area must be covered while tokens remain.
	uncovered := 0
	for i := range gs.Areas {
		area := &gs.Areas[i]
		if area.Owner == h && len(area.Units) > 0 && area.Order == nil && !seenArea[game.AreaID(i)] {
			uncovered++
		}
	}
	if uncovered > 0 && len(a.Orders) < usableTokenCount(gs, hs, starBudget) {
		return fmt.Errorf("engine: %s left %d areas without orders", h, uncovered)
	}

	clearPending(gs)
	for _, p := range a.Orders {
		token := game.OrderTokens[p.TokenIndex]
		gs.Area(p.Area).Order = &game.Order{
			Type:       token.Type,
			Strength:   token.Strength,
			Star:       token.Star,
			House:      h,
			TokenIndex: p.TokenIndex,
		}
		hs.UsedOrders = append(hs.UsedOrders, p.TokenIndex)
	}
	return nil
}

func checkTokenAllowed(gs *game.GameState, token game.OrderToken) error {
	for _, t := range gs.OrderRestrictions {
		if token.Type == t {
			return fmt.Errorf("engine: %s orders are restricted this round", t)
		}
	}
	if token.Star {
		for _, t := range gs.StarOrderRestrictions {
			if token.Type == t {
				return fmt.Errorf("engine: starred %s orders are restricted this round", t)
			}
		}
	}
	return nil
}

// usableTokenCount is how many tokens the house could legally still
// place given restrictions and the star budget.
func usableTokenCount(gs *game.GameState, hs *game.HouseState, starBudget int) int {
	used := make(map[int]bool, len(hs.UsedOrders))
	stars := 0
	for _, idx := range hs.UsedOrders {
		used[idx] = true
		if game.OrderTokens[idx].Star {
			stars++
		}
	}
	n := 0
	for idx, token := range game.OrderTokens {
		if used[idx] || checkTokenAllowed(gs, token) != nil {
			continue
		}
		if token.Star {
			if stars >= starBudget {
				continue
			}
			stars++
		}
		n++
	}
	return n
}

func applyRaven(gs *game.GameState, d game.MessengerRavenDecision, action game.Action) error {
	a, ok := action.(game.RavenAction)
	if !ok {
		return mismatch(d, action)
	}
	if a.Swap == nil {
		clearPending(gs)
		if a.PeekWildling {
			gs.RavenPeek = d.House
		}
		return nil
	}

	p := *a.Swap
	if p.TokenIndex < 0 || p.TokenIndex >= len(game.OrderTokens) {
		return fmt.Errorf("engine: order token index %d out of range", p.TokenIndex)
	}
	if int(p.Area) < 0 || int(p.Area) >= game.NumAreas {
		return fmt.Errorf("engine: area %d out of range", p.Area)
	}
	area := gs.Area(p.Area)
	if area.Owner != d.House || area.Order == nil {
		return fmt.Errorf("engine: raven can only swap one of %s's own orders", d.House)
	}
	token := game.OrderTokens[p.TokenIndex]
	if err := checkTokenAllowed(gs, token); err != nil {
		return err
	}
	hs := gs.House(d.House)
	for _, idx := range hs.UsedOrders {
		if idx == p.TokenIndex && idx != area.Order.TokenIndex {
			return fmt.Errorf("engine: order token %d already placed", p.TokenIndex)
		}
	}

	clearPending(gs)
	old := area.Order.TokenIndex
	for i, idx := range hs.UsedOrders {
		if idx == old {
			hs.UsedOrders[i] = p.TokenIndex
			break
		}
	}
	area.Order = &game.Order{
		Type:       token.Type,
		Strength:   token.Strength,
		Star:       token.Star,
		House:      d.House,
		TokenIndex: p.TokenIndex,
	}
	return nil
}

// ── Action phase ──────────────────────────────────────────────────────

func applyRaid(gs *game.GameState, d game.ChooseRaid, action game.Action) error {
	a, ok := action.(game.RaidAction)
	if !ok {
		return mismatch(d, action)
	}
	if a.Target != nil && !containsArea(d.ValidTargets, *a.Target) {
		return fmt.Errorf("engine: %s is not a raidable target", game.AreaName(*a.Target))
	}

	clearPending(gs)
	if a.Target != nil {
		target := gs.Area(*a.Target)
		// Raiding a consolidate order also steals a power token.
		if target.Order != nil && target.Order.Type == game.ConsolidatePower &&
			target.Owner != game.NoHouse && gs.House(target.Owner).Power > 0 {
			gs.House(target.Owner).Power--
			gs.House(d.House).Power++
		}
		target.Order = nil
	}
	gs.Area(d.From).Order = nil
	gs.ActionPlayer = (gs.ActionPlayer + 1) % gs.PlayerCount()
	return nil
}

func applyMarch(gs *game.GameState, d game.ChooseMarch, action game.Action) error {
	if _, ok := action.(game.MarchSkipAction); ok {
		clearPending(gs)
		gs.Area(d.From).Order = nil
		gs.ActionPlayer = (gs.ActionPlayer + 1) % gs.PlayerCount()
		return nil
	}
	a, ok := action.(game.MarchAction)
	if !ok {
		return mismatch(d, action)
	}
	if !containsArea(d.ValidDestinations, a.To) {
		return fmt.Errorf("engine: cannot march from %s to %s",
			game.AreaName(d.From), game.AreaName(a.To))
	}
	from := gs.Area(d.From)
	if len(a.UnitIndices) == 0 {
		return fmt.Errorf("engine: march moves no units")
	}
	seen := make(map[int]bool)
	for _, idx := range a.UnitIndices {
		if idx < 0 || idx >= len(from.Units) {
			return fmt.Errorf("engine: unit index %d out of range", idx)
		}
		if seen[idx] {
			return fmt.Errorf("engine: unit index %d repeated", idx)
		}
		seen[idx] = true
		u := from.Units[idx]
		if u.House != d.House {
			return fmt.Errorf("engine: unit %d belongs to %s", idx, u.House)
		}
		if u.Routed {
			return fmt.Errorf("engine: routed units cannot march")
		}
	}

	clearPending(gs)

	moving := make([]game.Unit, 0, len(a.UnitIndices))
	for _, idx := range a.UnitIndices {
		moving = append(moving, from.Units[idx])
	}
	kept := from.Units[:0]
	for idx, u := range from.Units {
		if !seen[idx] {
			kept = append(kept, u)
		}
	}
	from.Units = kept

	to := gs.Area(a.To)
	hostile := to.Owner != game.NoHouse && to.Owner != d.House
	enemyUnits := hostile && len(to.Units) > 0
	foreignGarrison := false
	if g, ok := gs.Garrisons[a.To]; ok && g.Owner != d.House {
		foreignGarrison = true
	}

	if enemyUnits || (hostile && foreignGarrison) {
		beginCombat(gs, d.House, to.Owner, a.To, moving, d.From)
		return nil
	}

	to.Units = append(to.Units, moving...)
	to.Owner = d.House

	if len(from.Units) == 0 && game.Areas[d.From].IsLand() {
		gs.Pending = game.LeavePowerTokenDecision{House: d.House, Area: d.From}
		return nil
	}
	if len(from.Units) == 0 {
		from.Owner = game.NoHouse
	}
	from.Order = nil
	gs.ActionPlayer = (gs.ActionPlayer + 1) % gs.PlayerCount()
	checkVictory(gs)
	return nil
}

func applyLeaveToken(gs *game.GameState, d game.LeavePowerTokenDecision, action game.Action) error {
	a, ok := action.(game.LeaveTokenAction)
	if !ok {
		return mismatch(d, action)
	}
	clearPending(gs)
	if a.Leave && gs.House(d.House).Power > 0 {
		gs.House(d.House).Power--
	} else {
		gs.Area(d.Area).Owner = game.NoHouse
	}
	gs.Area(d.Area).Order = nil
	gs.ActionPlayer = (gs.ActionPlayer + 1) % gs.PlayerCount()
	checkVictory(gs)
	return nil
}

// ── Combat ────────────────────────────────────────────────────────────

func applySupport(gs *game.GameState, d game.SupportDeclaration, action game.Action) error {
	a, ok := action.(game.DeclareSupportAction)
	if !ok {
		return mismatch(d, action)
	}
	switch a.Choice {
	case game.SupportNone, game.SupportAttacker, game.SupportDefender:
	default:
		return fmt.Errorf("engine: unknown support choice %d", a.Choice)
	}
	c := gs.Combat
	if c == nil {
		panic("engine: support declaration without combat")
	}

	clearPending(gs)
	c.Supports[d.Area] = a.Choice
	remaining := c.PendingSupports[:0]
	for _, q := range c.PendingSupports {
		if q.Area != d.Area {
			remaining = append(remaining, q)
		}
	}
	c.PendingSupports = remaining
	return nil
}

func applySelectCard(gs *game.GameState, d game.SelectHouseCard, action game.Action) error {
	a, ok := action.(game.SelectCardAction)
	if !ok {
		return mismatch(d, action)
	}
	hs := gs.House(d.House)
	if !hs.HasCard(a.Card) {
		return fmt.Errorf("engine: %s does not hold %s", d.House, a.Card)
	}
	c := gs.Combat
	if c == nil {
		panic("engine: card selection without combat")
	}

	clearPending(gs)
	id := a.Card
	if d.House == c.Attacker {
		c.AttackerCard = &id
	} else {
		c.DefenderCard = &id
	}
	hs.RemoveCard(id)
	hs.Discards = append(hs.Discards, id)
	return nil
}

func applyTyrionReplace(gs *game.GameState, d game.TyrionReplace, action game.Action) error {
	a, ok := action.(game.TyrionReplaceAction)
	if !ok {
		return mismatch(d, action)
	}
	hs := gs.House(d.Opponent)
	if !hs.HasCard(a.Card) {
		return fmt.Errorf("engine: %s does not hold %s", d.Opponent, a.Card)
	}
	c := gs.Combat
	if c == nil {
		panic("engine: card replacement without combat")
	}

	clearPending(gs)
	id := a.Card
	if d.Opponent == c.Attacker {
		c.AttackerCard = &id
	} else {
		c.DefenderCard = &id
	}
	hs.RemoveCard(id)
	hs.Discards = append(hs.Discards, id)
	return nil
}

func applyAeronSwap(gs *game.GameState, d game.AeronSwap, action game.Action) error {
	a, ok := action.(game.AeronSwapAction)
	if !ok {
		return mismatch(d, action)
	}
	if a.Card == nil {
		clearPending(gs)
		return nil
	}
	c := gs.Combat
	if c == nil {
		panic("engine: card swap without combat")
	}
	hs := gs.House(d.House)
	if hs.Power < 2 {
		return fmt.Errorf("engine: %s cannot pay 2 power for the swap", d.House)
	}

	old := c.AttackerCard
	if d.House == c.Defender {
		old = c.DefenderCard
	}
	if !hs.HasCard(*a.Card) && (old == nil || *a.Card != *old) {
		return fmt.Errorf("engine: %s does not hold %s", d.House, *a.Card)
	}

	clearPending(gs)
	hs.Power -= 2
	if old != nil {
		cancelCard(gs, d.House, old)
	}
	id := *a.Card
	if d.House == c.Attacker {
		c.AttackerCard = &id
	} else {
		c.DefenderCard = &id
	}
	hs.RemoveCard(id)
	hs.Discards = append(hs.Discards, id)
	return nil
}

func applyBlade(gs *game.GameState, d game.UseValyrianBladeDecision, action game.Action) error {
	a, ok := action.(game.BladeAction)
	if !ok {
		return mismatch(d, action)
	}
	c := gs.Combat
	if c == nil {
		panic("engine: blade decision without combat")
	}
	clearPending(gs)
	if a.Use {
		gs.ValyrianBladeUsed = true
		if d.House == c.Attacker {
			c.AttackerUsedBlade = true
		} else {
			c.DefenderUsedBlade = true
		}
	}
	return nil
}

func applyRetreat(gs *game.GameState, d game.Retreat, action game.Action) error {
	a, ok := action.(game.RetreatAction)
	if !ok {
		return mismatch(d, action)
	}
	if !containsArea(d.PossibleAreas, a.To) {
		return fmt.Errorf("engine: cannot retreat to %s", game.AreaName(a.To))
	}

	c := gs.Combat
	if c == nil {
		panic("engine: retreat without combat")
	}

	clearPending(gs)
	placeRouted(gs, d.House, d.Units, a.To)
	c.LoserSurvivors = nil
	return nil
}

func applyRobbRetreat(gs *game.GameState, d game.RobbRetreat, action game.Action) error {
	a, ok := action.(game.RobbRetreatAction)
	if !ok {
		return mismatch(d, action)
	}
	if !containsArea(d.PossibleAreas, a.To) {
		return fmt.Errorf("engine: cannot retreat to %s", game.AreaName(a.To))
	}
	c := gs.Combat
	if c == nil {
		panic("engine: forced retreat without combat")
	}

	clearPending(gs)
	placeRouted(gs, c.Defender, c.LoserSurvivors, a.To)
	c.LoserSurvivors = nil
	return nil
}

// placeRouted drops the beaten survivors into their retreat area, routed
// on arrival. The units were already lifted off the battlefield when the
// combat resolved.
func placeRouted(gs *game.GameState, h game.House, units []game.Unit, to game.AreaID) {
	dst := gs.Area(to)
	for _, u := range units {
		u.Routed = true
		dst.Units = append(dst.Units, u)
	}
	if dst.Owner == game.NoHouse {
		dst.Owner = h
	}
}

func applyPatchface(gs *game.GameState, d game.PatchfaceDiscard, action game.Action) error {
	a, ok := action.(game.PatchfaceAction)
	if !ok {
		return mismatch(d, action)
	}
	hs := gs.House(d.Opponent)
	if !hs.HasCard(a.Card) {
		return fmt.Errorf("engine: %s does not hold %s", d.Opponent, a.Card)
	}

	clearPending(gs)
	hs.RemoveCard(a.Card)
	hs.Discards = append(hs.Discards, a.Card)
	return nil
}

func applyCersei(gs *game.GameState, d game.CerseiRemoveOrder, action game.Action) error {
	a, ok := action.(game.CerseiAction)
	if !ok {
		return mismatch(d, action)
	}
	if int(a.Area) < 0 || int(a.Area) >= game.NumAreas {
		return fmt.Errorf("engine: area %d out of range", a.Area)
	}
	area := gs.Area(a.Area)
	if area.Owner != d.Opponent || area.Order == nil {
		return fmt.Errorf("engine: %s has no order on %s", d.Opponent, game.AreaName(a.Area))
	}

	clearPending(gs)
	area.Order = nil
	return nil
}

func applyDoran(gs *game.GameState, d game.DoranChooseTrack, action game.Action) error {
	a, ok := action.(game.DoranAction)
	if !ok {
		return mismatch(d, action)
	}
	switch a.Track {
	case game.IronThrone, game.Fiefdoms, game.KingsCourt:
	default:
		return fmt.Errorf("engine: unknown track %d", a.Track)
	}

	clearPending(gs)
	demoteToBottom(gs, d.Opponent, a.Track)
	return nil
}

// demoteToBottom drops a house to the last seat of a track, closing the
// gap above it.
func demoteToBottom(gs *game.GameState, h game.House, t game.Track) {
	old := gs.House(h).TrackPosition(t)
	for _, other := range gs.PlayingHouses {
		if pos := gs.House(other).TrackPosition(t); pos > old {
			gs.House(other).SetTrackPosition(t, pos-1)
		}
	}
	gs.House(h).SetTrackPosition(t, gs.PlayerCount())
	if t == game.IronThrone {
		recomputeTurnOrder(gs)
	}
}

func applyQueenOfThorns(gs *game.GameState, d game.QueenOfThornsRemoveOrder, action game.Action) error {
	a, ok := action.(game.QueenOfThornsAction)
	if !ok {
		return mismatch(d, action)
	}
	if !containsArea(d.ValidAreas, a.Area) {
		return fmt.Errorf("engine: no removable order on %s", game.AreaName(a.Area))
	}

	clearPending(gs)
	gs.Area(a.Area).Order = nil
	return nil
}

// ── Supply and mustering ──────────────────────────────────────────────

func applyReconcile(gs *game.GameState, d game.Reconcile, action game.Action) error {
	a, ok := action.(game.ReconcileAction)
	if !ok {
		return mismatch(d, action)
	}
	if a.Area != d.Area {
		return fmt.Errorf("engine: must reconcile %s, got %s",
			game.AreaName(d.Area), game.AreaName(a.Area))
	}
	area := gs.Area(a.Area)
	if a.UnitIndex < 0 || a.UnitIndex >= len(area.Units) {
		return fmt.Errorf("engine: unit index %d out of range", a.UnitIndex)
	}

	clearPending(gs)
	u := area.Units[a.UnitIndex]
	area.Units = append(area.Units[:a.UnitIndex], area.Units[a.UnitIndex+1:]...)
	gs.House(d.House).Pool.Add(u.Type, 1)

	// Keep asking until every house fits its supply again.
	queueReconcile(gs)
	return nil
}

func applyMuster(gs *game.GameState, d game.Muster, action game.Action) error {
	a, ok := action.(game.MusterAction)
	if !ok {
		return mismatch(d, action)
	}

	budget := make(map[game.AreaID]int, len(d.Areas))
	for _, ma := range d.Areas {
		budget[ma.Area] = ma.Points
	}
	spent := make(map[game.AreaID]int)
	pool := gs.House(d.House).Pool // copy for validation

	for _, o := range a.Orders {
		points, ok := budget[o.Area]
		if !ok {
			return fmt.Errorf("engine: %s cannot muster at %s", d.House, game.AreaName(o.Area))
		}
		var cost int
		switch o.Kind {
		case game.MusterBuild:
			cost = o.Unit.MusterCost()
			if pool.Get(o.Unit) <= 0 {
				return fmt.Errorf("engine: no %s left in the pool", o.Unit)
			}
			pool.Add(o.Unit, -1)
		case game.MusterUpgrade:
			cost = 1
			if pool.Knights <= 0 {
				return fmt.Errorf("engine: no knights left for an upgrade")
			}
			if !areaHasFootman(gs, o.Area, d.House, countUpgrades(a.Orders, o.Area)) {
				return fmt.Errorf("engine: no footman to upgrade at %s", game.AreaName(o.Area))
			}
			pool.Knights--
			pool.Footmen++
		default:
			return fmt.Errorf("engine: unknown muster kind %d", o.Kind)
		}
		spent[o.Area] += cost
		if spent[o.Area] > points {
			return fmt.Errorf("engine: muster points exceeded at %s", game.AreaName(o.Area))
		}
	}

	clearPending(gs)
	hs := gs.House(d.House)
	for _, o := range a.Orders {
		switch o.Kind {
		case game.MusterBuild:
			hs.Pool.Add(o.Unit, -1)
			gs.Area(o.Area).Units = append(gs.Area(o.Area).Units, game.Unit{
				Type:  o.Unit,
				House: d.House,
			})
		case game.MusterUpgrade:
			units := gs.Area(o.Area).Units
			for i := range units {
				if units[i].House == d.House && units[i].Type == game.Footman {
					units[i].Type = game.Knight
					hs.Pool.Knights--
					hs.Pool.Footmen++
					break
				}
			}
		}
	}

	// Westeros-wide mustering continues with the next house.
	if gs.MusterHouseIdx > 0 {
		gs.MusterHouseIdx++
	}
	return nil
}

func countUpgrades(orders []game.MusterOrder, area game.AreaID) int {
	n := 0
	for _, o := range orders {
		if o.Area == area && o.Kind == game.MusterUpgrade {
			n++
		}
	}
	return n
}

func areaHasFootman(gs *game.GameState, area game.AreaID, h game.House, needed int) bool {
	n := 0
	for _, u := range gs.Area(area).Units {
		if u.House == h && u.Type == game.Footman {
			n++
		}
	}
	return n >= needed
}

// ── Bidding and Westeros choices ──────────────────────────────────────

func applyBid(gs *game.GameState, d game.BidRequest, action game.Action) error {
	a, ok := action.(game.BidAction)
	if !ok {
		return mismatch(d, action)
	}
	if a.Amount < 0 {
		return fmt.Errorf("engine: negative bid")
	}
	b := gs.Bidding
	if b == nil {
		panic("engine: bid without an auction")
	}

	clearPending(gs)
	bid := a.Amount
	if power := gs.House(d.House).Power; bid > power {
		bid = power
	}
	b.Bids[d.House] = bid
	b.NextBidder++
	return nil
}

func applyWesterosChoice(gs *game.GameState, d game.WesterosChoice, action game.Action) error {
	a, ok := action.(game.WesterosChoiceAction)
	if !ok {
		return mismatch(d, action)
	}
	if a.Option < 0 || a.Option >= len(d.Options) {
		return fmt.Errorf("engine: option %d out of range", a.Option)
	}

	clearPending(gs)
	switch d.CardName {
	case "A Throne of Blades":
		if a.Option == 0 {
			gs.MusterHouseIdx = 1
		} else {
			resolveSupplyUpdate(gs)
		}
	case "Dark Wings, Dark Words":
		if a.Option == 0 {
			beginClashOfKings(gs)
		} else {
			resolveGameOfThrones(gs)
		}
	case "Put to the Sword":
		types := []game.OrderType{
			game.March, game.Defense, game.Support, game.Raid, game.ConsolidatePower,
		}
		gs.StarOrderRestrictions = append(gs.StarOrderRestrictions, types[a.Option])
	}
	return nil
}

func containsArea(list []game.AreaID, id game.AreaID) bool {
	for _, a := range list {
		if a == id {
			return true
		}
	}
	return false
}
