package game

// The physical game splits information three ways: public (board, tracks,
// power counts, discards, revealed orders), private (your hand, your
// unrevealed orders), and hidden (deck order, opponents' face-down
// orders). PlayerView carries only what one seat is allowed to know;
// agents receive a PlayerView and never the raw GameState.

// PlayerView is the redacted projection of GameState for one house.
type PlayerView struct {
	Viewer         House
	Round          int
	Phase          Phase
	ActionSubPhase ActionSubPhase
	Wildling       int
	TurnOrder      []House
	PlayingHouses  []House

	HouseInfo map[House]PublicHouseInfo
	Areas     []AreaView
	Garrisons map[AreaID]Garrison

	// Combat is public once initiated.
	Combat *CombatState

	// Pending is set only when the decision addresses the viewer.
	Pending PendingDecision

	ValyrianBladeUsed  bool
	MessengerRavenUsed bool

	OrderRestrictions     []OrderType
	StarOrderRestrictions []OrderType

	Winner House

	// Private to the viewer.
	MyHand   []HouseCardID
	MyOrders map[AreaID]Order

	// TopWildlingCard is set only for the house that peeked with the
	// messenger raven this round.
	TopWildlingCard *WildlingCard
}

// PublicHouseInfo is what everyone can see about a house.
type PublicHouseInfo struct {
	Name       House
	IronThrone int
	Fiefdoms   int
	KingsCourt int
	Supply     int
	Power      int
	CardsInHand int
	Discards   []HouseCardID
	Pool       UnitPool
}

// AreaView is one board area as seen by the viewer. Order is nil when no
// order is placed or when an opponent's order is still face-down; the
// HasHiddenOrder flag distinguishes the two.
type AreaView struct {
	ID             AreaID
	Units          []Unit
	Owner          House
	Order          *Order
	HasHiddenOrder bool
	Blocked        bool
}

// Orders are face-down during Planning and flipped for the rest of the
// round.
func ordersRevealed(gs *GameState) bool {
	switch gs.Phase {
	case ActionPhase, CombatPhase, WesterosPhase:
		return true
	default:
		return false
	}
}

// NewPlayerView builds the view of the state for one house.
func NewPlayerView(gs *GameState, viewer House) *PlayerView {
	revealed := ordersRevealed(gs)

	areas := make([]AreaView, NumAreas)
	for i := range gs.Areas {
		a := &gs.Areas[i]
		mine := a.Owner == viewer

		var order *Order
		hidden := false
		switch {
		case revealed || mine:
			if a.Order != nil {
				o := *a.Order
				order = &o
			}
		default:
			hidden = a.Order != nil
		}

		areas[i] = AreaView{
			ID:             AreaID(i),
			Units:          append([]Unit(nil), a.Units...),
			Owner:          a.Owner,
			Order:          order,
			HasHiddenOrder: hidden,
			Blocked:        a.Blocked,
		}
	}

	info := make(map[House]PublicHouseInfo, len(gs.Houses))
	for h, hs := range gs.Houses {
		info[h] = PublicHouseInfo{
			Name:        h,
			IronThrone:  hs.IronThrone,
			Fiefdoms:    hs.Fiefdoms,
			KingsCourt:  hs.KingsCourt,
			Supply:      hs.Supply,
			Power:       hs.Power,
			CardsInHand: len(hs.Hand),
			Discards:    append([]HouseCardID(nil), hs.Discards...),
			Pool:        hs.Pool,
		}
	}

	myOrders := make(map[AreaID]Order)
	if !revealed {
		for i := range gs.Areas {
			if gs.Areas[i].Owner == viewer && gs.Areas[i].Order != nil {
				myOrders[AreaID(i)] = *gs.Areas[i].Order
			}
		}
	}

	garrisons := make(map[AreaID]Garrison, len(gs.Garrisons))
	for id, g := range gs.Garrisons {
		garrisons[id] = g
	}

	var combat *CombatState
	if gs.Combat != nil {
		cp := gs.Copy()
		combat = cp.Combat
	}

	var pending PendingDecision
	if gs.Pending != nil && gs.Pending.DecidingHouse() == viewer {
		pending = gs.Pending
	}

	var topWildling *WildlingCard
	if gs.RavenPeek == viewer && len(gs.WildlingDeck) > 0 {
		c := gs.WildlingDeck[len(gs.WildlingDeck)-1]
		topWildling = &c
	}

	return &PlayerView{
		Viewer:                viewer,
		Round:                 gs.Round,
		Phase:                 gs.Phase,
		ActionSubPhase:        gs.ActionSubPhase,
		Wildling:              gs.Wildling,
		TurnOrder:             append([]House(nil), gs.TurnOrder...),
		PlayingHouses:         append([]House(nil), gs.PlayingHouses...),
		HouseInfo:             info,
		Areas:                 areas,
		Garrisons:             garrisons,
		Combat:                combat,
		Pending:               pending,
		ValyrianBladeUsed:     gs.ValyrianBladeUsed,
		MessengerRavenUsed:    gs.MessengerRavenUsed,
		OrderRestrictions:     append([]OrderType(nil), gs.OrderRestrictions...),
		StarOrderRestrictions: append([]OrderType(nil), gs.StarOrderRestrictions...),
		Winner:                gs.Winner,
		MyHand:                append([]HouseCardID(nil), gs.House(viewer).Hand...),
		MyOrders:              myOrders,
		TopWildlingCard:       topWildling,
	}
}

// PossibleHand deduces which cards an opponent might still hold. The
// seven-card sets and the discard piles are public, so the difference is
// fair knowledge for any player.
func PossibleHand(gs *GameState, h House) []HouseCardID {
	discards := gs.House(h).Discards
	var out []HouseCardID
	for _, id := range HouseCardIDs(h) {
		held := true
		for _, d := range discards {
			if d == id {
				held = false
				break
			}
		}
		if held {
			out = append(out, id)
		}
	}
	return out
}
