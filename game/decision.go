package game

// PendingDecision is the single outstanding choice the state machine is
// suspended on. Exactly one concrete variant is active at a time; the
// engine's apply step type-switches over them exhaustively.
type PendingDecision interface {
	// DecidingHouse is the house that must answer.
	DecidingHouse() House
	pendingDecision()
}

// PlaceOrders asks a house to assign order tokens during Planning.
type PlaceOrders struct {
	House House
}

// MessengerRavenDecision offers the King's Court leader the raven: swap
// one placed order, or pass.
type MessengerRavenDecision struct {
	House House
}

// ChooseRaid asks the house to resolve a raid order.
type ChooseRaid struct {
	House        House
	From         AreaID
	ValidTargets []AreaID
}

// ChooseMarch asks the house to resolve a march order.
type ChooseMarch struct {
	House             House
	From              AreaID
	ValidDestinations []AreaID
}

// LeavePowerTokenDecision asks whether to spend 1 power to keep control
// of a vacated land area.
type LeavePowerTokenDecision struct {
	House House
	Area  AreaID
}

// SupportDeclaration asks a non-combatant with a support order adjacent
// to the battle which side to back.
type SupportDeclaration struct {
	House    House
	Area     AreaID
	Attacker House
	Defender House
}

// SelectHouseCard asks a combatant for their combat card.
type SelectHouseCard struct {
	House          House
	AvailableCards []HouseCardID
}

// TyrionReplace asks the opponent to pick a replacement after Tyrion
// cancelled their card.
type TyrionReplace struct {
	Opponent House
}

// AeronSwap offers Greyjoy the 2-power card swap.
type AeronSwap struct {
	House House
}

// UseValyrianBladeDecision offers the Fiefdoms leader the once-per-game
// +1 blade bonus.
type UseValyrianBladeDecision struct {
	House House
}

// Retreat asks the combat loser where the surviving units go.
type Retreat struct {
	House         House
	Units         []Unit
	From          AreaID
	PossibleAreas []AreaID
}

// RobbRetreat lets the winner choose the loser's retreat area.
type RobbRetreat struct {
	House         House
	PossibleAreas []AreaID
}

// PatchfaceDiscard lets the card's player discard from the opponent's
// revealed hand.
type PatchfaceDiscard struct {
	House        House
	Opponent     House
	VisibleCards []HouseCardID
}

// CerseiRemoveOrder lets the card's player remove one of the opponent's
// remaining orders.
type CerseiRemoveOrder struct {
	House    House
	Opponent House
}

// DoranChooseTrack lets the card's player drop the opponent to the
// bottom of a chosen influence track.
type DoranChooseTrack struct {
	House    House
	Opponent House
}

// QueenOfThornsRemoveOrder lets the card's player remove one enemy order
// adjacent to the battle.
type QueenOfThornsRemoveOrder struct {
	House      House
	Opponent   House
	ValidAreas []AreaID
}

// Reconcile asks a house to remove one unit from an over-supply army.
type Reconcile struct {
	House       House
	Area        AreaID
	CurrentSize int
	MaxAllowed  int
}

// Muster asks a house what to build at its castles and strongholds.
type Muster struct {
	House House
	Areas []MusterArea
}

// BidRequest asks a house for a sealed bid in an auction.
type BidRequest struct {
	House House
	Type  BidType
	Track Track // meaningful for track auctions only
}

// WesterosChoice asks a track leader to pick between card options.
type WesterosChoice struct {
	CardName string
	Chooser  House
	Options  []string
}

func (d PlaceOrders) DecidingHouse() House              { return d.House }
func (d MessengerRavenDecision) DecidingHouse() House   { return d.House }
func (d ChooseRaid) DecidingHouse() House               { return d.House }
func (d ChooseMarch) DecidingHouse() House              { return d.House }
func (d LeavePowerTokenDecision) DecidingHouse() House  { return d.House }
func (d SupportDeclaration) DecidingHouse() House       { return d.House }
func (d SelectHouseCard) DecidingHouse() House          { return d.House }
func (d TyrionReplace) DecidingHouse() House            { return d.Opponent }
func (d AeronSwap) DecidingHouse() House                { return d.House }
func (d UseValyrianBladeDecision) DecidingHouse() House { return d.House }
func (d Retreat) DecidingHouse() House                  { return d.House }
func (d RobbRetreat) DecidingHouse() House              { return d.House }
func (d PatchfaceDiscard) DecidingHouse() House         { return d.House }
func (d CerseiRemoveOrder) DecidingHouse() House        { return d.House }
func (d DoranChooseTrack) DecidingHouse() House         { return d.House }
func (d QueenOfThornsRemoveOrder) DecidingHouse() House { return d.House }
func (d Reconcile) DecidingHouse() House                { return d.House }
func (d Muster) DecidingHouse() House                   { return d.House }
func (d BidRequest) DecidingHouse() House               { return d.House }
func (d WesterosChoice) DecidingHouse() House           { return d.Chooser }

func (PlaceOrders) pendingDecision()              {}
func (MessengerRavenDecision) pendingDecision()   {}
func (ChooseRaid) pendingDecision()               {}
func (ChooseMarch) pendingDecision()              {}
func (LeavePowerTokenDecision) pendingDecision()  {}
func (SupportDeclaration) pendingDecision()       {}
func (SelectHouseCard) pendingDecision()          {}
func (TyrionReplace) pendingDecision()            {}
func (AeronSwap) pendingDecision()                {}
func (UseValyrianBladeDecision) pendingDecision() {}
func (Retreat) pendingDecision()                  {}
func (RobbRetreat) pendingDecision()              {}
func (PatchfaceDiscard) pendingDecision()         {}
func (CerseiRemoveOrder) pendingDecision()        {}
func (DoranChooseTrack) pendingDecision()         {}
func (QueenOfThornsRemoveOrder) pendingDecision() {}
func (Reconcile) pendingDecision()                {}
func (Muster) pendingDecision()                   {}
func (BidRequest) pendingDecision()               {}
func (WesterosChoice) pendingDecision()           {}
