package game

// Action is a player's answer to a pending decision. Each action variant
// pairs with exactly one PendingDecision variant.
type Action interface {
	action()
}

// OrderPlacement assigns one token to one area.
type OrderPlacement struct {
	Area       AreaID
	TokenIndex int
}

// PlaceOrdersAction answers PlaceOrders.
type PlaceOrdersAction struct {
	Orders []OrderPlacement
}

// RavenAction answers MessengerRavenDecision: swap one placed order, or
// peek at the top wildling card instead. Both zero means pass.
type RavenAction struct {
	Swap         *OrderPlacement
	PeekWildling bool
}

// RaidAction answers ChooseRaid. Target is nil to forfeit the raid.
type RaidAction struct {
	Target *AreaID
}

// MarchAction answers ChooseMarch by moving the selected units.
type MarchAction struct {
	To          AreaID
	UnitIndices []int
}

// MarchSkipAction answers ChooseMarch by removing the order unused.
type MarchSkipAction struct{}

// LeaveTokenAction answers LeavePowerTokenDecision.
type LeaveTokenAction struct {
	Leave bool
}

// DeclareSupportAction answers SupportDeclaration.
type DeclareSupportAction struct {
	Choice SupportChoice
}

// SelectCardAction answers SelectHouseCard.
type SelectCardAction struct {
	Card HouseCardID
}

// TyrionReplaceAction answers TyrionReplace.
type TyrionReplaceAction struct {
	Card HouseCardID
}

// AeronSwapAction answers AeronSwap. Card is nil to decline.
type AeronSwapAction struct {
	Card *HouseCardID
}

// BladeAction answers UseValyrianBladeDecision.
type BladeAction struct {
	Use bool
}

// RetreatAction answers Retreat. Ignored when no areas were possible.
type RetreatAction struct {
	To AreaID
}

// RobbRetreatAction answers RobbRetreat.
type RobbRetreatAction struct {
	To AreaID
}

// PatchfaceAction answers PatchfaceDiscard.
type PatchfaceAction struct {
	Card HouseCardID
}

// CerseiAction answers CerseiRemoveOrder.
type CerseiAction struct {
	Area AreaID
}

// DoranAction answers DoranChooseTrack.
type DoranAction struct {
	Track Track
}

// QueenOfThornsAction answers QueenOfThornsRemoveOrder.
type QueenOfThornsAction struct {
	Area AreaID
}

// ReconcileAction answers Reconcile by removing one unit.
type ReconcileAction struct {
	Area      AreaID
	UnitIndex int
}

// MusterKind distinguishes building a new unit from upgrading a footman.
type MusterKind int

const (
	MusterBuild MusterKind = iota
	MusterUpgrade
)

// MusterOrder is one build or upgrade in a muster response.
type MusterOrder struct {
	Area AreaID
	Kind MusterKind
	Unit UnitType
}

// MusterAction answers Muster. An empty list musters nothing.
type MusterAction struct {
	Orders []MusterOrder
}

// BidAction answers BidRequest.
type BidAction struct {
	Amount int
}

// WesterosChoiceAction answers WesterosChoice by option index.
type WesterosChoiceAction struct {
	Option int
}

func (PlaceOrdersAction) action()    {}
func (RavenAction) action()          {}
func (RaidAction) action()           {}
func (MarchAction) action()          {}
func (MarchSkipAction) action()      {}
func (LeaveTokenAction) action()     {}
func (DeclareSupportAction) action() {}
func (SelectCardAction) action()     {}
func (TyrionReplaceAction) action()  {}
func (AeronSwapAction) action()      {}
func (BladeAction) action()          {}
func (RetreatAction) action()        {}
func (RobbRetreatAction) action()    {}
func (PatchfaceAction) action()      {}
func (CerseiAction) action()         {}
func (DoranAction) action()          {}
func (QueenOfThornsAction) action()  {}
func (ReconcileAction) action()      {}
func (MusterAction) action()         {}
func (BidAction) action()            {}
func (WesterosChoiceAction) action() {}
