package game

// Phase is the top-level round phase.
type Phase int

const (
	WesterosPhase Phase = iota
	PlanningPhase
	ActionPhase
	CombatPhase
)

func (p Phase) String() string {
	switch p {
	case WesterosPhase:
		return "Westeros"
	case PlanningPhase:
		return "Planning"
	case ActionPhase:
		return "Action"
	case CombatPhase:
		return "Combat"
	default:
		return "Unknown"
	}
}

// ActionSubPhase orders the resolution of placed orders.
type ActionSubPhase int

const (
	RaidSubPhase ActionSubPhase = iota
	MarchSubPhase
	ConsolidateSubPhase
	DoneSubPhase
)

func (s ActionSubPhase) String() string {
	switch s {
	case RaidSubPhase:
		return "Raid"
	case MarchSubPhase:
		return "March"
	case ConsolidateSubPhase:
		return "ConsolidatePower"
	case DoneSubPhase:
		return "Done"
	default:
		return "Unknown"
	}
}

// CombatStage orders the stages within a single combat.
type CombatStage int

const (
	SupportStage CombatStage = iota
	CardsStage
	PreCombatStage
	ResolutionStage
	PostCombatStage
)

// SupportChoice is a supporter's declared side.
type SupportChoice int

const (
	SupportNone SupportChoice = iota
	SupportAttacker
	SupportDefender
)

// BidType distinguishes track auctions from the wildling auction.
type BidType int

const (
	BidIronThrone BidType = iota
	BidFiefdoms
	BidKingsCourt
	BidWildling
)

// Garrison is a fixed defensive strength on an area. Owner is NoHouse for
// neutral garrisons (King's Landing, The Eyrie, unclaimed home areas).
type Garrison struct {
	Owner    House
	Strength int
}

// HouseState holds everything owned by one house.
type HouseState struct {
	Name       House
	IronThrone int // track position, 1 = top
	Fiefdoms   int
	KingsCourt int
	Supply     int
	Power      int
	Pool       UnitPool
	Hand       []HouseCardID // private
	Discards   []HouseCardID // public
	UsedOrders []int         // token indices spent this round
}

// HasCard reports whether the card is in hand.
func (h *HouseState) HasCard(id HouseCardID) bool {
	for _, c := range h.Hand {
		if c == id {
			return true
		}
	}
	return false
}

// RemoveCard takes a card out of the hand. Returns false if absent.
func (h *HouseState) RemoveCard(id HouseCardID) bool {
	for i, c := range h.Hand {
		if c == id {
			h.Hand = append(h.Hand[:i], h.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// TrackPosition returns the house's position on the given track.
func (h *HouseState) TrackPosition(t Track) int {
	switch t {
	case IronThrone:
		return h.IronThrone
	case Fiefdoms:
		return h.Fiefdoms
	default:
		return h.KingsCourt
	}
}

// SetTrackPosition moves the house on the given track.
func (h *HouseState) SetTrackPosition(t Track, pos int) {
	switch t {
	case IronThrone:
		h.IronThrone = pos
	case Fiefdoms:
		h.Fiefdoms = pos
	default:
		h.KingsCourt = pos
	}
}

// AreaState is the dynamic per-area state.
type AreaState struct {
	Units   []Unit
	Order   *Order
	Owner   House
	Blocked bool
}

// CombatState tracks a single battle from start to teardown.
type CombatState struct {
	Attacker House
	Defender House
	Area     AreaID

	AttackingUnits []Unit
	DefendingUnits []Unit

	AttackerCard *HouseCardID
	DefenderCard *HouseCardID

	AttackerStrength int
	DefenderStrength int

	MarchFrom AreaID
	HasOrigin bool

	AttackerUsedBlade bool
	DefenderUsedBlade bool

	Supports map[AreaID]SupportChoice
	Stage    CombatStage

	// Ability bookkeeping. Explicit flags so a suspend/resume cycle
	// re-enters unambiguously.
	AeronResolved         bool
	TyrionResolved        bool
	QueenOfThornsResolved bool

	// Post-combat bookkeeping. The outcome (casualties, conquest) is
	// applied once; the win/loss abilities then run in a fixed order,
	// each suspending at most once, until the combat tears down.
	OutcomeApplied    bool
	AttackerWon       bool
	LoserSurvivors    []Unit
	RetreatResolved   bool
	CerseiResolved    bool
	PatchfaceResolved bool
	DoranResolved     bool

	// Supporting houses still to be asked, in turn order.
	PendingSupports []SupportQuery
}

// SupportQuery is one outstanding support declaration request.
type SupportQuery struct {
	Area  AreaID
	House House
}

// BiddingState tracks an in-flight auction.
type BiddingState struct {
	Type            BidType
	Bids            map[House]int
	CurrentTrack    Track
	TrackActive     bool
	RemainingTracks []Track
	BidOrder        []House
	NextBidder      int
}

// MusterArea is a castle or stronghold eligible for mustering.
type MusterArea struct {
	Area   AreaID
	Points int
}

// GameState is the single aggregate the engine mutates. All fields are
// exported; drivers treat the struct as read-only and mutate only through
// the engine entry points.
type GameState struct {
	Round          int // 1-10
	Phase          Phase
	ActionSubPhase ActionSubPhase
	ActionPlayer   int // index into TurnOrder

	Houses    map[House]*HouseState
	Areas     []AreaState // indexed by AreaID
	TurnOrder []House
	Wildling  int // threat, 0-12
	Garrisons map[AreaID]Garrison

	ValyrianBladeUsed  bool
	MessengerRavenUsed bool

	// RavenPeek is the house that spent the raven on a look at the top
	// wildling card this round. NoHouse when nobody did.
	RavenPeek House

	WesterosDeck1 []WesterosCard
	WesterosDeck2 []WesterosCard
	WesterosDeck3 []WesterosCard
	WildlingDeck  []WildlingCard

	OrderRestrictions     []OrderType
	StarOrderRestrictions []OrderType

	Combat  *CombatState
	Bidding *BiddingState

	WesterosDrawn   []WesterosCard
	WesterosStep    int
	MusterHouseIdx  int

	Seed       uint64
	RNGCounter uint64

	Pending PendingDecision
	Winner  House

	PlayingHouses []House
}

// PlayerCount is the number of houses in this game.
func (gs *GameState) PlayerCount() int {
	return len(gs.PlayingHouses)
}

// House returns the state of a house. Panics if the house is not playing.
func (gs *GameState) House(h House) *HouseState {
	hs, ok := gs.Houses[h]
	if !ok {
		panic("game: house not in play: " + h.String())
	}
	return hs
}

// Area returns the dynamic state of an area.
func (gs *GameState) Area(id AreaID) *AreaState {
	return &gs.Areas[id]
}

// CurrentActionPlayer is the house whose orders resolve next.
func (gs *GameState) CurrentActionPlayer() House {
	return gs.TurnOrder[gs.ActionPlayer]
}

// IsPlaying reports whether a house participates in this game.
func (gs *GameState) IsPlaying(h House) bool {
	for _, p := range gs.PlayingHouses {
		if p == h {
			return true
		}
	}
	return false
}

// TrackLeader returns the house at position 1 of a track.
func (gs *GameState) TrackLeader(t Track) House {
	for _, h := range gs.PlayingHouses {
		if gs.Houses[h].TrackPosition(t) == 1 {
			return h
		}
	}
	panic("game: no leader on track " + t.String())
}

// ControlledAreas lists the areas a house controls.
func (gs *GameState) ControlledAreas(h House) []AreaID {
	var out []AreaID
	for i := range gs.Areas {
		if gs.Areas[i].Owner == h {
			out = append(out, AreaID(i))
		}
	}
	return out
}

// CastleCount counts castle/stronghold areas the house controls.
func (gs *GameState) CastleCount(h House) int {
	n := 0
	for i := range gs.Areas {
		if gs.Areas[i].Owner == h && Areas[i].HasCastleOrStronghold() {
			n++
		}
	}
	return n
}

// Copy returns a deep copy of the state.
func (gs *GameState) Copy() *GameState {
	cp := *gs

	cp.Houses = make(map[House]*HouseState, len(gs.Houses))
	for h, hs := range gs.Houses {
		dup := *hs
		dup.Hand = append([]HouseCardID(nil), hs.Hand...)
		dup.Discards = append([]HouseCardID(nil), hs.Discards...)
		dup.UsedOrders = append([]int(nil), hs.UsedOrders...)
		cp.Houses[h] = &dup
	}

	cp.Areas = make([]AreaState, len(gs.Areas))
	for i, a := range gs.Areas {
		dup := a
		dup.Units = append([]Unit(nil), a.Units...)
		if a.Order != nil {
			o := *a.Order
			dup.Order = &o
		}
		cp.Areas[i] = dup
	}

	cp.TurnOrder = append([]House(nil), gs.TurnOrder...)
	cp.PlayingHouses = append([]House(nil), gs.PlayingHouses...)

	cp.Garrisons = make(map[AreaID]Garrison, len(gs.Garrisons))
	for id, g := range gs.Garrisons {
		cp.Garrisons[id] = g
	}

	cp.WesterosDeck1 = append([]WesterosCard(nil), gs.WesterosDeck1...)
	cp.WesterosDeck2 = append([]WesterosCard(nil), gs.WesterosDeck2...)
	cp.WesterosDeck3 = append([]WesterosCard(nil), gs.WesterosDeck3...)
	cp.WildlingDeck = append([]WildlingCard(nil), gs.WildlingDeck...)
	cp.WesterosDrawn = append([]WesterosCard(nil), gs.WesterosDrawn...)

	cp.OrderRestrictions = append([]OrderType(nil), gs.OrderRestrictions...)
	cp.StarOrderRestrictions = append([]OrderType(nil), gs.StarOrderRestrictions...)

	if gs.Combat != nil {
		c := *gs.Combat
		c.AttackingUnits = append([]Unit(nil), gs.Combat.AttackingUnits...)
		c.DefendingUnits = append([]Unit(nil), gs.Combat.DefendingUnits...)
		c.LoserSurvivors = append([]Unit(nil), gs.Combat.LoserSurvivors...)
		c.PendingSupports = append([]SupportQuery(nil), gs.Combat.PendingSupports...)
		if gs.Combat.AttackerCard != nil {
			id := *gs.Combat.AttackerCard
			c.AttackerCard = &id
		}
		if gs.Combat.DefenderCard != nil {
			id := *gs.Combat.DefenderCard
			c.DefenderCard = &id
		}
		c.Supports = make(map[AreaID]SupportChoice, len(gs.Combat.Supports))
		for id, s := range gs.Combat.Supports {
			c.Supports[id] = s
		}
		cp.Combat = &c
	}

	if gs.Bidding != nil {
		b := *gs.Bidding
		b.Bids = make(map[House]int, len(gs.Bidding.Bids))
		for h, v := range gs.Bidding.Bids {
			b.Bids[h] = v
		}
		b.RemainingTracks = append([]Track(nil), gs.Bidding.RemainingTracks...)
		b.BidOrder = append([]House(nil), gs.Bidding.BidOrder...)
		cp.Bidding = &b
	}

	return &cp
}

// SupplyLimits returns the maximum army sizes allowed at a supply level.
// Armies are groups of 2+ units in the same area.
func SupplyLimits(supply int) []int {
	if supply > 6 {
		supply = 6
	}
	if supply < 0 {
		supply = 0
	}
	tables := [7][]int{
		{2, 2},
		{3, 2},
		{3, 2, 2},
		{3, 2, 2, 2},
		{3, 3, 2, 2},
		{4, 3, 2, 2},
		{4, 3, 2, 2, 2},
	}
	return tables[supply]
}
