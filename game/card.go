package game

// HouseCardID identifies one of the 42 house cards.
type HouseCardID int

// NoCard stands in for a combatant whose hand is exhausted: zero
// strength, no icons, no ability. It is never held, played from a hand
// or discarded.
const NoCard HouseCardID = -1

const (
	// Stark
	EddardStark HouseCardID = iota
	RobbStark
	GreatjonUmber
	RooseBolton
	TheBlackfish
	SerRodrikCassel
	CatelynStark
	// Lannister
	TywinLannister
	SerGregorClegane
	SerJaimeLannister
	TheHound
	TyrionLannister
	SerKevanLannister
	CerseiLannister
	// Baratheon
	StannisBaratheon
	RenlyBaratheon
	BrienneOfTarth
	SerDavosSeaworth
	Melisandre
	SalladhorSaan
	Patchface
	// Greyjoy
	EuronCrowsEye
	VictarionGreyjoy
	BalonGreyjoy
	TheonGreyjoy
	AshaGreyjoy
	DagmerCleftjaw
	AeronDamphair
	// Tyrell
	MaceTyrell
	SerLorasTyrell
	SerGarlanTyrell
	RandyllTarly
	MargaeryTyrell
	AlesterFlorent
	QueenOfThorns
	// Martell
	TheRedViper
	AreoHotah
	ObaraSand
	Darkstar
	NymeriaSand
	ArianneMartell
	DoranMartell
)

var houseCardNames = map[HouseCardID]string{
	EddardStark:       "Eddard Stark",
	RobbStark:         "Robb Stark",
	GreatjonUmber:     "Greatjon Umber",
	RooseBolton:       "Roose Bolton",
	TheBlackfish:      "The Blackfish",
	SerRodrikCassel:   "Ser Rodrik Cassel",
	CatelynStark:      "Catelyn Stark",
	TywinLannister:    "Tywin Lannister",
	SerGregorClegane:  "Ser Gregor Clegane",
	SerJaimeLannister: "Ser Jaime Lannister",
	TheHound:          "The Hound",
	TyrionLannister:   "Tyrion Lannister",
	SerKevanLannister: "Ser Kevan Lannister",
	CerseiLannister:   "Cersei Lannister",
	StannisBaratheon:  "Stannis Baratheon",
	RenlyBaratheon:    "Renly Baratheon",
	BrienneOfTarth:    "Brienne of Tarth",
	SerDavosSeaworth:  "Ser Davos Seaworth",
	Melisandre:        "Melisandre",
	SalladhorSaan:     "Salladhor Saan",
	Patchface:         "Patchface",
	EuronCrowsEye:     "Euron Crow's Eye",
	VictarionGreyjoy:  "Victarion Greyjoy",
	BalonGreyjoy:      "Balon Greyjoy",
	TheonGreyjoy:      "Theon Greyjoy",
	AshaGreyjoy:       "Asha Greyjoy",
	DagmerCleftjaw:    "Dagmer Cleftjaw",
	AeronDamphair:     "Aeron Damphair",
	MaceTyrell:        "Mace Tyrell",
	SerLorasTyrell:    "Ser Loras Tyrell",
	SerGarlanTyrell:   "Ser Garlan Tyrell",
	RandyllTarly:      "Randyll Tarly",
	MargaeryTyrell:    "Margaery Tyrell",
	AlesterFlorent:    "Alester Florent",
	QueenOfThorns:     "Queen of Thorns",
	TheRedViper:       "The Red Viper",
	AreoHotah:         "Areo Hotah",
	ObaraSand:         "Obara Sand",
	Darkstar:          "Darkstar",
	NymeriaSand:       "Nymeria Sand",
	ArianneMartell:    "Arianne Martell",
	DoranMartell:      "Doran Martell",
}

func (id HouseCardID) String() string {
	if id == NoCard {
		return "No Card"
	}
	if name, ok := houseCardNames[id]; ok {
		return name
	}
	return "Unknown"
}

// HouseCard is a combat card: printed strength plus sword and
// fortification icons. Text abilities are resolved by the engine.
type HouseCard struct {
	ID             HouseCardID
	House          House
	Strength       int
	Swords         int
	Fortifications int
}

var houseCardTable = map[House][]HouseCard{
	Stark: {
		{EddardStark, Stark, 4, 2, 0},
		{RobbStark, Stark, 3, 0, 0},
		{GreatjonUmber, Stark, 2, 2, 0},
		{RooseBolton, Stark, 2, 0, 0},
		{TheBlackfish, Stark, 1, 0, 0},
		{SerRodrikCassel, Stark, 1, 0, 2},
		{CatelynStark, Stark, 0, 0, 0},
	},
	Lannister: {
		{TywinLannister, Lannister, 4, 0, 0},
		{SerGregorClegane, Lannister, 3, 3, 0},
		{SerJaimeLannister, Lannister, 2, 1, 0},
		{TheHound, Lannister, 2, 0, 2},
		{TyrionLannister, Lannister, 1, 0, 0},
		{SerKevanLannister, Lannister, 1, 0, 0},
		{CerseiLannister, Lannister, 0, 0, 0},
	},
	Baratheon: {
		{StannisBaratheon, Baratheon, 4, 0, 0},
		{RenlyBaratheon, Baratheon, 3, 0, 0},
		{BrienneOfTarth, Baratheon, 2, 1, 1},
		{SerDavosSeaworth, Baratheon, 2, 0, 0},
		{Melisandre, Baratheon, 1, 1, 0},
		{SalladhorSaan, Baratheon, 1, 0, 0},
		{Patchface, Baratheon, 0, 0, 0},
	},
	Greyjoy: {
		{EuronCrowsEye, Greyjoy, 4, 1, 0},
		{VictarionGreyjoy, Greyjoy, 3, 0, 0},
		{BalonGreyjoy, Greyjoy, 2, 0, 0},
		{TheonGreyjoy, Greyjoy, 2, 0, 0},
		{AshaGreyjoy, Greyjoy, 1, 0, 0},
		{DagmerCleftjaw, Greyjoy, 1, 1, 1},
		{AeronDamphair, Greyjoy, 0, 0, 0},
	},
	Tyrell: {
		{MaceTyrell, Tyrell, 4, 0, 0},
		{SerLorasTyrell, Tyrell, 3, 0, 0},
		{SerGarlanTyrell, Tyrell, 2, 2, 0},
		{RandyllTarly, Tyrell, 2, 2, 0},
		{MargaeryTyrell, Tyrell, 1, 0, 1},
		{AlesterFlorent, Tyrell, 1, 0, 1},
		{QueenOfThorns, Tyrell, 0, 0, 0},
	},
	Martell: {
		{TheRedViper, Martell, 4, 2, 1},
		{AreoHotah, Martell, 3, 0, 1},
		{ObaraSand, Martell, 2, 1, 0},
		{Darkstar, Martell, 2, 1, 0},
		{NymeriaSand, Martell, 1, 0, 0},
		{ArianneMartell, Martell, 1, 0, 0},
		{DoranMartell, Martell, 0, 0, 0},
	},
}

// HouseCards returns the seven cards of a house.
func HouseCards(h House) []HouseCard {
	cards := make([]HouseCard, len(houseCardTable[h]))
	copy(cards, houseCardTable[h])
	return cards
}

// HouseCardIDs returns the seven card IDs of a house.
func HouseCardIDs(h House) []HouseCardID {
	ids := make([]HouseCardID, 0, 7)
	for _, c := range houseCardTable[h] {
		ids = append(ids, c.ID)
	}
	return ids
}

// GetHouseCard looks up a card by ID. Panics on unknown IDs.
func GetHouseCard(id HouseCardID) HouseCard {
	if id == NoCard {
		return HouseCard{ID: NoCard, House: NoHouse}
	}
	for _, cards := range houseCardTable {
		for _, c := range cards {
			if c.ID == id {
				return c
			}
		}
	}
	panic("game: unknown house card id")
}

// WesterosCardType enumerates the event cards of the three Westeros decks.
type WesterosCardType int

const (
	SupplyCard WesterosCardType = iota
	Mustering
	AThroneOfBlades
	WinterIsComing
	LastDaysOfSummer
	ClashOfKings
	GameOfThrones
	DarkWingsDarkWords
	WildlingAttack
	PutToTheSword
	SeaOfStorms
	RainsOfAutumn
	FeastForCrows
	WebOfLies
	StormOfSwords
)

// WesterosCard is an event card belonging to deck 1, 2 or 3.
type WesterosCard struct {
	Deck         int
	Type         WesterosCardType
	WildlingIcon bool
}

// WesterosDeck returns a fresh, unshuffled copy of the given deck (1-3).
func WesterosDeck(deck int) []WesterosCard {
	var types []WesterosCardType
	var icons []bool
	switch deck {
	case 1:
		types = []WesterosCardType{
			SupplyCard, SupplyCard, SupplyCard,
			Mustering, Mustering, Mustering,
			AThroneOfBlades, AThroneOfBlades,
			WinterIsComing, LastDaysOfSummer,
		}
		icons = []bool{false, false, false, false, false, false, true, true, false, true}
	case 2:
		types = []WesterosCardType{
			ClashOfKings, ClashOfKings, ClashOfKings,
			GameOfThrones, GameOfThrones, GameOfThrones,
			DarkWingsDarkWords, DarkWingsDarkWords,
			WinterIsComing, LastDaysOfSummer,
		}
		icons = []bool{false, false, false, false, false, false, true, true, false, true}
	case 3:
		types = []WesterosCardType{
			WildlingAttack, WildlingAttack, WildlingAttack,
			PutToTheSword, PutToTheSword,
			SeaOfStorms, RainsOfAutumn, FeastForCrows, WebOfLies, StormOfSwords,
		}
		icons = []bool{false, false, false, true, true, true, true, true, true, true}
	default:
		panic("game: westeros deck must be 1-3")
	}
	cards := make([]WesterosCard, len(types))
	for i, t := range types {
		cards[i] = WesterosCard{Deck: deck, Type: t, WildlingIcon: icons[i]}
	}
	return cards
}

// WildlingCardType enumerates the nine wildling attack cards.
type WildlingCardType int

const (
	AKingBeyondTheWall WildlingCardType = iota
	CrowKillers
	MammothRiders
	MassingOnTheMilkwater
	PreemptiveRaid
	RattleshirtsRaiders
	SilenceAtTheWall
	SkinchangerScout
	TheHordeDescends
)

// WildlingCard is drawn when a wildling attack resolves.
type WildlingCard struct {
	Type WildlingCardType
}

// WildlingDeck returns a fresh, unshuffled wildling deck.
func WildlingDeck() []WildlingCard {
	types := []WildlingCardType{
		AKingBeyondTheWall, CrowKillers, MammothRiders,
		MassingOnTheMilkwater, PreemptiveRaid, RattleshirtsRaiders,
		SilenceAtTheWall, SkinchangerScout, TheHordeDescends,
	}
	cards := make([]WildlingCard, len(types))
	for i, t := range types {
		cards[i] = WildlingCard{Type: t}
	}
	return cards
}
