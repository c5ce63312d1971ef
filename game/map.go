package game

// AreaID indexes into the static Areas table.
type AreaID int

// AreaType classifies an area as land, sea or port.
type AreaType int

const (
	Land AreaType = iota
	Sea
	Port
)

// Area IDs, ordered lands (0-37), seas (38-49), ports (50-58).
const (
	CastleBlack AreaID = iota
	Karhold
	TheStonyShore
	Winterfell
	WhiteHarbor
	WidowsWatch
	MoatCailin
	GreywaterWatch
	FlintsFinger
	Seagard
	TheTwins
	TheFingers
	MountainsOfTheMoon
	TheEyrie
	Riverrun
	Lannisport
	StoneySept
	SearoadMarches
	Harrenhal
	CrackclawPoint
	KingsLanding
	Blackwater
	Kingswood
	StormsEnd
	Highgarden
	TheReach
	DornishMarches
	Oldtown
	ThreeTowers
	TheBoneway
	PrincesPass
	Yronwood
	Starfall
	SaltShore
	Sunspear
	Pyke
	Dragonstone
	TheArbor
	BayOfIce
	TheShiveringSea
	SunsetSea
	IronmansBay
	TheGoldenSound
	TheNarrowSea
	BlackwaterBay
	ShipbreakerBay
	RedwyneStraits
	WestSummerSea
	EastSummerSea
	SeaOfDorne
	WinterfellPort
	WhiteHarborPort
	PykePort
	LannisportPort
	DragonstonePort
	StormsEndPort
	HighgardenPort
	OldtownPort
	SunspearPort
)

// NumAreas is the total area count.
const NumAreas = 59

// Area is the static description of a map area. Nothing here changes
// during a game.
type Area struct {
	ID          AreaID
	Name        string
	Type        AreaType
	Castle      bool
	Stronghold  bool
	SupplyIcons int
	PowerIcons  int
	Adjacent    []AreaID

	// Port links. Only set for port areas.
	ConnectedLand AreaID
	ConnectedSea  AreaID
}

// MusterPoints an area provides when a mustering event resolves there.
func (a *Area) MusterPoints() int {
	if a.Stronghold {
		return 2
	}
	if a.Castle {
		return 1
	}
	return 0
}

func (a *Area) IsLand() bool { return a.Type == Land }
func (a *Area) IsSea() bool  { return a.Type == Sea }
func (a *Area) IsPort() bool { return a.Type == Port }

// HasCastleOrStronghold reports whether the area counts toward victory.
func (a *Area) HasCastleOrStronghold() bool { return a.Castle || a.Stronghold }

func land(id AreaID, name string, castle, stronghold bool, supply, power int, adj ...AreaID) Area {
	return Area{ID: id, Name: name, Type: Land, Castle: castle, Stronghold: stronghold,
		SupplyIcons: supply, PowerIcons: power, Adjacent: adj}
}

func sea(id AreaID, name string, adj ...AreaID) Area {
	return Area{ID: id, Name: name, Type: Sea, Adjacent: adj}
}

func port(id AreaID, name string, landID, seaID AreaID) Area {
	return Area{ID: id, Name: name, Type: Port, Adjacent: []AreaID{landID, seaID},
		ConnectedLand: landID, ConnectedSea: seaID}
}

// Areas is the full static map.
var Areas = [NumAreas]Area{
	land(CastleBlack, "Castle Black", false, false, 0, 1,
		Winterfell, Karhold, BayOfIce, TheShiveringSea),
	land(Karhold, "Karhold", false, false, 0, 1,
		CastleBlack, Winterfell, TheShiveringSea),
	land(TheStonyShore, "The Stony Shore", false, false, 1, 0,
		Winterfell, BayOfIce),
	land(Winterfell, "Winterfell", false, true, 1, 1,
		CastleBlack, Karhold, TheStonyShore, WhiteHarbor, MoatCailin, BayOfIce, TheShiveringSea),
	land(WhiteHarbor, "White Harbor", true, false, 0, 0,
		Winterfell, MoatCailin, WidowsWatch, TheNarrowSea, TheShiveringSea),
	land(WidowsWatch, "Widow's Watch", false, false, 1, 0,
		WhiteHarbor, TheNarrowSea, TheShiveringSea),
	land(MoatCailin, "Moat Cailin", true, false, 0, 0,
		Winterfell, WhiteHarbor, GreywaterWatch, Seagard, TheTwins, TheNarrowSea),
	land(GreywaterWatch, "Greywater Watch", false, false, 1, 0,
		MoatCailin, Seagard, FlintsFinger, BayOfIce, IronmansBay),
	land(FlintsFinger, "Flint's Finger", true, false, 0, 0,
		GreywaterWatch, BayOfIce, IronmansBay, SunsetSea),
	land(Seagard, "Seagard", false, true, 1, 1,
		MoatCailin, GreywaterWatch, TheTwins, Riverrun, IronmansBay),
	land(TheTwins, "The Twins", false, false, 0, 1,
		MoatCailin, Seagard, TheFingers, MountainsOfTheMoon, TheNarrowSea),
	land(TheFingers, "The Fingers", false, false, 1, 0,
		TheTwins, MountainsOfTheMoon, TheNarrowSea),
	land(MountainsOfTheMoon, "The Mountains of the Moon", false, false, 1, 0,
		TheTwins, TheFingers, TheEyrie, CrackclawPoint, TheNarrowSea),
	land(TheEyrie, "The Eyrie", true, false, 1, 1,
		MountainsOfTheMoon, TheNarrowSea),
	land(Riverrun, "Riverrun", false, true, 1, 1,
		Seagard, Lannisport, StoneySept, Harrenhal, IronmansBay, TheGoldenSound),
	land(Lannisport, "Lannisport", false, true, 2, 0,
		Riverrun, StoneySept, SearoadMarches, TheGoldenSound),
	land(StoneySept, "Stoney Sept", false, false, 0, 1,
		Riverrun, Lannisport, Harrenhal, SearoadMarches, Blackwater),
	land(SearoadMarches, "Searoad Marches", false, false, 1, 0,
		Lannisport, StoneySept, Highgarden, Blackwater, TheReach, SunsetSea, TheGoldenSound, WestSummerSea),
	land(Harrenhal, "Harrenhal", true, false, 0, 1,
		Riverrun, StoneySept, CrackclawPoint, KingsLanding),
	land(CrackclawPoint, "Crackclaw Point", true, false, 0, 0,
		Harrenhal, KingsLanding, Blackwater, MountainsOfTheMoon, BlackwaterBay, ShipbreakerBay, TheNarrowSea),
	land(KingsLanding, "King's Landing", false, true, 0, 2,
		Harrenhal, CrackclawPoint, Blackwater, Kingswood, TheReach, BlackwaterBay),
	land(Blackwater, "Blackwater", false, false, 2, 0,
		KingsLanding, StoneySept, SearoadMarches, CrackclawPoint, TheReach, Kingswood, TheBoneway, DornishMarches),
	land(Kingswood, "Kingswood", false, false, 1, 1,
		KingsLanding, Blackwater, StormsEnd, TheBoneway, TheReach, BlackwaterBay, ShipbreakerBay),
	land(StormsEnd, "Storm's End", true, false, 0, 0,
		Kingswood, TheBoneway, EastSummerSea, SeaOfDorne, ShipbreakerBay),
	land(Highgarden, "Highgarden", false, true, 2, 0,
		SearoadMarches, TheReach, DornishMarches, Oldtown, RedwyneStraits, WestSummerSea),
	land(TheReach, "The Reach", true, false, 0, 0,
		Highgarden, SearoadMarches, Blackwater, KingsLanding, Kingswood, DornishMarches, TheBoneway, Oldtown),
	land(DornishMarches, "Dornish Marches", false, false, 0, 1,
		Highgarden, TheReach, Blackwater, TheBoneway, PrincesPass, Oldtown, ThreeTowers),
	land(Oldtown, "Oldtown", false, true, 0, 0,
		Highgarden, TheReach, DornishMarches, ThreeTowers, RedwyneStraits),
	land(ThreeTowers, "Three Towers", false, false, 1, 0,
		Oldtown, DornishMarches, PrincesPass, RedwyneStraits, WestSummerSea),
	land(TheBoneway, "The Boneway", false, false, 0, 1,
		DornishMarches, PrincesPass, TheReach, Kingswood, Blackwater, StormsEnd, Yronwood, SeaOfDorne),
	land(PrincesPass, "Prince's Pass", false, false, 1, 1,
		DornishMarches, TheBoneway, ThreeTowers, Starfall, Yronwood),
	land(Yronwood, "Yronwood", true, false, 0, 0,
		PrincesPass, TheBoneway, Starfall, SaltShore, Sunspear, SeaOfDorne),
	land(Starfall, "Starfall", true, false, 1, 0,
		PrincesPass, Yronwood, SaltShore, EastSummerSea, WestSummerSea),
	land(SaltShore, "Salt Shore", false, false, 1, 0,
		Yronwood, Starfall, Sunspear, EastSummerSea),
	land(Sunspear, "Sunspear", false, true, 1, 1,
		Yronwood, SaltShore, EastSummerSea, SeaOfDorne),
	land(Pyke, "Pyke", false, true, 1, 1,
		IronmansBay),
	land(Dragonstone, "Dragonstone", false, true, 1, 1,
		ShipbreakerBay),
	land(TheArbor, "The Arbor", false, false, 0, 1,
		RedwyneStraits, WestSummerSea),

	sea(BayOfIce, "Bay of Ice",
		CastleBlack, TheStonyShore, Winterfell, FlintsFinger, GreywaterWatch, SunsetSea),
	sea(TheShiveringSea, "The Shivering Sea",
		CastleBlack, Karhold, Winterfell, WhiteHarbor, WidowsWatch, TheNarrowSea),
	sea(SunsetSea, "Sunset Sea",
		FlintsFinger, SearoadMarches, BayOfIce, IronmansBay, TheGoldenSound, WestSummerSea),
	sea(IronmansBay, "Ironman's Bay",
		Pyke, FlintsFinger, GreywaterWatch, Seagard, Riverrun, SunsetSea, TheGoldenSound),
	sea(TheGoldenSound, "The Golden Sound",
		Lannisport, Riverrun, SearoadMarches, IronmansBay, SunsetSea),
	sea(TheNarrowSea, "The Narrow Sea",
		MoatCailin, WhiteHarbor, WidowsWatch, TheTwins, TheFingers, MountainsOfTheMoon, TheEyrie, CrackclawPoint, TheShiveringSea, ShipbreakerBay),
	sea(BlackwaterBay, "Blackwater Bay",
		KingsLanding, CrackclawPoint, Kingswood, ShipbreakerBay),
	sea(ShipbreakerBay, "Shipbreaker Bay",
		Dragonstone, CrackclawPoint, Kingswood, StormsEnd, TheNarrowSea, BlackwaterBay, EastSummerSea),
	sea(RedwyneStraits, "Redwyne Straits",
		Highgarden, Oldtown, TheArbor, ThreeTowers, WestSummerSea),
	sea(WestSummerSea, "West Summer Sea",
		Highgarden, SearoadMarches, ThreeTowers, TheArbor, Starfall, SunsetSea, RedwyneStraits, EastSummerSea),
	sea(EastSummerSea, "East Summer Sea",
		Sunspear, SaltShore, Starfall, StormsEnd, WestSummerSea, SeaOfDorne, ShipbreakerBay),
	sea(SeaOfDorne, "Sea of Dorne",
		Sunspear, Yronwood, StormsEnd, TheBoneway, EastSummerSea),

	port(WinterfellPort, "Winterfell Port", Winterfell, BayOfIce),
	port(WhiteHarborPort, "White Harbor Port", WhiteHarbor, TheNarrowSea),
	port(PykePort, "Pyke Port", Pyke, IronmansBay),
	port(LannisportPort, "Lannisport Port", Lannisport, TheGoldenSound),
	port(DragonstonePort, "Dragonstone Port", Dragonstone, ShipbreakerBay),
	port(StormsEndPort, "Storm's End Port", StormsEnd, ShipbreakerBay),
	port(HighgardenPort, "Highgarden Port", Highgarden, RedwyneStraits),
	port(OldtownPort, "Oldtown Port", Oldtown, RedwyneStraits),
	port(SunspearPort, "Sunspear Port", Sunspear, EastSummerSea),
}

// AreaName looks up an area's display name.
func AreaName(id AreaID) string {
	return Areas[id].Name
}

// InitialGarrisonStrength returns the printed garrison value of an area,
// or 0 when the area has none.
func InitialGarrisonStrength(id AreaID) int {
	switch id {
	case KingsLanding:
		return 5
	case TheEyrie:
		return 6
	case Dragonstone, Winterfell, Lannisport, Highgarden, Sunspear, Pyke:
		return 2
	default:
		return 0
	}
}
