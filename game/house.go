package game

// House identifies a player faction. NoHouse is the zero value and marks
// the absence of an owner (empty areas, neutral garrisons).
type House int

const (
	NoHouse House = iota
	Stark
	Lannister
	Baratheon
	Greyjoy
	Tyrell
	Martell
)

// AllHouses lists the six factions in canonical order.
var AllHouses = []House{Stark, Lannister, Baratheon, Greyjoy, Tyrell, Martell}

func (h House) String() string {
	switch h {
	case Stark:
		return "Stark"
	case Lannister:
		return "Lannister"
	case Baratheon:
		return "Baratheon"
	case Greyjoy:
		return "Greyjoy"
	case Tyrell:
		return "Tyrell"
	case Martell:
		return "Martell"
	default:
		return "None"
	}
}

// Track identifies one of the three influence tracks.
type Track int

const (
	IronThrone Track = iota
	Fiefdoms
	KingsCourt
)

func (t Track) String() string {
	switch t {
	case IronThrone:
		return "IronThrone"
	case Fiefdoms:
		return "Fiefdoms"
	case KingsCourt:
		return "KingsCourt"
	default:
		return "Unknown"
	}
}
