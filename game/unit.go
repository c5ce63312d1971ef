package game

// UnitType enumerates the four mobilizable unit kinds.
type UnitType int

const (
	Footman UnitType = iota
	Knight
	Ship
	SiegeEngine
)

func (u UnitType) String() string {
	switch u {
	case Footman:
		return "Footman"
	case Knight:
		return "Knight"
	case Ship:
		return "Ship"
	case SiegeEngine:
		return "SiegeEngine"
	default:
		return "Unknown"
	}
}

// CombatStrength is the base strength a unit contributes. Siege engines
// contribute 0 here; their situational strength of 4 against fortified
// areas is applied during combat resolution.
func (u UnitType) CombatStrength() int {
	switch u {
	case Footman, Ship:
		return 1
	case Knight:
		return 2
	default:
		return 0
	}
}

// MusterCost is the number of mustering points needed to build the unit.
func (u UnitType) MusterCost() int {
	switch u {
	case Footman, Ship:
		return 1
	default:
		return 2
	}
}

// Unit is a single figure on the board.
type Unit struct {
	Type   UnitType
	House  House
	Routed bool
}

// UnitPool tracks a house's units not currently on the board.
type UnitPool struct {
	Footmen      int
	Knights      int
	Ships        int
	SiegeEngines int
}

func (p *UnitPool) Get(t UnitType) int {
	switch t {
	case Footman:
		return p.Footmen
	case Knight:
		return p.Knights
	case Ship:
		return p.Ships
	default:
		return p.SiegeEngines
	}
}

func (p *UnitPool) Add(t UnitType, n int) {
	switch t {
	case Footman:
		p.Footmen += n
	case Knight:
		p.Knights += n
	case Ship:
		p.Ships += n
	default:
		p.SiegeEngines += n
	}
}
