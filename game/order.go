package game

// OrderType enumerates the five order categories.
type OrderType int

const (
	March OrderType = iota
	Raid
	Support
	Defense
	ConsolidatePower
)

func (o OrderType) String() string {
	switch o {
	case March:
		return "March"
	case Raid:
		return "Raid"
	case Support:
		return "Support"
	case Defense:
		return "Defense"
	case ConsolidatePower:
		return "ConsolidatePower"
	default:
		return "Unknown"
	}
}

// OrderToken describes one of the 15 tokens every house owns.
type OrderToken struct {
	Type     OrderType
	Strength int
	Star     bool
}

// OrderTokens is the fixed token set, identical for every house. Token
// indices (0..14) are the currency of order placement.
var OrderTokens = [15]OrderToken{
	{March, -1, false},
	{March, 0, false},
	{March, 1, true},
	{Defense, 1, false},
	{Defense, 1, false},
	{Defense, 2, true},
	{Support, 0, false},
	{Support, 0, false},
	{Support, 1, true},
	{Raid, 0, false},
	{Raid, 0, false},
	{Raid, 0, true},
	{ConsolidatePower, 0, false},
	{ConsolidatePower, 0, false},
	{ConsolidatePower, 0, true},
}

// Order is a token placed on an area.
type Order struct {
	Type       OrderType
	Strength   int
	Star       bool
	House      House
	TokenIndex int
}

// StarOrderLimit returns how many starred orders the house at the given
// King's Court position (1-based) may place. Official 2nd edition values.
func StarOrderLimit(playerCount, position int) int {
	switch playerCount {
	case 5, 6:
		switch position {
		case 1, 2:
			return 3
		case 3:
			return 2
		case 4:
			return 1
		}
	case 4:
		switch position {
		case 1, 2:
			return 3
		case 3:
			return 1
		}
	case 3:
		switch position {
		case 1:
			return 3
		case 2:
			return 2
		case 3:
			return 1
		}
	}
	return 0
}
