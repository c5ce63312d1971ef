package game

// IsMoveValid reports whether a house can march from one area to another,
// either directly or by relaying land units through seas holding its
// ships. Units starting at sea or in a port never relay.
func IsMoveValid(gs *GameState, from, to AreaID, h House) bool {
	fromDef := &Areas[from]
	toDef := &Areas[to]
	toState := gs.Area(to)

	// Impassable in 3-player games.
	if toState.Blocked {
		return false
	}

	for _, adj := range fromDef.Adjacent {
		if adj == to {
			return true
		}
	}

	// Ship transport: land -> friendly-ship seas -> land.
	if !fromDef.IsLand() || toDef.IsSea() {
		return false
	}

	visited := make([]bool, NumAreas)
	queue := []AreaID{from}
	visited[from] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentDef := &Areas[current]

		for _, adj := range currentDef.Adjacent {
			if visited[adj] {
				continue
			}
			if adj == to {
				// The last hop must come out of a friendly-ship sea.
				if currentDef.IsSea() && hasFriendlyShip(gs, current, h) {
					return true
				}
				continue
			}
			if Areas[adj].IsSea() && hasFriendlyShip(gs, adj, h) {
				visited[adj] = true
				queue = append(queue, adj)
			}
		}
	}
	return false
}

func hasFriendlyShip(gs *GameState, area AreaID, h House) bool {
	for _, u := range gs.Area(area).Units {
		if u.Type == Ship && u.House == h && !u.Routed {
			return true
		}
	}
	return false
}

// ValidDestinations lists every area a house could march to from the
// given origin.
func ValidDestinations(gs *GameState, from AreaID, h House) []AreaID {
	var out []AreaID
	for i := 0; i < NumAreas; i++ {
		to := AreaID(i)
		if to != from && IsMoveValid(gs, from, to, h) {
			out = append(out, to)
		}
	}
	return out
}
