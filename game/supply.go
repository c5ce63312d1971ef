package game

import "sort"

// CheckSupplyViolation reports whether a house fields more or larger
// armies than its supply level allows. Armies are groups of 2+ units in
// the same area; the biggest army is matched to the biggest slot.
func CheckSupplyViolation(gs *GameState, h House) bool {
	limits := SupplyLimits(gs.House(h).Supply)

	var armies []int
	for i := range gs.Areas {
		if gs.Areas[i].Owner == h && len(gs.Areas[i].Units) >= 2 {
			armies = append(armies, len(gs.Areas[i].Units))
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(armies)))

	if len(armies) > len(limits) {
		return true
	}
	for i, size := range armies {
		if size > limits[i] {
			return true
		}
	}
	return false
}

// CalculateSupply sums the supply icons of a house's areas, capped at 6.
func CalculateSupply(gs *GameState, h House) int {
	total := 0
	for i := range gs.Areas {
		if gs.Areas[i].Owner == h {
			total += Areas[i].SupplyIcons
		}
	}
	if total > 6 {
		total = 6
	}
	return total
}

// SupplyViolation describes one over-limit army.
type SupplyViolation struct {
	Area       AreaID
	Size       int
	MaxAllowed int
}

// FindSupplyViolations lists the armies a house must shrink, largest
// first. Armies without a slot may keep at most one unit.
func FindSupplyViolations(gs *GameState, h House) []SupplyViolation {
	limits := SupplyLimits(gs.House(h).Supply)

	type army struct {
		area AreaID
		size int
	}
	var armies []army
	for i := range gs.Areas {
		if gs.Areas[i].Owner == h && len(gs.Areas[i].Units) >= 2 {
			armies = append(armies, army{AreaID(i), len(gs.Areas[i].Units)})
		}
	}
	sort.Slice(armies, func(i, j int) bool { return armies[i].size > armies[j].size })

	var violations []SupplyViolation
	for idx, a := range armies {
		max := 1
		if idx < len(limits) {
			max = limits[idx]
		}
		if a.size > max {
			violations = append(violations, SupplyViolation{a.area, a.size, max})
		}
	}
	return violations
}
