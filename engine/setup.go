package engine

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"

	"throne/game"
)

// houseSetup is the printed starting configuration for one house.
type houseSetup struct {
	house      game.House
	home       game.AreaID
	supply     int
	minPlayers int
	ironThrone int
	fiefdoms   int
	kingsCourt int
	units      []startingUnits
}

type startingUnits struct {
	area  game.AreaID
	types []game.UnitType
}

var houseSetups = []houseSetup{
	{
		house: game.Stark, home: game.Winterfell,
		supply: 1, minPlayers: 3,
		ironThrone: 3, fiefdoms: 4, kingsCourt: 2,
		units: []startingUnits{
			{game.Winterfell, []game.UnitType{game.Knight, game.Footman}},
			{game.WhiteHarbor, []game.UnitType{game.Footman}},
			{game.TheShiveringSea, []game.UnitType{game.Ship}},
		},
	},
	{
		house: game.Lannister, home: game.Lannisport,
		supply: 2, minPlayers: 3,
		ironThrone: 2, fiefdoms: 6, kingsCourt: 1,
		units: []startingUnits{
			{game.Lannisport, []game.UnitType{game.Knight, game.Footman}},
			{game.StoneySept, []game.UnitType{game.Footman}},
			{game.TheGoldenSound, []game.UnitType{game.Ship}},
		},
	},
	{
		house: game.Baratheon, home: game.Dragonstone,
		supply: 2, minPlayers: 3,
		ironThrone: 1, fiefdoms: 5, kingsCourt: 4,
		units: []startingUnits{
			{game.Dragonstone, []game.UnitType{game.Knight, game.Footman}},
			{game.Kingswood, []game.UnitType{game.Footman}},
			{game.ShipbreakerBay, []game.UnitType{game.Ship, game.Ship}},
		},
	},
	{
		house: game.Greyjoy, home: game.Pyke,
		supply: 2, minPlayers: 4,
		ironThrone: 5, fiefdoms: 1, kingsCourt: 6,
		units: []startingUnits{
			{game.Pyke, []game.UnitType{game.Knight, game.Footman}},
			{game.PykePort, []game.UnitType{game.Ship}},
			{game.GreywaterWatch, []game.UnitType{game.Footman}},
			{game.IronmansBay, []game.UnitType{game.Ship}},
		},
	},
	{
		house: game.Tyrell, home: game.Highgarden,
		supply: 2, minPlayers: 5,
		ironThrone: 6, fiefdoms: 2, kingsCourt: 5,
		units: []startingUnits{
			{game.Highgarden, []game.UnitType{game.Knight, game.Footman}},
			{game.DornishMarches, []game.UnitType{game.Footman}},
			{game.RedwyneStraits, []game.UnitType{game.Ship}},
		},
	},
	{
		house: game.Martell, home: game.Sunspear,
		supply: 2, minPlayers: 6,
		ironThrone: 4, fiefdoms: 3, kingsCourt: 3,
		units: []startingUnits{
			{game.Sunspear, []game.UnitType{game.Knight, game.Footman}},
			{game.SaltShore, []game.UnitType{game.Footman}},
			{game.SeaOfDorne, []game.UnitType{game.Ship}},
		},
	},
}

// blockedAreas3p closes the southern board for three players.
var blockedAreas3p = []game.AreaID{
	game.Sunspear, game.SaltShore, game.Starfall, game.Yronwood,
	game.PrincesPass, game.TheBoneway, game.ThreeTowers,
	game.DornishMarches, game.Highgarden, game.Oldtown, game.TheArbor,
	game.SeaOfDorne, game.EastSummerSea, game.WestSummerSea,
	game.RedwyneStraits, game.SunspearPort, game.HighgardenPort,
	game.OldtownPort,
}

// neutralHomeGarrison guards the home of a house that sits out a
// smaller game.
const neutralHomeGarrison = 5

// PlayingHouses lists the houses seated in a game of the given size,
// in the fixed setup order. Smaller games drop the later houses.
func PlayingHouses(playerCount int) []game.House {
	var out []game.House
	for _, s := range houseSetups {
		if s.minPlayers <= playerCount {
			out = append(out, s.house)
		}
	}
	return out
}

// normalizeTracks compresses the printed six-player seats to a dense
// 1..N over the seated houses, keeping their relative order. Track
// positions always form a permutation of 1..N.
func normalizeTracks(houses map[game.House]*game.HouseState, playing []game.House) {
	for _, t := range []game.Track{game.IronThrone, game.Fiefdoms, game.KingsCourt} {
		ordered := append([]game.House(nil), playing...)
		sort.Slice(ordered, func(i, j int) bool {
			return houses[ordered[i]].TrackPosition(t) < houses[ordered[j]].TrackPosition(t)
		})
		for i, h := range ordered {
			houses[h].SetTrackPosition(t, i+1)
		}
	}
}

// Setup creates the initial state for a 3 to 6 player game. The seed
// fixes the deck order: two states built from the same inputs are
// identical, draw for draw.
func Setup(playerCount int, seed uint64) (*game.GameState, error) {
	if playerCount < 3 || playerCount > 6 {
		return nil, fmt.Errorf("engine: player count must be 3-6, got %d", playerCount)
	}

	rng := rand.New(rand.NewSource(seed))

	var playing []houseSetup
	for _, s := range houseSetups {
		if s.minPlayers <= playerCount {
			playing = append(playing, s)
		}
	}

	playingHouses := make([]game.House, len(playing))
	for i, s := range playing {
		playingHouses[i] = s.house
	}

	turnOrder := append([]game.House(nil), playingHouses...)
	pos := make(map[game.House]int, len(playing))
	for _, s := range playing {
		pos[s.house] = s.ironThrone
	}
	sort.Slice(turnOrder, func(i, j int) bool {
		return pos[turnOrder[i]] < pos[turnOrder[j]]
	})

	areas := make([]game.AreaState, game.NumAreas)

	houses := make(map[game.House]*game.HouseState, len(playing))
	for _, s := range playing {
		pool := game.UnitPool{Footmen: 10, Knights: 5, Ships: 6, SiegeEngines: 2}
		for _, su := range s.units {
			for _, ut := range su.types {
				areas[su.area].Units = append(areas[su.area].Units, game.Unit{
					Type:  ut,
					House: s.house,
				})
				areas[su.area].Owner = s.house
				pool.Add(ut, -1)
			}
		}
		areas[s.home].Owner = s.house

		houses[s.house] = &game.HouseState{
			Name:       s.house,
			IronThrone: s.ironThrone,
			Fiefdoms:   s.fiefdoms,
			KingsCourt: s.kingsCourt,
			Supply:     s.supply,
			Power:      5,
			Pool:       pool,
			Hand:       game.HouseCardIDs(s.house),
		}
	}

	normalizeTracks(houses, playingHouses)

	if playerCount == 3 {
		for _, id := range blockedAreas3p {
			areas[id].Blocked = true
		}
	}

	garrisons := make(map[game.AreaID]game.Garrison)
	for _, s := range playing {
		if str := game.InitialGarrisonStrength(s.home); str > 0 {
			garrisons[s.home] = game.Garrison{Owner: s.house, Strength: str}
		}
	}
	// Homes of houses sitting this game out stay defended, ownerless.
	for _, s := range houseSetups {
		if s.minPlayers <= playerCount || areas[s.home].Blocked {
			continue
		}
		garrisons[s.home] = game.Garrison{Owner: game.NoHouse, Strength: neutralHomeGarrison}
	}
	// King's Landing and The Eyrie are always neutral and garrisoned.
	garrisons[game.KingsLanding] = game.Garrison{Owner: game.NoHouse, Strength: 5}
	garrisons[game.TheEyrie] = game.Garrison{Owner: game.NoHouse, Strength: 6}

	deck1 := game.WesterosDeck(1)
	deck2 := game.WesterosDeck(2)
	deck3 := game.WesterosDeck(3)
	wildling := game.WildlingDeck()
	shuffleWesteros(rng, deck1)
	shuffleWesteros(rng, deck2)
	shuffleWesteros(rng, deck3)
	shuffleWildling(rng, wildling)

	return &game.GameState{
		Round:         1,
		Phase:         game.PlanningPhase, // round 1 has no Westeros phase
		Houses:        houses,
		Areas:         areas,
		TurnOrder:     turnOrder,
		Wildling:      2,
		Garrisons:     garrisons,
		WesterosDeck1: deck1,
		WesterosDeck2: deck2,
		WesterosDeck3: deck3,
		WildlingDeck:  wildling,
		Seed:          seed,
		PlayingHouses: playingHouses,
	}, nil
}
