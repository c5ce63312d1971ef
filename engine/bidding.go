package engine

import (
	"sort"

	"github.com/rs/zerolog/log"

	"throne/game"
)

func bidTypeForTrack(t game.Track) game.BidType {
	switch t {
	case game.IronThrone:
		return game.BidIronThrone
	case game.Fiefdoms:
		return game.BidFiefdoms
	default:
		return game.BidKingsCourt
	}
}

// beginClashOfKings opens the three-track auction, Iron Throne first.
func beginClashOfKings(gs *game.GameState) {
	gs.Bidding = &game.BiddingState{
		Type:            game.BidIronThrone,
		Bids:            make(map[game.House]int),
		CurrentTrack:    game.IronThrone,
		TrackActive:     true,
		RemainingTracks: []game.Track{game.Fiefdoms, game.KingsCourt},
		BidOrder:        append([]game.House(nil), gs.TurnOrder...),
	}
}

// beginWildlingAttack opens the threat auction. At zero threat the
// attack fizzles.
func beginWildlingAttack(gs *game.GameState) {
	if gs.Wildling == 0 {
		return
	}
	gs.Bidding = &game.BiddingState{
		Type:     game.BidWildling,
		Bids:     make(map[game.House]int),
		BidOrder: append([]game.House(nil), gs.TurnOrder...),
	}
}

// stepBidding collects bids house by house and resolves once everyone
// has answered. Track auctions chain through RemainingTracks.
func stepBidding(gs *game.GameState) {
	for gs.Bidding != nil && gs.Pending == nil {
		b := gs.Bidding
		if b.NextBidder < len(b.BidOrder) {
			gs.Pending = game.BidRequest{
				House: b.BidOrder[b.NextBidder],
				Type:  b.Type,
				Track: b.CurrentTrack,
			}
			return
		}

		if b.Type == game.BidWildling {
			resolveWildlingBidding(gs)
		} else {
			resolveTrackBidding(gs)
		}
	}
}

// resolveTrackBidding reorders one influence track: highest bid takes
// position 1, ties broken by the better current position. Every bid is
// paid. An Iron Throne result recomputes the turn order.
func resolveTrackBidding(gs *game.GameState) {
	b := gs.Bidding
	gs.Bidding = nil
	track := b.CurrentTrack

	type entry struct {
		house game.House
		bid   int
		pos   int
	}
	sorted := make([]entry, 0, len(b.BidOrder))
	for _, h := range b.BidOrder {
		sorted = append(sorted, entry{h, b.Bids[h], gs.House(h).TrackPosition(track)})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].bid != sorted[j].bid {
			return sorted[i].bid > sorted[j].bid
		}
		return sorted[i].pos < sorted[j].pos
	})

	for i, e := range sorted {
		gs.House(e.house).SetTrackPosition(track, i+1)
		hs := gs.House(e.house)
		hs.Power -= e.bid
		if hs.Power < 0 {
			hs.Power = 0
		}
	}

	if track == game.IronThrone {
		recomputeTurnOrder(gs)
	}
	log.Debug().Str("track", track.String()).Msg("track auction resolved")

	if len(b.RemainingTracks) > 0 {
		next := b.RemainingTracks[0]
		gs.Bidding = &game.BiddingState{
			Type:            bidTypeForTrack(next),
			Bids:            make(map[game.House]int),
			CurrentTrack:    next,
			TrackActive:     true,
			RemainingTracks: b.RemainingTracks[1:],
			BidOrder:        append([]game.House(nil), gs.TurnOrder...),
		}
	}
}

func recomputeTurnOrder(gs *game.GameState) {
	order := append([]game.House(nil), gs.PlayingHouses...)
	sort.Slice(order, func(i, j int) bool {
		return gs.House(order[i]).IronThrone < gs.House(order[j]).IronThrone
	})
	gs.TurnOrder = order
}

// resolveWildlingBidding settles the threat auction. All bids are paid
// either way. Meeting the threat rewards the highest bidder and resets
// the threat to zero; falling short punishes the lowest bidder hardest
// (ties broken by the worse Iron Throne seat) and drops the threat to 2.
func resolveWildlingBidding(gs *game.GameState) {
	b := gs.Bidding
	gs.Bidding = nil

	total := 0
	type entry struct {
		house game.House
		bid   int
	}
	sorted := make([]entry, 0, len(b.BidOrder))
	for _, h := range b.BidOrder {
		bid := b.Bids[h]
		total += bid
		sorted = append(sorted, entry{h, bid})
	}

	for _, e := range sorted {
		hs := gs.House(e.house)
		hs.Power -= e.bid
		if hs.Power < 0 {
			hs.Power = 0
		}
	}

	// The top threat card is spent on every attack.
	if len(gs.WildlingDeck) > 0 {
		gs.WildlingDeck = gs.WildlingDeck[:len(gs.WildlingDeck)-1]
	}

	if total >= gs.Wildling {
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].bid > sorted[j].bid })
		highest := sorted[0].house
		gs.House(highest).Power += 2
		gs.Wildling = 0
		log.Debug().Str("house", highest.String()).Int("total", total).Msg("wildling attack repelled")
		return
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].bid != sorted[j].bid {
			return sorted[i].bid < sorted[j].bid
		}
		return gs.House(sorted[i].house).IronThrone > gs.House(sorted[j].house).IronThrone
	})
	lowest := sorted[0].house
	hs := gs.House(lowest)
	hs.Power -= 2
	if hs.Power < 0 {
		hs.Power = 0
	}
	for _, e := range sorted[1:] {
		s := gs.House(e.house)
		if s.Power > 0 {
			s.Power--
		}
	}
	gs.Wildling = 2
	log.Debug().Str("house", lowest.String()).Int("total", total).Msg("wildlings breach the wall")
}
