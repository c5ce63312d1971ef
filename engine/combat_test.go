package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"throne/game"
)

// openBattle marches the Winterfell army into Moat Cailin against the
// given defenders and returns the state suspended on card selection.
func openBattle(t *testing.T, defenders []game.Unit, defense *game.Order) *game.GameState {
	t.Helper()
	gs, err := Setup(3, 1)
	require.NoError(t, err)
	gs.Phase = game.ActionPhase
	gs.Area(game.Winterfell).Order = &game.Order{
		Type: game.March, Strength: 0, House: game.Stark, TokenIndex: 1,
	}

	mc := gs.Area(game.MoatCailin)
	mc.Owner = game.Lannister
	mc.Units = defenders
	mc.Order = defense

	gs.Pending = game.ChooseMarch{
		House:             game.Stark,
		From:              game.Winterfell,
		ValidDestinations: []game.AreaID{game.MoatCailin},
	}
	require.NoError(t, Apply(gs, game.MarchAction{
		To:          game.MoatCailin,
		UnitIndices: []int{0, 1},
	}))
	require.Equal(t, game.CombatPhase, gs.Phase)

	stepUntilDecision(gs)
	return gs
}

// stepUntilDecision runs combat stages until something is pending or the
// battle is over.
func stepUntilDecision(gs *game.GameState) {
	for gs.Combat != nil && gs.Pending == nil {
		stepCombat(gs)
	}
}

func playCard(t *testing.T, gs *game.GameState, h game.House, id game.HouseCardID) {
	t.Helper()
	sel, ok := gs.Pending.(game.SelectHouseCard)
	require.True(t, ok, "expected a card selection, got %T", gs.Pending)
	require.Equal(t, h, sel.House)
	require.Contains(t, sel.AvailableCards, id)
	require.NoError(t, Apply(gs, game.SelectCardAction{Card: id}))
	stepUntilDecision(gs)
}

// declineBlade turns down the Valyrian blade offer. In three-player
// games Stark leads the Fiefdoms track, so Stark battles see the offer.
func declineBlade(t *testing.T, gs *game.GameState, h game.House) {
	t.Helper()
	d, ok := gs.Pending.(game.UseValyrianBladeDecision)
	require.True(t, ok, "expected a blade offer, got %T", gs.Pending)
	require.Equal(t, h, d.House)
	require.NoError(t, Apply(gs, game.BladeAction{Use: false}))
	stepUntilDecision(gs)
}

func TestCombatAttackerWipesDefender(t *testing.T) {
	gs := openBattle(t, []game.Unit{
		{Type: game.Footman, House: game.Lannister},
	}, nil)
	lostFootmen := gs.House(game.Lannister).Pool.Footmen

	// Knight and footman plus Eddard (4) against a lone footman with
	// Ser Gregor (3): 7 to 4, and Eddard's two swords kill the footman.
	playCard(t, gs, game.Stark, game.EddardStark)
	playCard(t, gs, game.Lannister, game.SerGregorClegane)
	declineBlade(t, gs, game.Stark)

	require.Nil(t, gs.Combat)
	require.Equal(t, game.ActionPhase, gs.Phase)

	mc := gs.Area(game.MoatCailin)
	require.Equal(t, game.Stark, mc.Owner)
	require.Len(t, mc.Units, 2)
	for _, u := range mc.Units {
		require.Equal(t, game.Stark, u.House)
		require.False(t, u.Routed)
	}

	require.Equal(t, lostFootmen+1, gs.House(game.Lannister).Pool.Footmen)
	require.Contains(t, gs.House(game.Stark).Discards, game.EddardStark)
	require.Contains(t, gs.House(game.Lannister).Discards, game.SerGregorClegane)
	require.Len(t, gs.House(game.Stark).Hand, 6)

	// The spent march order is gone.
	require.Nil(t, gs.Area(game.Winterfell).Order)
}

func TestCombatSurvivorsRetreat(t *testing.T) {
	gs := openBattle(t, []game.Unit{
		{Type: game.Footman, House: game.Lannister},
		{Type: game.Footman, House: game.Lannister},
	}, nil)

	// 7 to 4 again, but The Hound's two fortifications soak Eddard's
	// swords: both defenders survive and must retreat.
	playCard(t, gs, game.Stark, game.EddardStark)
	playCard(t, gs, game.Lannister, game.TheHound)
	declineBlade(t, gs, game.Stark)

	retreat, ok := gs.Pending.(game.Retreat)
	require.True(t, ok, "expected a retreat, got %T", gs.Pending)
	require.Equal(t, game.Lannister, retreat.House)
	require.Len(t, retreat.Units, 2)
	require.Contains(t, retreat.PossibleAreas, game.GreywaterWatch)
	require.NotContains(t, retreat.PossibleAreas, game.Winterfell)

	require.NoError(t, Apply(gs, game.RetreatAction{To: game.GreywaterWatch}))
	stepUntilDecision(gs)

	gw := gs.Area(game.GreywaterWatch)
	require.Equal(t, game.Lannister, gw.Owner)
	require.Len(t, gw.Units, 2)
	for _, u := range gw.Units {
		require.True(t, u.Routed)
	}

	require.Nil(t, gs.Combat)
	require.Equal(t, game.Stark, gs.Area(game.MoatCailin).Owner)
	require.Len(t, gs.Area(game.MoatCailin).Units, 2)
}

func TestCombatExhaustedHandFightsWithoutCard(t *testing.T) {
	gs := openBattle(t, []game.Unit{
		{Type: game.Footman, House: game.Lannister},
	}, nil)

	// Lannister has played out all seven cards: selection is skipped
	// and the defense fights at card strength zero.
	lann := gs.House(game.Lannister)
	lann.Discards = lann.Hand
	lann.Hand = nil

	playCard(t, gs, game.Stark, game.EddardStark)
	require.Equal(t, game.NoCard, *gs.Combat.DefenderCard)
	declineBlade(t, gs, game.Stark)

	require.Nil(t, gs.Combat)
	require.Equal(t, game.Stark, gs.Area(game.MoatCailin).Owner)

	// The stand-in never enters a hand or a discard pile.
	require.Empty(t, gs.House(game.Lannister).Hand)
	require.Len(t, gs.House(game.Lannister).Discards, 7)
	require.NotContains(t, gs.House(game.Lannister).Discards, game.NoCard)
}

func TestCombatChainsWinnerAndLoserAbilities(t *testing.T) {
	gs, err := Setup(6, 1)
	require.NoError(t, err)
	gs.Phase = game.ActionPhase
	gs.Area(game.Winterfell).Order = &game.Order{
		Type: game.March, Strength: 0, House: game.Stark, TokenIndex: 1,
	}

	mc := gs.Area(game.MoatCailin)
	mc.Owner = game.Martell
	mc.Units = []game.Unit{
		{Type: game.Footman, House: game.Martell},
		{Type: game.Footman, House: game.Martell},
	}

	gs.Pending = game.ChooseMarch{
		House:             game.Stark,
		From:              game.Winterfell,
		ValidDestinations: []game.AreaID{game.MoatCailin},
	}
	require.NoError(t, Apply(gs, game.MarchAction{
		To:          game.MoatCailin,
		UnitIndices: []int{0, 1},
	}))
	stepUntilDecision(gs)

	// Robb (3, no swords) wins 6 to 2 against Doran (0) and both
	// defenders survive. Robb picks the retreat area, then Doran drops
	// the winner down a track before the combat tears down.
	playCard(t, gs, game.Stark, game.RobbStark)
	playCard(t, gs, game.Martell, game.DoranMartell)

	robb, ok := gs.Pending.(game.RobbRetreat)
	require.True(t, ok, "expected the winner's retreat choice, got %T", gs.Pending)
	require.Equal(t, game.Stark, robb.House)
	require.Contains(t, robb.PossibleAreas, game.Seagard)
	require.NotContains(t, robb.PossibleAreas, game.Winterfell)

	require.NoError(t, Apply(gs, game.RobbRetreatAction{To: game.Seagard}))
	stepUntilDecision(gs)

	require.NotNil(t, gs.Combat, "combat stays alive through the ability chain")
	doran, ok := gs.Pending.(game.DoranChooseTrack)
	require.True(t, ok, "expected the loser's track choice, got %T", gs.Pending)
	require.Equal(t, game.Martell, doran.House)
	require.Equal(t, game.Stark, doran.Opponent)

	require.NoError(t, Apply(gs, game.DoranAction{Track: game.Fiefdoms}))
	stepUntilDecision(gs)

	require.Nil(t, gs.Combat)
	require.Equal(t, game.ActionPhase, gs.Phase)

	require.Equal(t, game.Stark, gs.Area(game.MoatCailin).Owner)
	sg := gs.Area(game.Seagard)
	require.Equal(t, game.Martell, sg.Owner)
	require.Len(t, sg.Units, 2)
	for _, u := range sg.Units {
		require.True(t, u.Routed)
	}

	// Doran sent Stark to the bottom of the Fiefdoms track.
	require.Equal(t, 6, gs.House(game.Stark).Fiefdoms)
}

func TestCombatDefenderHolds(t *testing.T) {
	gs := openBattle(t, []game.Unit{
		{Type: game.Knight, House: game.Lannister},
		{Type: game.Footman, House: game.Lannister},
	}, &game.Order{Type: game.Defense, Strength: 2, Star: true, House: game.Lannister, TokenIndex: 5})
	gs.Garrisons[game.MoatCailin] = game.Garrison{Owner: game.Lannister, Strength: 1}

	// Attack totals 7. Knight, footman, The Hound, the starred defense
	// order and the garrison make 8, and The Hound has no swords, so the
	// beaten attackers all survive.
	playCard(t, gs, game.Stark, game.EddardStark)
	playCard(t, gs, game.Lannister, game.TheHound)
	declineBlade(t, gs, game.Stark)

	require.Nil(t, gs.Combat)

	// The beaten attackers limp home routed.
	wf := gs.Area(game.Winterfell)
	require.Equal(t, game.Stark, wf.Owner)
	require.Len(t, wf.Units, 2)
	for _, u := range wf.Units {
		require.True(t, u.Routed)
	}

	mc := gs.Area(game.MoatCailin)
	require.Equal(t, game.Lannister, mc.Owner)
	require.Len(t, mc.Units, 2)
	require.NotNil(t, mc.Order, "the defense order survives the battle")
}
