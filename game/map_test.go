package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAreaTableConsistency(t *testing.T) {
	for i := range Areas {
		a := &Areas[i]
		require.Equal(t, AreaID(i), a.ID, "area %q stored at wrong index", a.Name)
		require.NotEmpty(t, a.Name)

		for _, adj := range a.Adjacent {
			require.GreaterOrEqual(t, int(adj), 0)
			require.Less(t, int(adj), NumAreas)
			require.NotEqual(t, a.ID, adj, "area %q adjacent to itself", a.Name)
		}
	}
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	// Ports connect through their land and sea links, so only land and
	// sea borders must be mutual.
	for i := range Areas {
		a := &Areas[i]
		if a.IsPort() {
			continue
		}
		for _, adj := range a.Adjacent {
			b := &Areas[adj]
			if b.IsPort() {
				continue
			}
			require.Contains(t, b.Adjacent, a.ID,
				"%s lists %s as adjacent but not the reverse", a.Name, b.Name)
		}
	}
}

func TestPortLinks(t *testing.T) {
	ports := 0
	for i := range Areas {
		a := &Areas[i]
		if !a.IsPort() {
			continue
		}
		ports++
		require.True(t, Areas[a.ConnectedLand].IsLand(), "%s land link", a.Name)
		require.True(t, Areas[a.ConnectedSea].IsSea(), "%s sea link", a.Name)
		require.Equal(t, []AreaID{a.ConnectedLand, a.ConnectedSea}, a.Adjacent)
	}
	require.Equal(t, 9, ports)
}

func TestVictoryAreaCount(t *testing.T) {
	castles, strongholds := 0, 0
	for i := range Areas {
		if Areas[i].Castle {
			castles++
		}
		if Areas[i].Stronghold {
			strongholds++
		}
	}
	require.Equal(t, 10, castles)
	require.Equal(t, 10, strongholds)
}

func TestMusterPoints(t *testing.T) {
	require.Equal(t, 2, Areas[Winterfell].MusterPoints())
	require.Equal(t, 1, Areas[WhiteHarbor].MusterPoints())
	require.Equal(t, 0, Areas[TheStonyShore].MusterPoints())
	require.Equal(t, 0, Areas[TheShiveringSea].MusterPoints())
}

func TestInitialGarrisonStrength(t *testing.T) {
	require.Equal(t, 5, InitialGarrisonStrength(KingsLanding))
	require.Equal(t, 6, InitialGarrisonStrength(TheEyrie))
	require.Equal(t, 2, InitialGarrisonStrength(Winterfell))
	require.Equal(t, 2, InitialGarrisonStrength(Pyke))
	require.Equal(t, 0, InitialGarrisonStrength(Blackwater))
}
