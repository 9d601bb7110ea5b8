package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/topology"
)

func TestStar(t *testing.T) {
	g, err := topology.Star(3, topology.NodeLabel{ASN: 1, Org: "X"}, topology.NodeLabel{ASN: 2, Org: "Y"})
	require.NoError(t, err)
	hub, ok := g.Lookup("Center", halfgraph.Forward)
	require.True(t, ok)
	require.Equal(t, 3, g.Half(hub).NumNeighbors())
}

func TestCycle_WrapsAround(t *testing.T) {
	g, err := topology.Cycle(4, topology.NodeLabel{ASN: 1, Org: "X"})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		addr := "Node0"
		if i > 0 {
			addr = "Node" + string(rune('0'+i))
		}
		id, ok := g.Lookup(addr, halfgraph.Forward)
		require.True(t, ok)
		require.Equal(t, 1, g.Half(id).NumNeighbors())
	}
}

func TestPath_RejectsTooFewNodes(t *testing.T) {
	_, err := topology.Path(1, topology.NodeLabel{ASN: 1, Org: "X"})
	require.ErrorIs(t, err, topology.ErrTooFewNodes)
}
