package halfgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netradar/mapit/halfgraph"
)

// buildStar registers A and three backward neighbors B1..B3: A(fwd,
// asn=1, org=X), neighbors B1..B3(bwd, asn=2, org=Y).
func buildStar(t *testing.T) (*halfgraph.Graph, halfgraph.HalfId, []halfgraph.HalfId) {
	t.Helper()
	b := halfgraph.NewBuilder()
	b.AddHalf("A", halfgraph.Forward, 1, "X", "")
	for _, addr := range []string{"B1", "B2", "B3"} {
		b.AddHalf(addr, halfgraph.Backward, 2, "Y", "")
		b.AddAdjacency("A", addr)
	}
	g, err := b.Build()
	require.NoError(t, err)

	a, ok := g.Lookup("A", halfgraph.Forward)
	require.True(t, ok)
	var neighbors []halfgraph.HalfId
	for _, addr := range []string{"B1", "B2", "B3"} {
		id, ok := g.Lookup(addr, halfgraph.Backward)
		require.True(t, ok)
		neighbors = append(neighbors, id)
	}
	return g, a, neighbors
}

func TestBuilder_NeighborsAndWorkingSet(t *testing.T) {
	g, a, neighbors := buildStar(t)

	half := g.Half(a)
	require.Equal(t, 3, half.NumNeighbors())
	require.Equal(t, neighbors, half.Neighbors)

	ws := g.WorkingSet()
	require.Contains(t, ws, a)
	for _, n := range neighbors {
		// Each B has a single neighbor (A), so it is excluded from the
		// working set.
		require.NotContains(t, ws, n)
		require.Equal(t, 1, g.Half(n).NumNeighbors())
	}
}

func TestBuilder_OtherHalfAndOtherSide(t *testing.T) {
	b := halfgraph.NewBuilder()
	b.AddHalf("A", halfgraph.Forward, 1, "X", "A'")
	b.AddHalf("A", halfgraph.Backward, 1, "X", "A'")
	b.AddHalf("A'", halfgraph.Forward, 2, "Y", "A")
	b.AddHalf("A'", halfgraph.Backward, 2, "Y", "A")
	g, err := b.Build()
	require.NoError(t, err)

	fwd, _ := g.Lookup("A", halfgraph.Forward)
	bwd, _ := g.Lookup("A", halfgraph.Backward)
	otherFwd, _ := g.Lookup("A'", halfgraph.Forward)
	otherBwd, _ := g.Lookup("A'", halfgraph.Backward)

	require.Equal(t, bwd, g.Half(fwd).OtherHalf)
	require.Equal(t, fwd, g.Half(bwd).OtherHalf)
	// OtherSide is resolved in the opposite direction at the peer address.
	require.Equal(t, otherBwd, g.Half(fwd).OtherSide)
	require.Equal(t, otherFwd, g.Half(bwd).OtherSide)
	require.Equal(t, fwd, g.Half(g.Half(fwd).OtherSide).OtherSide)
}

func TestBuilder_UnknownAdjacencyEndpoint(t *testing.T) {
	b := halfgraph.NewBuilder()
	b.AddHalf("A", halfgraph.Forward, 1, "X", "")
	b.AddAdjacency("A", "B") // B was never registered
	_, err := b.Build()
	require.ErrorIs(t, err, halfgraph.ErrUnknownAdjacencyEndpoint)
}

func TestBuilder_InconsistentHalf(t *testing.T) {
	b := halfgraph.NewBuilder()
	b.AddHalf("A", halfgraph.Forward, 1, "X", "")
	b.AddHalf("A", halfgraph.Forward, 2, "Z", "")
	_, err := b.Build()
	require.ErrorIs(t, err, halfgraph.ErrInconsistentHalf)
}
