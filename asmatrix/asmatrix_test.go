package asmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netradar/mapit/asmatrix"
	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/update"
)

func TestBuild_CountsDirectLinks(t *testing.T) {
	b := halfgraph.NewBuilder()
	b.AddHalf("A", halfgraph.Forward, 1, "X", "")
	b.AddHalf("B", halfgraph.Backward, 2, "Y", "")
	b.AddAdjacency("A", "B")
	g, err := b.Build()
	require.NoError(t, err)

	a, _ := g.Lookup("A", halfgraph.Forward)
	u := update.New()
	u.Update(a, 2, "Y", true, false)

	m := asmatrix.Build(g, u)
	require.Equal(t, int64(1), m.Count(1, 2))
	require.Equal(t, int64(0), m.Count(2, 1))
	require.Equal(t, []halfgraph.ASN{2}, m.Neighbors(1))
}
