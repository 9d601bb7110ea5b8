package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/output"
	"github.com/netradar/mapit/update"
)

func TestRecords_SortedAndFieldsPopulated(t *testing.T) {
	b := halfgraph.NewBuilder()
	b.AddHalf("B", halfgraph.Forward, 2, "Y", "")
	b.AddHalf("A", halfgraph.Forward, 1, "X", "A'")
	b.AddHalf("A'", halfgraph.Backward, 9, "Q", "A")
	g, err := b.Build()
	require.NoError(t, err)

	a, _ := g.Lookup("A", halfgraph.Forward)
	bHalf, _ := g.Lookup("B", halfgraph.Forward)

	u := update.New()
	u.Update(a, 2, "Y", true, false)
	u.Update(bHalf, 3, "Z", false, false)

	records := output.Records(g, u)
	require.Len(t, records, 2)
	require.Equal(t, "A", records[0].Address)
	require.Equal(t, "B", records[1].Address)
	require.Equal(t, "A'", records[0].Otherside)
	require.True(t, records[0].Direct)
	require.False(t, records[1].Direct)

	var buf strings.Builder
	require.NoError(t, output.WriteCSV(&buf, records))
	require.Contains(t, buf.String(), "Address,Direction,Otherside")
}
