package update_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/update"
)

func TestUpdates_UpdateContainsRemove(t *testing.T) {
	u := update.New()
	const h halfgraph.HalfId = 1

	require.False(t, u.Contains(h))

	u.Update(h, 100, "OrgA", true, false)
	require.True(t, u.Contains(h))
	require.True(t, u.IsDirect(h))
	require.False(t, u.IsStub(h))
	asn, org := u.Mapping(h)
	require.Equal(t, halfgraph.ASN(100), asn)
	require.Equal(t, halfgraph.OrgId("OrgA"), org)

	u.Remove(h)
	require.False(t, u.Contains(h))
	require.False(t, u.IsDirect(h))
}

func TestUpdates_FlagsMonotonicUntilRemove(t *testing.T) {
	u := update.New()
	const h halfgraph.HalfId = 1

	u.Update(h, 1, "A", false, false)
	require.False(t, u.IsDirect(h))

	u.Update(h, 1, "A", true, false)
	require.True(t, u.IsDirect(h))

	// A further, non-direct Update does not clear the direct flag.
	u.Update(h, 2, "B", false, false)
	require.True(t, u.IsDirect(h))
}

func TestUpdates_CopyIsIndependent(t *testing.T) {
	u := update.New()
	u.Update(1, 1, "A", true, false)

	c := u.Copy()
	require.True(t, u.Equal(c))

	c.Update(2, 2, "B", true, false)
	require.False(t, u.Equal(c))
	require.False(t, u.Contains(2))
	require.True(t, c.Contains(2))
}

func TestUpdates_Difference(t *testing.T) {
	a := update.New()
	a.Update(1, 1, "X", true, false)
	a.Update(2, 2, "Y", true, false)

	b := a.Copy()
	b.Update(2, 2, "Z", true, false) // org changed
	b.Remove(1)                      // only in a now

	diff := a.Difference(b)
	require.ElementsMatch(t, []halfgraph.HalfId{1, 2}, diff)
}

func TestUpdates_UpdateFrom(t *testing.T) {
	u := update.New()
	u.Update(1, 42, "OrgA", true, false)
	u.UpdateFrom(2, 1, false)

	asn, org := u.Mapping(2)
	require.Equal(t, halfgraph.ASN(42), asn)
	require.Equal(t, halfgraph.OrgId("OrgA"), org)
	require.False(t, u.IsDirect(2))
}

func TestUpdates_ASNPanicsWhenAbsent(t *testing.T) {
	u := update.New()
	require.Panics(t, func() { u.ASN(99) })
}

func TestUpdates_ASNOrAndOrgOr(t *testing.T) {
	u := update.New()
	require.Equal(t, halfgraph.ASN(-1), u.ASNOr(1, -1))
	require.Equal(t, halfgraph.OrgId(""), u.OrgOr(1, ""))
}

func TestUpdates_DeterministicOrder(t *testing.T) {
	u := update.New()
	u.Update(3, 1, "A", true, false)
	u.Update(1, 1, "A", true, false)
	u.Update(2, 1, "A", false, true)

	require.Equal(t, []halfgraph.HalfId{1, 2, 3}, u.AllHalves())
	require.Equal(t, []halfgraph.HalfId{1, 3}, u.DirectHalves())
	require.Equal(t, []halfgraph.HalfId{2}, u.StubHalves())
}
