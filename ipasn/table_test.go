package ipasn_test

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/ipasn"
)

func TestTable_LongestPrefixMatch(t *testing.T) {
	tbl := ipasn.New()
	tbl.Add(netip.MustParsePrefix("203.0.0.0/8"), 100)
	tbl.Add(netip.MustParsePrefix("203.0.113.0/24"), 200)
	tbl.AddDefault()

	require.Equal(t, halfgraph.ASN(200), tbl.Lookup(netip.MustParseAddr("203.0.113.5")))
	require.Equal(t, halfgraph.ASN(100), tbl.Lookup(netip.MustParseAddr("203.0.1.1")))
	require.Equal(t, ipasn.NoASN, tbl.Lookup(netip.MustParseAddr("8.8.8.8")))
}

func TestTable_IXPAndPrivate(t *testing.T) {
	tbl := ipasn.New()
	tbl.AddIXP(netip.MustParsePrefix("206.126.236.0/24"))
	tbl.AddPrivate()
	tbl.AddDefault()

	require.Equal(t, halfgraph.IXP, tbl.Lookup(netip.MustParseAddr("206.126.236.5")))
	require.Equal(t, ipasn.PrivateASN, tbl.Lookup(netip.MustParseAddr("192.168.1.1")))
	require.Equal(t, ipasn.NoASN, tbl.Lookup(netip.MustParseAddr("8.8.8.8")))
}

func TestTable_LoadBGP(t *testing.T) {
	data := "# comment\n1.2.3.0/24 64500\n1.2.0.0/16 64501\n1.2.3.0/24 64500,64502\n"
	tbl := ipasn.New()
	require.NoError(t, tbl.LoadBGP(strings.NewReader(data)))
	require.Equal(t, halfgraph.ASN(64500), tbl.Lookup(netip.MustParseAddr("1.2.3.1")))
	require.Equal(t, halfgraph.ASN(64501), tbl.Lookup(netip.MustParseAddr("1.2.9.1")))
}
