package ptp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netradar/mapit/ptp"
)

// TestOtherSide_SlashThirtyOne covers the /31 case: A = 10.0.0.2, and the
// network address of its containing /30 (10.0.0.0) was itself seen on a
// router, confirming a /31 whose peer is the broadcast address 10.0.0.3.
func TestOtherSide_SlashThirtyOne(t *testing.T) {
	network, err := ptp.ToUint32("10.0.0.0")
	require.NoError(t, err)
	seen := map[uint32]struct{}{network: {}}

	other, err := ptp.OtherSide("10.0.0.2", seen)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.3", other)
}

// TestOtherSide_SlashThirty covers the /30 fallback: the same A =
// 10.0.0.2, but neither the network nor broadcast address of the
// containing /30 was ever seen, so a /30 is assumed and the peer is the
// adjacent host address 10.0.0.1.
func TestOtherSide_SlashThirty(t *testing.T) {
	other, err := ptp.OtherSide("10.0.0.2", map[uint32]struct{}{})
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", other)
}

// TestOtherSide_RemainderZeroAndThree covers the unconditional cases:
// remainder 0 is always the network address (peer = +1, the first host),
// remainder 3 is always the broadcast address (peer = -1, the last host).
func TestOtherSide_RemainderZeroAndThree(t *testing.T) {
	other, err := ptp.OtherSide("10.0.0.4", map[uint32]struct{}{})
	require.NoError(t, err)
	require.Equal(t, "10.0.0.5", other)

	other, err = ptp.OtherSide("10.0.0.7", map[uint32]struct{}{})
	require.NoError(t, err)
	require.Equal(t, "10.0.0.6", other)
}

func TestOtherSide_RejectsNonIPv4(t *testing.T) {
	_, err := ptp.OtherSide("not-an-ip", nil)
	require.Error(t, err)
}
