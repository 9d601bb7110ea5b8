// Package ptp derives the point-to-point "other side" address of an
// IPv4 interface. IPv4 point-to-point links use a /30
// (network + two hosts + broadcast) or a /31 (two hosts, no network or
// broadcast address). If addr is adjacent to a network or broadcast
// address that was itself seen on some router, the subnet must be a /31;
// otherwise a /30 is assumed.
//
// This package is used by the loader in cmd/mapit when constructing a
// halfgraph.Builder; it performs no I/O.
package ptp

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// ToUint32 converts a dotted IPv4 address to its big-endian integer form,
// the representation OtherSide and the seen-address set operate on.
func ToUint32(addr string) (uint32, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return 0, fmt.Errorf("ptp: %q: %w", addr, err)
	}
	if !ip.Is4() {
		return 0, fmt.Errorf("ptp: %q is not an IPv4 address", addr)
	}
	b := ip.As4()
	return binary.BigEndian.Uint32(b[:]), nil
}

// FromUint32 renders a big-endian IPv4 integer back to dotted form.
func FromUint32(ipInt uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], ipInt)
	return netip.AddrFrom4(b).String()
}

// OtherSide computes the peer address of a /30 or /31 point-to-point link
// containing addr. seen is the set of every interface IP (as returned by
// ToUint32) observed anywhere in the traceroute set; it is used only to
// test whether addr's containing /30's network or broadcast address was
// itself seen on a router, which would confirm a /31 instead.
func OtherSide(addr string, seen map[uint32]struct{}) (string, error) {
	ipInt, err := ToUint32(addr)
	if err != nil {
		return "", err
	}
	rem := ipInt % 4
	network := ipInt - rem
	broadcast := network + 3

	var other uint32
	switch {
	case rem == 0:
		other = ipInt + 1
	case rem == 3:
		other = ipInt - 1
	default:
		_, networkSeen := seen[network]
		_, broadcastSeen := seen[broadcast]
		if networkSeen || broadcastSeen {
			// /31 confirmed.
			if rem == 1 {
				other = network
			} else {
				other = broadcast
			}
		} else {
			// Assume /30.
			if rem == 1 {
				other = ipInt + 1
			} else {
				other = ipInt - 1
			}
		}
	}
	return FromUint32(other), nil
}
