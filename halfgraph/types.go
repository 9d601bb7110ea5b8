// Package halfgraph implements the interface-half graph: an immutable,
// arena-backed graph of InterfaceHalf nodes connected by the four
// structural relations the MAP-IT inference engine relaxes over
// (otherhalf, otherside, and the forward/backward neighbor lists).
//
// The arena stores every InterfaceHalf in a single contiguous slice and
// addresses cross-references by HalfId (an index into that slice) rather
// than by pointer, so the graph has no reference cycles to manage and
// iterates cache-densely. External lookup by (address, direction) goes
// through a secondary index built once in Builder.Build.
//
// The graph is read-only after Build: halves are created once and never
// mutated or removed during inference (the mutable inference state lives
// in package update).
package halfgraph

import "fmt"

// ASN is an Autonomous System Number, with two sentinels:
//
//	NoRoute - the address has no entry in the routing table.
//	IXP     - the address belongs to an IXP prefix.
type ASN int32

const (
	// NoRoute marks a half whose base routing lookup found nothing.
	NoRoute ASN = 0
	// IXP marks a half whose address belongs to an internet exchange prefix.
	IXP ASN = -2
)

// OrgId identifies the CAIDA/paper-level operator grouping an ASN belongs to.
type OrgId string

// Direction is the observed direction of one interface address.
// Forward means the adjacency recorded this address as the traceroute
// source and the next hop as destination; Backward is the reverse.
type Direction bool

const (
	Backward Direction = false
	Forward  Direction = true
)

// String renders the direction the way records and log lines expect it.
func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// HalfId is the arena index of an InterfaceHalf. It is the identity key
// used throughout package update.
type HalfId uint32

// InvalidHalf marks the absence of a structural relation (no otherhalf,
// no otherside observed).
const InvalidHalf HalfId = ^HalfId(0)

// InterfaceHalf is one observed (address, direction) pair.
//
// ASN/Org are the base labels from the routing lookup and are immutable
// once set by Builder.AddHalf. OtherHalf, OtherSide, and Neighbors are
// resolved once in Builder.Build and never change afterward.
type InterfaceHalf struct {
	Address   string
	Direction Direction
	ASN       ASN
	Org       OrgId

	OtherHalf HalfId // InvalidHalf if the opposite direction was never observed
	OtherSide HalfId // InvalidHalf if no point-to-point peer was observed

	// Neighbors holds, for a forward half, the backward halves at every
	// v with (address, v) in the adjacency set (and symmetrically for a
	// backward half). Order matches the order adjacencies were supplied
	// to the Builder; tie-breaking in package infer depends on that order
	// being stable across runs on the same input.
	Neighbors []HalfId
}

// NumNeighbors returns len(Neighbors); halves with NumNeighbors() <= 1 are
// excluded from the main relaxation loop's working set (Graph.WorkingSet).
func (h *InterfaceHalf) NumNeighbors() int { return len(h.Neighbors) }

// Identifier renders the (address, direction) pair used as the logical
// identity of a half, matching the original source's namedtuple identity.
func (h *InterfaceHalf) Identifier() string {
	return fmt.Sprintf("%s/%s", h.Address, h.Direction)
}
