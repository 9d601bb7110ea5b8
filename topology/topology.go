// Package topology provides synthetic InterfaceHalf topology generators
// for tests and benchmarks: deterministic fixture builders in place of
// hand-assembling a halfgraph.Builder call sequence in every test file.
//
// Determinism:
//   - Deterministic addresses via a fixed naming scheme per generator.
//   - Deterministic adjacency emission order (ascending index).
package topology

import (
	"fmt"

	"github.com/netradar/mapit/halfgraph"
)

// Errors returned by the generators below.
var (
	ErrTooFewSpokes = fmt.Errorf("topology: need at least 1 spoke")
	ErrTooFewNodes  = fmt.Errorf("topology: need at least 2 nodes")
)

// NodeLabel is the (asn, org) pair a generator assigns to one topology
// position; both hub and spoke/chain nodes take one.
type NodeLabel struct {
	ASN halfgraph.ASN
	Org halfgraph.OrgId
}

// Star builds a hub address "Center" (forward) adjacent to n backward
// spoke addresses "Spoke0".."Spoke{n-1}". hub and spoke label the hub and
// every spoke identically.
func Star(n int, hub, spoke NodeLabel) (*halfgraph.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewSpokes
	}
	b := halfgraph.NewBuilder()
	b.AddHalf("Center", halfgraph.Forward, hub.ASN, hub.Org, "")
	for i := 0; i < n; i++ {
		addr := fmt.Sprintf("Spoke%d", i)
		b.AddHalf(addr, halfgraph.Backward, spoke.ASN, spoke.Org, "")
		b.AddAdjacency("Center", addr)
	}
	return b.Build()
}

// Path builds a chain of n addresses "Node0".."Node{n-1}", each linked to
// the next by a forward-at-i/backward-at-i+1 adjacency, all sharing label.
func Path(n int, label NodeLabel) (*halfgraph.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	b := halfgraph.NewBuilder()
	for i := 0; i < n; i++ {
		addr := fmt.Sprintf("Node%d", i)
		b.AddHalf(addr, halfgraph.Forward, label.ASN, label.Org, "")
		b.AddHalf(addr, halfgraph.Backward, label.ASN, label.Org, "")
	}
	for i := 0; i < n-1; i++ {
		b.AddAdjacency(fmt.Sprintf("Node%d", i), fmt.Sprintf("Node%d", i+1))
	}
	return b.Build()
}

// Cycle builds the same chain as Path, plus a closing adjacency from the
// last node back to the first.
func Cycle(n int, label NodeLabel) (*halfgraph.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	b := halfgraph.NewBuilder()
	for i := 0; i < n; i++ {
		addr := fmt.Sprintf("Node%d", i)
		b.AddHalf(addr, halfgraph.Forward, label.ASN, label.Org, "")
		b.AddHalf(addr, halfgraph.Backward, label.ASN, label.Org, "")
	}
	for i := 0; i < n; i++ {
		b.AddAdjacency(fmt.Sprintf("Node%d", i), fmt.Sprintf("Node%d", (i+1)%n))
	}
	return b.Build()
}
