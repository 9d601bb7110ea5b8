// Package update implements Updates, the mutable per-half inference store
// the MAP-IT engine relaxes over: an inferred (ASN, Org) label per
// halfgraph.HalfId, plus the direct and stub flag sets.
//
// Updates is deliberately a plain value type with map/set fields rather
// than a locked object: it is owned by the single-threaded driver loop
// and passed by mutable reference into each step, which reads and writes
// it freely, so there is no concurrent access to guard against.
package update

import "github.com/netradar/mapit/halfgraph"

// Updates is the four-part inference store.
//
// Invariants (maintained by every method in this package):
//   - half is a key of asns iff it is a key of orgs.
//   - direct and stubs are subsets of the asns key set.
type Updates struct {
	asns   map[halfgraph.HalfId]halfgraph.ASN
	orgs   map[halfgraph.HalfId]halfgraph.OrgId
	direct map[halfgraph.HalfId]struct{}
	stubs  map[halfgraph.HalfId]struct{}
}

// New returns an empty Updates.
func New() *Updates {
	return &Updates{
		asns:   make(map[halfgraph.HalfId]halfgraph.ASN),
		orgs:   make(map[halfgraph.HalfId]halfgraph.OrgId),
		direct: make(map[halfgraph.HalfId]struct{}),
		stubs:  make(map[halfgraph.HalfId]struct{}),
	}
}

// Len returns the number of halves with an inference.
func (u *Updates) Len() int { return len(u.asns) }
