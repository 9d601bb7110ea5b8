package infer

import (
	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/update"
)

// StubHeuristic labels single-homed stub customers that the main loop
// leaves unmapped: applied once after the main loop converges, and only
// when a provider set is supplied. For every forward
// half with exactly one neighbor, absent (together with its otherhalf)
// from updates, with a routed base ASN, whose sole neighbor is itself
// unmapped, has a positive base ASN, a different base Org, and is not
// itself a provider by either ASN or Org, assign the neighbor's (asn, org)
// to the half as a direct+stub inference and, if present, to its otherside
// as an indirect+stub inference.
//
// Mutates updates in place; allHalves should be every half in the graph
// (not just the working set), matching the original's full sweep.
func StubHeuristic(g *halfgraph.Graph, allHalves []halfgraph.HalfId, updates *update.Updates, providers *Providers) {
	for _, id := range allHalves {
		h := g.Half(id)
		if h.Direction != halfgraph.Forward || h.NumNeighbors() != 1 {
			continue
		}
		if updates.Contains(id) {
			continue
		}
		if h.OtherHalf != halfgraph.InvalidHalf && updates.Contains(h.OtherHalf) {
			continue
		}
		if h.ASN == halfgraph.NoRoute {
			continue
		}

		neighbor := h.Neighbors[0]
		n := g.Half(neighbor)
		if n.ASN <= 0 || n.Org == h.Org || updates.Contains(neighbor) {
			continue
		}
		if providers.HasASN(n.ASN) || providers.HasOrg(n.Org) {
			continue
		}

		updates.Update(id, n.ASN, n.Org, true, true)
		if h.OtherSide != halfgraph.InvalidHalf {
			updates.Update(h.OtherSide, n.ASN, n.Org, false, true)
		}
	}
}
