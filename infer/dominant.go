package infer

import (
	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/update"
)

// max2Counts scans orgOrder (a list of distinct keys, each with a known
// count) and returns the two highest counts seen, first-encountered wins
// ties — the direct Go translation of the original's generic max2()
// helper specialized to counting, since Go has no single generic idiom
// for "first, first_value, second, second_value" that reads as cleanly
// as the Python version.
func max2Counts(order []halfgraph.OrgId, counts map[halfgraph.OrgId][]halfgraph.ASN) (firstOrg halfgraph.OrgId, firstCount int, secondCount int) {
	firstCount, secondCount = -1, -1
	for _, org := range order {
		n := len(counts[org])
		if n > firstCount {
			secondCount = firstCount
			firstOrg, firstCount = org, n
		} else if n > secondCount {
			secondCount = n
		}
	}
	return firstOrg, firstCount, secondCount
}

// ConnectedOrg computes the dominant connected organization for half, the
// shared core of add_borders and remove_borders.
//
// Steps:
//  1. Build, for every neighbor of half, the (asn, org) pair taken from
//     updates if the neighbor has an inference there, else the neighbor's
//     own base labels — grouped by org in first-encountered order.
//  2. Find the top two orgs by neighbor count.
//  3. Accept the top org iff it is the only org present, or its count
//     strictly exceeds the runner-up's AND strictly exceeds
//     f * half.NumNeighbors().
//  4. Within the accepted org, pick the modal ASN (first-encountered tie
//     break).
//
// ok is false when no org is accepted; callers must not use asn/org in
// that case.
func ConnectedOrg(g *halfgraph.Graph, half halfgraph.HalfId, updates *update.Updates, f float64) (asn halfgraph.ASN, org halfgraph.OrgId, ok bool) {
	h := g.Half(half)

	counts := make(map[halfgraph.OrgId][]halfgraph.ASN)
	var order []halfgraph.OrgId
	for _, neighbor := range h.Neighbors {
		var nAsn halfgraph.ASN
		var nOrg halfgraph.OrgId
		if updates.Contains(neighbor) {
			nAsn, nOrg = updates.Mapping(neighbor)
		} else {
			nh := g.Half(neighbor)
			nAsn, nOrg = nh.ASN, nh.Org
		}
		if _, seen := counts[nOrg]; !seen {
			order = append(order, nOrg)
		}
		counts[nOrg] = append(counts[nOrg], nAsn)
	}
	if len(order) == 0 {
		return 0, "", false
	}

	firstOrg, firstCount, secondCount := max2Counts(order, counts)
	accept := len(order) == 1 || (firstCount > secondCount && float64(firstCount) > float64(h.NumNeighbors())*f)
	if !accept {
		return 0, "", false
	}

	asnCounts := make(map[halfgraph.ASN]int)
	var asnOrder []halfgraph.ASN
	for _, a := range counts[firstOrg] {
		if _, seen := asnCounts[a]; !seen {
			asnOrder = append(asnOrder, a)
		}
		asnCounts[a]++
	}
	bestCount := -1
	var bestASN halfgraph.ASN
	for _, a := range asnOrder {
		if asnCounts[a] > bestCount {
			bestASN, bestCount = a, asnCounts[a]
		}
	}
	return bestASN, firstOrg, true
}
