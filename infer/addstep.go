package infer

import (
	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/update"
)

// addBorders scans halves for new direct inferences: for each half not
// already direct, and not an IXP-only half unless forward, compute the
// dominant connected organization and, if accepted and it differs from
// the half's own base label, record a direct inference. Returns a fresh
// copy; updates is left untouched.
func addBorders(g *halfgraph.Graph, halves []halfgraph.HalfId, updates *update.Updates, f float64) *update.Updates {
	out := updates.Copy()
	for _, id := range halves {
		h := g.Half(id)
		if out.IsDirect(id) {
			continue
		}
		if h.ASN == halfgraph.IXP && h.Direction != halfgraph.Forward {
			continue
		}
		asn, org, ok := ConnectedOrg(g, id, updates, f)
		if !ok {
			continue
		}
		if org != h.Org && asn != halfgraph.IXP {
			out.Update(id, asn, org, true, false)
		}
	}
	return out
}

// addOthersides propagates direct inferences across point-to-point links:
// every direct half whose base ASN is not IXP and whose otherside is not already direct
// propagates its label onto that otherside as an indirect inference.
// Mutates newUpdates in place.
func addOthersides(g *halfgraph.Graph, newUpdates *update.Updates) {
	for _, id := range newUpdates.DirectHalves() {
		h := g.Half(id)
		if h.ASN == halfgraph.IXP || h.OtherSide == halfgraph.InvalidHalf {
			continue
		}
		if newUpdates.IsDirect(h.OtherSide) {
			continue
		}
		asn, org := newUpdates.Mapping(id)
		newUpdates.Update(h.OtherSide, asn, org, false, false)
	}
}

// resolveDirect implements dual_inferences's both-direct branch: remove the
// asn==0 side, else the backward half (a deterministic, if arbitrary,
// tie-break preserved verbatim from the original algorithm). If the
// removed half's otherside exists and is not itself a supported direct
// inference, remove that too.
func resolveDirect(g *halfgraph.Graph, forward, backward halfgraph.HalfId, forwardASN halfgraph.ASN, newUpdates *update.Updates) {
	removeHalf := backward
	if forwardASN == halfgraph.NoRoute {
		removeHalf = forward
	}
	rh := g.Half(removeHalf)
	removeOtherside := !newUpdates.IsDirect(rh.OtherSide) || newUpdates.ASN(removeHalf) == halfgraph.NoRoute
	newUpdates.Remove(removeHalf)
	if removeOtherside && rh.OtherSide != halfgraph.InvalidHalf {
		newUpdates.Remove(rh.OtherSide)
	}
}

// resolveIndirect implements dual_inferences's one-direct-one-indirect
// branch: discard whichever side has asn==0, else the indirect one, keeping
// the direct inference intact on the other half's otherside.
func resolveIndirect(g *halfgraph.Graph, directHalf, indirectHalf halfgraph.HalfId, newUpdates *update.Updates) {
	removeHalf := indirectHalf
	if newUpdates.ASN(directHalf) == halfgraph.NoRoute {
		removeHalf = directHalf
	}
	newUpdates.Remove(removeHalf)
	rh := g.Half(removeHalf)
	if rh.OtherSide != halfgraph.InvalidHalf && !newUpdates.IsDirect(rh.OtherSide) {
		newUpdates.Remove(rh.OtherSide)
	}
}

// dualInferences resolves conflicting inferences across a point-to-point
// link: for every forward half whose otherhalf also carries an inference
// and whose inferred asn is positive, if the forward and backward orgs
// disagree, resolve via resolveDirect or resolveIndirect depending on
// which side(s) are direct. Mutates newUpdates in place; iterates the
// snapshot taken at entry since both branches can delete entries out from
// under a live scan.
//
// The gate is on the inferred asn(h) rather than the half's base asn —
// see DESIGN.md for the corresponding original-source discrepancy, where
// the literal code gates on the base label instead.
func dualInferences(g *halfgraph.Graph, newUpdates *update.Updates) {
	for _, id := range newUpdates.AllHalves() {
		h := g.Half(id)
		if h.Direction != halfgraph.Forward {
			continue
		}
		if !newUpdates.Contains(id) || h.OtherHalf == halfgraph.InvalidHalf || !newUpdates.Contains(h.OtherHalf) {
			continue
		}
		forwardASN, forwardOrg := newUpdates.Mapping(id)
		if forwardASN <= 0 {
			continue
		}
		_, backwardOrg := newUpdates.Mapping(h.OtherHalf)
		if forwardOrg == backwardOrg {
			continue
		}
		switch {
		case newUpdates.IsDirect(id) && newUpdates.IsDirect(h.OtherHalf):
			resolveDirect(g, id, h.OtherHalf, forwardASN, newUpdates)
		case newUpdates.IsDirect(id):
			resolveIndirect(g, id, h.OtherHalf, newUpdates)
		case newUpdates.IsDirect(h.OtherHalf):
			resolveIndirect(g, h.OtherHalf, id, newUpdates)
		}
	}
}

// isInverse is the inverse-pair condition: half's base org mirrors
// neighbor's inferred org, and half's inferred org mirrors neighbor's
// base org — the signature of two adjacent interfaces whose labels got
// swapped rather than genuinely differing. neighbor's absence from
// updates makes the first comparison fail (OrgOr's default never equals a
// real Org), matching the original's org_default(neighbor, None) guard.
func isInverse(g *halfgraph.Graph, half, neighbor halfgraph.HalfId, updates *update.Updates) bool {
	h := g.Half(half)
	n := g.Half(neighbor)
	return h.Org == updates.OrgOr(neighbor, "") && updates.OrgOr(half, "") == n.Org
}

// inverseInferences cancels inverse-pair artifacts: for every indirect
// half whose otherside is also not direct, if any neighbor satisfies the
// inverse condition, remove the half and its otherside.
//
// This rule is scoped to indirect halves (h in updates, h not in direct)
// with no direction restriction, rather than the original Python's scan
// of updates.direct restricted to backward halves — see DESIGN.md for the
// discrepancy and why the indirect-half framing was chosen.
func inverseInferences(g *halfgraph.Graph, newUpdates *update.Updates) {
	direct := make(map[halfgraph.HalfId]struct{})
	for _, id := range newUpdates.DirectHalves() {
		direct[id] = struct{}{}
	}
	for _, id := range newUpdates.AllHalves() {
		if _, isDirect := direct[id]; isDirect {
			continue
		}
		h := g.Half(id)
		if h.OtherSide != halfgraph.InvalidHalf {
			if _, otherDirect := direct[h.OtherSide]; otherDirect {
				continue
			}
		}
		for _, neighbor := range h.Neighbors {
			if isInverse(g, id, neighbor, newUpdates) {
				newUpdates.Remove(id)
				if h.OtherSide != halfgraph.InvalidHalf {
					newUpdates.Remove(h.OtherSide)
				}
				break
			}
		}
	}
}

// createRerun computes the next working set: every neighbor of every half
// whose inference changed, restricted to halves with more than one
// neighbor.
func createRerun(g *halfgraph.Graph, updates, newUpdates *update.Updates) []halfgraph.HalfId {
	seen := make(map[halfgraph.HalfId]struct{})
	var out []halfgraph.HalfId
	for _, changed := range newUpdates.Difference(updates) {
		for _, neighbor := range g.Half(changed).Neighbors {
			if g.Half(neighbor).NumNeighbors() <= 1 {
				continue
			}
			if _, ok := seen[neighbor]; ok {
				continue
			}
			seen[neighbor] = struct{}{}
			out = append(out, neighbor)
		}
	}
	return out
}

// containsUpdates reports whether target is structurally equal to any
// member of history, the linear scan backing the inner-loop and
// outer-loop fixed-point checks.
func containsUpdates(history []*update.Updates, target *update.Updates) bool {
	for _, h := range history {
		if h.Equal(target) {
			return true
		}
	}
	return false
}

// AddStep runs add_borders -> add_othersides -> dual_inferences ->
// inverse_inferences, rebuilding the working set after each pass via
// createRerun, until the resulting Updates repeats a value already seen in
// this call's own history — then returns that last stable value.
func AddStep(g *halfgraph.Graph, halves []halfgraph.HalfId, updates *update.Updates, f float64) *update.Updates {
	var history []*update.Updates
	for {
		newUpdates := addBorders(g, halves, updates, f)
		addOthersides(g, newUpdates)
		dualInferences(g, newUpdates)
		inverseInferences(g, newUpdates)

		halves = createRerun(g, updates, newUpdates)

		if containsUpdates(history, updates) {
			return updates
		}
		history = append(history, updates.Copy())
		updates = newUpdates.Copy()
	}
}
