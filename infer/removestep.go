package infer

import (
	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/update"
)

// discard drops a direct inference that its neighborhood no longer
// supports: if h's otherside exists and is itself direct, h is only
// demoted out of the direct set (its label is kept, now as an indirect
// inference); otherwise h is removed outright, along with its otherside
// if present.
func discard(g *halfgraph.Graph, half halfgraph.HalfId, updates *update.Updates) {
	h := g.Half(half)
	if h.OtherSide != halfgraph.InvalidHalf && updates.IsDirect(h.OtherSide) {
		updates.Demote(half)
		return
	}
	updates.Remove(half)
	if h.OtherSide != halfgraph.InvalidHalf {
		updates.Remove(h.OtherSide)
	}
}

// removeBorders runs one pruning pass: copy updates, then for every
// currently-direct half recompute the dominant connected org by the same
// rule as addBorders; discard the inference if no org is accepted or the
// accepted org differs from the current inference.
func removeBorders(g *halfgraph.Graph, updates *update.Updates, f float64) *update.Updates {
	newUpdates := updates.Copy()
	for _, id := range updates.DirectHalves() {
		_, org, ok := ConnectedOrg(g, id, updates, f)
		if !ok || org != updates.Org(id) {
			discard(g, id, newUpdates)
		}
	}
	return newUpdates
}

// RemoveStep iterates removeBorders until a pass leaves updates unchanged,
// then returns the stable value. Each pass only discards or demotes
// entries, never adds one, so the set of directly-inferred halves shrinks
// monotonically and the loop is guaranteed to terminate.
func RemoveStep(g *halfgraph.Graph, updates *update.Updates, f float64) *update.Updates {
	for {
		newUpdates := removeBorders(g, updates, f)
		if updates.Equal(newUpdates) {
			return updates
		}
		updates = newUpdates
	}
}
