package halfgraph

// Graph is the read-only, arena-backed interface-half graph produced by
// Builder.Build. It is safe to share across goroutines for reads because
// nothing in the inference engine (package infer) ever mutates it: the
// graph is treated as immutable once built.
type Graph struct {
	halves []InterfaceHalf
	index  map[addrDir]HalfId
}

type addrDir struct {
	address   string
	direction Direction
}

// Len returns the number of halves in the arena, including those excluded
// from the working set.
func (g *Graph) Len() int { return len(g.halves) }

// Half returns a pointer into the arena for id. The pointer is stable for
// the lifetime of g because the arena is never resized after Build.
func (g *Graph) Half(id HalfId) *InterfaceHalf {
	return &g.halves[id]
}

// Lookup resolves a (address, direction) pair to its HalfId, as used by
// external callers reconstructing a half reference (e.g. output
// serialization reattaching records to the graph they came from).
func (g *Graph) Lookup(address string, direction Direction) (HalfId, bool) {
	id, ok := g.index[addrDir{address, direction}]
	return id, ok
}

// All returns every HalfId in the arena, in build (insertion) order —
// the order the halves were registered with Builder.AddHalf.
func (g *Graph) All() []HalfId {
	ids := make([]HalfId, len(g.halves))
	for i := range g.halves {
		ids[i] = HalfId(i)
	}
	return ids
}

// WorkingSet returns every HalfId with NumNeighbors() > 1, in the same
// order as All. The relaxation rules require at least two neighbors to
// distinguish a dominant neighbor organization from a single observation.
func (g *Graph) WorkingSet() []HalfId {
	var ids []HalfId
	for i := range g.halves {
		if g.halves[i].NumNeighbors() > 1 {
			ids = append(ids, HalfId(i))
		}
	}
	return ids
}
