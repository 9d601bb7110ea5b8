// Package diagnostics reports structural health of a halfgraph.Graph
// ahead of running inference, including the "graph too sparse" signal a
// caller needs to know the main relaxation loop will be skipped in favor
// of the stub heuristic alone.
//
// Complexity:
//
//   - Time:   O(H + E) where H is the half count and E the total neighbor
//     edge count, for the connected-component walk.
//   - Memory: O(H) for the visited set and traversal queue.
package diagnostics

import "github.com/netradar/mapit/halfgraph"

// Report summarizes one graph's structure.
type Report struct {
	TotalHalves    int
	WorkingSetSize int
	// Components is the number of connected components in the graph
	// whose edges are the Neighbors, OtherHalf and OtherSide links of
	// every half (Neighbors is symmetric by construction — see
	// halfgraph.Builder).
	Components int
	// LargestComponent is the size of the single largest component.
	LargestComponent int
	// Sparse mirrors the driver's own check: true iff WorkingSetSize == 0.
	Sparse bool
}

// diagWalker carries the breadth-first traversal state used to count
// connected components; mirrors the small walker-struct idiom used
// elsewhere in this codebase for multi-step graph traversals.
type diagWalker struct {
	graph   *halfgraph.Graph
	visited []bool
}

// Diagnose computes a Report for g.
func Diagnose(g *halfgraph.Graph) Report {
	rep := Report{
		TotalHalves:    g.Len(),
		WorkingSetSize: len(g.WorkingSet()),
	}
	rep.Sparse = rep.WorkingSetSize == 0

	w := &diagWalker{graph: g, visited: make([]bool, g.Len())}
	for _, id := range g.All() {
		if w.visited[id] {
			continue
		}
		size := w.walk(id)
		rep.Components++
		if size > rep.LargestComponent {
			rep.LargestComponent = size
		}
	}
	return rep
}

// walk performs one breadth-first traversal of the component containing
// start, over both Neighbors and OtherHalf/OtherSide links (every
// structural relation a half has), returning the component's size.
func (w *diagWalker) walk(start halfgraph.HalfId) int {
	queue := []halfgraph.HalfId{start}
	w.visited[start] = true
	size := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		size++

		h := w.graph.Half(id)
		push := func(next halfgraph.HalfId) {
			if next != halfgraph.InvalidHalf && !w.visited[next] {
				w.visited[next] = true
				queue = append(queue, next)
			}
		}
		push(h.OtherHalf)
		push(h.OtherSide)
		for _, n := range h.Neighbors {
			push(n)
		}
	}
	return size
}
