/*
Package asmatrix derives an ASN-by-ASN adjacency matrix from a converged
set of MAP-IT inferences: it reads a finished Updates store into the
dense representation reporting and export tooling needs.

Description:
  An Matrix represents the discovered AS graph as a 2D array where
  Data[i][j] counts the interface-level links observed from ASN i to ASN j.

Use cases:
  - Summarizing a run's output for a report or dashboard.
  - Diffing two runs' AS graphs cell by cell.

Time complexity:
  - Build: O(|updates|).
  - Count/Neighbors: O(1) / O(N).

Memory:
  - O(N^2) for N distinct ASNs seen in updates.
*/
package asmatrix

import (
	"sort"

	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/update"
)

// Matrix holds the discovered AS-to-AS adjacency counts.
type Matrix struct {
	Index map[halfgraph.ASN]int // ASN -> row/col index
	ASNs  []halfgraph.ASN       // index -> ASN, in ascending ASN order
	Data  [][]int64             // Data[i][j] = link count from ASNs[i] to ASNs[j]
}

// Build derives a Matrix from every direct half in updates: for each, the
// base ASN (the physical side) links to the inferred connected ASN. Links
// through IXP or NoRoute sentinels are skipped — they are not a real AS.
func Build(g *halfgraph.Graph, updates *update.Updates) *Matrix {
	seen := make(map[halfgraph.ASN]struct{})
	type link struct{ from, to halfgraph.ASN }
	counts := make(map[link]int64)

	for _, id := range updates.DirectHalves() {
		h := g.Half(id)
		if h.ASN == halfgraph.IXP || h.ASN == halfgraph.NoRoute {
			continue
		}
		connASN, _ := updates.Mapping(id)
		if connASN == halfgraph.IXP || connASN == halfgraph.NoRoute {
			continue
		}
		seen[h.ASN] = struct{}{}
		seen[connASN] = struct{}{}
		counts[link{h.ASN, connASN}]++
	}

	asns := make([]halfgraph.ASN, 0, len(seen))
	for a := range seen {
		asns = append(asns, a)
	}
	sort.Slice(asns, func(i, j int) bool { return asns[i] < asns[j] })

	idx := make(map[halfgraph.ASN]int, len(asns))
	for i, a := range asns {
		idx[a] = i
	}

	data := make([][]int64, len(asns))
	for i := range data {
		data[i] = make([]int64, len(asns))
	}
	for l, n := range counts {
		data[idx[l.from]][idx[l.to]] += n
	}

	return &Matrix{Index: idx, ASNs: asns, Data: data}
}

// Count returns the link count from ASN "from" to ASN "to", or 0 if either
// is absent from the matrix.
func (m *Matrix) Count(from, to halfgraph.ASN) int64 {
	i, ok := m.Index[from]
	if !ok {
		return 0
	}
	j, ok := m.Index[to]
	if !ok {
		return 0
	}
	return m.Data[i][j]
}

// Neighbors returns every ASN with a nonzero outgoing link count from asn,
// in ascending ASN order.
func (m *Matrix) Neighbors(asn halfgraph.ASN) []halfgraph.ASN {
	i, ok := m.Index[asn]
	if !ok {
		return nil
	}
	var out []halfgraph.ASN
	for j, n := range m.Data[i] {
		if n > 0 {
			out = append(out, m.ASNs[j])
		}
	}
	return out
}
