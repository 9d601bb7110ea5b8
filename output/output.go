// Package output serializes a converged Updates store to a per-half CSV
// record, in place of original_source/updates.py's dataframe()/write()
// (pandas) — mirroring the shape of that original without pulling in a
// dataframe dependency no other repo in the pack imports either.
package output

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/update"
)

// Columns are the record fields, in output column order.
var Columns = []string{
	"Address", "Direction", "Otherside", "ASN", "ConnASN", "Org", "ConnOrg",
	"Direct", "Certain", "Stub",
}

// Record is one output row: a single interface half's inferred label.
type Record struct {
	Address   string
	Direction halfgraph.Direction
	Otherside string // "" if h.asn == IXP or no otherside was observed
	ASN       halfgraph.ASN
	ConnASN   halfgraph.ASN
	Org       halfgraph.OrgId
	ConnOrg   halfgraph.OrgId
	Direct    bool
	Certain   bool
	Stub      bool
}

// isInverseForOutput recomputes the inverse-pair condition used during
// inference, except updates.org(h) substitutes for the base-label lookup
// on h (used only to test "certain", not to mutate anything).
func isInverseForOutput(g *halfgraph.Graph, half, neighbor halfgraph.HalfId, updates *update.Updates) bool {
	n := g.Half(neighbor)
	hOrg := updates.OrgOr(half, "")
	return hOrg == updates.OrgOr(neighbor, "") && hOrg == n.Org
}

// Certain reports whether any neighbor of half satisfies the inverse
// condition against half's inferred org, populating the Certain column.
func Certain(g *halfgraph.Graph, half halfgraph.HalfId, updates *update.Updates) bool {
	h := g.Half(half)
	for _, n := range h.Neighbors {
		if isInverseForOutput(g, half, n, updates) {
			return true
		}
	}
	return false
}

// Records builds one Record per half with an inference, sorted by
// (Address, Direction).
func Records(g *halfgraph.Graph, updates *update.Updates) []Record {
	halves := updates.AllHalves()
	out := make([]Record, 0, len(halves))
	for _, id := range halves {
		h := g.Half(id)
		connASN, connOrg := updates.Mapping(id)

		otherside := ""
		if h.ASN != halfgraph.IXP && h.OtherSide != halfgraph.InvalidHalf {
			otherside = g.Half(h.OtherSide).Address
		}

		out = append(out, Record{
			Address:   h.Address,
			Direction: h.Direction,
			Otherside: otherside,
			ASN:       h.ASN,
			ConnASN:   connASN,
			Org:       h.Org,
			ConnOrg:   connOrg,
			Direct:    updates.IsDirect(id),
			Certain:   Certain(g, id, updates),
			Stub:      updates.IsStub(id),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Address != out[j].Address {
			return out[i].Address < out[j].Address
		}
		return out[i].Direction.String() < out[j].Direction.String()
	})
	return out
}

// WriteCSV writes records to w in Columns order.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Address,
			r.Direction.String(),
			r.Otherside,
			strconv.Itoa(int(r.ASN)),
			strconv.Itoa(int(r.ConnASN)),
			string(r.Org),
			string(r.ConnOrg),
			strconv.FormatBool(r.Direct),
			strconv.FormatBool(r.Certain),
			strconv.FormatBool(r.Stub),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
