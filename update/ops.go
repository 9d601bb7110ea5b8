package update

import (
	"fmt"
	"sort"

	"github.com/netradar/mapit/halfgraph"
)

// Contains reports whether half has any inference recorded.
func (u *Updates) Contains(half halfgraph.HalfId) bool {
	_, ok := u.orgs[half]
	return ok
}

// ASN returns the inferred ASN for half. Calling ASN on a half with no
// inference is a program error (callers must gate on Contains or use
// ASNOr); it panics rather than returning a silently wrong zero value,
// mirroring the KeyError the Python original raises on an unguarded dict
// access.
func (u *Updates) ASN(half halfgraph.HalfId) halfgraph.ASN {
	asn, ok := u.asns[half]
	if !ok {
		panic(fmt.Sprintf("update: ASN: half %d has no inference", half))
	}
	return asn
}

// Org returns the inferred Org for half; see ASN for the absent-key policy.
func (u *Updates) Org(half halfgraph.HalfId) halfgraph.OrgId {
	org, ok := u.orgs[half]
	if !ok {
		panic(fmt.Sprintf("update: Org: half %d has no inference", half))
	}
	return org
}

// Mapping returns the (ASN, Org) pair for half; see ASN for the absent-key
// policy.
func (u *Updates) Mapping(half halfgraph.HalfId) (halfgraph.ASN, halfgraph.OrgId) {
	return u.ASN(half), u.Org(half)
}

// ASNOr returns the inferred ASN for half, or def if absent.
func (u *Updates) ASNOr(half halfgraph.HalfId, def halfgraph.ASN) halfgraph.ASN {
	if asn, ok := u.asns[half]; ok {
		return asn
	}
	return def
}

// OrgOr returns the inferred Org for half, or def if absent. This is the
// gated lookup the inverse-inference rule uses, matching the original's
// org_default(neighbor, None): if the neighbor is unmapped the comparison
// against def can never spuriously succeed because a real half's Org is
// never the zero value.
func (u *Updates) OrgOr(half halfgraph.HalfId, def halfgraph.OrgId) halfgraph.OrgId {
	if org, ok := u.orgs[half]; ok {
		return org
	}
	return def
}

// IsDirect reports whether half's inference was established by a direct
// rule (add_borders or the stub heuristic).
func (u *Updates) IsDirect(half halfgraph.HalfId) bool {
	_, ok := u.direct[half]
	return ok
}

// IsStub reports whether half's inference was established by the stub
// heuristic.
func (u *Updates) IsStub(half halfgraph.HalfId) bool {
	_, ok := u.stubs[half]
	return ok
}

// Update sets or overwrites half's inferred (asn, org). If isDirect or
// isStub is true, half is added to the corresponding flag set; flags are
// not cleared by Update, only by Remove — they monotonically grow across
// calls unless Remove intervenes.
func (u *Updates) Update(half halfgraph.HalfId, asn halfgraph.ASN, org halfgraph.OrgId, isDirect, isStub bool) {
	u.asns[half] = asn
	u.orgs[half] = org
	if isDirect {
		u.direct[half] = struct{}{}
	}
	if isStub {
		u.stubs[half] = struct{}{}
	}
}

// UpdateFrom copies src's inferred (asn, org) onto half.
func (u *Updates) UpdateFrom(half, src halfgraph.HalfId, isDirect bool) {
	asn, org := u.Mapping(src)
	u.Update(half, asn, org, isDirect, false)
}

// Remove deletes half from all four components.
func (u *Updates) Remove(half halfgraph.HalfId) {
	delete(u.asns, half)
	delete(u.orgs, half)
	delete(u.direct, half)
	delete(u.stubs, half)
}

// Demote removes half from the direct set only, leaving its (asn, org)
// mapping in place. RemoveStep uses this to downgrade a direct inference
// that its neighborhood no longer supports back to an ordinary (indirect)
// one, rather than erasing the mapping outright — mirroring the
// original's updates.direct.remove(half).
func (u *Updates) Demote(half halfgraph.HalfId) {
	delete(u.direct, half)
}

// Copy returns a deep-enough copy: independent maps, shared HalfId keys
// (HalfId is a value type, so this is automatic).
func (u *Updates) Copy() *Updates {
	c := New()
	for k, v := range u.asns {
		c.asns[k] = v
	}
	for k, v := range u.orgs {
		c.orgs[k] = v
	}
	for k := range u.direct {
		c.direct[k] = struct{}{}
	}
	for k := range u.stubs {
		c.stubs[k] = struct{}{}
	}
	return c
}

// Equal reports component-wise equality, the fixed-point test the Driver
// uses to detect convergence.
func (u *Updates) Equal(other *Updates) bool {
	if other == nil {
		return false
	}
	if len(u.asns) != len(other.asns) || len(u.direct) != len(other.direct) || len(u.stubs) != len(other.stubs) {
		return false
	}
	for k, v := range u.asns {
		if ov, ok := other.asns[k]; !ok || ov != v {
			return false
		}
	}
	for k, v := range u.orgs {
		if ov, ok := other.orgs[k]; !ok || ov != v {
			return false
		}
	}
	for k := range u.direct {
		if _, ok := other.direct[k]; !ok {
			return false
		}
	}
	for k := range u.stubs {
		if _, ok := other.stubs[k]; !ok {
			return false
		}
	}
	return true
}

// Difference returns every half whose inferred Org differs between u and
// other (including a half present in only one of the two), matching the
// original's difference(): it compares org mappings only, not asns.
func (u *Updates) Difference(other *Updates) []halfgraph.HalfId {
	seen := make(map[halfgraph.HalfId]struct{}, len(u.orgs)+len(other.orgs))
	var out []halfgraph.HalfId
	for k := range u.orgs {
		seen[k] = struct{}{}
	}
	for k := range other.orgs {
		seen[k] = struct{}{}
	}
	for k := range seen {
		a, aok := u.orgs[k]
		b, bok := other.orgs[k]
		if aok != bok || a != b {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AllHalves returns every half with an inference, in ascending HalfId
// order. Go maps have no stable iteration order, so this sort is what
// makes every pass over "all inferred halves" deterministic across runs;
// HalfId order takes the place of the Python original's insertion order.
func (u *Updates) AllHalves() []halfgraph.HalfId {
	out := make([]halfgraph.HalfId, 0, len(u.asns))
	for k := range u.asns {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DirectHalves returns every half in the direct set, in ascending HalfId
// order; see AllHalves for why the order is sorted rather than insertion
// order.
func (u *Updates) DirectHalves() []halfgraph.HalfId {
	out := make([]halfgraph.HalfId, 0, len(u.direct))
	for k := range u.direct {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StubHalves returns every half in the stub set, in ascending HalfId order.
func (u *Updates) StubHalves() []halfgraph.HalfId {
	out := make([]halfgraph.HalfId, 0, len(u.stubs))
	for k := range u.stubs {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
