package infer

import "github.com/netradar/mapit/halfgraph"

// Providers is a sum-typed membership container: the stub heuristic's
// provider set may name ASNs, Orgs, or both, and is always queried with a
// plain membership test on one or the other.
type Providers struct {
	asns map[halfgraph.ASN]struct{}
	orgs map[halfgraph.OrgId]struct{}
}

// NewProviders builds a Providers set from the given ASNs and Orgs.
func NewProviders(asns []halfgraph.ASN, orgs []halfgraph.OrgId) *Providers {
	p := &Providers{
		asns: make(map[halfgraph.ASN]struct{}, len(asns)),
		orgs: make(map[halfgraph.OrgId]struct{}, len(orgs)),
	}
	for _, a := range asns {
		p.asns[a] = struct{}{}
	}
	for _, o := range orgs {
		p.orgs[o] = struct{}{}
	}
	return p
}

// HasASN reports whether asn is a registered provider ASN.
func (p *Providers) HasASN(asn halfgraph.ASN) bool {
	if p == nil {
		return false
	}
	_, ok := p.asns[asn]
	return ok
}

// HasOrg reports whether org is a registered provider Org.
func (p *Providers) HasOrg(org halfgraph.OrgId) bool {
	if p == nil {
		return false
	}
	_, ok := p.orgs[org]
	return ok
}
