package halfgraph

// Builder accumulates InterfaceHalf base labels and directed adjacencies,
// then resolves the structural relations (otherhalf, otherside, neighbors)
// once in Build. Builder is the only place InterfaceHalf values are
// created; after Build, the graph is immutable.
//
// Steps:
//  1. AddHalf registers the base (asn, org) label and the point-to-point
//     peer address (if any, from package ptp) for every (address,
//     direction) pair that will appear in the traceroute adjacency set.
//  2. AddAdjacency registers each directed (u, v) adjacency extracted from
//     a traceroute: the forward half at u gains a neighbor, the backward
//     half at v gains a neighbor.
//  3. Build allocates the arena, resolves OtherHalf/OtherSide by address
//     lookup, and returns the finished Graph.
//
// Complexity: O(H + A) where H is the number of registered halves and A is
// the number of adjacencies.
type Builder struct {
	specs   map[addrDir]halfSpec
	order   []addrDir
	adjList map[addrDir][]addrDir // half key -> ordered neighbor keys of the opposite direction
	err     error
}

type halfSpec struct {
	asn              ASN
	org              OrgId
	othersideAddress string
	hasOtherside     bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		specs:   make(map[addrDir]halfSpec),
		adjList: make(map[addrDir][]addrDir),
	}
}

// AddHalf registers the base label for one (address, direction) pair.
// othersideAddress is the dotted address of the point-to-point peer
// (package ptp); pass "" if unknown or not point-to-point. Calling AddHalf
// twice for the same (address, direction) with differing labels is an
// error, surfaced from Build.
func (b *Builder) AddHalf(address string, direction Direction, asn ASN, org OrgId, othersideAddress string) {
	if b.err != nil {
		return
	}
	if address == "" {
		b.err = ErrEmptyAddress
		return
	}
	key := addrDir{address, direction}
	spec := halfSpec{asn: asn, org: org, othersideAddress: othersideAddress, hasOtherside: othersideAddress != ""}
	if existing, ok := b.specs[key]; ok {
		if existing != spec {
			b.err = ErrInconsistentHalf
		}
		return
	}
	b.specs[key] = spec
	b.order = append(b.order, key)
}

// AddAdjacency registers one directed traceroute adjacency (u, v): u
// recorded as source, v as the next hop. Both (u, Forward) and (v,
// Backward) must already be registered via AddHalf.
func (b *Builder) AddAdjacency(u, v string) {
	if b.err != nil {
		return
	}
	fwd := addrDir{u, Forward}
	bwd := addrDir{v, Backward}
	if _, ok := b.specs[fwd]; !ok {
		b.err = ErrUnknownAdjacencyEndpoint
		return
	}
	if _, ok := b.specs[bwd]; !ok {
		b.err = ErrUnknownAdjacencyEndpoint
		return
	}
	b.adjList[fwd] = append(b.adjList[fwd], bwd)
	b.adjList[bwd] = append(b.adjList[bwd], fwd)
}

// Build allocates the arena, resolves the structural relations, and
// returns the finished Graph. Build may be called only once per Builder.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	g := &Graph{
		halves: make([]InterfaceHalf, len(b.order)),
		index:  make(map[addrDir]HalfId, len(b.order)),
	}
	for i, key := range b.order {
		spec := b.specs[key]
		g.halves[i] = InterfaceHalf{
			Address:   key.address,
			Direction: key.direction,
			ASN:       spec.asn,
			Org:       spec.org,
		}
		g.index[key] = HalfId(i)
	}

	for i := range g.halves {
		h := &g.halves[i]
		key := addrDir{h.Address, h.Direction}

		h.OtherHalf = InvalidHalf
		if id, ok := g.index[addrDir{h.Address, !h.Direction}]; ok {
			h.OtherHalf = id
		}

		h.OtherSide = InvalidHalf
		if spec := b.specs[key]; spec.hasOtherside {
			if id, ok := g.index[addrDir{spec.othersideAddress, !h.Direction}]; ok {
				h.OtherSide = id
			}
		}

		if neighbors, ok := b.adjList[key]; ok {
			h.Neighbors = make([]HalfId, len(neighbors))
			for j, nk := range neighbors {
				h.Neighbors[j] = g.index[nk]
			}
		}
	}

	return g, nil
}
