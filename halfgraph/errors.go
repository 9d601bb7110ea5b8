package halfgraph

import "errors"

// Sentinel errors for Builder. The engine treats its input as
// well-formed; these are the fail-fast checks a loader must satisfy
// before Build is called.
var (
	// ErrEmptyAddress indicates AddHalf was called with an empty address.
	ErrEmptyAddress = errors.New("halfgraph: empty address")

	// ErrInconsistentHalf indicates the same (address, direction) was
	// registered twice with different base labels.
	ErrInconsistentHalf = errors.New("halfgraph: inconsistent base labels for half")

	// ErrUnknownAdjacencyEndpoint indicates AddAdjacency referenced an
	// address/direction that was never registered via AddHalf — a
	// structural error loaders must filter out before passing the graph
	// in.
	ErrUnknownAdjacencyEndpoint = errors.New("halfgraph: adjacency endpoint not registered")
)
