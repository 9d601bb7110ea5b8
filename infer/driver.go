package infer

import (
	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/update"
)

// Config bundles the Driver's tunable inputs.
type Config struct {
	// Factor is the dominance threshold for majority acceptance, 0<=f<=1.
	Factor float64
	// Providers is consulted only by StubHeuristic; nil disables it
	// entirely.
	Providers *Providers
	// Iterations caps the outer Add/Remove alternation; zero is treated
	// as "use DefaultIterations".
	Iterations int
}

// DefaultIterations is the outer loop's safety-net cap.
const DefaultIterations = 100

// Result is Run's return value: the converged Updates plus the
// diagnostics a caller needs to decide what to log (package infer itself
// never logs).
type Result struct {
	Updates *update.Updates
	// Passes is the number of Add/Remove alternations actually executed.
	Passes int
	// Converged is true iff the loop stopped because the history check
	// fired, false if it only stopped because Passes reached the cap.
	Converged bool
	// SparseGraph is true iff the initial working set was empty — the
	// loop is skipped entirely and, if Providers is set, only
	// StubHeuristic runs.
	SparseGraph bool
}

// Run is the outer driver: alternate AddStep and RemoveStep, starting
// from an empty Updates and the set of halves with more than one
// neighbor, until the result repeats a value already seen in this call's
// history or the iteration cap is reached. If cfg.Providers is non-nil,
// StubHeuristic is applied once to the converged result.
func Run(g *halfgraph.Graph, cfg Config) Result {
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	allHalves := g.All()
	working := g.WorkingSet()

	updates := update.New()
	result := Result{SparseGraph: len(working) == 0}

	var history []*update.Updates
	if !result.SparseGraph {
		for pass := 0; pass < iterations; pass++ {
			updates = AddStep(g, working, updates, cfg.Factor)
			updates = RemoveStep(g, updates, cfg.Factor)
			result.Passes = pass + 1
			if containsUpdates(history, updates) {
				result.Converged = true
				break
			}
			history = append(history, updates.Copy())
		}
	}

	if cfg.Providers != nil {
		StubHeuristic(g, allHalves, updates, cfg.Providers)
	}

	result.Updates = updates
	return result
}
