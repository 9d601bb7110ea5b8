// Package infer implements the MAP-IT relaxation loop: AddStep,
// RemoveStep, StubHeuristic, and the outer Driver that alternates the
// first two to a fixed point.
//
// Every function in this package is a pure transformation of a
// halfgraph.Graph (read-only) and an update.Updates value (read, or
// read-and-copy-then-write) — nothing here performs I/O, logs, or blocks;
// that is left entirely to callers (see package
// github.com/netradar/mapit/cmd/mapit for the logging/progress wrapper
// around Run).
//
// Steps:
//
//   - AddStep runs add_borders -> add_othersides -> dual_inferences ->
//     inverse_inferences, iterating internally until its own history of
//     Updates values shows a repeat, then returns the last stable value.
//   - RemoveStep iteratively discards direct inferences no longer
//     supported by their neighborhood, until a pass makes no change.
//   - StubHeuristic is a single terminal pass assigning ISP->stub links
//     the main loop cannot reach, applied once after convergence if a
//     provider set is supplied.
//   - Run is the outer driver: alternate AddStep/RemoveStep, detect
//     cycles via history, cap at Config.Iterations passes.
//
// Determinism: every map/set iteration order this package depends on is
// made explicit and sorted (halfgraph.Graph.All/WorkingSet are arena-
// order; update.Updates.AllHalves/DirectHalves/StubHalves are HalfId-
// sorted) so that two runs over the same inputs produce bit-identical
// Updates; this sorted order takes the place of the Python original's
// dict/set insertion-order iteration.
package infer
