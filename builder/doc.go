// Package builder assembles deterministic directed test graphs for the
// matcher: rings, paths, stars, wheels, complete and bipartite graphs,
// lattices, hexagram variants and random G(n, p) graphs, plus isomorphic
// shuffles of any core.Graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph[V, E]:  creates a core.Graph and runs Constructors in order.
//     – Constructor:       closure over a Sink (any core.Graph instantiation).
//   - Configuration primitives:
//     – BuilderOption:     mutates builderConfig before use.
//     – WithSeed/WithRand: rng for RandomSparse.
//     – WithBidirectional: every emitted edge also in reverse.
//     – WithIDScheme, WithSymbolIDs, WithExcelColumnIDs, WithSymbNumb.
//   - Vertex-label schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   spreadsheet columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("L0","L1",…).
//   - Relabeling:
//     – Shuffled:          isomorphic copy with random vertex and edge order
//     plus the old→new ID map, the standard fixture for matcher tests.
//
// Guarantees:
//
//   - Constructors address vertices by label; re-running a constructor on
//     the same graph adds nothing, and constructors sharing labels merge.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors wrap sentinels (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ...) with the method name.
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder
