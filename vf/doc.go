// Package vf finds graph and subgraph isomorphisms between two directed,
// attributed graphs with the VF algorithm.
//
// What:
//
//   - Isomorphism: a bijection between the vertices of G1 and G2 that
//     preserves every edge in both directions.
//   - Subgraph: an injection of every vertex of G2 into G1 whose image is an
//     induced subgraph: edges among the matched G1 vertices, self-loops
//     included, correspond exactly to the edges of G2. Only edges touching
//     unmatched G1 vertices may be extra.
//   - Context checking: vertex and edge attributes implementing
//     ContextChecker can veto pairings.
//
// How:
//
//   - Both graphs are copied into degree-sorted working graphs (highest
//     total degree first, ties in loader order).
//   - Every vertex carries a Group: in the mapping, pointed to by it
//     (FromMapping), pointing into it (ToMapping), or Disconnected.
//   - A candidate generator picks one G2 vertex and walks its G1 partners
//     in degree order, stopping as soon as degrees can no longer agree.
//   - Each committed pair is recorded in an action log so backtracking
//     restores the classification sets, totals and mapping exactly.
//   - The depth-first search keeps explicit stacks and yields matches
//     lazily through an Enumerator; nothing runs between pulls.
//
// Key Types:
//
//   - GraphLoader[V, E]: read-only input graph (core.Graph implements it)
//   - State[V, E]: one single-use search
//   - Enumerator[V, E]: lazy sequence of Mapping values
//   - Mapping: Map1To2 / Map2To1 in loader identifiers, Unset for unmatched
//   - Options: Mode, ContextCheck, MaxMatches, Logger, Observer
//
// Complexity:
//
//   - Construction: O(V log V + E) per graph
//   - Search:       exponential in the worst case, pruned per step by
//     O(deg) feasibility checks and O(log V) classification updates
//   - Memory:       O(V + E) plus O(depth · V) for candidate snapshots
//
// Errors:
//
//   - ErrNilLoader          a graph is nil
//   - ErrSearchStarted      a State was searched twice
//   - ErrUnknownMode        invalid Mode
//   - ErrInvalidMaxMatches  negative match limit
//
// Finding no match is not an error: Match reports ok == false and
// MatchAll returns an empty slice.
//
// Concurrency:
//
//   - A State and its Enumerator belong to one goroutine. Distinct States
//     share nothing and may run in parallel over the same read-only loaders.
package vf
