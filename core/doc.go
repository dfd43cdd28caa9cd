// Package core provides the directed, attributed in-memory Graph consumed by
// the vf matcher through its read-only loader interface.
//
// The Graph G = (V,E) is generic over a vertex attribute type V and an edge
// attribute type E:
//
//   - Vertices receive stable integer IDs (0,1,2,…) in insertion order and keep
//     them for their whole life. Their position in the vertex list is a separate
//     notion: deleting a vertex shifts the positions of later vertices, so IDs
//     and positions diverge (IDFromPos / PosFromID translate between them).
//   - Edges are directed From→To and carry an attribute. Out-edges of a vertex
//     are kept sorted by target ID; in-edges keep insertion order.
//   - Self-loops are rejected unless WithLoops() is set. Parallel edges are
//     always rejected (ErrMultiEdgeNotAllowed).
//   - Optional unique labels (AddLabeledVertex) give human-readable names used by
//     the text format and the CLI.
//
// Concurrency:
//
//	All exported methods are safe for concurrent use; one sync.RWMutex guards
//	the vertex list, the ID index and both adjacency directions.
//
// Loader surface (read-only, used by vf.NewState):
//
//	VertexCount() int
//	IDFromPos(pos int) int
//	PosFromID(id int) int
//	VertexAttr(id int) V
//	OutEdgeCount(id int) int
//	InEdgeCount(id int) int
//	OutEdge(id, i int) (to int, attr E)
//	InEdge(id, i int) (from int, attr E)
//
// The loader methods treat an unknown ID as a caller contract violation and
// panic with ErrVertexNotFound; every mutating method returns sentinel errors
// instead.
//
// Errors:
//
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrDuplicateVertex      – explicit ID or label already in use
//	ErrEmptyLabel           – zero-length label
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – second edge between the same ordered pair
package core
