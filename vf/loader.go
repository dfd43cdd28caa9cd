package vf

//go:generate mockgen -source loader.go -destination loader_mock.go -package vf

// GraphLoader is the read-only view of an input graph consumed by the
// matcher. Positions run over [0, VertexCount()); identifiers are whatever
// the storage layer uses and are what a Mapping reports.
//
// Implementations may panic on unknown identifiers or positions: the matcher
// only asks for identifiers it obtained from IDFromPos or from edge
// enumeration, so a miss means the loader itself is inconsistent.
type GraphLoader[V, E any] interface {
	// VertexCount returns the number of vertices.
	VertexCount() int
	// IDFromPos maps a position to a vertex identifier.
	IDFromPos(pos int) int
	// PosFromID maps a vertex identifier back to its position.
	PosFromID(id int) int
	// VertexAttr returns the attribute of a vertex.
	VertexAttr(id int) V
	// OutEdgeCount returns the number of edges leaving a vertex.
	OutEdgeCount(id int) int
	// InEdgeCount returns the number of edges entering a vertex.
	InEdgeCount(id int) int
	// OutEdge returns the destination and attribute of the i-th outgoing edge.
	OutEdge(id, i int) (int, E)
	// InEdge returns the source and attribute of the i-th incoming edge.
	InEdge(id, i int) (int, E)
}

// ContextChecker is implemented by vertex or edge attributes that restrict
// which counterparts they may be matched with. It is consulted only when
// context checking is enabled and both attributes implement it.
type ContextChecker interface {
	CompatibleWith(other ContextChecker) bool
}

// compatible applies the ContextChecker contract to two arbitrary attributes.
func compatible(a, b any) bool {
	ca, ok := a.(ContextChecker)
	if !ok {
		return true
	}
	cb, ok := b.(ContextChecker)
	if !ok {
		return true
	}

	return ca.CompatibleWith(cb)
}
