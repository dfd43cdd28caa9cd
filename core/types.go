// Package core defines the Graph, Vertex and Edge types and the construction
// options of the directed attributed graph store.
package core

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateVertex indicates an vertex label is already taken.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrEmptyLabel indicates that a labeled insertion received an empty label.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is one node of a Graph.
//
// ID is stable for the life of the vertex. Label is optional and unique when set.
type Vertex[V, E any] struct {
	// ID is the identifier returned by AddVertex.
	ID int

	// Label is an optional unique human-readable name.
	Label string

	// Attr is the caller-supplied vertex attribute.
	Attr V

	out []*Edge[E] // sorted by To
	in  []*Edge[E] // insertion order
}

// Edge is a directed connection From→To carrying an attribute.
type Edge[E any] struct {
	From int
	To   int
	Attr E
}

// graphConfig holds construction-time flags shared by every Graph instantiation.
type graphConfig struct {
	allowLoops bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *graphConfig)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// Graph is a directed attributed graph with stable integer vertex IDs.
//
// mu guards every field below it. vertices holds the position order; index
// maps an ID to its current position and is rebuilt after removals.
type Graph[V, E any] struct {
	mu sync.RWMutex

	cfg graphConfig

	nextID    int
	edgeCount int
	vertices  []*Vertex[V, E]
	index     map[int]int
	labels    map[string]int
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph[V, E any](opts ...GraphOption) *Graph[V, E] {
	g := &Graph[V, E]{
		index:  make(map[int]int),
		labels: make(map[string]int),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}
