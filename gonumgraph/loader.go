// Package gonumgraph lets vf search graphs held in gonum's graph types.
//
// NewLoader takes a snapshot of a graph.Directed: nodes ordered by ID,
// adjacency ordered by neighbor ID. Gonum iterates nodes in map order, so the
// snapshot is what makes searches over the same graph repeatable. Vertex
// attributes are the graph.Node values and edge attributes the graph.Edge
// values; node or edge types that implement vf.ContextChecker take part in
// context checking.
package gonumgraph

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/vflib/vf"
)

// ErrUnknownNode is the panic value for an identifier absent from the snapshot.
var ErrUnknownNode = errors.New("gonumgraph: unknown node")

// ErrNilGraph is returned by NewLoader for a nil graph.
var ErrNilGraph = errors.New("gonumgraph: nil graph")

// ErrIDOutOfRange is returned by NewLoader for a node ID that does not fit
// in an int. vf identifies vertices by int, so on 32-bit platforms gonum IDs
// must lie within the int32 range.
var ErrIDOutOfRange = errors.New("gonumgraph: node ID does not fit in int")

type adjacency struct {
	node     graph.Node
	out, in  []int64
	outEdges []graph.Edge
	inEdges  []graph.Edge
}

// Loader is a read-only snapshot of a gonum directed graph.
type Loader struct {
	ids []int64
	pos map[int64]int
	adj []adjacency
}

// NewLoader snapshots g.
func NewLoader(g graph.Directed) (*Loader, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	nodes := graph.NodesOf(g.Nodes())
	slices.SortFunc(nodes, func(a, b graph.Node) int {
		return cmpInt64(a.ID(), b.ID())
	})

	ld := &Loader{
		ids: make([]int64, len(nodes)),
		pos: make(map[int64]int, len(nodes)),
		adj: make([]adjacency, len(nodes)),
	}
	for i, n := range nodes {
		if !fitsInt(n.ID()) {
			return nil, errors.Wrapf(ErrIDOutOfRange, "id %d", n.ID())
		}
		ld.ids[i] = n.ID()
		ld.pos[n.ID()] = i
		ld.adj[i].node = n
	}

	for i, n := range nodes {
		a := &ld.adj[i]
		a.out = sortedIDs(g.From(n.ID()))
		a.in = sortedIDs(g.To(n.ID()))
		for _, to := range a.out {
			a.outEdges = append(a.outEdges, g.Edge(n.ID(), to))
		}
		for _, from := range a.in {
			a.inEdges = append(a.inEdges, g.Edge(from, n.ID()))
		}
	}

	return ld, nil
}

func sortedIDs(it graph.Nodes) []int64 {
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)

	return ids
}

func fitsInt(id int64) bool {
	return id >= math.MinInt && id <= math.MaxInt
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func (ld *Loader) at(id int) *adjacency {
	p, ok := ld.pos[int64(id)]
	if !ok {
		panic(errors.Wrapf(ErrUnknownNode, "id %d", id))
	}

	return &ld.adj[p]
}

// VertexCount implements vf.GraphLoader.
func (ld *Loader) VertexCount() int { return len(ld.ids) }

// IDFromPos implements vf.GraphLoader.
func (ld *Loader) IDFromPos(pos int) int {
	if pos < 0 || pos >= len(ld.ids) {
		panic(errors.Wrapf(ErrUnknownNode, "position %d", pos))
	}

	return int(ld.ids[pos])
}

// PosFromID implements vf.GraphLoader.
func (ld *Loader) PosFromID(id int) int {
	p, ok := ld.pos[int64(id)]
	if !ok {
		panic(errors.Wrapf(ErrUnknownNode, "id %d", id))
	}

	return p
}

// VertexAttr implements vf.GraphLoader.
func (ld *Loader) VertexAttr(id int) graph.Node { return ld.at(id).node }

// OutEdgeCount implements vf.GraphLoader.
func (ld *Loader) OutEdgeCount(id int) int { return len(ld.at(id).out) }

// InEdgeCount implements vf.GraphLoader.
func (ld *Loader) InEdgeCount(id int) int { return len(ld.at(id).in) }

// OutEdge implements vf.GraphLoader.
func (ld *Loader) OutEdge(id, i int) (int, graph.Edge) {
	a := ld.at(id)
	return int(a.out[i]), a.outEdges[i]
}

// InEdge implements vf.GraphLoader.
func (ld *Loader) InEdge(id, i int) (int, graph.Edge) {
	a := ld.at(id)
	return int(a.in[i]), a.inEdges[i]
}

var _ vf.GraphLoader[graph.Node, graph.Edge] = (*Loader)(nil)
