// Package core_test verifies the directed attributed graph store.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vflib/core"
)

// triangle builds 0→1→2→0 with string attributes.
func triangle(t *testing.T) *core.Graph[string, int] {
	t.Helper()
	g := core.NewGraph[string, int]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(b, c, 2))
	require.NoError(t, g.AddEdge(c, a, 3))

	return g
}

func TestGraph_AddVertexAssignsSequentialIDs(t *testing.T) {
	g := core.NewGraph[int, struct{}]()
	assert.Equal(t, 0, g.AddVertex(10))
	assert.Equal(t, 1, g.AddVertex(11))
	assert.Equal(t, 2, g.AddVertices(3, 7))
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.Vertices())

	attr, err := g.Attr(3)
	require.NoError(t, err)
	assert.Equal(t, 7, attr)
}

func TestGraph_LabeledVertices(t *testing.T) {
	g := core.NewGraph[int, int]()
	id, err := g.AddLabeledVertex("x", 1)
	require.NoError(t, err)

	_, err = g.AddLabeledVertex("x", 2)
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
	_, err = g.AddLabeledVertex("", 2)
	assert.ErrorIs(t, err, core.ErrEmptyLabel)

	got, ok := g.VertexByLabel("x")
	require.True(t, ok)
	assert.Equal(t, id, got)
	label, ok := g.Label(id)
	require.True(t, ok)
	assert.Equal(t, "x", label)

	blank, err := g.AddBlankVertex("")
	require.NoError(t, err)
	label, ok = g.Label(blank)
	assert.True(t, ok)
	assert.Empty(t, label)
}

func TestGraph_EdgeConstraints(t *testing.T) {
	g := core.NewGraph[int, int]()
	a, b := g.AddVertex(0), g.AddVertex(0)

	assert.ErrorIs(t, g.AddEdge(a, 99, 0), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(a, a, 0), core.ErrLoopNotAllowed)
	require.NoError(t, g.AddEdge(a, b, 5))
	assert.ErrorIs(t, g.AddEdge(a, b, 6), core.ErrMultiEdgeNotAllowed)
	require.NoError(t, g.AddEdge(b, a, 6))
	assert.Equal(t, 2, g.EdgeCount())

	w, err := g.EdgeAttr(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5, w)

	looped := core.NewGraph[int, int](core.WithLoops())
	v := looped.AddVertex(0)
	require.NoError(t, looped.AddEdge(v, v, 0))
	assert.True(t, looped.Looped())
	in, out, err := looped.Degree(v)
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)
}

func TestGraph_OutEdgesSortedByDestination(t *testing.T) {
	g := core.NewGraph[int, int]()
	g.AddVertices(4, 0)
	require.NoError(t, g.AddEdge(0, 3, 0))
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 0))

	succ, err := g.Successors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, succ)
	for i, want := range []int{1, 2, 3} {
		to, _ := g.OutEdge(0, i)
		assert.Equal(t, want, to)
	}

	require.NoError(t, g.AddEdge(3, 1, 0))
	require.NoError(t, g.AddEdge(2, 1, 0))
	pred, err := g.Predecessors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2}, pred)
}

func TestGraph_RemoveEdgeAndVertex(t *testing.T) {
	g := triangle(t)

	assert.ErrorIs(t, g.RemoveEdge(0, 2), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge(0, 1))
	assert.False(t, g.HasEdge(0, 1))
	assert.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.RemoveVertex(1))
	assert.ErrorIs(t, g.RemoveVertex(1), core.ErrVertexNotFound)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []int{0, 2}, g.Vertices())
	assert.Equal(t, 1, g.PosFromID(2))
	assert.Equal(t, 2, g.IDFromPos(1))
	assert.True(t, g.HasEdge(2, 0))

	// IDs are not reused after removal.
	assert.Equal(t, 3, g.AddVertex("d"))
}

func TestGraph_LoaderSurface(t *testing.T) {
	g := triangle(t)

	assert.Equal(t, "b", g.VertexAttr(1))
	assert.Equal(t, 1, g.OutEdgeCount(1))
	assert.Equal(t, 1, g.InEdgeCount(1))

	to, attr := g.OutEdge(1, 0)
	assert.Equal(t, 2, to)
	assert.Equal(t, 2, attr)
	from, attr := g.InEdge(1, 0)
	assert.Equal(t, 0, from)
	assert.Equal(t, 1, attr)

	assert.Panics(t, func() { g.IDFromPos(3) })
	assert.Panics(t, func() { g.PosFromID(42) })
	assert.Panics(t, func() { g.OutEdge(0, 1) })
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := triangle(t)
	c := g.Clone()

	require.NoError(t, c.RemoveEdge(0, 1))
	assert.True(t, g.HasEdge(0, 1))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.Equal(t, g.Vertices(), c.Vertices())
}

func TestGraph_InducedSubgraph(t *testing.T) {
	g := triangle(t)
	sub, err := g.InducedSubgraph([]int{2, 0})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, sub.Vertices())
	assert.Equal(t, 1, sub.EdgeCount())
	assert.True(t, sub.HasEdge(2, 0))

	_, err = g.InducedSubgraph([]int{7})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Reverse(t *testing.T) {
	g := triangle(t)
	r := g.Reverse()

	for _, e := range g.Edges() {
		assert.True(t, r.HasEdge(e.To, e.From))
		assert.False(t, r.HasEdge(e.From, e.To))
	}
	assert.Equal(t, g.EdgeCount(), r.EdgeCount())
}

func TestGraph_Neighbors(t *testing.T) {
	g := triangle(t)
	n, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, n)
}
