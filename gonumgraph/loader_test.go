package gonumgraph_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/vflib/gonumgraph"
	"github.com/katalvlaran/vflib/vf"
)

func directed(edges ...[2]int64) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for _, e := range edges {
		for _, id := range e {
			if g.Node(id) == nil {
				g.AddNode(simple.Node(id))
			}
		}
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	return g
}

func TestLoader_Snapshot(t *testing.T) {
	g := directed([2]int64{30, 10}, [2]int64{10, 20}, [2]int64{30, 20})
	ld, err := gonumgraph.NewLoader(g)
	require.NoError(t, err)

	require.Equal(t, 3, ld.VertexCount())
	assert.Equal(t, []int{10, 20, 30}, []int{ld.IDFromPos(0), ld.IDFromPos(1), ld.IDFromPos(2)})
	assert.Equal(t, 2, ld.PosFromID(30))
	assert.Equal(t, int64(20), ld.VertexAttr(20).ID())

	require.Equal(t, 2, ld.OutEdgeCount(30))
	to, e := ld.OutEdge(30, 0)
	assert.Equal(t, 10, to)
	assert.Equal(t, int64(30), e.From().ID())
	to, _ = ld.OutEdge(30, 1)
	assert.Equal(t, 20, to)

	require.Equal(t, 2, ld.InEdgeCount(20))
	from, e := ld.InEdge(20, 0)
	assert.Equal(t, 10, from)
	assert.Equal(t, int64(20), e.To().ID())

	assert.Panics(t, func() { ld.PosFromID(99) })
	assert.Panics(t, func() { ld.IDFromPos(3) })
}

func TestNewLoader_Nil(t *testing.T) {
	_, err := gonumgraph.NewLoader(nil)
	assert.ErrorIs(t, err, gonumgraph.ErrNilGraph)
}

func TestNewLoader_WideIDs(t *testing.T) {
	g := directed([2]int64{math.MaxInt32 + 1, 1})

	ld, err := gonumgraph.NewLoader(g)
	if strconv.IntSize == 32 {
		assert.ErrorIs(t, err, gonumgraph.ErrIDOutOfRange)
		return
	}
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt32+1), int64(ld.IDFromPos(1)))
}

func TestLoader_Match(t *testing.T) {
	// A 4-cycle with a pendant in the target, a directed 4-cycle as pattern.
	target, err := gonumgraph.NewLoader(directed(
		[2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 4}, [2]int64{4, 1}, [2]int64{4, 5},
	))
	require.NoError(t, err)
	pattern, err := gonumgraph.NewLoader(directed(
		[2]int64{100, 101}, [2]int64{101, 102}, [2]int64{102, 103}, [2]int64{103, 100},
	))
	require.NoError(t, err)

	all, err := vf.MatchAll[graph.Node, graph.Edge](target, pattern, vf.WithMode(vf.Subgraph))
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, m := range all {
		assert.Equal(t, vf.Unset, m.Map1To2[5])
		for id2, id1 := range m.Map2To1 {
			next2 := 100 + (id2-100+1)%4
			assert.Equal(t, m.Map2To1[next2], 1+id1%4, "pattern edge %d->%d", id2, next2)
		}
	}

	ok, err := vf.Isomorphic[graph.Node, graph.Edge](target, pattern)
	require.NoError(t, err)
	assert.False(t, ok)
}
