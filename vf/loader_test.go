package vf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/vflib/core"
	"github.com/katalvlaran/vflib/vf"
)

// edgeLoader serves a single edge 10->11 through a mocked loader.
func edgeLoader(ctrl *gomock.Controller) *vf.MockGraphLoader[struct{}, struct{}] {
	ld := vf.NewMockGraphLoader[struct{}, struct{}](ctrl)
	rec := ld.EXPECT()
	rec.VertexCount().Return(2).AnyTimes()
	rec.IDFromPos(0).Return(10).AnyTimes()
	rec.IDFromPos(1).Return(11).AnyTimes()
	rec.PosFromID(10).Return(0).AnyTimes()
	rec.PosFromID(11).Return(1).AnyTimes()
	rec.VertexAttr(gomock.Any()).Return(struct{}{}).AnyTimes()
	rec.OutEdgeCount(10).Return(1).AnyTimes()
	rec.OutEdgeCount(11).Return(0).AnyTimes()
	rec.InEdgeCount(10).Return(0).AnyTimes()
	rec.InEdgeCount(11).Return(1).AnyTimes()
	rec.OutEdge(10, 0).Return(11, struct{}{}).AnyTimes()

	return ld
}

func TestMatch_CustomLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	g1 := edgeLoader(ctrl)
	g2 := graphOf(t, 2, [2]int{0, 1})

	m, ok, err := vf.Match[struct{}, struct{}](g1, g2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[int]int{10: 0, 11: 1}, m.Map1To2)
	assert.Equal(t, map[int]int{0: 10, 1: 11}, m.Map2To1)
}

func TestMatch_ContextCheckerConsulted(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := vf.NewMockContextChecker(ctrl)
	b := vf.NewMockContextChecker(ctrl)
	a.EXPECT().CompatibleWith(gomock.Any()).Return(false).MinTimes(1)
	b.EXPECT().CompatibleWith(gomock.Any()).Return(false).AnyTimes()

	g1 := graphOfCheckers(t, a)
	g2 := graphOfCheckers(t, b)

	_, ok, err := vf.Match[vf.ContextChecker, struct{}](g1, g2, vf.WithContextCheck(true))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = vf.Isomorphic[vf.ContextChecker, struct{}](g1, g2)
	require.NoError(t, err)
	assert.True(t, ok, "checkers are ignored unless enabled")
}

func graphOfCheckers(t *testing.T, attrs ...vf.ContextChecker) *core.Graph[vf.ContextChecker, struct{}] {
	t.Helper()
	g := core.NewGraph[vf.ContextChecker, struct{}]()
	for _, a := range attrs {
		g.AddVertex(a)
	}

	return g
}
