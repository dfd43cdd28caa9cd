package vf_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vflib/builder"
	"github.com/katalvlaran/vflib/vf"
)

// BenchmarkMatch_ShuffledGrid finds one isomorphism between a 20×20
// bidirectional grid and a relabelled copy.
func BenchmarkMatch_ShuffledGrid(b *testing.B) {
	g1, err := builder.BuildGraph[struct{}, struct{}](nil,
		[]builder.BuilderOption{builder.WithBidirectional()}, builder.Grid(20, 20))
	if err != nil {
		b.Fatal(err)
	}
	g2, _, err := builder.Shuffled(g1, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g1.VertexCount() + g1.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok, _ := vf.Match[struct{}, struct{}](g1, g2); !ok {
			b.Fatal("no match")
		}
	}
}

// BenchmarkMatch_RandomSparse matches a 200-vertex random digraph with p=0.05
// against a relabelled copy.
func BenchmarkMatch_RandomSparse(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	g1, err := builder.BuildGraph[struct{}, struct{}](nil,
		[]builder.BuilderOption{builder.WithRand(rng)}, builder.RandomSparse(200, 0.05))
	if err != nil {
		b.Fatal(err)
	}
	g2, _, err := builder.Shuffled(g1, rng)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok, _ := vf.Match[struct{}, struct{}](g1, g2); !ok {
			b.Fatal("no match")
		}
	}
}

// BenchmarkMatchAll_Subgraph enumerates every embedding of a 4-cycle in a
// 6×6 bidirectional grid.
func BenchmarkMatchAll_Subgraph(b *testing.B) {
	grid, err := builder.BuildGraph[struct{}, struct{}](nil,
		[]builder.BuilderOption{builder.WithBidirectional()}, builder.Grid(6, 6))
	if err != nil {
		b.Fatal(err)
	}
	square, err := builder.BuildGraph[struct{}, struct{}](nil,
		[]builder.BuilderOption{builder.WithBidirectional()}, builder.Cycle(4))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = vf.MatchAll[struct{}, struct{}](grid, square, vf.WithMode(vf.Subgraph))
	}
}
