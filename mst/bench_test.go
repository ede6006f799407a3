package mst_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/branchnet/core"
	"github.com/katalvlaran/branchnet/mst"
	"github.com/katalvlaran/branchnet/prim_kruskal"
)

const benchNodes = 200

func benchGraph(b *testing.B) *core.Graph {
	g := core.NewGraph(core.WithCapacity(benchNodes))
	for i, c := range randomSequence(benchNodes, 7, false) {
		if err := g.InsertNode(fmt.Sprintf("N%d", i), c); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

// BenchmarkRebuild measures a full incremental pass over 200 nodes.
func BenchmarkRebuild(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Rebuild(g)
	}
}

// BenchmarkRebuild_AppendOnly measures the same pass without the exchange step.
func BenchmarkRebuild_AppendOnly(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Rebuild(g, mst.WithAppendOnly())
	}
}

// BenchmarkKruskalPerInsertion is the baseline: one Kruskal run per insertion prefix.
func BenchmarkKruskalPerInsertion(b *testing.B) {
	seq := randomSequence(benchNodes, 7, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph(core.WithCapacity(benchNodes))
		for j, c := range seq {
			_ = g.InsertNode(fmt.Sprintf("N%d", j), c)
			_, _, _ = prim_kruskal.Kruskal(g)
		}
	}
}
