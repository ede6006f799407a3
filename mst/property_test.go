package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/branchnet/core"
	"github.com/katalvlaran/branchnet/geo"
	"github.com/katalvlaran/branchnet/mst"
)

// randomSequence draws n coordinates from seed. With grid set, coordinates are
// small integers on the plane so equal distances are common.
func randomSequence(n int, seed int64, grid bool) []geo.Coordinate {
	r := rand.New(rand.NewSource(seed))
	out := make([]geo.Coordinate, n)
	for i := range out {
		if grid {
			out[i] = at(float64(r.Intn(6)), float64(r.Intn(6)))
			continue
		}
		out[i] = geo.Coordinate{Lat: 5.9 + r.Float64()*3.9, Lon: 79.6 + r.Float64()*2.3}
	}

	return out
}

// grow inserts seq and extends after each insertion, calling check with k inserted nodes.
func grow(seq []geo.Coordinate, grid bool, check func(k int, g *core.Graph, b *mst.Builder) bool, opts ...mst.Option) (*mst.Builder, bool) {
	var g *core.Graph
	if grid {
		g = core.NewGraph(core.WithDistance(planarDistance))
	} else {
		g = core.NewGraph()
	}
	b := mst.NewBuilder(g, opts...)
	for i, c := range seq {
		id := fmt.Sprintf("N%d", i)
		if err := g.InsertNode(id, c); err != nil {
			return b, false
		}
		if i > 0 {
			if _, err := b.Extend(id); err != nil {
				return b, false
			}
		}
		if check != nil && !check(i+1, g, b) {
			return b, false
		}
	}

	return b, true
}

// TestBuilderProperties checks optimality, tree size and determinism for random insertion sequences.
func TestBuilderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	sizes := gen.IntRange(1, 36)
	seeds := gen.Int64()

	properties.Property("tree is minimal after every insertion", prop.ForAll(
		func(n int, seed int64, grid bool) bool {
			_, ok := grow(randomSequence(n, seed, grid), grid, func(_ int, g *core.Graph, b *mst.Builder) bool {
				return mst.Verify(b, g) == nil
			})
			return ok
		},
		sizes, seeds, gen.Bool(),
	))

	properties.Property("k insertions give k-1 edges over k nodes", prop.ForAll(
		func(n int, seed int64, appendOnly bool) bool {
			var opts []mst.Option
			if appendOnly {
				opts = append(opts, mst.WithAppendOnly())
			}
			_, ok := grow(randomSequence(n, seed, true), true, func(k int, _ *core.Graph, b *mst.Builder) bool {
				tree := b.Tree()
				if len(tree.Edges) != k-1 || len(tree.Nodes) != k {
					return false
				}
				degrees := 0
				for _, id := range tree.Nodes {
					degrees += b.Attachments(id)
				}
				return degrees == 2*(k-1)
			}, opts...)
			return ok
		},
		sizes, seeds, gen.Bool(),
	))

	properties.Property("two runs build the same tree", prop.ForAll(
		func(n int, seed int64) bool {
			seq := randomSequence(n, seed, true)
			b1, ok1 := grow(seq, true, nil)
			b2, ok2 := grow(seq, true, nil)
			if !ok1 || !ok2 {
				return false
			}
			e1, e2 := b1.Edges(), b2.Edges()
			if len(e1) != len(e2) {
				return false
			}
			for i := range e1 {
				if e1[i] != e2[i] {
					return false
				}
			}
			return b1.TotalWeight() == b2.TotalWeight()
		},
		sizes, seeds,
	))

	properties.TestingRun(t)
}
