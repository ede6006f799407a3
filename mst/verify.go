package mst

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/branchnet/core"
	"github.com/katalvlaran/branchnet/prim_kruskal"
)

// RelativeTolerance bounds the accepted difference between the tree weight and the
// reference MST weight, relative to the reference weight.
const RelativeTolerance = 1e-9

// Verify certifies that b holds a minimum spanning tree of g.
//
// Implementation:
//   - Stage 1: The tree must span every node of g with exactly V−1 edges (ErrNotSpanning).
//   - Stage 2: Every tree edge must exist in g with the same weight, and the edges
//     must join V nodes without a cycle (ErrNotSpanning).
//   - Stage 3: The total must match prim_kruskal.Kruskal within RelativeTolerance (ErrNotOptimal).
//
// Complexity: O(V² log V), dominated by the reference run.
func Verify(b *Builder, g *core.Graph) error {
	if b == nil || g == nil {
		return ErrNilGraph
	}
	tree := b.Tree()
	nodes := g.Nodes()
	if len(nodes) == 0 {
		if len(tree.Edges) != 0 {
			return fmt.Errorf("%w: %d edges over an empty graph", ErrNotSpanning, len(tree.Edges))
		}

		return nil
	}
	if len(tree.Edges) != len(nodes)-1 {
		return fmt.Errorf("%w: %d edges for %d nodes", ErrNotSpanning, len(tree.Edges), len(nodes))
	}

	forest := newDSU(nodes)
	for _, e := range tree.Edges {
		if !forest.has(e.From) || !forest.has(e.To) {
			return fmt.Errorf("%w: edge %s-%s has an unknown endpoint", ErrNotSpanning, e.From, e.To)
		}
		w, err := g.Weight(e.From, e.To)
		if err != nil || w != e.Weight {
			return fmt.Errorf("%w: edge %s-%s does not match the graph", ErrNotSpanning, e.From, e.To)
		}
		if !forest.union(e.From, e.To) {
			return fmt.Errorf("%w: edge %s-%s closes a cycle", ErrNotSpanning, e.From, e.To)
		}
	}

	_, want, err := prim_kruskal.Kruskal(g)
	if err != nil {
		if errors.Is(err, prim_kruskal.ErrDisconnected) {
			return fmt.Errorf("%w: %v", ErrNotSpanning, err)
		}

		return err
	}
	if math.Abs(tree.TotalWeight-want) > RelativeTolerance*math.Max(1, want) {
		return fmt.Errorf("%w: tree weight %.9g, minimum %.9g", ErrNotOptimal, tree.TotalWeight, want)
	}

	return nil
}
