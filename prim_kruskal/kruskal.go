// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes a *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/branchnet/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil.
//   - ErrDisconnected  : if |V| == 0 or the edges cannot span every node.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Retrieve node IDs in insertion order; if len(nodes)==0 → ErrDisconnected.
//     If len(nodes)==1 → trivial MST (empty, weight=0).
//  3. Collect all edges via graph.Edges() (creation order).
//  4. Sort edges by ascending Weight (sort.SliceStable keeps creation order for equal weights).
//  5. Initialize DSU maps parent[] and rank[] for each node.
//  6. Loop over sorted edges: for each edge (u,v), if find(u) != find(v), then union(u,v) and include edge in MST.
//  7. Once MST has |V|-1 edges, break. After loop, if MST edge count < |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Retrieve node IDs.
	nodes := graph.Nodes()
	if len(nodes) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(nodes) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Collect all edges (copies, creation order).
	edges := graph.Edges()

	// 4. Stable sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 5. Initialize disjoint-set structures.
	parent := make(map[string]string, len(nodes))
	rank := make(map[string]int, len(nodes))
	for _, id := range nodes {
		parent[id] = id
		rank[id] = 0
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v string) {
		rootU := find(u)
		rootV := find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 6. Build MST by iterating over sorted edges.
	var (
		mst         = make([]core.Edge, 0, len(nodes)-1)
		totalWeight float64
		numNodes    = len(nodes)
	)
	for _, e := range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == numNodes-1 {
				break
			}
		}
	}

	// 7. Fewer than |V|-1 edges ⇒ not spanning.
	if len(mst) < numNodes-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
