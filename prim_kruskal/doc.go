// Package prim_kruskal provides the two classic batch algorithms for computing the Minimum
// Spanning Tree (MST) of a *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T ⊆ E that spans V
//     with minimal total weight.
//   - In this module the incremental builder (package mst) never calls these algorithms
//     on the insertion path. They serve as the reference oracle that certifies the
//     incremental tree (mst.Verify) and as the recompute path (mst.Rebuild).
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//     Sort all edges by weight (stable, so creation order breaks ties), then merge
//     components with a disjoint-set until |V|−1 edges are accepted.
//     Time O(E log E + α(V)·E), Space O(V + E).
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, float64, error)
//     Grow one tree from root with a min-heap of outgoing candidates ordered by
//     (weight, push order). Time O(E log V), Space O(V + E).
//
// On a complete graph E = V·(V−1)/2, so both are Θ(V² log V). Use them for audits,
// not on every insertion.
//
// Error Conditions
//
//	- ErrInvalidGraph   : nil graph, or unknown method in Compute.
//	- ErrEmptyRoot      : Prim called with root == "" on a graph with ≥ 2 nodes.
//	- core.ErrNodeNotFound: Prim root does not exist.
//	- ErrDisconnected   : |V| == 0, or no spanning tree exists.
//
// Determinism
//
//   - graph.Nodes() and graph.Edges() enumerate in insertion/creation order.
//   - Returned edges are the stored records, so From is always the earlier-inserted endpoint.
package prim_kruskal
