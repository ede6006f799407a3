// Package mst maintains a minimum spanning tree over a core.Graph while nodes are
// inserted one at a time.
//
// What & Why
//
//   - Every inserted location must be wired into the network with minimal total
//     cable length. Recomputing Prim or Kruskal on the complete graph after each
//     insertion costs Θ(V² log V). The Builder instead processes only the star of
//     the new node: its V−1 edges to previously inserted nodes.
//
// Algorithm (Builder.Extend)
//
//  1. Attachment: among the edges from the new node to the nodes inserted before it,
//     pick the one with strictly minimum weight. Equal weights resolve to the
//     earliest inserted endpoint, so two runs over the same insertion sequence
//     build the same tree. By the cut property this edge belongs to some MST of
//     the enlarged node set.
//  2. Exchange: a star edge may be cheaper than the heaviest tree edge on the path
//     between its endpoints (e.g. A(0), B(10), then C(5)). The new tree is the MST
//     of (previous tree ∪ star), found by a Kruskal pass over those 2k−1 edges.
//     Previous tree edges win ties, so the tree only changes when it must.
//
// The result equals a from-scratch MST after every insertion. WithAppendOnly
// disables step 2: the tree then grows by exactly one appended edge per insertion
// and is guaranteed to span, but not to be minimal.
//
// Contract
//
//   - Extend must be called for nodes in insertion order, once each, skipping the
//     first node (ErrNoPriorNodes).
//   - A failing Extend leaves the tree untouched.
//   - Verify certifies a Builder against prim_kruskal.Kruskal.
//   - Rebuild replays Extend over a graph, e.g. after restoring it from a journal.
//
// Complexity: Extend is O(k log k) for the k-th node, O(k) with WithAppendOnly.
package mst
