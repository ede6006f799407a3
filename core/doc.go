// Package core provides the dynamic branch graph: a thread-safe registry of
// geographically located nodes that grows one node at a time and keeps the
// induced complete graph over everything inserted so far.
//
// The Graph G = (V, E) has these properties:
//
//   - Insert-only: nodes are never removed; coordinates and derived edge weights
//     never change after insertion.
//   - Complete: for every pair of inserted nodes A, B there is exactly one undirected
//     edge record (A,B) with Weight = distance(A, B), visible from both endpoints.
//   - Ordered: nodes carry a 0-based insertion sequence (Node.Seq). Nodes(), Neighbors()
//     and Edges() enumerate in insertion order, so downstream tie-breaks are reproducible.
//   - Atomic insertion: all weights for a new node are computed before anything is
//     stored. Any failure leaves the graph untouched.
//
// Why use core.Graph?
//
//   - The incremental MST builder needs, for a fresh node, every edge to the nodes
//     inserted before it, in a deterministic order. Neighbors() gives exactly that.
//   - The reference MST algorithms (package prim_kruskal) consume the same Graph
//     through Nodes() and Edges().
//
// Configuration Options (GraphOption):
//
//	– WithDistance(fn DistanceFunc)
//	    Replaces the distance model. Default: geo.Distance (haversine, km).
//	    Useful for planar fixtures in tests and examples.
//
//	– WithCapacity(n int)
//	    Pre-sizes the node registry for n nodes.
//
// Core Methods:
//
//	// Node lifecycle
//	InsertNode(id string, c geo.Coordinate) error  // O(V)
//	HasNode(id string) bool                        // O(1)
//	Node(id string) (Node, error)                  // O(1)
//
//	// Two-phase insertion
//	Prepare(id string, c geo.Coordinate) (*Insertion, error) // O(V), stores nothing
//	(*Insertion).Commit() error                              // O(V)
//
//	// Query
//	Nodes() []string                        // O(V), insertion order
//	Neighbors(id string) ([]Neighbor, error) // O(V), insertion order of the neighbours
//	Weight(a, b string) (float64, error)     // O(1)
//	Edges() []Edge                          // O(V²), creation order
//
//	// Counts
//	NodeCount() int                         // O(1)
//	EdgeCount() int                         // O(1), always V·(V−1)/2
//	Stats() GraphStats                      // O(E)
//	Clone() *Graph                          // O(V + E), deep copy
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrDuplicateNode  – node ID already registered
//	ErrNodeNotFound   – missing node
//	ErrBadWeight      – distance model returned an error, a negative, or a non-finite value
//	ErrStaleInsertion – Commit after the graph changed, or a second Commit
//	geo.ErrInvalidCoordinate – latitude/longitude outside the valid ranges
//
// Complexity: O(V) time per insertion and O(V²) space overall. The graph is meant
// for tens of named locations, not for more than a few hundred.
package core
