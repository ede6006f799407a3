// File: methods_edges.go
// Role: Edge & neighbourhood queries: Neighbors/Weight/Edges, plus nextEdgeID().
// Determinism:
//   - Neighbors() lists neighbours in the order they were inserted.
//   - Edges() lists edge records in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Read queries under the read lock; nextEdgeID() only under the write lock.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// Neighbors returns the neighbourhood of id: one entry per other inserted node,
// ordered by that node's insertion sequence.
//
// Behavior highlights:
//   - For a node with Seq == k, the first k entries are exactly the nodes inserted
//     before it, in insertion order. Later entries are nodes inserted after it.
//   - The returned slice is a copy; callers may retain or modify it.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeNotFound if the node does not exist.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	src := g.adjacency[id]
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out, nil
}

// Weight returns the weight of the edge between a and b.
//
// Errors:
//   - ErrEmptyNodeID if either ID is empty.
//   - ErrNodeNotFound if either node does not exist, or a == b (there are no self-loops).
//
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[a]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	e, ok := g.edgeIndex[a][b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}

	return e.Weight, nil
}

// HasEdge reports whether an edge joins a and b. True for every pair of distinct
// inserted nodes.
//
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edgeIndex[a][b]

	return ok
}

// Edges returns copies of all edge records in creation order.
// An edge (From, To) is created when To is inserted, so the order is grouped by
// the later endpoint and, within a group, by the earlier endpoint's Seq.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// nextEdgeID returns the next textual edge ID. Caller must hold the write lock.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
