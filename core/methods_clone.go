// File: methods_clone.go
// Role: Deep copy of the graph catalog.
// Policy:
//   - The clone shares no mutable state with the source; edge pointers are re-created
//     so both neighbour views in the clone point at the clone's own records.

package core

// Clone returns an independent deep copy of g, including the edge ID counter and
// the distance model.
//
// Complexity: O(V + E). Concurrency: read lock on g for the whole copy.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		distance:   g.distance,
		capacity:   g.capacity,
		nextEdgeID: g.nextEdgeID,
		nodes:      make(map[string]*Node, len(g.nodes)),
		order:      make([]string, len(g.order)),
		adjacency:  make(map[string][]Neighbor, len(g.adjacency)),
		edges:      make([]*Edge, len(g.edges)),
		edgeIndex:  make(map[string]map[string]*Edge, len(g.edgeIndex)),
	}
	copy(c.order, g.order)

	for id, n := range g.nodes {
		cp := *n
		c.nodes[id] = &cp
		c.edgeIndex[id] = make(map[string]*Edge, len(g.edgeIndex[id]))
	}
	for id, nbs := range g.adjacency {
		cp := make([]Neighbor, len(nbs))
		copy(cp, nbs)
		c.adjacency[id] = cp
	}
	for i, e := range g.edges {
		cp := *e
		c.edges[i] = &cp
		c.edgeIndex[cp.From][cp.To] = &cp
		c.edgeIndex[cp.To][cp.From] = &cp
	}

	return c
}
