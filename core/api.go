// File: api.go
// Role: Thin, deterministic public facade exposing counts and a stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of catalog sizes and the weight range.
type GraphStats struct {
	NodeCount int
	EdgeCount int

	// MinWeight and MaxWeight are zero when EdgeCount == 0.
	MinWeight float64
	MaxWeight float64
}

// NodeCount returns the number of inserted nodes.
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of undirected edge records, V·(V−1)/2.
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Stats produces a consistent snapshot of counts and the weight range.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan the edge catalog once for min/max weight.
//
// Complexity: O(E). Concurrency: read lock held for the whole scan.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{NodeCount: len(g.order), EdgeCount: len(g.edges)}
	for i, e := range g.edges {
		if i == 0 || e.Weight < stats.MinWeight {
			stats.MinWeight = e.Weight
		}
		if e.Weight > stats.MaxWeight {
			stats.MaxWeight = e.Weight
		}
	}

	return stats
}
