// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root node using a min‐heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/branchnet/core"
)

// Prim computes the Minimum Spanning Tree (MST) of the graph
// by growing outwards from a specified root node using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph     : if graph is nil.
//   - ErrEmptyRoot        : if the provided root string is empty.
//   - core.ErrNodeNotFound: if the root node does not exist in the graph.
//   - ErrDisconnected     : if |V| == 0 (empty graph) or the tree cannot reach every node.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Retrieve node IDs; if len(nodes)==0 → ErrDisconnected.
//     If len(nodes)==1, check that root matches the single node → return trivial empty MST.
//  3. Validate root: root != "", graph.HasNode(root).
//  4. Initialize:
//     - visited map to track which nodes are already in MST.
//     - pq (min‐heap) of candidate edges ordered by (weight, push order).
//     - mark root as visited and push all edges adjacent to root into pq.
//  5. While pq not empty and MST has < |V|-1 edges:
//     a. Pop the smallest‐weight candidate (u→v) from pq.
//     b. If v is already visited, skip (this edge would form a cycle).
//     c. Otherwise, add the edge record to MST, mark v as visited, accumulate weight.
//     d. Push all edges from v to as‐yet‐unvisited neighbours into pq.
//  6. If MST size < |V|-1 after loop → ErrDisconnected.
//  7. Return MST edges (as stored edge records) and total weight.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
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
		if nodes[0] != root {
			return nil, 0, core.ErrNodeNotFound
		}

		return []core.Edge{}, 0, nil
	}

	// 3. Validate root.
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasNode(root) {
		return nil, 0, core.ErrNodeNotFound
	}

	// Edge records by ID, so the result keeps the stored From/To orientation.
	all := graph.Edges()
	byID := make(map[string]core.Edge, len(all))
	for _, e := range all {
		byID[e.ID] = e
	}

	// 4. Initialize visited set and MST container.
	n := len(nodes)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)
	var pushed uint64

	push := func(from string) error {
		nbs, err := graph.Neighbors(from)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			if !visited[nb.ID] {
				pushed++
				heap.Push(pq, &candidate{to: nb.ID, edgeID: nb.EdgeID, weight: nb.Weight, order: pushed})
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	// 5. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(*candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		mst = append(mst, byID[c.edgeID])
		totalWeight += c.weight

		if err := push(c.to); err != nil {
			return nil, 0, err
		}
	}

	// 6. Not spanning.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// candidate is a heap entry: an edge leading out of the tree towards node "to".
type candidate struct {
	to     string
	edgeID string
	weight float64
	order  uint64 // push sequence; breaks weight ties deterministically
}

// edgePQ implements heap.Interface for a min‐heap of *candidate, ordered by (weight, order).
type edgePQ []*candidate

// Len returns the number of candidates in the priority queue.
// Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by ascending weight, then by push order.
// Complexity: O(1).
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].order < pq[j].order
}

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *candidate to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return c
}
