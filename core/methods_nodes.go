// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs in insertion order.
//
// Concurrency:
//   - InsertNode holds the write lock for the whole stage+commit sequence, so no reader
//     ever observes a node without all of its edges.
//   - Prepare stages under the read lock and Commit re-checks the node count under the
//     write lock. Callers that interleave other writers get ErrStaleInsertion.

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/branchnet/geo"
)

// InsertNode registers a new node and derives its edge to every existing node.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID) and the coordinate (geo.ErrInvalidCoordinate).
//   - Stage 2: Under the write lock, reject an existing ID (ErrDuplicateNode).
//   - Stage 3: Compute the weight to every registered node into a staging slice.
//     A distance error or a negative/NaN/Inf weight aborts with ErrBadWeight.
//   - Stage 4: Commit: register the node, create one edge record per existing node,
//     append the neighbour entry on both sides.
//
// Behavior highlights:
//   - Strong failure safety: nothing is stored unless every weight is valid.
//   - Each pair gets exactly one *Edge, shared by both neighbour views.
//
// Inputs:
//   - id: node identifier; must be non-empty and unused.
//   - c: node coordinate.
//
// Errors:
//   - ErrEmptyNodeID, ErrDuplicateNode, ErrBadWeight, geo.ErrInvalidCoordinate.
//
// Complexity:
//   - Time O(V), Space O(V) for the new edges.
func (g *Graph) InsertNode(id string, c geo.Coordinate) error {
	if err := validateInsert(id, c); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	weights, err := g.stage(id, c)
	if err != nil {
		return err
	}
	g.commit(id, c, weights)

	return nil
}

// Insertion is a staged InsertNode: weights are computed, nothing is stored yet.
// It lets a caller run a fallible side effect (e.g. a journal write) between
// computing and storing, so a failure on either side leaves the graph untouched.
type Insertion struct {
	g       *Graph
	id      string
	coord   geo.Coordinate
	weights []float64
	base    int // node count the weights were computed against
	done    bool
}

// ID returns the staged node ID.
func (ins *Insertion) ID() string { return ins.id }

// Seq returns the sequence number the node will receive on Commit.
func (ins *Insertion) Seq() int { return ins.base }

// Prepare validates and stages an insertion without modifying g.
//
// Errors:
//   - ErrEmptyNodeID, ErrDuplicateNode, ErrBadWeight, geo.ErrInvalidCoordinate.
//
// Complexity: O(V). Concurrency: read lock.
func (g *Graph) Prepare(id string, c geo.Coordinate) (*Insertion, error) {
	if err := validateInsert(id, c); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	weights, err := g.stage(id, c)
	if err != nil {
		return nil, err
	}

	return &Insertion{g: g, id: id, coord: c, weights: weights, base: len(g.order)}, nil
}

// Commit stores a staged insertion.
//
// Errors:
//   - ErrStaleInsertion if the graph changed since Prepare or Commit already ran.
//
// Complexity: O(V). Concurrency: write lock.
func (ins *Insertion) Commit() error {
	g := ins.g
	g.mu.Lock()
	defer g.mu.Unlock()

	if ins.done || len(g.order) != ins.base {
		return fmt.Errorf("%w: %q", ErrStaleInsertion, ins.id)
	}
	g.commit(ins.id, ins.coord, ins.weights)
	ins.done = true

	return nil
}

// validateInsert checks the lock-free preconditions of an insertion.
func validateInsert(id string, c geo.Coordinate) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	return geo.Validate(c)
}

// stage rejects duplicates and computes the weight to every registered node.
// Caller must hold the lock (read or write).
func (g *Graph) stage(id string, c geo.Coordinate) ([]float64, error) {
	if _, exists := g.nodes[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}

	weights := make([]float64, len(g.order))
	for i, other := range g.order {
		w, err := g.distance(g.nodes[other].Coord, c)
		if err != nil {
			return nil, fmt.Errorf("%w: %s-%s: %v", ErrBadWeight, other, id, err)
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: %s-%s: %v", ErrBadWeight, other, id, w)
		}
		weights[i] = w
	}

	return weights, nil
}

// commit registers the node and its edges. Caller must hold the write lock.
func (g *Graph) commit(id string, c geo.Coordinate, weights []float64) {
	g.nodes[id] = &Node{ID: id, Coord: c, Seq: len(g.order)}
	g.edgeIndex[id] = make(map[string]*Edge, len(g.order))
	own := make([]Neighbor, 0, len(g.order))

	for i, other := range g.order {
		e := &Edge{ID: nextEdgeID(g), From: other, To: id, Weight: weights[i]}
		g.edges = append(g.edges, e)

		g.edgeIndex[other][id] = e
		g.edgeIndex[id][other] = e

		g.adjacency[other] = append(g.adjacency[other], Neighbor{ID: id, EdgeID: e.ID, Weight: e.Weight})
		own = append(own, Neighbor{ID: other, EdgeID: e.ID, Weight: e.Weight})
	}
	g.adjacency[id] = own
	g.order = append(g.order, id)
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
//
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node record.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeNotFound if the node does not exist.
//
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return *n, nil
}

// Nodes returns all node IDs in insertion order. The slice is a fresh copy.
//
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeRecords returns copies of all node records in insertion order.
//
// Complexity: O(V).
func (g *Graph) NodeRecords() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.order))
	for i, id := range g.order {
		out[i] = *g.nodes[id]
	}

	return out
}
