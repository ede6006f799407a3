// File: builder.go
// Role: Incremental tree maintenance: Extend and read-side snapshots.
// Concurrency:
//   - Extend takes the builder write lock for validation, computation and commit.
//   - Readers get copies under the read lock.

package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/branchnet/core"
)

// Extend attaches the node id to the tree and returns its attachment edge.
// See ExtendStep for the full outcome including exchanged edges.
func (b *Builder) Extend(id string) (Edge, error) {
	step, err := b.ExtendStep(id)
	if err != nil {
		return Edge{}, err
	}

	return step.Edge, nil
}

// ExtendStep attaches the node id to the tree.
//
// Implementation:
//   - Stage 1: Resolve the node in the graph (core.ErrEmptyNodeID, core.ErrNodeNotFound).
//   - Stage 2: Check the insertion-order contract: Seq 0 → ErrNoPriorNodes,
//     already spanned → ErrAlreadyAttached, an earlier node unattached → ErrOutOfOrder.
//   - Stage 3: The star is the first Seq entries of the node's neighbour list,
//     i.e. exactly the nodes inserted before it. Pick the strict minimum; the first
//     minimum in insertion order wins ties.
//   - Stage 4: Unless append-only, run the exchange pass over tree ∪ star.
//   - Stage 5: Commit.
//
// Errors:
//   - ErrNilGraph, ErrNoPriorNodes, ErrAlreadyAttached, ErrOutOfOrder,
//     core.ErrEmptyNodeID, core.ErrNodeNotFound.
//
// Complexity: O(k log k) for the k-th node; O(k) when append-only.
func (b *Builder) ExtendStep(id string) (Step, error) {
	if b.g == nil {
		return Step{}, ErrNilGraph
	}
	n, err := b.g.Node(id)
	if err != nil {
		return Step{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if n.Seq == 0 {
		return Step{}, fmt.Errorf("%w: %q is the first node", ErrNoPriorNodes, id)
	}
	expected := len(b.edges) + 1
	if n.Seq < expected {
		return Step{}, fmt.Errorf("%w: %q", ErrAlreadyAttached, id)
	}
	if n.Seq > expected {
		return Step{}, fmt.Errorf("%w: %q has seq %d, next unattached seq is %d", ErrOutOfOrder, id, n.Seq, expected)
	}

	nbs, err := b.g.Neighbors(id)
	if err != nil {
		return Step{}, err
	}
	star := make([]Edge, n.Seq)
	best := 0
	for i := 0; i < n.Seq; i++ {
		star[i] = Edge{ID: nbs[i].EdgeID, From: nbs[i].ID, To: id, Weight: nbs[i].Weight}
		if star[i].Weight < star[best].Weight {
			best = i
		}
	}
	step := Step{Edge: star[best]}

	if b.appendOnly {
		b.commit(append(cloneEdges(b.edges), step.Edge), step)

		return step, nil
	}

	next := b.exchange(star, best, &step)
	b.commit(next, step)

	return step, nil
}

// exchange computes MST(tree ∪ star) and fills step.Added/Removed.
// Caller must hold the write lock. The tree is not modified.
func (b *Builder) exchange(star []Edge, best int, step *Step) []Edge {
	type cand struct {
		e    Edge
		star bool
		idx  int
	}
	cands := make([]cand, 0, len(b.edges)+len(star))
	for i, e := range b.edges {
		cands = append(cands, cand{e: e, idx: i})
	}
	for i, e := range star {
		cands = append(cands, cand{e: e, star: true, idx: i})
	}
	// Weight first; tree edges before star edges on equal weight; stable keeps index order.
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].e.Weight != cands[j].e.Weight {
			return cands[i].e.Weight < cands[j].e.Weight
		}

		return !cands[i].star && cands[j].star
	})

	ids := make([]string, 0, len(star)+1)
	for _, e := range star {
		ids = append(ids, e.From)
	}
	ids = append(ids, step.Edge.To)
	forest := newDSU(ids)

	keepTree := make([]bool, len(b.edges))
	keepStar := make([]bool, len(star))
	for _, c := range cands {
		if !forest.union(c.e.From, c.e.To) {
			continue
		}
		if c.star {
			keepStar[c.idx] = true
		} else {
			keepTree[c.idx] = true
		}
	}

	next := make([]Edge, 0, len(b.edges)+1)
	for i, e := range b.edges {
		if keepTree[i] {
			next = append(next, e)
		} else {
			step.Removed = append(step.Removed, e)
		}
	}
	next = append(next, star[best])
	for i, e := range star {
		if keepStar[i] && i != best {
			next = append(next, e)
			step.Added = append(step.Added, e)
		}
	}

	return next
}

// commit installs next as the tree and updates degrees and the total.
// Caller must hold the write lock.
func (b *Builder) commit(next []Edge, step Step) {
	for _, e := range step.Removed {
		b.degree[e.From]--
		b.degree[e.To]--
	}
	b.degree[step.Edge.From]++
	b.degree[step.Edge.To]++
	for _, e := range step.Added {
		b.degree[e.From]++
		b.degree[e.To]++
	}

	var total float64
	for _, e := range next {
		total += e.Weight
	}
	b.edges = next
	b.total = total
}

// Edges returns a copy of the tree edges in tree order.
func (b *Builder) Edges() []Edge {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return cloneEdges(b.edges)
}

// Len returns the number of tree edges.
func (b *Builder) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.edges)
}

// TotalWeight returns the sum of tree edge weights.
func (b *Builder) TotalWeight() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.total
}

// Attachments returns the tree degree of id (0 for unknown or unattached nodes).
func (b *Builder) Attachments(id string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.degree[id]
}

// Tree returns a consistent snapshot of the spanned nodes and tree edges.
//
// Complexity: O(V).
func (b *Builder) Tree() Tree {
	b.mu.RLock()
	defer b.mu.RUnlock()

	t := Tree{Edges: cloneEdges(b.edges), TotalWeight: b.total}
	if b.g == nil {
		return t
	}
	all := b.g.Nodes()
	spanned := len(b.edges) + 1
	if spanned > len(all) {
		spanned = len(all)
	}
	t.Nodes = all[:spanned]

	return t
}

// Rebuild returns a new Builder over g that has extended every node in insertion
// order. The graph is deterministic, so the result equals the incrementally built tree.
//
// Errors: ErrNilGraph, or the first Extend failure.
func Rebuild(g *core.Graph, opts ...Option) (*Builder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	b := NewBuilder(g, opts...)
	ids := g.Nodes()
	for i := 1; i < len(ids); i++ {
		if _, err := b.Extend(ids[i]); err != nil {
			return nil, fmt.Errorf("mst: rebuild at %q: %w", ids[i], err)
		}
	}

	return b, nil
}

func cloneEdges(src []Edge) []Edge {
	out := make([]Edge, len(src))
	copy(out, src)

	return out
}
