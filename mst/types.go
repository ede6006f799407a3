package mst

import (
	"errors"
	"sync"

	"github.com/katalvlaran/branchnet/core"
)

// Sentinel errors for tree maintenance and verification.
var (
	// ErrNilGraph indicates a Builder without a graph.
	ErrNilGraph = errors.New("mst: nil graph")

	// ErrNoPriorNodes indicates Extend on the first inserted node; there is nothing to connect.
	ErrNoPriorNodes = errors.New("mst: no prior nodes to connect")

	// ErrAlreadyAttached indicates Extend on a node the tree already spans.
	ErrAlreadyAttached = errors.New("mst: node already attached")

	// ErrOutOfOrder indicates Extend on a node while an earlier node is still unattached.
	ErrOutOfOrder = errors.New("mst: extension out of insertion order")

	// ErrNotSpanning indicates the tree is not a spanning tree of the graph.
	ErrNotSpanning = errors.New("mst: tree does not span the graph")

	// ErrNotOptimal indicates the tree weight exceeds the reference MST weight.
	ErrNotOptimal = errors.New("mst: tree is not minimal")
)

// Edge is a tree edge. From is the earlier-inserted endpoint (the existing node
// at attachment time) and To the later one.
type Edge = core.Edge

// Step describes the outcome of one Extend call.
type Step struct {
	// Edge is the attachment edge of the new node.
	Edge Edge

	// Added lists further star edges that entered the tree, in endpoint insertion order.
	Added []Edge

	// Removed lists previous tree edges displaced by Added, in their former tree order.
	Removed []Edge
}

// Rewired reports whether the step replaced any previous tree edge.
func (s Step) Rewired() bool { return len(s.Removed) > 0 }

// Tree is a consistent snapshot of the builder state.
type Tree struct {
	// Nodes lists the spanned nodes in insertion order.
	Nodes []string

	// Edges lists the tree edges in tree order.
	Edges []Edge

	// TotalWeight is the sum of edge weights.
	TotalWeight float64
}

// Option configures a Builder.
type Option func(b *Builder)

// WithAppendOnly keeps every accepted edge forever: one edge per insertion, no exchange step.
func WithAppendOnly() Option {
	return func(b *Builder) {
		b.appendOnly = true
	}
}

// Builder grows a spanning tree over g as nodes are inserted.
//
// mu guards every field below it. The graph has its own lock.
type Builder struct {
	g          *core.Graph
	appendOnly bool

	mu     sync.RWMutex
	edges  []Edge
	total  float64
	degree map[string]int
}

// NewBuilder returns an empty Builder bound to g.
func NewBuilder(g *core.Graph, opts ...Option) *Builder {
	b := &Builder{g: g, degree: make(map[string]int)}
	for _, opt := range opts {
		opt(b)
	}

	return b
}
