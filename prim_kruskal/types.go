// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/branchnet/core"
)

// ErrInvalidGraph indicates that the graph handle is nil or the method name is unknown.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// ErrEmptyRoot indicates that no start node was specified for Prim.
// Prim cannot run without a valid root string.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root node")

// ErrDisconnected indicates that a spanning tree covering all nodes cannot be formed.
// On a complete graph this only happens for |V| == 0.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting node to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   string - start node ID for Prim; ignored when Method == MethodKruskal.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm (ignored by Kruskal).
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph, opts.Root).
//	– Otherwise:                        returns ErrInvalidGraph.
//
// Returns:
//
//	[]core.Edge - slice of edges in MST (empty if graph has single node).
//	float64     - total weight of MST (zero if no edges).
//	error       - non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
