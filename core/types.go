// Package core defines the central Graph, Node, Edge and Neighbor types,
// and the sentinel errors returned by graph operations.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrDuplicateNode - node ID already exists.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrBadWeight     - the distance model produced an unusable weight.
//	ErrStaleInsertion - a staged insertion no longer matches the graph.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/branchnet/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates an insertion of a node ID that already exists.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates the distance model failed or returned a negative or non-finite weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrStaleInsertion indicates Commit of an insertion staged against an older graph.
	ErrStaleInsertion = errors.New("core: stale insertion")
)

// DistanceFunc converts two coordinates into a non-negative edge weight.
type DistanceFunc func(a, b geo.Coordinate) (float64, error)

// Node is an inserted, immutable location.
type Node struct {
	// ID is the unique node name.
	ID string

	// Coord is the geographic position.
	Coord geo.Coordinate

	// Seq is the 0-based insertion sequence number.
	Seq int
}

// Edge is the single undirected record joining two nodes.
// From is always the endpoint that was inserted first.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the earlier-inserted endpoint.
	From string

	// To is the later-inserted endpoint.
	To string

	// Weight is the distance between the endpoints.
	Weight float64
}

// Neighbor is one entry of a node's neighbourhood view.
type Neighbor struct {
	// ID is the adjacent node.
	ID string

	// EdgeID is the shared undirected edge record.
	EdgeID string

	// Weight is the edge weight.
	Weight float64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithDistance replaces the default haversine distance model.
func WithDistance(fn DistanceFunc) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.distance = fn
		}
	}
}

// WithCapacity pre-sizes internal storage for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the insert-only complete graph over located nodes.
//
// mu guards every field below it. nextEdgeID is only advanced under mu.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	distance DistanceFunc
	capacity int

	// Storage
	nextEdgeID uint64
	nodes      map[string]*Node
	order      []string              // node IDs in insertion order
	adjacency  map[string][]Neighbor // neighbours in insertion order
	edges      []*Edge               // edge records in creation order

	// edgeIndex[a][b] and edgeIndex[b][a] point at the same *Edge.
	edgeIndex map[string]map[string]*Edge
}

// NewGraph creates an empty Graph. The default distance model is geo.Distance.
// Complexity: O(1) (O(capacity) with WithCapacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{distance: geo.Distance}
	for _, opt := range opts {
		opt(g)
	}

	g.nodes = make(map[string]*Node, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.adjacency = make(map[string][]Neighbor, g.capacity)
	g.edgeIndex = make(map[string]map[string]*Edge, g.capacity)
	if g.capacity > 1 {
		g.edges = make([]*Edge, 0, g.capacity*(g.capacity-1)/2)
	}

	return g
}
