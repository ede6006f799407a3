// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for branchnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep concurrency tests free of *testing.T usage inside goroutines.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/branchnet/core"
	"github.com/katalvlaran/branchnet/geo"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentInserts = 64
	NReaders           = 32
)

// Sri Lanka district centres used as realistic fixtures.
var (
	Colombo = geo.Coordinate{Lat: 6.9271, Lon: 79.9612}
	Kandy   = geo.Coordinate{Lat: 7.2906, Lon: 80.6337}
	Galle   = geo.Coordinate{Lat: 6.0328, Lon: 80.2200}
	Jaffna  = geo.Coordinate{Lat: 9.6615, Lon: 80.0376}
)

// flatDistance treats longitude as a planar axis and ignores latitude.
// It reproduces the textbook A(0,0), B(0,1), C(0,3) scenario with weights 1, 2, 3.
func flatDistance(a, b geo.Coordinate) (float64, error) {
	return math.Abs(a.Lon - b.Lon), nil
}

// NewFlatGraph returns a graph using the planar fixture distance.
func NewFlatGraph() *core.Graph {
	return core.NewGraph(core.WithDistance(flatDistance))
}

// MustInsert inserts (id, c) and fails the test on error.
func MustInsert(t *testing.T, g *core.Graph, id string, c geo.Coordinate) {
	t.Helper()
	require.NoError(t, g.InsertNode(id, c), "InsertNode(%s)", id)
}

// graphState captures everything observable about a graph for no-mutation checks.
type graphState struct {
	Nodes []core.Node
	Edges []core.Edge
	Adj   map[string][]core.Neighbor
}

// captureState snapshots the observable state of g.
func captureState(t *testing.T, g *core.Graph) graphState {
	t.Helper()
	st := graphState{
		Nodes: g.NodeRecords(),
		Edges: g.Edges(),
		Adj:   make(map[string][]core.Neighbor),
	}
	for _, id := range g.Nodes() {
		nbs, err := g.Neighbors(id)
		require.NoError(t, err)
		st.Adj[id] = nbs
	}

	return st
}
