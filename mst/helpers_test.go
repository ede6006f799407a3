package mst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/branchnet/core"
	"github.com/katalvlaran/branchnet/geo"
	"github.com/katalvlaran/branchnet/mst"
)

// planarDistance treats (Lat, Lon) as plane coordinates.
func planarDistance(a, b geo.Coordinate) (float64, error) {
	return math.Hypot(a.Lat-b.Lat, a.Lon-b.Lon), nil
}

// at places a node on the plane.
func at(x, y float64) geo.Coordinate { return geo.Coordinate{Lat: x, Lon: y} }

// placed is one fixture insertion.
type placed struct {
	id string
	c  geo.Coordinate
}

// growPlanar inserts every node into a planar graph and extends the builder after each one.
func growPlanar(t *testing.T, nodes []placed, opts ...mst.Option) (*core.Graph, *mst.Builder, []mst.Step) {
	t.Helper()
	g := core.NewGraph(core.WithDistance(planarDistance))
	b := mst.NewBuilder(g, opts...)
	steps := make([]mst.Step, 0, len(nodes))
	for i, n := range nodes {
		require.NoError(t, g.InsertNode(n.id, n.c))
		if i == 0 {
			continue
		}
		step, err := b.ExtendStep(n.id)
		require.NoError(t, err, "extend %s", n.id)
		steps = append(steps, step)
	}

	return g, b, steps
}

// builderState is everything observable about a builder.
type builderState struct {
	Edges   []mst.Edge
	Total   float64
	Degrees map[string]int
}

func captureBuilder(b *mst.Builder, ids ...string) builderState {
	st := builderState{Edges: b.Edges(), Total: b.TotalWeight(), Degrees: make(map[string]int)}
	for _, id := range ids {
		st.Degrees[id] = b.Attachments(id)
	}

	return st
}

func pairs(edges []mst.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.From + "-" + e.To
	}

	return out
}
