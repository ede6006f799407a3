package mst_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/branchnet/core"
	"github.com/katalvlaran/branchnet/geo"
	"github.com/katalvlaran/branchnet/mst"
)

// ExampleBuilder_Extend grows a tree over three points on a line.
func ExampleBuilder_Extend() {
	g := core.NewGraph(core.WithDistance(func(a, b geo.Coordinate) (float64, error) {
		return math.Abs(a.Lon - b.Lon), nil
	}))
	b := mst.NewBuilder(g)

	_ = g.InsertNode("A", geo.Coordinate{Lon: 0})
	_, err := b.Extend("A")
	fmt.Println(err)

	for _, n := range []struct {
		id  string
		lon float64
	}{{"B", 1}, {"C", 3}} {
		_ = g.InsertNode(n.id, geo.Coordinate{Lon: n.lon})
		e, _ := b.Extend(n.id)
		fmt.Printf("%s joins via %s (%.0f)\n", e.To, e.From, e.Weight)
	}
	fmt.Println("total:", b.TotalWeight())
	// Output:
	// mst: no prior nodes to connect: "A" is the first node
	// B joins via A (1)
	// C joins via B (2)
	// total: 3
}

// ExampleBuilder_ExtendStep shows a new node displacing a longer tree edge.
func ExampleBuilder_ExtendStep() {
	g := core.NewGraph(core.WithDistance(func(a, b geo.Coordinate) (float64, error) {
		return math.Abs(a.Lon - b.Lon), nil
	}))
	b := mst.NewBuilder(g)
	_ = g.InsertNode("A", geo.Coordinate{Lon: 0})
	_ = g.InsertNode("B", geo.Coordinate{Lon: 10})
	_, _ = b.Extend("B")
	_ = g.InsertNode("C", geo.Coordinate{Lon: 5})

	step, _ := b.ExtendStep("C")
	fmt.Println("attach:", step.Edge.From, step.Edge.To)
	for _, e := range step.Removed {
		fmt.Println("removed:", e.From, e.To)
	}
	for _, e := range step.Added {
		fmt.Println("added:", e.From, e.To)
	}
	fmt.Println("total:", b.TotalWeight(), "verify:", mst.Verify(b, g))
	// Output:
	// attach: A C
	// removed: A B
	// added: B C
	// total: 10 verify: <nil>
}
