package lcgraph_test

import (
	"fmt"

	"github.com/ustiugov/Galois/lcgraph"
	"github.com/ustiugov/Galois/nhood"
	"github.com/ustiugov/Galois/structural"
)

// ExampleLoadCSR loads a small weighted graph, sorts one row by weight and
// relaxes its out-edges the way a shortest-path operator would.
func ExampleLoadCSR() {
	b, _ := structural.NewBuilder[int64](4)
	_ = b.AddEdge(0, 1, 5)
	_ = b.AddEdge(0, 2, 1)
	_ = b.AddEdge(1, 2, 3)
	_ = b.AddEdge(2, 3, 2)
	sg, _ := b.Build()

	g, _ := lcgraph.LoadCSR[int64, int64](sg)
	c := nhood.NewCtx(0)

	// Cheapest edge first.
	g.SortEdgesByData(c, 0, func(a, b int64) bool { return a < b }, lcgraph.CheckRace)

	edges, _ := g.EdgesOf(c, 0, lcgraph.CheckRaceAndNeighbors)
	for e := range edges {
		dst := g.EdgeDst(e)
		d, _ := g.GetData(c, dst, lcgraph.WriteIntent)
		*d = *g.EdgeData(e, lcgraph.None)
		fmt.Printf("0->%d weight=%d\n", dst, *d)
	}
	c.ReleaseAll()

	// Output:
	// 0->2 weight=1
	// 0->1 weight=5
}

// ExampleLoadDistributed shows worker-local iteration over a partitioned
// layout: each worker walks only the nodes resident in its own chunk.
func ExampleLoadDistributed() {
	sg := structural.Cycle[int64](6, structural.ConstantWeight[int64](1))
	g, _ := lcgraph.LoadDistributed[int, int64](sg, lcgraph.WithWorkers(2))

	for w := 0; w < 2; w++ {
		count := 0
		for range g.LocalNodes(w) {
			count++
		}
		fmt.Printf("worker %d owns %d nodes\n", w, count)
	}

	// Output:
	// worker 0 owns 3 nodes
	// worker 1 owns 3 nodes
}

// ExampleConflictPolicy contrasts the policies: None never blocks, CheckRace
// detects the rival claim.
func ExampleConflictPolicy() {
	sg := structural.Star[int64](3, structural.ConstantWeight[int64](1))
	g, _ := lcgraph.LoadCSR[int, int64](sg)

	a, b := nhood.NewCtx(0), nhood.NewCtx(1)
	_, _ = g.GetData(a, 0, lcgraph.CheckRace)

	_, okNone := g.GetData(b, 0, lcgraph.None)
	_, okRace := g.GetData(b, 0, lcgraph.CheckRace)
	fmt.Println("None:", okNone)
	fmt.Println("CheckRace:", okRace)

	// Output:
	// None: true
	// CheckRace: false
}
