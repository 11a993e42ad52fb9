package lcgraph_test

import (
	"testing"

	"github.com/ustiugov/Galois/lcgraph"
	"github.com/ustiugov/Galois/nhood"
	"github.com/ustiugov/Galois/structural"
)

const benchNodes = 1 << 10

func benchGraph() *structural.Memory[int64] {
	return structural.Cycle[int64](benchNodes, func(src, _ structural.NodeID) int64 {
		return int64(src)
	})
}

// BenchmarkCSRTraversal measures an unguarded full sweep: every node, every
// out-edge, payload read.
func BenchmarkCSRTraversal(b *testing.B) {
	g, err := lcgraph.LoadCSR[int64, int64](benchGraph())
	if err != nil {
		b.Fatal(err)
	}
	c := nhood.NewCtx(0)

	b.ResetTimer()
	var sum int64
	for i := 0; i < b.N; i++ {
		for n := range g.Nodes() {
			edges, _ := g.EdgesOf(c, n, lcgraph.None)
			for e := range edges {
				sum += *g.EdgeData(e, lcgraph.None)
			}
		}
	}
	_ = sum
}

// BenchmarkLinearTraversal is the pointer-chasing counterpart of the CSR
// sweep over the same topology.
func BenchmarkLinearTraversal(b *testing.B) {
	g, err := lcgraph.LoadLinear[int64, int64](benchGraph())
	if err != nil {
		b.Fatal(err)
	}
	c := nhood.NewCtx(0)

	b.ResetTimer()
	var sum int64
	for i := 0; i < b.N; i++ {
		for n := range g.Nodes() {
			edges, _ := g.EdgesOf(c, n, lcgraph.None)
			for e := range edges {
				sum += *g.EdgeData(e, lcgraph.None)
			}
		}
	}
	_ = sum
}

// BenchmarkClaimedTraversal adds per-node claim/release to the sweep,
// pricing the conflict-control fast path.
func BenchmarkClaimedTraversal(b *testing.B) {
	g, err := lcgraph.LoadCSR[int64, int64](benchGraph())
	if err != nil {
		b.Fatal(err)
	}
	c := nhood.NewCtx(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for n := range g.Nodes() {
			if _, ok := g.GetData(c, n, lcgraph.CheckRace); !ok {
				b.Fatal("uncontended claim failed")
			}
		}
		c.ReleaseAll()
	}
}
