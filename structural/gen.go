// File: gen.go
// Role: Deterministic structural-graph generators for tests and benchmarks.
//
// Contract:
//   - Every generator emits edges in a stable, documented order.
//   - Payloads come from a WeightFunc so tests can pin exact values.
//   - Generators never fail for n within their documented domain; they
//     panic on domain violations (programmer error, mirrors builder usage).

package structural

import "fmt"

// WeightFunc produces the payload of edge src→dst. It must be pure:
// generators may call it in any order and expect identical results.
type WeightFunc[E any] func(src, dst NodeID) E

// ConstantWeight returns a WeightFunc yielding the same value for every edge.
func ConstantWeight[E any](v E) WeightFunc[E] {
	return func(_, _ NodeID) E { return v }
}

const minCycleNodes = 3

// Cycle builds the directed ring C_n: edges i→(i+1) mod n, emitted in
// ascending i. Panics if n < 3. Complexity: O(n).
func Cycle[E any](n int, w WeightFunc[E]) *Memory[E] {
	if n < minCycleNodes {
		panic(fmt.Sprintf("structural.Cycle: n=%d < min=%d", n, minCycleNodes))
	}
	b, _ := NewBuilder[E](n)
	for i := 0; i < n; i++ {
		u, v := NodeID(i), NodeID((i+1)%n)
		_ = b.AddEdge(u, v, w(u, v))
	}
	m, _ := b.Build()

	return m
}

// Star builds the directed star S_n: edges 0→i for i=1..n-1, emitted in
// ascending i. Panics if n < 2. Complexity: O(n).
func Star[E any](n int, w WeightFunc[E]) *Memory[E] {
	if n < 2 {
		panic(fmt.Sprintf("structural.Star: n=%d < min=2", n))
	}
	b, _ := NewBuilder[E](n)
	for i := 1; i < n; i++ {
		_ = b.AddEdge(0, NodeID(i), w(0, NodeID(i)))
	}
	m, _ := b.Build()

	return m
}

// Complete builds the directed complete graph K_n without self-loops:
// edges u→v for all u≠v, emitted by ascending u then ascending v.
// Panics if n < 2. Complexity: O(n²).
func Complete[E any](n int, w WeightFunc[E]) *Memory[E] {
	if n < 2 {
		panic(fmt.Sprintf("structural.Complete: n=%d < min=2", n))
	}
	b, _ := NewBuilder[E](n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			_ = b.AddEdge(NodeID(u), NodeID(v), w(NodeID(u), NodeID(v)))
		}
	}
	m, _ := b.Build()

	return m
}
