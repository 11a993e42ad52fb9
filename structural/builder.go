// File: builder.go
// Role: Memory (CSR-backed Graph implementation), Builder, and Transpose.
// Determinism:
//   - Per-source neighbor order is AddEdge insertion order.
//   - Transpose preserves per-target edge order by ascending source.
// Concurrency:
//   - Builder is single-goroutine; Memory is immutable after Build.

package structural

// Memory is a compact in-memory structural graph.
//
// Storage is compressed-row: offsets[n] is the end of node n's neighbor
// run in dsts/vals (rows are contiguous and in node order). Memory is
// immutable once constructed and therefore safe for concurrent readers.
type Memory[E any] struct {
	offsets []int64 // end offset per node; len == numNodes
	dsts    []NodeID
	vals    []E
}

// compile-time conformance
var _ Graph[int] = (*Memory[int])(nil)

// rowBounds returns the [begin, end) edge-slot range of node n.
func (m *Memory[E]) rowBounds(n NodeID) (int64, int64) {
	if n == 0 {
		return 0, m.offsets[0]
	}

	return m.offsets[n-1], m.offsets[n]
}

// Size returns the number of nodes. Complexity: O(1).
func (m *Memory[E]) Size() int { return len(m.offsets) }

// SizeEdges returns the number of directed edges. Complexity: O(1).
func (m *Memory[E]) SizeEdges() int { return len(m.dsts) }

// Degree returns the out-degree of n. Complexity: O(1).
func (m *Memory[E]) Degree(n NodeID) int {
	b, e := m.rowBounds(n)

	return int(e - b)
}

// Neighbor returns the destination of the i-th outgoing edge of n.
// Complexity: O(1).
func (m *Memory[E]) Neighbor(n NodeID, i int) NodeID {
	b, _ := m.rowBounds(n)

	return m.dsts[b+int64(i)]
}

// EdgeValue returns the payload of the i-th outgoing edge of n.
// Complexity: O(1).
func (m *Memory[E]) EdgeValue(n NodeID, i int) E {
	b, _ := m.rowBounds(n)

	return m.vals[b+int64(i)]
}

// Builder constructs a Memory graph edge by edge.
//
// The node set is fixed up front; AddEdge validates both endpoints
// eagerly so a malformed input fails at the call that introduced it,
// never at Build.
type Builder[E any] struct {
	size int
	srcs [][]NodeID // per-source destination lists, insertion order
	data [][]E      // paired payloads
}

// NewBuilder returns a Builder over a fixed node set of n nodes.
// Returns ErrNegativeSize if n < 0.
func NewBuilder[E any](n int) (*Builder[E], error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &Builder[E]{
		size: n,
		srcs: make([][]NodeID, n),
		data: make([][]E, n),
	}, nil
}

// AddEdge appends a directed edge src→dst carrying val.
// Returns ErrNodeRange if either endpoint is outside [0, n).
// Complexity: amortized O(1).
func (b *Builder[E]) AddEdge(src, dst NodeID, val E) error {
	if int(src) >= b.size || int(dst) >= b.size {
		return ErrNodeRange
	}
	b.srcs[src] = append(b.srcs[src], dst)
	b.data[src] = append(b.data[src], val)

	return nil
}

// Build lays the accumulated edges out in compressed-row form and returns
// the finished graph. The Builder may be reused afterwards; the returned
// Memory holds independent storage. Complexity: O(V + E).
func (b *Builder[E]) Build() (*Memory[E], error) {
	total := 0
	for _, row := range b.srcs {
		total += len(row)
	}

	m := &Memory[E]{
		offsets: make([]int64, b.size),
		dsts:    make([]NodeID, 0, total),
		vals:    make([]E, 0, total),
	}
	for n := 0; n < b.size; n++ {
		m.dsts = append(m.dsts, b.srcs[n]...)
		m.vals = append(m.vals, b.data[n]...)
		m.offsets[n] = int64(len(m.dsts))
	}

	return m, nil
}

// Transpose materializes the reverse graph of g: for every edge u→v with
// payload w, the result holds v→u with payload w. Per-target edge order is
// by ascending source, then original position. Complexity: O(V + E).
func Transpose[E any](g Graph[E]) *Memory[E] {
	size := g.Size()

	// counting pass: in-degree per node becomes the row length
	counts := make([]int64, size)
	var u NodeID
	for u = 0; int(u) < size; u++ {
		for i, d := 0, g.Degree(u); i < d; i++ {
			counts[g.Neighbor(u, i)]++
		}
	}

	m := &Memory[E]{
		offsets: make([]int64, size),
		dsts:    make([]NodeID, g.SizeEdges()),
		vals:    make([]E, g.SizeEdges()),
	}
	var running int64
	cursors := make([]int64, size) // next free slot per row
	for n := 0; n < size; n++ {
		cursors[n] = running
		running += counts[n]
		m.offsets[n] = running
	}

	// placement pass: walking sources in ascending order keeps rows sorted by source
	for u = 0; int(u) < size; u++ {
		for i, d := 0, g.Degree(u); i < d; i++ {
			v := g.Neighbor(u, i)
			slot := cursors[v]
			cursors[v]++
			m.dsts[slot] = u
			m.vals[slot] = g.EdgeValue(u, i)
		}
	}

	return m
}
