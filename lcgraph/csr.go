// File: csr.go
// Role: CSR, the flat compressed-row layout. Node identity is a dense
//       NodeID; edge handles are dense EdgeID slots.
// Concurrency:
//   - Topology arrays are immutable after LoadCSR; payload access is
//     conflict-checked per policy through the neighborhood manager.

package lcgraph

import (
	"iter"
	"sort"

	"github.com/ustiugov/Galois/nhood"
	"github.com/ustiugov/Galois/structural"
)

// EdgeID is a CSR edge handle: the edge's slot in the destination and
// payload arrays. Valid for the lifetime of the graph.
type EdgeID int64

// csrNode colocates the node payload with its inline ownership slot.
type csrNode[N any] struct {
	lock nhood.Lockable
	data N
}

// CSR is the flat compressed-row layout: three parallel dense edge arrays
// (end offsets per node, destination per edge, payload per edge) plus a
// dense node array.
type CSR[N, E any] struct {
	cfg      config
	nodes    []csrNode[N]
	offsets  []int64 // end offset per node; rawBegin(0) == 0
	dsts     []NodeID
	edgeData []E
}

var _ Graph[NodeID, EdgeID, int8, int16] = (*CSR[int8, int16])(nil)

// LoadCSR lays a structural graph out in flat compressed-row form. Node
// payloads are default-constructed; edge payloads are copied only when E
// is non-trivial. Complexity: O(V + E).
func LoadCSR[N, E any](sg structural.Graph[E], opts ...Option) (*CSR[N, E], error) {
	if sg == nil {
		return nil, ErrNilStructural
	}
	cfg := newConfig(opts)

	numNodes, numEdges := sg.Size(), sg.SizeEdges()
	g := &CSR[N, E]{
		cfg:      cfg,
		nodes:    make([]csrNode[N], numNodes),
		offsets:  make([]int64, numNodes),
		dsts:     make([]NodeID, numEdges),
		edgeData: make([]E, numEdges),
	}

	copyVals := hasEdgeValues[E]()
	var pos int64
	for n := 0; n < numNodes; n++ {
		id := NodeID(n)
		for i, d := 0, sg.Degree(id); i < d; i++ {
			g.dsts[pos] = sg.Neighbor(id, i)
			if copyVals {
				g.edgeData[pos] = sg.EdgeValue(id, i)
			}
			pos++
		}
		g.offsets[n] = pos
	}

	cfg.log.Debug().
		Str("layout", layoutCSR).
		Int("nodes", numNodes).
		Int("edges", numEdges).
		Msg("local computation graph loaded")
	loadsTotal.WithLabelValues(layoutCSR).Inc()

	return g, nil
}

// rawBegin returns the first edge slot of n.
func (g *CSR[N, E]) rawBegin(n NodeID) int64 {
	if n == 0 {
		return 0
	}

	return g.offsets[n-1]
}

// rawEnd returns one past the last edge slot of n.
func (g *CSR[N, E]) rawEnd(n NodeID) int64 { return g.offsets[n] }

// acquire claims l for c when the policy asks for locking.
func (g *CSR[N, E]) acquire(c *nhood.Ctx, l *nhood.Lockable, p ConflictPolicy) bool {
	if !p.locks() {
		return true
	}

	return nhood.Acquire(g.cfg.mgr, c, l)
}

// Size returns the node count. Complexity: O(1).
func (g *CSR[N, E]) Size() int { return len(g.nodes) }

// EdgeCount returns the edge count. Complexity: O(1).
func (g *CSR[N, E]) EdgeCount() int { return len(g.dsts) }

// Nodes yields node identities 0..Size()-1 in construction order.
func (g *CSR[N, E]) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for n := 0; n < len(g.nodes); n++ {
			if !yield(NodeID(n)) {
				return
			}
		}
	}
}

// LocalNodes yields the worker's contiguous range split of Nodes().
func (g *CSR[N, E]) LocalNodes(worker int) iter.Seq[NodeID] {
	lo, hi := splitRange(len(g.nodes), g.cfg.workers, worker)

	return func(yield func(NodeID) bool) {
		for n := lo; n < hi; n++ {
			if !yield(NodeID(n)) {
				return
			}
		}
	}
}

// GetData returns a mutable handle to n's payload after acquiring its
// record per policy. (nil, false) signals contention.
func (g *CSR[N, E]) GetData(c *nhood.Ctx, n NodeID, p ConflictPolicy) (*N, bool) {
	g.cfg.auditWrite(p)
	nd := &g.nodes[n]
	if !g.acquire(c, &nd.lock, p) {
		return nil, false
	}

	return &nd.data, true
}

// EdgesOf returns n's outgoing edge handles. Under CheckRaceAndNeighbors
// every destination's record is claimed, in adjacency order, before the
// sequence is returned; the first failed claim aborts with (nil, false),
// leaving earlier claims with the context.
func (g *CSR[N, E]) EdgesOf(c *nhood.Ctx, n NodeID, p ConflictPolicy) (iter.Seq[EdgeID], bool) {
	if !g.acquire(c, &g.nodes[n].lock, p) {
		return nil, false
	}
	b, e := g.rawBegin(n), g.rawEnd(n)
	if p.expands() {
		for i := b; i < e; i++ {
			if !g.acquire(c, &g.nodes[g.dsts[i]].lock, p) {
				return nil, false
			}
		}
	}

	return func(yield func(EdgeID) bool) {
		for i := b; i < e; i++ {
			if !yield(EdgeID(i)) {
				return
			}
		}
	}, true
}

// EdgeData returns a mutable handle to the edge's payload. Never locks:
// edge payload is protected transitively by the endpoint's claim.
func (g *CSR[N, E]) EdgeData(e EdgeID, p ConflictPolicy) *E {
	g.cfg.auditWrite(p)

	return &g.edgeData[e]
}

// EdgeDst returns the edge's destination. Never locks.
func (g *CSR[N, E]) EdgeDst(e EdgeID) NodeID { return g.dsts[e] }

// HasNeighbor reports whether an edge n→dst exists. Complexity: O(deg(n)).
func (g *CSR[N, E]) HasNeighbor(n, dst NodeID) bool {
	for i, end := g.rawBegin(n), g.rawEnd(n); i < end; i++ {
		if g.dsts[i] == dst {
			return true
		}
	}

	return false
}

// SortEdgesByData reorders n's outgoing edges in place by payload,
// keeping destinations paired with their payloads.
func (g *CSR[N, E]) SortEdgesByData(c *nhood.Ctx, n NodeID, less func(a, b E) bool, p ConflictPolicy) bool {
	return g.SortEdges(c, n, func(a, b EdgeSortValue[NodeID, E]) bool {
		return less(a.Data, b.Data)
	}, p)
}

// SortEdges reorders n's outgoing edges in place by the paired
// destination/payload comparator. Acquires n's record per policy first.
// Structural: must not run concurrently with traversal of n's edges.
func (g *CSR[N, E]) SortEdges(c *nhood.Ctx, n NodeID, less func(a, b EdgeSortValue[NodeID, E]) bool, p ConflictPolicy) bool {
	if !g.acquire(c, &g.nodes[n].lock, p) {
		return false
	}
	b, e := g.rawBegin(n), g.rawEnd(n)
	sort.Sort(pairSort[NodeID, E]{
		dst:  g.dsts[b:e],
		data: g.edgeData[b:e],
		less: less,
	})

	return true
}
