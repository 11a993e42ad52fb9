// File: inout.go
// Role: InOut, the bidirectional extension of the CSR layout.
//
// In-edge storage comes in two flavors. When the structural input is
// already symmetric, the in-edge view shares the forward arrays: zero
// extra memory, and sorting one direction is visible through the other.
// Otherwise a fully materialized transpose (own offsets, destinations and
// payload copies) is built from a separately supplied transposed
// structural graph.

package lcgraph

import (
	"iter"
	"sort"

	"github.com/ustiugov/Galois/nhood"
	"github.com/ustiugov/Galois/structural"
)

// InEdgeID is an in-edge handle: the edge's slot in the in-edge arrays.
// Deliberately distinct from EdgeID so the two directions cannot be mixed.
type InEdgeID int64

// InOut extends CSR with incoming-edge access mirroring the out-edge
// contract.
type InOut[N, E any] struct {
	CSR[N, E]

	inOffsets []int64
	inDsts    []NodeID // in-edge "destination" is the original source
	inData    []E
	shared    bool
}

// LoadInOutSymmetric builds an InOut graph over a structural graph the
// caller asserts to be symmetric ((u,v) ∈ E ⇒ (v,u) ∈ E): the in-edge
// view shares the forward storage. Complexity: O(V + E).
func LoadInOutSymmetric[N, E any](sg structural.Graph[E], opts ...Option) (*InOut[N, E], error) {
	fwd, err := LoadCSR[N, E](sg, opts...)
	if err != nil {
		return nil, err
	}

	g := &InOut[N, E]{CSR: *fwd, shared: true}
	g.inOffsets = g.offsets
	g.inDsts = g.dsts
	g.inData = g.edgeData
	loadsTotal.WithLabelValues(layoutInOut).Inc()

	return g, nil
}

// LoadInOut builds an InOut graph from a forward structural graph and its
// separately materialized transpose. Construction fails with
// ErrTransposeMismatch if the two disagree on node or edge counts; the
// resulting graph would be structurally inconsistent, so the load aborts.
// Complexity: O(V + E).
func LoadInOut[N, E any](sg, tg structural.Graph[E], opts ...Option) (*InOut[N, E], error) {
	if sg == nil || tg == nil {
		return nil, ErrNilStructural
	}
	cfg := newConfig(opts)
	if sg.Size() != tg.Size() || sg.SizeEdges() != tg.SizeEdges() {
		cfg.log.Error().
			Int("nodes", sg.Size()).Int("transposeNodes", tg.Size()).
			Int("edges", sg.SizeEdges()).Int("transposeEdges", tg.SizeEdges()).
			Msg("transpose disagrees with forward graph")

		return nil, ErrTransposeMismatch
	}

	fwd, err := LoadCSR[N, E](sg, opts...)
	if err != nil {
		return nil, err
	}

	g := &InOut[N, E]{CSR: *fwd}
	numNodes, numEdges := tg.Size(), tg.SizeEdges()
	g.inOffsets = make([]int64, numNodes)
	g.inDsts = make([]NodeID, numEdges)
	g.inData = make([]E, numEdges)

	copyVals := hasEdgeValues[E]()
	var pos int64
	for n := 0; n < numNodes; n++ {
		id := NodeID(n)
		for i, d := 0, tg.Degree(id); i < d; i++ {
			g.inDsts[pos] = tg.Neighbor(id, i)
			if copyVals {
				g.inData[pos] = tg.EdgeValue(id, i)
			}
			pos++
		}
		g.inOffsets[n] = pos
	}
	loadsTotal.WithLabelValues(layoutInOut).Inc()

	return g, nil
}

// Symmetric reports whether the in-edge view shares the forward storage.
func (g *InOut[N, E]) Symmetric() bool { return g.shared }

func (g *InOut[N, E]) inRawBegin(n NodeID) int64 {
	if n == 0 {
		return 0
	}

	return g.inOffsets[n-1]
}

func (g *InOut[N, E]) inRawEnd(n NodeID) int64 { return g.inOffsets[n] }

// InEdgesOf mirrors EdgesOf for incoming edges: acquires n's record per
// policy and, under CheckRaceAndNeighbors, every in-neighbor's record in
// adjacency order.
func (g *InOut[N, E]) InEdgesOf(c *nhood.Ctx, n NodeID, p ConflictPolicy) (iter.Seq[InEdgeID], bool) {
	if !g.acquire(c, &g.nodes[n].lock, p) {
		return nil, false
	}
	b, e := g.inRawBegin(n), g.inRawEnd(n)
	if p.expands() {
		for i := b; i < e; i++ {
			if !g.acquire(c, &g.nodes[g.inDsts[i]].lock, p) {
				return nil, false
			}
		}
	}

	return func(yield func(InEdgeID) bool) {
		for i := b; i < e; i++ {
			if !yield(InEdgeID(i)) {
				return
			}
		}
	}, true
}

// InEdgeData returns a mutable handle to the in-edge's payload. In
// symmetric mode this aliases the forward payload; in transpose mode it
// is the materialized copy. Never locks.
func (g *InOut[N, E]) InEdgeData(e InEdgeID, p ConflictPolicy) *E {
	g.cfg.auditWrite(p)

	return &g.inData[e]
}

// InEdgeDst returns the in-edge's source node. Never locks.
func (g *InOut[N, E]) InEdgeDst(e InEdgeID) NodeID { return g.inDsts[e] }

// SortInEdgesByData reorders n's incoming edges in place by payload. In
// symmetric mode in- and out-edges share one row, so the reorder is
// visible through EdgesOf(n) as well.
func (g *InOut[N, E]) SortInEdgesByData(c *nhood.Ctx, n NodeID, less func(a, b E) bool, p ConflictPolicy) bool {
	if !g.acquire(c, &g.nodes[n].lock, p) {
		return false
	}
	b, e := g.inRawBegin(n), g.inRawEnd(n)
	sort.Sort(pairSort[NodeID, E]{
		dst:  g.inDsts[b:e],
		data: g.inData[b:e],
		less: func(a, b EdgeSortValue[NodeID, E]) bool { return less(a.Data, b.Data) },
	})

	return true
}
