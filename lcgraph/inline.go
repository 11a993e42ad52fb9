// File: inline.go
// Role: Inline, the inline compressed-row layout. Node records delimit a
//       contiguous run in one shared edge arena; edge records colocate
//       the destination pointer with the payload. Node identity is the
//       record address.

package lcgraph

import (
	"iter"
	"sort"

	"github.com/ustiugov/Galois/nhood"
	"github.com/ustiugov/Galois/structural"
)

// InlineNode is an Inline layout node record. Its address is the node's
// identity; the fields are reached through the graph's accessors.
type InlineNode[N any] struct {
	lock nhood.Lockable
	data N

	// [edgeBegin, edgeEnd) delimits the node's run in the edge arena.
	edgeBegin, edgeEnd int64
}

// InlineEdge is an Inline layout edge record: destination pointer and
// payload side by side. Its address is the edge handle.
type InlineEdge[N, E any] struct {
	dst  *InlineNode[N]
	data E
}

// Inline stores all node records in one arena followed logically by all
// edge records in a second arena, each node's edges contiguous and in
// structural order.
type Inline[N, E any] struct {
	cfg   config
	nodes []InlineNode[N]
	edges []InlineEdge[N, E]
}

var _ Graph[*InlineNode[int8], *InlineEdge[int8, int16], int8, int16] = (*Inline[int8, int16])(nil)

// LoadInline lays a structural graph out in inline compressed-row form.
// Complexity: O(V + E).
func LoadInline[N, E any](sg structural.Graph[E], opts ...Option) (*Inline[N, E], error) {
	if sg == nil {
		return nil, ErrNilStructural
	}
	cfg := newConfig(opts)

	numNodes, numEdges := sg.Size(), sg.SizeEdges()
	g := &Inline[N, E]{
		cfg:   cfg,
		nodes: make([]InlineNode[N], numNodes),
		edges: make([]InlineEdge[N, E], numEdges),
	}

	copyVals := hasEdgeValues[E]()
	var cur int64
	for n := 0; n < numNodes; n++ {
		id := structural.NodeID(n)
		nd := &g.nodes[n]
		nd.edgeBegin = cur
		for i, d := 0, sg.Degree(id); i < d; i++ {
			g.edges[cur].dst = &g.nodes[sg.Neighbor(id, i)]
			if copyVals {
				g.edges[cur].data = sg.EdgeValue(id, i)
			}
			cur++
		}
		nd.edgeEnd = cur
	}

	cfg.log.Debug().
		Str("layout", layoutInline).
		Int("nodes", numNodes).
		Int("edges", numEdges).
		Msg("local computation graph loaded")
	loadsTotal.WithLabelValues(layoutInline).Inc()

	return g, nil
}

func (g *Inline[N, E]) acquire(c *nhood.Ctx, l *nhood.Lockable, p ConflictPolicy) bool {
	if !p.locks() {
		return true
	}

	return nhood.Acquire(g.cfg.mgr, c, l)
}

// Node returns the record of a structural node id, the bridge between
// dense ids and this layout's address identity.
func (g *Inline[N, E]) Node(id structural.NodeID) *InlineNode[N] { return &g.nodes[id] }

// Size returns the node count. Complexity: O(1).
func (g *Inline[N, E]) Size() int { return len(g.nodes) }

// EdgeCount returns the edge count. Complexity: O(1).
func (g *Inline[N, E]) EdgeCount() int { return len(g.edges) }

// Nodes yields node record addresses in construction order.
func (g *Inline[N, E]) Nodes() iter.Seq[*InlineNode[N]] {
	return func(yield func(*InlineNode[N]) bool) {
		for i := range g.nodes {
			if !yield(&g.nodes[i]) {
				return
			}
		}
	}
}

// LocalNodes yields the worker's contiguous range split of Nodes().
func (g *Inline[N, E]) LocalNodes(worker int) iter.Seq[*InlineNode[N]] {
	lo, hi := splitRange(len(g.nodes), g.cfg.workers, worker)

	return func(yield func(*InlineNode[N]) bool) {
		for i := lo; i < hi; i++ {
			if !yield(&g.nodes[i]) {
				return
			}
		}
	}
}

// GetData returns a mutable handle to n's payload after acquiring its
// record per policy.
func (g *Inline[N, E]) GetData(c *nhood.Ctx, n *InlineNode[N], p ConflictPolicy) (*N, bool) {
	g.cfg.auditWrite(p)
	if !g.acquire(c, &n.lock, p) {
		return nil, false
	}

	return &n.data, true
}

// EdgesOf returns n's outgoing edge handles, claiming the neighborhood
// first under CheckRaceAndNeighbors.
func (g *Inline[N, E]) EdgesOf(c *nhood.Ctx, n *InlineNode[N], p ConflictPolicy) (iter.Seq[*InlineEdge[N, E]], bool) {
	if !g.acquire(c, &n.lock, p) {
		return nil, false
	}
	if p.expands() {
		for i := n.edgeBegin; i < n.edgeEnd; i++ {
			if !g.acquire(c, &g.edges[i].dst.lock, p) {
				return nil, false
			}
		}
	}

	return func(yield func(*InlineEdge[N, E]) bool) {
		for i := n.edgeBegin; i < n.edgeEnd; i++ {
			if !yield(&g.edges[i]) {
				return
			}
		}
	}, true
}

// EdgeData returns a mutable handle to the edge's payload. Never locks.
func (g *Inline[N, E]) EdgeData(e *InlineEdge[N, E], p ConflictPolicy) *E {
	g.cfg.auditWrite(p)

	return &e.data
}

// EdgeDst returns the edge's destination. Never locks.
func (g *Inline[N, E]) EdgeDst(e *InlineEdge[N, E]) *InlineNode[N] { return e.dst }

// HasNeighbor reports whether an edge n→dst exists. Complexity: O(deg(n)).
func (g *Inline[N, E]) HasNeighbor(n, dst *InlineNode[N]) bool {
	for i := n.edgeBegin; i < n.edgeEnd; i++ {
		if g.edges[i].dst == dst {
			return true
		}
	}

	return false
}

// SortEdgesByData reorders n's outgoing edges in place by payload.
func (g *Inline[N, E]) SortEdgesByData(c *nhood.Ctx, n *InlineNode[N], less func(a, b E) bool, p ConflictPolicy) bool {
	return g.SortEdges(c, n, func(a, b EdgeSortValue[*InlineNode[N], E]) bool {
		return less(a.Data, b.Data)
	}, p)
}

// SortEdges reorders n's outgoing edges in place by the paired
// destination/payload comparator. Edge records move whole, so the
// destination/payload pairing is preserved by construction.
func (g *Inline[N, E]) SortEdges(c *nhood.Ctx, n *InlineNode[N], less func(a, b EdgeSortValue[*InlineNode[N], E]) bool, p ConflictPolicy) bool {
	if !g.acquire(c, &n.lock, p) {
		return false
	}
	run := g.edges[n.edgeBegin:n.edgeEnd]
	sort.Slice(run, func(i, j int) bool {
		return less(
			EdgeSortValue[*InlineNode[N], E]{Dst: run[i].dst, Data: run[i].data},
			EdgeSortValue[*InlineNode[N], E]{Dst: run[j].dst, Data: run[j].data},
		)
	})

	return true
}
