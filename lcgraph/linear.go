// File: linear.go
// Role: Linear, the linear-packed layout. Each node record carries its
//       own contiguous edge block, and blocks are packed in node order
//       into one arena: sequential construction, sequential iteration.
//       Node identity is the record address; destinations are node
//       pointers, so traversal never goes through an index table.

package lcgraph

import (
	"iter"
	"sort"

	"github.com/ustiugov/Galois/nhood"
	"github.com/ustiugov/Galois/structural"
)

// LinearNode is a Linear/Distributed layout node record. Its address is
// the node's identity.
type LinearNode[N, E any] struct {
	lock nhood.Lockable
	data N

	// edges is the node's contiguous block in the backing arena.
	edges []LinearEdge[N, E]
}

// LinearEdge is a Linear/Distributed layout edge record.
type LinearEdge[N, E any] struct {
	dst  *LinearNode[N, E]
	data E
}

// Linear packs node records and their edge blocks into two arenas laid
// out in the same node order, so a sequential pass touches memory
// sequentially.
type Linear[N, E any] struct {
	cfg   config
	nodes []LinearNode[N, E]
	arena []LinearEdge[N, E]
}

var _ Graph[*LinearNode[int8, int16], *LinearEdge[int8, int16], int8, int16] = (*Linear[int8, int16])(nil)

// LoadLinear lays a structural graph out in linear-packed form.
// Complexity: O(V + E).
func LoadLinear[N, E any](sg structural.Graph[E], opts ...Option) (*Linear[N, E], error) {
	if sg == nil {
		return nil, ErrNilStructural
	}
	cfg := newConfig(opts)

	numNodes, numEdges := sg.Size(), sg.SizeEdges()
	g := &Linear[N, E]{
		cfg:   cfg,
		nodes: make([]LinearNode[N, E], numNodes),
		arena: make([]LinearEdge[N, E], numEdges),
	}

	// Pass 1: carve each node's block out of the arena.
	var cur int64
	for n := 0; n < numNodes; n++ {
		deg := int64(sg.Degree(structural.NodeID(n)))
		g.nodes[n].edges = g.arena[cur : cur+deg : cur+deg]
		cur += deg
	}

	// Pass 2: fill destinations (node addresses now stable) and payload.
	copyVals := hasEdgeValues[E]()
	for n := 0; n < numNodes; n++ {
		id := structural.NodeID(n)
		block := g.nodes[n].edges
		for i := range block {
			block[i].dst = &g.nodes[sg.Neighbor(id, i)]
			if copyVals {
				block[i].data = sg.EdgeValue(id, i)
			}
		}
	}

	cfg.log.Debug().
		Str("layout", layoutLinear).
		Int("nodes", numNodes).
		Int("edges", numEdges).
		Msg("local computation graph loaded")
	loadsTotal.WithLabelValues(layoutLinear).Inc()

	return g, nil
}

func (g *Linear[N, E]) acquire(c *nhood.Ctx, l *nhood.Lockable, p ConflictPolicy) bool {
	if !p.locks() {
		return true
	}

	return nhood.Acquire(g.cfg.mgr, c, l)
}

// Node returns the record of a structural node id, the bridge between
// dense ids and this layout's address identity.
func (g *Linear[N, E]) Node(id structural.NodeID) *LinearNode[N, E] { return &g.nodes[id] }

// Size returns the node count. Complexity: O(1).
func (g *Linear[N, E]) Size() int { return len(g.nodes) }

// EdgeCount returns the edge count. Complexity: O(1).
func (g *Linear[N, E]) EdgeCount() int { return len(g.arena) }

// Nodes yields node record addresses in construction order.
func (g *Linear[N, E]) Nodes() iter.Seq[*LinearNode[N, E]] {
	return func(yield func(*LinearNode[N, E]) bool) {
		for i := range g.nodes {
			if !yield(&g.nodes[i]) {
				return
			}
		}
	}
}

// LocalNodes yields the worker's contiguous range split of Nodes().
func (g *Linear[N, E]) LocalNodes(worker int) iter.Seq[*LinearNode[N, E]] {
	lo, hi := splitRange(len(g.nodes), g.cfg.workers, worker)

	return func(yield func(*LinearNode[N, E]) bool) {
		for i := lo; i < hi; i++ {
			if !yield(&g.nodes[i]) {
				return
			}
		}
	}
}

// GetData returns a mutable handle to n's payload after acquiring its
// record per policy.
func (g *Linear[N, E]) GetData(c *nhood.Ctx, n *LinearNode[N, E], p ConflictPolicy) (*N, bool) {
	g.cfg.auditWrite(p)
	if !g.acquire(c, &n.lock, p) {
		return nil, false
	}

	return &n.data, true
}

// EdgesOf returns n's outgoing edge handles, claiming the neighborhood
// first under CheckRaceAndNeighbors.
func (g *Linear[N, E]) EdgesOf(c *nhood.Ctx, n *LinearNode[N, E], p ConflictPolicy) (iter.Seq[*LinearEdge[N, E]], bool) {
	if !g.acquire(c, &n.lock, p) {
		return nil, false
	}
	if p.expands() {
		for i := range n.edges {
			if !g.acquire(c, &n.edges[i].dst.lock, p) {
				return nil, false
			}
		}
	}

	return func(yield func(*LinearEdge[N, E]) bool) {
		for i := range n.edges {
			if !yield(&n.edges[i]) {
				return
			}
		}
	}, true
}

// EdgeData returns a mutable handle to the edge's payload. Never locks.
func (g *Linear[N, E]) EdgeData(e *LinearEdge[N, E], p ConflictPolicy) *E {
	g.cfg.auditWrite(p)

	return &e.data
}

// EdgeDst returns the edge's destination. Never locks.
func (g *Linear[N, E]) EdgeDst(e *LinearEdge[N, E]) *LinearNode[N, E] { return e.dst }

// HasNeighbor reports whether an edge n→dst exists. Complexity: O(deg(n)).
func (g *Linear[N, E]) HasNeighbor(n, dst *LinearNode[N, E]) bool {
	for i := range n.edges {
		if n.edges[i].dst == dst {
			return true
		}
	}

	return false
}

// SortEdgesByData reorders n's outgoing edges in place by payload.
func (g *Linear[N, E]) SortEdgesByData(c *nhood.Ctx, n *LinearNode[N, E], less func(a, b E) bool, p ConflictPolicy) bool {
	return g.SortEdges(c, n, func(a, b EdgeSortValue[*LinearNode[N, E], E]) bool {
		return less(a.Data, b.Data)
	}, p)
}

// SortEdges reorders n's outgoing edges in place by the paired
// destination/payload comparator.
func (g *Linear[N, E]) SortEdges(c *nhood.Ctx, n *LinearNode[N, E], less func(a, b EdgeSortValue[*LinearNode[N, E], E]) bool, p ConflictPolicy) bool {
	if !g.acquire(c, &n.lock, p) {
		return false
	}
	sortLinearEdges(n.edges, less)

	return true
}

// sortLinearEdges is shared by the Linear and Distributed layouts.
func sortLinearEdges[N, E any](run []LinearEdge[N, E], less func(a, b EdgeSortValue[*LinearNode[N, E], E]) bool) {
	sort.Slice(run, func(i, j int) bool {
		return less(
			EdgeSortValue[*LinearNode[N, E], E]{Dst: run[i].dst, Data: run[i].data},
			EdgeSortValue[*LinearNode[N, E], E]{Dst: run[j].dst, Data: run[j].data},
		)
	})
}
