// File: distributed.go
// Role: Distributed, the worker-partitioned Linear layout. The structural
//       graph is split into contiguous ranges of roughly equal weighted
//       cost (1 per node + 1 per edge, greedy prefix cut, not true
//       bin-packing); each range's arenas are allocated and filled by its
//       own worker goroutine so the chunk's memory is local to the worker
//       that will iterate it.
// Concurrency:
//   - Load runs two parallel phases (node records, then edges) with a
//     barrier between them: edge filling needs every node address stable.

package lcgraph

import (
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/ustiugov/Galois/nhood"
	"github.com/ustiugov/Galois/structural"
)

// chunk is one worker's slice of the graph: the node range [first, last)
// plus the arenas backing it.
type chunk[N, E any] struct {
	first, last int
	nodes       []LinearNode[N, E]
	arena       []LinearEdge[N, E]
}

// Distributed is the Linear record shape over per-worker arenas.
type Distributed[N, E any] struct {
	cfg      config
	chunks   []chunk[N, E]
	byID     []*LinearNode[N, E] // structural id → record, for edge filling and lookups
	numEdges int
}

var _ Graph[*LinearNode[int8, int16], *LinearEdge[int8, int16], int8, int16] = (*Distributed[int8, int16])(nil)

// span is one partition of the structural node range.
type span struct {
	first, last int // node range [first, last)
	edges       int
}

// partitionWeighted cuts [0, Size()) into workers contiguous spans of
// roughly equal (node+edge) cost using a greedy prefix-sum walk: a span
// closes as soon as the running cost reaches its share. Trailing spans
// may be empty; the last span absorbs any remainder.
func partitionWeighted[E any](sg structural.Graph[E], workers int) []span {
	numNodes := sg.Size()
	total := numNodes + sg.SizeEdges()
	block := total / workers

	spans := make([]span, workers)
	cur, at := 0, 0
	for w := 0; w < workers-1; w++ {
		spans[w].first = at
		for at < numNodes && cur < (w+1)*block {
			cur += 1 + sg.Degree(structural.NodeID(at))
			spans[w].edges += sg.Degree(structural.NodeID(at))
			at++
		}
		spans[w].last = at
	}
	spans[workers-1].first = at
	spans[workers-1].last = numNodes
	for n := at; n < numNodes; n++ {
		spans[workers-1].edges += sg.Degree(structural.NodeID(n))
	}

	return spans
}

// LoadDistributed lays a structural graph out across per-worker arenas.
// Complexity: O(V + E) work split across the configured workers.
func LoadDistributed[N, E any](sg structural.Graph[E], opts ...Option) (*Distributed[N, E], error) {
	if sg == nil {
		return nil, ErrNilStructural
	}
	cfg := newConfig(opts)

	numNodes, numEdges := sg.Size(), sg.SizeEdges()
	g := &Distributed[N, E]{
		cfg:      cfg,
		chunks:   make([]chunk[N, E], cfg.workers),
		byID:     make([]*LinearNode[N, E], numNodes),
		numEdges: numEdges,
	}
	spans := partitionWeighted(sg, cfg.workers)

	// Phase 1: every worker allocates and carves its own arenas. Workers
	// write disjoint byID slots, so no synchronization beyond the barrier.
	var alloc errgroup.Group
	for w := range spans {
		alloc.Go(func() error {
			sp := spans[w]
			ch := &g.chunks[w]
			ch.first, ch.last = sp.first, sp.last
			ch.nodes = make([]LinearNode[N, E], sp.last-sp.first)
			ch.arena = make([]LinearEdge[N, E], sp.edges)

			cur := 0
			for i := range ch.nodes {
				id := structural.NodeID(sp.first + i)
				deg := sg.Degree(id)
				ch.nodes[i].edges = ch.arena[cur : cur+deg : cur+deg]
				cur += deg
				g.byID[id] = &ch.nodes[i]
			}

			return nil
		})
	}
	_ = alloc.Wait() // phase barrier: node addresses must be stable below

	// Phase 2: every worker fills its own edge blocks.
	copyVals := hasEdgeValues[E]()
	var fill errgroup.Group
	for w := range spans {
		fill.Go(func() error {
			sp := spans[w]
			for n := sp.first; n < sp.last; n++ {
				id := structural.NodeID(n)
				block := g.byID[n].edges
				for i := range block {
					block[i].dst = g.byID[sg.Neighbor(id, i)]
					if copyVals {
						block[i].data = sg.EdgeValue(id, i)
					}
				}
			}

			return nil
		})
	}
	_ = fill.Wait()

	cfg.log.Debug().
		Str("layout", layoutDistributed).
		Int("nodes", numNodes).
		Int("edges", numEdges).
		Int("workers", cfg.workers).
		Msg("local computation graph loaded")
	loadsTotal.WithLabelValues(layoutDistributed).Inc()

	return g, nil
}

func (g *Distributed[N, E]) acquire(c *nhood.Ctx, l *nhood.Lockable, p ConflictPolicy) bool {
	if !p.locks() {
		return true
	}

	return nhood.Acquire(g.cfg.mgr, c, l)
}

// Size returns the node count. Complexity: O(1).
func (g *Distributed[N, E]) Size() int { return len(g.byID) }

// EdgeCount returns the edge count. Complexity: O(1).
func (g *Distributed[N, E]) EdgeCount() int { return g.numEdges }

// Node returns the record of a structural node id, the bridge between
// dense ids and this layout's address identity.
func (g *Distributed[N, E]) Node(id structural.NodeID) *LinearNode[N, E] { return g.byID[id] }

// Nodes yields every node in partition order: chunk 0 first, the cursor
// advancing across arena boundaries.
func (g *Distributed[N, E]) Nodes() iter.Seq[*LinearNode[N, E]] {
	return func(yield func(*LinearNode[N, E]) bool) {
		for c := range g.chunks {
			nodes := g.chunks[c].nodes
			for i := range nodes {
				if !yield(&nodes[i]) {
					return
				}
			}
		}
	}
}

// LocalNodes yields only the nodes whose storage lives in worker's own
// chunk, enabling worker-local passes.
func (g *Distributed[N, E]) LocalNodes(worker int) iter.Seq[*LinearNode[N, E]] {
	return func(yield func(*LinearNode[N, E]) bool) {
		if worker < 0 || worker >= len(g.chunks) {
			return
		}
		nodes := g.chunks[worker].nodes
		for i := range nodes {
			if !yield(&nodes[i]) {
				return
			}
		}
	}
}

// GetData returns a mutable handle to n's payload after acquiring its
// record per policy.
func (g *Distributed[N, E]) GetData(c *nhood.Ctx, n *LinearNode[N, E], p ConflictPolicy) (*N, bool) {
	g.cfg.auditWrite(p)
	if !g.acquire(c, &n.lock, p) {
		return nil, false
	}

	return &n.data, true
}

// EdgesOf returns n's outgoing edge handles, claiming the neighborhood
// first under CheckRaceAndNeighbors.
func (g *Distributed[N, E]) EdgesOf(c *nhood.Ctx, n *LinearNode[N, E], p ConflictPolicy) (iter.Seq[*LinearEdge[N, E]], bool) {
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
func (g *Distributed[N, E]) EdgeData(e *LinearEdge[N, E], p ConflictPolicy) *E {
	g.cfg.auditWrite(p)

	return &e.data
}

// EdgeDst returns the edge's destination. Never locks.
func (g *Distributed[N, E]) EdgeDst(e *LinearEdge[N, E]) *LinearNode[N, E] { return e.dst }

// HasNeighbor reports whether an edge n→dst exists. Complexity: O(deg(n)).
func (g *Distributed[N, E]) HasNeighbor(n, dst *LinearNode[N, E]) bool {
	for i := range n.edges {
		if n.edges[i].dst == dst {
			return true
		}
	}

	return false
}

// SortEdgesByData reorders n's outgoing edges in place by payload.
func (g *Distributed[N, E]) SortEdgesByData(c *nhood.Ctx, n *LinearNode[N, E], less func(a, b E) bool, p ConflictPolicy) bool {
	return g.SortEdges(c, n, func(a, b EdgeSortValue[*LinearNode[N, E], E]) bool {
		return less(a.Data, b.Data)
	}, p)
}

// SortEdges reorders n's outgoing edges in place by the paired
// destination/payload comparator.
func (g *Distributed[N, E]) SortEdges(c *nhood.Ctx, n *LinearNode[N, E], less func(a, b EdgeSortValue[*LinearNode[N, E], E]) bool, p ConflictPolicy) bool {
	if !g.acquire(c, &n.lock, p) {
		return false
	}
	sortLinearEdges(n.edges, less)

	return true
}
