// File: types.go
// Role: ConflictPolicy, the Graph capability interface, edge-sort pairing,
//       and small shared helpers.

package lcgraph

import (
	"iter"
	"reflect"
	"sort"

	"github.com/ustiugov/Galois/nhood"
	"github.com/ustiugov/Galois/structural"
)

// NodeID is the dense node identity used by the CSR layouts. It is the
// structural identity unchanged: loading never renumbers nodes.
type NodeID = structural.NodeID

// ConflictPolicy selects how much conflict locking an accessor performs.
type ConflictPolicy uint8

const (
	// None acquires nothing and guarantees nothing against concurrent
	// mutation. For single-threaded or externally-synchronized use; an
	// accessor given None performs zero synchronization, never a silent
	// upgrade.
	None ConflictPolicy = iota

	// CheckRace acquires the target node's ownership record.
	CheckRace

	// CheckRaceAndNeighbors acquires the target node's record and, during
	// edge-range retrieval, eagerly acquires every adjacent node's record
	// in adjacency order. Duplicate destinations are safe: claim attempts
	// are idempotent for an already-held record.
	CheckRaceAndNeighbors

	// WriteIntent acquires like CheckRace and additionally marks the
	// access as a write for the write-auditing layer.
	WriteIntent
)

// String returns the policy name for diagnostics.
func (p ConflictPolicy) String() string {
	switch p {
	case None:
		return "none"
	case CheckRace:
		return "checkRace"
	case CheckRaceAndNeighbors:
		return "checkRaceAndNeighbors"
	case WriteIntent:
		return "writeIntent"
	default:
		return "unknown"
	}
}

// locks reports whether the policy acquires the target's record.
func (p ConflictPolicy) locks() bool { return p != None }

// expands reports whether edge-range retrieval claims the neighborhood.
func (p ConflictPolicy) expands() bool { return p == CheckRaceAndNeighbors }

// writes reports whether the access must be write-audited.
func (p ConflictPolicy) writes() bool { return p == WriteIntent }

// Graph is the capability set shared by all physical layouts. GN is the
// layout's node identity (dense NodeID for CSR, record address for the
// packed layouts), EH its edge handle, N and E the node and edge payload
// types.
//
// Semantics are identical across layouts; only representation differs.
// Accessors returning a bool report contention: false means a required
// claim failed and the caller must fall back to its scheduler's conflict
// resolution. Handles stay valid for the graph's whole lifetime, since
// topology never resizes.
type Graph[GN comparable, EH any, N, E any] interface {
	// Size returns the node count, fixed after construction.
	Size() int

	// EdgeCount returns the edge count, fixed after construction.
	EdgeCount() int

	// Nodes yields every node identity in construction order. The
	// sequence is lazy, finite and restartable.
	Nodes() iter.Seq[GN]

	// LocalNodes yields the worker's partition of Nodes(). In the
	// Distributed layout this is the partition whose storage is
	// colocated with the worker; elsewhere it is a contiguous range
	// split. worker must be in [0, workers).
	LocalNodes(worker int) iter.Seq[GN]

	// GetData returns a mutable handle to the node's payload, acquiring
	// the node's ownership record per policy first.
	GetData(c *nhood.Ctx, n GN, p ConflictPolicy) (*N, bool)

	// EdgesOf returns a lazy sequence over the node's outgoing edges,
	// acquiring the node's record (and, under CheckRaceAndNeighbors,
	// every adjacent node's record) per policy first.
	EdgesOf(c *nhood.Ctx, n GN, p ConflictPolicy) (iter.Seq[EH], bool)

	// EdgeData returns a mutable handle to the edge's payload. Edge
	// payload is protected transitively by its endpoint's claim: this
	// accessor never locks, the policy only feeds the write audit.
	EdgeData(e EH, p ConflictPolicy) *E

	// EdgeDst returns the edge's destination. Never locks.
	EdgeDst(e EH) GN

	// HasNeighbor reports whether an edge n→dst exists. Linear scan of
	// n's edges; performs no locking.
	HasNeighbor(n, dst GN) bool

	// SortEdgesByData reorders the node's outgoing edges in place by
	// payload, keeping each destination paired with its payload. Acquires
	// the node's record per policy first. Structural: must not run
	// concurrently with any traversal of the same node's edges.
	SortEdgesByData(c *nhood.Ctx, n GN, less func(a, b E) bool, p ConflictPolicy) bool

	// SortEdges is SortEdgesByData with the comparator over the full
	// destination/payload pair.
	SortEdges(c *nhood.Ctx, n GN, less func(a, b EdgeSortValue[GN, E]) bool, p ConflictPolicy) bool
}

// EdgeSortValue is the destination/payload pair seen by SortEdges
// comparators.
type EdgeSortValue[GN comparable, E any] struct {
	Dst  GN
	Data E
}

// hasEdgeValues reports whether E is non-trivial, i.e. whether edge
// payload must actually be copied in from the structural graph.
func hasEdgeValues[E any]() bool {
	return reflect.TypeFor[E]().Size() != 0
}

// splitRange computes worker w's contiguous slice of [0, n) under an
// even chunking, the range-split used for local iteration outside the
// Distributed layout.
func splitRange(n, workers, w int) (int, int) {
	if workers <= 0 || w < 0 || w >= workers {
		return 0, 0
	}
	chunk := (n + workers - 1) / workers
	lo := w * chunk
	if lo > n {
		lo = n
	}
	hi := lo + chunk
	if hi > n {
		hi = n
	}

	return lo, hi
}

// pairSort sorts parallel destination/payload slices through one
// comparator over the paired view, used by the CSR layouts where the two
// live in separate arrays.
type pairSort[GN comparable, E any] struct {
	dst  []GN
	data []E
	less func(a, b EdgeSortValue[GN, E]) bool
}

func (s pairSort[GN, E]) Len() int { return len(s.dst) }

func (s pairSort[GN, E]) Swap(i, j int) {
	s.dst[i], s.dst[j] = s.dst[j], s.dst[i]
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

func (s pairSort[GN, E]) Less(i, j int) bool {
	return s.less(
		EdgeSortValue[GN, E]{Dst: s.dst[i], Data: s.data[i]},
		EdgeSortValue[GN, E]{Dst: s.dst[j], Data: s.data[j]},
	)
}

var _ sort.Interface = pairSort[NodeID, int]{}
