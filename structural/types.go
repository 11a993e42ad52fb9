// File: types.go
// Role: NodeID, the Graph[E] collaborator interface, and sentinel errors.

package structural

import "errors"

// NodeID is the dense integer identity of a node in a structural graph.
// Valid IDs lie in [0, Size()).
type NodeID uint32

// Sentinel errors for structural graph construction.
var (
	// ErrNegativeSize indicates a Builder was created with a negative node count.
	ErrNegativeSize = errors.New("structural: node count must be non-negative")

	// ErrNodeRange indicates an edge endpoint outside [0, Size()).
	ErrNodeRange = errors.New("structural: node id out of range")
)

// Graph is the read-only topology collaborator consumed by graph loaders.
//
// Implementations must be safe for concurrent readers and must never
// change after they are handed to a loader: Size, SizeEdges, Degree,
// Neighbor and EdgeValue are pure queries over fixed data.
//
// The i argument of Neighbor and EdgeValue is a position in the node's
// neighbor sequence, 0 ≤ i < Degree(n). Neighbor order is significant and
// must be stable across calls.
type Graph[E any] interface {
	// Size returns the number of nodes.
	Size() int

	// SizeEdges returns the total number of directed edges.
	SizeEdges() int

	// Degree returns the number of outgoing edges of n.
	Degree(n NodeID) int

	// Neighbor returns the destination of the i-th outgoing edge of n.
	Neighbor(n NodeID, i int) NodeID

	// EdgeValue returns the payload of the i-th outgoing edge of n.
	EdgeValue(n NodeID, i int) E
}
