// Package galois is a runtime substrate for amorphous data-parallel
// computation over graphs: algorithms that mutate node and edge state
// under irregular, data-dependent access patterns, where parallel
// workers may touch overlapping neighborhoods and must never corrupt
// shared state.
//
// The module provides two tightly coupled layers:
//
//   - Concurrent graph representations (lcgraph/): four physical layouts
//     of an immutable-topology, mutable-payload graph behind one
//     iteration/access contract, with per-access conflict control.
//   - Ownership and conflict detection (nhood/): CAS-based ownership
//     records, execution contexts with priority-comparable payloads, and
//     neighborhood managers that create records lazily and race-free.
//
// Topology is consumed once, at construction time, from a read-only
// structural graph (structural/) and never changes afterwards; only node
// and edge payloads mutate. Every payload accessor takes a conflict
// policy: callers opt into exactly as much locking as their schedule
// needs, from none at all to eager full-neighborhood acquisition.
//
// Contention is an expected outcome, not an error: a failed claim is a
// boolean result, and the retry/abort policy belongs to the surrounding
// scheduler. The substrate itself never blocks a worker on another.
//
// Everything is organized under three subpackages:
//
//	structural/  read-only topology collaborator, builder, transpose, generators
//	nhood/       ownership records, execution contexts, neighborhood managers
//	lcgraph/     the four local-computation-graph layouts + bidirectional extension
package galois
