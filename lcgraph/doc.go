// Package lcgraph provides local computation graphs: graph structure does
// not change after load, while node and edge payloads mutate under
// concurrent, conflict-checked access.
//
// A layout is chosen once, at construction, for its performance tradeoffs;
// all four expose identical semantics behind the Graph capability
// interface:
//
//   - CSR: flat compressed-row storage, parallel dense arrays for edge
//     offsets, destinations and payloads. Node identity is a dense NodeID.
//   - Inline: node records delimit a contiguous run of inline edge
//     records (destination pointer + payload) in one shared arena. Node
//     identity is the record address.
//   - Linear: each node record carries its own contiguous edge block,
//     packed in node order into a single arena. Node identity is the
//     record address.
//   - Distributed: the Linear record shape split into per-worker arenas
//     sized by a load-balanced partition of total (node+edge) weight,
//     built in parallel so each worker's chunk is allocated by the worker
//     that will iterate it. LocalNodes(w) walks only chunk w.
//
// Every payload accessor takes a ConflictPolicy deciding how much locking
// it performs, from None (externally synchronized use; never silently
// upgraded) through CheckRace (claim the target node's ownership record)
// to CheckRaceAndNeighbors (eagerly claim the whole neighborhood during
// edge-range retrieval). WriteIntent claims like CheckRace and
// additionally marks the access for the write-auditing hook.
//
// Contention surfaces as a false second return, never as an error or a
// wait: the scheduler that drives workers owns the retry/abort policy.
// Claims already won before a failed neighborhood expansion stay with the
// context; the scheduler drops them via (*nhood.Ctx).ReleaseAll.
//
// Topology is consumed from a structural.Graph exactly once; after a
// loader returns, the structural graph is never touched again. Node
// payloads are default-constructed at load; edge payloads are copied from
// the structural input only when the edge type is non-trivial.
//
// Typical traversal:
//
//	g, err := lcgraph.LoadCSR[int, int64](sg)
//	...
//	ctx := nhood.NewCtx(worker)
//	for n := range g.Nodes() {
//		edges, ok := g.EdgesOf(ctx, n, lcgraph.CheckRaceAndNeighbors)
//		if !ok {
//			ctx.ReleaseAll() // conflict: abort and let the scheduler retry
//			continue
//		}
//		for e := range edges {
//			dst := g.EdgeDst(e)
//			w := g.EdgeData(e, lcgraph.None)
//			...
//		}
//	}
package lcgraph
