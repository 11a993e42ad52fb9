// Package structural defines the read-only topology consumed by the
// lcgraph layouts at construction time.
//
// A structural graph is pure shape: node count, edge count, and for each
// node an ordered neighbor sequence with a typed payload per slot. It is
// produced once, by a loader, a Builder, or one of the generators, and
// never mutated afterwards, so it is safe for any number of concurrent
// readers without synchronization.
//
// The package provides:
//
//   - Graph[E]: the collaborator interface every loader consumes.
//   - Memory[E]: a compact CSR-backed implementation.
//   - Builder[E]: incremental, validating construction of a Memory graph.
//   - Transpose: a materialized reverse graph for bidirectional layouts.
//   - Cycle/Star/Complete: deterministic generators for tests and benches.
//
// Node identity is a dense NodeID in [0, Size()); every stored destination
// is validated against that range at Build time. Per-source edge order is
// insertion order and is preserved exactly; downstream layouts and their
// tests rely on it.
package structural
