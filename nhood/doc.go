// Package nhood turns arbitrary addressable resources into exclusively
// owned, priority-comparable records, so that concurrent (possibly
// speculative) graph computations can detect and resolve conflicts.
//
// The moving parts:
//
//   - Lockable: a zero-value-ready slot embedded in (or associated 1:1
//     with) any resource that can be claimed, typically a graph node.
//   - Record: the ownership record bound to one Lockable. Claiming is a
//     single compare-and-swap on the record's owner field; a failed claim
//     is an ordinary boolean outcome, never an error.
//   - Ctx: a task's claim identity. Ordered[T] extends it with the task's
//     active element, the value schedulers order work by.
//   - Comparator[T]: lifts a strict-weak ordering over active elements to
//     an ordering over contexts. It is the documented extension point for
//     priority-based conflict resolution; the base managers never preempt.
//   - Manager: the phase-scoped registry of all records created so far.
//     PtrManager resolves creation races with a single CAS on the
//     Lockable's inline slot (the loser discards its candidate without
//     ever publishing it); MapManager indirects through a hash map under
//     a read/write lock with a mandatory double-checked create.
//
// Concurrency model: claim attempts never block. The only wait in the
// package is a MapManager reader briefly queued behind a writer during
// the creation of one record. Worker identity is an explicit small
// integer carried by Ctx; each worker index must be driven by at most
// one goroutine at a time.
//
// Caller contract violations (releasing a claim that is not held,
// resetting a manager while claims are outstanding, reusing a worker
// index concurrently) are programming errors and panic.
package nhood
