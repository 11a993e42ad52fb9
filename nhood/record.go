// File: record.go
// Role: Lockable slot + Record, the CAS-claimed ownership record.
// Concurrency:
//   - Record.owner is the single linearization point for claims.
//   - Lockable.rec is the single linearization point for record creation
//     in the pointer-indexed manager.

package nhood

import "sync/atomic"

// Lockable is the inline ownership slot of a claimable resource. Embed it
// in (or associate it 1:1 with) anything that must be exclusively owned;
// the graph layouts embed one per node. The zero value is ready to use:
// unbound, unowned.
type Lockable struct {
	rec atomic.Pointer[Record]
}

// Owning returns the Record currently bound to l, or nil if none exists.
// Non-blocking lookup; never creates a record.
func Owning(l *Lockable) *Record {
	return l.rec.Load()
}

// Record represents exclusive claim on one Lockable resource.
//
// Lifecycle: created lazily by a Manager on the first touch of a resource
// during a computation phase, recycled at phase boundary by Reset. A
// record is never destroyed while owned.
type Record struct {
	res   *Lockable
	owner atomic.Pointer[Ctx]
}

// TryClaim atomically claims the record for c.
//
// The fast path treats a record already owned by c as success without
// touching the CAS. Otherwise a single compare-and-swap transitions the
// owner from none to c; exactly one of any number of concurrent callers
// wins. A false return is contention, an expected outcome the caller
// resolves at scheduler level (abort/retry/wait), never by spinning here.
//
// First-time successes are tracked on c for bulk release.
func (r *Record) TryClaim(c *Ctx) bool {
	if r.owner.Load() == c {
		return true
	}
	if r.owner.CompareAndSwap(nil, c) {
		c.claims = append(c.claims, r)

		return true
	}
	claimConflicts.Inc()

	return false
}

// Release clears the claim held by c. Panics if c does not currently hold
// it: releasing an unheld claim is a caller contract violation, not a
// recoverable condition.
func (r *Record) Release(c *Ctx) {
	if !r.owner.CompareAndSwap(c, nil) {
		panic("nhood: Release of a claim not held by this context")
	}
}

// Owner returns the context currently holding the claim, or nil.
// Non-blocking.
func (r *Record) Owner() *Ctx {
	return r.owner.Load()
}

// tryBind races to publish r as the record of l. First writer wins; the
// loser must discard r without ever having made it visible.
func (r *Record) tryBind(l *Lockable) bool {
	r.res = l

	return l.rec.CompareAndSwap(nil, r)
}

// clearBind severs the resource binding at phase reset. Precondition
// (enforced by Manager.Reset): the record is unowned.
func (r *Record) clearBind() {
	if r.owner.Load() != nil {
		panic("nhood: reset with outstanding claim")
	}
	if r.res != nil {
		r.res.rec.Store(nil)
		r.res = nil
	}
}
