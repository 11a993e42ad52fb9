// File: context.go
// Role: Execution contexts, the identity threaded through every claim.
// Concurrency:
//   - A Ctx belongs to one worker: its claim list is mutated only by the
//     goroutine currently driving that worker index.
//   - The owner fields it is CASed into are the synchronized state.

package nhood

// Ctx is an execution context: the identity a task presents when claiming
// resources. It records every claim it wins so the scheduler can release
// them in bulk on commit or abort.
//
// A Ctx must outlive all claims it currently holds; its lifetime is owned
// by the scheduler, never by the graph.
type Ctx struct {
	worker int
	claims []*Record
}

// NewCtx returns a context for the given worker index. The index selects
// per-worker manager storage and must be in [0, workers) of every manager
// this context is used with.
func NewCtx(worker int) *Ctx {
	return &Ctx{worker: worker}
}

// Worker returns the worker index this context was created with.
func (c *Ctx) Worker() int { return c.worker }

// Claims returns the number of currently tracked claims. Released records
// are pruned lazily by ReleaseAll.
func (c *Ctx) Claims() int { return len(c.claims) }

// ReleaseAll releases every claim this context still holds and clears the
// tracking list. Records already released individually are skipped.
// Called by the scheduler on task commit or abort. Complexity: O(claims).
func (c *Ctx) ReleaseAll() {
	for _, r := range c.claims {
		if r.owner.Load() == c {
			r.owner.Store(nil)
		}
	}
	c.claims = c.claims[:0]
}

// Ordered is an execution context carrying the task's active element: the
// payload value schedulers and the Comparator order tasks by.
//
// The embedded Ctx is the claim identity; pass &o.Ctx (or o itself via
// embedding) wherever a claim identity is required.
type Ordered[T any] struct {
	Ctx

	active T
}

// NewOrdered returns an ordered context for worker with the given active
// element.
func NewOrdered[T any](worker int, active T) *Ordered[T] {
	return &Ordered[T]{Ctx: Ctx{worker: worker}, active: active}
}

// Active returns the active element.
func (o *Ordered[T]) Active() T { return o.active }

// SetActive replaces the active element. Only legal for modifications
// that do not change the element's priority while claims are held.
func (o *Ordered[T]) SetActive(v T) { o.active = v }
