// File: comparator.go
// Role: Priority comparator lifting an element ordering to contexts.

package nhood

// Less is a strict weak ordering over active elements: Less(a, b) reports
// whether a has strictly higher scheduling priority than b.
type Less[T any] func(a, b T) bool

// Comparator lifts a Less over elements to an ordering over *Ordered[T]
// contexts by projecting each context to its active element.
//
// A Comparator is stateless and may be shared across any number of
// goroutines. It is used by schedulers to pick the next task and by
// ordered conflict-resolution extensions to decide deterministically
// which of two competing contexts wins; the base managers never consult
// it.
type Comparator[T any] struct {
	less Less[T]
}

// NewComparator wraps less. Panics if less is nil.
func NewComparator[T any](less Less[T]) Comparator[T] {
	if less == nil {
		panic("nhood: nil Less passed to NewComparator")
	}

	return Comparator[T]{less: less}
}

// Less reports whether context a precedes context b under the wrapped
// element ordering. Panics if either context is nil (caller contract).
func (c Comparator[T]) Less(a, b *Ordered[T]) bool {
	if a == nil || b == nil {
		panic("nhood: Comparator.Less called with nil context")
	}

	return c.less(a.Active(), b.Active())
}
