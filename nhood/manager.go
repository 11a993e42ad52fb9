// File: manager.go
// Role: Manager contract + PtrManager, the pointer-indexed variant.
// Concurrency:
//   - GetRecord is safe under arbitrary concurrent calls for the same and
//     for different resources; creation races are resolved by one CAS on
//     the Lockable's inline slot.
//   - Reset/All require phase quiescence (caller/scheduler contract).

package nhood

import (
	"iter"
	"runtime"
	"sync"
)

// Manager is the phase-scoped registry of Ownership Records.
//
// Exactly one live Record exists per resource at any time, even when many
// workers touch the resource for the first time simultaneously.
type Manager interface {
	// GetRecord returns the unique Record for l, creating one if absent.
	GetRecord(c *Ctx, l *Lockable) *Record

	// All yields every record created since the last Reset, in
	// unspecified order. Intended for phase-end bulk processing; must not
	// run concurrently with GetRecord.
	All() iter.Seq[*Record]

	// Reset severs every record's resource binding and recycles the
	// records. Precondition: no context holds any claim; enforced by the
	// scheduler, checked here only by panic.
	Reset()
}

// Acquire is the combined hot-path operation the graph layouts use:
// get-or-create the record for l, then try to claim it for c.
func Acquire(m Manager, c *Ctx, l *Lockable) bool {
	return m.GetRecord(c, l).TryClaim(c)
}

// PtrManager indexes records through the Lockable's inline slot.
//
// Creation under contention allocates a candidate record per contender
// and races a single CAS on the slot; losers return their candidate to
// the pool without ever publishing it, so no partial state is visible and
// nothing leaks. The hot path takes no lock and, once a record exists,
// performs one atomic load.
//
// Records created by worker w are collected in w's bag, so the common
// path never shares an append target between workers.
type PtrManager struct {
	pool sync.Pool // *Record
	bags [][]*Record
}

var _ Manager = (*PtrManager)(nil)

// NewPtrManager returns a manager with one record bag per worker. A
// non-positive workers defaults to runtime.GOMAXPROCS(0).
func NewPtrManager(workers int) *PtrManager {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	m := &PtrManager{bags: make([][]*Record, workers)}
	m.pool.New = func() any { return new(Record) }

	return m
}

// GetRecord returns the unique record for l, creating it race-free on
// first touch. Complexity: O(1); allocation-free once the pool is warm.
func (m *PtrManager) GetRecord(c *Ctx, l *Lockable) *Record {
	if r := l.rec.Load(); r != nil {
		return r
	}

	r := m.pool.Get().(*Record)
	if r.tryBind(l) {
		m.bags[c.worker] = append(m.bags[c.worker], r)
		recordsCreated.WithLabelValues(managerPtr).Inc()

		return r
	}

	// Lost the publication race: discard the candidate unseen.
	r.res = nil
	m.pool.Put(r)

	return l.rec.Load()
}

// All yields every record in all worker bags. Order is unspecified.
func (m *PtrManager) All() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, bag := range m.bags {
			for _, r := range bag {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Reset unbinds and recycles every record. Panics if any record is still
// owned. Complexity: O(records).
func (m *PtrManager) Reset() {
	for w, bag := range m.bags {
		for i, r := range bag {
			r.clearBind()
			m.pool.Put(r)
			bag[i] = nil
		}
		m.bags[w] = bag[:0]
	}
	managerResets.WithLabelValues(managerPtr).Inc()
}
