// File: mapmanager.go
// Role: MapManager, the map-indexed variant for resources that cannot
//       spare an inline owner slot.
// Concurrency:
//   - Lookups under read lock; creation under write lock with a mandatory
//     re-check. Readers wait at most for the creation of one record.

package nhood

import (
	"iter"
	"sync"
)

// MapManager indexes records through a hash map guarded by a read/write
// lock. It trades the PtrManager's lock-free hot path for independence
// from the resource's memory layout: the Lockable is used purely as a
// stable key, its inline slot stays untouched.
//
// Record creation follows the double-checked pattern:
//
//  1. read lock, look up; hit returns immediately;
//  2. on miss: drop the read lock, take the write lock, and LOOK UP
//     AGAIN (another creator may have inserted while we waited), then
//     create and insert only if still missing;
//  3. re-take the read lock and look up once more to return a stable
//     reference.
//
// The re-check in step 2 is mandatory: skipping it would let two racing
// first-touchers insert two live records for the same resource.
type MapManager struct {
	mu   sync.RWMutex
	recs map[*Lockable]*Record
	all  []*Record
	pool sync.Pool // *Record
}

var _ Manager = (*MapManager)(nil)

const mapManagerHint = 8

// NewMapManager returns an empty map-indexed manager.
func NewMapManager() *MapManager {
	m := &MapManager{recs: make(map[*Lockable]*Record, mapManagerHint)}
	m.pool.New = func() any { return new(Record) }

	return m
}

// GetRecord returns the unique record for l, creating it under the write
// lock on first touch. The Ctx parameter is accepted for interface
// uniformity; the map variant needs no worker-local storage.
func (m *MapManager) GetRecord(_ *Ctx, l *Lockable) *Record {
	m.mu.RLock()
	r, ok := m.recs[l]
	if !ok {
		m.mu.RUnlock()

		m.mu.Lock()
		// Re-check: a second creator may have inserted while the read
		// lock was still held by the first.
		if _, ok = m.recs[l]; !ok {
			nr := m.pool.Get().(*Record)
			nr.res = l
			m.recs[l] = nr
			m.all = append(m.all, nr)
			recordsCreated.WithLabelValues(managerMap).Inc()
		}
		m.mu.Unlock()

		// Read again now that the entry is guaranteed present.
		m.mu.RLock()
		r = m.recs[l]
	}
	m.mu.RUnlock()

	return r
}

// All yields every record created since the last Reset, in creation
// order of this manager (unspecified to callers).
func (m *MapManager) All() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		m.mu.RLock()
		snapshot := make([]*Record, len(m.all))
		copy(snapshot, m.all)
		m.mu.RUnlock()

		for _, r := range snapshot {
			if !yield(r) {
				return
			}
		}
	}
}

// Reset unbinds and recycles every record and empties the map. Panics if
// any record is still owned. Complexity: O(records).
func (m *MapManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.all {
		if r.owner.Load() != nil {
			panic("nhood: reset with outstanding claim")
		}
		// The map variant never published r through the inline slot, so
		// severing the binding is a plain field clear.
		r.res = nil
		m.pool.Put(r)
		m.all[i] = nil
	}
	m.all = m.all[:0]
	m.recs = make(map[*Lockable]*Record, mapManagerHint)
	managerResets.WithLabelValues(managerMap).Inc()
}
