package view

import (
	"slices"

	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/store"
)

// Memo caches the last Result keyed on snapshot version and filter.
// A miss simply recomputes; correctness never depends on a hit.
type Memo struct {
	valid   bool
	version uint64
	filter  domain.Category
	result  Result

	hits, misses int
}

// Get returns the filtered view of snap under filter. The cached Tasks
// slice is a copy, never the snapshot's backing array.
func (m *Memo) Get(snap store.Snapshot, filter domain.Category) Result {
	if m.valid && m.version == snap.Version() && m.filter == filter {
		m.hits++
		return m.result
	}
	m.misses++
	m.result = Evaluate(snap.Tasks(), filter)
	m.result.Tasks = slices.Clone(m.result.Tasks)
	m.version = snap.Version()
	m.filter = filter
	m.valid = true
	return m.result
}

// Stats returns cache hit and miss counts.
func (m *Memo) Stats() (hits, misses int) {
	return m.hits, m.misses
}
