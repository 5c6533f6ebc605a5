package store

import "github.com/alexanderramin/todocat/internal/domain"

// Snapshot is an immutable view of the collection at one version.
// The zero value is the empty collection at version 0.
type Snapshot struct {
	tasks   []domain.Task
	version uint64
}

// Version increases by one with every successful mutation.
func (s Snapshot) Version() uint64 { return s.version }

// Len returns the number of tasks.
func (s Snapshot) Len() int { return len(s.tasks) }

// Tasks returns the tasks in insertion order. The slice is shared with the
// snapshot and must be treated as read-only.
func (s Snapshot) Tasks() []domain.Task { return s.tasks }

// Get looks up a task by id.
func (s Snapshot) Get(id domain.TaskID) (domain.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return domain.Task{}, false
}

// CompletedCount returns how many tasks are marked complete.
func (s Snapshot) CompletedCount() int {
	n := 0
	for _, t := range s.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func (s Snapshot) indexOf(id domain.TaskID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
