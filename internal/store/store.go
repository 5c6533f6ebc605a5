// Package store holds the session's task collection.
//
// Every successful mutation replaces the current Snapshot with a new one
// (fresh backing array, higher Version); snapshots already handed out are
// never modified. Consumers detect change by comparing versions.
//
// A Store is owned by a single goroutine and is not safe for concurrent use.
package store

import (
	"github.com/alexanderramin/todocat/internal/domain"
)

// ChangeKind identifies which mutation produced a Change.
type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeToggled ChangeKind = "toggled"
	ChangeDeleted ChangeKind = "deleted"
)

// Change is delivered to subscribers after a successful mutation.
// Task is the task as it stands after the change (or as it was, for deletes).
type Change struct {
	Kind     ChangeKind
	Task     domain.Task
	Snapshot Snapshot
}

// Store owns the ordered task collection and its three mutations.
type Store struct {
	snap   Snapshot
	nextID domain.TaskID

	subs    map[int]func(Change)
	subSeq  int
	subKeys []int // subscription order
}

// New returns an empty store. IDs start at 1.
func New() *Store {
	return &Store{
		nextID: 1,
		subs:   make(map[int]func(Change)),
	}
}

// Snapshot returns the current collection.
func (s *Store) Snapshot() Snapshot {
	return s.snap
}

// Create appends a task built from rawText and category. Text is trimmed;
// empty text or a category that cannot be assigned leaves the store
// untouched and returns false.
func (s *Store) Create(rawText string, category domain.Category) (domain.Task, bool) {
	text := domain.NormalizeText(rawText)
	if text == "" || !category.Assignable() {
		return domain.Task{}, false
	}

	task := domain.Task{
		ID:       s.nextID,
		Text:     text,
		Category: category,
	}
	s.nextID++

	tasks := make([]domain.Task, len(s.snap.tasks), len(s.snap.tasks)+1)
	copy(tasks, s.snap.tasks)
	tasks = append(tasks, task)

	s.commit(ChangeCreated, task, tasks)
	return task, true
}

// Toggle flips Completed on the task with the given id. Unknown ids are
// ignored and return false.
func (s *Store) Toggle(id domain.TaskID) bool {
	idx := s.snap.indexOf(id)
	if idx < 0 {
		return false
	}

	tasks := make([]domain.Task, len(s.snap.tasks))
	copy(tasks, s.snap.tasks)
	tasks[idx].Completed = !tasks[idx].Completed

	s.commit(ChangeToggled, tasks[idx], tasks)
	return true
}

// Delete removes the task with the given id, keeping the order of the rest.
// Unknown ids are ignored and return false.
func (s *Store) Delete(id domain.TaskID) bool {
	idx := s.snap.indexOf(id)
	if idx < 0 {
		return false
	}

	removed := s.snap.tasks[idx]
	tasks := make([]domain.Task, 0, len(s.snap.tasks)-1)
	tasks = append(tasks, s.snap.tasks[:idx]...)
	tasks = append(tasks, s.snap.tasks[idx+1:]...)

	s.commit(ChangeDeleted, removed, tasks)
	return true
}

// Subscribe registers fn to run after every successful mutation, in
// subscription order. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (cancel func()) {
	s.subSeq++
	key := s.subSeq
	s.subs[key] = fn
	s.subKeys = append(s.subKeys, key)

	return func() {
		if _, ok := s.subs[key]; !ok {
			return
		}
		delete(s.subs, key)
		for i, k := range s.subKeys {
			if k == key {
				s.subKeys = append(s.subKeys[:i:i], s.subKeys[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) commit(kind ChangeKind, task domain.Task, tasks []domain.Task) {
	s.snap = Snapshot{tasks: tasks, version: s.snap.version + 1}

	change := Change{Kind: kind, Task: task, Snapshot: s.snap}
	for _, key := range append([]int(nil), s.subKeys...) {
		if fn, ok := s.subs[key]; ok {
			fn(change)
		}
	}
}
