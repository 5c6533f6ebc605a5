package service

import (
	"context"
	"time"

	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/store"
	"github.com/alexanderramin/todocat/internal/view"
)

type taskService struct {
	store    *store.Store
	filter   domain.Category
	memo     view.Memo
	observer UseCaseObserver

	subs   []*subscriber
	subSeq int
}

type subscriber struct {
	id int
	fn func(StateChange)
}

// NewTaskService returns a service over st with the given initial filter.
// An unknown initial filter falls back to the all sentinel.
func NewTaskService(st *store.Store, initialFilter domain.Category, observers ...UseCaseObserver) TaskService {
	if !initialFilter.Valid() {
		initialFilter = domain.CategoryAll
	}
	s := &taskService{
		store:    st,
		filter:   initialFilter,
		observer: useCaseObserverOrNoop(observers),
	}
	st.Subscribe(func(c store.Change) {
		s.notify(StateChange{Change: &c, Filter: s.filter})
	})
	return s
}

func (s *taskService) CreateTask(rawText string, category domain.Category) (domain.Task, bool) {
	start := time.Now()
	task, ok := s.store.Create(rawText, category)

	fields := map[string]any{"category": string(category)}
	if ok {
		fields["task_id"] = uint64(task.ID)
	} else {
		fields["rejected"] = rejectReason(rawText, category)
	}
	s.observe("create_task", ok, start, fields)
	return task, ok
}

func (s *taskService) ToggleTask(id domain.TaskID) bool {
	start := time.Now()
	ok := s.store.Toggle(id)

	fields := map[string]any{"task_id": uint64(id)}
	if t, found := s.store.Snapshot().Get(id); found {
		fields["completed"] = t.Completed
	}
	s.observe("toggle_task", ok, start, fields)
	return ok
}

func (s *taskService) DeleteTask(id domain.TaskID) bool {
	start := time.Now()
	ok := s.store.Delete(id)
	s.observe("delete_task", ok, start, map[string]any{"task_id": uint64(id)})
	return ok
}

func (s *taskService) SetFilter(category domain.Category) bool {
	start := time.Now()
	if !category.Valid() {
		s.observe("set_filter", false, start, map[string]any{"category": string(category)})
		return false
	}
	changed := category != s.filter
	s.filter = category
	s.observe("set_filter", changed, start, map[string]any{"category": string(category)})
	if changed {
		s.notify(StateChange{Filter: category})
	}
	return true
}

func (s *taskService) Filter() domain.Category {
	return s.filter
}

func (s *taskService) VisibleTasks() view.Result {
	return s.memo.Get(s.store.Snapshot(), s.filter)
}

func (s *taskService) CategoryStyle(category domain.Category) domain.StyleToken {
	return domain.CategoryStyle(category)
}

func (s *taskService) Snapshot() store.Snapshot {
	return s.store.Snapshot()
}

func (s *taskService) Subscribe(fn func(StateChange)) (cancel func()) {
	s.subSeq++
	sub := &subscriber{id: s.subSeq, fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		for i, existing := range s.subs {
			if existing.id == sub.id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *taskService) notify(change StateChange) {
	for _, sub := range append([]*subscriber(nil), s.subs...) {
		sub.fn(change)
	}
}

func (s *taskService) observe(name string, changed bool, start time.Time, fields map[string]any) {
	s.observer.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:      name,
		Changed:   changed,
		Duration:  time.Since(start),
		Fields:    fields,
		StartedAt: start,
	})
}

func rejectReason(rawText string, category domain.Category) string {
	if domain.NormalizeText(rawText) == "" {
		return "empty_text"
	}
	if !category.Assignable() {
		return "category_not_assignable"
	}
	return "unknown"
}
