package service

import (
	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/store"
	"github.com/alexanderramin/todocat/internal/view"
)

// TaskService is the call surface the presentation layer uses. Every
// operation is synchronous and total: invalid input is ignored and
// reported through the boolean result, never as an error.
type TaskService interface {
	// CreateTask adds a task. It returns false when the trimmed text is
	// empty or the category cannot be assigned.
	CreateTask(rawText string, category domain.Category) (domain.Task, bool)
	ToggleTask(id domain.TaskID) bool
	DeleteTask(id domain.TaskID) bool

	// SetFilter selects the category to display. Unknown categories leave
	// the current filter in place and return false.
	SetFilter(category domain.Category) bool
	Filter() domain.Category

	VisibleTasks() view.Result
	CategoryStyle(category domain.Category) domain.StyleToken
	Snapshot() store.Snapshot

	// Subscribe registers fn to run after every state change, including
	// filter changes. The returned func cancels the subscription.
	Subscribe(fn func(StateChange)) (cancel func())
}

// StateChange tells subscribers what changed. Change is nil for
// filter-only changes.
type StateChange struct {
	Change *store.Change
	Filter domain.Category
}
