// Package view derives the displayed task list from a collection and the
// selected filter category.
package view

import "github.com/alexanderramin/todocat/internal/domain"

// EmptyReason explains why a Result has no tasks.
type EmptyReason int

const (
	EmptyNone        EmptyReason = iota // result has tasks
	EmptyNoTasks                        // the collection itself is empty
	EmptyFilteredOut                    // tasks exist, none in the selected category
)

// Result is the filtered view of one collection.
type Result struct {
	Tasks  []domain.Task
	Filter domain.Category
	Total  int // size of the unfiltered collection
}

// Empty reports why the result is empty, or EmptyNone.
func (r Result) Empty() EmptyReason {
	switch {
	case len(r.Tasks) > 0:
		return EmptyNone
	case r.Total == 0:
		return EmptyNoTasks
	default:
		return EmptyFilteredOut
	}
}

// Select returns the tasks whose category equals filter, in their original
// order. The all sentinel returns tasks itself, unchanged.
func Select(tasks []domain.Task, filter domain.Category) []domain.Task {
	if filter == domain.CategoryAll {
		return tasks
	}
	var out []domain.Task
	for _, t := range tasks {
		if t.Category == filter {
			out = append(out, t)
		}
	}
	return out
}

// Evaluate runs Select and records what is needed to explain an empty result.
func Evaluate(tasks []domain.Task, filter domain.Category) Result {
	return Result{
		Tasks:  Select(tasks, filter),
		Filter: filter,
		Total:  len(tasks),
	}
}
