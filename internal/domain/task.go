package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TaskID identifies a task within one session. IDs are never reused.
type TaskID uint64

func (id TaskID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// ParseTaskID accepts "7" or "#7".
func ParseTaskID(s string) (TaskID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("task id %q must be a positive number", s)
	}
	return TaskID(n), nil
}

// Task is a single unit of work. Text and Category are fixed at creation;
// only Completed changes afterwards.
type Task struct {
	ID        TaskID
	Text      string
	Completed bool
	Category  Category
}

// NormalizeText trims surrounding whitespace (including full-width spaces)
// from raw task input.
func NormalizeText(raw string) string {
	return strings.TrimSpace(raw)
}
