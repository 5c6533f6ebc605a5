package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/view"
)

// EmptyMessage returns the text shown when a filtered view has no tasks.
func EmptyMessage(r view.Result) string {
	switch r.Empty() {
	case view.EmptyFilteredOut:
		return fmt.Sprintf("「%s」のタスクはありません。", r.Filter)
	case view.EmptyNoTasks:
		return "タスクはありません。"
	default:
		return ""
	}
}

// CheckBox renders the completion marker for a task.
func CheckBox(done bool) string {
	if done {
		return StyleGreen.Render("✓")
	}
	return Dim("○")
}

// TaskText renders task text, struck through once completed.
func TaskText(t domain.Task) string {
	if t.Completed {
		return StyleDone.Render(t.Text)
	}
	return StyleFg.Render(t.Text)
}

// TaskLine renders one task as "<check> #id <badge> text".
func TaskLine(t domain.Task) string {
	return fmt.Sprintf("%s %s %s %s",
		CheckBox(t.Completed),
		Dim(fmt.Sprintf("%-4s", t.ID.String())),
		CategoryBadge(t.Category),
		TaskText(t),
	)
}

// FormatTaskList renders a filtered view for non-interactive output.
func FormatTaskList(r view.Result) string {
	var b strings.Builder
	b.WriteString(FilterSummary(r))
	b.WriteByte('\n')
	if len(r.Tasks) == 0 {
		b.WriteString("  " + Dim(EmptyMessage(r)) + "\n")
		return b.String()
	}
	for _, t := range r.Tasks {
		b.WriteString("  " + TaskLine(t) + "\n")
	}
	return b.String()
}

// FilterSummary renders "filter: <cat>  n/m shown".
func FilterSummary(r view.Result) string {
	return fmt.Sprintf("%s %s  %s",
		Dim("filter:"),
		CategoryLabel(r.Filter),
		Dim(fmt.Sprintf("%d/%d shown", len(r.Tasks), r.Total)),
	)
}

// Progress renders "done/total done".
func Progress(done, total int) string {
	if total == 0 {
		return Dim("0 tasks")
	}
	s := fmt.Sprintf("%d/%d done", done, total)
	if done == total {
		return StyleGreen.Render(s)
	}
	return Dim(s)
}

// FormatCategories renders the category table for `todocat categories`.
func FormatCategories() string {
	return Header("Categories") + "\n" + renderCategoryTable(domain.Categories())
}
