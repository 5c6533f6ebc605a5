package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/todocat/internal/cli/formatter"
	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/service"
	"github.com/alexanderramin/todocat/internal/store"
	"github.com/alexanderramin/todocat/internal/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// taskListKeys are the bindings active while the inline input is blurred.
type taskListKeys struct {
	Up, Down      key.Binding
	Toggle        key.Binding
	Delete        key.Binding
	Input         key.Binding
	Form          key.Binding
	Filter        key.Binding
	PrevFilter    key.Binding
	NextFilter    key.Binding
	FilterByDigit key.Binding
}

func defaultTaskListKeys() taskListKeys {
	return taskListKeys{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:        key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle done")),
		Delete:        key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Input:         key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add")),
		Form:          key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add form")),
		Filter:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		PrevFilter:    key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "cycle filter")),
		NextFilter:    key.NewBinding(key.WithKeys("]")),
		FilterByDigit: key.NewBinding(key.WithKeys("0", "1", "2", "3", "4"), key.WithHelp("0-4", "jump filter")),
	}
}

// taskListView is the home view: an inline input for new tasks above the
// filtered task list. It renders straight from the task service; the
// service memoizes the filtered view, so recomputing per frame is cheap.
type taskListView struct {
	state  *SharedState
	keys   taskListKeys
	input  textinput.Model
	cursor int

	// flash is a one-line notice about the last change, cleared on the
	// next key press.
	flash string
}

func newTaskListView(state *SharedState) *taskListView {
	ti := textinput.New()
	ti.Placeholder = "タスクを入力..."
	ti.CharLimit = 200
	ti.Prompt = "› "

	return &taskListView{
		state: state,
		keys:  defaultTaskListKeys(),
		input: ti,
	}
}

func (v *taskListView) ID() ViewID    { return ViewTaskList }
func (v *taskListView) Title() string { return "Tasks" }

func (v *taskListView) ShortHelp() []key.Binding {
	if v.input.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	}
	return []key.Binding{
		v.keys.Toggle, v.keys.Delete, v.keys.Input, v.keys.Form,
		v.keys.Filter, v.keys.PrevFilter, v.keys.FilterByDigit,
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// CapturesInput is true while the inline input has focus.
func (v *taskListView) CapturesInput() bool {
	return v.input.Focused()
}

func (v *taskListView) Init() tea.Cmd {
	return nil
}

func (v *taskListView) visible() view.Result {
	return v.state.App.Tasks.VisibleTasks()
}

func (v *taskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		v.applyChanges(msg.changes)
		return v, nil

	case tea.KeyMsg:
		v.flash = ""
		if v.input.Focused() {
			return v.updateInput(msg)
		}
		return v.updateList(msg)
	}

	if v.input.Focused() {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *taskListView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if _, ok := v.state.App.Tasks.CreateTask(v.input.Value(), v.state.NewCategory); ok {
			v.input.Reset()
		}
		return v, nil
	case tea.KeyTab:
		v.state.NewCategory = domain.NextCategory(v.state.NewCategory, true)
		return v, nil
	case tea.KeyShiftTab:
		v.state.NewCategory = domain.PrevCategory(v.state.NewCategory, true)
		return v, nil
	case tea.KeyEsc:
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *taskListView) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := v.state.App.Tasks
	visible := v.visible().Tasks

	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Toggle):
		if v.cursor < len(visible) {
			tasks.ToggleTask(visible[v.cursor].ID)
		}
	case key.Matches(msg, v.keys.Delete):
		if v.cursor < len(visible) {
			tasks.DeleteTask(visible[v.cursor].ID)
		}
	case key.Matches(msg, v.keys.Input):
		return v, v.input.Focus()
	case key.Matches(msg, v.keys.Form):
		return v, pushView(newAddTaskView(v.state))
	case key.Matches(msg, v.keys.Filter):
		return v, pushView(newFilterPickerView(v.state))
	case key.Matches(msg, v.keys.PrevFilter):
		tasks.SetFilter(domain.PrevCategory(tasks.Filter(), false))
	case key.Matches(msg, v.keys.NextFilter):
		tasks.SetFilter(domain.NextCategory(tasks.Filter(), false))
	case key.Matches(msg, v.keys.FilterByDigit):
		idx := int(msg.String()[0] - '0')
		if cats := domain.Categories(); idx < len(cats) {
			tasks.SetFilter(cats[idx])
		}
	}
	return v, nil
}

// applyChanges keeps the cursor in range and on the task it pointed at
// where possible, and records a flash line for the latest change.
func (v *taskListView) applyChanges(changes []service.StateChange) {
	for _, c := range changes {
		switch {
		case c.Change == nil:
			v.cursor = 0
		case c.Change.Kind == store.ChangeCreated:
			v.flash = formatter.OK("Added " + formatter.CategoryLabel(c.Change.Task.Category) + " " + c.Change.Task.Text)
		case c.Change.Kind == store.ChangeDeleted:
			v.flash = formatter.Dim("Deleted " + c.Change.Task.Text)
		}
	}
	v.clampCursor()
}

func (v *taskListView) clampCursor() {
	n := len(v.visible().Tasks)
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *taskListView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(v.renderInputLine())
	b.WriteString("\n\n")

	r := v.visible()
	b.WriteString("  " + formatter.FilterSummary(r) + "\n\n")

	if len(r.Tasks) == 0 {
		b.WriteString("  " + formatter.Dim(formatter.EmptyMessage(r)) + "\n")
	} else {
		rows := v.windowRows(len(r.Tasks))
		for i := rows.start; i < rows.end; i++ {
			b.WriteString(v.renderRow(r.Tasks[i], i == v.cursor))
			b.WriteByte('\n')
		}
		if rows.start > 0 || rows.end < len(r.Tasks) {
			b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d–%d of %d", rows.start+1, rows.end, len(r.Tasks))) + "\n")
		}
	}

	if v.flash != "" {
		b.WriteString("\n  " + v.flash + "\n")
	}
	return b.String()
}

func (v *taskListView) renderInputLine() string {
	cat := formatter.CategoryBadge(v.state.NewCategory)
	if !v.input.Focused() {
		return "  " + cat + " " + formatter.Dim("press a to add a task")
	}
	return "  " + cat + " " + v.input.View()
}

func (v *taskListView) renderRow(t domain.Task, isCursor bool) string {
	cursor := "  "
	if isCursor && !v.input.Focused() {
		cursor = formatter.StyleGreen.Render("▸ ")
	}
	line := cursor + formatter.TaskLine(t)
	if w := v.state.Width; w > 0 {
		line = lipgloss.NewStyle().MaxWidth(w).Render(line)
	}
	return line
}

type rowWindow struct{ start, end int }

// windowRows picks the slice of rows to draw so the cursor stays visible
// when the list is taller than the content area.
func (v *taskListView) windowRows(n int) rowWindow {
	// Input line, summary and blank separators take 5 lines; keep one for
	// the range indicator.
	height := v.state.ContentHeight() - 6
	if v.state.Height == 0 || height >= n {
		return rowWindow{0, n}
	}
	if height < 1 {
		height = 1
	}
	start := v.cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return rowWindow{start, start + height}
}
