package cli

import (
	"github.com/alexanderramin/todocat/internal/cli/formatter"
	"github.com/alexanderramin/todocat/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// todocatHuhTheme returns a huh theme using the Gruvbox palette.
func todocatHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// categoryOptions builds select options for the given categories, labeled
// with their colored names.
func categoryOptions(cats []domain.Category) []huh.Option[domain.Category] {
	opts := make([]huh.Option[domain.Category], 0, len(cats))
	for _, c := range cats {
		opts = append(opts, huh.NewOption(formatter.CategoryLabel(c), c))
	}
	return opts
}

// addTaskFields holds the values bound to the add-task form.
type addTaskFields struct {
	category domain.Category
	text     string
}

// newAddTaskForm builds the two-step form behind the "n" key.
// Empty text is not validated here; the service drops it silently.
func newAddTaskForm(fields *addTaskFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Category]().
				Title("Category").
				Options(categoryOptions(domain.AssignableCategories())...).
				Value(&fields.category),
			huh.NewInput().
				Title("Task").
				Placeholder("タスクを入力...").
				CharLimit(200).
				Value(&fields.text),
		),
	).WithTheme(todocatHuhTheme()).WithShowHelp(false)
}

// newAddTaskView wraps the add-task form in a wizard view. On completion
// it asks the appModel to create the task.
func newAddTaskView(state *SharedState) View {
	fields := &addTaskFields{category: state.NewCategory}
	form := newAddTaskForm(fields)

	done := func() tea.Cmd {
		msg := createTaskMsg{text: fields.text, category: fields.category}
		return func() tea.Msg { return msg }
	}
	return newWizardView(state, "Add Task", form, done)
}

// newFilterPickerView offers every category, the all sentinel included,
// with the current filter preselected.
func newFilterPickerView(state *SharedState) View {
	selected := state.App.Tasks.Filter()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Category]().
				Title("Filter by category").
				Options(categoryOptions(domain.Categories())...).
				Value(&selected),
		),
	).WithTheme(todocatHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		msg := setFilterMsg{category: selected}
		return func() tea.Msg { return msg }
	}
	return newWizardView(state, "Filter", form, done)
}
