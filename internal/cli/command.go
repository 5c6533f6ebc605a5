package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexanderramin/todocat/internal/cli/formatter"
	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/service"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidID       = errors.New("invalid task id")
	ErrUnknownCategory = errors.New("unknown category")
)

// Command verbs understood by the command bar and script mode.
const (
	verbAdd        = "add"
	verbToggle     = "toggle"
	verbDelete     = "delete"
	verbFilter     = "filter"
	verbList       = "list"
	verbCategories = "categories"
	verbHelp       = "help"
	verbQuit       = "quit"
)

var verbAliases = map[string]string{
	"rm":   verbDelete,
	"done": verbToggle,
	"ls":   verbList,
	"exit": verbQuit,
}

// commandNames lists the verbs offered as suggestions.
func commandNames() []string {
	return []string{verbAdd, verbToggle, verbDelete, verbFilter, verbList, verbCategories, verbHelp, verbQuit}
}

// command is one parsed input line.
type command struct {
	verb     string
	category domain.Category
	text     string // raw task text; the store trims it
	id       domain.TaskID
}

// commandResult is what executing a command produced.
type commandResult struct {
	output string
	quit   bool
}

// parseCommand parses one line of the command language. Task text keeps
// its inner spacing.
func parseCommand(line string) (command, error) {
	verb, rest := cutWord(line)
	verb = strings.ToLower(verb)
	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}

	switch verb {
	case verbAdd:
		catArg, text := cutWord(rest)
		if catArg == "" {
			return command{}, fmt.Errorf("add: category: %w", ErrMissingArgument)
		}
		cat, ok := domain.ParseCategory(catArg)
		if !ok || !cat.Assignable() {
			return command{}, fmt.Errorf("add %q: %w", catArg, ErrUnknownCategory)
		}
		return command{verb: verb, category: cat, text: text}, nil

	case verbToggle, verbDelete:
		idArg, _ := cutWord(rest)
		if idArg == "" {
			return command{}, fmt.Errorf("%s: id: %w", verb, ErrMissingArgument)
		}
		id, err := domain.ParseTaskID(idArg)
		if err != nil {
			return command{}, fmt.Errorf("%s: %w: %v", verb, ErrInvalidID, err)
		}
		return command{verb: verb, id: id}, nil

	case verbFilter:
		catArg, _ := cutWord(rest)
		if catArg == "" {
			return command{}, fmt.Errorf("filter: category: %w", ErrMissingArgument)
		}
		cat, ok := domain.ParseCategory(catArg)
		if !ok {
			return command{}, fmt.Errorf("filter %q: %w", catArg, ErrUnknownCategory)
		}
		return command{verb: verb, category: cat}, nil

	case verbList, verbCategories, verbHelp, verbQuit:
		return command{verb: verb}, nil
	}

	return command{}, fmt.Errorf("%q: %w (type 'help')", verb, ErrUnknownCommand)
}

// executeCommand applies cmd to the task service. Rejected task operations
// produce no output, matching the silent behavior of the service itself.
func executeCommand(tasks service.TaskService, cmd command) commandResult {
	switch cmd.verb {
	case verbAdd:
		task, ok := tasks.CreateTask(cmd.text, cmd.category)
		if !ok {
			return commandResult{}
		}
		return commandResult{output: formatter.OK("Added " + formatter.TaskLine(task))}

	case verbToggle:
		if !tasks.ToggleTask(cmd.id) {
			return commandResult{}
		}
		task, _ := tasks.Snapshot().Get(cmd.id)
		return commandResult{output: formatter.TaskLine(task)}

	case verbDelete:
		task, found := tasks.Snapshot().Get(cmd.id)
		if !found || !tasks.DeleteTask(cmd.id) {
			return commandResult{}
		}
		return commandResult{output: formatter.OK("Deleted " + formatter.Dim(task.ID.String()) + " " + task.Text)}

	case verbFilter:
		tasks.SetFilter(cmd.category)
		return commandResult{}

	case verbList:
		return commandResult{output: formatter.FormatTaskList(tasks.VisibleTasks())}

	case verbCategories:
		return commandResult{output: formatter.FormatCategories()}

	case verbHelp:
		return commandResult{output: formatter.FormatCommandHelp()}

	case verbQuit:
		return commandResult{quit: true}
	}
	return commandResult{}
}

// cutWord splits s into its first whitespace-delimited word and the rest,
// with the separator removed.
func cutWord(s string) (word, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:]
}
