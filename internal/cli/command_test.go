package cli

import (
	"testing"

	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_Valid(t *testing.T) {
	tests := []struct {
		line string
		want command
	}{
		{"add 仕事 write report", command{verb: verbAdd, category: domain.CategoryWork, text: "write report"}},
		{"add shopping  two  spaces", command{verb: verbAdd, category: domain.CategoryShopping, text: " two  spaces"}},
		{"add 仕事　牛乳", command{verb: verbAdd, category: domain.CategoryWork, text: "牛乳"}},
		{"toggle\u30003", command{verb: verbToggle, id: 3}},
		{"ADD Private call mom", command{verb: verbAdd, category: domain.CategoryPrivate, text: "call mom"}},
		{"add other", command{verb: verbAdd, category: domain.CategoryOther}},
		{"toggle 3", command{verb: verbToggle, id: 3}},
		{"done #12", command{verb: verbToggle, id: 12}},
		{"delete 4", command{verb: verbDelete, id: 4}},
		{"rm #4", command{verb: verbDelete, id: 4}},
		{"filter すべて", command{verb: verbFilter, category: domain.CategoryAll}},
		{"filter all", command{verb: verbFilter, category: domain.CategoryAll}},
		{"filter 買い物", command{verb: verbFilter, category: domain.CategoryShopping}},
		{"list", command{verb: verbList}},
		{"ls", command{verb: verbList}},
		{"categories", command{verb: verbCategories}},
		{"help", command{verb: verbHelp}},
		{"exit", command{verb: verbQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"frobnicate", ErrUnknownCommand},
		{"add", ErrMissingArgument},
		{"add gardening dig", ErrUnknownCategory},
		{"add すべて sentinel", ErrUnknownCategory},
		{"toggle", ErrMissingArgument},
		{"toggle abc", ErrInvalidID},
		{"delete 0", ErrInvalidID},
		{"rm #-1", ErrInvalidID},
		{"filter", ErrMissingArgument},
		{"filter nope", ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := parseCommand(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecuteCommand_Mutations(t *testing.T) {
	app := testApp(t)

	res := executeCommand(app.Tasks, command{verb: verbAdd, category: domain.CategoryWork, text: "  write report "})
	assert.Contains(t, plain(res.output), "Added")
	assert.Contains(t, plain(res.output), "write report")
	task, ok := app.Tasks.Snapshot().Get(1)
	require.True(t, ok)
	assert.Equal(t, "write report", task.Text)

	res = executeCommand(app.Tasks, command{verb: verbToggle, id: 1})
	assert.Contains(t, plain(res.output), "write report")
	task, _ = app.Tasks.Snapshot().Get(1)
	assert.True(t, task.Completed)

	res = executeCommand(app.Tasks, command{verb: verbDelete, id: 1})
	assert.Contains(t, plain(res.output), "Deleted #1 write report")
	assert.Equal(t, 0, app.Tasks.Snapshot().Len())
}

func TestExecuteCommand_SilentNoOps(t *testing.T) {
	app := testApp(t, testutil.MixedSeeds()...)
	before := app.Tasks.Snapshot().Version()

	for _, cmd := range []command{
		{verb: verbAdd, category: domain.CategoryWork, text: "   "},
		{verb: verbToggle, id: 99},
		{verb: verbDelete, id: 99},
	} {
		res := executeCommand(app.Tasks, cmd)
		assert.Empty(t, res.output, cmd.verb)
		assert.False(t, res.quit)
	}
	assert.Equal(t, before, app.Tasks.Snapshot().Version())
}

func TestExecuteCommand_FilterAndList(t *testing.T) {
	app := testApp(t, testutil.MixedSeeds()...)

	res := executeCommand(app.Tasks, command{verb: verbFilter, category: domain.CategoryShopping})
	assert.Empty(t, res.output)
	assert.Equal(t, domain.CategoryShopping, app.Tasks.Filter())

	out := plain(executeCommand(app.Tasks, command{verb: verbList}).output)
	assert.Contains(t, out, "buy milk")
	assert.Contains(t, out, "1/4 shown")
	assert.NotContains(t, out, "write report")
}

func TestExecuteCommand_ListEmptyMessages(t *testing.T) {
	app := testApp(t)
	out := plain(executeCommand(app.Tasks, command{verb: verbList}).output)
	assert.Contains(t, out, "タスクはありません。")

	app = testApp(t, testutil.NewSeed("call mom", domain.CategoryPrivate))
	app.Tasks.SetFilter(domain.CategoryWork)
	out = plain(executeCommand(app.Tasks, command{verb: verbList}).output)
	assert.Contains(t, out, "「仕事」のタスクはありません。")
}

func TestExecuteCommand_InfoAndQuit(t *testing.T) {
	app := testApp(t)

	assert.Contains(t, plain(executeCommand(app.Tasks, command{verb: verbCategories}).output), "プライベート")
	assert.Contains(t, plain(executeCommand(app.Tasks, command{verb: verbHelp}).output), "toggle")
	assert.True(t, executeCommand(app.Tasks, command{verb: verbQuit}).quit)
}

func TestCutWord(t *testing.T) {
	w, rest := cutWord("  add 仕事 text")
	assert.Equal(t, "add", w)
	assert.Equal(t, "仕事 text", rest)

	// Full-width space (U+3000) separates words like an ASCII space.
	w, rest = cutWord("　仕事　牛乳　パン")
	assert.Equal(t, "仕事", w)
	assert.Equal(t, "牛乳　パン", rest)

	w, rest = cutWord("filter\t買い物")
	assert.Equal(t, "filter", w)
	assert.Equal(t, "買い物", rest)

	w, rest = cutWord("list")
	assert.Equal(t, "list", w)
	assert.Empty(t, rest)
}
