package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/todocat/internal/config"
	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs the root command with args, feeding stdin and capturing
// stdout. The session is non-interactive unless env overrides it.
func executeCmd(t *testing.T, env Env, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	if env.Config == (config.Config{}) {
		env.Config = config.DefaultConfig()
	}
	env.In = strings.NewReader(stdin)
	env.Out = buf
	env.Err = buf
	if env.IsInteractive == nil {
		env.IsInteractive = func() bool { return false }
	}

	root := NewRootCmd(env)
	root.SetOut(buf)
	root.SetErr(buf)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return plain(buf.String()), err
}

func TestRootCmd_ReadsScriptFromStdinWhenNotInteractive(t *testing.T) {
	out, err := executeCmd(t, Env{}, "add 仕事 write report\nlist\n")
	require.NoError(t, err)
	assert.Contains(t, out, "write report")
	assert.Contains(t, out, "1/1 shown")
}

func TestRootCmd_ScriptFlagReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, os.WriteFile(path, []byte("add private call mom\nls\n"), 0o644))

	out, err := executeCmd(t, Env{IsInteractive: func() bool { return true }}, "", "--script", path)
	require.NoError(t, err)
	assert.Contains(t, out, "call mom")
}

func TestRootCmd_ScriptFlagMissingFile(t *testing.T) {
	_, err := executeCmd(t, Env{}, "", "--script", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening script")
}

func TestRootCmd_InteractiveRunsTUI(t *testing.T) {
	var got *App
	env := Env{
		IsInteractive: func() bool { return true },
		RunTUI: func(app *App) error {
			got = app
			return nil
		},
	}

	_, err := executeCmd(t, env, "", "--filter", "shopping", "--category", "private", "--alt-screen=false")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.CategoryShopping, got.Tasks.Filter())
	assert.Equal(t, domain.CategoryPrivate, got.Config.DefaultCategory)
	assert.False(t, got.Config.AltScreen)
}

func TestRootCmd_TUIErrorPropagates(t *testing.T) {
	env := Env{
		IsInteractive: func() bool { return true },
		RunTUI:        func(*App) error { return errors.New("no tty") },
	}
	_, err := executeCmd(t, env, "")
	assert.EqualError(t, err, "no tty")
}

func TestRootCmd_FlagsFallBackToEnvConfig(t *testing.T) {
	var got *App
	cfg := config.DefaultConfig()
	cfg.InitialFilter = domain.CategoryOther
	env := Env{
		Config:        cfg,
		IsInteractive: func() bool { return true },
		RunTUI: func(app *App) error {
			got = app
			return nil
		},
	}

	_, err := executeCmd(t, env, "")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, got.Tasks.Filter())
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--category", "すべて"}, "unknown category"},
		{[]string{"--category", "garden"}, "unknown category"},
		{[]string{"--filter", "garden"}, "unknown category"},
		{[]string{"--log-level", "loud"}, "unknown level"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := executeCmd(t, Env{}, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRootCmd_CategoriesSubcommand(t *testing.T) {
	out, err := executeCmd(t, Env{}, "", "categories")
	require.NoError(t, err)
	for _, c := range domain.Categories() {
		assert.Contains(t, out, string(c))
	}
	assert.Contains(t, out, "filter only")
}

func TestRootCmd_LogFileRecordsUseCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todocat.log")

	_, err := executeCmd(t, Env{}, "add 仕事 write report\nadd 仕事   \n",
		"--log-file", path, "--log-level", "debug")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	logs := string(data)
	assert.Contains(t, logs, "task_use_case")
	assert.Contains(t, logs, "create_task")
	assert.Contains(t, logs, "session_id")
	assert.Contains(t, logs, "empty_text")
}

func TestRootCmd_ScriptDiagnosticsGoToErr(t *testing.T) {
	var out, errOut bytes.Buffer
	root := NewRootCmd(Env{
		Config:        config.DefaultConfig(),
		In:            strings.NewReader("add 仕事 write report\nbogus\n"),
		Out:           &out,
		Err:           &errOut,
		IsInteractive: func() bool { return false },
	})
	root.SetArgs([]string{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, plain(out.String()), "write report")
	assert.NotContains(t, plain(out.String()), "unknown command")
	assert.Contains(t, plain(errOut.String()), "line 2")
	assert.Contains(t, plain(errOut.String()), "unknown command")
}

func TestCloseInto(t *testing.T) {
	failing := func() error { return errors.New("bad file descriptor") }

	var err error
	closeInto(&err, failing, "closing log file")
	require.Error(t, err)
	assert.EqualError(t, err, "closing log file: bad file descriptor")

	err = errors.New("no tty")
	closeInto(&err, failing, "closing log file")
	assert.EqualError(t, err, "no tty", "an earlier error wins")

	err = nil
	closeInto(&err, func() error { return nil }, "closing log file")
	assert.NoError(t, err)
}
