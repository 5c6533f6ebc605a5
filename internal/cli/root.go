package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/todocat/internal/cli/formatter"
	"github.com/alexanderramin/todocat/internal/config"
	"github.com/alexanderramin/todocat/internal/service"
	"github.com/spf13/cobra"
)

// App holds the task service and settings for one session.
type App struct {
	Tasks  service.TaskService
	Config config.Config
}

// Env carries process-level dependencies into the root command.
type Env struct {
	Config config.Config
	In     io.Reader
	Out    io.Writer
	Err    io.Writer // script diagnostics

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// RunTUI runs the interactive UI. Nil uses the bubbletea program.
	RunTUI func(app *App) error
}

// NewRootCmd creates the top-level "todocat" command.
func NewRootCmd(env Env) *cobra.Command {
	if env.In == nil {
		env.In = os.Stdin
	}
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.Err == nil {
		env.Err = os.Stderr
	}
	if env.RunTUI == nil {
		env.RunTUI = runTUI
	}

	var scriptPath string

	root := &cobra.Command{
		Use:           "todocat",
		Short:         "Categorized task list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg := env.Config
			if err := applyFlagOverrides(cmd.Flags(), &cfg); err != nil {
				return err
			}

			app, closeApp, err := NewApp(cfg)
			if err != nil {
				return err
			}
			defer closeInto(&err, closeApp, "closing log file")

			interactive := env.IsInteractive != nil && env.IsInteractive()
			if scriptPath == "" && interactive {
				return env.RunTUI(app)
			}

			in := env.In
			if scriptPath != "" && scriptPath != "-" {
				f, err := os.Open(scriptPath)
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				in = f
			}
			return RunScript(in, env.Out, env.Err, app.Tasks)
		},
	}

	root.SetIn(env.In)
	root.SetOut(env.Out)
	root.SetErr(env.Err)

	registerFlags(root.Flags(), env.Config)
	root.Flags().StringVar(&scriptPath, "script", "", "Read commands from a file (- for stdin) instead of starting the TUI")

	root.AddCommand(newCategoriesCmd(env))

	return root
}

func newCategoriesCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the task categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(env.Out, formatter.FormatCategories())
			return err
		},
	}
}

// closeInto runs closeFn and, when *err is still nil, reports its failure
// through err.
func closeInto(err *error, closeFn func() error, what string) {
	if cerr := closeFn(); cerr != nil && *err == nil {
		*err = fmt.Errorf("%s: %w", what, cerr)
	}
}
