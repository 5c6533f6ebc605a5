package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/todocat/internal/config"
	"github.com/alexanderramin/todocat/internal/service"
	"github.com/alexanderramin/todocat/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// NewApp wires a fresh in-memory session from cfg. The returned func
// releases the log file, if one was opened.
func NewApp(cfg config.Config) (*App, func() error, error) {
	closeFn := func() error { return nil }

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		closeFn = f.Close
		observer = newSessionObserver(f, cfg)
	}

	app := &App{
		Tasks:  service.NewTaskService(store.New(), cfg.InitialFilter, observer),
		Config: cfg,
	}
	return app, closeFn, nil
}

// newSessionObserver tags every log record with a per-run session id.
func newSessionObserver(w io.Writer, cfg config.Config) service.UseCaseObserver {
	return service.NewLogUseCaseObserver(w, cfg.LogLevel, "session_id", uuid.NewString())
}

func runTUI(app *App) error {
	var opts []tea.ProgramOption
	if app.Config.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(newAppModel(app), opts...)
	_, err := p.Run()
	return err
}
