package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/todocat/internal/config"
	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/service"
	"github.com/alexanderramin/todocat/internal/teatest"
	"github.com/alexanderramin/todocat/internal/testutil"
)

// testApp returns an App over a store holding seeds, filtered to all.
func testApp(t *testing.T, seeds ...testutil.Seed) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	return &App{
		Tasks:  service.NewTaskService(testutil.NewStore(t, seeds...), domain.CategoryAll),
		Config: cfg,
	}
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func plain(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// TestDriver wraps teatest.Driver with todocat-specific inspection methods.
// It provides access to appModel internals (view stack, shared state,
// command bar focus) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Command focuses the command bar with ':', types the command, and presses
// Enter. The bar stays focused after a command runs, so the helper blurs it
// with Esc; subsequent key presses then reach the active view.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

// AddInline focuses the inline input, submits text, and blurs the input.
func (d *TestDriver) AddInline(text string) {
	d.T.Helper()
	if !d.taskList().input.Focused() {
		d.PressKey('a')
	}
	d.Type(text)
	d.PressEnter()
	d.PressEsc()
}

// PlainView returns the rendered screen without ANSI escapes.
func (d *TestDriver) PlainView() string {
	return plain(d.View())
}

// ── todocat-specific inspection ──────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) taskList() *taskListView {
	return d.appModel().viewStack[0].(*taskListView)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Tasks returns the task service behind the TUI.
func (d *TestDriver) Tasks() service.TaskService {
	return d.State().App.Tasks
}

// Cursor returns the task list cursor.
func (d *TestDriver) Cursor() int {
	return d.taskList().cursor
}

// IsQuitting returns whether the app has signaled a quit.
// Checks model.quitting (q/Ctrl+C/quitMsg) and the driver's Quitting flag
// (tea.QuitMsg from the quit command via tea.Quit).
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// CmdBarFocused returns whether the command bar currently has focus.
func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// LastOutput returns the last command output displayed in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}
