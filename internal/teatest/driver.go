// Package teatest drives a bubbletea model synchronously in tests.
//
// The driver plays the role of tea.Program for the TUI: each message goes
// straight to Update, and the Cmds that come back are run in the order the
// runtime would deliver their messages. Timer-driven Cmds from the bubbles
// cursor never settle inside a test, so they are dropped.
package teatest

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// maxSteps bounds how many Cmds one Send may run, so a model that keeps
	// re-arming itself cannot hang a test.
	maxSteps = 256

	// settle is how long a Cmd may take before it counts as a timer.
	// Message factories return at once; a cursor blink waits ~500ms.
	settle = 10 * time.Millisecond

	cursorPkg = "github.com/charmbracelet/bubbles/cursor"
)

// Driver feeds messages to Model and runs what it returns.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records a tea.QuitMsg. The runtime consumes that message
	// itself, so the model may not keep any trace of it.
	Quitting bool
}

// Option configures a Driver in New.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call DrainInit to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init())
}

// Send delivers msg and runs the resulting Cmds. It does nothing once the
// model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd)
}

func (d *Driver) press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// PressKey types a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressSpace sends the space bar the way a terminal reports it: KeySpace
// carrying a ' ' rune.
func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.press(tea.KeyEnter) }
func (d *Driver) PressEsc() { d.T.Helper(); d.press(tea.KeyEsc) }
func (d *Driver) PressTab() { d.T.Helper(); d.press(tea.KeyTab) }
func (d *Driver) PressShiftTab() { d.T.Helper(); d.press(tea.KeyShiftTab) }
func (d *Driver) PressDown() { d.T.Helper(); d.press(tea.KeyDown) }

// Type sends s one key per rune. Japanese text arrives rune by rune too,
// as it would after an IME commits it.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		if r == ' ' {
			d.PressSpace()
		} else {
			d.PressKey(r)
		}
	}
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// run executes cmd and every Cmd that follows from it, depth first: the
// children of a batch run in order, each to completion before the next.
func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	pending := []tea.Cmd{cmd}
	for steps := 0; len(pending) > 0; steps++ {
		if steps == maxSteps {
			d.T.Logf("teatest: stopped after %d commands", maxSteps)
			return
		}
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if next == nil {
			continue
		}

		switch msg := settleCmd(next).(type) {
		case nil:
		case tea.BatchMsg:
			for i := len(msg) - 1; i >= 0; i-- {
				pending = append(pending, msg[i])
			}
		case tea.QuitMsg:
			d.Quitting = true
			d.Model, _ = d.Model.Update(msg)
			return
		default:
			if fromCursor(msg) {
				continue
			}
			var follow tea.Cmd
			d.Model, follow = d.Model.Update(msg)
			pending = append(pending, follow)
		}
	}
}

// settleCmd returns cmd's message, or nil when cmd is still waiting on a
// timer after settle.
func settleCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(settle):
		return nil
	}
}

// fromCursor reports whether msg belongs to the bubbles cursor, whose
// blink messages only schedule more blinks. Both the text inputs and the
// huh fields produce them.
func fromCursor(msg tea.Msg) bool {
	t := reflect.TypeOf(msg)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath() == cursorPkg
}
