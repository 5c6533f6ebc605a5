package teatest

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type noteMsg string

// recorder logs every message it sees and answers a few with Cmds.
type recorder struct {
	seen []string
}

func (r *recorder) Init() tea.Cmd {
	return tea.Batch(note("a"), note("b"))
}

func (r *recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noteMsg:
		r.seen = append(r.seen, string(msg))
		if msg == "a" {
			return r, note("a1")
		}
	case tea.KeyMsg:
		r.seen = append(r.seen, "key:"+msg.String())
		switch msg.String() {
		case "q":
			return r, tea.Quit
		case "b":
			return r, func() tea.Msg { return cursor.BlinkMsg{} }
		case "s":
			return r, func() tea.Msg {
				time.Sleep(time.Second)
				return noteMsg("late")
			}
		}
	case tea.WindowSizeMsg:
		r.seen = append(r.seen, "size")
	case cursor.BlinkMsg:
		r.seen = append(r.seen, "blink")
	}
	return r, nil
}

func (r *recorder) View() string { return strings.Join(r.seen, ",") }

func note(s string) tea.Cmd {
	return func() tea.Msg { return noteMsg(s) }
}

func TestDriver_BatchRunsDepthFirst(t *testing.T) {
	d := New(t, &recorder{}, WithSize(80, 24))
	d.DrainInit()
	assert.Equal(t, "size,a,a1,b", d.View())
}

func TestDriver_DropsCursorAndSlowCmds(t *testing.T) {
	d := New(t, &recorder{})
	d.PressKey('b')
	d.PressKey('s')
	assert.Equal(t, "key:b,key:s", d.View())
}

func TestDriver_QuitStopsDelivery(t *testing.T) {
	d := New(t, &recorder{})
	d.Type("x q")
	assert.True(t, d.Quitting)
	assert.Equal(t, "key:x,key: ,key:q", d.View())

	d.PressEnter()
	assert.Equal(t, "key:x,key: ,key:q", d.View())
}
