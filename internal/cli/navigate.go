package cli

import (
	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// Task messages. Forms finish inside tea.Cmds, so they request mutations
// through these messages; the appModel applies them inside Update.

type createTaskMsg struct {
	text     string
	category domain.Category
}

type setFilterMsg struct {
	category domain.Category
}

// stateChangedMsg is broadcast to every view on the stack after the task
// service reports changes.
type stateChangedMsg struct {
	changes []service.StateChange
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// outputCmd returns a tea.Cmd that displays text in the content area.
// Empty output produces no message.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}
