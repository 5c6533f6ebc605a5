package cli

import (
	"github.com/alexanderramin/todocat/internal/domain"
	"github.com/alexanderramin/todocat/internal/service"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// NewCategory is preselected for the next task the user adds.
	NewCategory domain.Category

	// Terminal dimensions
	Width  int
	Height int

	// pending collects service notifications until the appModel
	// broadcasts them at the end of Update.
	pending []service.StateChange
}

func newSharedState(app *App) *SharedState {
	cat := app.Config.DefaultCategory
	if !cat.Assignable() {
		cat = domain.DefaultNewCategory
	}
	return &SharedState{App: app, NewCategory: cat}
}

// takePending returns and clears the queued state changes.
func (s *SharedState) takePending() []service.StateChange {
	p := s.pending
	s.pending = nil
	return p
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
