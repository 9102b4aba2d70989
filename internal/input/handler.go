// Package input routes Bubble Tea key and mouse messages to the app Model.
//
// Mouse presses inside the grid become controller pointer-downs. Motion and
// releases anywhere on screen go through the Model's pointer dispatcher, so
// an active drag keeps tracking after the pointer leaves the grid.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/rubberband/internal/app"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, m *app.Model) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, m)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, m)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, m)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, m)
	}
	return m, nil
}

// FilterMouseMotion drops motion events while no drag is active. Pass it to
// tea.WithFilter; in all-motion mode the terminal reports every pointer move.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	m, ok := model.(*app.Model)
	if !ok || m.Controller.Dragging() {
		return msg
	}
	return nil
}
