package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/rubberband/internal/grid"
)

// ItemsLoadedMsg carries the result of LoadItemsCmd.
type ItemsLoadedMsg struct {
	Items []grid.Item
	Err   error
}

// InputHandler is a function type that handles input messages.
// This allows Update to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, m *Model) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init implements tea.Model. Mouse tracking and the alternate screen are
// configured in View.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case ItemsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.Status = "reload failed: " + msg.Err.Error()
			m.Logger.Error("reload failed", "source", m.Source, "err", msg.Err)
			return m, nil
		}
		m.Status = ""
		m.SetItems(msg.Items)
		return m, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		if inputHandler == nil {
			return m, nil
		}
		return inputHandler(msg, m)
	}
	return m, nil
}
