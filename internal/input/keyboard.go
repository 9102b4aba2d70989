package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/rubberband/internal/app"
)

// HandleKeyPress handles all keyboard input.
func HandleKeyPress(msg tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Controller.Close()
		return m, tea.Quit
	case "esc":
		if m.ShowHelp {
			m.ShowHelp = false
			return m, nil
		}
		m.ClearSelection()
	case "?":
		m.ToggleHelp()
	case "r":
		return m, m.Reload()
	}
	return m, nil
}
