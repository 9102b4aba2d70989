package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/rubberband/internal/app"
	"github.com/Gaurav-Gosain/rubberband/internal/selection"
)

// ParseButton maps a [selection] button name to a mouse button. Unknown
// names fall back to the left button.
func ParseButton(name string) tea.MouseButton {
	switch name {
	case "middle":
		return tea.MouseMiddle
	case "right":
		return tea.MouseRight
	default:
		return tea.MouseLeft
	}
}

// pointerEvent converts a terminal cell to a surface position. The point is
// the centre of the cell, so a press on a cell's first column already
// overlaps it.
func pointerEvent(x, y int, target selection.Node) selection.PointerEvent {
	return selection.PointerEvent{
		X:      float64(x) + 0.5,
		Y:      float64(y) + 0.5,
		Target: target,
	}
}

func handleMouseClick(msg tea.MouseClickMsg, m *app.Model) (*app.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}
	if mouse.Button != m.Button {
		return m, nil
	}

	target := m.Grid.HitTest(mouse.X, mouse.Y)
	if target == nil {
		// Presses outside the container never start a drag.
		return m, nil
	}
	m.Controller.PointerDown(pointerEvent(mouse.X, mouse.Y, target))
	return m, nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, m *app.Model) (*app.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.Pointer.Move(pointerEvent(mouse.X, mouse.Y, m.Grid.HitTest(mouse.X, mouse.Y)))
	return m, nil
}

func handleMouseRelease(msg tea.MouseReleaseMsg, m *app.Model) (*app.Model, tea.Cmd) {
	mouse := msg.Mouse()
	// Some terminals report releases without a button.
	if mouse.Button != m.Button && mouse.Button != tea.MouseNone {
		return m, nil
	}
	m.Pointer.Up(pointerEvent(mouse.X, mouse.Y, m.Grid.HitTest(mouse.X, mouse.Y)))
	return m, nil
}
