package app

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/rubberband/internal/config"
	"github.com/Gaurav-Gosain/rubberband/internal/grid"
	"github.com/Gaurav-Gosain/rubberband/internal/theme"
)

// GetCanvas composes every layer of the current frame.
func (m *Model) GetCanvas() *lipgloss.Canvas {
	// The blank base layer pins the canvas to the full window size.
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer("").Width(m.Width).Height(m.Height).Z(config.ZIndexBase).ID("base"),
	}
	if l := m.containerLayer(); l != nil {
		layers = append(layers, l)
	}
	layers = append(layers, m.cellLayers()...)
	layers = append(layers, m.overlayLayers()...)
	layers = append(layers, m.statusLayer())
	if m.ShowHelp {
		layers = append(layers, m.helpLayer())
	}

	return lipgloss.NewCanvas(layers...)
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var view tea.View
	if m.Width > 0 && m.Height > 0 {
		view.SetContent(lipgloss.Sprint(m.GetCanvas().Render()))
	}
	view.AltScreen = true

	// While dragging, report all motion so a release outside the window is
	// still followed by motion events; otherwise button-held motion is enough.
	if m.Controller.Dragging() {
		view.MouseMode = tea.MouseModeAllMotion
	} else {
		view.MouseMode = tea.MouseModeCellMotion
	}
	return view
}

// containerLayer draws the grid border once a controller is attached. The
// border sits in the grid's padding.
func (m *Model) containerLayer() *lipgloss.Layer {
	g := m.Grid
	if !g.Attached() || g.Width < 2 || g.Height < 2 || g.Layout().Padding < 1 {
		return nil
	}
	c := theme.ContainerBorder()
	if g.Dragging() {
		c = theme.ContainerBorderActive()
	}
	box := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(c).
		Width(g.Width).
		Height(g.Height).
		Render("")
	return lipgloss.NewLayer(box).X(g.X).Y(g.Y).Z(config.ZIndexContainer).ID("container")
}

// cellLayers renders every cell that fits inside the grid viewport.
func (m *Model) cellLayers() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	for _, c := range m.Grid.Cells() {
		if !c.Visible() {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(renderCell(c)).
			X(c.X).Y(c.Y).Z(config.ZIndexCells).ID(c.ID))
	}
	return layers
}

// renderCell draws a cell so its label lands on LabelRow starting one column
// in, which is where grid.HitTest expects it.
func renderCell(c *grid.Cell) string {
	border, fg := theme.CellBorder(), theme.CellFg()
	if c.Selected() {
		border, fg = theme.CellSelected()
	}
	style := lipgloss.NewStyle().
		Foreground(fg).
		Bold(c.Selected()).
		Width(c.Width).
		Height(c.Height).
		AlignVertical(lipgloss.Top)

	lines := []string{c.DisplayText()}
	if c.Height < 3 {
		return style.PaddingLeft(1).PaddingTop(c.Height / 2).Render(lines[0])
	}

	// Room below the label for the detail line.
	if c.Detail != "" && c.Height-c.Height/2-2 >= 1 {
		detail := lipgloss.NewStyle().Foreground(theme.CellDetail()).Render(truncate(c.Detail, c.Width-2))
		lines = append(lines, detail)
	}
	return style.
		Border(config.GetBorderForStyle()).
		BorderForeground(border).
		PaddingTop(c.Height/2 - 1).
		Render(strings.Join(lines, "\n"))
}

// overlayLayers draws the rubberband outline as four edge layers so the
// cells inside the rectangle stay visible.
func (m *Model) overlayLayers() []*lipgloss.Layer {
	r, ok := m.Grid.Overlay()
	if !ok {
		return nil
	}
	g := m.Grid
	origin := g.Origin()

	x0 := int(math.Floor(r.X + origin.X))
	y0 := int(math.Floor(r.Y + origin.Y))
	x1 := int(math.Floor(r.Right() + origin.X))
	y1 := int(math.Floor(r.Bottom() + origin.Y))

	x0, x1 = max(x0, g.X), min(x1, g.X+g.Width-1)
	y0, y1 = max(y0, g.Y), min(y1, g.Y+g.Height-1)
	if x1 < x0 || y1 < y0 {
		return nil
	}
	w, h := x1-x0+1, y1-y0+1

	b := lipgloss.NormalBorder()
	if config.UseASCIIOnly {
		b = lipgloss.ASCIIBorder()
	}
	style := lipgloss.NewStyle().Foreground(theme.Overlay())
	layer := func(id, s string, x, y int) *lipgloss.Layer {
		return lipgloss.NewLayer(style.Render(s)).X(x).Y(y).Z(config.ZIndexOverlay).ID(id)
	}

	switch {
	case h == 1:
		return []*lipgloss.Layer{layer("overlay-top", strings.Repeat(b.Top, w), x0, y0)}
	case w == 1:
		return []*lipgloss.Layer{layer("overlay-left", column(b.Left, h), x0, y0)}
	}

	layers := []*lipgloss.Layer{
		layer("overlay-top", b.TopLeft+strings.Repeat(b.Top, w-2)+b.TopRight, x0, y0),
		layer("overlay-bottom", b.BottomLeft+strings.Repeat(b.Bottom, w-2)+b.BottomRight, x0, y1),
	}
	if h > 2 {
		layers = append(layers,
			layer("overlay-left", column(b.Left, h-2), x0, y0+1),
			layer("overlay-right", column(b.Right, h-2), x1, y0+1),
		)
	}
	return layers
}

func column(s string, n int) string {
	return strings.TrimSuffix(strings.Repeat(s+"\n", n), "\n")
}

// statusParts splits the status bar into the selected count, the drag
// marker (empty when idle) and the remaining sections.
func (m *Model) statusParts() (count, drag string, rest []string) {
	count = fmt.Sprintf("%s %d/%d selected", config.GetSelectedIcon(), m.Selected.Len(), len(m.Grid.Cells()))
	if m.Controller.Dragging() {
		drag = config.GetDraggingIcon() + " dragging"
	}
	rest = append(rest, "source: "+m.Source)
	if m.Status != "" {
		rest = append(rest, m.Status)
	}
	rest = append(rest, "? help")
	return count, drag, rest
}

// StatusText returns the plain status bar text.
func (m *Model) StatusText() string {
	count, drag, rest := m.statusParts()
	parts := []string{count}
	if drag != "" {
		parts = append(parts, drag)
	}
	return strings.Join(append(parts, rest...), config.GetStatusSeparator())
}

func (m *Model) statusLayer() *lipgloss.Layer {
	bg, fg := theme.StatusBar()
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)
	sep := config.GetStatusSeparator()
	count, drag, rest := m.statusParts()

	line := base.Foreground(theme.StatusAccent()).Bold(true).Render(" " + count)
	if drag != "" {
		line += base.Render(sep) + base.Foreground(theme.StatusDragging()).Render(drag)
	}
	avail := max(m.Width-lipgloss.Width(line), 0)
	line += base.Width(avail).Render(truncate(sep+strings.Join(rest, sep), avail))

	return lipgloss.NewLayer(line).X(0).Y(max(m.Height-config.StatusBarHeight, 0)).Z(config.ZIndexStatus).ID("status")
}

var helpEntries = [][2]string{
	{"drag", "select cells under the rectangle"},
	{"esc", "clear selection"},
	{"r", "reload items"},
	{"?", "toggle this help"},
	{"q / ctrl+c", "quit"},
}

func (m *Model) helpLayer() *lipgloss.Layer {
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKey()).Bold(true).Width(12)
	textStyle := lipgloss.NewStyle().Foreground(theme.HelpText())

	rows := make([]string, 0, len(helpEntries)+2)
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render("rubberband"), "")
	for _, e := range helpEntries {
		rows = append(rows, keyStyle.Render(e[0])+textStyle.Render(e[1]))
	}

	box := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.HelpBorder()).
		Padding(0, 1).
		Width(min(config.HelpWidth, m.Width)).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	x := max((m.Width-lipgloss.Width(box))/2, 0)
	y := max((m.Height-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y).Z(config.ZIndexHelp).ID("help")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
