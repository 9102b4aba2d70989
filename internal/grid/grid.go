// Package grid lays out selectable cells on the terminal screen.
//
// A Grid is the rubberband container and each Cell is a candidate. All
// positions are in terminal cells relative to the top-left of the screen.
package grid

import (
	"github.com/Gaurav-Gosain/rubberband/internal/selection"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

// Layout controls cell geometry.
type Layout struct {
	// Columns is the number of cells per row. Zero fits as many as the
	// viewport allows.
	Columns    int
	CellWidth  int
	CellHeight int
	Gap        int
	Padding    int
}

// DefaultLayout returns the layout used when nothing is configured.
func DefaultLayout() Layout {
	return Layout{
		Columns:    0,
		CellWidth:  16,
		CellHeight: 3,
		Gap:        1,
		Padding:    1,
	}
}

func (l Layout) normalized() Layout {
	if l.CellWidth < 3 {
		l.CellWidth = 3
	}
	if l.CellHeight < 1 {
		l.CellHeight = 1
	}
	if l.Gap < 0 {
		l.Gap = 0
	}
	if l.Padding < 0 {
		l.Padding = 0
	}
	if l.Columns < 0 {
		l.Columns = 0
	}
	return l
}

// Item is the content of one cell.
type Item struct {
	Text   string
	Detail string
}

// Grid is a container of cells. It implements selection.Surface,
// selection.ContainerMarker, selection.DragMarker and selection.Node.
type Grid struct {
	X      int
	Y      int
	Width  int
	Height int

	layout   Layout
	cells    []*Cell
	columns  int
	overlay  *Overlay
	dragging bool
	attached bool
}

// New creates a grid occupying the given screen rectangle.
func New(x, y, width, height int, layout Layout, items []Item) *Grid {
	g := &Grid{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		layout: layout.normalized(),
	}
	g.SetItems(items)
	return g
}

// SetItems replaces every cell. Any selection markers are lost with them.
// A new cell whose item equals one already shown keeps that cell's ID, so
// a reload of mostly unchanged items keeps stable identities.
func (g *Grid) SetItems(items []Item) {
	previous := make(map[Item][]string, len(g.cells))
	for _, c := range g.cells {
		k := c.Item()
		previous[k] = append(previous[k], c.ID)
	}

	g.cells = make([]*Cell, len(items))
	for i, it := range items {
		id := uuid.New().String()
		if ids := previous[it]; len(ids) > 0 {
			id, previous[it] = ids[0], ids[1:]
		}
		c := &Cell{
			ID:     id,
			Index:  i,
			Text:   it.Text,
			Detail: it.Detail,
			grid:   g,
		}
		c.label = &Label{cell: c}
		g.cells[i] = c
	}
	g.relayout()
}

// Resize moves the grid and re-flows its cells.
func (g *Grid) Resize(x, y, width, height int) {
	g.X, g.Y, g.Width, g.Height = x, y, width, height
	g.relayout()
}

// Layout returns the active layout.
func (g *Grid) Layout() Layout {
	return g.layout
}

// Columns returns the number of columns currently in use.
func (g *Grid) Columns() int {
	return g.columns
}

func (g *Grid) relayout() {
	l := g.layout
	cols := l.Columns
	if cols == 0 {
		usable := g.Width - 2*l.Padding + l.Gap
		cols = usable / (l.CellWidth + l.Gap)
	}
	if cols < 1 {
		cols = 1
	}
	g.columns = cols

	for i, c := range g.cells {
		col, row := i%cols, i/cols
		c.X = g.X + l.Padding + col*(l.CellWidth+l.Gap)
		c.Y = g.Y + l.Padding + row*(l.CellHeight+l.Gap)
		c.Width = l.CellWidth
		c.Height = l.CellHeight
	}
}

// Origin implements selection.Surface.
func (g *Grid) Origin() selection.Point {
	return selection.Point{X: float64(g.X), Y: float64(g.Y)}
}

// ScrollSize implements selection.Surface. The grid does not scroll, so
// the extent is the viewport.
func (g *Grid) ScrollSize() (float64, float64) {
	return float64(g.Width), float64(g.Height)
}

// Candidates implements selection.Surface. Cells that do not fit entirely
// inside the viewport are not drawn and cannot be selected.
func (g *Grid) Candidates() []selection.Candidate {
	out := make([]selection.Candidate, 0, len(g.cells))
	for _, c := range g.cells {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// NewOverlay implements selection.Surface.
func (g *Grid) NewOverlay() selection.Overlay {
	o := &Overlay{grid: g}
	g.overlay = o
	return o
}

// SetDragging implements selection.DragMarker.
func (g *Grid) SetDragging(active bool) {
	g.dragging = active
}

// MarkContainer implements selection.ContainerMarker.
func (g *Grid) MarkContainer() {
	g.attached = true
}

// Attached reports whether a controller has been created over the grid.
func (g *Grid) Attached() bool {
	return g.attached
}

// Dragging reports whether the grid is marked as the target of a drag.
func (g *Grid) Dragging() bool {
	return g.dragging
}

// ParentNode implements selection.Node. The grid is the root.
func (g *Grid) ParentNode() selection.Node {
	return nil
}

// Cells returns the cells in layout order.
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// SelectedCount returns how many cells carry the selected marker.
func (g *Grid) SelectedCount() int {
	n := 0
	for _, c := range g.cells {
		if c.selected {
			n++
		}
	}
	return n
}

// Contains reports whether the screen position is inside the grid viewport.
func (g *Grid) Contains(x, y int) bool {
	return x >= g.X && y >= g.Y && x < g.X+g.Width && y < g.Y+g.Height
}

// HitTest returns the deepest node under a screen position: a cell's label,
// the cell, the grid itself, or nil outside the grid.
func (g *Grid) HitTest(x, y int) selection.Node {
	if !g.Contains(x, y) {
		return nil
	}
	for _, c := range g.cells {
		if !c.Visible() || !c.contains(x, y) {
			continue
		}
		if c.labelContains(x, y) {
			return c.label
		}
		return c
	}
	return g
}

// Overlay returns the live overlay rectangle in container space, if a drag
// has drawn one.
func (g *Grid) Overlay() (selection.Rectangle, bool) {
	if g.overlay == nil || !g.overlay.shown {
		return selection.Rectangle{}, false
	}
	return g.overlay.bounds, true
}

// Overlay is the rubberband rectangle attached to a grid.
type Overlay struct {
	grid   *Grid
	bounds selection.Rectangle
	shown  bool
}

// SetBounds implements selection.Overlay.
func (o *Overlay) SetBounds(r selection.Rectangle) {
	o.bounds = r
	o.shown = true
}

// Remove implements selection.Overlay.
func (o *Overlay) Remove() {
	if o.grid.overlay == o {
		o.grid.overlay = nil
	}
}

// Cell is one selectable box. It implements selection.Candidate and
// selection.Node.
type Cell struct {
	ID     string
	Index  int
	Text   string
	Detail string

	X      int
	Y      int
	Width  int
	Height int

	selected bool
	grid     *Grid
	label    *Label
}

// Bounds implements selection.Candidate.
func (c *Cell) Bounds() selection.Rectangle {
	return selection.Rectangle{
		X:      float64(c.X),
		Y:      float64(c.Y),
		Width:  float64(c.Width),
		Height: float64(c.Height),
	}
}

// Item returns the content the cell was built from.
func (c *Cell) Item() Item {
	return Item{Text: c.Text, Detail: c.Detail}
}

// Visible reports whether the whole cell lies inside the grid viewport.
func (c *Cell) Visible() bool {
	g := c.grid
	return c.X >= g.X && c.Y >= g.Y &&
		c.X+c.Width <= g.X+g.Width && c.Y+c.Height <= g.Y+g.Height
}

// SetSelected implements selection.Candidate.
func (c *Cell) SetSelected(selected bool) {
	c.selected = selected
}

// Selected reports the selected marker.
func (c *Cell) Selected() bool {
	return c.selected
}

// ParentNode implements selection.Node.
func (c *Cell) ParentNode() selection.Node {
	return c.grid
}

// Label returns the node for the cell's text line.
func (c *Cell) Label() *Label {
	return c.label
}

// LabelRow is the screen row the label is drawn on.
func (c *Cell) LabelRow() int {
	return c.Y + c.Height/2
}

// DisplayText returns Text truncated to fit inside the cell border.
func (c *Cell) DisplayText() string {
	inner := c.Width - 2
	if inner <= 0 {
		return ""
	}
	if ansi.StringWidth(c.Text) <= inner {
		return c.Text
	}
	return ansi.Truncate(c.Text, inner, "…")
}

func (c *Cell) contains(x, y int) bool {
	return x >= c.X && y >= c.Y && x < c.X+c.Width && y < c.Y+c.Height
}

func (c *Cell) labelContains(x, y int) bool {
	w := ansi.StringWidth(c.DisplayText())
	return y == c.LabelRow() && x >= c.X+1 && x < c.X+1+w
}

// Label is the text inside a cell. Pointer-downs on it count as landing on
// the cell.
type Label struct {
	cell *Cell
}

// ParentNode implements selection.Node.
func (l *Label) ParentNode() selection.Node {
	return l.cell
}

// Cell returns the owning cell.
func (l *Label) Cell() *Cell {
	return l.cell
}
