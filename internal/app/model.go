// Package app implements the Bubble Tea host for rubberband selection.
//
// The Model owns a grid of cells, a selection controller over that grid and
// the pointer dispatcher that stands in for the whole screen. Mouse and key
// routing lives in the input package, which is registered with
// SetInputHandler to avoid an import cycle.
package app

import (
	"context"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/rubberband/internal/config"
	"github.com/Gaurav-Gosain/rubberband/internal/grid"
	"github.com/Gaurav-Gosain/rubberband/internal/pointer"
	"github.com/Gaurav-Gosain/rubberband/internal/selection"
)

// Options configures a Model.
type Options struct {
	Layout grid.Layout
	Items  []grid.Item

	// Button starts drags. Defaults to tea.MouseLeft.
	Button tea.MouseButton

	// Source and Count are used when reloading items.
	Source string
	Count  int

	// Load replaces the Source lookup on reload when set.
	Load func(context.Context) ([]grid.Item, error)

	Logger *log.Logger

	// OnSelect is called after every selection change.
	OnSelect func(selection.Selection)
}

// Model is the application state.
type Model struct {
	Grid       *grid.Grid
	Controller *selection.Controller
	Pointer    *pointer.Dispatcher

	Width  int
	Height int

	Selected selection.Selection
	ShowHelp bool
	Button   tea.MouseButton
	Source   string
	Count    int

	// Status is a transient message shown in the status bar, such as a
	// failed reload.
	Status string

	Logger   *log.Logger
	OnSelect func(selection.Selection)

	load    func(context.Context) ([]grid.Item, error)
	loading bool
}

// New creates a Model. The grid has no size until the first
// tea.WindowSizeMsg arrives.
func New(opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	button := opts.Button
	if button == tea.MouseNone {
		button = tea.MouseLeft
	}
	source := opts.Source
	if source == "" {
		source = grid.SourceDemo
	}

	m := &Model{
		Grid:     grid.New(0, 0, 0, 0, opts.Layout, opts.Items),
		Pointer:  pointer.NewDispatcher(),
		Button:   button,
		Source:   source,
		Count:    opts.Count,
		Logger:   logger,
		OnSelect: opts.OnSelect,
		load:     opts.Load,
	}

	ctrl, err := selection.New(selection.Options{
		Element: m.Grid,
		Global:  m.Pointer,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create selection controller: %w", err)
	}
	m.Controller = ctrl.OnSelectedCellsChange(m.selectionChanged)
	return m, nil
}

func (m *Model) selectionChanged(s selection.Selection) {
	m.Selected = s
	if m.OnSelect != nil {
		m.OnSelect(s)
	}
}

// SelectedCells returns the selected cells in layout order.
func (m *Model) SelectedCells() []*grid.Cell {
	var out []*grid.Cell
	for _, c := range m.Grid.Cells() {
		if m.Selected.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// ClearSelection deselects every cell. A drag in progress is ended first so
// the rectangle cannot reselect cells on the next motion.
func (m *Model) ClearSelection() {
	m.Controller.Close()
	m.Controller.Clear()
	m.Status = ""
}

// ToggleHelp shows or hides the key help.
func (m *Model) ToggleHelp() {
	m.ShowHelp = !m.ShowHelp
}

// Reload fetches the items again from the configured source.
func (m *Model) Reload() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true
	m.Status = "loading " + m.Source + "…"
	if m.load != nil {
		return loadCmd(m.load)
	}
	return LoadItemsCmd(m.Source, m.Count)
}

// Loading reports whether a reload is in flight.
func (m *Model) Loading() bool {
	return m.loading
}

// SetItems replaces the grid contents, ending any drag and clearing the
// selection first so no stale cell stays selected.
func (m *Model) SetItems(items []grid.Item) {
	m.Controller.Close()
	m.Controller.Clear()
	m.Grid.SetItems(items)
	m.Logger.Debug("items replaced", "count", len(items), "source", m.Source)
}

// Resize lays the grid out for a new terminal size. The bottom rows are
// reserved for the status bar.
func (m *Model) Resize(width, height int) {
	m.Width, m.Height = width, height
	m.Grid.Resize(0, 0, width, max(height-config.StatusBarHeight, 0))
}

// LoadItemsCmd loads items off the event loop.
func LoadItemsCmd(source string, count int) tea.Cmd {
	return loadCmd(func(ctx context.Context) ([]grid.Item, error) {
		return grid.LoadItems(ctx, source, count)
	})
}

func loadCmd(load func(context.Context) ([]grid.Item, error)) tea.Cmd {
	return func() tea.Msg {
		items, err := load(context.Background())
		return ItemsLoadedMsg{Items: items, Err: err}
	}
}
