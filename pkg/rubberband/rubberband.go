// Package rubberband provides drag-to-select for terminal user interfaces.
//
// Press the mouse on empty space inside a container and drag: a rectangle
// follows the pointer and every candidate it touches is selected. Pressing
// on a candidate never starts a drag, so candidates stay free for their own
// click handling.
//
// # Basic Usage
//
// Run a grid of labelled cells as a Bubble Tea model:
//
//	model, err := rubberband.New(
//		rubberband.WithLabels("alpha", "beta", "gamma"),
//		rubberband.WithTheme("dracula"),
//		rubberband.WithOnSelect(func(s rubberband.Selection) {
//			log.Printf("%d selected", s.Len())
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := tea.NewProgram(model, rubberband.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Surfaces
//
// Any container that implements Surface can be driven directly:
//
//	ctrl, err := rubberband.NewController(rubberband.ControllerOptions{Element: mySurface})
//	ctrl.OnSelectedCellsChange(func(s rubberband.Selection) { ... })
//	ctrl.PointerDown(rubberband.PointerEvent{X: 3, Y: 4, Target: node})
package rubberband

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/rubberband/internal/app"
	"github.com/Gaurav-Gosain/rubberband/internal/config"
	"github.com/Gaurav-Gosain/rubberband/internal/grid"
	"github.com/Gaurav-Gosain/rubberband/internal/input"
	"github.com/Gaurav-Gosain/rubberband/internal/selection"
	"github.com/Gaurav-Gosain/rubberband/internal/theme"
)

// Model is the Bubble Tea model hosting a selectable grid.
type Model = app.Model

// Layout controls cell geometry.
type Layout = grid.Layout

// Item is the content of one cell.
type Item = grid.Item

// Core selection types.
type (
	Point             = selection.Point
	Rectangle         = selection.Rectangle
	Selection         = selection.Selection
	Candidate         = selection.Candidate
	Node              = selection.Node
	Overlay           = selection.Overlay
	Surface           = selection.Surface
	PointerEvent      = selection.PointerEvent
	PointerSource     = selection.PointerSource
	Controller        = selection.Controller
	ControllerOptions = selection.Options
	State             = selection.State
)

// Drag states.
const (
	Idle     = selection.Idle
	Dragging = selection.Dragging
)

// ErrNoElement is returned by NewController without a container.
var ErrNoElement = selection.ErrNoElement

// NewController creates a selection controller over a custom Surface.
func NewController(opts ControllerOptions) (*Controller, error) {
	return selection.New(opts)
}

// Options configures a Model.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters instead of Unicode icons.
	ASCIIOnly bool

	// BorderStyle sets the cell border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "block", "ascii"
	BorderStyle string

	// Items are the cells to show. Defaults to numbered demo items.
	Items []Item

	Layout Layout

	// Button starts drags. Defaults to tea.MouseLeft.
	Button tea.MouseButton

	// OnSelect is called after every selection change.
	OnSelect func(Selection)

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Option is a functional option for configuring a Model.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only mode.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the cell border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithItems sets the cells.
func WithItems(items ...Item) Option {
	return func(o *Options) {
		o.Items = items
	}
}

// WithLabels sets one cell per label.
func WithLabels(labels ...string) Option {
	return func(o *Options) {
		o.Items = make([]Item, len(labels))
		for i, l := range labels {
			o.Items[i] = Item{Text: l}
		}
	}
}

// WithLayout sets the cell geometry.
func WithLayout(layout Layout) Option {
	return func(o *Options) {
		o.Layout = layout
	}
}

// WithButton sets the mouse button that starts a drag.
func WithButton(button tea.MouseButton) Option {
	return func(o *Options) {
		o.Button = button
	}
}

// WithOnSelect registers the selection observer.
func WithOnSelect(fn func(Selection)) Option {
	return func(o *Options) {
		o.OnSelect = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Items:  grid.DemoItems(config.DefaultCount),
		Layout: grid.DefaultLayout(),
		Button: tea.MouseLeft,
	}
}

// New creates a Model with the given options. The user configuration file
// is not read; everything comes from opts.
func New(opts ...Option) (*Model, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	app.SetInputHandler(input.HandleInput)

	if options.ASCIIOnly {
		config.UseASCIIOnly = true
	}
	if options.BorderStyle != "" {
		config.BorderStyle = options.BorderStyle
	}
	if options.Theme != "" {
		if err := theme.Initialize(options.Theme); err != nil {
			return nil, err
		}
	}

	items := options.Items
	load := func(context.Context) ([]Item, error) {
		return items, nil
	}

	return app.New(app.Options{
		Layout:   options.Layout,
		Items:    items,
		Button:   options.Button,
		Source:   "items",
		Load:     load,
		Logger:   options.Logger,
		OnSelect: options.OnSelect,
	})
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// a Model:
//
//	p := tea.NewProgram(model, rubberband.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops mouse motion
// while no drag is active.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	return input.FilterMouseMotion(model, msg)
}

// SelectedItems returns the items of the selected cells in layout order.
func SelectedItems(m *Model) []Item {
	cells := m.SelectedCells()
	items := make([]Item, len(cells))
	for i, c := range cells {
		items[i] = Item{Text: c.Text, Detail: c.Detail}
	}
	return items
}
