// Package selection implements rubberband (drag-to-select) selection over a
// container of selectable elements.
//
// A Controller tracks one drag at a time. Pressing the pointer outside any
// candidate anchors a drag rectangle, every move recomputes which candidates
// overlap it, and the registered observer is told whenever the selected set
// changes. The container, its candidates and the overlay are supplied through
// the Surface, Candidate and Overlay interfaces, so the controller has no
// knowledge of how anything is drawn.
//
// The controller is not safe for concurrent use. Hosts are expected to feed
// it events one at a time from a single event loop.
package selection

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrNoElement is returned by New when Options.Element is nil.
var ErrNoElement = errors.New("no container element")

// State is the drag state of a Controller.
type State int

const (
	// Idle means no drag is in progress.
	Idle State = iota
	// Dragging means a pointer-down started a drag that has not ended yet.
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Options configures a Controller.
type Options struct {
	// Element is the container to select within. Required.
	Element Surface

	// Global delivers pointer moves and releases for the whole surface.
	// When nil, the host must call PointerMove and PointerUp itself.
	Global PointerSource

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Controller is the rubberband state machine.
type Controller struct {
	container Surface
	global    PointerSource
	logger    *log.Logger

	state    State
	anchor   Point
	rect     Rectangle
	hasRect  bool
	overlay  Overlay
	sub      Subscription
	selected map[Candidate]struct{}
	onChange func(Selection)
}

// New creates a Controller over opts.Element.
func New(opts Options) (*Controller, error) {
	if opts.Element == nil {
		return nil, fmt.Errorf("selection: %w", ErrNoElement)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if m, ok := opts.Element.(ContainerMarker); ok {
		m.MarkContainer()
	}
	return &Controller{
		container: opts.Element,
		global:    opts.Global,
		logger:    logger.WithPrefix("rubberband"),
		selected:  map[Candidate]struct{}{},
	}, nil
}

// OnSelectedCellsChange registers the change observer, replacing any
// previous one. A nil callback removes it.
func (c *Controller) OnSelectedCellsChange(callback func(Selection)) *Controller {
	c.onChange = callback
	return c
}

// State returns the current drag state.
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.state == Dragging
}

// Rect returns the current drag rectangle in container space. The second
// result is false until the first move of the active drag.
func (c *Controller) Rect() (Rectangle, bool) {
	if c.state != Dragging {
		return Rectangle{}, false
	}
	return c.rect, c.hasRect
}

// Selected returns a snapshot of the selected set.
func (c *Controller) Selected() Selection {
	return newSelection(c.selected)
}

// PointerDown starts a drag unless the event target is a candidate or a
// descendant of one.
func (c *Controller) PointerDown(ev PointerEvent) {
	if c.isOnCandidate(ev.Target) {
		c.logger.Debug("pointer down on candidate, drag suppressed", "x", ev.X, "y", ev.Y)
		return
	}
	if c.state == Dragging {
		// A release we never saw. End the old drag before starting over.
		c.endDrag()
	}

	c.anchor = ev.Point().Sub(c.container.Origin())
	c.Clear()

	if c.overlay != nil {
		c.overlay.Remove()
	}
	c.overlay = c.container.NewOverlay()
	c.hasRect = false
	c.state = Dragging

	if m, ok := c.container.(DragMarker); ok {
		m.SetDragging(true)
	}
	if c.global != nil {
		c.sub = c.global.Subscribe(c)
	}
	c.logger.Debug("drag started", "anchor", c.anchor)
}

// PointerMove recomputes the drag rectangle and the selected set. It does
// nothing when no drag is active.
func (c *Controller) PointerMove(ev PointerEvent) {
	if c.state != Dragging {
		return
	}
	origin := c.container.Origin()
	w, h := c.container.ScrollSize()
	p := ClampPoint(ev.Point().Sub(origin), w, h)

	c.rect = RectFromPoints(c.anchor, p)
	c.hasRect = true
	if c.overlay != nil {
		c.overlay.SetBounds(c.rect)
	}

	next := make(map[Candidate]struct{})
	for _, cand := range c.container.Candidates() {
		if Overlaps(c.rect, ToLocal(cand.Bounds(), origin)) {
			next[cand] = struct{}{}
		}
	}
	c.apply(next)
}

// PointerUp ends the active drag. The selection is kept until the next
// drag starts.
func (c *Controller) PointerUp(PointerEvent) {
	if c.state != Dragging {
		return
	}
	c.endDrag()
	c.logger.Debug("drag ended", "selected", len(c.selected))
}

// Clear deselects everything, notifying the observer only when something
// was selected.
func (c *Controller) Clear() {
	for cand := range c.selected {
		cand.SetSelected(false)
	}
	if len(c.selected) == 0 {
		return
	}
	c.selected = map[Candidate]struct{}{}
	c.notify()
}

// Close ends an in-flight drag and releases its subscription.
func (c *Controller) Close() {
	if c.state == Dragging {
		c.endDrag()
	}
}

func (c *Controller) endDrag() {
	if c.sub != nil {
		c.sub.Unsubscribe()
		c.sub = nil
	}
	if c.overlay != nil {
		c.overlay.Remove()
		c.overlay = nil
	}
	if m, ok := c.container.(DragMarker); ok {
		m.SetDragging(false)
	}
	c.anchor = Point{}
	c.rect = Rectangle{}
	c.hasRect = false
	c.state = Idle
}

// apply swaps in next as the selected set when membership changed. The
// previous map is never mutated so snapshots handed out earlier stay valid.
func (c *Controller) apply(next map[Candidate]struct{}) {
	if !membershipChanged(c.selected, next) {
		return
	}
	for cand := range c.selected {
		if _, ok := next[cand]; !ok {
			cand.SetSelected(false)
		}
	}
	for cand := range next {
		if _, ok := c.selected[cand]; !ok {
			cand.SetSelected(true)
		}
	}
	c.selected = next
	c.notify()
}

func (c *Controller) notify() {
	c.logger.Debug("selection changed", "count", len(c.selected))
	if c.onChange == nil {
		return
	}
	c.onChange(newSelection(c.selected))
}

func (c *Controller) isOnCandidate(target Node) bool {
	if target == nil {
		return false
	}
	for _, cand := range c.container.Candidates() {
		if isDescendant(target, cand) {
			return true
		}
	}
	return false
}
