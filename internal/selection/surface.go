package selection

// Candidate is an element that can be picked up by the rubberband.
//
// Candidates are compared by interface equality, so implementations must be
// comparable; pointer receivers are the usual choice.
type Candidate interface {
	// Bounds returns the element's bounding box in surface screen space.
	Bounds() Rectangle
	// SetSelected toggles the element's selected marker.
	SetSelected(selected bool)
}

// Node is anything a pointer can land on. Walking ParentNode until nil must
// terminate. Nodes need not be comparable; they are only ever compared
// against candidates, which are.
type Node interface {
	ParentNode() Node
}

// Overlay is the transient rectangle drawn while a drag is active.
type Overlay interface {
	SetBounds(r Rectangle)
	Remove()
}

// Surface is the container the controller selects within.
type Surface interface {
	// Origin is the screen position of the container's top-left corner.
	Origin() Point
	// ScrollSize is the full scrollable extent of the container.
	ScrollSize() (width, height float64)
	// Candidates lists every selectable element currently in the container.
	Candidates() []Candidate
	// NewOverlay creates and attaches a fresh drag overlay.
	NewOverlay() Overlay
}

// ContainerMarker is implemented by surfaces that show they have a
// controller attached. MarkContainer is called once, from New.
type ContainerMarker interface {
	MarkContainer()
}

// DragMarker is implemented by surfaces that show whether a drag is active.
type DragMarker interface {
	SetDragging(active bool)
}

// PointerEvent is a pointer position in surface screen space plus the node
// the pointer is over (nil when unknown).
type PointerEvent struct {
	X      float64
	Y      float64
	Target Node
}

// Point returns the event position.
func (e PointerEvent) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

// PointerHandler receives pointer events from a PointerSource.
type PointerHandler interface {
	PointerMove(ev PointerEvent)
	PointerUp(ev PointerEvent)
}

// Subscription is returned by PointerSource.Subscribe.
type Subscription interface {
	Unsubscribe()
}

// PointerSource delivers pointer movement for the whole surface, so a drag
// that leaves the container keeps being tracked.
type PointerSource interface {
	Subscribe(h PointerHandler) Subscription
}

// isDescendant reports whether n is target or lies below it in the node tree.
// An interface comparison only panics when both dynamic types match and are
// not comparable, which a comparable target rules out.
func isDescendant(n Node, target Candidate) bool {
	for n != nil {
		if any(n) == any(target) {
			return true
		}
		n = n.ParentNode()
	}
	return false
}
