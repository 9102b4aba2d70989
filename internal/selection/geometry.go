package selection

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. Inside the controller every Point is
// container-local: the origin is the container's top-left corner.
type Point struct {
	X float64
	Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rectangle is an axis-aligned rectangle. X and Y are the top-left corner.
// Width and Height are never negative when built with RectFromPoints.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x-coordinate of the right edge.
func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("{x:%g y:%g w:%g h:%g}", r.X, r.Y, r.Width, r.Height)
}

// RectFromPoints returns the rectangle spanned by the anchor and p.
// The min/abs form covers all four drag directions.
func RectFromPoints(anchor, p Point) Rectangle {
	return Rectangle{
		X:      math.Min(anchor.X, p.X),
		Y:      math.Min(anchor.Y, p.Y),
		Width:  math.Abs(p.X - anchor.X),
		Height: math.Abs(p.Y - anchor.Y),
	}
}

// ClampPoint clamps p into [0, width] x [0, height].
func ClampPoint(p Point, width, height float64) Point {
	return Point{X: clamp(p.X, 0, width), Y: clamp(p.Y, 0, height)}
}

// Overlaps reports whether r and b intersect, using the distance between
// their centers. Rectangles that only share an edge do not overlap.
func Overlaps(r, b Rectangle) bool {
	cr := r.Center()
	cb := b.Center()
	xIntersect := math.Abs(cr.X-cb.X) < r.Width/2+b.Width/2
	yIntersect := math.Abs(cr.Y-cb.Y) < r.Height/2+b.Height/2
	return xIntersect && yIntersect
}

// ToLocal converts a rectangle in surface screen space into the
// coordinate space of a container whose top-left sits at origin.
func ToLocal(screen Rectangle, origin Point) Rectangle {
	return Rectangle{
		X:      screen.X - origin.X,
		Y:      screen.Y - origin.Y,
		Width:  screen.Width,
		Height: screen.Height,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
