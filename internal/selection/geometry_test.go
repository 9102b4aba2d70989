package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		anchor Point
		p      Point
		want   Rectangle
	}{
		{
			name:   "down right",
			anchor: Point{X: 10, Y: 10},
			p:      Point{X: 30, Y: 50},
			want:   Rectangle{X: 10, Y: 10, Width: 20, Height: 40},
		},
		{
			name:   "up left",
			anchor: Point{X: 30, Y: 50},
			p:      Point{X: 10, Y: 10},
			want:   Rectangle{X: 10, Y: 10, Width: 20, Height: 40},
		},
		{
			name:   "up right",
			anchor: Point{X: 10, Y: 50},
			p:      Point{X: 30, Y: 10},
			want:   Rectangle{X: 10, Y: 10, Width: 20, Height: 40},
		},
		{
			name:   "down left",
			anchor: Point{X: 30, Y: 10},
			p:      Point{X: 10, Y: 50},
			want:   Rectangle{X: 10, Y: 10, Width: 20, Height: 40},
		},
		{
			name:   "same point",
			anchor: Point{X: 7, Y: 7},
			p:      Point{X: 7, Y: 7},
			want:   Rectangle{X: 7, Y: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectFromPoints(tt.anchor, tt.p)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRectFromPointsSpansBothPoints(t *testing.T) {
	coords := []float64{-15, 0, 3.5, 40, 200}
	for _, ax := range coords {
		for _, ay := range coords {
			for _, px := range coords {
				for _, py := range coords {
					a := Point{X: ax, Y: ay}
					p := Point{X: px, Y: py}
					r := RectFromPoints(a, p)

					assert.GreaterOrEqual(t, r.Width, 0.0)
					assert.GreaterOrEqual(t, r.Height, 0.0)
					assert.LessOrEqual(t, r.X, a.X)
					assert.LessOrEqual(t, r.X, p.X)
					assert.LessOrEqual(t, r.Y, a.Y)
					assert.LessOrEqual(t, r.Y, p.Y)
					assert.Equal(t, max(a.X, p.X), r.Right())
					assert.Equal(t, max(a.Y, p.Y), r.Bottom())
				}
			}
		}
	}
}

func TestClampPoint(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"inside", Point{X: 50, Y: 60}, Point{X: 50, Y: 60}},
		{"negative x", Point{X: -5, Y: 60}, Point{X: 0, Y: 60}},
		{"negative y", Point{X: 50, Y: -1}, Point{X: 50, Y: 0}},
		{"beyond width", Point{X: 500, Y: 60}, Point{X: 200, Y: 60}},
		{"beyond height", Point{X: 50, Y: 301}, Point{X: 50, Y: 300}},
		{"both corners", Point{X: -10, Y: 999}, Point{X: 0, Y: 300}},
		{"on edge", Point{X: 200, Y: 300}, Point{X: 200, Y: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPoint(tt.p, 200, 300))
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := Rectangle{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		name  string
		other Rectangle
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rectangle{X: 15, Y: 15, Width: 2, Height: 2}, true},
		{"containing", Rectangle{X: 0, Y: 0, Width: 100, Height: 100}, true},
		{"partial corner", Rectangle{X: 25, Y: 25, Width: 20, Height: 20}, true},
		{"touching right edge", Rectangle{X: 30, Y: 10, Width: 10, Height: 20}, false},
		{"touching bottom edge", Rectangle{X: 10, Y: 30, Width: 20, Height: 10}, false},
		{"touching left edge", Rectangle{X: 0, Y: 10, Width: 10, Height: 20}, false},
		{"touching corner", Rectangle{X: 30, Y: 30, Width: 5, Height: 5}, false},
		{"apart", Rectangle{X: 150, Y: 150, Width: 20, Height: 20}, false},
		{"x overlap only", Rectangle{X: 15, Y: 60, Width: 5, Height: 5}, false},
		{"zero size inside", Rectangle{X: 20, Y: 20}, true},
		{"zero size on edge", Rectangle{X: 30, Y: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(base, tt.other))
			assert.Equal(t, Overlaps(base, tt.other), Overlaps(tt.other, base), "overlap must be symmetric")
		})
	}
}

func TestToLocal(t *testing.T) {
	screen := Rectangle{X: 110, Y: 45, Width: 20, Height: 5}
	got := ToLocal(screen, Point{X: 100, Y: 40})
	assert.Equal(t, Rectangle{X: 10, Y: 5, Width: 20, Height: 5}, got)
}

func TestRectangleCenter(t *testing.T) {
	r := Rectangle{X: 10, Y: 20, Width: 5, Height: 3}
	assert.Equal(t, Point{X: 12.5, Y: 21.5}, r.Center())
	assert.Equal(t, 15.0, r.Right())
	assert.Equal(t, 23.0, r.Bottom())
}
