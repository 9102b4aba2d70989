package grid

import (
	"context"
	"testing"

	"github.com/Gaurav-Gosain/rubberband/internal/selection"
)

func testLayout() Layout {
	return Layout{Columns: 0, CellWidth: 10, CellHeight: 3, Gap: 1, Padding: 1}
}

func TestLayoutAutoColumns(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "exact fit", width: 2*1 + 3*10 + 2*1, want: 3},
		{name: "one short", width: 2*1 + 3*10 + 2*1 - 1, want: 2},
		{name: "too narrow", width: 4, want: 1},
		{name: "wide", width: 200, want: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(0, 0, tt.width, 40, testLayout(), DemoItems(30))
			if got := g.Columns(); got != tt.want {
				t.Errorf("Columns() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLayoutPositions(t *testing.T) {
	l := testLayout()
	l.Columns = 2
	g := New(5, 2, 80, 20, l, DemoItems(3))
	cells := g.Cells()

	want := []struct{ x, y int }{
		{5 + 1, 2 + 1},
		{5 + 1 + 11, 2 + 1},
		{5 + 1, 2 + 1 + 4},
	}
	for i, w := range want {
		if cells[i].X != w.x || cells[i].Y != w.y {
			t.Errorf("cell %d at (%d,%d), want (%d,%d)", i, cells[i].X, cells[i].Y, w.x, w.y)
		}
		if cells[i].Width != 10 || cells[i].Height != 3 {
			t.Errorf("cell %d size %dx%d, want 10x3", i, cells[i].Width, cells[i].Height)
		}
	}
}

func TestScrollSize(t *testing.T) {
	l := testLayout()
	l.Columns = 2

	tests := []struct {
		name          string
		width, height int
		items         int
	}{
		{name: "small content", width: 80, height: 20, items: 3},
		{name: "overflowing content", width: 10, height: 5, items: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(0, 0, tt.width, tt.height, l, DemoItems(tt.items))
			w, h := g.ScrollSize()
			if w != float64(tt.width) || h != float64(tt.height) {
				t.Errorf("ScrollSize() = %v,%v, want viewport %d,%d", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestClippedCellsAreNotCandidates(t *testing.T) {
	l := testLayout()
	l.Columns = 2
	// Rows start at y 1, 5 and 9; the third row needs y 9..11.
	g := New(0, 0, 40, 11, l, DemoItems(6))

	var visible []int
	for _, c := range g.Cells() {
		if c.Visible() {
			visible = append(visible, c.Index)
		}
	}
	if len(visible) != 4 || visible[3] != 3 {
		t.Fatalf("visible cells = %v, want [0 1 2 3]", visible)
	}

	cands := g.Candidates()
	if len(cands) != 4 {
		t.Fatalf("len(Candidates()) = %d, want 4", len(cands))
	}
	for _, cand := range cands {
		if !cand.(*Cell).Visible() {
			t.Errorf("clipped cell %d offered as candidate", cand.(*Cell).Index)
		}
	}

	clipped := g.Cells()[4]
	if got := g.HitTest(clipped.X+1, clipped.Y); got != selection.Node(g) {
		t.Errorf("HitTest on clipped cell = %T, want the grid", got)
	}
}

func TestSetItemsKeepsIDs(t *testing.T) {
	g := New(0, 0, 40, 20, testLayout(), []Item{
		{Text: "a"}, {Text: "b"}, {Text: "b"},
	})
	before := map[string]bool{}
	for _, c := range g.Cells() {
		before[c.ID] = true
	}
	idA := g.Cells()[0].ID
	idB1, idB2 := g.Cells()[1].ID, g.Cells()[2].ID

	g.SetItems([]Item{{Text: "b"}, {Text: "c"}, {Text: "a"}, {Text: "b"}, {Text: "b"}})
	cells := g.Cells()
	if cells[2].ID != idA {
		t.Errorf("item a changed ID: %q -> %q", idA, cells[2].ID)
	}
	if cells[0].ID != idB1 || cells[3].ID != idB2 {
		t.Error("duplicate items should take the old IDs in order")
	}
	if before[cells[1].ID] || before[cells[4].ID] {
		t.Error("new items must get fresh IDs")
	}
	if cells[1].ID == cells[4].ID {
		t.Error("fresh IDs must be unique")
	}
}

func TestHitTest(t *testing.T) {
	l := testLayout()
	l.Columns = 2
	g := New(0, 0, 40, 20, l, DemoItems(2))
	first := g.Cells()[0]

	tests := []struct {
		name string
		x, y int
		want selection.Node
	}{
		{name: "label", x: first.X + 1, y: first.LabelRow(), want: first.Label()},
		{name: "cell border", x: first.X, y: first.Y, want: first},
		{name: "gap", x: first.X + first.Width, y: first.Y, want: g},
		{name: "padding", x: 0, y: 0, want: g},
		{name: "outside", x: 40, y: 0, want: nil},
		{name: "negative", x: -1, y: 3, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.HitTest(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("HitTest(%d,%d) = %T %v, want %T %v", tt.x, tt.y, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestNodeHierarchy(t *testing.T) {
	g := New(0, 0, 40, 20, testLayout(), DemoItems(1))
	c := g.Cells()[0]

	if c.Label().ParentNode() != selection.Node(c) {
		t.Error("label parent should be its cell")
	}
	if c.ParentNode() != selection.Node(g) {
		t.Error("cell parent should be the grid")
	}
	if g.ParentNode() != nil {
		t.Error("grid should be the root")
	}
	if c.Label().Cell() != c {
		t.Error("Label.Cell() mismatch")
	}
}

func TestOverlayLifecycle(t *testing.T) {
	g := New(0, 0, 40, 20, testLayout(), nil)

	if _, ok := g.Overlay(); ok {
		t.Fatal("no overlay expected before a drag")
	}

	o := g.NewOverlay()
	if _, ok := g.Overlay(); ok {
		t.Error("overlay without bounds should not be shown")
	}

	r := selection.Rectangle{X: 1, Y: 2, Width: 3, Height: 4}
	o.SetBounds(r)
	if got, ok := g.Overlay(); !ok || got != r {
		t.Errorf("Overlay() = %v,%v, want %v,true", got, ok, r)
	}

	stale := o
	g.NewOverlay()
	stale.Remove()
	if g.overlay == nil {
		t.Error("removing a stale overlay must not detach the current one")
	}

	g.overlay.Remove()
	if _, ok := g.Overlay(); ok {
		t.Error("overlay should be gone after Remove")
	}
}

func TestDisplayTextTruncates(t *testing.T) {
	g := New(0, 0, 40, 20, testLayout(), []Item{
		{Text: "short"},
		{Text: "a much longer label"},
	})

	if got := g.Cells()[0].DisplayText(); got != "short" {
		t.Errorf("DisplayText() = %q, want %q", got, "short")
	}
	long := g.Cells()[1].DisplayText()
	if long != "a much …" {
		t.Errorf("DisplayText() = %q, want %q", long, "a much …")
	}
}

func TestSetItemsResetsSelection(t *testing.T) {
	g := New(0, 0, 40, 20, testLayout(), DemoItems(2))
	g.Cells()[0].SetSelected(true)
	if g.SelectedCount() != 1 {
		t.Fatalf("SelectedCount() = %d, want 1", g.SelectedCount())
	}

	g.SetItems(DemoItems(4))
	if g.SelectedCount() != 0 {
		t.Errorf("SelectedCount() = %d after SetItems, want 0", g.SelectedCount())
	}
	if len(g.Candidates()) != 4 {
		t.Errorf("len(Candidates()) = %d, want 4", len(g.Candidates()))
	}
	if g.Cells()[0].ID == "" || g.Cells()[0].ID == g.Cells()[1].ID {
		t.Error("cells need unique IDs")
	}
}

func TestDragMarker(t *testing.T) {
	g := New(0, 0, 40, 20, testLayout(), nil)
	g.SetDragging(true)
	if !g.Dragging() {
		t.Error("expected dragging marker")
	}
	g.SetDragging(false)
	if g.Dragging() {
		t.Error("expected dragging marker cleared")
	}
}

func TestControllerOverGrid(t *testing.T) {
	l := testLayout()
	l.Columns = 3
	g := New(2, 1, 60, 20, l, DemoItems(6))

	c, err := selection.New(selection.Options{Element: g})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Attached() {
		t.Error("grid should be marked once a controller exists")
	}
	var last selection.Selection
	c.OnSelectedCellsChange(func(s selection.Selection) { last = s })

	// Padding sits outside every cell, so the press lands on the grid.
	c.PointerDown(selection.PointerEvent{X: 2.5, Y: 1.5, Target: g.HitTest(2, 1)})
	if !g.Dragging() {
		t.Fatal("drag should mark the grid")
	}

	// Cover the first two cells of the top row.
	second := g.Cells()[1]
	c.PointerMove(selection.PointerEvent{X: float64(second.X) + 0.5, Y: float64(second.Y) + 0.5})

	if last.Len() != 2 {
		t.Fatalf("selected %d cells, want 2", last.Len())
	}
	if !g.Cells()[0].Selected() || !second.Selected() || g.Cells()[2].Selected() {
		t.Error("wrong cells marked")
	}
	if _, ok := g.Overlay(); !ok {
		t.Error("overlay should be visible during drag")
	}

	c.PointerUp(selection.PointerEvent{})
	if _, ok := g.Overlay(); ok {
		t.Error("overlay should be removed on release")
	}
	if g.SelectedCount() != 2 {
		t.Errorf("SelectedCount() = %d after release, want 2", g.SelectedCount())
	}

	// A press on a label must leave the selection alone.
	lbl := g.Cells()[4]
	c.PointerDown(selection.PointerEvent{X: float64(lbl.X + 1), Y: float64(lbl.LabelRow()), Target: g.HitTest(lbl.X+1, lbl.LabelRow())})
	if c.Dragging() || g.SelectedCount() != 2 {
		t.Error("press on a cell label started a drag")
	}
}

func TestLoadItems(t *testing.T) {
	items, err := LoadItems(context.Background(), SourceDemo, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 5 || items[0].Text != "Item 1" || items[4].Detail != "#5" {
		t.Errorf("unexpected demo items: %+v", items)
	}

	if _, err := LoadItems(context.Background(), "bogus", 5); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestProcessItems(t *testing.T) {
	items, err := ProcessItems(context.Background(), 3)
	if err != nil {
		t.Skipf("process listing unavailable: %v", err)
	}
	if len(items) > 3 {
		t.Errorf("got %d items, limit was 3", len(items))
	}
	for _, it := range items {
		if it.Text == "" {
			t.Error("process item without a name")
		}
	}
}
