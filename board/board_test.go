package board

import (
	"errors"
	"testing"

	"squares/types"
)

func newBoard(t *testing.T) *Board {
	t.Helper()
	b, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestNewBoardCounts(t *testing.T) {
	b := newBoard(t)

	if got := len(b.Points()); got != 49 {
		t.Errorf("points = %d, want 49", got)
	}
	if got := len(b.Edges()); got != 84 {
		t.Errorf("edges = %d, want 84", got)
	}
	if got := len(b.Cells()); got != 36 {
		t.Errorf("cells = %d, want 36", got)
	}

	var h, v int
	for _, e := range b.Edges() {
		if e.Activated {
			t.Errorf("edge %s%s starts activated", e.Alignment, e.Origin)
		}
		if e.Alignment == types.Horizontal {
			h++
		} else {
			v++
		}
	}
	if h != 42 || v != 42 {
		t.Errorf("horizontal/vertical = %d/%d, want 42/42", h, v)
	}
	for _, c := range b.Cells() {
		if c.Owner != types.None {
			t.Errorf("cell %s starts owned by %s", c.Location, c.Owner)
		}
	}
}

func TestEdgesStayInsideGrid(t *testing.T) {
	b := newBoard(t)
	for _, e := range b.Edges() {
		end := e.End()
		if end.X >= Points || end.Y >= Points {
			t.Errorf("edge %s%s ends outside the grid at %s", e.Alignment, e.Origin, end)
		}
	}
}

func TestCellEdges(t *testing.T) {
	b := newBoard(t)
	for _, c := range b.Cells() {
		loc := c.Location
		checks := []struct {
			side   int
			origin types.Point
			align  types.Alignment
		}{
			{Bottom, loc, types.Horizontal},
			{Top, types.Point{X: loc.X, Y: loc.Y + 1}, types.Horizontal},
			{Left, loc, types.Vertical},
			{Right, types.Point{X: loc.X + 1, Y: loc.Y}, types.Vertical},
		}
		for _, ch := range checks {
			e, ok := b.Edge(c.Edges[ch.side])
			if !ok {
				t.Fatalf("cell %s side %d: unknown edge %d", loc, ch.side, c.Edges[ch.side])
			}
			if e.Origin != ch.origin || e.Alignment != ch.align {
				t.Errorf("cell %s side %d = %s%s, want %s%s", loc, ch.side, e.Alignment, e.Origin, ch.align, ch.origin)
			}
		}
	}
}

func TestSharedEdgeIsSameEntity(t *testing.T) {
	b := newBoard(t)
	left, _ := b.CellAt(types.Point{X: 0, Y: 0})
	right, _ := b.CellAt(types.Point{X: 1, Y: 0})
	above, _ := b.CellAt(types.Point{X: 0, Y: 1})

	l, _ := b.Cell(left)
	r, _ := b.Cell(right)
	a, _ := b.Cell(above)

	if l.Edges[Right] != r.Edges[Left] {
		t.Errorf("left cell right edge %d != right cell left edge %d", l.Edges[Right], r.Edges[Left])
	}
	if l.Edges[Top] != a.Edges[Bottom] {
		t.Errorf("lower cell top edge %d != upper cell bottom edge %d", l.Edges[Top], a.Edges[Bottom])
	}

	// Activation through one cell's reference is visible through the other.
	b.Activate(l.Edges[Right])
	e, _ := b.Edge(r.Edges[Left])
	if !e.Activated {
		t.Error("activation not visible through neighbouring cell")
	}
}

func TestEdgeSharingCounts(t *testing.T) {
	b := newBoard(t)
	refs := make(map[EdgeID]int)
	for _, c := range b.Cells() {
		for _, id := range c.Edges {
			refs[id]++
		}
	}
	for id, e := range b.Edges() {
		want := 2
		if (e.Alignment == types.Horizontal && (e.Origin.Y == 0 || e.Origin.Y == Points-1)) ||
			(e.Alignment == types.Vertical && (e.Origin.X == 0 || e.Origin.X == Points-1)) {
			want = 1
		}
		if got := refs[EdgeID(id)]; got != want {
			t.Errorf("edge %s%s referenced by %d cells, want %d", e.Alignment, e.Origin, got, want)
		}
	}
}

func TestEdgeAt(t *testing.T) {
	b := newBoard(t)
	tests := []struct {
		origin types.Point
		align  types.Alignment
		ok     bool
	}{
		{types.Point{X: 0, Y: 0}, types.Horizontal, true},
		{types.Point{X: 5, Y: 6}, types.Horizontal, true},
		{types.Point{X: 6, Y: 0}, types.Horizontal, false},
		{types.Point{X: 6, Y: 5}, types.Vertical, true},
		{types.Point{X: 0, Y: 6}, types.Vertical, false},
		{types.Point{X: -1, Y: 0}, types.Vertical, false},
	}
	for _, tt := range tests {
		id, ok := b.EdgeAt(tt.origin, tt.align)
		if ok != tt.ok {
			t.Errorf("EdgeAt(%s, %s) ok = %v, want %v", tt.origin, tt.align, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		e, _ := b.Edge(id)
		if e.Origin != tt.origin || e.Alignment != tt.align {
			t.Errorf("EdgeAt(%s, %s) = %s%s", tt.origin, tt.align, e.Alignment, e.Origin)
		}
	}
}

func TestActivateIsMonotonic(t *testing.T) {
	b := newBoard(t)
	id, _ := b.EdgeAt(types.Point{X: 2, Y: 3}, types.Vertical)

	if !b.Activate(id) {
		t.Fatal("first activation should succeed")
	}
	if b.Activate(id) {
		t.Error("second activation should be a no-op")
	}
	if e, _ := b.Edge(id); !e.Activated {
		t.Error("edge should remain activated")
	}
	if b.Activate(NoEdge) || b.Activate(EdgeID(len(b.Edges()))) {
		t.Error("activating an unknown edge should be a no-op")
	}
}

func TestCompleteAndClaim(t *testing.T) {
	b := newBoard(t)
	id, _ := b.CellAt(types.Point{X: 3, Y: 3})
	c, _ := b.Cell(id)

	for i, e := range c.Edges {
		if b.Complete(id) {
			t.Fatalf("cell complete after %d edges", i)
		}
		b.Activate(e)
	}
	if !b.Complete(id) {
		t.Fatal("cell should be complete after four edges")
	}

	if !b.Claim(id, types.Two) {
		t.Fatal("first claim should succeed")
	}
	if b.Claim(id, types.One) {
		t.Error("second claim should be a no-op")
	}
	if c, _ := b.Cell(id); c.Owner != types.Two {
		t.Errorf("owner = %s, want Two", c.Owner)
	}
}

func TestValidateRejectsForeignEdge(t *testing.T) {
	b := newBoard(t)
	b.cells[0].Edges[Bottom] = EdgeID(len(b.edges) + 3)

	var invalid *InvalidBoard
	if err := b.Validate(); !errors.As(err, &invalid) {
		t.Fatalf("Validate = %v, want *InvalidBoard", err)
	}
}

func TestValidateRejectsPrivateCopy(t *testing.T) {
	b := newBoard(t)
	// Give cell (1,0) its own copy of the edge it shares with cell (0,0).
	shared := b.cells[1].Edges[Left]
	b.edges = append(b.edges, b.edges[shared])
	b.cells[1].Edges[Left] = EdgeID(len(b.edges) - 1)

	if err := b.Validate(); err == nil {
		t.Fatal("Validate should reject a duplicated edge")
	}
}

func TestValidateRejectsWrongSide(t *testing.T) {
	b := newBoard(t)
	b.cells[7].Edges[Top], b.cells[7].Edges[Bottom] = b.cells[7].Edges[Bottom], b.cells[7].Edges[Top]

	if err := b.Validate(); err == nil {
		t.Fatal("Validate should reject swapped sides")
	}
}

func TestBuildSizes(t *testing.T) {
	if _, err := build(1); err == nil {
		t.Error("build(1) should fail")
	}

	b, err := build(2)
	if err != nil {
		t.Fatalf("build(2): %v", err)
	}
	if len(b.Edges()) != 4 || len(b.Cells()) != 1 {
		t.Errorf("build(2) = %d edges, %d cells, want 4, 1", len(b.Edges()), len(b.Cells()))
	}
}

func TestView(t *testing.T) {
	b := newBoard(t)
	bottom, _ := b.EdgeAt(types.Point{X: 0, Y: 0}, types.Horizontal)
	top, _ := b.EdgeAt(types.Point{X: 0, Y: 1}, types.Horizontal)
	b.Activate(bottom)

	view := b.View(top, types.Two, 9)
	if view.Tick != 9 || view.CurrentPlayer != types.Two || view.Points != Points {
		t.Errorf("view header = %d/%s/%d", view.Tick, view.CurrentPlayer, view.Points)
	}
	if !view.Edges[bottom].Activated || view.Edges[bottom].Highlighted {
		t.Errorf("bottom edge view = %+v", view.Edges[bottom])
	}
	if !view.Edges[top].Highlighted {
		t.Errorf("top edge should be highlighted")
	}
	if view.ActivatedCount() != 1 {
		t.Errorf("ActivatedCount = %d, want 1", view.ActivatedCount())
	}

	// Activated edges are never projected as highlighted.
	view = b.View(bottom, types.One, 10)
	if view.Highlighted() != nil {
		t.Errorf("activated edge projected as highlighted")
	}
}
