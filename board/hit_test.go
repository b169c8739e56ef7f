package board

import (
	"testing"

	"squares/types"
)

func TestHitRegionContains(t *testing.T) {
	h := HitRegion(types.Point{X: 0, Y: 0}, types.Horizontal)
	v := HitRegion(types.Point{X: 0, Y: 0}, types.Vertical)

	tests := []struct {
		name string
		r    Rect
		at   types.Vec2
		want bool
	}{
		{"horizontal middle", h, types.Vec2{X: 0.5, Y: 0}, true},
		{"horizontal band edge", h, types.Vec2{X: 0.5, Y: 0.09}, true},
		{"horizontal above band", h, types.Vec2{X: 0.5, Y: 0.1}, false},
		{"horizontal dead zone", h, types.Vec2{X: 0.05, Y: 0}, false},
		{"horizontal far end", h, types.Vec2{X: 0.95, Y: 0}, false},
		{"vertical middle", v, types.Vec2{X: 0, Y: 0.5}, true},
		{"vertical below inset", v, types.Vec2{X: 0, Y: 0.1}, false},
		{"vertical outside band", v, types.Vec2{X: 0.15, Y: 0.5}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Contains(tt.at); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tt.name, tt.at, got, tt.want)
		}
	}
}

func TestHitRegionsDisjoint(t *testing.T) {
	b := newBoard(t)
	edges := b.Edges()
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].Region().Overlaps(edges[j].Region()) {
				t.Errorf("regions of %s%s and %s%s overlap",
					edges[i].Alignment, edges[i].Origin, edges[j].Alignment, edges[j].Origin)
			}
		}
	}
}

func TestHitTest(t *testing.T) {
	b := newBoard(t)
	tests := []struct {
		at     types.Vec2
		origin types.Point
		align  types.Alignment
		hit    bool
	}{
		{types.Vec2{X: 0.5, Y: 0.0}, types.Point{X: 0, Y: 0}, types.Horizontal, true},
		{types.Vec2{X: 0.5, Y: 0.05}, types.Point{X: 0, Y: 0}, types.Horizontal, true},
		{types.Vec2{X: 3.02, Y: 4.5}, types.Point{X: 3, Y: 4}, types.Vertical, true},
		{types.Vec2{X: 5.5, Y: 6.0}, types.Point{X: 5, Y: 6}, types.Horizontal, true},
		{types.Vec2{X: 6.0, Y: 5.8}, types.Point{X: 6, Y: 5}, types.Vertical, true},
		// Corner dead zones.
		{types.Vec2{X: 1.05, Y: 1.05}, types.Point{}, 0, false},
		{types.Vec2{X: 0.0, Y: 0.0}, types.Point{}, 0, false},
		{types.Vec2{X: 6.0, Y: 6.0}, types.Point{}, 0, false},
		// Cell interior.
		{types.Vec2{X: 2.5, Y: 2.5}, types.Point{}, 0, false},
		// Outside the board.
		{types.Vec2{X: -0.5, Y: 3.5}, types.Point{}, 0, false},
		{types.Vec2{X: 6.5, Y: 0.0}, types.Point{}, 0, false},
	}
	for _, tt := range tests {
		id, ok := b.HitTest(tt.at)
		if ok != tt.hit {
			t.Errorf("HitTest(%v) hit = %v, want %v", tt.at, ok, tt.hit)
			continue
		}
		if !ok {
			if id != NoEdge {
				t.Errorf("HitTest(%v) miss returned id %d", tt.at, id)
			}
			continue
		}
		e, _ := b.Edge(id)
		if e.Origin != tt.origin || e.Alignment != tt.align {
			t.Errorf("HitTest(%v) = %s%s, want %s%s", tt.at, e.Alignment, e.Origin, tt.align, tt.origin)
		}
	}
}

func TestHitTestEveryEdgeMidpoint(t *testing.T) {
	b := newBoard(t)
	for i, e := range b.Edges() {
		mid := types.Vec2{X: float64(e.Origin.X), Y: float64(e.Origin.Y)}
		if e.Alignment == types.Horizontal {
			mid.X += 0.5
		} else {
			mid.Y += 0.5
		}
		id, ok := b.HitTest(mid)
		if !ok || id != EdgeID(i) {
			t.Errorf("midpoint %v of %s%s hit %d (%v), want %d", mid, e.Alignment, e.Origin, id, ok, i)
		}
	}
}

func TestHitTestFirstInArenaOrder(t *testing.T) {
	b := newBoard(t)
	// Force an overlap: move a later edge onto an earlier one.
	b.edges[10] = b.edges[3]
	id, ok := b.HitTest(b.edges[3].Region().center())
	if !ok || id != 3 {
		t.Errorf("HitTest = %d (%v), want first match 3", id, ok)
	}
}

func (r Rect) center() types.Vec2 {
	return types.Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}
