package board

import "squares/types"

// Hit regions are inset from the nominal segment so that the bands of a horizontal and a vertical
// edge meeting at a point never overlap.
const (
	hitInset     = 0.1 // dead zone at each end of an edge
	hitHalfWidth = 0.1 // half thickness of the band
)

// Rect is an open axis-aligned rectangle in board space.
type Rect struct {
	Min types.Vec2
	Max types.Vec2
}

// Contains reports whether v lies strictly inside the rectangle.
func (r Rect) Contains(v types.Vec2) bool {
	return r.Min.X < v.X && v.X < r.Max.X && r.Min.Y < v.Y && v.Y < r.Max.Y
}

// Overlaps reports whether two open rectangles share any interior point.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X && r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// HitRegion returns the selectable band of an edge.
func HitRegion(origin types.Point, a types.Alignment) Rect {
	x, y := float64(origin.X), float64(origin.Y)
	if a == types.Vertical {
		return Rect{
			Min: types.Vec2{X: x - hitHalfWidth, Y: y + hitInset},
			Max: types.Vec2{X: x + hitHalfWidth, Y: y + 1 - hitInset},
		}
	}
	return Rect{
		Min: types.Vec2{X: x + hitInset, Y: y - hitHalfWidth},
		Max: types.Vec2{X: x + 1 - hitInset, Y: y + hitHalfWidth},
	}
}

// Region returns the hit region of the edge.
func (e Edge) Region() Rect {
	return HitRegion(e.Origin, e.Alignment)
}

// HitTest returns the edge whose region contains v. Regions are disjoint by construction; should
// two ever overlap, the first in arena order wins.
func (b *Board) HitTest(v types.Vec2) (EdgeID, bool) {
	for i, e := range b.edges {
		if e.Region().Contains(v) {
			return EdgeID(i), true
		}
	}
	return NoEdge, false
}
