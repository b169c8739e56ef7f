// Package board holds the dots-and-boxes lattice: points, the shared edge arena and the cells that
// reference it.
package board

import (
	"fmt"

	"squares/types"
)

// Points is the number of dots per side of the playing field.
const Points = 7

// EdgeID addresses an edge in the board's arena.
type EdgeID int

// NoEdge is returned when no edge applies.
const NoEdge EdgeID = -1

// CellID addresses a cell in the board.
type CellID int

// Cell sides, in the order they are stored in Cell.Edges.
const (
	Bottom = iota
	Top
	Left
	Right
)

// InvalidBoard is a fatal construction error. A board that returns it must not be played on.
type InvalidBoard struct {
	err string
}

func (e *InvalidBoard) Error() string {
	return fmt.Sprintf("Board error: %s", e.err)
}

// Edge is a unit segment between two neighbouring points.
type Edge struct {
	Origin    types.Point
	Alignment types.Alignment
	Activated bool
}

// End returns the far endpoint of the edge.
func (e Edge) End() types.Point {
	if e.Alignment == types.Vertical {
		return types.Point{X: e.Origin.X, Y: e.Origin.Y + 1}
	}
	return types.Point{X: e.Origin.X + 1, Y: e.Origin.Y}
}

// Cell is a unit square. Edges are indices into the board's arena, never copies.
type Cell struct {
	Location types.Point // lower-left corner
	Edges    [4]EdgeID   // bottom, top, left, right
	Owner    types.Player
}

// Board owns all edges and cells. Topology is fixed after construction; only Edge.Activated and
// Cell.Owner change.
type Board struct {
	points     int
	edges      []Edge
	cells      []Cell
	horizontal [][]EdgeID // [y][x]
	vertical   [][]EdgeID // [y][x]
}

// New builds the standard 7x7 board.
func New() (*Board, error) {
	return build(Points)
}

func build(points int) (*Board, error) {
	if points < 2 {
		return nil, &InvalidBoard{fmt.Sprintf("need at least 2 points per side, got %d", points)}
	}
	n := points - 1
	b := &Board{
		points:     points,
		edges:      make([]Edge, 0, 2*points*n),
		cells:      make([]Cell, 0, n*n),
		horizontal: make([][]EdgeID, points),
		vertical:   make([][]EdgeID, n),
	}

	for y := 0; y < points; y++ {
		b.horizontal[y] = make([]EdgeID, 0, n)
		if y < n {
			b.vertical[y] = make([]EdgeID, 0, points)
		}
		for x := 0; x < points; x++ {
			if x < n {
				b.horizontal[y] = append(b.horizontal[y], b.addEdge(x, y, types.Horizontal))
			}
			if y < n {
				b.vertical[y] = append(b.vertical[y], b.addEdge(x, y, types.Vertical))
			}
		}
	}

	// Consecutive rows of horizontal edges bound a band of cells; consecutive vertical edges in
	// that band split it into cells.
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			b.cells = append(b.cells, Cell{
				Location: types.Point{X: x, Y: y},
				Edges: [4]EdgeID{
					b.horizontal[y][x],
					b.horizontal[y+1][x],
					b.vertical[y][x],
					b.vertical[y][x+1],
				},
			})
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) addEdge(x, y int, a types.Alignment) EdgeID {
	b.edges = append(b.edges, Edge{Origin: types.Point{X: x, Y: y}, Alignment: a})
	return EdgeID(len(b.edges) - 1)
}

// Validate checks that every cell references the shared edge it borders, and that each edge is
// shared by exactly the cells next to it: two for interior edges, one on the boundary.
func (b *Board) Validate() error {
	n := b.points - 1
	if want := 2 * b.points * n; len(b.edges) != want {
		return &InvalidBoard{fmt.Sprintf("have %d edges, want %d", len(b.edges), want)}
	}
	if want := n * n; len(b.cells) != want {
		return &InvalidBoard{fmt.Sprintf("have %d cells, want %d", len(b.cells), want)}
	}

	refs := make([]int, len(b.edges))
	for _, c := range b.cells {
		loc := c.Location
		expect := [4]Edge{
			{Origin: loc, Alignment: types.Horizontal},
			{Origin: types.Point{X: loc.X, Y: loc.Y + 1}, Alignment: types.Horizontal},
			{Origin: loc, Alignment: types.Vertical},
			{Origin: types.Point{X: loc.X + 1, Y: loc.Y}, Alignment: types.Vertical},
		}
		for side, id := range c.Edges {
			if id < 0 || int(id) >= len(b.edges) {
				return &InvalidBoard{fmt.Sprintf("cell %s references unknown edge %d", loc, id)}
			}
			e := b.edges[id]
			if e.Origin != expect[side].Origin || e.Alignment != expect[side].Alignment {
				return &InvalidBoard{fmt.Sprintf("cell %s side %d references %s%s, want %s%s",
					loc, side, e.Alignment, e.Origin, expect[side].Alignment, expect[side].Origin)}
			}
			refs[id]++
		}
	}

	for id, e := range b.edges {
		want := 2
		if b.onBoundary(e) {
			want = 1
		}
		if refs[id] != want {
			return &InvalidBoard{fmt.Sprintf("edge %s%s shared by %d cells, want %d",
				e.Alignment, e.Origin, refs[id], want)}
		}
	}
	return nil
}

func (b *Board) onBoundary(e Edge) bool {
	last := b.points - 1
	if e.Alignment == types.Horizontal {
		return e.Origin.Y == 0 || e.Origin.Y == last
	}
	return e.Origin.X == 0 || e.Origin.X == last
}

// Points returns every lattice point, row by row from the bottom.
func (b *Board) Points() []types.Point {
	pts := make([]types.Point, 0, b.points*b.points)
	for y := 0; y < b.points; y++ {
		for x := 0; x < b.points; x++ {
			pts = append(pts, types.Point{X: x, Y: y})
		}
	}
	return pts
}

// Edges returns the edge arena. The slice is owned by the board; do not modify it.
func (b *Board) Edges() []Edge {
	return b.edges
}

// Cells returns all cells. The slice is owned by the board; do not modify it.
func (b *Board) Cells() []Cell {
	return b.cells
}

// Edge returns the edge with the given id.
func (b *Board) Edge(id EdgeID) (Edge, bool) {
	if id < 0 || int(id) >= len(b.edges) {
		return Edge{}, false
	}
	return b.edges[id], true
}

// Cell returns the cell with the given id.
func (b *Board) Cell(id CellID) (Cell, bool) {
	if id < 0 || int(id) >= len(b.cells) {
		return Cell{}, false
	}
	return b.cells[id], true
}

// EdgeAt looks up an edge by origin and alignment.
func (b *Board) EdgeAt(origin types.Point, a types.Alignment) (EdgeID, bool) {
	x, y := origin.X, origin.Y
	switch a {
	case types.Horizontal:
		if y < 0 || y >= len(b.horizontal) || x < 0 || x >= len(b.horizontal[y]) {
			return NoEdge, false
		}
		return b.horizontal[y][x], true
	case types.Vertical:
		if y < 0 || y >= len(b.vertical) || x < 0 || x >= len(b.vertical[y]) {
			return NoEdge, false
		}
		return b.vertical[y][x], true
	}
	return NoEdge, false
}

// CellAt looks up a cell by its lower-left corner.
func (b *Board) CellAt(loc types.Point) (CellID, bool) {
	n := b.points - 1
	if loc.X < 0 || loc.X >= n || loc.Y < 0 || loc.Y >= n {
		return -1, false
	}
	return CellID(loc.Y*n + loc.X), true
}

// Activate claims an edge. Activation is permanent; activating an already claimed or unknown edge
// is a no-op and returns false.
func (b *Board) Activate(id EdgeID) bool {
	if id < 0 || int(id) >= len(b.edges) {
		return false
	}
	if b.edges[id].Activated {
		return false
	}
	b.edges[id].Activated = true
	return true
}

// Complete returns true if all four edges of the cell are activated.
func (b *Board) Complete(id CellID) bool {
	c, ok := b.Cell(id)
	if !ok {
		return false
	}
	for _, e := range c.Edges {
		if !b.edges[e].Activated {
			return false
		}
	}
	return true
}

// Claim sets the owner of a cell. Ownership is assigned once; later claims return false.
func (b *Board) Claim(id CellID, p types.Player) bool {
	if id < 0 || int(id) >= len(b.cells) || p == types.None {
		return false
	}
	if b.cells[id].Owner != types.None {
		return false
	}
	b.cells[id].Owner = p
	return true
}

// View projects the board for rendering. highlight may be NoEdge.
func (b *Board) View(highlight EdgeID, current types.Player, tick int) *types.BoardView {
	view := &types.BoardView{
		Tick:          tick,
		CurrentPlayer: current,
		Points:        b.points,
		Edges:         make([]types.EdgeView, len(b.edges)),
		Cells:         make([]types.CellView, len(b.cells)),
	}
	for i, e := range b.edges {
		view.Edges[i] = types.EdgeView{
			Origin:      e.Origin,
			Alignment:   e.Alignment,
			Activated:   e.Activated,
			Highlighted: EdgeID(i) == highlight && !e.Activated,
		}
	}
	for i, c := range b.cells {
		view.Cells[i] = types.CellView{Location: c.Location, Owner: c.Owner}
	}
	return view
}
