package ui

import (
	"math"

	"squares/board"
	"squares/config"
	"squares/engine"
	"squares/types"
)

// Terminal coordinate system:
// - Terminal cells, column c and row r counted from the viewport's top-left
//
// Window pixel coordinate system (what the engine consumes):
// - One pixel per terminal cell, origin at the bottom-left
// - A terminal cell is sampled at its centre: (c+0.5, rows-r-0.5)
//
// The window is Span x unit size pixels. It is not a whole number of rows in general, so the
// top row may stick out past the window; the bottom rows line up with the window origin.

// viewport places the board's window on the terminal.
type viewport struct {
	left, top  int // screen position of the top-left terminal cell
	cols, rows int
	window     types.Size
	mapper     engine.Mapper
}

func newViewport(left, top int, layout config.Layout, m engine.Mapper) viewport {
	w := float64(layout.UnitWidth) * m.Span()
	h := float64(layout.UnitHeight) * m.Span()
	return viewport{
		left:   left,
		top:    top,
		cols:   int(math.Ceil(w)),
		rows:   int(math.Ceil(h)),
		window: types.Size{W: w, H: h},
		mapper: m,
	}
}

// pixel returns the window pixel at the centre of screen cell (sx, sy). Cells outside the
// viewport map to pixels outside the window.
func (v viewport) pixel(sx, sy int) types.Vec2 {
	c, r := sx-v.left, sy-v.top
	return types.Vec2{X: float64(c) + 0.5, Y: float64(v.rows-r) - 0.5}
}

// boardAt returns the board-space coordinate sampled by viewport cell (c, r).
func (v viewport) boardAt(c, r int) types.Vec2 {
	return v.mapper.ToBoard(v.pixel(v.left+c, v.top+r), v.window)
}

// cellOf returns the viewport cell containing board position b.
func (v viewport) cellOf(b types.Vec2) (int, int) {
	p := v.mapper.ToWindow(b, v.window)
	return int(math.Floor(p.X)), v.rows - 1 - int(math.Floor(p.Y))
}

// pixelOf returns the window pixel of board position b.
func (v viewport) pixelOf(b types.Vec2) types.Vec2 {
	return v.mapper.ToWindow(b, v.window)
}

type tileKind int

const (
	tileEmpty tileKind = iota
	tileIdle
	tileHighlight
	tileLine
	tileDot
)

// tile is what one terminal cell of the board shows.
type tile struct {
	kind  tileKind
	edge  int // index into BoardView.Edges, or -1
	owner types.Player
}

// rasterize decides the content of every viewport cell. An edge is drawn exactly on the cells
// whose sample point falls in its hit region, so anything drawn as an edge is clickable as it.
func rasterize(view *types.BoardView, v viewport, drawIdle bool) [][]tile {
	owners := make(map[types.Point]types.Player, len(view.Cells))
	for _, c := range view.Cells {
		owners[c.Location] = c.Owner
	}
	regions := make([]board.Rect, len(view.Edges))
	for i, e := range view.Edges {
		regions[i] = board.HitRegion(e.Origin, e.Alignment)
	}

	tiles := make([][]tile, v.rows)
	for r := range tiles {
		tiles[r] = make([]tile, v.cols)
		for c := range tiles[r] {
			b := v.boardAt(c, r)
			t := tile{edge: -1}
			t.owner = owners[types.Point{X: int(math.Floor(b.X)), Y: int(math.Floor(b.Y))}]

			for i, region := range regions {
				if !region.Contains(b) {
					continue
				}
				e := view.Edges[i]
				t.edge = i
				switch {
				case e.Activated:
					t.kind = tileLine
				case e.Highlighted:
					t.kind = tileHighlight
				case drawIdle:
					t.kind = tileIdle
				}
				break
			}
			tiles[r][c] = t
		}
	}

	for y := 0; y < view.Points; y++ {
		for x := 0; x < view.Points; x++ {
			c, r := v.cellOf(types.Vec2{X: float64(x), Y: float64(y)})
			if r < 0 || r >= v.rows || c < 0 || c >= v.cols {
				continue
			}
			tiles[r][c].kind = tileDot
		}
	}
	return tiles
}
