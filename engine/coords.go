package engine

import "squares/types"

// Window pixel space:
// - Origin at the bottom-left corner of the window
// - X right, Y up, in pixels
// - Size W x H
//
// Board space:
// - Same orientation, one unit per lattice step
// - Dots at integer coordinates 0..6
//
// The camera shows Extent board units across the window, shrunk by Scale so that the board does
// not touch the window border, and shifted by Offset to centre the dots.

// Mapper converts between window pixels and board space.
type Mapper struct {
	Extent float64    // board units visible across the window before scaling
	Scale  float64    // fraction of Extent actually shown
	Offset types.Vec2 // board-space shift of the window origin
}

// DefaultMapper returns the projection used by every renderer in squares.
func DefaultMapper() Mapper {
	return Mapper{
		Extent: 7,
		Scale:  0.9,
		Offset: types.Vec2{X: 0.1, Y: 0.1},
	}
}

// ToBoard converts a pixel position to board space.
// (0, 0) -> (-0.1, -0.1), (W, H) -> (6.2, 6.2) with the default mapper.
func (m Mapper) ToBoard(p types.Vec2, window types.Size) types.Vec2 {
	return types.Vec2{
		X: p.X/window.W*m.Extent*m.Scale - m.Offset.X,
		Y: p.Y/window.H*m.Extent*m.Scale - m.Offset.Y,
	}
}

// ToWindow converts a board-space position to pixels. It is the inverse of ToBoard.
func (m Mapper) ToWindow(b types.Vec2, window types.Size) types.Vec2 {
	return types.Vec2{
		X: (b.X + m.Offset.X) / (m.Extent * m.Scale) * window.W,
		Y: (b.Y + m.Offset.Y) / (m.Extent * m.Scale) * window.H,
	}
}

// Span returns the number of board units covered by the full window.
func (m Mapper) Span() float64 {
	return m.Extent * m.Scale
}
