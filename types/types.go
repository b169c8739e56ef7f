// Package types contains shared data structures for squares.
package types

import (
	"encoding/json"
	"fmt"
)

// Point is an integer lattice coordinate. Origin is the bottom-left dot.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MarshalJSON encodes a Point as a JSON array [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON decodes a Point from a JSON array [x, y] of integers.
func (p *Point) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("point: %w", err)
	}
	if len(v) != 2 {
		return fmt.Errorf("point needs 2 coordinates, got %d", len(v))
	}
	p.X = v[0]
	p.Y = v[1]
	return nil
}

// Alignment is the direction an edge runs from its origin.
type Alignment int

const (
	Horizontal Alignment = iota // origin (x,y) to (x+1,y)
	Vertical                    // origin (x,y) to (x,y+1)
)

func (a Alignment) String() string {
	if a == Vertical {
		return "V"
	}
	return "H"
}

// MarshalJSON encodes an Alignment as "H" or "V".
func (a Alignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes "H" or "V".
func (a *Alignment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("alignment: %w", err)
	}
	switch s {
	case "H":
		*a = Horizontal
	case "V":
		*a = Vertical
	default:
		return fmt.Errorf("unknown alignment %q", s)
	}
	return nil
}

// Player identifies who owns a cell or whose turn it is. 0=nobody, 1=one, 2=two.
type Player int

const (
	None Player = iota
	One
	Two
)

// Other returns the opposing player (One<->Two). None stays None.
func (p Player) Other() Player {
	switch p {
	case One:
		return Two
	case Two:
		return One
	}
	return None
}

func (p Player) String() string {
	switch p {
	case One:
		return "One"
	case Two:
		return "Two"
	}
	return "None"
}

// Vec2 is a continuous coordinate pair, used both for board space and window pixels.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the width and height of a window in pixels.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// EdgeView is the render-facing state of one edge.
type EdgeView struct {
	Origin      Point     `json:"origin"`
	Alignment   Alignment `json:"alignment"`
	Activated   bool      `json:"activated"`
	Highlighted bool      `json:"highlighted"`
}

// Visible returns true if the edge is drawn whether or not idle edges are shown.
func (e EdgeView) Visible() bool {
	return e.Activated || e.Highlighted
}

func (e EdgeView) String() string {
	return fmt.Sprintf("%s%s", e.Alignment, e.Origin)
}

// CellView is the render-facing state of one cell.
type CellView struct {
	Location Point  `json:"location"` // lower-left corner
	Owner    Player `json:"owner"`
}

// BoardView is a fresh projection of the game state for rendering.
// It is rebuilt from the core on request and never fed back into it.
type BoardView struct {
	Tick          int        `json:"tick"`
	CurrentPlayer Player     `json:"current_player"`
	Points        int        `json:"points"` // dots per side
	Edges         []EdgeView `json:"edges"`
	Cells         []CellView `json:"cells"`
}

// ActivatedCount returns the number of claimed edges.
func (b *BoardView) ActivatedCount() int {
	n := 0
	for _, e := range b.Edges {
		if e.Activated {
			n++
		}
	}
	return n
}

// Highlighted returns the highlighted edge, if any.
func (b *BoardView) Highlighted() *EdgeView {
	for i := range b.Edges {
		if b.Edges[i].Highlighted {
			return &b.Edges[i]
		}
	}
	return nil
}
