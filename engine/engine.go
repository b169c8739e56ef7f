// Package engine runs the dots-and-boxes rules: highlight selection, edge activation, cell
// completion and turn order.
package engine

import (
	"squares/board"
	"squares/types"
)

// GameEngine defines the interface the presentation layer drives.
type GameEngine interface {
	// Tick runs one game step: activation, resolution, then highlight recomputation.
	Tick(in Input)

	// View returns a fresh projection of the board for rendering.
	View() *types.BoardView

	// CurrentPlayer returns the player whose turn it is.
	CurrentPlayer() types.Player

	// Mapper returns the projection used to interpret Input pointers.
	Mapper() Mapper

	// OnActivate registers a callback for when an edge is claimed.
	OnActivate(func(edge types.EdgeView, player types.Player))

	// OnCellsTaken registers a callback for when a resolution pass awards cells.
	// The player keeps the turn.
	OnCellsTaken(func(cells []types.Point, player types.Player))
}

// Input is everything the presentation layer samples for one tick. Only the latest pointer sample
// and the latest button press of a tick are consulted.
type Input struct {
	Pointer *types.Vec2 // window pixels, bottom-left origin; nil if the pointer did not move
	Click   bool        // left button pressed this tick
	Window  types.Size  // current window size in pixels
}

// TurnState tracks whose turn it is. Pending is set when an edge has been activated and its
// completions have not been resolved yet.
type TurnState struct {
	Current types.Player
	Pending bool
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	PlayerOne string // display name
	PlayerTwo string
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		PlayerOne: "Player One",
		PlayerTwo: "Player Two",
	}
}

// Name returns the display name of p.
func (c GameConfig) Name(p types.Player) string {
	switch p {
	case types.One:
		if c.PlayerOne != "" {
			return c.PlayerOne
		}
	case types.Two:
		if c.PlayerTwo != "" {
			return c.PlayerTwo
		}
	}
	return p.String()
}

var _ GameEngine = (*Game)(nil)

// edgeView projects one board edge.
func edgeView(e board.Edge) types.EdgeView {
	return types.EdgeView{Origin: e.Origin, Alignment: e.Alignment, Activated: e.Activated}
}
