package engine

import (
	"io"
	"log"

	"squares/board"
	"squares/types"
)

var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

// SetDebugLog directs the engine's trace output to w.
func SetDebugLog(w io.Writer) {
	debugLog.SetOutput(w)
}

// Game implements GameEngine for two players sharing one board.
type Game struct {
	board     *board.Board
	mapper    Mapper
	turn      TurnState
	pointer   *types.Vec2 // latest pointer sample in board space
	highlight board.EdgeID
	tick      int

	activateCallback func(edge types.EdgeView, player types.Player)
	takenCallback    func(cells []types.Point, player types.Player)
}

// NewGame creates a game on a fresh board. Player One moves first.
func NewGame() (*Game, error) {
	b, err := board.New()
	if err != nil {
		return nil, err
	}
	return &Game{
		board:     b,
		mapper:    DefaultMapper(),
		turn:      TurnState{Current: types.One},
		highlight: board.NoEdge,
	}, nil
}

// Tick runs one game step. The order is fixed: a click activates the edge highlighted by the
// previous step, completions of that activation are resolved and the turn decided, and only then
// is the highlight recomputed from the latest pointer.
func (g *Game) Tick(in Input) {
	g.tick++
	if in.Click {
		g.activate()
	}
	g.resolve()
	if in.Pointer != nil && in.Window.W > 0 && in.Window.H > 0 {
		b := g.mapper.ToBoard(*in.Pointer, in.Window)
		g.pointer = &b
	}
	g.updateHighlight()
}

// activate claims the highlighted edge. Without a highlight the click is ignored.
func (g *Game) activate() {
	if g.highlight == board.NoEdge {
		return
	}
	id := g.highlight
	g.highlight = board.NoEdge
	if !g.board.Activate(id) {
		return
	}
	g.turn.Pending = true

	e, _ := g.board.Edge(id)
	debugLog.Printf("activate: %s%s by %s", e.Alignment, e.Origin, g.turn.Current)
	if g.activateCallback != nil {
		g.activateCallback(edgeView(e), g.turn.Current)
	}
}

// resolve awards every cell completed since the last pass to the current player. The player keeps
// the turn if anything was awarded.
func (g *Game) resolve() {
	if !g.turn.Pending {
		return
	}
	player := g.turn.Current

	var taken []types.Point
	for i, c := range g.board.Cells() {
		if c.Owner != types.None {
			continue
		}
		id := board.CellID(i)
		if g.board.Complete(id) && g.board.Claim(id, player) {
			taken = append(taken, c.Location)
			debugLog.Printf("resolve: cell %s taken by %s", c.Location, player)
		}
	}

	g.turn.Pending = false
	if len(taken) == 0 {
		g.turn.Current = player.Other()
		debugLog.Printf("turn: passes to %s", g.turn.Current)
		return
	}
	debugLog.Printf("turn: %s keeps the turn (%d cells)", player, len(taken))
	if g.takenCallback != nil {
		g.takenCallback(taken, player)
	}
}

// updateHighlight recomputes the single highlighted edge from the latest pointer sample.
func (g *Game) updateHighlight() {
	g.highlight = board.NoEdge
	if g.pointer == nil {
		return
	}
	id, ok := g.board.HitTest(*g.pointer)
	if !ok {
		return
	}
	if e, _ := g.board.Edge(id); e.Activated {
		return
	}
	g.highlight = id
}

// View returns a fresh projection of the board for rendering.
func (g *Game) View() *types.BoardView {
	return g.board.View(g.highlight, g.turn.Current, g.tick)
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() types.Player {
	return g.turn.Current
}

// Turn returns a copy of the turn state.
func (g *Game) Turn() TurnState {
	return g.turn
}

// Highlighted returns the highlighted edge, if any.
func (g *Game) Highlighted() (board.EdgeID, bool) {
	return g.highlight, g.highlight != board.NoEdge
}

// Board returns the underlying board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Mapper returns the projection used to interpret Input pointers.
func (g *Game) Mapper() Mapper {
	return g.mapper
}

// Ticks returns the number of steps run so far.
func (g *Game) Ticks() int {
	return g.tick
}

// OnActivate registers a callback for when an edge is claimed.
func (g *Game) OnActivate(callback func(edge types.EdgeView, player types.Player)) {
	g.activateCallback = callback
}

// OnCellsTaken registers a callback for when a resolution pass awards cells.
func (g *Game) OnCellsTaken(callback func(cells []types.Point, player types.Player)) {
	g.takenCallback = callback
}
