// Package ui specifies custom controls for tview to play dots and boxes in the terminal.
package ui

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"squares/config"
	"squares/engine"
	"squares/snapshot"
	"squares/types"
)

// Style indices into BoardUI.styles.
const (
	styleBoard = iota
	styleDot
	styleLine
	styleIdle
	styleHighlight
	stylePlayerOne
	stylePlayerTwo
)

// MoveEntry is one claimed edge in the move log.
type MoveEntry struct {
	Player types.Player
	Edge   types.EdgeView
	Taken  int // cells completed by this move
}

type BoardUI struct {
	Box         *tview.Box
	hint        *tview.TextView
	cfg         *config.Config
	gameConfig  engine.GameConfig
	eng         engine.GameEngine
	styles      []tcell.Color
	infoPanel   *GameInfoPanel
	moveHistory []MoveEntry
	vp          viewport
	lastPixel   *types.Vec2
	cursor      *types.Vec2 // keyboard pointer in board space
	status      string
	focusMode   bool
}

func NewBoard(c *config.Config, hint *tview.TextView) *BoardUI {
	boardUI := &BoardUI{
		Box:  tview.NewBox(),
		hint: hint,
	}
	boardUI.SetConfig(c)
	boardUI.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		boardUI.layout(x, y, width)
		if boardUI.eng == nil {
			return x, y, width, height
		}
		boardUI.draw(screen)
		return x, y, width, height
	})
	boardUI.Box.SetMouseCapture(boardUI.handleMouse)
	return boardUI
}

// layout centres the viewport horizontally in the box.
func (g *BoardUI) layout(x, y, width int) {
	vp := newViewport(0, 0, g.cfg.Theme.Layout, g.mapper())
	left := x
	if width > vp.cols {
		left += (width - vp.cols) / 2
	}
	g.vp = newViewport(left, y, g.cfg.Theme.Layout, g.mapper())
}

func (g *BoardUI) mapper() engine.Mapper {
	if g.eng != nil {
		return g.eng.Mapper()
	}
	return engine.DefaultMapper()
}

// BoardSize returns the terminal size of the board area.
func (g *BoardUI) BoardSize() (int, int) {
	vp := newViewport(0, 0, g.cfg.Theme.Layout, g.mapper())
	return vp.cols, vp.rows
}

func (g *BoardUI) draw(screen tcell.Screen) {
	tiles := rasterize(g.eng.View(), g.vp, g.cfg.Theme.DrawIdleEdges)
	drawTiles(screen, g.vp, tiles, g.styles, g.cfg.Theme.Symbols)

	if g.cursor == nil {
		return
	}
	c, r := g.vp.cellOf(*g.cursor)
	if r < 0 || r >= len(tiles) || c < 0 || c >= len(tiles[r]) {
		return
	}
	if k := tiles[r][c].kind; k == tileDot || k == tileHighlight {
		return
	}
	_, _, style, _ := screen.GetContent(g.vp.left+c, g.vp.top+r)
	screen.SetContent(g.vp.left+c, g.vp.top+r, '+', nil, style.Foreground(g.styles[styleHighlight]))
}

// drawTiles paints rasterized tiles at the viewport's screen position.
func drawTiles(screen tcell.Screen, vp viewport, tiles [][]tile, styles []tcell.Color, symbols config.ConfigSymbols) {
	for r, row := range tiles {
		for c, t := range row {
			bg := styles[styleBoard]
			switch t.owner {
			case types.One:
				bg = styles[stylePlayerOne]
			case types.Two:
				bg = styles[stylePlayerTwo]
			}
			style := tcell.StyleDefault.Background(bg)
			ch := ' '
			switch t.kind {
			case tileLine:
				style = style.Background(styles[styleLine])
			case tileHighlight:
				style = style.Background(styles[styleHighlight])
			case tileIdle:
				style = style.Foreground(styles[styleIdle])
				ch = symbols.Idle
			case tileDot:
				style = style.Foreground(styles[styleDot])
				ch = symbols.Dot
			}
			screen.SetContent(vp.left+c, vp.top+r, ch, nil, style)
		}
	}
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine, gameCfg engine.GameConfig) {
	g.eng = e
	g.gameConfig = gameCfg
	g.moveHistory = nil
	g.lastPixel = nil
	g.cursor = nil
	g.status = ""
	x, y, width, _ := g.Box.GetRect()
	g.layout(x, y, width)

	e.OnActivate(func(edge types.EdgeView, player types.Player) {
		g.moveHistory = append(g.moveHistory, MoveEntry{Player: player, Edge: edge})
	})
	e.OnCellsTaken(func(cells []types.Point, player types.Player) {
		if n := len(g.moveHistory); n > 0 {
			g.moveHistory[n-1].Taken += len(cells)
		}
		noun := "box"
		if len(cells) > 1 {
			noun = "boxes"
		}
		g.status = fmt.Sprintf("%s took %d %s, go again", g.gameConfig.Name(player), len(cells), noun)
	})

	if g.infoPanel != nil {
		g.infoPanel.SetGame(gameCfg, &g.moveHistory)
	}
	g.refreshHint()
}

// handleMouse turns pointer motion and left presses into engine ticks.
func (g *BoardUI) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if g.eng == nil {
		return action, event
	}
	x, y := event.Position()
	switch action {
	case tview.MouseMove:
		g.cursor = nil
		g.moveTo(g.vp.pixel(x, y))
		return action, nil
	case tview.MouseLeftDown:
		g.cursor = nil
		g.moveTo(g.vp.pixel(x, y))
		g.Click()
		// Let the box take focus as well.
		return action, event
	}
	return action, event
}

// moveTo ticks the engine with a new pointer sample. Repeated samples at the same pixel are dropped.
func (g *BoardUI) moveTo(p types.Vec2) {
	if g.lastPixel != nil && *g.lastPixel == p {
		return
	}
	g.lastPixel = &p
	g.eng.Tick(engine.Input{Pointer: &p, Window: g.vp.window})
	g.refreshHint()
}

// Click ticks the engine with a left-button press.
func (g *BoardUI) Click() {
	if g.eng == nil {
		return
	}
	g.status = ""
	g.eng.Tick(engine.Input{Click: true, Window: g.vp.window})
	g.refreshHint()
}

// MoveCursor moves the keyboard pointer by (h, v) half board units. v is up-positive.
func (g *BoardUI) MoveCursor(h, v int) {
	if g.eng == nil {
		return
	}
	last := float64(g.eng.View().Points - 1)
	if g.cursor == nil {
		// Start on the vertical edge nearest the centre.
		mid := math.Floor(last / 2)
		g.cursor = &types.Vec2{X: mid, Y: mid + 0.5}
	} else {
		next := types.Vec2{
			X: math.Max(0, math.Min(last, g.cursor.X+float64(h)/2)),
			Y: math.Max(0, math.Min(last, g.cursor.Y+float64(v)/2)),
		}
		g.cursor = &next
	}
	g.moveTo(g.vp.pixelOf(*g.cursor))
}

// ResetCursor hides the keyboard pointer. Returns false if it was not shown.
func (g *BoardUI) ResetCursor() bool {
	if g.cursor == nil {
		return false
	}
	g.cursor = nil
	return true
}

// SaveSnapshot writes the current board to the snapshot directory and reports it on the hint
// line. ext is ".png" for an image or ".json" for the board view.
func (g *BoardUI) SaveSnapshot(ext string) {
	if g.eng == nil {
		return
	}
	view := g.eng.View()
	path := filepath.Join(g.cfg.SnapshotDir(), snapshot.Filename(time.Now(), view, ext))
	if err := snapshot.Save(path, view, snapshot.OptionsFromConfig(g.cfg)); err != nil {
		g.status = fmt.Sprintf("Snapshot failed: %s", err)
	} else {
		g.status = fmt.Sprintf("Saved %s", path)
	}
	g.refreshHint()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = themeStyles(c.Theme.Colors)
	g.cfg = c
	if g.infoPanel != nil {
		g.infoPanel.SetColors(g.styles[stylePlayerOne], g.styles[stylePlayerTwo])
	}
}

func themeStyles(colors config.ConfigColors) []tcell.Color {
	return []tcell.Color{
		tcell.PaletteColor(colors.BoardColor),     // 0
		tcell.PaletteColor(colors.DotColor),       // 1
		tcell.PaletteColor(colors.LineColor),      // 2
		tcell.PaletteColor(colors.IdleColor),      // 3
		tcell.PaletteColor(colors.HighlightColor), // 4
		tcell.PaletteColor(colors.PlayerOne),      // 5
		tcell.PaletteColor(colors.PlayerTwo),      // 6
	}
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil && g.eng != nil {
		g.infoPanel.SetBoardState(g.eng.View())
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	if g.eng == nil {
		g.hint.SetText("")
		return
	}

	player := g.eng.CurrentPlayer()
	color := g.styles[stylePlayerOne]
	if player == types.Two {
		color = g.styles[stylePlayerTwo]
	}
	turnLine := fmt.Sprintf("  [#%06x]■[-] %s to move", color.Hex(), tview.Escape(g.gameConfig.Name(player)))
	if g.status != "" {
		turnLine += "   [dimgray]" + tview.Escape(g.status) + "[-]"
	}
	controlsLine := "\n  mouse/hjkl move   ⏎ claim   s/d snapshot/dump   f focus   q quit"

	g.hint.SetText(turnLine + controlsLine)
}
