package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"squares/engine"
	"squares/types"
)

const (
	infoPanelWidth  = 26
	maxVisibleMoves = 12
)

// GameInfoPanel displays game information and the move log alongside the board.
type GameInfoPanel struct {
	box         *tview.TextView
	view        *types.BoardView
	gameConfig  engine.GameConfig
	moveHistory *[]MoveEntry
	colorOne    tcell.Color
	colorTwo    tcell.Color
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:        tview.NewTextView(),
		gameConfig: engine.DefaultConfig(),
		colorOne:   tcell.ColorWhite,
		colorTwo:   tcell.ColorGray,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with the current board view.
func (p *GameInfoPanel) SetBoardState(view *types.BoardView) {
	p.view = view
	p.refresh()
}

// SetGame sets the player names and a pointer to the move log.
func (p *GameInfoPanel) SetGame(cfg engine.GameConfig, history *[]MoveEntry) {
	p.gameConfig = cfg
	p.moveHistory = history
}

// SetColors sets the player swatch colors.
func (p *GameInfoPanel) SetColors(one, two tcell.Color) {
	p.colorOne = one
	p.colorTwo = two
}

func (p *GameInfoPanel) swatch(player types.Player) string {
	color := p.colorOne
	if player == types.Two {
		color = p.colorTwo
	}
	return fmt.Sprintf("[#%06x]■[-]", color.Hex())
}

func (p *GameInfoPanel) refresh() {
	p.box.SetText(p.render())
}

func (p *GameInfoPanel) render() string {
	if p.view == nil {
		return ""
	}

	var text strings.Builder

	text.WriteString("[white::b]Game Info[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	for _, player := range []types.Player{types.One, types.Two} {
		marker := " "
		if player == p.view.CurrentPlayer {
			marker = "[white]>[-]"
		}
		fmt.Fprintf(&text, "%s%s %s\n", marker, p.swatch(player), tview.Escape(p.gameConfig.Name(player)))
	}
	text.WriteString("\n")

	fmt.Fprintf(&text, "[white]Tick:[-:-:-] %d\n", p.view.Tick)
	fmt.Fprintf(&text, "[white]Edges:[-:-:-] %d/%d\n", p.view.ActivatedCount(), len(p.view.Edges))

	if p.moveHistory == nil || len(*p.moveHistory) == 0 {
		return text.String()
	}

	text.WriteString("\n[white::b]Moves[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	moves := *p.moveHistory
	start := 0
	if len(moves) > maxVisibleMoves {
		start = len(moves) - maxVisibleMoves
	}

	for i := start; i < len(moves); i++ {
		m := moves[i]

		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}
		taken := ""
		if m.Taken > 0 {
			taken = fmt.Sprintf(" [white]+%d[-]", m.Taken)
		}

		fmt.Fprintf(&text, "%s[dimgray]%3d.[-] %s %s%s\n", marker, i+1, p.swatch(m.Player), m.Edge, taken)
	}

	if start > 0 {
		fmt.Fprintf(&text, "[dimgray]  ··· %d earlier[-]\n", start)
	}
	return text.String()
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetColors(board.styles[stylePlayerOne], board.styles[stylePlayerTwo])
	infoPanel.SetGame(board.gameConfig, &board.moveHistory)
	if board.eng != nil {
		infoPanel.SetBoardState(board.eng.View())
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), infoPanelWidth, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	boardWidth, boardHeight := board.BoardSize()

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
