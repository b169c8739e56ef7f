package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"squares/board"
	"squares/config"
	"squares/engine"
	"squares/types"
)

// ColorConfigUI provides a player color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	status    *tview.TextView
	cfg       *config.Config
	sample    *types.BoardView
	save      func() error

	selectedOne int
	selectedTwo int
	editingTwo  bool // false = editing Player One
}

type paletteEntry struct {
	code int
	name string
}

// Box fill colors that read well against a light board.
var playerColors = []paletteEntry{
	{174, "Rose"},
	{167, "Brick"},
	{210, "Salmon"},
	{216, "Peach"},
	{179, "Ochre"},
	{143, "Olive"},
	{114, "Sage"},
	{108, "Moss"},
	{73, "Teal"},
	{110, "Sky"},
	{68, "Cornflower"},
	{140, "Lavender"},
	{139, "Mauve"},
	{181, "Dusty Rose"},
	{248, "Medium Gray"},
}

// NewColorConfig creates a new color configuration screen. onDone is called once both colors
// are chosen and saved; it is not called when saving fails.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:         cfg,
		sample:      sampleView(),
		save:        cfg.Save,
		selectedOne: cfg.Theme.Colors.PlayerOne,
		selectedTwo: cfg.Theme.Colors.PlayerTwo,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetSelectedBackgroundColor(MenuColors.Selected)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(playerColors) {
			return
		}
		if cc.editingTwo {
			cc.selectedTwo = playerColors[index].code
		} else {
			cc.selectedOne = playerColors[index].code
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if !cc.editingTwo {
			cc.editingTwo = true
			cc.populateColorList()
			return
		}
		if cc.apply() {
			onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.status = tview.NewTextView()
	cc.status.SetTextColor(MenuColors.Hint)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(cc.preview, 0, 1, false).
		AddItem(cc.status, 1, 0, false)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(right, 0, 1, false)

	return cc
}

// apply stores both selected colors in the config and saves it. On a failed save the config is
// left unchanged, the error stays on screen and apply returns false.
func (cc *ColorConfigUI) apply() bool {
	prev := cc.cfg.Theme.Colors
	cc.cfg.Theme.Colors.PlayerOne = cc.selectedOne
	cc.cfg.Theme.Colors.PlayerTwo = cc.selectedTwo
	if err := cc.save(); err != nil {
		cc.cfg.Theme.Colors = prev
		cc.status.SetText(fmt.Sprintf("Could not save: %s (q to go back)", err))
		return false
	}
	cc.status.SetText("")
	cc.editingTwo = false
	cc.populateColorList()
	return true
}

// sampleView is a small game with one box taken by each player.
func sampleView() *types.BoardView {
	b, err := board.New()
	if err != nil {
		return &types.BoardView{}
	}
	take := func(loc types.Point, p types.Player) {
		id, _ := b.CellAt(loc)
		c, _ := b.Cell(id)
		for _, e := range c.Edges {
			b.Activate(e)
		}
		b.Claim(id, p)
	}
	take(types.Point{X: 1, Y: 1}, types.One)
	take(types.Point{X: 2, Y: 1}, types.Two)
	if id, ok := b.EdgeAt(types.Point{X: 3, Y: 2}, types.Vertical); ok {
		b.Activate(id)
	}
	highlight, _ := b.EdgeAt(types.Point{X: 1, Y: 3}, types.Horizontal)
	return b.View(highlight, types.One, 0)
}

func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	selected := cc.selectedOne
	if cc.editingTwo {
		cc.colorList.SetTitle(" Player Two Color (Tab: switch) ")
		selected = cc.selectedTwo
	} else {
		cc.colorList.SetTitle(" Player One Color (Tab: switch) ")
	}
	for i, c := range playerColors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range playerColors {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	colors := cc.cfg.Theme.Colors
	colors.PlayerOne = cc.selectedOne
	colors.PlayerTwo = cc.selectedTwo

	layout := config.Layout{UnitWidth: 6, UnitHeight: 3}
	vp := newViewport(x+2, y+1, layout, engine.DefaultMapper())
	if width < vp.cols+4 || height < vp.rows+3 {
		return x, y, width, height
	}

	tiles := rasterize(cc.sample, vp, cc.cfg.Theme.DrawIdleEdges)
	drawTiles(screen, vp, tiles, themeStyles(colors), cc.cfg.Theme.Symbols)

	info := fmt.Sprintf("One: %d  Two: %d", cc.selectedOne, cc.selectedTwo)
	for i, ch := range info {
		if vp.left+i < x+width-1 {
			screen.SetContent(vp.left+i, vp.top+vp.rows+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between Player One and Player Two color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingTwo = !cc.editingTwo
	cc.populateColorList()
}
