package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"squares/engine"
)

const maxNameLength = 16

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form *tview.Form
	flex *tview.Flex

	playerOne string
	playerTwo string
}

// NewGameSetup creates a new game setup form. Names left blank fall back to the defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		playerOne: defaults.PlayerOne,
		playerTwo: defaults.PlayerTwo,
	}

	form := tview.NewForm()

	form.AddInputField("Player One", defaults.PlayerOne, maxNameLength+4, nameAccept, func(text string) {
		setup.playerOne = text
	})
	form.AddInputField("Player Two", defaults.PlayerTwo, maxNameLength+4, nameAccept, func(text string) {
		setup.playerTwo = text
	})

	form.AddButton("Start Game", func() {
		onStart(setup.config(defaults))
	})

	form.AddButton("Colors", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetLabelColor(MenuColors.Label)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetFieldTextColor(MenuColors.Title)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Enter: confirm  |  Player One moves first").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

func nameAccept(text string, lastChar rune) bool {
	return len([]rune(text)) <= maxNameLength && lastChar >= ' '
}

func (s *GameSetupUI) config(defaults engine.GameConfig) engine.GameConfig {
	cfg := defaults
	if name := strings.TrimSpace(s.playerOne); name != "" {
		cfg.PlayerOne = name
	}
	if name := strings.TrimSpace(s.playerTwo); name != "" {
		cfg.PlayerTwo = name
	}
	return cfg
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
