// squares is a two-player dots and boxes game for the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"squares/config"
	"squares/engine"
	"squares/snapshot"
	"squares/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagPlayerOne  = flag.String("one", "", "Name of the first player")
	flagPlayerTwo  = flag.String("two", "", "Name of the second player")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagDebug      = flag.Bool("debug", false, "Write a debug log of every move")
	flagSnapshot   = flag.String("snapshot", "", "Write an empty board to the given file (PNG, or JSON for a .json path) and exit")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("squares %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "squares: %s\n", err)
		os.Exit(1)
	}

	if *flagSnapshot != "" {
		if err := writeSnapshot(*flagSnapshot); err != nil {
			fmt.Fprintf(os.Stderr, "squares: %s\n", err)
			os.Exit(1)
		}
		return
	}

	if *flagDebug {
		closeLog, err := openDebugLog()
		if err != nil {
			fmt.Fprintf(os.Stderr, "squares: %s\n", err)
			os.Exit(1)
		}
		defer closeLog()
	}

	quickStart := *flagQuickStart || *flagPlayerOne != "" || *flagPlayerTwo != "" || *flagFocus

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ▪ squares ")

	gameHint = tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveCursor(0, 1)
		case tcell.KeyDown:
			gameBoard.MoveCursor(0, -1)
		case tcell.KeyLeft:
			gameBoard.MoveCursor(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveCursor(1, 0)
		case tcell.KeyEnter:
			gameBoard.Click()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				if !gameBoard.ResetCursor() {
					rootPage.SwitchToPage("setup")
				}
				return nil
			case 'h':
				gameBoard.MoveCursor(-1, 0)
			case 'j':
				gameBoard.MoveCursor(0, -1)
			case 'k':
				gameBoard.MoveCursor(0, 1)
			case 'l':
				gameBoard.MoveCursor(1, 0)
			case ' ':
				gameBoard.Click()
			case 's':
				gameBoard.SaveSnapshot(".png")
			case 'd':
				gameBoard.SaveSnapshot(".json")
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(
		defaultGameConfig(),
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(defaultGameConfig())
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// startGame starts a fresh game with the given players.
func startGame(gameCfg engine.GameConfig) {
	game, err := engine.NewGame()
	if err != nil {
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.HidePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	gameBoard.ConnectEngine(game, gameCfg)
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameBoard.Box)
}

// defaultGameConfig builds player names from the config file, overridden by flags.
func defaultGameConfig() engine.GameConfig {
	gameCfg := engine.GameConfig{
		PlayerOne: cfg.Players.One,
		PlayerTwo: cfg.Players.Two,
	}
	if *flagPlayerOne != "" {
		gameCfg.PlayerOne = *flagPlayerOne
	}
	if *flagPlayerTwo != "" {
		gameCfg.PlayerTwo = *flagPlayerTwo
	}
	return gameCfg
}

// writeSnapshot renders a fresh board to path.
func writeSnapshot(path string) error {
	game, err := engine.NewGame()
	if err != nil {
		return err
	}
	return snapshot.Save(path, game.View(), snapshot.OptionsFromConfig(cfg))
}

// openDebugLog routes the engine debug log to the state directory.
func openDebugLog() (func(), error) {
	path, err := config.DebugLogPath()
	if err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	engine.SetDebugLog(f)
	return func() { f.Close() }, nil
}
