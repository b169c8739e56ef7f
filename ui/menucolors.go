package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette for the setup and color screens.
var MenuColors = struct {
	Border     tcell.Color
	CardBG     tcell.Color
	Title      tcell.Color
	Label      tcell.Color
	Hint       tcell.Color
	Selected   tcell.Color
	ButtonBG   tcell.Color
	ButtonText tcell.Color
}{
	Border:     tcell.PaletteColor(60),
	CardBG:     tcell.PaletteColor(236),
	Title:      tcell.PaletteColor(255),
	Label:      tcell.PaletteColor(250),
	Hint:       tcell.PaletteColor(245),
	Selected:   tcell.PaletteColor(109),
	ButtonBG:   tcell.PaletteColor(60),
	ButtonText: tcell.PaletteColor(255),
}
