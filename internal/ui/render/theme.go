package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines the application colors and attributes.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	InfoFg      tcell.Color
	ErrorFg     tcell.Color
	FooterFg    tcell.Color
}

// GetColorTheme returns the fixed color scheme. Directories and files are
// told apart with bold/dim attributes so the browser works on any palette.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		SelectionBg: tcell.ColorWhite,
		SelectionFg: tcell.ColorBlack,
		InfoFg:      tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
		FooterFg:    tcell.ColorDefault,
	}
}
