package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions when stdout is not a terminal
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize reports the columns and rows of the terminal on stdout
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth is the container width of the terminal surface, one column per
// pixel of the layout.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsTerminal reports whether stdout is a terminal. The terminal surface
// drops colours and screen clearing when it is not.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
