package renderer

import (
	"context"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFloor
	StyleWall
	StyleExit
	StyleMine
	StyleItem
	StylePlayer
	StyleProjectile
	StyleLabel
	StyleSubtle
	StyleError
)

// Renderer defines the interface for viewer surfaces.
// Implementations include the ebiten window, the terminal and headless.
type Renderer interface {
	// Init prepares the surface (colours, fonts, textures)
	Init()

	// Run paints frames from the store until ctx ends or the user quits
	Run(ctx context.Context) error

	// ShowMessage displays a short status message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Run runs the current renderer
func Run(ctx context.Context) error {
	if Current == nil {
		return nil
	}
	return Current.Run(ctx)
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
