package ebiten

import (
	"image/color"

	"bobfviewer/pkg/game/visual"
)

const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 720

	// messageDurationMs is how long a status message stays on screen
	messageDurationMs = 3000

	uiFontSize = 16
)

// Color palette of the window chrome
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
)

// placeholderColors are used for textures missing from the asset directory
var placeholderColors = map[visual.TextureKey]color.RGBA{
	visual.TextureWall:       {90, 90, 110, 255},
	visual.TextureFloor:      {60, 60, 70, 255},
	visual.TextureMine:       {200, 60, 60, 255},
	visual.TextureExit:       {80, 220, 120, 255},
	visual.TexturePotion:     {120, 160, 255, 255},
	visual.TextureBeer:       {240, 190, 60, 255},
	visual.TextureWeaponWand: {200, 120, 255, 255},
	visual.TextureWeaponAxe:  {180, 180, 190, 255},
	visual.TextureJunk1:      {170, 130, 90, 255},
	visual.TextureJunk2:      {150, 150, 110, 255},
	visual.TextureJunk3:      {130, 110, 140, 255},
	visual.TextureEnergyBall: {255, 220, 60, 255},
	visual.TextureLabel:      {245, 240, 225, 255},
}

// colorLabelBorder outlines the placeholder label panel
var colorLabelBorder = color.RGBA{60, 50, 40, 255}
