package ebiten

import (
	"image/color"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"bobfviewer/pkg/game/visual"
)

const (
	placeholderSize      = 32
	placeholderFloorSize = 96 // 12 tiles of 8px per side
)

// loadTextures fills the texture table from <assetDir>/<key>.png, falling
// back to a generated placeholder for every missing file.
func (e *EbitenRenderer) loadTextures() {
	loaded := 0
	for _, key := range visual.AllTextures {
		if e.assetDir != "" {
			path := filepath.Join(e.assetDir, string(key)+".png")
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err == nil {
				e.textures[key] = img
				loaded++
				continue
			}
			e.log.WithFields(logrus.Fields{"texture": key, "path": path}).WithError(err).Debug("Texture not found, using placeholder")
		}
		e.textures[key] = placeholderTexture(key)
	}
	e.log.WithFields(logrus.Fields{"loaded": loaded, "total": len(visual.AllTextures)}).Info("Textures ready")
}

// placeholderTexture draws a simple stand-in for key
func placeholderTexture(key visual.TextureKey) *ebiten.Image {
	col, ok := placeholderColors[key]
	if !ok {
		// players are white so their tint shows through
		col = color.RGBA{255, 255, 255, 255}
	}

	switch key {
	case visual.TextureFloor:
		img := ebiten.NewImage(placeholderFloorSize, placeholderFloorSize)
		img.Fill(col)
		dark := color.RGBA{col.R - 12, col.G - 12, col.B - 12, 255}
		cell := float32(placeholderFloorSize / 12)
		for row := 0; row < 12; row++ {
			for c := 0; c < 12; c++ {
				if (row+c)%2 == 0 {
					vector.DrawFilledRect(img, float32(c)*cell, float32(row)*cell, cell, cell, dark, false)
				}
			}
		}
		return img

	case visual.TextureWall:
		img := ebiten.NewImage(placeholderSize, placeholderSize)
		img.Fill(col)
		return img

	case visual.TextureLabel:
		img := ebiten.NewImage(placeholderSize, placeholderSize)
		drawRoundedRect(img, 1, 1, placeholderSize-2, placeholderSize-2, 5, 1.5, col, colorLabelBorder)
		return img

	case visual.TextureEnergyBall, visual.TextureMine:
		img := ebiten.NewImage(placeholderSize, placeholderSize)
		vector.DrawFilledCircle(img, placeholderSize/2, placeholderSize/2, placeholderSize/4, col, true)
		return img
	}

	if isPlayerTexture(key) {
		img := ebiten.NewImage(placeholderSize, placeholderSize)
		vector.DrawFilledCircle(img, placeholderSize/2, placeholderSize/2, placeholderSize*3/8, col, true)
		return img
	}

	img := ebiten.NewImage(placeholderSize, placeholderSize)
	drawRoundedRect(img, 8, 8, placeholderSize-16, placeholderSize-16, 3, 0, col, col)
	return img
}

func isPlayerTexture(key visual.TextureKey) bool {
	for _, p := range visual.DefaultResources().Players {
		if p == key {
			return true
		}
	}
	return false
}
