// Package layout derives the stage geometry from the map size and the
// width available to the stage.
package layout

import (
	"math"

	"bobfviewer/pkg/engine/world"
)

// floorTilesPerTexture is how many floor tiles the floor texture holds per side
const floorTilesPerTexture = 12

// MapDimensions is derived on every frame and never patched in place.
type MapDimensions struct {
	Width          int `json:"width"`
	Height         int `json:"height"`
	ContainerWidth int `json:"containerWidth"`
	TileWidth      int `json:"tileWidth"`
	HalfTileWidth  int `json:"halfTileWidth"`
	StageWidth     int `json:"stageWidth"`
	StageHeight    int `json:"stageHeight"`
}

// Compute returns the dimensions for gameMap inside containerWidth.
// ok is false while either input is still unknown.
func Compute(gameMap *world.GameMap, containerWidth *int) (MapDimensions, bool) {
	if gameMap == nil || containerWidth == nil || gameMap.Width <= 0 {
		return MapDimensions{}, false
	}
	return ComputeSize(gameMap.Width, gameMap.Height, *containerWidth), true
}

// ComputeSize is Compute for known inputs. Tile width is floored so the
// stage never overflows the container; leftover width stays unused.
func ComputeSize(mapWidth, mapHeight, containerWidth int) MapDimensions {
	tileWidth := 0
	if containerWidth > 0 && mapWidth > 0 {
		tileWidth = containerWidth / mapWidth
	}

	return MapDimensions{
		Width:          mapWidth,
		Height:         mapHeight,
		ContainerWidth: containerWidth,
		TileWidth:      tileWidth,
		HalfTileWidth:  int(math.Round(float64(tileWidth) / 2)),
		StageWidth:     mapWidth * tileWidth,
		StageHeight:    mapHeight * tileWidth,
	}
}

// FloorTileScale is the scale that makes one floor texture tile match one map tile.
func (d MapDimensions) FloorTileScale(floorTextureWidth float64) float64 {
	if floorTextureWidth <= 0 {
		return 1
	}
	return float64(d.TileWidth) / (floorTextureWidth / floorTilesPerTexture)
}
