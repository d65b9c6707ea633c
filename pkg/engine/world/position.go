package world

// Position is a zero-indexed grid cell, origin top-left.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PixelPosition is a point in stage pixel space. It is always derived from
// a Position and the current tile width, never stored independently.
type PixelPosition struct {
	XInPx float64 `json:"xInPx"`
	YInPx float64 `json:"yInPx"`
}

// ToPixel returns the pixel centre of the cell at pos.
func ToPixel(pos Position, tileWidth, halfTileWidth int) PixelPosition {
	return PixelPosition{
		XInPx: float64(pos.X*tileWidth + halfTileWidth),
		YInPx: float64(pos.Y*tileWidth + halfTileWidth),
	}
}

// TopLeft returns the pixel corner of the cell at pos.
func TopLeft(pos Position, tileWidth int) PixelPosition {
	return PixelPosition{
		XInPx: float64(pos.X * tileWidth),
		YInPx: float64(pos.Y * tileWidth),
	}
}
