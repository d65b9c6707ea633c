package world

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMalformedMap is wrapped by every GameMap validation failure.
var ErrMalformedMap = errors.New("malformed game map")

// GameMap is the static tile grid pushed by the game server.
// Each row of Tiles is a string of single-character tile codes.
type GameMap struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  []string `json:"tiles"`
}

// Rows returns the number of rows in the map
func (m *GameMap) Rows() int {
	return m.Height
}

// Cols returns the number of columns in the map
func (m *GameMap) Cols() int {
	return m.Width
}

// IsValidPosition checks if a row/col position is within map bounds
func (m *GameMap) IsValidPosition(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// TileAt returns the tile code at the given position, or false if out of bounds.
func (m *GameMap) TileAt(row, col int) (rune, bool) {
	if !m.IsValidPosition(row, col) || row >= len(m.Tiles) {
		return 0, false
	}
	c := 0
	for _, code := range m.Tiles[row] {
		if c == col {
			return code, true
		}
		c++
	}
	return 0, false
}

// ForEachTile calls fn for every tile, row by row.
func (m *GameMap) ForEachTile(fn func(row, col int, code rune)) {
	for row, tiles := range m.Tiles {
		col := 0
		for _, code := range tiles {
			fn(row, col, code)
			col++
		}
	}
}

// Validate checks the map invariants: positive dimensions, Height rows,
// and Width codes per row.
func (m *GameMap) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d", ErrMalformedMap, m.Width, m.Height)
	}
	if len(m.Tiles) != m.Height {
		return fmt.Errorf("%w: %d rows, want %d", ErrMalformedMap, len(m.Tiles), m.Height)
	}
	for row, tiles := range m.Tiles {
		if n := utf8.RuneCountInString(tiles); n != m.Width {
			return fmt.Errorf("%w: row %d has %d tiles, want %d", ErrMalformedMap, row, n, m.Width)
		}
	}
	return nil
}
