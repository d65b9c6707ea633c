package world

import (
	"github.com/zyedidia/generic/mapset"
)

// TileCategory is the visual category of a static map tile.
type TileCategory int

const (
	TileFloor TileCategory = iota
	TileWall
	TileExit
	TileMine
	TileUnknown
)

// Tile codes used by the game server.
const (
	CodeWall  = 'x'
	CodeExit  = 'o'
	CodeMine  = '#'
	CodeFloor = '_'
)

// String returns the string representation of a tile category
func (c TileCategory) String() string {
	switch c {
	case TileFloor:
		return "Floor"
	case TileWall:
		return "Wall"
	case TileExit:
		return "Exit"
	case TileMine:
		return "Mine"
	default:
		return "Unknown"
	}
}

// HasSprite reports whether tiles of this category get their own sprite.
// Floor is painted once as a tiling background.
func (c TileCategory) HasSprite() bool {
	switch c {
	case TileWall, TileExit, TileMine:
		return true
	default:
		return false
	}
}

// Classify maps a tile code to its category.
func Classify(code rune) TileCategory {
	switch code {
	case CodeWall:
		return TileWall
	case CodeExit:
		return TileExit
	case CodeMine:
		return TileMine
	case CodeFloor:
		return TileFloor
	default:
		return TileUnknown
	}
}

// StaticTile is a tile that gets a sprite.
type StaticTile struct {
	Row      int
	Col      int
	Category TileCategory
}

// Position returns the grid position of the tile.
func (t StaticTile) Position() Position {
	return Position{X: t.Col, Y: t.Row}
}

// UnknownTile is an unrecognized code and where it was found.
type UnknownTile struct {
	Code rune `json:"code"`
	Row  int  `json:"row"`
	Col  int  `json:"col"`
}

// TileReport is the classification of a whole map.
type TileReport struct {
	Static       []StaticTile
	Unknown      []UnknownTile
	UnknownCodes mapset.Set[rune]
}

// ClassifyMap classifies every tile of m. Floor tiles are dropped silently;
// unknown ones are collected so the caller can report them.
func ClassifyMap(m *GameMap) TileReport {
	report := TileReport{UnknownCodes: mapset.New[rune]()}
	if m == nil {
		return report
	}

	m.ForEachTile(func(row, col int, code rune) {
		category := Classify(code)
		switch {
		case category.HasSprite():
			report.Static = append(report.Static, StaticTile{Row: row, Col: col, Category: category})
		case category == TileUnknown:
			report.Unknown = append(report.Unknown, UnknownTile{Code: code, Row: row, Col: col})
			report.UnknownCodes.Put(code)
		}
	})

	return report
}
