package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// ErrNoMap is returned when there is nothing to dump yet
var ErrNoMap = errors.New("no map")

// tileSymbol returns the dump symbol for a tile code. Known codes are
// written as the server sends them; unknown ones become '?'.
func tileSymbol(code rune) rune {
	if world.Classify(code) == world.TileUnknown {
		return '?'
	}
	return code
}

// writeMapGrid writes the grid to w with an optional item/player overlay.
func writeMapGrid(w io.Writer, m *world.GameMap, overlay map[world.Position]rune) {
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			if sym, ok := overlay[world.Position{X: col, Y: row}]; ok {
				fmt.Fprintf(w, "%c", sym)
				continue
			}
			code, ok := m.TileAt(row, col)
			if !ok {
				fmt.Fprint(w, " ")
				continue
			}
			fmt.Fprintf(w, "%c", tileSymbol(code))
		}
		fmt.Fprintln(w)
	}
}

// stateOverlay marks items with 'i' and players with '@'. Players win
// when both share a tile.
func stateOverlay(gs *state.GameState) map[world.Position]rune {
	overlay := make(map[world.Position]rune)
	if gs == nil {
		return overlay
	}
	for _, item := range gs.Items {
		overlay[item.Position] = 'i'
	}
	for _, p := range gs.Players {
		overlay[p.Position] = '@'
	}
	return overlay
}

// DumpMap writes a debug dump of the current map and state to map.txt in
// dir: metadata, legend, the raw map, the map with items and players, and
// detailed lists. It returns the absolute path of the written file.
func DumpMap(gameMap *world.GameMap, gs *state.GameState, dir string) (string, error) {
	if gameMap == nil {
		return "", ErrNoMap
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, gameMap, gs); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteMapDump writes the dump to w
func WriteMapDump(w io.Writer, gameMap *world.GameMap, gs *state.GameState) error {
	report := world.ClassifyMap(gameMap)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (tiles, items, players) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "name: %s\n", gameMap.Name)
	fmt.Fprintf(w, "width: %d\n", gameMap.Width)
	fmt.Fprintf(w, "height: %d\n", gameMap.Height)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "valid: %v\n", gameMap.Validate() == nil)
	fmt.Fprintf(w, "static_tiles: %d\n", len(report.Static))
	fmt.Fprintf(w, "unknown_tiles: %d\n", len(report.Unknown))
	fmt.Fprintf(w, "has_state: %v\n", gs != nil)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (tile symbols) ---")
	fmt.Fprintf(w, "%c = floor  %c = wall  %c = exit  %c = mine  ? = unknown  i = item  @ = player\n",
		world.CodeFloor, world.CodeWall, world.CodeExit, world.CodeMine)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (tiles only) ---")
	writeMapGrid(w, gameMap, nil)
	fmt.Fprintln(w, "")

	if gs != nil {
		fmt.Fprintln(w, "--- Map (with items and players) ---")
		writeMapGrid(w, gameMap, stateOverlay(gs))
		fmt.Fprintln(w, "")
	}

	// --- Unknown tiles ---
	if len(report.Unknown) > 0 {
		var codes []rune
		report.UnknownCodes.Each(func(c rune) { codes = append(codes, c) })
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

		fmt.Fprintln(w, "--- Unknown tiles ---")
		for _, c := range codes {
			fmt.Fprintf(w, "code: %q\n", c)
		}
		for _, u := range report.Unknown {
			fmt.Fprintf(w, "  %q at %d,%d\n", u.Code, u.Col, u.Row)
		}
		fmt.Fprintln(w, "")
	}

	if gs == nil {
		return nil
	}

	fmt.Fprintln(w, "--- Players ---")
	for _, p := range gs.Players {
		fmt.Fprintf(w, "%s: %d,%d money=%g score=%g time_in_state=%d\n",
			p.Name, p.Position.X, p.Position.Y, p.Money, p.Score, p.TimeInState)
	}
	for _, p := range gs.FinishedPlayers {
		fmt.Fprintf(w, "%s: finished score=%g\n", p.Name, p.Score)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Items ---")
	for _, item := range gs.Items {
		fmt.Fprintf(w, "%s: %d,%d price=%g discount=%g\n",
			item.Type, item.Position.X, item.Position.Y, item.Price, item.DiscountPercent)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Shooting lines ---")
	for _, line := range gs.ShootingLines {
		fmt.Fprintf(w, "%d,%d -> %d,%d age=%d\n",
			line.FromPosition.X, line.FromPosition.Y, line.ToPosition.X, line.ToPosition.Y, line.Age)
	}

	return nil
}
