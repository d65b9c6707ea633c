package controls

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus/hooks/test"

	engineinput "bobfviewer/pkg/engine/input"
	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

func newController(t *testing.T) (*Controller, *state.Store) {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := state.NewStore(state.DefaultFlags())
	builder := visual.NewBuilder(visual.DefaultResources(), visual.MonospaceMeasurer{}, log)
	return New(store, builder, t.TempDir(), log), store
}

func TestProcessIntent_Toggles(t *testing.T) {
	c, store := newController(t)

	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionToggleMapGrid})
	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionToggleItemLabels})
	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionToggleBeer})

	got := store.Snapshot().Flags
	want := state.Flags{ShowMapGrid: true, ShowItemLabels: false, ShowBeer: true}
	if got != want {
		t.Errorf("flags = %+v, want %+v", got, want)
	}

	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionToggleMapGrid})
	if store.Snapshot().Flags.ShowMapGrid {
		t.Error("second toggle did not switch the grid off")
	}
}

func TestProcessIntent_Quit(t *testing.T) {
	c, _ := newController(t)
	if !c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionQuit}).Quit {
		t.Error("quit intent did not quit")
	}
	if c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionNone}).Quit {
		t.Error("none intent quit")
	}
}

func TestProcessIntent_ScreenshotNeedsFrame(t *testing.T) {
	c, store := newController(t)

	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionScreenshot})
	if entries, _ := os.ReadDir(c.DumpDir); len(entries) != 0 {
		t.Fatalf("screenshot written before the map arrived: %v", entries)
	}

	store.SetMap(&world.GameMap{Width: 1, Height: 1, Tiles: []string{"x"}})
	store.SetContainerWidth(100)
	out := c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionScreenshot})

	matches, _ := filepath.Glob(filepath.Join(c.DumpDir, "screenshot-*.html"))
	if len(matches) != 1 {
		t.Fatalf("screenshots = %v", matches)
	}
	if !strings.Contains(out.Message, matches[0]) {
		t.Errorf("message %q does not name %s", out.Message, matches[0])
	}
}

func TestProcessIntent_DumpMap(t *testing.T) {
	c, store := newController(t)

	if _, err := os.Stat(filepath.Join(c.DumpDir, "map.txt")); !os.IsNotExist(err) {
		t.Fatalf("unexpected dump before start: %v", err)
	}
	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionDumpMap})
	if _, err := os.Stat(filepath.Join(c.DumpDir, "map.txt")); !os.IsNotExist(err) {
		t.Error("dump written without a map")
	}

	store.SetMap(&world.GameMap{Width: 1, Height: 1, Tiles: []string{"o"}})
	c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionDumpMap})
	if _, err := os.Stat(filepath.Join(c.DumpDir, "map.txt")); err != nil {
		t.Errorf("dump missing: %v", err)
	}
}

func TestProcessIntent_TranslatedMessages(t *testing.T) {
	gotext.Configure("../../../locales", "en_GB", "default")

	c, store := newController(t)

	if got := c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionToggleMapGrid}).Message; got != "grid: on" {
		t.Errorf("toggle message = %q, want %q", got, "grid: on")
	}
	if got := c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionToggleMapGrid}).Message; got != "grid: off" {
		t.Errorf("toggle message = %q, want %q", got, "grid: off")
	}

	store.SetMap(&world.GameMap{Width: 1, Height: 1, Tiles: []string{"o"}})
	want := "Map dumped to " + filepath.Join(c.DumpDir, "map.txt")
	if got := c.ProcessIntent(engineinput.Intent{Action: engineinput.ActionDumpMap}).Message; got != want {
		t.Errorf("dump message = %q, want %q", got, want)
	}
}
