package devtools

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

func testMap() *world.GameMap {
	return &world.GameMap{Name: "arena", Width: 3, Height: 2, Tiles: []string{"xo#", "_Q_"}}
}

func TestWriteMapDump(t *testing.T) {
	gs := &state.GameState{
		Items:   []state.Item{{Type: state.ItemPotion, Position: world.Position{X: 0, Y: 1}}},
		Players: []state.Player{{Name: "bob", Position: world.Position{X: 2, Y: 1}, Score: 3}},
	}

	var buf bytes.Buffer
	if err := WriteMapDump(&buf, testMap(), gs); err != nil {
		t.Fatalf("WriteMapDump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"name: arena",
		"unknown_tiles: 1",
		"xo#\n_?_\n",
		"xo#\ni?@\n",
		"code: 'Q'",
		"bob: 2,1",
		"POTION: 0,1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\n%s", want, out)
		}
	}
}

func TestDumpMap_WritesFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpMap(testMap(), nil, dir)
	if err != nil {
		t.Fatalf("DumpMap: %v", err)
	}
	if filepath.Base(path) != mapDumpFilename {
		t.Errorf("path = %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(data), "--- Players ---") {
		t.Error("players section written without state")
	}
}

func TestDumpMap_NoMap(t *testing.T) {
	if _, err := DumpMap(nil, nil, t.TempDir()); !errors.Is(err, ErrNoMap) {
		t.Errorf("err = %v, want ErrNoMap", err)
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	log, _ := test.NewNullLogger()
	builder := visual.NewBuilder(visual.DefaultResources(), visual.MonospaceMeasurer{}, log)
	width := 300
	frame, ok := builder.Build(visual.Scene{
		Map:            testMap(),
		ContainerWidth: &width,
		Flags:          state.DefaultFlags(),
		State: &state.GameState{
			Players: []state.Player{{Name: "<bob>", Position: world.Position{X: 1, Y: 1}}},
		},
	})
	if !ok {
		t.Fatal("frame not built")
	}

	path, err := SaveScreenshotHTML(frame, t.TempDir())
	if err != nil {
		t.Fatalf("SaveScreenshotHTML: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	page := string(data)

	for _, want := range []string{
		`width:300px;height:200px`,
		`class="p tile"`,
		`class="p player"`,
		`&lt;bob&gt;`,
		`Unknown tiles:`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(page, "<bob>") {
		t.Error("label text not escaped")
	}
}
