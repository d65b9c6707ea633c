package renderer

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

func TestStatusText(t *testing.T) {
	width := 300
	gameMap := &world.GameMap{Width: 1, Height: 1, Tiles: []string{"_"}}

	tests := []struct {
		name string
		snap state.Snapshot
		want string
		show bool
	}{
		{"nothing yet", state.Snapshot{}, "LOADING", true},
		{"no width", state.Snapshot{Map: gameMap}, "LOADING", true},
		{"map error wins", state.Snapshot{MapErr: errors.New("boom"), ContainerWidth: &width}, "GAME_MAP_ERROR", true},
		{"ready", state.Snapshot{Map: gameMap, ContainerWidth: &width}, "", false},
		{"state error keeps stage", state.Snapshot{Map: gameMap, ContainerWidth: &width, StateErr: errors.New("bad")}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, show := StatusText(tt.snap)
			if got != tt.want || show != tt.show {
				t.Errorf("StatusText = %q, %v; want %q, %v", got, show, tt.want, tt.show)
			}
		})
	}
}

func TestHeadless_TickOnChangeOnly(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	store := state.NewStore(state.DefaultFlags())
	builder := visual.NewBuilder(visual.DefaultResources(), visual.MonospaceMeasurer{}, log)
	h := NewHeadless(store, builder, log, 0)

	if !h.Tick() {
		t.Fatal("first tick did nothing")
	}
	if h.Tick() {
		t.Error("tick without a store change rebuilt")
	}

	store.SetMap(&world.GameMap{Width: 2, Height: 1, Tiles: []string{"xo"}})
	store.SetContainerWidth(200)
	if !h.Tick() {
		t.Fatal("tick after change did nothing")
	}

	last := hook.LastEntry()
	if last == nil || last.Message != "Frame built" {
		t.Fatalf("last entry = %+v", last)
	}
	if last.Data["primitives"] != 3 || last.Data["tileWidth"] != 100 {
		t.Errorf("fields = %v", last.Data)
	}
}
