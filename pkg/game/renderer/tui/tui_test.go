package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/controls"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

func newTUI(t *testing.T, in string) (*TUIRenderer, *state.Store, *bytes.Buffer) {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := state.NewStore(state.DefaultFlags())
	builder := visual.NewBuilder(visual.DefaultResources(), visual.MonospaceMeasurer{}, log)
	out := &bytes.Buffer{}
	r := New(store, builder, controls.New(store, builder, t.TempDir(), log), log)
	r.Out = out
	r.In = strings.NewReader(in)
	r.Width = func() int { return 12 }
	r.NoColor = true
	r.Init()
	return r, store, out
}

func TestRenderFrame_Loading(t *testing.T) {
	r, store, out := newTUI(t, "")
	r.RenderFrame(out, store.Snapshot())
	if !strings.HasPrefix(out.String(), "LOADING\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRenderFrame_MapError(t *testing.T) {
	r, store, out := newTUI(t, "")
	store.SetMapError(errors.New("boom"))
	r.RenderFrame(out, store.Snapshot())
	if !strings.HasPrefix(out.String(), "GAME_MAP_ERROR\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRenderFrame_Map(t *testing.T) {
	r, store, out := newTUI(t, "")
	store.SetMap(&world.GameMap{Width: 3, Height: 2, Tiles: []string{"xo_", "_#_"}})
	store.SetContainerWidth(12)
	store.SetState(&state.GameState{
		Players: []state.Player{{Name: "bob", Position: world.Position{X: 2, Y: 1}, TimeInState: 3}},
		Items:   []state.Item{{Type: state.ItemPotion, Position: world.Position{X: 2, Y: 0}}},
	})

	r.RenderFrame(out, store.Snapshot())
	lines := strings.Split(out.String(), "\n")

	// tiles are four characters wide
	if lines[0] != "▒▒▒▒ △   !  " {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != "     ¤   @  " {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(out.String(), "- bob (3)") {
		t.Errorf("player label missing:\n%s", out.String())
	}
}

func TestRenderFrame_HelpUsesShortestBinding(t *testing.T) {
	r, store, out := newTUI(t, "")
	r.RenderFrame(out, store.Snapshot())

	for _, want := range []string{"[g] TOGGLE_MAP_GRID", "[p] SCREENSHOT", "[m] DUMP_MAP", "[q] QUIT"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help line missing %q in %q", want, out.String())
		}
	}
	if strings.Contains(out.String(), "%!") {
		t.Errorf("badly formatted output %q", out.String())
	}
}

func TestRenderFrame_StateErrorKeepsMap(t *testing.T) {
	r, store, out := newTUI(t, "")
	store.SetMap(&world.GameMap{Width: 1, Height: 1, Tiles: []string{"x"}})
	store.SetContainerWidth(12)
	store.SetStateError(errors.New("bad"))

	r.RenderFrame(out, store.Snapshot())
	if !strings.Contains(out.String(), "▒▒▒▒") || !strings.Contains(out.String(), "GAME_STATE_ERROR") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRun_CommandsAndQuit(t *testing.T) {
	r, store, out := newTUI(t, "g\nb\nq\n")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run did not return on quit")
	}

	flags := store.Snapshot().Flags
	if !flags.ShowMapGrid || !flags.ShowBeer {
		t.Errorf("flags = %+v", flags)
	}
	if w := store.Snapshot().ContainerWidth; w == nil || *w != 12 {
		t.Errorf("container width = %v", w)
	}
	if !strings.Contains(out.String(), "GOODBYE") {
		t.Errorf("no goodbye in %q", out.String())
	}
}
