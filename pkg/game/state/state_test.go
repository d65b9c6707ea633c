package state

import (
	"encoding/json"
	"errors"
	"testing"

	"bobfviewer/pkg/engine/world"
)

func TestDefaultFlags(t *testing.T) {
	f := DefaultFlags()
	if f.ShowMapGrid || f.ShowBeer || !f.ShowItemLabels {
		t.Errorf("DefaultFlags() = %+v, want only ShowItemLabels", f)
	}
}

func TestStore_SnapshotEmptyUntilDelivered(t *testing.T) {
	s := NewStore(DefaultFlags())
	snap := s.Snapshot()
	if snap.Map != nil || snap.State != nil || snap.ContainerWidth != nil {
		t.Errorf("Snapshot() of empty store = %+v, want nil inputs", snap)
	}
}

func TestStore_StateReplacedWholesale(t *testing.T) {
	s := NewStore(DefaultFlags())
	s.SetState(&GameState{Players: []Player{{Name: "a"}, {Name: "b"}}})
	s.SetState(&GameState{Players: []Player{{Name: "c"}}})

	snap := s.Snapshot()
	if len(snap.State.Players) != 1 || snap.State.Players[0].Name != "c" {
		t.Errorf("Snapshot().State.Players = %+v, want only c", snap.State.Players)
	}
}

func TestStore_VersionAdvancesOnChange(t *testing.T) {
	s := NewStore(DefaultFlags())
	v0 := s.Snapshot().Version

	s.SetMap(&world.GameMap{Width: 1, Height: 1, Tiles: []string{"_"}})
	v1 := s.Snapshot().Version
	if v1 <= v0 {
		t.Errorf("version after SetMap = %d, want > %d", v1, v0)
	}

	s.SetContainerWidth(300)
	v2 := s.Snapshot().Version
	s.SetContainerWidth(300)
	if got := s.Snapshot().Version; got != v2 {
		t.Errorf("version after same width = %d, want unchanged %d", got, v2)
	}
}

func TestStore_ContainerWidthIsCopied(t *testing.T) {
	s := NewStore(DefaultFlags())
	s.SetContainerWidth(300)
	snap := s.Snapshot()
	*snap.ContainerWidth = 10
	if got := *s.Snapshot().ContainerWidth; got != 300 {
		t.Errorf("stored width = %d after mutating snapshot, want 300", got)
	}
}

func TestStore_UpdateFlags(t *testing.T) {
	s := NewStore(DefaultFlags())
	s.UpdateFlags(func(f *Flags) { f.ShowBeer = !f.ShowBeer })
	if !s.Snapshot().Flags.ShowBeer {
		t.Error("Flags.ShowBeer = false after toggle, want true")
	}
}

func TestGameState_DecodesServerJSON(t *testing.T) {
	payload := `{
		"items": [{"type": "WEAPON", "position": {"x": 1, "y": 2}, "price": 5, "discountPercent": 0}],
		"players": [{"name": "bot", "position": {"x": 0, "y": 0}, "timeInState": 3, "money": 10, "score": 2}],
		"finishedPlayers": [],
		"shootingLines": [{"fromPosition": {"x": 0, "y": 0}, "toPosition": {"x": 0, "y": 1}, "age": 1}]
	}`
	var gs GameState
	if err := json.Unmarshal([]byte(payload), &gs); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if gs.Items[0].Type != ItemWeapon || gs.Items[0].Position != (world.Position{X: 1, Y: 2}) {
		t.Errorf("Items[0] = %+v, want WEAPON at (1,2)", gs.Items[0])
	}
	if gs.Players[0].TimeInState != 3 {
		t.Errorf("Players[0].TimeInState = %d, want 3", gs.Players[0].TimeInState)
	}
	if gs.ShootingLines[0].Age != 1 {
		t.Errorf("ShootingLines[0].Age = %d, want 1", gs.ShootingLines[0].Age)
	}
}

func TestStore_ErrorsClearedByNextValue(t *testing.T) {
	s := NewStore(DefaultFlags())
	s.SetMapError(errors.New("map down"))
	s.SetStateError(errors.New("socket closed"))

	snap := s.Snapshot()
	if snap.MapErr == nil || snap.StateErr == nil {
		t.Fatalf("errors not recorded: %+v", snap)
	}

	s.SetMap(&world.GameMap{Width: 1, Height: 1, Tiles: []string{"_"}})
	s.SetState(&GameState{})
	snap = s.Snapshot()
	if snap.MapErr != nil || snap.StateErr != nil {
		t.Errorf("errors after good values = %v, %v, want nil", snap.MapErr, snap.StateErr)
	}
}
