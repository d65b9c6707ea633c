package world

import (
	"testing"
)

func TestClassify_KnownCodes(t *testing.T) {
	tests := []struct {
		code rune
		want TileCategory
	}{
		{'x', TileWall},
		{'o', TileExit},
		{'#', TileMine},
		{'_', TileFloor},
		{'Z', TileUnknown},
		{' ', TileUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.code); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestClassify_OnlyStaticCategoriesHaveSprites(t *testing.T) {
	if TileFloor.HasSprite() {
		t.Error("TileFloor.HasSprite() = true, want false")
	}
	if TileUnknown.HasSprite() {
		t.Error("TileUnknown.HasSprite() = true, want false")
	}
	for _, c := range []TileCategory{TileWall, TileExit, TileMine} {
		if !c.HasSprite() {
			t.Errorf("%v.HasSprite() = false, want true", c)
		}
	}
}

func TestClassifyMap_ReportsUnknownWithLocation(t *testing.T) {
	m := &GameMap{
		Name:   "test",
		Width:  3,
		Height: 2,
		Tiles:  []string{"x_Z", "o#Z"},
	}
	report := ClassifyMap(m)

	if len(report.Static) != 3 {
		t.Fatalf("len(Static) = %d, want 3", len(report.Static))
	}
	want := []StaticTile{
		{Row: 0, Col: 0, Category: TileWall},
		{Row: 1, Col: 0, Category: TileExit},
		{Row: 1, Col: 1, Category: TileMine},
	}
	for i, tile := range report.Static {
		if tile != want[i] {
			t.Errorf("Static[%d] = %+v, want %+v", i, tile, want[i])
		}
	}

	if len(report.Unknown) != 2 {
		t.Fatalf("len(Unknown) = %d, want 2", len(report.Unknown))
	}
	if got := report.Unknown[0]; got != (UnknownTile{Code: 'Z', Row: 0, Col: 2}) {
		t.Errorf("Unknown[0] = %+v, want Z at (0,2)", got)
	}
	if report.UnknownCodes.Size() != 1 || !report.UnknownCodes.Has('Z') {
		t.Errorf("UnknownCodes size = %d, want exactly {Z}", report.UnknownCodes.Size())
	}
}

func TestClassifyMap_NilMap(t *testing.T) {
	report := ClassifyMap(nil)
	if len(report.Static) != 0 || len(report.Unknown) != 0 {
		t.Errorf("ClassifyMap(nil) = %+v, want empty report", report)
	}
}
