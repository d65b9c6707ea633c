package layout

import (
	"testing"

	"bobfviewer/pkg/engine/world"
)

func intPtr(v int) *int { return &v }

func TestCompute_MissingInputs(t *testing.T) {
	m := &world.GameMap{Width: 3, Height: 3, Tiles: []string{"___", "___", "___"}}

	if _, ok := Compute(nil, intPtr(300)); ok {
		t.Error("Compute(nil map) ok = true, want false")
	}
	if _, ok := Compute(m, nil); ok {
		t.Error("Compute(nil width) ok = true, want false")
	}
}

func TestCompute_ThreeByThree(t *testing.T) {
	m := &world.GameMap{Width: 3, Height: 3, Tiles: []string{"x__", "___", "___"}}
	dims, ok := Compute(m, intPtr(300))
	if !ok {
		t.Fatal("Compute ok = false, want true")
	}
	want := MapDimensions{
		Width:          3,
		Height:         3,
		ContainerWidth: 300,
		TileWidth:      100,
		HalfTileWidth:  50,
		StageWidth:     300,
		StageHeight:    300,
	}
	if dims != want {
		t.Errorf("Compute = %+v, want %+v", dims, want)
	}
}

func TestComputeSize_FloorsTileWidth(t *testing.T) {
	tests := []struct {
		width, height, container int
		wantTile, wantHalf       int
	}{
		{3, 2, 301, 100, 50},
		{7, 7, 100, 14, 7},
		{4, 1, 30, 7, 4},
		{10, 10, 5, 0, 0},
	}
	for _, tt := range tests {
		dims := ComputeSize(tt.width, tt.height, tt.container)
		if dims.TileWidth != tt.wantTile || dims.HalfTileWidth != tt.wantHalf {
			t.Errorf("ComputeSize(%d, %d, %d) tile = %d/%d, want %d/%d",
				tt.width, tt.height, tt.container, dims.TileWidth, dims.HalfTileWidth, tt.wantTile, tt.wantHalf)
		}
		if dims.StageWidth > tt.container {
			t.Errorf("StageWidth %d overflows container %d", dims.StageWidth, tt.container)
		}
		if dims.StageHeight != tt.height*dims.TileWidth {
			t.Errorf("StageHeight = %d, want %d", dims.StageHeight, tt.height*dims.TileWidth)
		}
	}
}

func TestFloorTileScale(t *testing.T) {
	dims := ComputeSize(3, 3, 300)
	if got := dims.FloorTileScale(1200); got != 1 {
		t.Errorf("FloorTileScale(1200) = %v, want 1", got)
	}
	if got := dims.FloorTileScale(600); got != 2 {
		t.Errorf("FloorTileScale(600) = %v, want 2", got)
	}
}
