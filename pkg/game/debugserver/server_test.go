package debugserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

func newTestServer(t *testing.T) (*state.Store, http.Handler) {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := state.NewStore(state.DefaultFlags())
	builder := visual.NewBuilder(visual.DefaultResources(), visual.MonospaceMeasurer{}, log)
	return store, SetupRoutes(NewHandler(store, builder, log))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t)
	rec := get(t, h, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" || body["hasMap"] != false {
		t.Errorf("body = %v", body)
	}
}

func TestGetFrame_LoadingUntilInputs(t *testing.T) {
	store, h := newTestServer(t)
	if rec := get(t, h, "/api/frame"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status without map = %d, want 503", rec.Code)
	}

	store.SetMap(&world.GameMap{Width: 3, Height: 3, Tiles: []string{"x__", "___", "___"}})
	if rec := get(t, h, "/api/frame"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status without width = %d, want 503", rec.Code)
	}

	rec := get(t, h, "/api/frame?width=300")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var frame struct {
		Dimensions struct {
			TileWidth int `json:"tileWidth"`
		} `json:"dimensions"`
		Primitives []struct {
			Kind string  `json:"kind"`
			Key  string  `json:"key"`
			X    float64 `json:"x"`
		} `json:"primitives"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &frame); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if frame.Dimensions.TileWidth != 100 {
		t.Errorf("tileWidth = %d, want 100", frame.Dimensions.TileWidth)
	}
	if len(frame.Primitives) != 2 || frame.Primitives[1].Kind != "tile" || frame.Primitives[1].Key != "wall-0-0" {
		t.Errorf("primitives = %+v, want floor then wall", frame.Primitives)
	}
}

func TestGetFrame_BadWidth(t *testing.T) {
	_, h := newTestServer(t)
	if rec := get(t, h, "/api/frame?width=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetMap_ReportsUnknownCodes(t *testing.T) {
	store, h := newTestServer(t)
	store.SetMap(&world.GameMap{Width: 2, Height: 1, Tiles: []string{"xQ"}})

	rec := get(t, h, "/api/map")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body mapResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.StaticTiles != 1 || len(body.UnknownCodes) != 1 || body.UnknownCodes[0] != "Q" {
		t.Errorf("body = %+v", body)
	}
}

func TestPutFlags(t *testing.T) {
	store, h := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/flags", strings.NewReader(`{"showMapGrid":true,"showItemLabels":false,"showBeer":true}`))
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	got := store.Snapshot().Flags
	want := state.Flags{ShowMapGrid: true, ShowItemLabels: false, ShowBeer: true}
	if got != want {
		t.Errorf("flags = %+v, want %+v", got, want)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/flags", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status for bad body = %d, want 400", rec.Code)
	}
}
