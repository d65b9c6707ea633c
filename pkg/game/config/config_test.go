package config

import (
	"errors"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOBF_MAP_ENDPOINT", "")
	t.Setenv("BOBF_SURFACE", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Surface != SurfaceWindow {
		t.Errorf("Surface = %q, want %q", cfg.Surface, SurfaceWindow)
	}
	if cfg.Flags.ShowMapGrid || !cfg.Flags.ShowItemLabels || cfg.Flags.ShowBeer {
		t.Errorf("Flags = %+v, want default toggles", cfg.Flags)
	}
	if Current() != cfg {
		t.Error("Current() does not return the loaded config")
	}
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("BOBF_MAP_ENDPOINT", "http://env/map")
	t.Setenv("BOBF_WEBSOCKET_ENDPOINT", "ws://env/ws")

	cfg, err := Load([]string{"-ws-endpoint", "ws://flag/ws", "-surface", "tui", "-beer"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MapEndpoint != "http://env/map" {
		t.Errorf("MapEndpoint = %q, want env value", cfg.MapEndpoint)
	}
	if cfg.WebSocketEndpoint != "ws://flag/ws" {
		t.Errorf("WebSocketEndpoint = %q, want flag value", cfg.WebSocketEndpoint)
	}
	if cfg.Surface != SurfaceTUI || !cfg.Flags.ShowBeer {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_InvalidSurface(t *testing.T) {
	_, err := Load([]string{"-surface", "hologram"})
	if !errors.Is(err, ErrInvalidSurface) {
		t.Errorf("Load error = %v, want ErrInvalidSurface", err)
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	if _, err := Load([]string{"-nope"}); err == nil {
		t.Error("Load with unknown flag returned nil error")
	}
}
