// Package config loads the viewer's settings from flags and the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"bobfviewer/pkg/game/state"
)

// Surface names
const (
	SurfaceWindow   = "window"
	SurfaceTUI      = "tui"
	SurfaceHeadless = "headless"
)

// ErrInvalidSurface is returned for an unknown -surface value
var ErrInvalidSurface = errors.New("invalid surface")

// Config holds all viewer configuration
type Config struct {
	MapEndpoint       string
	WebSocketEndpoint string
	Surface           string
	WindowWidth       int
	WindowHeight      int
	HTTPAddr          string
	Locale            string
	LocaleDir         string
	AssetDir          string
	DumpDir           string
	Flags             state.Flags
}

var (
	current   *Config
	currentMu sync.RWMutex
)

// Current returns the most recently loaded config, or nil before Load
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// Load parses args (without the program name). Flags override the
// BOBF_* environment variables, which override the defaults.
func Load(args []string) (*Config, error) {
	defaults := state.DefaultFlags()
	cfg := &Config{}

	fs := flag.NewFlagSet("bobfviewer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.MapEndpoint, "map-endpoint", envOr("BOBF_MAP_ENDPOINT", "http://localhost:8080/api/map"), "URL of the game map")
	fs.StringVar(&cfg.WebSocketEndpoint, "ws-endpoint", envOr("BOBF_WEBSOCKET_ENDPOINT", "ws://localhost:8080/ws"), "STOMP over WebSocket endpoint")
	fs.StringVar(&cfg.Surface, "surface", envOr("BOBF_SURFACE", SurfaceWindow), "rendering surface: window, tui or headless")
	fs.IntVar(&cfg.WindowWidth, "width", 1024, "window width in pixels")
	fs.IntVar(&cfg.WindowHeight, "height", 1024, "window height in pixels")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", envOr("BOBF_HTTP_ADDR", ""), "address of the debug HTTP server, empty to disable")
	fs.StringVar(&cfg.Locale, "locale", envOr("BOBF_LOCALE", "en_GB"), "locale of user-facing strings")
	fs.StringVar(&cfg.LocaleDir, "locale-dir", "locales", "directory holding <locale>/default.po")
	fs.StringVar(&cfg.AssetDir, "assets", envOr("BOBF_ASSET_DIR", ""), "directory of PNG textures, empty for generated placeholders")
	fs.StringVar(&cfg.DumpDir, "dump-dir", "dumps", "directory for screenshots and map dumps")
	fs.BoolVar(&cfg.Flags.ShowMapGrid, "grid", defaults.ShowMapGrid, "show the map grid")
	fs.BoolVar(&cfg.Flags.ShowItemLabels, "item-labels", defaults.ShowItemLabels, "show item price labels")
	fs.BoolVar(&cfg.Flags.ShowBeer, "beer", defaults.ShowBeer, "draw potions as beer")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	switch cfg.Surface {
	case SurfaceWindow, SurfaceTUI, SurfaceHeadless:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSurface, cfg.Surface)
	}

	currentMu.Lock()
	current = cfg
	currentMu.Unlock()

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
