package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"bobfviewer/pkg/game/config"
	"bobfviewer/pkg/game/controls"
	"bobfviewer/pkg/game/debugserver"
	"bobfviewer/pkg/game/feed"
	"bobfviewer/pkg/game/renderer"
	ebitenrenderer "bobfviewer/pkg/game/renderer/ebiten"
	"bobfviewer/pkg/game/renderer/tui"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
	"bobfviewer/pkg/logger"
)

const mapFetchTimeout = 10 * time.Second

func initGettext(cfg *config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")
}

// runFeed loads the initial map, then follows the game server until ctx ends
func runFeed(ctx context.Context, cfg *config.Config, store *state.Store) {
	client := feed.NewClient(cfg.WebSocketEndpoint, store, logger.Log.WithField("endpoint", cfg.WebSocketEndpoint))
	if err := client.Follow(ctx, &http.Client{Timeout: mapFetchTimeout}, cfg.MapEndpoint); err != nil {
		logger.Log.WithError(err).Error("Event feed stopped")
	}
}

// newMeasurer returns the label text measurer for the chosen surface
func newMeasurer(surface string) visual.TextMeasurer {
	if surface != config.SurfaceWindow {
		return visual.MonospaceMeasurer{}
	}
	m, err := ebitenrenderer.NewFaceMeasurer()
	if err != nil {
		logger.Log.WithError(err).Warn("Font measurer unavailable, using monospace metrics")
		return visual.MonospaceMeasurer{}
	}
	return m
}

func newRenderer(cfg *config.Config, store *state.Store, builder *visual.Builder, ctrl *controls.Controller) renderer.Renderer {
	switch cfg.Surface {
	case config.SurfaceTUI:
		return tui.New(store, builder, ctrl, logger.Log)
	case config.SurfaceHeadless:
		store.SetContainerWidth(cfg.WindowWidth)
		return renderer.NewHeadless(store, builder, logger.Log, 0)
	default:
		return ebitenrenderer.New(store, builder, ctrl, logger.Log, cfg.WindowWidth, cfg.WindowHeight, cfg.AssetDir)
	}
}

func main() {
	logger.Init()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}

	initGettext(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore(cfg.Flags)
	builder := visual.NewBuilder(visual.DefaultResources(), newMeasurer(cfg.Surface), logger.Log)
	ctrl := controls.New(store, builder, cfg.DumpDir, logger.Log)

	go runFeed(ctx, cfg, store)

	if cfg.HTTPAddr != "" {
		go func() {
			if err := debugserver.ListenAndServe(ctx, cfg.HTTPAddr, debugserver.NewHandler(store, builder, logger.Log)); err != nil {
				logger.Log.WithError(err).Error("Debug server stopped")
			}
		}()
	}

	logger.Log.WithFields(logrus.Fields{
		"surface":   cfg.Surface,
		"map":       cfg.MapEndpoint,
		"websocket": cfg.WebSocketEndpoint,
	}).Info("Starting viewer")

	renderer.SetRenderer(newRenderer(cfg, store, builder, ctrl))
	renderer.Init()

	// The window surface has to own the main goroutine
	if err := renderer.Run(ctx); err != nil {
		logger.Log.WithError(err).Fatal("Renderer failed")
	}
}
