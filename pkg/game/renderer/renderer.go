package renderer

import (
	"context"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

// StatusText returns the message a surface shows instead of the stage, or
// false when the stage can be drawn. A map error wins over loading.
func StatusText(snap state.Snapshot) (string, bool) {
	switch {
	case snap.MapErr != nil:
		return gotext.Get("GAME_MAP_ERROR"), true
	case snap.Map == nil || snap.ContainerWidth == nil:
		return gotext.Get("LOADING"), true
	}
	return "", false
}

// StateErrorText returns the message shown over the static layer when the
// last game state could not be used.
func StateErrorText(snap state.Snapshot) (string, bool) {
	if snap.StateErr != nil {
		return gotext.Get("GAME_STATE_ERROR"), true
	}
	return "", false
}

// Headless builds a frame on every store change and logs a summary.
// It is used on machines without a display, usually with the debug server.
type Headless struct {
	Store    *state.Store
	Builder  *visual.Builder
	Log      logrus.FieldLogger
	Interval time.Duration

	lastVersion uint64
	built       bool
}

// NewHeadless creates a headless renderer polling the store every interval
func NewHeadless(store *state.Store, builder *visual.Builder, log logrus.FieldLogger, interval time.Duration) *Headless {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Headless{Store: store, Builder: builder, Log: log, Interval: interval}
}

// Init does nothing; there is nothing to prepare without a display
func (h *Headless) Init() {}

// ShowMessage logs msg
func (h *Headless) ShowMessage(msg string) {
	h.Log.Info(msg)
}

// Run polls the store until ctx ends
func (h *Headless) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.Interval)
	defer ticker.Stop()

	for {
		h.Tick()
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Tick builds a frame if the store changed since the last tick and reports
// whether it did.
func (h *Headless) Tick() bool {
	snap := h.Store.Snapshot()
	if h.built && snap.Version == h.lastVersion {
		return false
	}
	h.built = true
	h.lastVersion = snap.Version

	if msg, ok := StatusText(snap); ok {
		h.Log.WithField("version", snap.Version).Debug(msg)
		return true
	}
	if msg, ok := StateErrorText(snap); ok {
		h.Log.WithError(snap.StateErr).Warn(msg)
	}

	frame, ok := h.Builder.Build(visual.SceneFromSnapshot(snap))
	if !ok {
		return true
	}
	h.Log.WithFields(logrus.Fields{
		"version":    snap.Version,
		"tileWidth":  frame.Dimensions.TileWidth,
		"primitives": len(frame.Primitives),
		"unknown":    len(frame.Diagnostics),
	}).Info("Frame built")
	return true
}
