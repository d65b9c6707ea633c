// Package ebiten provides the Ebiten-based window surface of the viewer.
// It paints the draw lists built by the visual package and animates
// projectiles between frames.
package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"bobfviewer/pkg/game/controls"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

// New creates a new Ebiten renderer
func New(store *state.Store, builder *visual.Builder, ctrl *controls.Controller, log logrus.FieldLogger, width, height int, assetDir string) *EbitenRenderer {
	if width <= 0 {
		width = defaultWindowWidth
	}
	if height <= 0 {
		height = defaultWindowHeight
	}
	return &EbitenRenderer{
		windowWidth:  width,
		windowHeight: height,
		assetDir:     assetDir,
		store:        store,
		builder:      builder,
		controls:     ctrl,
		log:          log,
		animator:     visual.NewAnimator(),
		textures:     make(map[visual.TextureKey]*ebiten.Image),
	}
}

// Init loads fonts and textures and sets up the window
func (e *EbitenRenderer) Init() {
	source, err := newFontSource()
	if err != nil {
		e.log.WithError(err).Error("Loading font failed")
	}
	e.fontSource = source

	e.loadTextures()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// ShowMessage displays a message at the bottom of the window for a while
func (e *EbitenRenderer) ShowMessage(msg string) {
	if msg == "" {
		return
	}
	e.messageMutex.Lock()
	defer e.messageMutex.Unlock()
	e.message = messageEntry{Text: msg, Timestamp: nowMillis()}
}

// Run starts the Ebiten game loop. It returns when the window is closed,
// the user quits or ctx ends.
func (e *EbitenRenderer) Run(ctx context.Context) error {
	e.ctx = ctx
	return ebiten.RunGame(e)
}
