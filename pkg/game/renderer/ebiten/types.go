package ebiten

import (
	"context"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"bobfviewer/pkg/game/controls"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

// messageEntry represents a message with timestamp for fade-out
type messageEntry struct {
	Text      string
	Timestamp int64 // Unix timestamp in milliseconds when message was added
}

// renderSnapshot is the frame drawn until the store changes again
type renderSnapshot struct {
	valid    bool
	version  uint64
	frame    visual.Frame
	hasFrame bool

	// status replaces the stage while loading or after a map error
	status     string
	showStatus bool

	// stateError is drawn over the static layer
	stateError     string
	showStateError bool
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	assetDir string

	store    *state.Store
	builder  *visual.Builder
	controls *controls.Controller
	log      logrus.FieldLogger
	ctx      context.Context

	// Font source for labels and messages
	fontSource *text.GoTextFaceSource

	// Cached font faces
	cachedLabelFontSize float64
	cachedLabelFace     *text.GoTextFace
	cachedUIFace        *text.GoTextFace

	textures map[visual.TextureKey]*ebiten.Image

	// Update and Draw run on the same goroutine, so the snapshot and the
	// animator need no lock.
	snapshot renderSnapshot
	animator *visual.Animator

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	message      messageEntry
	messageMutex sync.RWMutex
}
