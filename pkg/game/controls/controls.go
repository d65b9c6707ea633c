// Package controls applies the viewer user's intents to the store and the
// developer tools.
package controls

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	engineinput "bobfviewer/pkg/engine/input"
	"bobfviewer/pkg/game/devtools"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

// dynamicGet is used for runtime translation key lookups.
var dynamicGet = gotext.Get

// Outcome is what a surface needs to know after an intent was handled
type Outcome struct {
	Quit    bool
	Message string
}

// Controller carries everything ProcessIntent touches
type Controller struct {
	Store   *state.Store
	Builder *visual.Builder
	DumpDir string
	Log     logrus.FieldLogger
}

// New creates a controller
func New(store *state.Store, builder *visual.Builder, dumpDir string, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{Store: store, Builder: builder, DumpDir: dumpDir, Log: log}
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func (c *Controller) ProcessIntent(intent engineinput.Intent) Outcome {
	switch intent.Action {
	case engineinput.ActionNone:
		return Outcome{}

	case engineinput.ActionQuit:
		return Outcome{Quit: true, Message: gotext.Get("GOODBYE")}

	case engineinput.ActionToggleMapGrid:
		var on bool
		c.Store.UpdateFlags(func(f *state.Flags) {
			f.ShowMapGrid = !f.ShowMapGrid
			on = f.ShowMapGrid
		})
		return c.toggled(intent.Action, on)

	case engineinput.ActionToggleItemLabels:
		var on bool
		c.Store.UpdateFlags(func(f *state.Flags) {
			f.ShowItemLabels = !f.ShowItemLabels
			on = f.ShowItemLabels
		})
		return c.toggled(intent.Action, on)

	case engineinput.ActionToggleBeer:
		var on bool
		c.Store.UpdateFlags(func(f *state.Flags) {
			f.ShowBeer = !f.ShowBeer
			on = f.ShowBeer
		})
		return c.toggled(intent.Action, on)

	case engineinput.ActionScreenshot:
		frame, ok := c.Builder.Build(visual.SceneFromSnapshot(c.Store.Snapshot()))
		if !ok {
			return Outcome{Message: gotext.Get("LOADING")}
		}
		filename, err := devtools.SaveScreenshotHTML(frame, c.DumpDir)
		if err != nil {
			c.Log.WithError(err).Error("Screenshot failed")
			return Outcome{Message: fmt.Sprintf(gotext.Get("SCREENSHOT_FAILED"), err)}
		}
		c.Log.WithField("file", filename).Info("Screenshot saved")
		return Outcome{Message: fmt.Sprintf(gotext.Get("SCREENSHOT_SAVED"), filename)}

	case engineinput.ActionDumpMap:
		snap := c.Store.Snapshot()
		path, err := devtools.DumpMap(snap.Map, snap.State, c.DumpDir)
		if err != nil {
			c.Log.WithError(err).Error("Map dump failed")
			return Outcome{Message: fmt.Sprintf(gotext.Get("MAP_DUMP_FAILED"), err)}
		}
		c.Log.WithField("file", path).Info("Map dumped")
		return Outcome{Message: fmt.Sprintf(gotext.Get("MAP_DUMPED"), path)}
	}

	return Outcome{Message: gotext.Get("UNKNOWN_COMMAND")}
}

func (c *Controller) toggled(action engineinput.Action, on bool) Outcome {
	key := "OFF"
	if on {
		key = "ON"
	}
	c.Log.WithFields(logrus.Fields{
		"action": engineinput.ActionName(action),
		"on":     on,
	}).Debug("Flag toggled")
	return Outcome{Message: fmt.Sprintf(gotext.Get("FLAG_TOGGLED"), dynamicGet(engineinput.ActionName(action)), dynamicGet(key))}
}
