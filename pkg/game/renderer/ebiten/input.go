package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	engineinput "bobfviewer/pkg/engine/input"
)

// keyCodes maps keys to the raw codes of the input bindings
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyG:      "g",
	ebiten.KeyL:      "l",
	ebiten.KeyB:      "b",
	ebiten.KeyP:      "p",
	ebiten.KeyF12:    "f12",
	ebiten.KeyM:      "m",
	ebiten.KeyQ:      "q",
	ebiten.KeyEscape: "escape",
}

// Update handles input and animation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("Main window opened")
	}

	e.refreshSnapshot()
	e.stepAnimations()

	for _, intent := range e.checkInput() {
		outcome := e.controls.ProcessIntent(intent)
		if outcome.Quit {
			return ebiten.Termination
		}
		e.ShowMessage(outcome.Message)
	}

	return nil
}

// checkInput turns this tick's key presses into intents (raw layer)
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		code, ok := keyCodes[key]
		if !ok {
			continue
		}
		intent := engineinput.Resolve(engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code})
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}
	return intents
}

// Layout reports the window width as the container width (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
	}
	e.store.SetContainerWidth(outsideWidth)
	return outsideWidth, outsideHeight
}
