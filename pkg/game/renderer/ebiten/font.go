package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// newFontSource parses the bundled Go Regular font
func newFontSource() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
}

// getLabelFontFace returns a cached face for label text of the given size
func (e *EbitenRenderer) getLabelFontFace(size float64) *text.GoTextFace {
	if e.cachedLabelFace == nil || e.cachedLabelFontSize != size {
		e.cachedLabelFontSize = size
		e.cachedLabelFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.cachedLabelFace
}

// getUIFontFace returns a cached face for status and message text
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	if e.cachedUIFace == nil {
		e.cachedUIFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   uiFontSize,
		}
	}
	return e.cachedUIFace
}
