package ebiten

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"bobfviewer/pkg/game/visual"
)

// FaceMeasurer measures label text with the window's font, so label panels
// fit the glyphs the window actually draws.
type FaceMeasurer struct {
	source *text.GoTextFaceSource
}

// NewFaceMeasurer creates a measurer on the bundled font
func NewFaceMeasurer() (*FaceMeasurer, error) {
	source, err := newFontSource()
	if err != nil {
		return nil, err
	}
	return &FaceMeasurer{source: source}, nil
}

// MeasureText implements visual.TextMeasurer
func (m *FaceMeasurer) MeasureText(s string, style visual.LabelStyle) visual.TextMetrics {
	face := &text.GoTextFace{Source: m.source, Size: style.FontSize}
	lines := strings.Split(s, "\n")

	var widest float64
	for _, line := range lines {
		if w := lineAdvance(line, face, style.LetterSpacing); w > widest {
			widest = w
		}
	}
	return visual.TextMetrics{
		MaxLineWidth: widest,
		Height:       float64(len(lines)) * style.LineHeight,
	}
}

// lineAdvance is the width of line with spacing added after every glyph
func lineAdvance(line string, face text.Face, spacing float64) float64 {
	n := utf8.RuneCountInString(line)
	if n == 0 {
		return 0
	}
	return text.Advance(line, face) + spacing*float64(n)
}

// drawLabelText draws the text of a label box glyph by glyph so the letter
// spacing of the style is honoured.
func (e *EbitenRenderer) drawLabelText(screen *ebiten.Image, box *visual.LabelBox, style visual.LabelStyle, alpha float64) {
	face := e.getLabelFontFace(style.FontSize)
	contentWidth := box.Width - 2*(box.TextX-box.X)

	for i, line := range strings.Split(box.Text, "\n") {
		lw := lineAdvance(line, face, style.LetterSpacing)
		x := box.TextX
		switch style.Align {
		case visual.AlignCenter:
			x += (contentWidth - lw) / 2
		case visual.AlignRight:
			x += contentWidth - lw
		}
		y := box.TextY + float64(i)*style.LineHeight

		for _, r := range line {
			glyph := string(r)
			op := &text.DrawOptions{}
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleWithColor(style.Fill)
			op.ColorScale.ScaleAlpha(float32(alpha))
			text.Draw(screen, glyph, face, op)
			x += text.Advance(glyph, face) + style.LetterSpacing
		}
	}
}

// drawColoredText draws UI text with its top-left corner at (x, y)
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.getUIFontFace(), op)
}

// getTextWidth returns the width of UI text
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, e.getUIFontFace(), 0)
	return w
}
