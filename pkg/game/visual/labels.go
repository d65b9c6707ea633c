package visual

import (
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/state"
)

// Label panel geometry
const (
	labelPadding = 8

	// labelLiftFactor scales the half tile width into the gap between the
	// cell centre and the bottom edge of the panel.
	labelLiftFactor = 1.3
)

// TextAlign is the horizontal alignment of multi-line label text
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// LabelStyle is the fixed text style of every label
type LabelStyle struct {
	FontSize      float64
	LetterSpacing float64
	LineHeight    float64
	Align         TextAlign
	Fill          color.RGBA
}

// DefaultLabelStyle is an 8px pixel font, centred, black
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{
		FontSize:      8,
		LetterSpacing: 1.4,
		LineHeight:    10,
		Align:         AlignCenter,
		Fill:          color.RGBA{A: 0xff},
	}
}

// TextMetrics is the measured bounding box of a piece of text
type TextMetrics struct {
	MaxLineWidth float64
	Height       float64
}

// TextMeasurer measures rendered text. Surfaces with real fonts provide
// their own; MonospaceMeasurer is used everywhere else.
type TextMeasurer interface {
	MeasureText(text string, style LabelStyle) TextMetrics
}

// MonospaceMeasurer measures text as a fixed-advance pixel font: every
// glyph is FontSize+LetterSpacing wide and every line LineHeight tall.
type MonospaceMeasurer struct{}

// MeasureText implements TextMeasurer
func (MonospaceMeasurer) MeasureText(text string, style LabelStyle) TextMetrics {
	lines := strings.Split(text, "\n")
	advance := style.FontSize + style.LetterSpacing

	var widest float64
	for _, line := range lines {
		if w := float64(utf8.RuneCountInString(line)) * advance; w > widest {
			widest = w
		}
	}

	return TextMetrics{
		MaxLineWidth: widest,
		Height:       float64(len(lines)) * style.LineHeight,
	}
}

// NineSlice holds the fixed border insets of the label panel texture
type NineSlice struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

var labelInsets = NineSlice{Left: 7, Top: 6, Right: 7, Bottom: 6}

// LabelBox is a label panel in stage pixels. (X, Y) is the panel's top-left
// corner and (TextX, TextY) the origin of the text inside it.
type LabelBox struct {
	Text   string    `json:"text"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	TextX  float64   `json:"textX"`
	TextY  float64   `json:"textY"`
	Insets NineSlice `json:"insets"`
}

// ComputeLabelBox sizes a panel around text and floats it above anchor,
// horizontally centred on it.
func ComputeLabelBox(text string, anchor world.PixelPosition, halfTileWidth int, style LabelStyle, measurer TextMeasurer) LabelBox {
	metrics := measurer.MeasureText(text, style)

	width := metrics.MaxLineWidth + labelPadding + labelPadding
	height := metrics.Height + labelPadding + labelPadding
	x := anchor.XInPx - math.Round(width*0.5)
	y := anchor.YInPx - height - math.Round(float64(halfTileWidth)*labelLiftFactor)

	return LabelBox{
		Text:   text,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		TextX:  x + labelPadding,
		TextY:  y + labelPadding,
		Insets: labelInsets,
	}
}

// PlayerLabelText is the player's name, followed by the ticks spent in the
// current state when there are any.
func PlayerLabelText(p state.Player) string {
	if p.TimeInState > 0 {
		return p.Name + "\n(" + strconv.Itoa(p.TimeInState) + ")"
	}
	return p.Name
}
