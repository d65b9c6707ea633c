package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bobfviewer/pkg/game/visual"
)

// Draw renders the current frame to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := &e.snapshot
	switch {
	case !snap.valid:
		return
	case snap.showStatus:
		e.drawCentered(screen, snap.status, colorText)
	case snap.hasFrame:
		e.drawFrame(screen, snap.frame)
		if snap.showStateError {
			e.drawColoredText(screen, snap.stateError, 12, 12, colorDenied)
		}
	}

	e.drawMessage(screen)
}

// drawFrame paints primitives in draw-list order
func (e *EbitenRenderer) drawFrame(screen *ebiten.Image, frame visual.Frame) {
	for _, p := range frame.Primitives {
		switch p.Kind {
		case visual.KindFloor:
			e.drawFloor(screen, p)
		case visual.KindGridLine:
			drawGridLine(screen, p)
		case visual.KindLabel:
			e.drawLabel(screen, p)
		case visual.KindProjectile:
			pos := e.projectilePosition(p)
			p.X, p.Y = pos.XInPx, pos.YInPx
			e.drawSprite(screen, p)
		default:
			e.drawSprite(screen, p)
		}
	}
}

// drawSprite draws a texture scaled to the primitive's box
func (e *EbitenRenderer) drawSprite(screen *ebiten.Image, p visual.Primitive) {
	img, ok := e.textures[p.Texture]
	if !ok || p.Width <= 0 || p.Height <= 0 {
		return
	}
	bounds := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Width/float64(bounds.Dx()), p.Height/float64(bounds.Dy()))
	if p.Anchor == visual.AnchorCenter {
		op.GeoM.Translate(-p.Width/2, -p.Height/2)
	}
	if p.Rotation != 0 {
		op.GeoM.Rotate(p.Rotation)
	}
	op.GeoM.Translate(p.X, p.Y)
	if p.HasTint {
		op.ColorScale.ScaleWithColor(p.Tint.RGBA())
	}
	op.ColorScale.ScaleAlpha(float32(p.Alpha))
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, op)
}

// drawFloor tiles the floor texture over the stage at the frame's scale
func (e *EbitenRenderer) drawFloor(screen *ebiten.Image, p visual.Primitive) {
	img, ok := e.textures[p.Texture]
	if !ok || p.TileScale <= 0 {
		return
	}
	bounds := img.Bounds()

	// TileScale is relative to the nominal texture width; placeholder
	// textures are smaller.
	scale := p.TileScale * e.builder.Resources.FloorTextureWidth / float64(bounds.Dx())
	stepX := float64(bounds.Dx()) * scale
	stepY := float64(bounds.Dy()) * scale

	stage := screen.SubImage(image.Rect(int(p.X), int(p.Y), int(p.X+p.Width), int(p.Y+p.Height))).(*ebiten.Image)
	for y := p.Y; y < p.Y+p.Height; y += stepY {
		for x := p.X; x < p.X+p.Width; x += stepX {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleAlpha(float32(p.Alpha))
			stage.DrawImage(img, op)
		}
	}
}

func drawGridLine(screen *ebiten.Image, p visual.Primitive) {
	c := p.Tint.RGBA()
	col := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(p.Alpha * 255)}
	vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(p.X2), float32(p.Y2), 1, col, false)
}

// drawLabel draws the nine-slice panel and the text of a label
func (e *EbitenRenderer) drawLabel(screen *ebiten.Image, p visual.Primitive) {
	if p.Label == nil {
		return
	}
	if img, ok := e.textures[p.Texture]; ok {
		drawNineSlice(screen, img, p.Label, p.Alpha)
	}
	e.drawLabelText(screen, p.Label, e.builder.Resources.LabelStyle, p.Alpha)
}

// drawNineSlice stretches img over box keeping the corners at their
// natural size.
func drawNineSlice(screen *ebiten.Image, img *ebiten.Image, box *visual.LabelBox, alpha float64) {
	b := img.Bounds()
	in := box.Insets

	srcX := []int{b.Min.X, b.Min.X + int(in.Left), b.Max.X - int(in.Right), b.Max.X}
	srcY := []int{b.Min.Y, b.Min.Y + int(in.Top), b.Max.Y - int(in.Bottom), b.Max.Y}
	dstX := []float64{box.X, box.X + in.Left, box.X + box.Width - in.Right, box.X + box.Width}
	dstY := []float64{box.Y, box.Y + in.Top, box.Y + box.Height - in.Bottom, box.Y + box.Height}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sw, sh := srcX[col+1]-srcX[col], srcY[row+1]-srcY[row]
			dw, dh := dstX[col+1]-dstX[col], dstY[row+1]-dstY[row]
			if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
				continue
			}
			part := img.SubImage(image.Rect(srcX[col], srcY[row], srcX[col+1], srcY[row+1])).(*ebiten.Image)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(dw/float64(sw), dh/float64(sh))
			op.GeoM.Translate(dstX[col], dstY[row])
			op.ColorScale.ScaleAlpha(float32(alpha))
			screen.DrawImage(part, op)
		}
	}
}

// drawCentered draws a line of UI text in the middle of the window
func (e *EbitenRenderer) drawCentered(screen *ebiten.Image, str string, col color.Color) {
	w := e.getTextWidth(str)
	b := screen.Bounds()
	e.drawColoredText(screen, str, (float64(b.Dx())-w)/2, float64(b.Dy())/2-uiFontSize, col)
}

// drawMessage draws the latest status message in a panel at the bottom
func (e *EbitenRenderer) drawMessage(screen *ebiten.Image) {
	e.messageMutex.RLock()
	entry := e.message
	e.messageMutex.RUnlock()

	alpha := messageAlpha(entry, nowMillis())
	if alpha <= 0 {
		return
	}

	const pad = 10
	w := e.getTextWidth(entry.Text) + 2*pad
	h := float64(uiFontSize + 2*pad)
	x := 16.0
	y := float64(screen.Bounds().Dy()) - h - 16

	bg := color.NRGBA{colorPanelBackground.R, colorPanelBackground.G, colorPanelBackground.B, uint8(float64(colorPanelBackground.A) * alpha)}
	drawRoundedRectWithShadow(screen, float32(x), float32(y), float32(w), float32(h), 6, 1.5, bg, colorAction, float32(alpha))

	txt := color.NRGBA{colorText.R, colorText.G, colorText.B, uint8(255 * alpha)}
	e.drawColoredText(screen, entry.Text, x+pad, y+pad, txt)
}
