package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/visual"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// stepAnimations advances every projectile spring by one tick
func (e *EbitenRenderer) stepAnimations() {
	e.animator.Step(1 / float64(ebiten.TPS()))
}

// projectilePosition is where a projectile is drawn this tick
func (e *EbitenRenderer) projectilePosition(p visual.Primitive) world.PixelPosition {
	if pos, ok := e.animator.Position(p.Key); ok {
		return pos
	}
	return world.PixelPosition{XInPx: p.X, YInPx: p.Y}
}

// messageAlpha fades a status message out over its last second
func messageAlpha(entry messageEntry, now int64) float64 {
	age := now - entry.Timestamp
	switch {
	case entry.Text == "" || age >= messageDurationMs:
		return 0
	case age <= messageDurationMs-1000:
		return 1
	default:
		return float64(messageDurationMs-age) / 1000
	}
}
