package visual

import (
	"fmt"
	"math"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/state"
)

// Projectile sprites point up in their native orientation
const (
	spriteForwardX = 0
	spriteForwardY = -15
)

// maxShootingLineAge is the first age at which a shot is no longer drawn
const maxShootingLineAge = 2

// AngleTo returns the rotation, in radians, that turns an upward-pointing
// sprite at from towards to. Positive is clockwise on screen.
func AngleTo(from, to world.PixelPosition) float64 {
	tx := to.XInPx - from.XInPx
	ty := to.YInPx - from.YInPx

	return math.Atan2(
		ty*spriteForwardX-tx*spriteForwardY,
		tx*spriteForwardX+ty*spriteForwardY,
	)
}

// Visible reports whether a shooting line is still young enough to draw
func Visible(line state.ShootingLine) bool {
	return line.Age < maxShootingLineAge
}

// ProjectileKey identifies a shot across frames so its animation survives
// state updates.
func ProjectileKey(line state.ShootingLine) string {
	return fmt.Sprintf("projectile-%d-%d-to-%d-%d",
		line.FromPosition.X, line.FromPosition.Y,
		line.ToPosition.X, line.ToPosition.Y)
}

// SpringConfig parameterizes a damped spring
type SpringConfig struct {
	Tension  float64 `json:"tension"`
	Friction float64 `json:"friction"`
	Mass     float64 `json:"mass"`
	Clamp    bool    `json:"clamp"`
}

// DefaultSpringConfig is a moderately stiff spring that stops at the
// target instead of overshooting.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{Tension: 170, Friction: 26, Mass: 1, Clamp: true}
}

// Tween is what an animator needs to move a sprite from From to To
type Tween struct {
	From   world.PixelPosition `json:"from"`
	To     world.PixelPosition `json:"to"`
	Spring SpringConfig        `json:"spring"`
}

// NewTween returns the tween for a projectile flying from one cell centre to another
func NewTween(from, to world.PixelPosition) Tween {
	return Tween{From: from, To: to, Spring: DefaultSpringConfig()}
}
