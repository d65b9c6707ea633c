package visual

import (
	"math"

	"bobfviewer/pkg/engine/world"
)

const (
	// springStep is the fixed integration step in seconds
	springStep = 0.001

	// springPrecision is the distance and speed below which a spring is at rest
	springPrecision = 0.01
)

// Spring animates a Tween with a damped spring per axis. Surfaces keep one
// per primitive key and advance it once per frame.
type Spring struct {
	tween Tween
	x, y  axis
	done  bool
}

type axis struct {
	pos, vel, from, to float64
}

// NewSpring starts a spring at the tween's origin
func NewSpring(t Tween) *Spring {
	return &Spring{
		tween: t,
		x:     axis{pos: t.From.XInPx, from: t.From.XInPx, to: t.To.XInPx},
		y:     axis{pos: t.From.YInPx, from: t.From.YInPx, to: t.To.YInPx},
		done:  t.From == t.To,
	}
}

// Tween returns the parameters the spring was started with
func (s *Spring) Tween() Tween {
	return s.tween
}

// Position returns the current animated position
func (s *Spring) Position() world.PixelPosition {
	return world.PixelPosition{XInPx: s.x.pos, YInPx: s.y.pos}
}

// Done reports whether the spring has come to rest at the target
func (s *Spring) Done() bool {
	return s.done
}

// Step advances the spring by dt seconds and returns the new position
func (s *Spring) Step(dt float64) world.PixelPosition {
	if s.done || dt <= 0 {
		return s.Position()
	}

	cfg := s.tween.Spring
	mass := cfg.Mass
	if mass <= 0 {
		mass = 1
	}

	for elapsed := 0.0; elapsed < dt && !s.done; elapsed += springStep {
		xDone := s.x.advance(cfg, mass, springStep)
		yDone := s.y.advance(cfg, mass, springStep)
		s.done = xDone && yDone
	}

	return s.Position()
}

// advance integrates one axis by h seconds and reports whether it settled
func (a *axis) advance(cfg SpringConfig, mass, h float64) bool {
	if a.pos == a.to && a.vel == 0 {
		return true
	}

	force := -cfg.Tension*(a.pos-a.to) - cfg.Friction*a.vel
	a.vel += force / mass * h
	a.pos += a.vel * h

	if cfg.Clamp && a.overshot() {
		a.pos, a.vel = a.to, 0
		return true
	}

	if math.Abs(a.vel) < springPrecision && math.Abs(a.pos-a.to) < springPrecision {
		a.pos, a.vel = a.to, 0
		return true
	}
	return false
}

// overshot reports whether the position has passed the target relative to
// where the axis started.
func (a *axis) overshot() bool {
	if a.to > a.from {
		return a.pos > a.to
	}
	if a.to < a.from {
		return a.pos < a.to
	}
	return false
}
