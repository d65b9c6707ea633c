package visual

import (
	"bobfviewer/pkg/engine/world"
)

// Animator keeps one spring per projectile key across frames. A projectile
// that stays in the draw list keeps its spring; one that leaves loses it.
type Animator struct {
	springs map[string]*Spring
}

// NewAnimator creates an empty animator
func NewAnimator() *Animator {
	return &Animator{springs: make(map[string]*Spring)}
}

// Sync starts springs for projectiles new in frame and drops the ones that
// are no longer drawn.
func (a *Animator) Sync(frame Frame) {
	seen := make(map[string]struct{}, len(a.springs))
	for _, p := range frame.Primitives {
		if p.Kind != KindProjectile || p.Tween == nil {
			continue
		}
		seen[p.Key] = struct{}{}
		if s, ok := a.springs[p.Key]; ok && s.Tween() == *p.Tween {
			continue
		}
		a.springs[p.Key] = NewSpring(*p.Tween)
	}
	for key := range a.springs {
		if _, ok := seen[key]; !ok {
			delete(a.springs, key)
		}
	}
}

// Step advances every spring by dt seconds
func (a *Animator) Step(dt float64) {
	for _, s := range a.springs {
		s.Step(dt)
	}
}

// Position returns the animated position for a primitive key
func (a *Animator) Position(key string) (world.PixelPosition, bool) {
	s, ok := a.springs[key]
	if !ok {
		return world.PixelPosition{}, false
	}
	return s.Position(), true
}

// Len returns the number of live springs
func (a *Animator) Len() int {
	return len(a.springs)
}
