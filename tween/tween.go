// Package tween animates 2-D values over time on top of gween.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Vec is an animated 2-D value.
type Vec struct {
	X, Y float64
}

// Tween interpolates a Vec from a start to an end value.
type Tween struct {
	x, y     *gween.Tween
	to       Vec
	then     func()
	finished bool
}

// New creates a tween from -> to lasting duration seconds.
func New(from, to Vec, duration float64, easing ease.TweenFunc) *Tween {
	return &Tween{
		x:  gween.New(float32(from.X), float32(to.X), float32(duration), easing),
		y:  gween.New(float32(from.Y), float32(to.Y), float32(duration), easing),
		to: to,
	}
}

// Then registers fn to run once when the tween completes.
func (t *Tween) Then(fn func()) *Tween {
	t.then = fn
	return t
}

// Finished reports whether the tween reached its end value.
func (t *Tween) Finished() bool {
	return t.finished
}

// Update advances the tween by dt seconds and returns the current value.
// The end value is returned exactly once the duration has elapsed.
func (t *Tween) Update(dt float64) (Vec, bool) {
	if t.finished {
		return t.to, true
	}

	x, doneX := t.x.Update(float32(dt))
	y, doneY := t.y.Update(float32(dt))
	if !doneX || !doneY {
		return Vec{X: float64(x), Y: float64(y)}, false
	}

	t.finished = true
	if t.then != nil {
		fn := t.then
		t.then = nil
		fn()
	}
	return t.to, true
}
