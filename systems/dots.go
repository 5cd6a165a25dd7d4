package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/gridmath"
	"github.com/selahstudio/dotgrid/tween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDots advances every dot animation by one tick
func UpdateDots(e *ecs.ECS) {
	grid, ok := GetGrid(e)
	if !ok {
		return
	}
	AdvanceDots(grid, 1/float64(ebiten.TPS()))
}

// AdvanceDots moves every animated dot dt seconds along its motion. A dot
// whose return finished is back at rest with a zero offset.
func AdvanceDots(grid *components.GridData, dt float64) {
	for i := range grid.Dots {
		dot := &grid.Dots[i]
		motion := dot.Motion
		if motion == nil {
			continue
		}

		v, done := motion.Update(dt)
		dot.Offset = gridmath.Point{X: v.X, Y: v.Y}

		// The displacement continuation already installed the return motion.
		if done && dot.Motion == motion {
			dot.Motion = nil
			dot.Phase = cfg.DotRest
			dot.Offset = gridmath.Point{}
		}
	}
}

// DisplaceDot eases a dot from its current offset to push, then springs it
// back to rest. Any animation the dot was running is replaced.
func DisplaceDot(dot *components.DotData, push gridmath.Point, duration, returnDuration float64) {
	from := tween.Vec{X: dot.Offset.X, Y: dot.Offset.Y}
	to := tween.Vec{X: push.X, Y: push.Y}

	dot.Phase = cfg.DotDisplacing
	dot.Motion = tween.New(from, to, duration, ease.OutQuad).Then(func() {
		returnDot(dot, to, returnDuration)
	})
}

func returnDot(dot *components.DotData, from tween.Vec, duration float64) {
	dot.Phase = cfg.DotReturning
	dot.Motion = tween.New(from, tween.Vec{}, duration,
		tween.ElasticOut(cfg.Motion.ElasticAmplitude, cfg.Motion.ElasticPeriod))
}

// ActiveAnimations counts dots that are not at rest
func ActiveAnimations(grid *components.GridData) int {
	n := 0
	for i := range grid.Dots {
		if grid.Dots[i].Phase != cfg.DotRest {
			n++
		}
	}
	return n
}
