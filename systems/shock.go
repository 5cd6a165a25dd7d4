package systems

import (
	"image"

	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/gridmath"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateShock creates the click system: every click or tap outside the
// tuning panel sends an impulse through the grid.
func NewUpdateShock(src PointerReader) ecs.System {
	return func(e *ecs.ECS) {
		grid, ok := GetGrid(e)
		if !ok {
			return
		}

		x, y, ok := src.Pressed()
		if !ok {
			return
		}

		if entry, ok := components.Settings.First(e.World); ok {
			settings := components.Settings.Get(entry)
			if settings.PanelOpen && image.Pt(int(x), int(y)).In(settings.PanelRect) {
				return
			}
		}

		Shock(grid, gridmath.Point{X: x, Y: y})
	}
}

// Shock pushes every dot within the shock radius away from the click point.
func Shock(grid *components.GridData, click gridmath.Point) {
	opts := grid.Options
	maxOffset := gridmath.ShockMaxOffset(opts.Gap, opts.DotSize)

	dotsWithin(grid, click, opts.ShockRadius, func(dot *components.DotData, _ float64) {
		push := gridmath.ShockPush(dot.Rest, click, opts.ShockRadius, opts.ShockStrength, maxOffset)
		DisplaceDot(dot, push, cfg.Motion.ShockDuration, opts.ReturnDuration)
	})
}
