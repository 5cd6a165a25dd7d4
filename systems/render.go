package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/selahstudio/dotgrid/components"
	"github.com/selahstudio/dotgrid/gridmath"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackground clears the canvas to the grid's background colour
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	if screen == nil {
		return
	}
	grid, ok := GetGrid(e)
	if !ok {
		return
	}
	screen.Fill(grid.Options.Background)
}

// DrawDots paints every dot in build order. Without a grid or a target the
// frame is skipped; the next frame tries again.
func DrawDots(e *ecs.ECS, screen *ebiten.Image) {
	if screen == nil {
		return
	}
	grid, ok := GetGrid(e)
	if !ok {
		return
	}

	pointer := getPointer(e)
	radius := float32(grid.Options.DotSize / 2)

	for i := range grid.Dots {
		dot := &grid.Dots[i]
		pos := dot.Position()
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), radius, DotColor(grid, pointer, dot), true)
	}
}

// DotColor returns the colour of a dot for the current pointer. Distance is
// measured from the dot's rest position so the highlight field does not
// move with the animation.
func DotColor(grid *components.GridData, pointer *components.PointerData, dot *components.DotData) color.NRGBA {
	if pointer == nil || !pointer.Seen {
		return grid.Palette.BaseColor()
	}

	d := dot.Rest.Sub(gridmath.Point{X: pointer.X, Y: pointer.Y})
	boost, ok := gridmath.Highlight(d.X*d.X+d.Y*d.Y, grid.Options.Proximity)
	if !ok {
		return grid.Palette.BaseColor()
	}
	return grid.Palette.At(boost)
}
