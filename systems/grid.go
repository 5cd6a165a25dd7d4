package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/gridmath"
	"github.com/selahstudio/dotgrid/palette"
	"github.com/selahstudio/dotgrid/systems/factory"
	"github.com/selahstudio/dotgrid/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrid rebuilds the dot arena when the container size or the grid
// options changed. Must run before the pointer systems.
func UpdateGrid(e *ecs.ECS) {
	grid, ok := GetGrid(e)
	if !ok {
		return
	}

	width, height := viewportSize(e)
	if !grid.Stale && grid.Width == width && grid.Height == height {
		return
	}
	RebuildGrid(grid, width, height)
}

// RebuildGrid replaces every dot with a fresh one at its anchor. In-flight
// animations are dropped with the old dots.
func RebuildGrid(grid *components.GridData, width, height float64) {
	grid.Width = width
	grid.Height = height
	grid.Layout = gridmath.Build(width, height, grid.Options.DotSize, grid.Options.Gap)

	anchors := grid.Layout.Anchors()
	dots := make([]components.DotData, len(anchors))
	for i, a := range anchors {
		dots[i] = components.DotData{Rest: a, Phase: cfg.DotRest}
	}
	grid.Dots = dots
	grid.Space, grid.Objects = factory.CreateSpace(grid, cfg.Motion.BroadphaseCells)
	grid.Stale = false
}

// SetGridOptions swaps the options of a mounted grid and schedules a rebuild.
func SetGridOptions(grid *components.GridData, opts cfg.DotGridConfig) {
	grid.Options = opts
	grid.Palette = palette.New(opts.BaseColor, opts.ActiveColor, opts.BaseAlpha, opts.ActiveAlpha)
	grid.Stale = true
}

// GetGrid returns the mounted grid, if any
func GetGrid(e *ecs.ECS) (*components.GridData, bool) {
	entry, ok := components.Grid.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Grid.Get(entry), true
}

// SetViewport records the container size reported by the host layout
func SetViewport(e *ecs.ECS, width, height int) {
	entry, ok := components.Viewport.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Viewport))
	}
	components.Viewport.SetValue(entry, components.ViewportData{Width: width, Height: height})
}

// viewportSize returns the last reported container size, falling back to the
// window size when the host never reported a layout. A reported zero size
// is kept and yields an empty grid.
func viewportSize(e *ecs.ECS) (float64, float64) {
	if entry, ok := components.Viewport.First(e.World); ok {
		vp := components.Viewport.Get(entry)
		return float64(vp.Width), float64(vp.Height)
	}
	w, h := ebiten.WindowSize()
	return float64(w), float64(h)
}

// dotsWithin calls fn for every dot whose rest position is closer than
// radius to center. Candidates come from the broadphase index.
func dotsWithin(grid *components.GridData, center gridmath.Point, radius float64, fn func(dot *components.DotData, dist float64)) {
	if grid.Space == nil || radius <= 0 || len(grid.Dots) == 0 {
		return
	}

	probe := resolv.NewObject(center.X-radius, center.Y-radius, radius*2, radius*2, tags.ResolvProbe)
	grid.Space.Add(probe)
	defer grid.Space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvDot)
	if check == nil {
		return
	}

	for _, obj := range check.Objects {
		i, ok := obj.Data.(int)
		if !ok || i < 0 || i >= len(grid.Dots) {
			continue
		}
		dot := &grid.Dots[i]
		dist := dot.Rest.Sub(center).Len()
		if dist < radius {
			fn(dot, dist)
		}
	}
}
