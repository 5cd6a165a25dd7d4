package factory

import (
	"github.com/selahstudio/dotgrid/archetypes"
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/palette"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGrid spawns the grid entity. Dots are built by the grid system once
// the container size is known.
func CreateGrid(ecs *ecs.ECS, opts cfg.DotGridConfig) *donburi.Entry {
	grid := archetypes.Grid.Spawn(ecs)
	components.Grid.SetValue(grid, components.GridData{
		Options: opts,
		Palette: palette.New(opts.BaseColor, opts.ActiveColor, opts.BaseAlpha, opts.ActiveAlpha),
		Stale:   true,
	})
	return grid
}
