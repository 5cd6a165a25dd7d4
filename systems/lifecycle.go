package systems

import (
	"github.com/selahstudio/dotgrid/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Unmount drops the dot arena and removes every entity a scene created.
// The world is unusable afterwards.
func Unmount(e *ecs.ECS) {
	if grid, ok := GetGrid(e); ok {
		for _, obj := range grid.Objects {
			if grid.Space != nil {
				grid.Space.Remove(obj)
			}
		}
		grid.Dots = nil
		grid.Objects = nil
		grid.Space = nil
	}

	var entities []donburi.Entity
	for _, ct := range []donburi.IComponentType{
		components.Grid,
		components.Pointer,
		components.Viewport,
		components.Settings,
		components.Input,
		components.Intro,
	} {
		donburi.NewQuery(filter.Contains(ct)).Each(e.World, func(entry *donburi.Entry) {
			entities = append(entities, entry.Entity())
		})
	}
	for _, entity := range entities {
		if e.World.Valid(entity) {
			e.World.Remove(entity)
		}
	}
}
