package factory

import (
	"github.com/selahstudio/dotgrid/archetypes"
	"github.com/selahstudio/dotgrid/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePointer(ecs *ecs.ECS) *donburi.Entry {
	pointer := archetypes.Pointer.Spawn(ecs)
	components.Pointer.SetValue(pointer, components.PointerData{})
	return pointer
}
