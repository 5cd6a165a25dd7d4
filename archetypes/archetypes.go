package archetypes

import (
	"github.com/selahstudio/dotgrid/components"
	cfg "github.com/selahstudio/dotgrid/config"
	"github.com/selahstudio/dotgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Grid = newArchetype(
		tags.Grid,
		components.Grid,
	)
	Pointer = newArchetype(
		tags.Pointer,
		components.Pointer,
	)
	Intro = newArchetype(
		tags.Intro,
		components.Intro,
		components.Starfield,
	)
)

type archetype struct {
	components []donburi.IComponentType
	layer      ecs.LayerID
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
		layer:      cfg.LayerDots,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
