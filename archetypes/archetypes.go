package archetypes

import (
	"github.com/automoto/tenagra/components"
	"github.com/automoto/tenagra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Physics,
		components.State,
		components.Animation,
	)
	Frame = newArchetype(
		tags.Frame,
		components.Frame,
		components.Input,
		components.Debug,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.Create(
		ecs.LayerDefault,
		append(a.components, cs...)...,
	))
}
