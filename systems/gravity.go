package systems

import (
	"github.com/automoto/tenagra/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity pulls an airborne character down by a constant amount
// per tick and stops it at the ground plane.
func UpdateGravity(e *ecs.ECS) {
	entry, ok := soleCharacter(e.World)
	if !ok {
		return
	}
	fall(components.Character.Get(entry), components.Physics.Get(entry))
}

func fall(character *components.CharacterData, physics *components.PhysicsData) {
	if !physics.Airborne(character.Position.Y) {
		return
	}
	character.Position.Y -= physics.Gravity
	if character.Position.Y < physics.Ground {
		character.Position.Y = physics.Ground
	}
}
