package factory

import (
	"github.com/automoto/tenagra/archetypes"
	"github.com/automoto/tenagra/components"
	cfg "github.com/automoto/tenagra/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns the controllable character at rest: idle,
// jump ready, frame 0 of the idle sheet.
func CreateCharacter(ecs *ecs.ECS, c *cfg.Config, frameCounts map[cfg.StateID]int) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	components.Character.SetValue(character, components.CharacterData{
		Position:    components.Vector{X: c.Character.SpawnX, Y: c.Character.SpawnY},
		Speed:       c.Character.Speed,
		JumpImpulse: c.Character.JumpImpulse,
		JumpReady:   true,
		StickyJump:  c.Character.StickyJump,
	})
	components.Physics.SetValue(character, components.PhysicsData{
		Gravity: c.Physics.Gravity,
		Ground:  c.Physics.Ground,
	})
	components.State.SetValue(character, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Animation.Set(character, GenerateAnimations(frameCounts, c.Animation.FramePeriod))

	return character
}
