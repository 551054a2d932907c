package systems

import (
	"github.com/automoto/tenagra/components"
	cfg "github.com/automoto/tenagra/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement turns input into horizontal travel, a jump impulse and
// the character's motion state.
func UpdateMovement(e *ecs.ECS) {
	entry, ok := soleCharacter(e.World)
	if !ok {
		return
	}
	frame, input, ok := currentFrame(e.World)
	if !ok {
		return
	}

	move(
		components.Character.Get(entry),
		components.Physics.Get(entry),
		components.State.Get(entry),
		input,
		frame.Step,
	)
}

func move(character *components.CharacterData, physics *components.PhysicsData, state *components.StateData, input *components.InputData, step float64) {
	moveLeft := input.Action(cfg.ActionMoveLeft)
	moveRight := input.Action(cfg.ActionMoveRight)
	jump := input.Action(cfg.ActionJump)

	motion := cfg.Idle
	dirX, dirY := 0.0, 0.0

	if moveLeft.Pressed {
		motion = cfg.Running
		character.FacingLeft = true
		dirX = -1
	}
	// Right is checked last so it wins when both are held.
	if moveRight.Pressed {
		motion = cfg.Running
		character.FacingLeft = false
		dirX = 1
	}

	if character.JumpReady && jump.Pressed {
		motion = cfg.Jumping
		dirY = character.JumpImpulse
		character.JumpReady = false
	}
	// Re-arms on release even in mid air.
	if jump.JustReleased {
		character.JumpReady = true
	}

	character.Position.X += dirX * character.Speed * step
	character.Position.Y += dirY

	if character.StickyJump && physics.Airborne(character.Position.Y) {
		motion = cfg.Jumping
	}
	setState(state, motion)
}

func setState(state *components.StateData, next cfg.StateID) {
	if state.CurrentState == next {
		state.StateTimer++
		return
	}
	state.CurrentState = next
	state.StateTimer = 0
}
