package systems

import (
	"github.com/automoto/tenagra/components"
	cfg "github.com/automoto/tenagra/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates selects the animation set for the character's motion
// state and keeps its state tag in sync.
func UpdateStates(e *ecs.ECS) {
	entry, ok := soleCharacter(e.World)
	if !ok {
		return
	}

	state := components.State.Get(entry)
	animData := components.Animation.Get(entry)
	animData.SetAnimation(animationFor(state.CurrentState))

	updateStateTags(entry, state)
}

// animationFor maps a motion state to the sheet that shows it.
func animationFor(state cfg.StateID) cfg.StateID {
	switch state {
	case cfg.Running:
		return cfg.Running
	case cfg.Jumping:
		return cfg.Jumping
	}
	return cfg.Idle
}

func updateStateTags(e *donburi.Entry, state *components.StateData) {
	if state.CurrentState == state.PreviousState {
		return
	}

	next := state.CurrentState
	state.PreviousState = next

	removeAllStateTags(e)

	switch next {
	case cfg.Idle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case cfg.Running:
		donburi.Add(e, components.Running, &components.RunningState{})
	case cfg.Jumping:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	}
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
}
