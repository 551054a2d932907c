package components

import (
	cfg "github.com/automoto/tenagra/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action returns the temporal state of a single action.
func (i *InputData) Action(action cfg.ActionID) ActionState {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return ActionState{}
	}
	current, previous := i.Current[action], i.Previous[action]
	return ActionState{
		Pressed:      current,
		JustPressed:  current && !previous,
		JustReleased: !current && previous,
	}
}

var Input = donburi.NewComponentType[InputData]()
