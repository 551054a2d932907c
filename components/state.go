package components

import (
	cfg "github.com/automoto/tenagra/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int // ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type RunningState struct{}
type JumpingState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
