package components

import (
	"github.com/automoto/tenagra/assets/animations"
	cfg "github.com/automoto/tenagra/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Timer        *animations.Timer
	Frame        int                 // index within the current sheet
	CurrentSheet cfg.StateID         // active animation set
	FrameCounts  map[cfg.StateID]int // frames per animation set
}

// SetAnimation swaps the active sheet. The frame index is kept as is,
// so it may be out of range for the new sheet until the next advance.
func (a *AnimationData) SetAnimation(state cfg.StateID) {
	if _, ok := a.FrameCounts[state]; !ok {
		return
	}
	a.CurrentSheet = state
}

// FrameCount returns the number of frames in the active sheet.
func (a *AnimationData) FrameCount() int {
	return a.FrameCounts[a.CurrentSheet]
}

// InRange reports whether Frame indexes a real frame of the active sheet.
func (a *AnimationData) InRange() bool {
	return a.Frame >= 0 && a.Frame < a.FrameCount()
}

var Animation = donburi.NewComponentType[AnimationData]()
