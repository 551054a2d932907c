package systems

import (
	"github.com/automoto/tenagra/components"
	cfg "github.com/automoto/tenagra/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports whether a logical action is currently held.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// SampledSource is an InputSource refreshed once per tick, before the
// snapshot is taken.
type SampledSource interface {
	InputSource
	Sample()
}

// AdvanceFrame snapshots input and the clock for the next tick.
// Must run before any system in Pipeline.
func AdvanceFrame(e *ecs.ECS, source InputSource, delta float64) {
	entry, ok := components.Frame.First(e.World)
	if !ok {
		return
	}

	input := components.Input.Get(entry)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	if source != nil {
		for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
			input.Current[action] = source.Pressed(action)
		}
	}

	frame := components.Frame.Get(entry)
	frame.Tick++
	if delta < 0 {
		delta = 0
	}
	frame.Delta = delta
}

// currentFrame returns this tick's snapshot.
func currentFrame(w donburi.World) (*components.FrameData, *components.InputData, bool) {
	entry, ok := components.Frame.First(w)
	if !ok {
		return nil, nil, false
	}
	return components.Frame.Get(entry), components.Input.Get(entry), true
}
