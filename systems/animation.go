package systems

import (
	"github.com/automoto/tenagra/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation advances the frame timer by the measured delta and
// steps the frame index when it expires.
func UpdateAnimation(e *ecs.ECS) {
	entry, ok := soleCharacter(e.World)
	if !ok {
		return
	}
	frame, _, ok := currentFrame(e.World)
	if !ok {
		return
	}
	animate(components.Animation.Get(entry), frame.Delta)
}

func animate(animData *components.AnimationData, dt float64) {
	if animData.Timer == nil || !animData.Timer.Tick(dt) {
		return
	}
	animData.Frame++
	// >= also pulls back an index left out of range by a sheet switch.
	if animData.Frame >= animData.FrameCount() {
		animData.Frame = 0
	}
}
