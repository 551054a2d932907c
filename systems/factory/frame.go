package factory

import (
	"github.com/automoto/tenagra/archetypes"
	"github.com/automoto/tenagra/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFrame spawns the singleton holding the per-tick input and clock
// snapshot.
func CreateFrame(ecs *ecs.ECS, step float64) *donburi.Entry {
	frame := archetypes.Frame.Spawn(ecs)
	components.Frame.SetValue(frame, components.FrameData{Step: step})
	return frame
}
