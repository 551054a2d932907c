package systems

import "github.com/yohamta/donburi/ecs"

// Pipeline is the per-tick system order. Animation must follow state
// resolution so the frame index wraps against the sheet chosen this tick.
var Pipeline = []func(*ecs.ECS){
	UpdateMovement,
	UpdateStates,
	UpdateGravity,
	UpdateAnimation,
}

// Register adds the Pipeline systems to e in order.
func Register(e *ecs.ECS) *ecs.ECS {
	for _, system := range Pipeline {
		e.AddSystem(system)
	}
	return e
}
