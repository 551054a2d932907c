package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is a 2D orthographic camera. World Y points up,
// screen Y points down.
type CameraData struct {
	Position math.Vec2 // world point shown at the screen centre
}

// WorldToScreen converts a world position to screen pixels.
func (c *CameraData) WorldToScreen(p Vector, width, height int) (float64, float64) {
	x := float64(width)/2 + (p.X - c.Position.X)
	y := float64(height)/2 - (p.Y - c.Position.Y)
	return x, y
}

var Camera = donburi.NewComponentType[CameraData]()
