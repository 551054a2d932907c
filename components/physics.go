package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	Gravity float64 // units subtracted per tick while airborne
	Ground  float64 // ground plane height
}

// Airborne reports whether y is strictly above the ground plane.
func (p *PhysicsData) Airborne(y float64) bool {
	return y > p.Ground
}

var Physics = donburi.NewComponentType[PhysicsData]()
