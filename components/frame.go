package components

import "github.com/yohamta/donburi"

// FrameData is the clock snapshot for the current tick.
type FrameData struct {
	Tick  uint64
	Delta float64 // measured seconds since the previous tick
	Step  float64 // nominal seconds per tick
}

var Frame = donburi.NewComponentType[FrameData]()
