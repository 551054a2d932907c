package components

import "github.com/yohamta/donburi"

type DebugData struct {
	Overlay bool // draw the state overlay
}

var Debug = donburi.NewComponentType[DebugData]()
