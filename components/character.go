package components

import "github.com/yohamta/donburi"

type CharacterData struct {
	Position    Vector
	Speed       float64 // horizontal units per second
	JumpImpulse float64 // vertical units added once per jump
	JumpReady   bool    // a new jump may start
	FacingLeft  bool    // horizontal flip
	StickyJump  bool    // stay Jumping while airborne
}

var Character = donburi.NewComponentType[CharacterData]()
