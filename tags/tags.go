package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Frame     = donburi.NewTag().SetName("Frame")
)
