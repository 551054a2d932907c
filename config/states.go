package config

// StateID identifies a character's motion category and the animation set
// that represents it.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jumping
)

// StateToFileName maps StateID to the sprite sheet file for that state.
var StateToFileName = map[StateID]string{
	Idle:    "Idle.png",
	Running: "Run.png",
	Jumping: "Jump.png",
}

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	}
	return "none"
}
