package config

// SheetDef describes how a sprite sheet is sliced into frames.
// Frames are read row by row, left to right.
type SheetDef struct {
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int
}

// FrameCount is the number of frames the sheet holds.
func (d SheetDef) FrameCount() int {
	return d.Columns * d.Rows
}

// CharacterAnimations maps each character state to its sheet layout.
var CharacterAnimations = map[StateID]SheetDef{
	Idle:    {FrameWidth: 128, FrameHeight: 64, Columns: 2, Rows: 4},
	Running: {FrameWidth: 128, FrameHeight: 64, Columns: 2, Rows: 4},
	Jumping: {FrameWidth: 128, FrameHeight: 64, Columns: 2, Rows: 4},
}

// FrameCounts returns the frame count of every defined animation set.
func FrameCounts() map[StateID]int {
	counts := make(map[StateID]int, len(CharacterAnimations))
	for state, def := range CharacterAnimations {
		counts[state] = def.FrameCount()
	}
	return counts
}
