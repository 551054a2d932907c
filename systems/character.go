package systems

import (
	"github.com/automoto/tenagra/tags"
	"github.com/yohamta/donburi"
)

// soleCharacter returns the controllable character. It reports false
// when the world holds no character or more than one, in which case
// character systems skip the tick.
func soleCharacter(w donburi.World) (*donburi.Entry, bool) {
	var found *donburi.Entry
	count := 0
	tags.Character.Each(w, func(e *donburi.Entry) {
		found = e
		count++
	})
	if count != 1 {
		return nil, false
	}
	return found, true
}
