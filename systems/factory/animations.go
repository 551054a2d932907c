package factory

import (
	"github.com/automoto/tenagra/assets/animations"
	"github.com/automoto/tenagra/components"
	cfg "github.com/automoto/tenagra/config"
)

// GenerateAnimations creates an AnimationData component starting on the
// idle sheet. Sets with no frames are left out so the character never
// switches to a sheet it cannot index.
func GenerateAnimations(frameCounts map[cfg.StateID]int, period float64) *components.AnimationData {
	counts := make(map[cfg.StateID]int, len(frameCounts))
	for state, n := range frameCounts {
		if n > 0 {
			counts[state] = n
		}
	}

	return &components.AnimationData{
		Timer:        animations.NewTimer(period, true),
		FrameCounts:  counts,
		CurrentSheet: cfg.Idle,
	}
}
