package systems

import (
	cfg "github.com/automoto/tenagra/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// KeyboardSource samples Ebitengine keyboard and gamepad state through
// the configured bindings.
type KeyboardSource struct {
	Bindings       map[cfg.ActionID]cfg.InputBinding
	AnalogDeadzone float64
	pressed        [cfg.ActionCount]bool
}

func NewKeyboardSource(input cfg.InputConfig) *KeyboardSource {
	return &KeyboardSource{
		Bindings:       input.Bindings,
		AnalogDeadzone: input.AnalogDeadzone,
	}
}

// Sample reads raw device state for every bound action.
func (k *KeyboardSource) Sample() {
	k.pressed = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range k.Bindings {
		if actionID <= cfg.ActionNone || actionID >= cfg.ActionCount {
			continue
		}
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				k.pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					k.pressed[actionID] = true
				}
			}
		}
	}

	// Merge left stick into directional actions
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -k.AnalogDeadzone {
			k.pressed[cfg.ActionMoveLeft] = true
		}
		if horizontal > k.AnalogDeadzone {
			k.pressed[cfg.ActionMoveRight] = true
		}
	}
}

func (k *KeyboardSource) Pressed(action cfg.ActionID) bool {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return false
	}
	return k.pressed[action]
}

// ScriptedSource replays a fixed per-tick list of held actions. Ticks past
// the end of the script hold nothing.
type ScriptedSource struct {
	Ticks [][]cfg.ActionID
	tick  int
	held  map[cfg.ActionID]bool
}

func NewScriptedSource(ticks ...[]cfg.ActionID) *ScriptedSource {
	return &ScriptedSource{Ticks: ticks}
}

// Sample moves to the next scripted tick.
func (s *ScriptedSource) Sample() {
	s.held = make(map[cfg.ActionID]bool)
	if s.tick < len(s.Ticks) {
		for _, action := range s.Ticks[s.tick] {
			s.held[action] = true
		}
	}
	s.tick++
}

// Done reports whether every scripted tick has been played.
func (s *ScriptedSource) Done() bool {
	return s.tick >= len(s.Ticks)
}

func (s *ScriptedSource) Pressed(action cfg.ActionID) bool {
	return s.held[action]
}
