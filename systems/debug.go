package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tenagra/components"
	cfg "github.com/automoto/tenagra/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

var debugFace = text.NewGoXFace(basicfont.Face7x13)

// UpdateDebug toggles the state overlay.
func UpdateDebug(e *ecs.ECS) {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		return
	}
	_, input, ok := currentFrame(e.World)
	if !ok {
		return
	}
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		debug := components.Debug.Get(entry)
		debug.Overlay = !debug.Overlay
	}
}

// DebugText describes the character's state for the overlay.
func DebugText(e *ecs.ECS) (string, bool) {
	entry, ok := soleCharacter(e.World)
	if !ok {
		return "", false
	}
	character := components.Character.Get(entry)
	state := components.State.Get(entry)
	animData := components.Animation.Get(entry)

	facing := "right"
	if character.FacingLeft {
		facing = "left"
	}
	return fmt.Sprintf("state: %s (%d ticks)\nsheet: %s frame %d/%d\npos: %.1f, %.1f\nfacing: %s jump ready: %t",
		state.CurrentState, state.StateTimer,
		animData.CurrentSheet, animData.Frame, animData.FrameCount(),
		character.Position.X, character.Position.Y,
		facing, character.JumpReady,
	), true
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(entry).Overlay {
		return
	}

	// Ground line
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		if character, ok := soleCharacter(e.World); ok {
			physics := components.Physics.Get(character)
			camera := components.Camera.Get(cameraEntry)
			_, gy := camera.WorldToScreen(components.Vector{Y: physics.Ground}, screen.Bounds().Dx(), screen.Bounds().Dy())
			vector.StrokeLine(screen, 0, float32(gy), float32(screen.Bounds().Dx()), float32(gy), 1, color.RGBA{R: 80, G: 80, B: 80, A: 255}, false)
		}
	}

	msg, ok := DebugText(e)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, debugFace, op)
}
