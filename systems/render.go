package systems

import (
	"github.com/automoto/tenagra/components"
	cfg "github.com/automoto/tenagra/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// FrameSource resolves an animation set and frame index to an image.
type FrameSource interface {
	Frame(state cfg.StateID, index int) (*ebiten.Image, bool)
}

// NewCharacterRenderer returns a renderer drawing the character's current
// frame from frames.
func NewCharacterRenderer(frames FrameSource) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		DrawCharacter(e, screen, frames)
	}
}

// DrawCharacter draws the character anchored at bottom-centre, flipped
// when facing left. An out of range frame is skipped for this tick.
func DrawCharacter(e *ecs.ECS, screen *ebiten.Image, frames FrameSource) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	entry, ok := soleCharacter(e.World)
	if !ok {
		return
	}

	camera := components.Camera.Get(cameraEntry)
	character := components.Character.Get(entry)
	animData := components.Animation.Get(entry)

	img, ok := frames.Frame(animData.CurrentSheet, animData.Frame)
	if !ok || img == nil {
		return
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	sx, sy := camera.WorldToScreen(character.Position, screen.Bounds().Dx(), screen.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h))
	if character.FacingLeft {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(sx, sy)

	screen.DrawImage(img, drawOp)
}
