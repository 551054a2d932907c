package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	cfg "github.com/automoto/tenagra/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// placeholderColors tints generated frames so each set is told apart.
var placeholderColors = map[cfg.StateID]color.RGBA{
	cfg.Idle:    {R: 90, G: 140, B: 220, A: 255},
	cfg.Running: {R: 90, G: 200, B: 120, A: 255},
	cfg.Jumping: {R: 230, G: 170, B: 60, A: 255},
}

// Atlas holds the sliced frames of every character sheet.
type Atlas struct {
	frames map[cfg.StateID][]*ebiten.Image
}

// LoadAtlas reads each sheet named in cfg.StateToFileName from fsys and
// slices it with its definition. A sheet that is missing or does not fit
// its definition is replaced by generated frames.
func LoadAtlas(fsys fs.FS, defs map[cfg.StateID]cfg.SheetDef, log *zap.Logger) *Atlas {
	a := &Atlas{frames: make(map[cfg.StateID][]*ebiten.Image, len(defs))}

	for state, def := range defs {
		name := cfg.StateToFileName[state]
		sheet, err := loadSheet(fsys, name, def)
		if err != nil {
			log.Warn("using placeholder frames",
				zap.Stringer("state", state),
				zap.String("sheet", name),
				zap.Error(err))
			a.frames[state] = placeholderFrames(state, def)
			continue
		}
		a.frames[state] = sliceSheet(sheet, def)
		log.Debug("loaded sheet",
			zap.Stringer("state", state),
			zap.String("sheet", name),
			zap.Int("frames", def.FrameCount()))
	}

	return a
}

// FrameCount returns the number of frames for state.
func (a *Atlas) FrameCount(state cfg.StateID) int {
	return len(a.frames[state])
}

// FrameCounts returns the frame count of every loaded set.
func (a *Atlas) FrameCounts() map[cfg.StateID]int {
	counts := make(map[cfg.StateID]int, len(a.frames))
	for state, frames := range a.frames {
		counts[state] = len(frames)
	}
	return counts
}

// Frame returns frame index of state. It reports false for an index out
// of range.
func (a *Atlas) Frame(state cfg.StateID, index int) (*ebiten.Image, bool) {
	frames := a.frames[state]
	if index < 0 || index >= len(frames) {
		return nil, false
	}
	return frames[index], true
}

func loadSheet(fsys fs.FS, name string, def cfg.SheetDef) (*ebiten.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("no sheet file")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", name, err)
	}
	if err := CheckSheet(img.Bounds(), def); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", name, err)
	}
	return img, nil
}

func sliceSheet(sheet *ebiten.Image, def cfg.SheetDef) []*ebiten.Image {
	frames := make([]*ebiten.Image, 0, def.FrameCount())
	origin := sheet.Bounds().Min
	for i := 0; i < def.FrameCount(); i++ {
		rect := FrameRect(def, i).Add(origin)
		frames = append(frames, sheet.SubImage(rect).(*ebiten.Image))
	}
	return frames
}

func placeholderFrames(state cfg.StateID, def cfg.SheetDef) []*ebiten.Image {
	base, ok := placeholderColors[state]
	if !ok {
		base = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}

	count := def.FrameCount()
	frames := make([]*ebiten.Image, 0, count)
	for i := 0; i < count; i++ {
		img := ebiten.NewImage(def.FrameWidth, def.FrameHeight)
		img.Fill(shade(base, i, count))
		frames = append(frames, img)
	}
	return frames
}

// shade darkens c progressively so consecutive frames differ.
func shade(c color.RGBA, index, count int) color.RGBA {
	if count <= 1 {
		return c
	}
	f := 1 - 0.5*float64(index)/float64(count-1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// FrameRect returns the source rectangle of frame index within a sheet
// laid out by def, relative to the sheet origin.
func FrameRect(def cfg.SheetDef, index int) image.Rectangle {
	if def.Columns <= 0 {
		return image.Rectangle{}
	}
	col := index % def.Columns
	row := index / def.Columns
	x := col * def.FrameWidth
	y := row * def.FrameHeight
	return image.Rect(x, y, x+def.FrameWidth, y+def.FrameHeight)
}

// CheckSheet reports whether a sheet of the given bounds holds every
// frame def describes.
func CheckSheet(bounds image.Rectangle, def cfg.SheetDef) error {
	if def.FrameWidth <= 0 || def.FrameHeight <= 0 || def.Columns <= 0 || def.Rows <= 0 {
		return fmt.Errorf("invalid sheet definition %+v", def)
	}
	needW := def.Columns * def.FrameWidth
	needH := def.Rows * def.FrameHeight
	if bounds.Dx() < needW || bounds.Dy() < needH {
		return fmt.Errorf("sheet is %dx%d, need at least %dx%d", bounds.Dx(), bounds.Dy(), needW, needH)
	}
	return nil
}
