package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/tenagra/assets"
	cfg "github.com/automoto/tenagra/config"
	"github.com/automoto/tenagra/scenes"
	"github.com/automoto/tenagra/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(c *cfg.Config, atlas *assets.Atlas, log *zap.Logger) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewCharacterScene(c, atlas, log),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Window.Width, cfg.C.Window.Height)
	return cfg.C.Window.Width, cfg.C.Window.Height
}

func newLogger(c cfg.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if c.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// demoScript runs right, jumps while running, lands and comes to rest.
func demoScript() *systems.ScriptedSource {
	var ticks [][]cfg.ActionID
	for i := 0; i < 30; i++ {
		ticks = append(ticks, []cfg.ActionID{cfg.ActionMoveRight})
	}
	ticks = append(ticks, []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionJump})
	for i := 0; i < 10; i++ {
		ticks = append(ticks, []cfg.ActionID{cfg.ActionJump})
	}
	for i := 0; i < 30; i++ {
		ticks = append(ticks, nil)
	}
	return systems.NewScriptedSource(ticks...)
}

func runHeadless(c *cfg.Config, log *zap.Logger, ticks int) {
	sim := scenes.NewSimulation(c, cfg.FrameCounts(), log)
	script := demoScript()
	for i := 0; i < ticks; i++ {
		snap := sim.Step(script, c.Physics.TimeStep)
		log.Info("tick",
			zap.Uint64("tick", snap.Tick),
			zap.Stringer("state", snap.State),
			zap.Float64("x", snap.Position.X),
			zap.Float64("y", snap.Position.Y),
			zap.Int("frame", snap.Frame))
	}
}

func main() {
	configPath := flag.String("config", "", "TOML configuration file (empty = defaults)")
	assetDir := flag.String("assets", "", "Sprite sheet directory (overrides animation.sheet_dir)")
	debug := flag.Bool("debug", false, "Show the state overlay")
	headless := flag.Bool("headless", false, "Run the demo script without a window")
	ticks := flag.Int("ticks", 80, "Ticks to run in headless mode")
	flag.Parse()

	c := cfg.Default()
	if *configPath != "" {
		loaded, err := cfg.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		c = loaded
	}
	if *assetDir != "" {
		c.Animation.SheetDir = *assetDir
	}
	if *debug {
		c.Debug.Overlay = true
	}
	cfg.C = c

	log, err := newLogger(c.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *headless {
		runHeadless(c, log, *ticks)
		return
	}

	atlas := assets.LoadAtlas(os.DirFS(c.Animation.SheetDir), cfg.CharacterAnimations, log)

	ebiten.SetWindowTitle(c.Window.Title)
	ebiten.SetWindowSize(c.Window.Width, c.Window.Height)
	ebiten.SetVsyncEnabled(c.Window.VSync)

	if err := ebiten.RunGame(NewGame(c, atlas, log)); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
}
