package scenes

import (
	"sync"

	"github.com/automoto/tenagra/assets"
	cfg "github.com/automoto/tenagra/config"
	"github.com/automoto/tenagra/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CharacterScene hosts the simulation inside the Ebitengine game loop.
// Each Update is one tick.
type CharacterScene struct {
	config *cfg.Config
	atlas  *assets.Atlas
	log    *zap.Logger
	input  systems.SampledSource
	clock  *Clock
	sim    *Simulation
	once   sync.Once
}

func NewCharacterScene(c *cfg.Config, atlas *assets.Atlas, log *zap.Logger) *CharacterScene {
	return &CharacterScene{
		config: c,
		atlas:  atlas,
		log:    log,
		input:  systems.NewKeyboardSource(cfg.Input),
		clock:  NewClock(c.Physics.MaxDelta),
	}
}

func (cs *CharacterScene) Update() {
	cs.once.Do(cs.configure)
	cs.sim.Step(cs.input, cs.clock.Delta())
}

func (cs *CharacterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cs.config.Window.ClearColor)

	if cs.sim == nil {
		return
	}
	cs.sim.ECS.Draw(screen)
}

func (cs *CharacterScene) configure() {
	cs.sim = NewSimulation(cs.config, cs.atlas.FrameCounts(), cs.log)

	cs.sim.ECS.AddRenderer(ecs.LayerDefault, systems.NewCharacterRenderer(cs.atlas))
	cs.sim.ECS.AddRenderer(ecs.LayerDefault, systems.DrawDebug)

	cs.log.Info("scene ready",
		zap.Float64("speed", cs.config.Character.Speed),
		zap.Float64("gravity", cs.config.Physics.Gravity),
		zap.Bool("sticky_jump", cs.config.Character.StickyJump))
}
