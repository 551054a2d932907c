package scenes

import (
	"github.com/automoto/tenagra/components"
	cfg "github.com/automoto/tenagra/config"
	"github.com/automoto/tenagra/systems"
	"github.com/automoto/tenagra/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Snapshot is the character state after a tick, as the renderer sees it.
type Snapshot struct {
	Tick       uint64
	Position   components.Vector
	FacingLeft bool
	JumpReady  bool
	State      cfg.StateID
	Sheet      cfg.StateID
	Frame      int
}

// Simulation owns one character world and steps it a tick at a time.
type Simulation struct {
	ECS       *ecs.ECS
	Character *donburi.Entry
	log       *zap.Logger
}

// NewSimulation creates a world holding the frame snapshot, a camera and
// the character, with the character pipeline registered.
func NewSimulation(c *cfg.Config, frameCounts map[cfg.StateID]int, log *zap.Logger) *Simulation {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateDebug)
	systems.Register(e)

	factory.CreateFrame(e, c.Physics.TimeStep)
	factory.CreateCamera(e)
	character := factory.CreateCharacter(e, c, frameCounts)

	if entry, ok := components.Debug.First(e.World); ok {
		components.Debug.Get(entry).Overlay = c.Debug.Overlay
	}

	return &Simulation{ECS: e, Character: character, log: log}
}

// Step runs one tick: sample input, snapshot it with delta, then run
// every system in order.
func (s *Simulation) Step(source systems.SampledSource, delta float64) Snapshot {
	before := components.State.Get(s.Character).CurrentState

	if source != nil {
		source.Sample()
	}
	systems.AdvanceFrame(s.ECS, source, delta)
	s.ECS.Update()

	snap := s.Snapshot()
	if snap.State != before {
		s.log.Debug("state changed",
			zap.Uint64("tick", snap.Tick),
			zap.Stringer("from", before),
			zap.Stringer("to", snap.State),
			zap.Float64("x", snap.Position.X),
			zap.Float64("y", snap.Position.Y))
	}
	return snap
}

// Run steps every tick of a scripted source with a fixed delta and
// returns the snapshot after each tick.
func (s *Simulation) Run(source *systems.ScriptedSource, delta float64) []Snapshot {
	snaps := make([]Snapshot, 0, len(source.Ticks))
	for !source.Done() {
		snaps = append(snaps, s.Step(source, delta))
	}
	return snaps
}

func (s *Simulation) Snapshot() Snapshot {
	character := components.Character.Get(s.Character)
	state := components.State.Get(s.Character)
	animData := components.Animation.Get(s.Character)

	var tick uint64
	if entry, ok := components.Frame.First(s.ECS.World); ok {
		tick = components.Frame.Get(entry).Tick
	}

	return Snapshot{
		Tick:       tick,
		Position:   character.Position,
		FacingLeft: character.FacingLeft,
		JumpReady:  character.JumpReady,
		State:      state.CurrentState,
		Sheet:      animData.CurrentSheet,
		Frame:      animData.Frame,
	}
}
