package systems

import (
	"math"
	"reflect"
	"testing"

	"github.com/automoto/tenagra/components"
	cfg "github.com/automoto/tenagra/config"
	"github.com/automoto/tenagra/systems/factory"
	"github.com/pixil98/go-testutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const step = 1.0 / 60.0

type heldSource map[cfg.ActionID]bool

func (h heldSource) Pressed(action cfg.ActionID) bool {
	return h[action]
}

func hold(actions ...cfg.ActionID) heldSource {
	h := heldSource{}
	for _, a := range actions {
		h[a] = true
	}
	return h
}

func newTestWorld(t *testing.T, mutate func(c *cfg.Config)) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	c := cfg.Default()
	if mutate != nil {
		mutate(c)
	}
	e := Register(ecs.NewECS(donburi.NewWorld()))
	factory.CreateFrame(e, c.Physics.TimeStep)
	factory.CreateCamera(e)
	return e, factory.CreateCharacter(e, c, cfg.FrameCounts())
}

func tick(e *ecs.ECS, delta float64, actions ...cfg.ActionID) {
	AdvanceFrame(e, hold(actions...), delta)
	e.Update()
}

func assertClose(t *testing.T, name string, got, exp float64) {
	t.Helper()
	if math.Abs(got-exp) > 1e-9 {
		t.Errorf("%s: got %v, expected %v", name, got, exp)
	}
}

func TestMoveRight(t *testing.T) {
	e, entry := newTestWorld(t, nil)
	character := components.Character.Get(entry)

	for i := 1; i <= 10; i++ {
		before := character.Position.X
		tick(e, step, cfg.ActionMoveRight)

		if character.Position.X <= before {
			t.Fatalf("tick %d: x did not increase (%v -> %v)", i, before, character.Position.X)
		}
		assertClose(t, "x step", character.Position.X-before, 300*step)
		testutil.AssertEqual(t, "state", components.State.Get(entry).CurrentState, cfg.Running)
		testutil.AssertEqual(t, "sheet", components.Animation.Get(entry).CurrentSheet, cfg.Running)
		testutil.AssertEqual(t, "facing left", character.FacingLeft, false)
		testutil.AssertEqual(t, "y", character.Position.Y, 0.0)
	}
}

func TestMoveLeft(t *testing.T) {
	e, entry := newTestWorld(t, nil)
	character := components.Character.Get(entry)

	tick(e, step, cfg.ActionMoveLeft)

	assertClose(t, "x", character.Position.X, -300*step)
	testutil.AssertEqual(t, "facing left", character.FacingLeft, true)
	testutil.AssertEqual(t, "state", components.State.Get(entry).CurrentState, cfg.Running)
}

func TestBothDirectionsRightWins(t *testing.T) {
	both, bothEntry := newTestWorld(t, nil)
	right, rightEntry := newTestWorld(t, nil)

	// Face left first so the tie-break has to overwrite it.
	tick(both, step, cfg.ActionMoveLeft)
	tick(right, step, cfg.ActionMoveLeft)

	for i := 0; i < 5; i++ {
		tick(both, step, cfg.ActionMoveLeft, cfg.ActionMoveRight)
		tick(right, step, cfg.ActionMoveRight)
	}

	got := components.Character.Get(bothEntry)
	exp := components.Character.Get(rightEntry)
	testutil.AssertEqual(t, "position", got.Position, exp.Position)
	testutil.AssertEqual(t, "facing left", got.FacingLeft, false)
	testutil.AssertEqual(t, "state", components.State.Get(bothEntry).CurrentState, components.State.Get(rightEntry).CurrentState)
	testutil.AssertEqual(t, "sheet", components.Animation.Get(bothEntry).CurrentSheet, cfg.Running)
}

func TestHorizontalUsesNominalStep(t *testing.T) {
	e, entry := newTestWorld(t, nil)

	tick(e, 0.5, cfg.ActionMoveRight)

	assertClose(t, "x", components.Character.Get(entry).Position.X, 300*step)
}

func TestStopRunningSameTick(t *testing.T) {
	e, entry := newTestWorld(t, nil)

	tick(e, step, cfg.ActionMoveRight)
	testutil.AssertEqual(t, "running sheet", components.Animation.Get(entry).CurrentSheet, cfg.Running)

	tick(e, step)
	testutil.AssertEqual(t, "state", components.State.Get(entry).CurrentState, cfg.Idle)
	testutil.AssertEqual(t, "sheet", components.Animation.Get(entry).CurrentSheet, cfg.Idle)
}

func TestJumpFromGround(t *testing.T) {
	e, entry := newTestWorld(t, nil)
	character := components.Character.Get(entry)

	tick(e, step, cfg.ActionJump)

	testutil.AssertEqual(t, "y", character.Position.Y, 50-1.75)
	testutil.AssertEqual(t, "jump ready", character.JumpReady, false)
	testutil.AssertEqual(t, "state", components.State.Get(entry).CurrentState, cfg.Jumping)
	testutil.AssertEqual(t, "sheet", components.Animation.Get(entry).CurrentSheet, cfg.Jumping)
}

func TestJumpHoldAndRelease(t *testing.T) {
	e, entry := newTestWorld(t, nil)
	character := components.Character.Get(entry)

	tick(e, step, cfg.ActionJump)
	testutil.AssertEqual(t, "press y", character.Position.Y, 48.25)
	testutil.AssertEqual(t, "press ready", character.JumpReady, false)

	// Held: no further impulse.
	for i := 0; i < 3; i++ {
		tick(e, step, cfg.ActionJump)
		testutil.AssertEqual(t, "held ready", character.JumpReady, false)
	}
	testutil.AssertEqual(t, "held y", character.Position.Y, 48.25-3*1.75)

	tick(e, step)
	testutil.AssertEqual(t, "release ready", character.JumpReady, true)
	testutil.AssertEqual(t, "release y", character.Position.Y, 48.25-4*1.75)

	tick(e, step, cfg.ActionJump)
	testutil.AssertEqual(t, "second jump y", character.Position.Y, 48.25-4*1.75+50-1.75)
	testutil.AssertEqual(t, "second jump ready", character.JumpReady, false)
	testutil.AssertEqual(t, "second jump state", components.State.Get(entry).CurrentState, cfg.Jumping)
}

func TestJumpRefreshInAir(t *testing.T) {
	e, entry := newTestWorld(t, nil)
	character := components.Character.Get(entry)

	tick(e, step, cfg.ActionJump)
	tick(e, step)
	tick(e, step, cfg.ActionJump)

	testutil.AssertEqual(t, "y", character.Position.Y, 50-1.75-1.75+50-1.75)
}

func TestGravityClampsAtGround(t *testing.T) {
	e, entry := newTestWorld(t, nil)
	character := components.Character.Get(entry)
	character.Position.Y = 0.5

	tick(e, step)
	testutil.AssertEqual(t, "first tick", character.Position.Y, 0.0)

	character.Position.Y = 3
	for i := 0; i < 100; i++ {
		tick(e, step)
		if character.Position.Y < 0 {
			t.Fatalf("tick %d: y below ground: %v", i, character.Position.Y)
		}
	}
	testutil.AssertEqual(t, "rest", character.Position.Y, 0.0)
}

func TestFall(t *testing.T) {
	tests := map[string]struct {
		y      float64
		ground float64
		expY   float64
	}{
		"airborne":      {y: 10, ground: 0, expY: 8.25},
		"on ground":     {y: 0, ground: 0, expY: 0},
		"just above":    {y: 1, ground: 0, expY: 0},
		"raised ground": {y: 12, ground: 10, expY: 10.25},
		"below ground":  {y: -5, ground: 0, expY: -5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			character := &components.CharacterData{Position: components.Vector{Y: tt.y}}
			fall(character, &components.PhysicsData{Gravity: 1.75, Ground: tt.ground})
			testutil.AssertEqual(t, "y", character.Position.Y, tt.expY)
		})
	}
}

func TestAnimationZeroDelta(t *testing.T) {
	e, entry := newTestWorld(t, nil)

	for i := 0; i < 50; i++ {
		tick(e, 0)
	}

	testutil.AssertEqual(t, "frame", components.Animation.Get(entry).Frame, 0)
}

func TestAnimationAdvancesOncePerPeriod(t *testing.T) {
	e, entry := newTestWorld(t, nil)
	animData := components.Animation.Get(entry)

	for i := 0; i < 5; i++ {
		tick(e, step)
	}
	testutil.AssertEqual(t, "before period", animData.Frame, 0)

	tick(e, step)
	testutil.AssertEqual(t, "at period", animData.Frame, 1)
	if animData.Timer.Elapsed() > 1e-9 {
		t.Errorf("timer not reset: %v", animData.Timer.Elapsed())
	}

	for i := 0; i < 6; i++ {
		tick(e, step)
	}
	testutil.AssertEqual(t, "second period", animData.Frame, 2)
}

func TestAnimationWraps(t *testing.T) {
	animData := factory.GenerateAnimations(cfg.FrameCounts(), 0.1)

	for i := 0; i < 8; i++ {
		animate(animData, 0.1)
	}

	testutil.AssertEqual(t, "frame", animData.Frame, 0)
}

func TestAnimationOutOfRangeAfterSwitch(t *testing.T) {
	animData := factory.GenerateAnimations(map[cfg.StateID]int{cfg.Idle: 8, cfg.Jumping: 3}, 0.1)
	animData.Frame = 6
	animData.SetAnimation(cfg.Jumping)

	testutil.AssertEqual(t, "in range", animData.InRange(), false)
	animate(animData, 0.1)
	testutil.AssertEqual(t, "frame", animData.Frame, 0)
}

func TestStateSwitchKeepsFrame(t *testing.T) {
	e, entry := newTestWorld(t, nil)
	animData := components.Animation.Get(entry)

	for i := 0; i < 6; i++ {
		tick(e, step)
	}
	testutil.AssertEqual(t, "idle frame", animData.Frame, 1)

	tick(e, step, cfg.ActionMoveRight)
	testutil.AssertEqual(t, "sheet", animData.CurrentSheet, cfg.Running)
	testutil.AssertEqual(t, "running frame", animData.Frame, 1)
}

func TestStateTags(t *testing.T) {
	e, entry := newTestWorld(t, nil)

	tick(e, step)
	testutil.AssertEqual(t, "idle tag", entry.HasComponent(components.Idle), true)

	tick(e, step, cfg.ActionMoveRight)
	testutil.AssertEqual(t, "running tag", entry.HasComponent(components.Running), true)
	testutil.AssertEqual(t, "idle tag removed", entry.HasComponent(components.Idle), false)

	tick(e, step, cfg.ActionJump)
	testutil.AssertEqual(t, "jumping tag", entry.HasComponent(components.Jumping), true)
	testutil.AssertEqual(t, "running tag removed", entry.HasComponent(components.Running), false)
	testutil.AssertEqual(t, "previous state", components.State.Get(entry).PreviousState, cfg.Jumping)
}

func TestStateTimer(t *testing.T) {
	e, entry := newTestWorld(t, nil)
	state := components.State.Get(entry)

	tick(e, step)
	tick(e, step)
	testutil.AssertEqual(t, "idle ticks", state.StateTimer, 2)

	tick(e, step, cfg.ActionMoveLeft)
	testutil.AssertEqual(t, "reset", state.StateTimer, 0)
}

func TestStickyJump(t *testing.T) {
	tests := map[string]struct {
		sticky   bool
		expState cfg.StateID
	}{
		"default": {sticky: false, expState: cfg.Running},
		"sticky":  {sticky: true, expState: cfg.Jumping},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, entry := newTestWorld(t, func(c *cfg.Config) { c.Character.StickyJump = tt.sticky })

			tick(e, step, cfg.ActionJump)
			tick(e, step, cfg.ActionMoveRight)

			testutil.AssertEqual(t, "airborne state", components.State.Get(entry).CurrentState, tt.expState)

			// Fall back to the ground.
			for i := 0; i < 60; i++ {
				tick(e, step, cfg.ActionMoveRight)
			}
			testutil.AssertEqual(t, "landed y", components.Character.Get(entry).Position.Y, 0.0)
			testutil.AssertEqual(t, "landed state", components.State.Get(entry).CurrentState, cfg.Running)
		})
	}
}

func TestSkipWithoutSingleCharacter(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		e := Register(ecs.NewECS(donburi.NewWorld()))
		factory.CreateFrame(e, step)

		tick(e, step, cfg.ActionMoveRight, cfg.ActionJump)

		_, ok := soleCharacter(e.World)
		testutil.AssertEqual(t, "found", ok, false)
	})

	t.Run("two", func(t *testing.T) {
		e, first := newTestWorld(t, nil)
		second := factory.CreateCharacter(e, cfg.Default(), cfg.FrameCounts())

		for i := 0; i < 10; i++ {
			tick(e, step, cfg.ActionMoveRight, cfg.ActionJump)
		}

		for _, entry := range []*donburi.Entry{first, second} {
			character := components.Character.Get(entry)
			testutil.AssertEqual(t, "position", character.Position, components.Vector{})
			testutil.AssertEqual(t, "jump ready", character.JumpReady, true)
			testutil.AssertEqual(t, "state", components.State.Get(entry).CurrentState, cfg.Idle)
			testutil.AssertEqual(t, "frame", components.Animation.Get(entry).Frame, 0)
		}
	})
}

func TestSkipWithoutFrame(t *testing.T) {
	e := Register(ecs.NewECS(donburi.NewWorld()))
	entry := factory.CreateCharacter(e, cfg.Default(), cfg.FrameCounts())

	e.Update()

	testutil.AssertEqual(t, "position", components.Character.Get(entry).Position, components.Vector{})
}

func TestAdvanceFrame(t *testing.T) {
	e, _ := newTestWorld(t, nil)

	AdvanceFrame(e, hold(cfg.ActionJump), 0.02)
	frame, input, ok := currentFrame(e.World)
	testutil.AssertEqual(t, "found", ok, true)
	testutil.AssertEqual(t, "tick", frame.Tick, uint64(1))
	testutil.AssertEqual(t, "delta", frame.Delta, 0.02)
	testutil.AssertEqual(t, "step", frame.Step, step)
	testutil.AssertEqual(t, "pressed", input.Action(cfg.ActionJump).JustPressed, true)

	AdvanceFrame(e, nil, -1)
	frame, input, _ = currentFrame(e.World)
	testutil.AssertEqual(t, "negative delta", frame.Delta, 0.0)
	testutil.AssertEqual(t, "released", input.Action(cfg.ActionJump).JustReleased, true)
}

func TestPipelineOrder(t *testing.T) {
	exp := []func(*ecs.ECS){UpdateMovement, UpdateStates, UpdateGravity, UpdateAnimation}

	testutil.AssertEqual(t, "length", len(Pipeline), len(exp))
	for i := range exp {
		got := reflect.ValueOf(Pipeline[i]).Pointer()
		want := reflect.ValueOf(exp[i]).Pointer()
		if got != want {
			t.Errorf("system %d out of order", i)
		}
	}
}

func TestDebugToggle(t *testing.T) {
	e, _ := newTestWorld(t, nil)
	e.AddSystem(UpdateDebug)
	entry, _ := components.Debug.First(e.World)
	debug := components.Debug.Get(entry)

	tick(e, step, cfg.ActionToggleDebug)
	testutil.AssertEqual(t, "on", debug.Overlay, true)

	tick(e, step, cfg.ActionToggleDebug)
	testutil.AssertEqual(t, "held", debug.Overlay, true)

	tick(e, step)
	tick(e, step, cfg.ActionToggleDebug)
	testutil.AssertEqual(t, "off", debug.Overlay, false)
}

func TestDebugText(t *testing.T) {
	e, _ := newTestWorld(t, nil)
	tick(e, step, cfg.ActionMoveLeft)

	msg, ok := DebugText(e)
	testutil.AssertEqual(t, "ok", ok, true)
	testutil.AssertEqual(t, "text", msg, "state: running (0 ticks)\nsheet: running frame 0/8\npos: -5.0, 0.0\nfacing: left jump ready: true")
}
