// Package platformer runs one level: a single actor body in a physics
// world of static obstacles, driven each tick by integrate, resolve,
// control and animate, in that order.
package platformer

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-platformer/internal/actor"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Game implements registry.Game for one level.
type Game struct {
	level    levels.Level
	cfg      config.Config
	world    *physics.World
	actor    *physics.Body
	control  *actor.Controller
	anim     *actor.Animator
	mode     actor.ControlMode
	runtime  core.RuntimeConfig
	camera   cp.Vector // World point drawn at the screen centre
	paused   bool
	ticks    uint64
	elapsed  float64 // Simulated seconds since the last reset
	respawns int
}

// New builds a game for level with the given tuning.
func New(level levels.Level, cfg config.Config) (*Game, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		level:   level,
		runtime: core.DefaultConfig(),
	}
	if err := g.apply(cfg, level.Spawn, cp.Vector{}); err != nil {
		return nil, err
	}
	g.camera = level.Spawn
	return g, nil
}

// apply validates cfg and rebuilds the world with the actor at pos.
// Nothing on g changes unless every step succeeds.
func (g *Game) apply(cfg config.Config, pos, vel cp.Vector) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	control, err := actor.NewController(paramsFrom(cfg))
	if err != nil {
		return err
	}
	anim, err := actor.NewAnimator(cfg.Animation.Period, rangesFrom(cfg))
	if err != nil {
		return err
	}

	world := physics.NewWorld()
	for i, o := range g.level.Obstacles {
		if _, err := world.AddObstacle(o.Center, o.Width, o.Height); err != nil {
			return fmt.Errorf("platformer: level %s obstacle %d: %w", g.level.ID, i, err)
		}
	}
	id, err := world.AddBody(physics.BodySpec{
		Position:     pos,
		Depth:        cfg.Player.Depth,
		Velocity:     vel,
		Acceleration: cp.Vector{Y: cfg.Physics.Gravity},
		Width:        cfg.Player.Width,
		Height:       cfg.Player.Height,
	})
	if err != nil {
		return fmt.Errorf("platformer: actor: %w", err)
	}
	body, _ := world.Body(id)

	g.cfg = cfg
	g.world = world
	g.actor = body
	g.control = control
	g.anim = anim
	g.mode = actor.ModeOf(body.Contact)
	return nil
}

func paramsFrom(cfg config.Config) actor.Params {
	return actor.Params{
		RunSpeed:  cfg.Physics.RunSpeed,
		JumpSpeed: cfg.Physics.JumpSpeed,
		FastFall:  cfg.Physics.FastFall,
		AirAccel:  cfg.Physics.AirAccel,
		Gravity:   cfg.Physics.Gravity,
	}
}

func rangesFrom(cfg config.Config) map[actor.AnimationState]actor.FrameRange {
	conv := func(r config.FrameRange) actor.FrameRange {
		return actor.FrameRange{Start: r.Start, Count: r.Count}
	}
	return map[actor.AnimationState]actor.FrameRange{
		actor.AnimNeutral: conv(cfg.Animation.Neutral),
		actor.AnimWalking: conv(cfg.Animation.Walking),
		actor.AnimInAir:   conv(cfg.Animation.InAir),
	}
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	return g.level.Name
}

// Reset puts the actor back at the spawn point and clears all counters.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.respawn()
	g.camera = g.level.Spawn
	g.paused = false
	g.ticks = 0
	g.elapsed = 0
	g.respawns = 0
}

// Retune swaps in a new config while keeping the actor where it is.
// On error the game keeps running with the old config.
func (g *Game) Retune(cfg config.Config) error {
	return g.apply(cfg, g.actor.Position, g.actor.Velocity)
}

// Step handles platform actions and, unless paused, advances one tick.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	err := g.Tick(dt, in)
	return core.StepResult{State: g.State(), Err: err}
}

// Tick runs one simulation step: integrate and resolve every body, then
// apply control from the fresh contact state, then animate. An invalid dt
// is rejected before anything changes.
func (g *Game) Tick(dt float64, in core.InputFrame) error {
	if err := g.world.Step(dt); err != nil {
		return err
	}

	mode, state := g.control.Apply(g.actor, in)
	g.mode = mode
	g.anim.Update(dt, state, g.actor.Velocity.X)

	if g.actor.Position.Y < g.level.KillY {
		g.respawn()
		g.respawns++
	}

	g.ticks++
	g.elapsed += dt
	g.follow()
	return nil
}

// respawn returns the actor to the spawn point at rest.
func (g *Game) respawn() {
	g.actor.Place(g.level.Spawn)
	g.actor.Velocity = cp.Vector{}
	g.actor.Acceleration = cp.Vector{Y: g.cfg.Physics.Gravity}
	g.actor.Contact = physics.ContactState{}
	g.mode = actor.Airborne
	g.anim.Reset()
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused:   g.paused,
		Ticks:    g.ticks,
		Elapsed:  g.elapsed,
		Respawns: g.respawns,
	}
}

// Position returns the actor centre.
func (g *Game) Position() cp.Vector {
	return g.actor.Position
}

// Velocity returns the actor velocity.
func (g *Game) Velocity() cp.Vector {
	return g.actor.Velocity
}

// Contact returns the contact state of the last resolution.
func (g *Game) Contact() physics.ContactState {
	return g.actor.Contact
}

// Mode returns the control mode of the last tick.
func (g *Game) Mode() actor.ControlMode {
	return g.mode
}

// AnimState returns the animation state of the last tick.
func (g *Game) AnimState() actor.AnimationState {
	return g.anim.State()
}

// Frame returns the sprite frame index.
func (g *Game) Frame() int {
	return g.anim.Frame()
}

// FlipX reports whether the actor faces left.
func (g *Game) FlipX() bool {
	return g.anim.FlipX()
}

// ActorBox returns the actor's bounding box.
func (g *Game) ActorBox() physics.BoundingBox {
	return g.actor.Box
}

// Obstacles returns the level's static boxes.
func (g *Game) Obstacles() []physics.Obstacle {
	return g.world.Obstacles()
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Config returns the active tuning.
func (g *Game) Config() config.Config {
	return g.cfg
}
