package actor

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

var testParams = Params{
	RunSpeed:  50,
	JumpSpeed: 160,
	FastFall:  60,
	AirAccel:  120,
	Gravity:   -400,
}

func input(dirs ...core.Direction) core.InputFrame {
	in := core.NewInputFrame()
	for _, d := range dirs {
		in.Hold(d)
	}
	return in
}

func grounded() *physics.Body {
	return &physics.Body{
		Velocity: cp.Vector{X: 13, Y: 0},
		Contact:  physics.ContactState{Y: physics.YDown},
	}
}

func airborne() *physics.Body {
	return &physics.Body{
		Velocity: cp.Vector{X: 13, Y: -37},
	}
}

func newController(t *testing.T) *Controller {
	t.Helper()
	c, err := NewController(testParams)
	require.NoError(t, err)
	return c
}

func TestModeOf(t *testing.T) {
	tests := []struct {
		contact physics.ContactState
		mode    ControlMode
	}{
		{physics.ContactState{}, Airborne},
		{physics.ContactState{Y: physics.YDown}, Grounded},
		{physics.ContactState{X: physics.XLeft, Y: physics.YDown}, Grounded},
		{physics.ContactState{Y: physics.YUp}, Airborne},
		{physics.ContactState{X: physics.XRight}, Airborne},
	}

	for _, tc := range tests {
		t.Run(tc.contact.String(), func(t *testing.T) {
			assert.Equal(t, tc.mode, ModeOf(tc.contact))
		})
	}
}

func TestApplyGrounded(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		vel  cp.Vector
		anim AnimationState
	}{
		{"idle stops dead", input(), cp.Vector{X: 0, Y: 0}, AnimNeutral},
		{"right", input(core.DirRight), cp.Vector{X: 50}, AnimWalking},
		{"left", input(core.DirLeft), cp.Vector{X: -50}, AnimWalking},
		{"left and right cancel", input(core.DirLeft, core.DirRight), cp.Vector{}, AnimNeutral},
		{"jump", input(core.DirUp), cp.Vector{Y: 160}, AnimNeutral},
		{"fast fall", input(core.DirDown), cp.Vector{Y: -60}, AnimNeutral},
		{"up beats down", input(core.DirUp, core.DirDown), cp.Vector{Y: 160}, AnimNeutral},
		{"running jump", input(core.DirUp, core.DirRight), cp.Vector{X: 50, Y: 160}, AnimWalking},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newController(t)
			b := grounded()
			b.Acceleration.X = 99

			mode, anim := c.Apply(b, tc.in)

			assert.Equal(t, Grounded, mode)
			assert.Equal(t, tc.anim, anim)
			assert.Equal(t, tc.vel, b.Velocity)
			assert.Equal(t, cp.Vector{Y: -400}, b.Acceleration)
		})
	}
}

func TestApplyGroundedJumpOverridesResidualVelocity(t *testing.T) {
	c := newController(t)
	b := grounded()
	// Whatever gravity left behind is replaced, not added to.
	b.Velocity.Y = -6.666

	c.Apply(b, input(core.DirUp))

	assert.Equal(t, 160.0, b.Velocity.Y)
}

func TestApplyAirborne(t *testing.T) {
	tests := []struct {
		name   string
		in     core.InputFrame
		accelX float64
	}{
		{"idle", input(), 0},
		{"drift right", input(core.DirRight), 120},
		{"drift left", input(core.DirLeft), -120},
		{"both cancel", input(core.DirLeft, core.DirRight), 0},
		{"up ignored", input(core.DirUp), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newController(t)
			b := airborne()

			mode, anim := c.Apply(b, tc.in)

			assert.Equal(t, Airborne, mode)
			assert.Equal(t, AnimInAir, anim)
			assert.Equal(t, cp.Vector{X: 13, Y: -37}, b.Velocity, "velocity is left to the integrator")
			assert.Equal(t, cp.Vector{X: tc.accelX, Y: -400}, b.Acceleration)
		})
	}
}

func TestApplyCeilingContactIsAirborne(t *testing.T) {
	c := newController(t)
	b := airborne()
	b.Contact = physics.ContactState{Y: physics.YUp}

	mode, _ := c.Apply(b, input(core.DirUp))

	assert.Equal(t, Airborne, mode)
	assert.Equal(t, -37.0, b.Velocity.Y)
}

func TestNewControllerRejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative run speed", func(p *Params) { p.RunSpeed = -1 }},
		{"negative jump speed", func(p *Params) { p.JumpSpeed = -1 }},
		{"upward gravity", func(p *Params) { p.Gravity = 10 }},
		{"nan air accel", func(p *Params) { p.AirAccel = math.NaN() }},
		{"infinite gravity", func(p *Params) { p.Gravity = math.Inf(-1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams
			tc.mutate(&p)
			_, err := NewController(p)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "grounded", Grounded.String())
	assert.Equal(t, "airborne", Airborne.String())
	assert.Equal(t, "in_air", AnimInAir.String())
	assert.Equal(t, "AnimationState(9)", AnimationState(9).String())
}
