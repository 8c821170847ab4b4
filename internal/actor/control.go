// Package actor turns collision results into movement and presentation:
// the control gate decides how held directions drive a body depending on
// whether it stands on something, and the animator maps the outcome to a
// sprite frame and a facing flag.
package actor

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// ErrInvalidParams is returned for negative speeds, a positive gravity or
// non-finite tuning values.
var ErrInvalidParams = errors.New("actor: invalid control parameters")

// ControlMode is the two-state control machine.
type ControlMode uint8

const (
	Airborne ControlMode = iota
	Grounded
)

func (m ControlMode) String() string {
	switch m {
	case Airborne:
		return "airborne"
	case Grounded:
		return "grounded"
	default:
		return fmt.Sprintf("ControlMode(%d)", uint8(m))
	}
}

// ModeOf derives the control mode from a contact state. It is recomputed
// every tick and never latched.
func ModeOf(c physics.ContactState) ControlMode {
	if c.Y == physics.YDown {
		return Grounded
	}
	return Airborne
}

// AnimationState selects which frame range the animator cycles.
type AnimationState uint8

const (
	AnimNeutral AnimationState = iota
	AnimWalking
	AnimInAir
)

func (s AnimationState) String() string {
	switch s {
	case AnimNeutral:
		return "neutral"
	case AnimWalking:
		return "walking"
	case AnimInAir:
		return "in_air"
	default:
		return fmt.Sprintf("AnimationState(%d)", uint8(s))
	}
}

// Params holds the movement tuning. All speeds are world units per second,
// accelerations world units per second squared. Gravity is negative (y-up).
type Params struct {
	RunSpeed  float64 // Ground horizontal speed, set directly
	JumpSpeed float64 // Vertical speed set by a grounded jump
	FastFall  float64 // Downward speed set when down is held on the ground
	AirAccel  float64 // Horizontal acceleration while airborne
	Gravity   float64 // Constant vertical acceleration
}

// Validate checks the parameters for values the integrator cannot use.
func (p Params) Validate() error {
	vals := []struct {
		name string
		v    float64
	}{
		{"run_speed", p.RunSpeed},
		{"jump_speed", p.JumpSpeed},
		{"fast_fall", p.FastFall},
		{"air_accel", p.AirAccel},
		{"gravity", p.Gravity},
	}
	for _, f := range vals {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
		if f.name != "gravity" && f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidParams, f.name, f.v)
		}
	}
	if p.Gravity > 0 {
		return fmt.Errorf("%w: gravity must point down (<= 0), got %g", ErrInvalidParams, p.Gravity)
	}
	return nil
}

// Controller applies held directions to a body.
type Controller struct {
	params Params
}

// NewController validates p and returns a controller using it.
func NewController(p Params) (*Controller, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Controller{params: p}, nil
}

// Params returns the controller's tuning.
func (c *Controller) Params() Params {
	return c.params
}

// Apply reads the body's resolved contact and writes this tick's control
// forces. Grounded bodies get their velocity set directly: horizontal from
// left/right (both held cancel), vertical from up (jump) or else down
// (fast fall). Airborne bodies only get a horizontal acceleration; their
// velocity is left to the integrator. Acceleration.Y is always gravity.
func (c *Controller) Apply(b *physics.Body, in core.InputFrame) (ControlMode, AnimationState) {
	mode := ModeOf(b.Contact)
	h := float64(in.Horizontal())

	b.Acceleration.Y = c.params.Gravity

	switch mode {
	case Grounded:
		b.Acceleration.X = 0
		b.Velocity.X = h * c.params.RunSpeed
		if in.Up() {
			b.Velocity.Y = c.params.JumpSpeed
		} else if in.Down() {
			b.Velocity.Y = -c.params.FastFall
		}
		if h != 0 {
			return mode, AnimWalking
		}
		return mode, AnimNeutral
	case Airborne:
		b.Acceleration.X = h * c.params.AirAccel
		return mode, AnimInAir
	default:
		panic(fmt.Sprintf("actor: unhandled control mode %v", mode))
	}
}
