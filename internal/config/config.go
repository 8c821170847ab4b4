// Package config provides YAML-based tuning for the platformer: movement
// physics, actor size, animation timing, terminal input emulation and
// rendering scale.
package config

import (
	"fmt"
	"math"
	"time"
)

// Config contains all platformer tuning.
type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
	Render    RenderConfig    `yaml:"render"`
	Window    WindowConfig    `yaml:"window"`
}

// PhysicsConfig defines movement parameters in world units per second.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Vertical acceleration, negative is down
	RunSpeed  float64 `yaml:"run_speed"`  // Ground speed
	JumpSpeed float64 `yaml:"jump_speed"` // Vertical speed of a grounded jump
	FastFall  float64 `yaml:"fast_fall"`  // Downward speed when down is held on the ground
	AirAccel  float64 `yaml:"air_accel"`  // Horizontal acceleration in the air
}

// PlayerConfig defines the actor's collision box.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"` // Draw order only
}

// FrameRange is a contiguous run of sprite frames.
type FrameRange struct {
	Start int `yaml:"start"`
	Count int `yaml:"count"`
}

// AnimationConfig defines frame timing and per-state frame ranges.
type AnimationConfig struct {
	Period  float64    `yaml:"period"` // Seconds per frame
	Neutral FrameRange `yaml:"neutral"`
	Walking FrameRange `yaml:"walking"`
	InAir   FrameRange `yaml:"in_air"`
}

// InputConfig tunes the terminal frontend, which only sees key presses.
type InputConfig struct {
	HoldWindow   time.Duration `yaml:"hold_window"`    // How long a key counts as held after its last press
	MaxFrameTime time.Duration `yaml:"max_frame_time"` // Upper bound for the measured dt
}

// RenderConfig maps world units to terminal cells.
type RenderConfig struct {
	ScaleX float64 `yaml:"scale_x"` // Columns per world unit
	ScaleY float64 `yaml:"scale_y"` // Rows per world unit
}

// WindowConfig sizes the graphical frontend.
type WindowConfig struct {
	Width  int `yaml:"width"`  // Logical width in world units
	Height int `yaml:"height"` // Logical height in world units
	Zoom   int `yaml:"zoom"`   // Window pixels per logical pixel
}

// ValidationError describes the first invalid field found by Validate.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate fails fast on the first value that would break the simulation.
func (c Config) Validate() error {
	finite := []struct {
		field string
		v     float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.run_speed", c.Physics.RunSpeed},
		{"physics.jump_speed", c.Physics.JumpSpeed},
		{"physics.fast_fall", c.Physics.FastFall},
		{"physics.air_accel", c.Physics.AirAccel},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.depth", c.Player.Depth},
		{"animation.period", c.Animation.Period},
		{"render.scale_x", c.Render.ScaleX},
		{"render.scale_y", c.Render.ScaleY},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return ValidationError{Field: f.field, Message: "must be a finite number"}
		}
	}

	if c.Physics.Gravity > 0 {
		return ValidationError{Field: "physics.gravity", Message: "must be zero or negative (y points up)"}
	}
	nonNeg := []struct {
		field string
		v     float64
	}{
		{"physics.run_speed", c.Physics.RunSpeed},
		{"physics.jump_speed", c.Physics.JumpSpeed},
		{"physics.fast_fall", c.Physics.FastFall},
		{"physics.air_accel", c.Physics.AirAccel},
	}
	for _, f := range nonNeg {
		if f.v < 0 {
			return ValidationError{Field: f.field, Message: fmt.Sprintf("must not be negative, got %g", f.v)}
		}
	}

	if c.Player.Width <= 0 {
		return ValidationError{Field: "player.width", Message: "must be positive"}
	}
	if c.Player.Height <= 0 {
		return ValidationError{Field: "player.height", Message: "must be positive"}
	}

	if c.Animation.Period <= 0 {
		return ValidationError{Field: "animation.period", Message: "must be positive"}
	}
	ranges := []struct {
		field string
		r     FrameRange
	}{
		{"animation.neutral", c.Animation.Neutral},
		{"animation.walking", c.Animation.Walking},
		{"animation.in_air", c.Animation.InAir},
	}
	for _, f := range ranges {
		if f.r.Start < 0 || f.r.Count <= 0 {
			return ValidationError{Field: f.field, Message: fmt.Sprintf("invalid range start=%d count=%d", f.r.Start, f.r.Count)}
		}
	}

	if c.Input.HoldWindow <= 0 {
		return ValidationError{Field: "input.hold_window", Message: "must be positive"}
	}
	if c.Input.MaxFrameTime <= 0 {
		return ValidationError{Field: "input.max_frame_time", Message: "must be positive"}
	}

	if c.Render.ScaleX <= 0 || c.Render.ScaleY <= 0 {
		return ValidationError{Field: "render", Message: "scale_x and scale_y must be positive"}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.Zoom <= 0 {
		return ValidationError{Field: "window", Message: "width, height and zoom must be positive"}
	}
	return nil
}
