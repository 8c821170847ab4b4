package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// Default returns the built-in tuning. It matches defaults/platformer.yaml.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:   -400,
			RunSpeed:  50,
			JumpSpeed: 160,
			FastFall:  60,
			AirAccel:  120,
		},
		Player: PlayerConfig{
			Width:  8,
			Height: 18,
			Depth:  1,
		},
		Animation: AnimationConfig{
			Period:  0.1,
			Neutral: FrameRange{Start: 0, Count: 2},
			Walking: FrameRange{Start: 2, Count: 4},
			InAir:   FrameRange{Start: 6, Count: 2},
		},
		Input: InputConfig{
			HoldWindow:   150 * time.Millisecond,
			MaxFrameTime: 100 * time.Millisecond,
		},
		Render: RenderConfig{
			ScaleX: 0.5,
			ScaleY: 0.25,
		},
		Window: WindowConfig{
			Width:  320,
			Height: 180,
			Zoom:   3,
		},
	}
}

// DefaultYAML returns the embedded default config file, e.g. for
// `platformer check --print-default`.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
