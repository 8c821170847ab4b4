package config

import "fmt"

// DifficultyPreset is a named movement feel applied on top of a loaded
// config.
type DifficultyPreset string

const (
	PresetFloaty DifficultyPreset = "floaty"
	PresetNormal DifficultyPreset = "normal"
	PresetSnappy DifficultyPreset = "snappy"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{PresetFloaty, PresetNormal, PresetSnappy}
}

// ParsePreset resolves a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", PresetFloaty, PresetNormal, PresetSnappy:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want floaty, normal or snappy)", name)
	}
}

// ApplyPreset adjusts gravity and jump so the apex height stays roughly the
// same while hang time changes. Normal leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case PresetFloaty:
		cfg.Physics.Gravity *= 0.5
		cfg.Physics.JumpSpeed *= 0.71
		cfg.Physics.AirAccel *= 1.5
	case PresetSnappy:
		cfg.Physics.Gravity *= 2
		cfg.Physics.JumpSpeed *= 1.41
		cfg.Physics.RunSpeed *= 1.2
		cfg.Physics.FastFall *= 2
	}
}
