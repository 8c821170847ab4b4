// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Spawn     YAMLPoint         `yaml:"spawn"`
	KillY     *float64          `yaml:"kill_y,omitempty"`
	Obstacles []YAMLBox         `yaml:"obstacles"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPoint is a world-space point.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLBox is an obstacle given by its centre and full size.
type YAMLBox struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Color string  `yaml:"color,omitempty"`
}

// Box is a parsed obstacle.
type Box struct {
	Center cp.Vector
	Width  float64
	Height float64
	Color  core.Color
}

// Level represents a parsed level ready for use.
type Level struct {
	ID        string
	Name      string
	Spawn     cp.Vector
	KillY     float64
	HasKillY  bool
	Obstacles []Box
	Metadata  map[string]string
}

// ParseYAML parses a YAML level file. Unknown colour names are an error so
// a typo does not silently render as the default colour.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Spawn:     cp.Vector{X: yl.Spawn.X, Y: yl.Spawn.Y},
		Obstacles: make([]Box, 0, len(yl.Obstacles)),
		Metadata:  yl.Metadata,
	}
	if yl.KillY != nil {
		level.KillY = *yl.KillY
		level.HasKillY = true
	}

	for i, o := range yl.Obstacles {
		color, ok := core.ParseColor(o.Color)
		if !ok {
			return Level{}, fmt.Errorf("obstacle %d: unknown color %q", i, o.Color)
		}
		level.Obstacles = append(level.Obstacles, Box{
			Center: cp.Vector{X: o.X, Y: o.Y},
			Width:  o.W,
			Height: o.H,
			Color:  color,
		})
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
