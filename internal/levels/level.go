// Package levels provides world layouts for the platformer: obstacle boxes,
// a spawn point and a kill plane. Built-in levels are embedded; more can be
// loaded from a directory of YAML files.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-platformer/internal/levels/formats"
)

// ErrInvalidLevel is wrapped by every level validation failure.
var ErrInvalidLevel = errors.New("levels: invalid level")

// killMargin is how far below the lowest obstacle the default kill plane sits.
const killMargin = 60.0

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	Spawn     cp.Vector     // Actor centre at start and after a respawn
	KillY     float64       // Falling below this respawns the actor
	Obstacles []formats.Box // Static boxes in registration order
	Metadata  map[string]string
	FilePath  string // Empty for built-in levels
}

// fromParsed converts a parsed file, filling in the default kill plane.
func fromParsed(p formats.Level, path string) Level {
	lvl := Level{
		ID:        p.ID,
		Name:      p.Name,
		Spawn:     p.Spawn,
		KillY:     p.KillY,
		Obstacles: p.Obstacles,
		Metadata:  p.Metadata,
		FilePath:  path,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if !p.HasKillY {
		lvl.KillY = lvl.lowestEdge() - killMargin
	}
	return lvl
}

func (l Level) lowestEdge() float64 {
	low := l.Spawn.Y
	for _, o := range l.Obstacles {
		low = math.Min(low, o.Center.Y-o.Height/2)
	}
	return low
}

// Bounds returns the box enclosing every obstacle and the spawn point.
func (l Level) Bounds() cp.BB {
	bb := cp.NewBBForExtents(l.Spawn, 0, 0)
	for _, o := range l.Obstacles {
		bb = bb.Merge(cp.NewBBForExtents(o.Center, o.Width/2, o.Height/2))
	}
	return bb
}

// Validate checks the layout for values the physics world would reject.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if len(l.Obstacles) == 0 {
		return fmt.Errorf("%w: %s has no obstacles", ErrInvalidLevel, l.ID)
	}
	if !finite(l.Spawn.X) || !finite(l.Spawn.Y) || !finite(l.KillY) {
		return fmt.Errorf("%w: %s spawn or kill_y is not finite", ErrInvalidLevel, l.ID)
	}
	if l.KillY >= l.Spawn.Y {
		return fmt.Errorf("%w: %s kill_y %g is not below spawn y %g", ErrInvalidLevel, l.ID, l.KillY, l.Spawn.Y)
	}
	for i, o := range l.Obstacles {
		if !finite(o.Center.X) || !finite(o.Center.Y) || !finite(o.Width) || !finite(o.Height) {
			return fmt.Errorf("%w: %s obstacle %d is not finite", ErrInvalidLevel, l.ID, i)
		}
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("%w: %s obstacle %d has size %gx%g", ErrInvalidLevel, l.ID, i, o.Width, o.Height)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
