// Package physics implements the collision core of the platformer: a
// registry of dynamic bodies and static obstacles, explicit Euler
// integration, and shallowest-axis AABB penetration resolution.
//
// World space is y-up. Nothing in this package logs, allocates per tick or
// reads a clock: callers supply dt.
package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// BoundingBox is an axis-aligned box with its full size and derived corners.
// Bounds.L/B is the min corner, Bounds.R/T the max corner.
type BoundingBox struct {
	Width  float64
	Height float64
	Bounds cp.BB
}

// NewBoundingBox builds a box of the given full size centred on center.
func NewBoundingBox(center cp.Vector, width, height float64) (BoundingBox, error) {
	if err := checkExtents(width, height); err != nil {
		return BoundingBox{}, err
	}
	if !finiteVec(center) {
		return BoundingBox{}, fmt.Errorf("%w: center %v", ErrNonFinite, center)
	}
	b := BoundingBox{Width: width, Height: height}
	b.Recenter(center)
	return b, nil
}

// Recenter recomputes the corners for a new centre position.
func (b *BoundingBox) Recenter(center cp.Vector) {
	b.Bounds = cp.NewBBForExtents(center, b.Width/2, b.Height/2)
}

// Min returns the lower-left corner.
func (b BoundingBox) Min() cp.Vector {
	return cp.Vector{X: b.Bounds.L, Y: b.Bounds.B}
}

// Max returns the upper-right corner.
func (b BoundingBox) Max() cp.Vector {
	return cp.Vector{X: b.Bounds.R, Y: b.Bounds.T}
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() cp.Vector {
	return cp.Vector{X: (b.Bounds.L + b.Bounds.R) / 2, Y: (b.Bounds.B + b.Bounds.T) / 2}
}

// Overlaps reports whether two boxes share interior area.
// Boxes whose edges exactly touch do not overlap, and a box never overlaps
// a structurally equal box (itself).
func Overlaps(a, b BoundingBox) bool {
	if a == b {
		return false
	}
	if a.Bounds.R <= b.Bounds.L || a.Bounds.L >= b.Bounds.R {
		return false
	}
	if a.Bounds.T <= b.Bounds.B || a.Bounds.B >= b.Bounds.T {
		return false
	}
	return true
}

// Penetrate returns the single-axis displacement that, subtracted from a's
// position, separates a from b. Only call it when Overlaps(a, b) holds.
//
// The four candidates are tried in a fixed order (right, up, down, left) and
// a later one only wins when strictly shallower, so ties go to the earlier
// candidate. Exactly one component of the result is non-zero.
func Penetrate(a, b BoundingBox) cp.Vector {
	depth := math.Abs(a.Bounds.R - b.Bounds.L)
	pv := cp.Vector{X: depth}

	if d := math.Abs(a.Bounds.T - b.Bounds.B); d < depth {
		depth = d
		pv = cp.Vector{Y: d}
	}
	if d := math.Abs(a.Bounds.B - b.Bounds.T); d < depth {
		depth = d
		pv = cp.Vector{Y: -d}
	}
	if d := math.Abs(a.Bounds.L - b.Bounds.R); d < depth {
		pv = cp.Vector{X: -d}
	}
	return pv
}

func checkExtents(width, height float64) error {
	if math.IsNaN(width) || math.IsNaN(height) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: size %gx%g", ErrNonFinite, width, height)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrInvalidExtent, width, height)
	}
	return nil
}

func finiteVec(v cp.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
