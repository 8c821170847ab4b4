package physics

import "errors"

var (
	// ErrInvalidExtent is returned for a zero or negative box width/height.
	ErrInvalidExtent = errors.New("physics: bounding box extents must be positive")

	// ErrNonFinite is returned when a position, size or kinematic value is NaN or infinite.
	ErrNonFinite = errors.New("physics: value must be finite")

	// ErrNegativeStep is returned by World.Step for dt < 0 or NaN.
	ErrNegativeStep = errors.New("physics: timestep must be a non-negative number")

	// ErrWorldSealed is returned when adding an obstacle after the first step.
	ErrWorldSealed = errors.New("physics: obstacles are immutable once the world has stepped")
)
