package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// AxisX is the horizontal contact tag: the side of the actor that was pushed
// on by the most recent horizontal correction.
type AxisX uint8

const (
	XNeutral AxisX = iota
	XLeft
	XRight
)

func (a AxisX) String() string {
	switch a {
	case XNeutral:
		return "neutral"
	case XLeft:
		return "left"
	case XRight:
		return "right"
	default:
		return fmt.Sprintf("AxisX(%d)", uint8(a))
	}
}

// AxisY is the vertical contact tag. YDown means the actor rests on top of
// an obstacle.
type AxisY uint8

const (
	YNeutral AxisY = iota
	YUp
	YDown
)

func (a AxisY) String() string {
	switch a {
	case YNeutral:
		return "neutral"
	case YUp:
		return "up"
	case YDown:
		return "down"
	default:
		return fmt.Sprintf("AxisY(%d)", uint8(a))
	}
}

// ContactState holds the per-axis collision normal of the last resolution.
// The zero value is (neutral, neutral).
type ContactState struct {
	X AxisX
	Y AxisY
}

// Grounded reports ground contact (Y == YDown).
func (c ContactState) Grounded() bool {
	return c.Y == YDown
}

func (c ContactState) String() string {
	return c.X.String() + "/" + c.Y.String()
}

// BodyID identifies a dynamic body inside its World.
type BodyID uint32

// ObstacleID identifies a static obstacle inside its World.
type ObstacleID uint32

// Body is a dynamic actor. Box must always be derived from Position; use
// Place or SyncBox after writing Position directly.
type Body struct {
	ID           BodyID
	Position     cp.Vector
	Depth        float64 // Render order only; collision never reads it
	Velocity     cp.Vector
	Acceleration cp.Vector
	Box          BoundingBox
	Contact      ContactState
}

// SyncBox recomputes the bounding box from the current position.
func (b *Body) SyncBox() {
	b.Box.Recenter(b.Position)
}

// Place moves the body to pos and keeps the box in step.
func (b *Body) Place(pos cp.Vector) {
	b.Position = pos
	b.SyncBox()
}

// BodySpec describes the initial state of a dynamic body.
type BodySpec struct {
	Position     cp.Vector
	Depth        float64
	Velocity     cp.Vector
	Acceleration cp.Vector
	Width        float64
	Height       float64
}

func (s BodySpec) validate() error {
	if err := checkExtents(s.Width, s.Height); err != nil {
		return err
	}
	if !finiteVec(s.Position) || !finiteVec(s.Velocity) || !finiteVec(s.Acceleration) {
		return fmt.Errorf("%w: position %v velocity %v acceleration %v",
			ErrNonFinite, s.Position, s.Velocity, s.Acceleration)
	}
	return nil
}

// Obstacle is a static box. It never moves once the world has stepped.
type Obstacle struct {
	ID  ObstacleID
	Box BoundingBox
}
