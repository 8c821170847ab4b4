package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
)

// World is the body registry: dynamic bodies plus the static obstacle set.
// It is single-threaded; Step runs integration then resolution per body in
// registration order.
type World struct {
	bodies    []*Body
	index     *intmap.Map[BodyID, int]
	obstacles []Obstacle
	sealed    bool
	ticks     uint64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		index: intmap.New[BodyID, int](4),
	}
}

// AddBody registers a dynamic body and returns its handle.
func (w *World) AddBody(spec BodySpec) (BodyID, error) {
	if err := spec.validate(); err != nil {
		return 0, err
	}

	id := BodyID(len(w.bodies) + 1)
	b := &Body{
		ID:           id,
		Position:     spec.Position,
		Depth:        spec.Depth,
		Velocity:     spec.Velocity,
		Acceleration: spec.Acceleration,
		Box:          BoundingBox{Width: spec.Width, Height: spec.Height},
	}
	b.SyncBox()

	w.index.Put(id, len(w.bodies))
	w.bodies = append(w.bodies, b)
	return id, nil
}

// AddObstacle registers a static box centred on center with the given full
// size. Obstacles can only be added before the first Step.
func (w *World) AddObstacle(center cp.Vector, width, height float64) (ObstacleID, error) {
	if w.sealed {
		return 0, ErrWorldSealed
	}
	box, err := NewBoundingBox(center, width, height)
	if err != nil {
		return 0, fmt.Errorf("obstacle %d: %w", len(w.obstacles)+1, err)
	}

	id := ObstacleID(len(w.obstacles) + 1)
	w.obstacles = append(w.obstacles, Obstacle{ID: id, Box: box})
	return id, nil
}

// Body returns the body with the given id.
func (w *World) Body(id BodyID) (*Body, bool) {
	i, ok := w.index.Get(id)
	if !ok {
		return nil, false
	}
	return w.bodies[i], true
}

// Bodies returns the registered bodies in registration order.
func (w *World) Bodies() []*Body {
	return append([]*Body(nil), w.bodies...)
}

// Obstacles returns a copy of the obstacle set in registration order.
func (w *World) Obstacles() []Obstacle {
	return append([]Obstacle(nil), w.obstacles...)
}

// Boxes returns every obstacle box followed by every body box, in
// registration order.
func (w *World) Boxes() []BoundingBox {
	out := make([]BoundingBox, 0, len(w.obstacles)+len(w.bodies))
	for _, o := range w.obstacles {
		out = append(out, o.Box)
	}
	for _, b := range w.bodies {
		out = append(out, b.Box)
	}
	return out
}

// BodyCount returns the number of registered bodies.
func (w *World) BodyCount() int {
	return w.index.Len()
}

// Ticks returns how many steps the world has run.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Step advances every body by dt. Each body is fully integrated before it
// is resolved against the obstacles; bodies never collide with each other.
// A negative or NaN dt is rejected before anything is mutated.
func (w *World) Step(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: dt=%g", ErrNegativeStep, dt)
	}
	w.sealed = true

	for _, b := range w.bodies {
		Integrate(b, dt)
		Resolve(b, w.obstacles)
	}
	w.ticks++
	return nil
}
