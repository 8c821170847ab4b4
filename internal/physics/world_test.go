package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groundWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld()
	_, err := w.AddObstacle(cp.Vector{Y: -20}, 100, 10)
	require.NoError(t, err)
	return w
}

func TestWorldAddBodyAssignsIDs(t *testing.T) {
	w := NewWorld()

	a, err := w.AddBody(BodySpec{Width: 2, Height: 2})
	require.NoError(t, err)
	b, err := w.AddBody(BodySpec{Position: cp.Vector{X: 5}, Width: 2, Height: 2})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, w.BodyCount())

	got, ok := w.Body(b)
	require.True(t, ok)
	assert.Equal(t, b, got.ID)
	assert.Equal(t, cp.Vector{X: 5}, got.Position)
	assert.Equal(t, cp.Vector{X: 4, Y: -1}, got.Box.Min())

	_, ok = w.Body(99)
	assert.False(t, ok)
}

func TestWorldAddBodyValidation(t *testing.T) {
	tests := []struct {
		name string
		spec BodySpec
		err  error
	}{
		{"zero width", BodySpec{Width: 0, Height: 2}, ErrInvalidExtent},
		{"negative height", BodySpec{Width: 2, Height: -2}, ErrInvalidExtent},
		{"nan width", BodySpec{Width: math.NaN(), Height: 2}, ErrNonFinite},
		{"infinite position", BodySpec{Position: cp.Vector{X: math.Inf(1)}, Width: 2, Height: 2}, ErrNonFinite},
		{"nan velocity", BodySpec{Velocity: cp.Vector{Y: math.NaN()}, Width: 2, Height: 2}, ErrNonFinite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			_, err := w.AddBody(tc.spec)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, 0, w.BodyCount())
		})
	}
}

func TestWorldAddObstacle(t *testing.T) {
	w := NewWorld()

	id, err := w.AddObstacle(cp.Vector{}, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, ObstacleID(1), id)

	_, err = w.AddObstacle(cp.Vector{}, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidExtent)
	assert.Len(t, w.Obstacles(), 1)
}

func TestWorldSealedAfterStep(t *testing.T) {
	w := groundWorld(t)
	require.NoError(t, w.Step(1.0/60))

	_, err := w.AddObstacle(cp.Vector{X: 500}, 10, 10)
	assert.ErrorIs(t, err, ErrWorldSealed)
	assert.Len(t, w.Obstacles(), 1)

	// Bodies can still join a running world.
	_, err = w.AddBody(BodySpec{Width: 1, Height: 1})
	assert.NoError(t, err)
}

func TestWorldStepRejectsBadDt(t *testing.T) {
	for _, dt := range []float64{-0.01, math.NaN(), math.Inf(1)} {
		w := groundWorld(t)
		id, err := w.AddBody(BodySpec{Position: cp.Vector{Y: 10}, Velocity: cp.Vector{X: 3}, Width: 2, Height: 2})
		require.NoError(t, err)
		before := *mustBody(t, w, id)

		err = w.Step(dt)
		assert.ErrorIs(t, err, ErrNegativeStep, "dt=%v", dt)
		assert.Equal(t, before, *mustBody(t, w, id))
		assert.Equal(t, uint64(0), w.Ticks())

		// A rejected step must not seal the world.
		_, err = w.AddObstacle(cp.Vector{X: 200}, 10, 10)
		assert.NoError(t, err)
	}
}

func TestWorldStepLandsInSameTick(t *testing.T) {
	w := groundWorld(t)
	// Ground top is at y=-15; the body's bottom starts 0.5 above it.
	id, err := w.AddBody(BodySpec{
		Position:     cp.Vector{Y: -14.5 + 9},
		Velocity:     cp.Vector{Y: -60},
		Acceleration: cp.Vector{Y: -400},
		Width:        8,
		Height:       18,
	})
	require.NoError(t, err)

	require.NoError(t, w.Step(1.0/60))

	b := mustBody(t, w, id)
	assert.True(t, b.Contact.Grounded())
	assert.InDelta(t, -15.0, b.Box.Bounds.B, 1e-9)
	assert.Equal(t, 0.0, b.Velocity.Y)
	assert.Equal(t, uint64(1), w.Ticks())
}

func TestWorldStepDepthDoesNotAffectCollision(t *testing.T) {
	run := func(depth float64) *Body {
		w := groundWorld(t)
		id, err := w.AddBody(BodySpec{
			Position:     cp.Vector{Y: 10},
			Depth:        depth,
			Acceleration: cp.Vector{Y: -400},
			Width:        8,
			Height:       18,
		})
		require.NoError(t, err)
		for i := 0; i < 120; i++ {
			require.NoError(t, w.Step(1.0/60))
		}
		return mustBody(t, w, id)
	}

	near, far := run(0), run(-3)
	assert.Equal(t, near.Position, far.Position)
	assert.Equal(t, near.Contact, far.Contact)
	assert.True(t, near.Contact.Grounded())
}

func TestWorldStepIsDeterministic(t *testing.T) {
	run := func() []cp.Vector {
		w := groundWorld(t)
		_, err := w.AddObstacle(cp.Vector{X: 30, Y: 0}, 10, 40)
		require.NoError(t, err)
		id, err := w.AddBody(BodySpec{
			Position:     cp.Vector{Y: 20},
			Velocity:     cp.Vector{X: 40},
			Acceleration: cp.Vector{Y: -400},
			Width:        8,
			Height:       18,
		})
		require.NoError(t, err)

		var trace []cp.Vector
		for i := 0; i < 90; i++ {
			require.NoError(t, w.Step(1.0/60))
			trace = append(trace, mustBody(t, w, id).Position)
		}
		return trace
	}

	assert.Equal(t, run(), run())
}

func TestWorldBodiesIndependent(t *testing.T) {
	w := groundWorld(t)
	a, err := w.AddBody(BodySpec{Position: cp.Vector{X: -20, Y: 0}, Width: 4, Height: 4})
	require.NoError(t, err)
	// Starts overlapping a; bodies never resolve against each other.
	b, err := w.AddBody(BodySpec{Position: cp.Vector{X: -19, Y: 0}, Width: 4, Height: 4})
	require.NoError(t, err)

	require.NoError(t, w.Step(0))

	assert.Equal(t, cp.Vector{X: -20}, mustBody(t, w, a).Position)
	assert.Equal(t, cp.Vector{X: -19}, mustBody(t, w, b).Position)
}

func mustBody(t *testing.T, w *World, id BodyID) *Body {
	t.Helper()
	b, ok := w.Body(id)
	require.True(t, ok)
	return b
}

func TestWorldBoxes(t *testing.T) {
	w := groundWorld(t)
	_, err := w.AddBody(BodySpec{Position: cp.Vector{X: 1, Y: 1}, Width: 2, Height: 2})
	require.NoError(t, err)

	boxes := w.Boxes()
	require.Len(t, boxes, 2)
	assert.Equal(t, cp.Vector{X: -50, Y: -25}, boxes[0].Min())
	assert.Equal(t, cp.Vector{X: 2, Y: 2}, boxes[1].Max())
}
