package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestIntegrateSemiImplicit(t *testing.T) {
	b := newBody(t, cp.Vector{X: 1, Y: 2}, 4, 4, cp.Vector{X: 10})
	b.Acceleration = cp.Vector{Y: -100}

	Integrate(b, 0.1)

	// Velocity is updated first and the new velocity moves the body.
	assert.InDelta(t, 10.0, b.Velocity.X, 1e-9)
	assert.InDelta(t, -10.0, b.Velocity.Y, 1e-9)
	assert.InDelta(t, 2.0, b.Position.X, 1e-9)
	assert.InDelta(t, 1.0, b.Position.Y, 1e-9)
	assert.InDelta(t, 0.0, b.Box.Bounds.L, 1e-9)
	assert.InDelta(t, 3.0, b.Box.Bounds.T, 1e-9)
}

func TestIntegrateZeroStep(t *testing.T) {
	b := newBody(t, cp.Vector{X: 3, Y: 3}, 2, 2, cp.Vector{X: 5, Y: 5})
	b.Acceleration = cp.Vector{Y: -400}
	before := *b

	Integrate(b, 0)

	assert.Equal(t, before, *b)
}

func TestIntegrateIgnoresDepth(t *testing.T) {
	shallow := newBody(t, cp.Vector{}, 2, 2, cp.Vector{X: 1, Y: 1})
	deep := newBody(t, cp.Vector{}, 2, 2, cp.Vector{X: 1, Y: 1})
	deep.Depth = 42

	Integrate(shallow, 0.5)
	Integrate(deep, 0.5)

	assert.Equal(t, shallow.Position, deep.Position)
	assert.Equal(t, shallow.Box, deep.Box)
}
