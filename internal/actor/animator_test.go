package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRanges = map[AnimationState]FrameRange{
	AnimNeutral: {Start: 0, Count: 2},
	AnimWalking: {Start: 2, Count: 4},
	AnimInAir:   {Start: 6, Count: 2},
}

func newAnimator(t *testing.T) *Animator {
	t.Helper()
	a, err := NewAnimator(0.1, testRanges)
	require.NoError(t, err)
	return a
}

func TestAnimatorCyclesRange(t *testing.T) {
	a := newAnimator(t)

	var frames []int
	for i := 0; i < 6; i++ {
		a.Update(0.1, AnimWalking, 1)
		frames = append(frames, a.Frame())
	}

	assert.Equal(t, []int{3, 4, 5, 2, 3, 4}, frames)
}

func TestAnimatorHoldsFrameUntilPeriodElapses(t *testing.T) {
	a := newAnimator(t)

	a.Update(0.04, AnimNeutral, 0)
	assert.Equal(t, 0, a.Frame())
	a.Update(0.04, AnimNeutral, 0)
	assert.Equal(t, 0, a.Frame())
	a.Update(0.04, AnimNeutral, 0)
	assert.Equal(t, 1, a.Frame())
}

func TestAnimatorLongFrameSkipsAhead(t *testing.T) {
	a := newAnimator(t)

	a.Update(0.55, AnimWalking, 1)

	// Five periods elapsed: local frame 5 mod 4 = 1.
	assert.Equal(t, 3, a.Frame())
}

func TestAnimatorStateChangeRestartsRangeKeepsPhase(t *testing.T) {
	a := newAnimator(t)
	a.Update(0.1, AnimWalking, 1)
	a.Update(0.1, AnimWalking, 1)
	a.Update(0.05, AnimWalking, 1)
	require.Equal(t, 4, a.Frame())

	a.Update(0.0, AnimInAir, 1)
	assert.Equal(t, AnimInAir, a.State())
	assert.Equal(t, 6, a.Frame(), "new range starts at its first frame")

	// 0.05 of phase carried over, so another 0.05 advances.
	a.Update(0.05, AnimInAir, 1)
	assert.Equal(t, 7, a.Frame())
}

func TestAnimatorFacing(t *testing.T) {
	a := newAnimator(t)
	assert.False(t, a.FlipX(), "starts facing right")

	steps := []struct {
		vx   float64
		flip bool
	}{
		{-5, true},
		{0, true},
		{0, true},
		{3, false},
		{0, false},
		{-0.001, true},
	}
	for _, s := range steps {
		a.Update(0.01, AnimWalking, s.vx)
		assert.Equal(t, s.flip, a.FlipX(), "vx=%v", s.vx)
	}
}

func TestAnimatorReset(t *testing.T) {
	a := newAnimator(t)
	a.Update(0.35, AnimWalking, -1)
	a.Reset()

	assert.Equal(t, AnimNeutral, a.State())
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.FlipX())
}

func TestNewAnimatorValidation(t *testing.T) {
	t.Run("zero period", func(t *testing.T) {
		_, err := NewAnimator(0, testRanges)
		assert.ErrorIs(t, err, ErrInvalidAnimation)
	})

	t.Run("missing state", func(t *testing.T) {
		_, err := NewAnimator(0.1, map[AnimationState]FrameRange{
			AnimNeutral: {Count: 1},
			AnimWalking: {Count: 1},
		})
		assert.ErrorIs(t, err, ErrInvalidAnimation)
	})

	t.Run("empty range", func(t *testing.T) {
		ranges := map[AnimationState]FrameRange{
			AnimNeutral: {Count: 1},
			AnimWalking: {Start: 1, Count: 0},
			AnimInAir:   {Start: 2, Count: 1},
		}
		_, err := NewAnimator(0.1, ranges)
		assert.ErrorIs(t, err, ErrInvalidAnimation)
	})
}
