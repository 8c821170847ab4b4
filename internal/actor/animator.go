package actor

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAnimation is returned for a non-positive frame period or a
// missing or empty frame range.
var ErrInvalidAnimation = errors.New("actor: invalid animation setup")

// FrameRange is a contiguous run of sprite-sheet frames.
type FrameRange struct {
	Start int
	Count int
}

// Animator cycles the frame range of the current animation state on a fixed
// period and tracks which way the actor faces.
type Animator struct {
	period float64
	ranges map[AnimationState]FrameRange

	state    AnimationState
	local    int     // Frame within the current range
	timer    float64 // Time since the last frame advance
	faceLeft bool
}

// NewAnimator checks that every animation state has a non-empty range.
// The animator starts in AnimNeutral facing right.
func NewAnimator(period float64, ranges map[AnimationState]FrameRange) (*Animator, error) {
	if period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("%w: period must be positive, got %g", ErrInvalidAnimation, period)
	}
	own := make(map[AnimationState]FrameRange, 3)
	for _, s := range []AnimationState{AnimNeutral, AnimWalking, AnimInAir} {
		r, ok := ranges[s]
		if !ok {
			return nil, fmt.Errorf("%w: no frames for %s", ErrInvalidAnimation, s)
		}
		if r.Count <= 0 || r.Start < 0 {
			return nil, fmt.Errorf("%w: %s range start=%d count=%d", ErrInvalidAnimation, s, r.Start, r.Count)
		}
		own[s] = r
	}
	return &Animator{period: period, ranges: own}, nil
}

// Update advances the timer by dt. A state change restarts the new range at
// its first frame but keeps the timer phase. Facing follows the sign of
// velocityX and holds when it is exactly zero.
func (a *Animator) Update(dt float64, state AnimationState, velocityX float64) {
	switch {
	case velocityX < 0:
		a.faceLeft = true
	case velocityX > 0:
		a.faceLeft = false
	}

	if state != a.state {
		a.state = state
		a.local = 0
	}

	a.timer += dt
	if a.timer < a.period {
		return
	}
	steps := math.Floor(a.timer / a.period)
	a.timer -= steps * a.period
	count := a.ranges[a.state].Count
	a.local = (a.local + int(math.Mod(steps, float64(count)))) % count
}

// Reset returns to the neutral state, first frame, facing right.
func (a *Animator) Reset() {
	a.state = AnimNeutral
	a.local = 0
	a.timer = 0
	a.faceLeft = false
}

// Frame returns the absolute sprite-sheet frame index.
func (a *Animator) Frame() int {
	return a.ranges[a.state].Start + a.local
}

// FlipX reports whether the sprite should be mirrored (facing left).
func (a *Animator) FlipX() bool {
	return a.faceLeft
}

// State returns the animation state of the last update.
func (a *Animator) State() AnimationState {
	return a.state
}

// Period returns the frame period in seconds.
func (a *Animator) Period() float64 {
	return a.period
}
