package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// directions lists every direction bit in a fixed order.
var directions = [...]core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

// HeldKeys emulates key-held state from press events. Terminals only report
// presses (plus auto-repeat), so a direction counts as held until window has
// passed since its last press.
type HeldKeys struct {
	window time.Duration
	last   [len(directions)]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) HeldKeys {
	return HeldKeys{window: window}
}

// SetWindow changes the hold window, e.g. after a config reload.
func (h *HeldKeys) SetWindow(window time.Duration) {
	h.window = window
}

// Press records a press of every direction in d at now.
func (h *HeldKeys) Press(d core.Direction, now time.Time) {
	for i, dir := range directions {
		if d&dir != 0 {
			h.last[i] = now
		}
	}
}

// Sample returns the directions held at now.
func (h HeldKeys) Sample(now time.Time) core.Direction {
	var held core.Direction
	for i, dir := range directions {
		if !h.last[i].IsZero() && now.Sub(h.last[i]) < h.window {
			held |= dir
		}
	}
	return held
}

// Release forgets every press.
func (h *HeldKeys) Release() {
	h.last = [len(directions)]time.Time{}
}
