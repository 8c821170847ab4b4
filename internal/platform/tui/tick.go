// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, held-key emulation, dt measurement,
// config hot reload and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that started the tick chain so a stale chain from a previous game
// dies out instead of doubling the tick rate.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick chain identifier.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}

// FrameClock measures the time between ticks. The first tick and any gap
// longer than the limit (a suspended terminal, a slow SSH link) are clamped.
type FrameClock struct {
	last    time.Time
	nominal time.Duration
	limit   time.Duration
}

// NewFrameClock creates a clock for tickRate ticks per second.
func NewFrameClock(tickRate int, limit time.Duration) FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FrameClock{nominal: time.Second / time.Duration(tickRate), limit: limit}
}

// SetMax changes the clamp.
func (c *FrameClock) SetMax(limit time.Duration) {
	c.limit = limit
}

// Tick returns the seconds elapsed since the previous tick.
func (c *FrameClock) Tick(now time.Time) float64 {
	d := c.nominal
	if !c.last.IsZero() {
		d = now.Sub(c.last)
	}
	c.last = now
	if d < 0 {
		d = 0
	}
	if c.limit > 0 && d > c.limit {
		d = c.limit
	}
	return d.Seconds()
}

// Reset forgets the previous tick, e.g. after a pause.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
