package platformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRenderPrototype(t *testing.T) {
	g := newGame(t, "prototype")
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// Slab spans x in [-50, 50], y in [-25, -15]: columns 15..64, rows 16..17.
	assert.Equal(t, core.Cell{Rune: ObstacleChar, Color: core.ColorGreen}, screen.GetCell(15, 16))
	assert.Equal(t, core.Cell{Rune: ObstacleChar, Color: core.ColorGreen}, screen.GetCell(64, 17))
	assert.Equal(t, ' ', screen.Get(65, 16))
	assert.Equal(t, ' ', screen.Get(14, 17))
	assert.Equal(t, ' ', screen.Get(40, 18))

	// Actor 8x18 at the origin: columns 38..41, rows 10..13.
	assert.Equal(t, core.Cell{Rune: ActorChar, Color: core.ColorBrightYellow}, screen.GetCell(39, 11))
	assert.Equal(t, EyeRight, screen.Get(41, 10))
	assert.Equal(t, ' ', screen.Get(37, 11))
	assert.Equal(t, ' ', screen.Get(39, 14))

	assert.True(t, strings.HasPrefix(screen.Row(0), " Prototype"))
}

func TestRenderFacingLeftAndPaused(t *testing.T) {
	g := newGame(t, "prototype")
	run(t, g, 60, held())
	run(t, g, 2, held(core.DirLeft))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(dt, pause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	r := g.project(g.ActorBox().Bounds, screen)
	require.False(t, r.Empty())
	assert.Equal(t, EyeLeft, screen.Get(r.X, r.Y))
	assert.Contains(t, screen.Row(12), "PAUSED")
}

func TestRenderHUD(t *testing.T) {
	g := newGame(t, "steps")
	run(t, g, 60, held())

	screen := core.NewScreen(100, 30)
	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Steps")
	assert.Contains(t, hud, "neutral/down")
	assert.Contains(t, hud, "grounded")
}
