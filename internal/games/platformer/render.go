package platformer

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar = '▓'
	ActorChar    = '█'
	EyeLeft      = '◀'
	EyeRight     = '▶'
)

// legFrames is indexed by animation frame: neutral, walking, then in-air.
var legFrames = []string{"▌▐", "▐▌", "╱│", "│╲", "╲│", "│╱", "╱╲", "╲╱"}

// hudRows is the space reserved at the top of the screen.
const hudRows = 1

// follow moves the camera so the actor stays inside the middle third of
// the screen.
func (g *Game) follow() {
	sx, sy := g.cfg.Render.ScaleX, g.cfg.Render.ScaleY
	marginX := float64(g.runtime.ScreenW) / 6 / sx
	marginY := float64(g.runtime.ScreenH) / 6 / sy
	pos := g.actor.Position

	g.camera.X = core.ClampF(g.camera.X, pos.X-marginX, pos.X+marginX)
	g.camera.Y = core.ClampF(g.camera.Y, pos.Y-marginY, pos.Y+marginY)
}

// Camera returns the world point drawn at the screen centre.
func (g *Game) Camera() cp.Vector {
	return g.camera
}

// project maps a world box to screen cells. World y points up, screen rows
// point down. Every non-empty box covers at least one cell.
func (g *Game) project(bb cp.BB, dst *core.Screen) core.Rect {
	sx, sy := g.cfg.Render.ScaleX, g.cfg.Render.ScaleY
	cx, cy := dst.Width()/2, dst.Height()/2

	x0 := cx + int(math.Round((bb.L-g.camera.X)*sx))
	x1 := cx + int(math.Round((bb.R-g.camera.X)*sx))
	y0 := cy - int(math.Round((bb.T-g.camera.Y)*sy))
	y1 := cy - int(math.Round((bb.B-g.camera.Y)*sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for i, o := range g.world.Obstacles() {
		r := g.project(o.Box.Bounds, dst)
		dst.DrawRect(r, ObstacleChar, g.level.Obstacles[i].Color)
	}

	g.drawActor(dst)
	g.drawHUD(dst)
}

func (g *Game) drawActor(dst *core.Screen) {
	r := g.project(g.actor.Box.Bounds, dst)
	dst.DrawRect(r, ActorChar, core.ColorBrightYellow)

	eye, eyeX := EyeRight, r.Right()-1
	if g.anim.FlipX() {
		eye, eyeX = EyeLeft, r.X
	}
	dst.SetColored(eyeX, r.Y, eye, core.ColorBrightWhite)

	if r.H < 2 {
		return
	}
	legs := []rune(legFrames[g.anim.Frame()%len(legFrames)])
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Bottom()-1, legs[(x-r.X)%len(legs)], core.ColorBrightYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	for y := 0; y < hudRows; y++ {
		dst.DrawHLine(0, y, dst.Width(), ' ', core.ColorDefault)
	}

	pos := g.actor.Position
	hud := fmt.Sprintf(" %s  %s  %s  %s  x=%.1f y=%.1f  respawns %d ",
		g.level.Name, g.actor.Contact, g.mode, g.anim.State(), pos.X, pos.Y, g.respawns)
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}
