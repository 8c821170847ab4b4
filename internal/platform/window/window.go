// Package window runs the platformer in a desktop window with Ebiten.
// Unlike a terminal, Ebiten reports real key-held state, so input needs no
// hold emulation and every tick advances by exactly 1/TPS.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Held keys per direction, arrows and WASD.
var directionKeys = map[core.Direction][]ebiten.Key{
	core.DirUp:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
	core.DirDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.DirLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.DirRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// Game adapts a platformer game to ebiten.Game.
type Game struct {
	game   *platformer.Game
	win    config.WindowConfig
	tps    int
	camera cp.Vector
	err    error
}

// New wraps g for a window of the configured logical size.
func New(g *platformer.Game, cfg config.Config, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.Reset(core.RuntimeConfig{ScreenW: cfg.Window.Width, ScreenH: cfg.Window.Height, TickRate: tps})
	return &Game{game: g, win: cfg.Window, tps: tps, camera: g.Level().Spawn}
}

// Run opens the window and blocks until it is closed.
func Run(g *platformer.Game, cfg config.Config, tps int) error {
	w := New(g, cfg, tps)
	ebiten.SetTPS(w.tps)
	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Zoom, cfg.Window.Height*cfg.Window.Zoom)
	ebiten.SetWindowTitle(fmt.Sprintf("platformer - %s", g.Title()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return w.err
	}
	return err
}

// Update samples the keyboard and advances one fixed tick.
func (w *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	for d, keys := range directionKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in.Hold(d)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}

	res := w.game.Step(1/float64(w.tps), in)
	if res.Err != nil {
		w.err = res.Err
		return ebiten.Termination
	}
	w.follow()
	return nil
}

// follow keeps the actor inside the middle third of the view.
func (w *Game) follow() {
	pos := w.game.Position()
	mx, my := float64(w.win.Width)/6, float64(w.win.Height)/6
	w.camera.X = core.ClampF(w.camera.X, pos.X-mx, pos.X+mx)
	w.camera.Y = core.ClampF(w.camera.Y, pos.Y-my, pos.Y+my)
}

// toScreen maps a world box to logical pixels; world y points up.
func (w *Game) toScreen(bb cp.BB) (x, y, width, height float32) {
	cx, cy := float64(w.win.Width)/2, float64(w.win.Height)/2
	x = float32(cx + bb.L - w.camera.X)
	y = float32(cy - (bb.T - w.camera.Y))
	return x, y, float32(bb.R - bb.L), float32(bb.T - bb.B)
}

// Draw renders obstacles, the actor and a debug line.
func (w *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	lvl := w.game.Level()
	for i, o := range w.game.Obstacles() {
		x, y, bw, bh := w.toScreen(o.Box.Bounds)
		vector.DrawFilledRect(screen, x, y, bw, bh, rgba(lvl.Obstacles[i].Color), false)
	}

	x, y, bw, bh := w.toScreen(w.game.ActorBox().Bounds)
	vector.DrawFilledRect(screen, x, y, bw, bh, actorColor, false)

	// Eye on the facing side; legs alternate with the animation frame.
	eyeX := x + bw - 3
	if w.game.FlipX() {
		eyeX = x + 1
	}
	vector.DrawFilledRect(screen, eyeX, y+2, 2, 2, eyeColor, false)
	legX := x + 1
	if w.game.Frame()%2 == 1 {
		legX = x + bw - 3
	}
	vector.DrawFilledRect(screen, legX, y+bh-3, 2, 3, background, false)

	s := w.game.Snapshot()
	msg := fmt.Sprintf("%s  %s  %s/%s  x=%.1f y=%.1f  respawns %d",
		lvl.Name, w.game.Contact(), s.Mode, s.Anim, s.X, s.Y, s.Respawns)
	if s.Paused {
		msg += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}

// Layout fixes the logical screen size; Ebiten scales it to the window.
func (w *Game) Layout(_, _ int) (int, int) {
	return w.win.Width, w.win.Height
}
