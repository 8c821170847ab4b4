package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Options configures a game model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	// Reloads delivers config changes. May be nil.
	Reloads <-chan ReloadMsg
	// AllowBack enables the back-to-menu key; used inside a session.
	AllowBack bool
}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	runtime core.RuntimeConfig
	cfg     config.Config
	keys    KeyMap
	help    help.Model
	held    HeldKeys
	clock   FrameClock
	pending core.InputFrame
	reloads <-chan ReloadMsg
	loop    uint64
	now     func() time.Time

	state      core.GameState
	status     string
	statusErr  bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)

	return Model{
		game:    game,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		runtime: rt,
		cfg:     opts.Config,
		keys:    keys,
		help:    help.New(),
		held:    NewHeldKeys(opts.Config.Input.HoldWindow),
		clock:   NewFrameClock(rt.TickRate, opts.Config.Input.MaxFrameTime),
		pending: core.NewInputFrame(),
		reloads: opts.Reloads,
		loop:    nextLoop(),
		now:     time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	return tea.Batch(tickCmd(m.runtime.TickRate, m.loop), waitForReload(m.reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)

	case ReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Directions are held for the hold
// window; actions are queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.held.Press(d, m.now())
		return m, nil
	}
	if a := m.keys.Action(msg); a != core.ActionNone {
		m.pending.Set(a)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running; the
// camera stays centred on the same point.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	return m, nil
}

// handleTick samples input and advances the game by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	dt := m.clock.Tick(now)
	in := m.pending.Clone()
	in.Held = m.held.Sample(now)
	m.pending.Clear()

	res := m.game.Step(dt, in)
	m.state = res.State
	if res.Err != nil {
		log.Warn("step rejected", "game", m.game.ID(), "dt", dt, "err", res.Err)
	}

	return m, tickCmd(m.runtime.TickRate, m.loop)
}

// handleReload swaps in a reloaded config when the game supports it.
func (m Model) handleReload(msg ReloadMsg) (tea.Model, tea.Cmd) {
	next := waitForReload(m.reloads)

	if msg.Err != nil {
		log.Error("config reload failed", "source", msg.Source, "err", msg.Err)
		m.setStatus(fmt.Sprintf("config error: %v", msg.Err), true)
		return m, next
	}

	if t, ok := m.game.(registry.Tunable); ok {
		if err := t.Retune(msg.Config); err != nil {
			log.Error("config rejected", "source", msg.Source, "err", err)
			m.setStatus(fmt.Sprintf("config rejected: %v", err), true)
			return m, next
		}
	}

	m.cfg = msg.Config
	m.held.SetWindow(msg.Config.Input.HoldWindow)
	m.clock.SetMax(msg.Config.Input.MaxFrameTime)
	log.Info("config reloaded", "source", msg.Source)
	m.setStatus("config reloaded from "+msg.Source, false)
	return m, next
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setStatus("screenshot: "+err.Error(), true)
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("screenshot: "+err.Error(), true)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("screenshot: "+err.Error(), true)
		return
	}
	m.setStatus("saved "+path, false)
}

// footer returns the status line, or the key help when there is no status.
func (m Model) footer() string {
	switch {
	case m.status != "" && m.statusErr:
		return errorStyle.Render(m.status)
	case m.status != "":
		return statusStyle.Render(m.status)
	default:
		return m.help.View(m.keys)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	rows := max(m.runtime.ScreenH-lipgloss.Height(footer), 1)
	if m.screen.Height() != rows || m.screen.Width() != m.runtime.ScreenW {
		m.screen.Resize(m.runtime.ScreenW, rows)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footer
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the level menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run plays a single level until the user quits.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
