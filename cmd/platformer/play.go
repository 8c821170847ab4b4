package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var flagNoWatch bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play in the terminal",
	Long: `Start playing the given level, or pick one from a menu.

Controls:
  ←/a →/d     - Run
  ↑/w/Space   - Jump
  ↓/s         - Fast fall
  P           - Pause
  R           - Restart at the spawn point
  Ctrl+S      - Save a screenshot to ~/.platformer/screenshots
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Terminals only report key presses, so a key counts as held for
input.hold_window after its last press (auto-repeat keeps it held).

Unless --no-watch is given, the config file in use is watched and
reloaded while playing.

Examples:
  platformer play
  platformer play steps
  platformer play shaft --preset snappy
  platformer play --config ./platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload the config file on change")
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if !registry.Exists(levelID) {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
			fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available levels.")
			os.Exit(1)
		}
	}

	cfg, src, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	closeLog := logToFile()
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagTPS}

	var reloads <-chan tui.ReloadMsg
	if !flagNoWatch && src != config.SourceEmbedded {
		w, werr := config.NewWatcher(src)
		if werr != nil {
			log.Warn("config watch disabled", "path", src, "err", werr)
		} else {
			defer w.Close()
			reloads = tui.WatchConfig(w, loadConfig)
			log.Info("watching config", "path", src)
		}
	}

	if levelID == "" {
		err = tui.RunSession(cfg, rt, reloads)
	} else {
		var game registry.Game
		game, err = registry.Create(levelID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating level: %v\n", err)
			os.Exit(1)
		}
		err = tui.Run(game, tui.Options{Config: cfg, Runtime: rt, Reloads: reloads})
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// logToFile sends the default logger to a file while the alternate screen
// owns the terminal. The returned func restores stderr.
func logToFile() func() {
	path := logFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warn("logging to stderr", "err", err)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Warn("logging to stderr", "err", err)
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}
