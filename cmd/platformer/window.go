package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/window"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [level]",
	Short: "Play in a desktop window",
	Long: `Open the level in a desktop window. Keys are read as really held,
and every tick advances by exactly 1/tps seconds.

Controls:
  Arrows/WASD  - Run, jump, fast fall (Space also jumps)
  P            - Pause
  R            - Restart
  Esc/Q        - Quit

The window size comes from the window section of platformer.yaml.

Examples:
  platformer window
  platformer window steps --tps 120`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	levelID := "prototype"
	if len(args) == 1 {
		levelID = args[0]
	}

	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(levelID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating level: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available levels.")
		os.Exit(1)
	}
	pg, ok := game.(*platformer.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: level %q cannot be shown in a window\n", levelID)
		os.Exit(1)
	}

	if err := window.Run(pg, cfg, flagTPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
