// platformer is a terminal platformer sandbox built around an AABB
// collision engine.
//
// Usage:
//
//	platformer list             - List available levels
//	platformer play [level]     - Play in the terminal (menu without a level)
//	platformer window [level]   - Play in a desktop window
//	platformer serve            - Start SSH server for remote play
//	platformer check [files]    - Validate config and level files
//
// Global flags:
//
//	--tps <rate>        - Set tick rate (default: 60)
//	--config <path>     - Use a specific platformer.yaml
//	--preset <name>     - Difficulty preset: floaty, normal, snappy
//	--levels <dir>      - Load extra levels from a directory
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var (
	// Global flags
	flagTPS      int
	flagConfig   string
	flagPreset   string
	flagLevels   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - jump around an AABB world in your terminal",
	Long: `Platformer is a small sandbox for an axis-aligned bounding box
collision engine: an actor runs, jumps and lands on rectangular obstacles.

Available commands:
  list     - Show all available levels
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  check    - Validate config and level files

Examples:
  platformer list
  platformer play steps
  platformer play --preset floaty
  platformer window shaft
  platformer serve --ssh :2222
  platformer check ./my-levels/cave.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to platformer.yaml (default: search order)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: floaty, normal, snappy")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

// setup installs the logger and registers levels from --levels.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	}))

	if _, err := config.ParsePreset(flagPreset); err != nil {
		return err
	}

	if flagLevels == "" {
		return nil
	}
	lvls, err := levels.NewLoader(flagLevels).LoadAll()
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}
	for _, lvl := range platformer.RegisterLevels(lvls) {
		log.Warn("level ID already taken, skipped", "id", lvl.ID, "path", lvl.FilePath)
	}
	log.Debug("levels loaded", "dir", flagLevels, "count", len(lvls))
	return nil
}

// loadConfig resolves the tuning config and applies --preset.
func loadConfig() (config.Config, string, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, src, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, src, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, src, cfg.Validate()
}

// logFilePath is where the terminal frontends log while the alternate
// screen is active.
func logFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "platformer.log"
	}
	return filepath.Join(home, ".platformer", "platformer.log")
}
