package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var flagPrintDefault bool

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate config and level files",
	Long: `Parse and validate files without starting a game.

A file named platformer.yaml is checked as a config; any other .yaml/.yml
file is checked as a level. Without arguments the resolved config is
checked (see --config).

Examples:
  platformer check
  platformer check ./configs/platformer.yaml levels/cave.yaml
  platformer check --print-default > platformer.yaml`,
	Run: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the embedded default config and exit")
}

func runCheck(_ *cobra.Command, args []string) {
	if flagPrintDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	if len(args) == 0 {
		_, src, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", src, err)
			os.Exit(1)
		}
		fmt.Printf("ok    %s\n", src)
		return
	}

	failed := 0
	for _, path := range args {
		if err := checkFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s\n", path)
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d files failed\n", failed, len(args))
		os.Exit(1)
	}
}

func checkFile(path string) error {
	if strings.EqualFold(filepath.Base(path), config.FileName) {
		_, err := config.LoadFile(path)
		return err
	}
	_, err := levels.LoadFile(path)
	return err
}
