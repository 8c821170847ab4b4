package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "platformer.yaml"

// SourceEmbedded is reported by Load when no file on disk was used.
const SourceEmbedded = "embedded"

// localConfigDir is relative to the working directory.
var localConfigDir = "configs"

// Load loads the platformer configuration and reports which file it came
// from. Values missing from a file keep their Default() value.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
//
// A custom path must exist, parse and validate. Broken files found during
// the search are skipped with a warning.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		log.Debug("config loaded", "source", customPath)
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		cfg, err := LoadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			log.Warn("skipping config", "path", path, "err", err)
			continue
		}
		log.Debug("config loaded", "source", path)
		return cfg, path, nil
	}

	cfg, err := parse(defaultPlatformerYAML)
	if err != nil {
		// Fallback to hardcoded if the embedded file is broken
		log.Error("embedded config is invalid", "err", err)
		return Default(), SourceEmbedded, nil
	}
	log.Debug("config loaded", "source", SourceEmbedded)
	return cfg, SourceEmbedded, nil
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join(localConfigDir, FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
