package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func init() {
	for _, lvl := range levels.Builtin() {
		registry.Register(lvl.ID, lvl.Name, Factory(lvl))
	}
}

// Factory returns a registry factory that builds a game for lvl.
func Factory(lvl levels.Level) registry.Factory {
	return func(cfg config.Config) (registry.Game, error) {
		return New(lvl, cfg)
	}
}

// RegisterLevels adds levels loaded from disk. Levels whose ID is already
// taken are returned in skipped and not registered.
func RegisterLevels(lvls []levels.Level) (skipped []levels.Level) {
	for _, lvl := range lvls {
		if err := registry.TryRegister(lvl.ID, lvl.Name, Factory(lvl)); err != nil {
			skipped = append(skipped, lvl)
		}
	}
	return skipped
}
