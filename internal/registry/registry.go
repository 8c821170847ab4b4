// Package registry provides a global registry of playable levels.
// Each entry is a factory that builds a game for one level from a tuning
// config. Built-in levels register themselves in init(); levels loaded from
// disk are added at startup with TryRegister.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is the interface the frontends drive.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the level identifier (e.g., "prototype").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset puts the actor back at the spawn point and clears counters.
	// The RuntimeConfig provides the screen size.
	Reset(rt core.RuntimeConfig)

	// Step advances the simulation by dt seconds with the held directions
	// sampled for this tick. A negative or NaN dt is reported in the
	// result's Err and leaves the game untouched.
	Step(dt float64, in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the coarse game state.
	State() core.GameState
}

// Tunable is implemented by games that accept a new config while running.
type Tunable interface {
	Retune(cfg config.Config) error
}

// GameInfo contains metadata about a registered level.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game instance from a tuning config.
type Factory func(cfg config.Config) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from an init() function.
// Panics if a level with the same ID is already registered.
func Register(id, title string, f Factory) {
	if err := TryRegister(id, title, f); err != nil {
		panic(err.Error())
	}
}

// TryRegister is Register for levels that come from user input: a
// duplicate or empty ID is returned as an error.
func TryRegister(id, title string, f Factory) error {
	if id == "" {
		return fmt.Errorf("registry: empty level id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return fmt.Errorf("registry: level %q already registered", id)
	}
	factories[id] = f
	titles[id] = title
	return nil
}

// List returns information about all registered levels, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game for the level ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, cfg config.Config) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}
	g, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: creating %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
