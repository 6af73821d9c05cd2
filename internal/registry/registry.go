// Package registry maps game IDs to factories.
// Each terminal or SSH session creates its own game instance through Create,
// so no simulation state is shared between sessions.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/swarm/internal/core"
)

// Game is what the platform drives: a fixed-tick simulation that draws
// into a cell screen and knows nothing about the terminal.
type Game interface {
	// ID is the stable identifier used by the CLI and the run history.
	ID() string

	// Title is the human-readable name shown in headers.
	Title() string

	// Reset starts a fresh session with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick using the events collected
	// since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. The screen is cleared beforehand.
	Render(dst *core.Screen)

	// State reports score, phase and whether the player asked to quit.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, unreset game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. It is meant to be called from init and
// panics when id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
