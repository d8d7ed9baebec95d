// Package registry maps game IDs to factories. Game packages register
// themselves from init, and the CLI and menus look them up by ID.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is what the terminal platform drives. Implementations hold pure
// simulation state; timing, key mapping and output belong to the platform.
type Game interface {
	// ID is the stable key used on the command line and in the scoreboard.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new game with the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one fixed tick using the intents collected
	// since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. It must not change game state.
	Render(dst *core.Screen)

	// State reports score and status.
	State() core.GameState
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a factory. It panics on a duplicate ID, which can only
// happen through a programming error at init time.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create builds a new instance of the game with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
