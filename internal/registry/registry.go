// Package registry lists the playable game variants. Variants register
// themselves in init() functions, so the CLI and menus can discover them
// without importing each one by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Game is the contract between a game and the platform loop.
// Games hold pure logic; the platform owns input mapping, timing and drawing.
type Game interface {
	// ID identifies the variant in CLI commands and the run history.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new game. Called once at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one platform frame with the actions collected for it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-sized screen buffer.
	Render(dst *core.Screen)

	// State summarises score, level and game-over for the platform.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a variant.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // registration order is menu order
	byID    = make(map[string]int)
)

// Register adds a variant. It panics on a duplicate ID.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	byID[info.ID] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every variant in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Lookup returns the metadata for an ID.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return GameInfo{}, false
	}
	return entries[i].info, true
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return entries[i].factory(), nil
}

// Exists reports whether an ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := byID[id]
	return ok
}
