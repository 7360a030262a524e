// Package registry maps variant IDs to game factories. Variants register
// themselves from init(), so the CLI and the SSH server can start any of
// them by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/relhell/internal/core"
)

// Game is a fixed-tick simulation driven by the platform.
// Implementations hold no terminal or Bubble Tea state: the platform maps
// keys to core.InputFrame, calls Step once per tick and renders the result.
type Game interface {
	// ID is the variant name used on the command line and in stored runs.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new session with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the session into a cleared screen.
	Render(dst *core.Screen)

	// State reports score, pause and game over.
	State() core.GameState
}

// StatsReporter is implemented by games that report run statistics
// for persistence when the game ends.
type StatsReporter interface {
	Stats() core.RunStats
}

// Describer is implemented by games with a one-line description for
// listings.
type Describer interface {
	Description() string
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. It panics when id is already taken.
// Title and description are read once from a throwaway instance.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	sample := f()
	info := GameInfo{ID: id, Title: sample.Title()}
	if d, ok := sample.(Describer); ok {
		info.Description = d.Description()
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	list := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		list = append(list, e.info)
	}
	slices.SortFunc(list, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return list
}

// Info returns the metadata of a variant.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new instance of the variant id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
