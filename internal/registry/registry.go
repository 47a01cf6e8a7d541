// Package registry provides a global registry for effect factories.
// Effects register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/scene"
)

// Effect mutates the scene grid once per tick.
// Effects contain pure logic with no external dependencies (especially no Bubble Tea);
// the platform handles timing, input and presentation.
type Effect interface {
	// ID returns a unique identifier for this effect (e.g., "fire").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset allocates the effect's state for the configured grid size and
	// seeds any randomness. Called once before the first Advance.
	Reset(cfg core.RuntimeConfig)

	// Advance updates grid for the given tick. The grid always has the
	// dimensions passed to Reset. Effects never fail; a violated
	// precondition is a programming error.
	Advance(grid *scene.Grid, tick uint64)
}

// EffectInfo contains metadata about a registered effect.
type EffectInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of an effect.
type Factory func() Effect

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an effect factory to the registry.
// Typically called from an effect's init() function.
// Panics if an effect with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: effect %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered effects, sorted by ID.
func List() []EffectInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]EffectInfo, 0, len(factories))
	for id := range factories {
		result = append(result, EffectInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new effect by its ID.
// Returns an error if the effect ID is not registered.
func Create(id string) (Effect, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown effect %q", id)
	}

	return f(), nil
}

// CreateAll instantiates effects in the given order.
func CreateAll(ids []string) ([]Effect, error) {
	effects := make([]Effect, 0, len(ids))
	for _, id := range ids {
		e, err := Create(id)
		if err != nil {
			return nil, err
		}
		effects = append(effects, e)
	}
	return effects, nil
}

// Exists checks if an effect with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
