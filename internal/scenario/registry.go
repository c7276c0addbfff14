// Package scenario provides a registry of named built-in worlds for the
// kernel: static geometry, a spawn state and a parameter set. Scenarios
// register themselves in init() functions, allowing the CLI and sandbox to
// discover them without hardcoded dependencies.
package scenario

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arcadelab/platkit/internal/sim"
)

// Scenario bundles everything needed to run the kernel: tuning, static
// world geometry (order is part of the contract — ground-snap probing is
// first-hit-wins in list order) and the actor's spawn state.
type Scenario struct {
	ID     string
	Title  string
	Params sim.Params
	World  []sim.Rect
	Spawn  sim.State
}

// Info contains metadata about a registered scenario.
type Info struct {
	ID    string
	Title string
}

// Factory builds a fresh scenario instance. Factories return new slices so
// callers may mutate their copy freely.
type Factory func() Scenario

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Panics if a scenario with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title
}

// List returns information about all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scenario by its ID.
func Create(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario: unknown scenario %q", id)
	}

	return f(), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
