// Package food provides named food placement policies. Policies register
// themselves in init() functions so the CLI and config can select one by
// name without hardcoding the list.
package food

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snakegrid/internal/sim"
)

// Options are passed to a policy factory.
type Options struct {
	Seed int64 // RNG seed for randomized policies
}

// Factory creates a new placer for one simulation run.
type Factory func(opts Options) sim.FoodPlacer

// PolicyInfo contains metadata about a registered policy.
type PolicyInfo struct {
	Name        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	policies = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a policy factory to the registry.
// Panics if a policy with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := policies[name]; exists {
		panic(fmt.Sprintf("food: policy %q already registered", name))
	}
	policies[name] = entry{factory: f, description: description}
}

// List returns all registered policies, sorted by name.
func List() []PolicyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PolicyInfo, 0, len(policies))
	for name, e := range policies {
		result = append(result, PolicyInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create instantiates the named policy.
func Create(name string, opts Options) (sim.FoodPlacer, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("food: unknown policy %q", name)
	}
	return e.factory(opts), nil
}

// Exists checks if a policy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := policies[name]
	return ok
}
