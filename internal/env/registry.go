package env

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered environment.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of an environment.
type Factory func() Environment

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an environment factory to the registry.
// Typically called from an environment's init() function.
// Panics if an environment with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("env: environment %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	e := f()
	titles[id] = e.Title()
}

// List returns information about all registered environments, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new environment by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Environment, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("env: unknown environment %q", id)
	}

	return f(), nil
}

// Exists checks if an environment with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
