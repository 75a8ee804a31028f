// Package registry maps chart type ids to their components.
//
// Default returns a registry holding the built-in bar-chart, pie-chart,
// line-chart, sunburst-chart and choropleth-map components. Hosts that add
// their own components should do so before the registry is shared.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/kinggod/d3-components/internal/match"
)

// Registry holds components by id. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]*Component
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{components: make(map[string]*Component)}
}

// Register validates c and adds it under c.ID.
func (r *Registry) Register(c *Component) error {
	if c == nil {
		return ErrMissingID
	}

	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[c.ID]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, c.ID)
	}

	r.components[c.ID] = c

	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(c *Component) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Lookup returns the component registered under id. Unknown ids yield a
// *ConfigurationError naming the closest registered ids.
func (r *Registry) Lookup(id string) (*Component, error) {
	r.mu.RLock()
	c, ok := r.components[id]
	r.mu.RUnlock()

	if !ok {
		return nil, &ConfigurationError{Component: id, Suggestions: match.Suggest(id, r.IDs())}
	}

	return c, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.components[id]

	return ok
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.components))
	for id := range r.components {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
